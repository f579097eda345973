package main

import (
	"fmt"

	"github.com/spf13/cobra"

	fsmhook "github.com/UnknownHero/fsm-hook"
	"github.com/UnknownHero/fsm-hook/visualization"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "fsmhook",
		Short:         "Inspect finite state machine definitions",
		Long:          `Validates YAML state machine definitions and renders them as Mermaid state diagrams.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newDiagramCmd())
	rootCmd.AddCommand(newValidateCmd())
	return rootCmd
}

func newDiagramCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diagram <definition.yaml>",
		Short: "Render a machine definition as a Mermaid state diagram",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			def, err := fsmhook.LoadTableFile(args[0])
			if err != nil {
				return err
			}
			return visualization.WriteMermaid(cmd.OutOrStdout(), def.Table)
		},
	}
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <definition.yaml>",
		Short: "Check a machine definition for undeclared destination states",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			def, err := fsmhook.LoadTableFile(args[0])
			if err != nil {
				return err
			}
			if def.Initial != "" && !def.Table.HasState(def.Initial) {
				return fmt.Errorf("initial state '%s' is not declared in the table", def.Initial)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d states, %d transitions\n",
				def.Table.Len(), def.Table.EdgeCount())
			return nil
		},
	}
}
