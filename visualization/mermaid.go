// Package visualization generates textual diagram representations of
// transition tables.
package visualization

import (
	"fmt"
	"io"
	"strings"

	fsmhook "github.com/UnknownHero/fsm-hook"
)

const mermaidHeader = "stateDiagram-v2"

// Mermaid renders the transition table in Mermaid state diagram syntax.
//
// The output starts with the stateDiagram-v2 header and contains one
// indented line per declared edge:
//
//	stateDiagram-v2
//	    idle --> typing: typing
//
// Edges appear in declaration order of the source state, then declaration
// order of the transition within that state, so identical tables always
// render byte-identical output. States with no outgoing transitions emit
// no lines. The function is pure; it reads nothing but the table.
func Mermaid(table *fsmhook.TransitionTable) string {
	var b strings.Builder
	// strings.Builder never returns a write error
	_ = WriteMermaid(&b, table)
	return b.String()
}

// WriteMermaid renders the same diagram as Mermaid, streaming it to w
func WriteMermaid(w io.Writer, table *fsmhook.TransitionTable) error {
	if _, err := fmt.Fprintln(w, mermaidHeader); err != nil {
		return err
	}
	for _, source := range table.States() {
		for _, name := range table.TransitionsFrom(source) {
			destination, _ := table.Destination(source, name)
			if _, err := fmt.Fprintf(w, "    %s --> %s: %s\n", source, destination, name); err != nil {
				return err
			}
		}
	}
	return nil
}
