package fsmhook

import "fmt"

// ErrorCode represents specific validation failures in a table definition
type ErrorCode int

const (
	// No error occurred
	ErrCodeNone ErrorCode = iota
	// A transition points at a state that was never declared
	ErrCodeDanglingDestination
	// A state was declared with an empty identifier
	ErrCodeEmptyStateID
	// A transition was declared with an empty name
	ErrCodeEmptyTransitionName
	// A textual table definition could not be interpreted
	ErrCodeInvalidDefinition
)

// TableError represents a transition table validation error
type TableError struct {
	Code    ErrorCode
	StateID string
	Message string
}

func (e *TableError) Error() string {
	if e.StateID == "" {
		return fmt.Sprintf("table error: %s", e.Message)
	}
	return fmt.Sprintf("table error [%s]: %s", e.StateID, e.Message)
}

// NewDanglingDestinationError creates an error for a transition whose
// destination state is not declared in the table
func NewDanglingDestinationError(stateID, transition, destination string) *TableError {
	return &TableError{
		Code:    ErrCodeDanglingDestination,
		StateID: stateID,
		Message: fmt.Sprintf("transition '%s' targets undeclared state '%s'", transition, destination),
	}
}

// NewEmptyStateIDError creates an error for a state declared without an identifier
func NewEmptyStateIDError() *TableError {
	return &TableError{
		Code:    ErrCodeEmptyStateID,
		Message: "state declared with empty identifier",
	}
}

// NewEmptyTransitionNameError creates an error for a transition declared without a name
func NewEmptyTransitionNameError(stateID string) *TableError {
	return &TableError{
		Code:    ErrCodeEmptyTransitionName,
		StateID: stateID,
		Message: "transition declared with empty name",
	}
}

// NewInvalidDefinitionError creates an error for a malformed textual definition
func NewInvalidDefinitionError(message string) *TableError {
	return &TableError{
		Code:    ErrCodeInvalidDefinition,
		Message: message,
	}
}
