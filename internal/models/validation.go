package models

import "fmt"

// ValidationError reports a malformed or missing input field. It is raised
// before any store mutation, so callers can surface it next to the field
// without worrying about partial state.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
