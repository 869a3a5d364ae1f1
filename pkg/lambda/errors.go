package lambda

import (
	"fmt"
	"strings"
)

// NameError reports a variable name outside the identifier grammar.
type NameError struct {
	Name   string
	Reason string
}

func (e *NameError) Error() string {
	return fmt.Sprintf("invalid name %q: %s", e.Name, e.Reason)
}

// CollisionError reports free variables that a checked substitution or an
// alpha conversion would have captured.
type CollisionError struct {
	Message    string
	Collisions []string
}

func (e *CollisionError) Error() string {
	collisions := "none"
	if len(e.Collisions) > 0 {
		collisions = strings.Join(e.Collisions, ", ")
	}
	return fmt.Sprintf("[collisions: %s] %s", collisions, e.Message)
}

// DepthError is the panic value delivered when an operation descends
// through more than MaxDepth levels of term structure. The term is
// either pathologically deep or was built with a cycle, and no partial
// result would be meaningful, so the failure is a panic rather than an
// error return. Nothing in this package recovers it.
type DepthError struct {
	Depth int
}

func (e *DepthError) Error() string {
	return fmt.Sprintf("term nesting exceeds %d levels", e.Depth)
}
