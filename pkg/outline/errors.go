// Package outline walks a recipe tree and emits a deterministic, indexed
// enumeration of its components.
package outline

import (
	"errors"
	"fmt"
)

// ErrCycleDetected indicates the walker revisited a component already on
// the current ancestor path. The walk is aborted, never left to recurse
// unbounded.
var ErrCycleDetected = errors.New("cycle detected in recipe tree")

// CycleError wraps a detected cycle with the component and path at which
// it was found.
type CycleError struct {
	ComponentID   string // ID of the revisited component
	ComponentName string // Name of the revisited component
	Path          string // Dotted path at which the revisit happened
	Err           error  // Underlying error, always ErrCycleDetected
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("component %q (%s) revisited at path %s: %v", e.ComponentName, e.ComponentID, e.Path, e.Err)
}

func (e *CycleError) Unwrap() error {
	return e.Err
}

// Is implements error comparison for cycle errors.
func (e *CycleError) Is(target error) bool {
	return errors.Is(e.Err, target)
}

// IsCycle checks if an error indicates a cyclic recipe tree.
func IsCycle(err error) bool {
	return errors.Is(err, ErrCycleDetected)
}
