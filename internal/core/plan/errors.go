package plan

import (
	"errors"
	"fmt"
)

var (
	// ErrPlanCollision indicates two contributors registered the same file
	// path with different content.
	ErrPlanCollision = errors.New("plan: path collision")

	// ErrInvalidPath indicates an empty, absolute or escaping path.
	ErrInvalidPath = errors.New("plan: invalid path")
)

// CollisionError reports a file path claimed twice with different content.
type CollisionError struct {
	Path     string
	Existing string
	Incoming string
}

// Error implements the error interface.
func (e *CollisionError) Error() string {
	return fmt.Sprintf("plan: %s registered by %s conflicts with %s", e.Path, e.Existing, e.Incoming)
}

// Unwrap returns ErrPlanCollision.
func (e *CollisionError) Unwrap() error {
	return ErrPlanCollision
}
