package binding

import (
	"errors"
	"fmt"
)

var (
	// ErrSignatureNotFound is the class of every signature lookup failure.
	// ResolveBindings never recovers from it.
	ErrSignatureNotFound = errors.New("procedure signature not found")

	// ErrInvalidProcedure indicates a procedure identifier without an owner@method shape.
	ErrInvalidProcedure = errors.New("invalid procedure identifier")

	// ErrOwnerNotFound indicates no handler is registered under the procedure owner.
	ErrOwnerNotFound = errors.New("procedure owner not found")

	// ErrMethodNotFound indicates the owner is known but does not declare the method.
	ErrMethodNotFound = errors.New("procedure method not found")

	// ErrModelNotFound indicates a model binder could not find an entity for the supplied identifier.
	// Finder implementations return an error wrapping it to trigger the missing-model path.
	ErrModelNotFound = errors.New("model not found")

	// ErrInvalidParam indicates a conversion resolver received a value it cannot convert.
	ErrInvalidParam = errors.New("invalid parameter value")

	// ErrInvalidCacheSize indicates a non-positive signature cache size.
	ErrInvalidCacheSize = errors.New("invalid signature cache size")
)

// ModelNotFoundError is returned by model binders when the entity lookup fails
// and no missing handler is configured.
type ModelNotFoundError struct {
	Model string // Entity type name
	ID    any    // Raw identifier supplied by the caller
}

// Error implements the error interface.
func (e *ModelNotFoundError) Error() string {
	return fmt.Sprintf("%s: %s %v", ErrModelNotFound, e.Model, e.ID)
}

// Unwrap allows errors.Is(err, ErrModelNotFound).
func (e *ModelNotFoundError) Unwrap() error {
	return ErrModelNotFound
}
