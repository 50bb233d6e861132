package binding

import (
	"context"
	"errors"
	"reflect"
)

// Resolver converts the raw value supplied for a parameter into the value
// passed to the handler. A nil or empty result omits the parameter.
// Errors abort the whole binding pass and are returned to the caller unchanged.
type Resolver interface {
	Resolve(ctx context.Context, raw any) (any, error)
}

// ResolverFunc adapts a plain function to Resolver.
type ResolverFunc func(ctx context.Context, raw any) (any, error)

// Resolve calls f(ctx, raw).
func (f ResolverFunc) Resolve(ctx context.Context, raw any) (any, error) {
	return f(ctx, raw)
}

// Finder looks up an entity by identifier.
// A missing entity is reported with an error wrapping ErrModelNotFound.
type Finder[T any] interface {
	Find(ctx context.Context, id any) (T, error)
}

// FinderFunc adapts a function to Finder.
type FinderFunc[T any] func(ctx context.Context, id any) (T, error)

// Find calls f(ctx, id).
func (f FinderFunc[T]) Find(ctx context.Context, id any) (T, error) {
	return f(ctx, id)
}

// MissingHandler produces the bound value (or an error) when a model binder
// finds no entity. It receives the raw identifier.
type MissingHandler func(ctx context.Context, raw any) (any, error)

// ModelResolver binds a parameter to an entity of type T looked up by the raw value.
type ModelResolver[T any] struct {
	finder  Finder[T]
	missing MissingHandler
	model   string
}

// NewModelResolver creates a model resolver. missing may be nil, in which case
// a *ModelNotFoundError is returned for unknown identifiers.
func NewModelResolver[T any](finder Finder[T], missing MissingHandler) *ModelResolver[T] {
	return &ModelResolver[T]{
		finder:  finder,
		missing: missing,
		model:   modelName(reflect.TypeFor[T]()),
	}
}

// Resolve looks up the entity identified by raw.
// Empty identifiers resolve to nil without calling the finder.
func (m *ModelResolver[T]) Resolve(ctx context.Context, raw any) (any, error) {
	if IsEmpty(raw) {
		return nil, nil
	}

	entity, err := m.finder.Find(ctx, raw)
	if err == nil && !IsEmpty(entity) {
		return entity, nil
	}
	if err != nil && !errors.Is(err, ErrModelNotFound) {
		return nil, err
	}

	if m.missing != nil {
		return m.missing(ctx, raw)
	}

	var notFound *ModelNotFoundError
	if errors.As(err, &notFound) {
		return nil, err
	}
	return nil, &ModelNotFoundError{Model: m.model, ID: raw}
}

// Model returns the entity type name used in not-found errors.
func (m *ModelResolver[T]) Model() string {
	return m.model
}

// modelName derives the entity name from a reflect.Type.
// Pointers are dereferenced; unnamed types fall back to their string form.
func modelName(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Name() != "" {
		return t.Name()
	}
	return t.String()
}
