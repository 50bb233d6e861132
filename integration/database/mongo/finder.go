package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/dmitrymomot/rpckit/core/binding"
)

// FindOneFunc runs a single-document query, usually collection.FindOne.
type FindOneFunc func(ctx context.Context, filter any) *mongo.SingleResult

// IDParser converts a raw parameter value into the value stored in the id field.
type IDParser func(raw any) (any, error)

// Finder loads one document by identifier and decodes it into T.
type Finder[T any] struct {
	findOne FindOneFunc
	field   string
	parseID IDParser
}

// FinderOption configures a Finder.
type FinderOption func(*finderOptions)

type finderOptions struct {
	field   string
	parseID IDParser
}

// WithIDField matches documents on field instead of _id.
func WithIDField(field string) FinderOption {
	return func(o *finderOptions) {
		if field != "" {
			o.field = field
		}
	}
}

// WithIDParser converts raw identifiers before querying, e.g. ObjectIDParser.
func WithIDParser(fn IDParser) FinderOption {
	return func(o *finderOptions) {
		o.parseID = fn
	}
}

// NewFinder creates a finder over a collection.
//
// Example:
//
//	users := mongo.NewFinder[*User](db.Collection("users"), mongo.WithIDParser(mongo.ObjectIDParser))
//	binding.RegisterModelBinder(reg, "user", users, nil)
func NewFinder[T any](coll *mongo.Collection, opts ...FinderOption) *Finder[T] {
	return NewFinderFunc[T](func(ctx context.Context, filter any) *mongo.SingleResult {
		return coll.FindOne(ctx, filter)
	}, opts...)
}

// NewFinderFunc creates a finder over an arbitrary FindOne implementation.
func NewFinderFunc[T any](findOne FindOneFunc, opts ...FinderOption) *Finder[T] {
	o := finderOptions{field: "_id"}
	for _, opt := range opts {
		opt(&o)
	}
	return &Finder[T]{findOne: findOne, field: o.field, parseID: o.parseID}
}

// Find decodes the document whose id field equals id.
// mongo.ErrNoDocuments is reported as binding.ErrModelNotFound.
func (f *Finder[T]) Find(ctx context.Context, id any) (T, error) {
	var zero T

	if f.parseID != nil {
		parsed, err := f.parseID(id)
		if err != nil {
			return zero, err
		}
		id = parsed
	}

	var entity T
	err := f.findOne(ctx, bson.D{{Key: f.field, Value: id}}).Decode(&entity)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return zero, fmt.Errorf("%w: %w", binding.ErrModelNotFound, err)
		}
		return zero, fmt.Errorf("%w: %w", ErrLookupFailed, err)
	}
	return entity, nil
}

// ObjectIDParser accepts hex strings and bson.ObjectID values.
func ObjectIDParser(raw any) (any, error) {
	switch v := raw.(type) {
	case bson.ObjectID:
		return v, nil
	case string:
		oid, err := bson.ObjectIDFromHex(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", binding.ErrInvalidParam, err)
		}
		return oid, nil
	default:
		return nil, fmt.Errorf("%w: cannot use %T as object id", binding.ErrInvalidParam, raw)
	}
}
