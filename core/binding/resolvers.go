package binding

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/google/uuid"
)

// UUID returns a resolver that parses string identifiers into uuid.UUID.
// Empty values stay empty so the parameter is omitted.
func UUID() Resolver {
	return ResolverFunc(func(_ context.Context, raw any) (any, error) {
		switch v := raw.(type) {
		case nil:
			return nil, nil
		case uuid.UUID:
			return v, nil
		case string:
			if v == "" {
				return nil, nil
			}
			id, err := uuid.Parse(v)
			if err != nil {
				return nil, fmt.Errorf("%w: %q is not a uuid: %w", ErrInvalidParam, v, err)
			}
			return id, nil
		default:
			return nil, fmt.Errorf("%w: expected uuid string, got %T", ErrInvalidParam, raw)
		}
	})
}

// Int64 returns a resolver converting JSON numbers and numeric strings to int64.
// Fractional numbers are rejected.
func Int64() Resolver {
	return ResolverFunc(func(_ context.Context, raw any) (any, error) {
		switch v := raw.(type) {
		case nil:
			return nil, nil
		case int64:
			return v, nil
		case int:
			return int64(v), nil
		case int32:
			return int64(v), nil
		case float64:
			if v != math.Trunc(v) || v >= math.MaxInt64 || v < math.MinInt64 {
				return nil, fmt.Errorf("%w: %v is not an integer", ErrInvalidParam, v)
			}
			return int64(v), nil
		case json.Number:
			n, err := v.Int64()
			if err != nil {
				return nil, fmt.Errorf("%w: %q is not an integer: %w", ErrInvalidParam, v, err)
			}
			return n, nil
		case string:
			if v == "" {
				return nil, nil
			}
			n, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: %q is not an integer: %w", ErrInvalidParam, v, err)
			}
			return n, nil
		default:
			return nil, fmt.Errorf("%w: expected integer, got %T", ErrInvalidParam, raw)
		}
	})
}

// String returns a resolver converting scalar JSON values to their string form.
func String() Resolver {
	return ResolverFunc(func(_ context.Context, raw any) (any, error) {
		switch v := raw.(type) {
		case nil:
			return nil, nil
		case string:
			return v, nil
		case json.Number:
			return v.String(), nil
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64), nil
		case int:
			return strconv.Itoa(v), nil
		case int64:
			return strconv.FormatInt(v, 10), nil
		case bool:
			return strconv.FormatBool(v), nil
		case fmt.Stringer:
			return v.String(), nil
		default:
			return nil, fmt.Errorf("%w: expected scalar, got %T", ErrInvalidParam, raw)
		}
	})
}
