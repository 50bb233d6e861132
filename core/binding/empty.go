package binding

import "reflect"

// IsEmpty reports whether a bound value should be omitted from the argument map.
//
// Empty values are nil, typed nil pointers, interfaces, maps, slices, funcs and
// channels, and zero-length strings, slices, maps and arrays. Numeric zero and
// false are real values and are kept.
func IsEmpty(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	case reflect.Map, reflect.Slice, reflect.String, reflect.Array:
		return rv.Len() == 0
	default:
		return false
	}
}
