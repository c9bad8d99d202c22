// Package reflectx holds value helpers shared by the property and mapper packages.
package reflectx

import (
	"math"
	"reflect"
)

// Convert prepares value for storage in a location of type t.
//
// nil becomes the zero value of t. Assignable values pass through, numeric values
// convert between numeric kinds when t holds them exactly, and values of the same
// kind convert when Go allows it (named string types, named slices). Anything else
// reports false, including numbers that would overflow, change sign or lose a
// fraction.
func Convert(value any, t reflect.Type) (reflect.Value, bool) {
	if value == nil {
		return reflect.Zero(t), true
	}

	v := reflect.ValueOf(value)
	vt := v.Type()

	switch {
	case vt.AssignableTo(t):
		if vt == t {
			return v, true
		}

		out := reflect.New(t).Elem()
		out.Set(v)

		return out, true
	case IsNumeric(vt.Kind()) && IsNumeric(t.Kind()):
		return convertNumber(v, t)
	case vt.Kind() == t.Kind() && vt.ConvertibleTo(t):
		return v.Convert(t), true
	default:
		return reflect.Value{}, false
	}
}

// convertNumber converts between numeric kinds, reporting false when the result
// would not hold the same number.
func convertNumber(v reflect.Value, t reflect.Type) (reflect.Value, bool) {
	out := reflect.New(t).Elem()

	switch {
	case isInt(v.Kind()):
		n := v.Int()

		switch {
		case isInt(t.Kind()):
			if out.OverflowInt(n) {
				return reflect.Value{}, false
			}

			out.SetInt(n)
		case isUint(t.Kind()):
			if n < 0 || out.OverflowUint(uint64(n)) {
				return reflect.Value{}, false
			}

			out.SetUint(uint64(n))
		default:
			out.SetFloat(float64(n))

			f := out.Float()
			if f < -0x1p63 || f >= 0x1p63 || int64(f) != n {
				return reflect.Value{}, false
			}
		}
	case isUint(v.Kind()):
		u := v.Uint()

		switch {
		case isInt(t.Kind()):
			if u > math.MaxInt64 || out.OverflowInt(int64(u)) {
				return reflect.Value{}, false
			}

			out.SetInt(int64(u))
		case isUint(t.Kind()):
			if out.OverflowUint(u) {
				return reflect.Value{}, false
			}

			out.SetUint(u)
		default:
			out.SetFloat(float64(u))

			f := out.Float()
			if f >= 0x1p64 || uint64(f) != u {
				return reflect.Value{}, false
			}
		}
	default:
		f := v.Float()

		switch {
		case isInt(t.Kind()):
			if !isWhole(f) || f < -0x1p63 || f >= 0x1p63 || out.OverflowInt(int64(f)) {
				return reflect.Value{}, false
			}

			out.SetInt(int64(f))
		case isUint(t.Kind()):
			if !isWhole(f) || f < 0 || f >= 0x1p64 || out.OverflowUint(uint64(f)) {
				return reflect.Value{}, false
			}

			out.SetUint(uint64(f))
		default:
			if out.OverflowFloat(f) {
				return reflect.Value{}, false
			}

			out.SetFloat(f)
		}
	}

	return out, true
}

func isInt(k reflect.Kind) bool {
	return k >= reflect.Int && k <= reflect.Int64
}

func isUint(k reflect.Kind) bool {
	return k >= reflect.Uint && k <= reflect.Uint64
}

func isWhole(f float64) bool {
	return !math.IsInf(f, 0) && f == math.Trunc(f)
}

// IsNumeric reports whether k is an integer or floating-point kind.
func IsNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

// IsEmpty reports whether v carries no value: nil, a nil pointer or interface, an
// empty string, slice, map or array, or any other zero value.
func IsEmpty(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)

	switch rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() == 0
	case reflect.Ptr, reflect.Interface, reflect.Chan, reflect.Func:
		return rv.IsNil()
	default:
		return rv.IsZero()
	}
}

// TypeName returns the type of v for error context.
func TypeName(v any) string {
	if v == nil {
		return "nil"
	}

	return reflect.TypeOf(v).String()
}
