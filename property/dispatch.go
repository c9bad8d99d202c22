package property

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/ygrebnov/errorc"

	"modelkit/internal/reflectx"
	"modelkit/internal/structinfo"
)

// Call invokes method on the record by name.
//
// A method the record declares is invoked directly. Otherwise Get<Name>() and
// get<Name>() read the property and Set<Name>(v) and set<Name>(v) write it, returning
// the record itself so calls can be chained. Anything else fails with
// ErrUnknownOperation.
func (a *Accessor) Call(method string, args ...any) (any, error) {
	if m := a.ptr.MethodByName(method); m.IsValid() {
		return a.invoke(method, m, args)
	}

	if rest, ok := cutAccessorPrefix(method, getterPrefix); ok && len(args) == 0 {
		return a.Get(a.propertyName(rest))
	}

	if rest, ok := cutAccessorPrefix(method, setterPrefix); ok && len(args) == 1 {
		if err := a.Set(a.propertyName(rest), args[0]); err != nil {
			return nil, err
		}

		return a.Record(), nil
	}

	return nil, a.unknownOperation(method, "")
}

// propertyName maps the suffix of an accessor-style method to a key: the key of the
// field declared with that Go name, otherwise the suffix with its first letter
// lower-cased.
func (a *Accessor) propertyName(suffix string) string {
	if f, ok := a.info.FieldByGoName(suffix); ok {
		return f.Key
	}

	return structinfo.LowerFirst(suffix)
}

func (a *Accessor) invoke(method string, m reflect.Value, args []any) (any, error) {
	t := m.Type()

	if (!t.IsVariadic() && len(args) != t.NumIn()) || (t.IsVariadic() && len(args) < t.NumIn()-1) {
		return nil, a.unknownOperation(method, fmt.Sprintf("expects %d arguments, got %d", t.NumIn(), len(args)))
	}

	in := make([]reflect.Value, len(args))

	for i, arg := range args {
		var want reflect.Type

		switch {
		case t.IsVariadic() && i >= t.NumIn()-1:
			want = t.In(t.NumIn() - 1).Elem()
		default:
			want = t.In(i)
		}

		v, ok := reflectx.Convert(arg, want)
		if !ok {
			return nil, errorc.With(
				ErrInvalidValue,
				errorc.String(ErrorFieldRecordType, a.TypeName()),
				errorc.String(ErrorFieldOperation, method),
				errorc.String(ErrorFieldFieldType, want.String()),
				errorc.String(ErrorFieldValueType, reflectx.TypeName(arg)),
			)
		}

		in[i] = v
	}

	out := m.Call(in)
	if err := trailingError(out); err != nil {
		return nil, err
	}

	if len(out) == 0 || (len(out) == 1 && out[0].Type() == errorType) {
		return nil, nil
	}

	return out[0].Interface(), nil
}

func (a *Accessor) unknownOperation(method, reason string) error {
	fields := []errorc.Field{
		errorc.String(ErrorFieldRecordType, a.TypeName()),
		errorc.String(ErrorFieldOperation, method),
	}

	if reason != "" {
		fields = append(fields, errorc.String(ErrorFieldReason, reason))
	}

	return errorc.With(ErrUnknownOperation, fields...)
}

// cutAccessorPrefix accepts both the exported ("GetName") and the lower-case
// ("getName") spelling. The suffix must be non-empty.
func cutAccessorPrefix(method, prefix string) (string, bool) {
	for _, p := range []string{prefix, strings.ToLower(prefix)} {
		if rest, ok := strings.CutPrefix(method, p); ok && rest != "" {
			return rest, true
		}
	}

	return "", false
}
