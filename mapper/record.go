package mapper

import (
	"reflect"
	"slices"

	"github.com/ygrebnov/errorc"

	"modelkit/internal/reflectx"
	"modelkit/internal/structinfo"
)

// Record is the uniform view of a value Copy reads from and writes to.
type Record interface {
	// Keys lists the readable keys: sorted map keys or non-private struct keys in
	// declaration order.
	Keys() []string
	Has(key string) bool
	Get(key string) (any, error)
	Set(key string, value any) error
	// Unwrap returns the underlying map or struct pointer.
	Unwrap() any
}

// AsRecord wraps v as a Record. v may already be a Record, a map with string keys, or
// a non-nil pointer to a struct. A nil map reads as empty and rejects writes.
func AsRecord(v any) (Record, error) {
	return asRecord(v, structinfo.Options{})
}

func asRecord(v any, opts structinfo.Options) (Record, error) {
	if r, ok := v.(Record); ok {
		return r, nil
	}

	rv := reflect.ValueOf(v)

	switch {
	case !rv.IsValid():
	case rv.Kind() == reflect.Map && rv.Type().Key().Kind() == reflect.String:
		return &MapRecord{m: rv}, nil
	case rv.Kind() == reflect.Ptr && !rv.IsNil() && rv.Elem().Kind() == reflect.Struct:
		return &StructRecord{
			ptr:  rv,
			info: structinfo.Describe(rv.Elem().Type(), opts),
		}, nil
	}

	return nil, errorc.With(
		ErrInvalidArgument,
		errorc.String(ErrorFieldRecordType, reflectx.TypeName(v)),
	)
}

// MapRecord is a Record over a map with string keys. Its key set is open: Set adds
// keys that are not present yet.
type MapRecord struct {
	m reflect.Value
}

// NewMapRecord wraps m, which must be a map with string keys.
func NewMapRecord(m any) (*MapRecord, error) {
	r, err := AsRecord(m)
	if err != nil {
		return nil, err
	}

	mr, ok := r.(*MapRecord)
	if !ok {
		return nil, errorc.With(
			ErrInvalidArgument,
			errorc.String(ErrorFieldRecordType, reflectx.TypeName(m)),
		)
	}

	return mr, nil
}

func (r *MapRecord) Keys() []string {
	keys := make([]string, 0, r.m.Len())
	for _, k := range r.m.MapKeys() {
		keys = append(keys, k.String())
	}

	slices.Sort(keys)

	return keys
}

func (r *MapRecord) Has(key string) bool {
	return r.m.MapIndex(r.key(key)).IsValid()
}

// Get returns the value under key, or nil when the key is absent.
func (r *MapRecord) Get(key string) (any, error) {
	v := r.m.MapIndex(r.key(key))
	if !v.IsValid() {
		return nil, nil
	}

	return v.Interface(), nil
}

func (r *MapRecord) Set(key string, value any) error {
	if r.m.IsNil() {
		return errorc.With(
			ErrNilMap,
			errorc.String(ErrorFieldRecordType, r.m.Type().String()),
			errorc.String(ErrorFieldFieldName, key),
		)
	}

	elem := r.m.Type().Elem()

	v, ok := reflectx.Convert(value, elem)
	if !ok {
		return errorc.With(
			ErrInvalidValue,
			errorc.String(ErrorFieldRecordType, r.m.Type().String()),
			errorc.String(ErrorFieldFieldName, key),
			errorc.String(ErrorFieldFieldType, elem.String()),
			errorc.String(ErrorFieldValueType, reflectx.TypeName(value)),
		)
	}

	r.m.SetMapIndex(r.key(key), v)

	return nil
}

func (r *MapRecord) Unwrap() any {
	return r.m.Interface()
}

// key converts key to the map's key type, which may be a named string type.
func (r *MapRecord) key(key string) reflect.Value {
	return reflect.ValueOf(key).Convert(r.m.Type().Key())
}

// StructRecord is a Record over a pointer to a struct. Only non-private declared
// fields are visible; the key set is fixed by the struct type.
type StructRecord struct {
	ptr  reflect.Value
	info *structinfo.Struct
}

func (r *StructRecord) Keys() []string {
	return r.info.Keys()
}

func (r *StructRecord) Has(key string) bool {
	_, ok := r.field(key)
	return ok
}

func (r *StructRecord) Get(key string) (any, error) {
	f, ok := r.field(key)
	if !ok {
		return nil, r.unknownField(key)
	}

	return r.ptr.Elem().FieldByIndex(f.Index).Interface(), nil
}

func (r *StructRecord) Set(key string, value any) error {
	f, ok := r.field(key)
	if !ok {
		return r.unknownField(key)
	}

	v, ok := reflectx.Convert(value, f.Type)
	if !ok {
		return errorc.With(
			ErrInvalidValue,
			errorc.String(ErrorFieldRecordType, r.info.Type.String()),
			errorc.String(ErrorFieldFieldName, key),
			errorc.String(ErrorFieldFieldType, f.Type.String()),
			errorc.String(ErrorFieldValueType, reflectx.TypeName(value)),
		)
	}

	r.ptr.Elem().FieldByIndex(f.Index).Set(v)

	return nil
}

func (r *StructRecord) Unwrap() any {
	return r.ptr.Interface()
}

func (r *StructRecord) field(key string) (structinfo.Field, bool) {
	f, ok := r.info.Field(key)
	if !ok || f.Private {
		return structinfo.Field{}, false
	}

	return f, true
}

func (r *StructRecord) unknownField(key string) error {
	return errorc.With(
		ErrUnknownField,
		errorc.String(ErrorFieldRecordType, r.info.Type.String()),
		errorc.String(ErrorFieldFieldName, key),
	)
}
