package property

import (
	"log/slog"
	"maps"
	"reflect"
	"slices"
	"strings"

	"github.com/ygrebnov/errorc"

	"modelkit/internal/reflectx"
	"modelkit/internal/structinfo"
)

const (
	getterPrefix = "Get"
	setterPrefix = "Set"
)

var errorType = reflect.TypeFor[error]()

// Accessor mediates key-based access to the fields of one record.
//
// Reads and writes go through a computed method (Get<Name> / Set<Name>) when the record
// declares one, and through the struct field otherwise. Direct field access is
// validated: private and undeclared keys fail with ErrInvalidField.
type Accessor struct {
	ptr  reflect.Value // *T
	elem reflect.Value // T
	info *structinfo.Struct
	cfg  config
}

// New binds an Accessor to record, which must be a non-nil pointer to a struct.
func New(record any, opts ...Option) (*Accessor, error) {
	rv := reflect.ValueOf(record)
	if !rv.IsValid() || rv.Kind() != reflect.Ptr || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return nil, errorc.With(
			ErrNotStructPtr,
			errorc.String(ErrorFieldRecordType, describeType(rv)),
		)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Accessor{
		ptr:  rv,
		elem: rv.Elem(),
		info: structinfo.Describe(rv.Elem().Type(), cfg.fields),
		cfg:  cfg,
	}, nil
}

// Record returns the bound record pointer.
func (a *Accessor) Record() any {
	return a.ptr.Interface()
}

// TypeName returns the record's type name used in error context.
func (a *Accessor) TypeName() string {
	return a.info.Type.String()
}

// Exists reports whether name can be read: a computed getter exists or name is a
// declared non-private field.
func (a *Accessor) Exists(name string) bool {
	if _, _, ok := a.getter(name); ok {
		return true
	}

	return a.Validate(name) == nil
}

// Get reads name. A computed getter takes precedence over the field of the same key.
func (a *Accessor) Get(name string) (any, error) {
	if m, method, ok := a.getter(name); ok {
		a.cfg.logger.Debug("computed getter",
			slog.String("record", a.TypeName()),
			slog.String("field", name),
			slog.String("method", method),
		)

		return callGetter(m)
	}

	f, err := a.field(name)
	if err != nil {
		return nil, err
	}

	return a.elem.FieldByIndex(f.Index).Interface(), nil
}

// Set writes value to name. A computed setter takes precedence over the field.
func (a *Accessor) Set(name string, value any) error {
	if m, method, ok := a.setter(name); ok {
		a.cfg.logger.Debug("computed setter",
			slog.String("record", a.TypeName()),
			slog.String("field", name),
			slog.String("method", method),
		)

		return a.callSetter(name, m, value)
	}

	f, err := a.field(name)
	if err != nil {
		return err
	}

	v, ok := reflectx.Convert(value, f.Type)
	if !ok {
		return a.invalidValue(name, f.Type, value)
	}

	a.elem.FieldByIndex(f.Index).Set(v)

	return nil
}

// Unset resets name to its zero value. Computed methods are not consulted.
func (a *Accessor) Unset(name string) error {
	f, err := a.field(name)
	if err != nil {
		return err
	}

	a.elem.FieldByIndex(f.Index).SetZero()

	return nil
}

// Validate returns ErrInvalidField if name is private or not a declared field.
func (a *Accessor) Validate(name string) error {
	_, err := a.field(name)
	return err
}

// GetMany reads every name in order. A repeated name keeps its first position.
func (a *Accessor) GetMany(names ...string) (*Values, error) {
	values := NewValues()

	for _, name := range names {
		v, err := a.Get(name)
		if err != nil {
			return nil, err
		}

		values.Put(name, v)
	}

	return values, nil
}

// SetMany writes values in insertion order and stops at the first error.
func (a *Accessor) SetMany(values *Values) error {
	for _, name := range values.Keys() {
		v, _ := values.Get(name)
		if err := a.Set(name, v); err != nil {
			return err
		}
	}

	return nil
}

// SetMap writes m in sorted key order and stops at the first error.
func (a *Accessor) SetMap(m map[string]any) error {
	for _, name := range slices.Sorted(maps.Keys(m)) {
		if err := a.Set(name, m[name]); err != nil {
			return err
		}
	}

	return nil
}

// FieldNames returns the declared non-private keys in declaration order.
func (a *Accessor) FieldNames() []string {
	return a.info.Keys()
}

// GetAs reads name and asserts the result to T.
func GetAs[T any](a *Accessor, name string) (T, error) {
	var zero T

	v, err := a.Get(name)
	if err != nil {
		return zero, err
	}

	if v == nil {
		return zero, nil
	}

	t, ok := v.(T)
	if !ok {
		return zero, errorc.With(
			ErrInvalidValue,
			errorc.String(ErrorFieldRecordType, a.TypeName()),
			errorc.String(ErrorFieldFieldName, name),
			errorc.String(ErrorFieldFieldType, reflect.TypeFor[T]().String()),
			errorc.String(ErrorFieldValueType, reflectx.TypeName(v)),
		)
	}

	return t, nil
}

func (a *Accessor) field(name string) (structinfo.Field, error) {
	prefix := a.cfg.fields.PrivatePrefix
	if prefix == "" {
		prefix = structinfo.DefaultPrivatePrefix
	}

	if strings.HasPrefix(name, prefix) {
		return structinfo.Field{}, a.invalidField(name, ReasonPrivate)
	}

	f, ok := a.info.Field(name)
	if !ok {
		return structinfo.Field{}, a.invalidField(name, ReasonUndeclared)
	}

	if f.Private {
		return structinfo.Field{}, a.invalidField(name, ReasonPrivate)
	}

	return f, nil
}

func (a *Accessor) invalidField(name, reason string) error {
	return errorc.With(
		ErrInvalidField,
		errorc.String(ErrorFieldFieldName, name),
		errorc.String(ErrorFieldRecordType, a.TypeName()),
		errorc.String(ErrorFieldReason, reason),
	)
}

func (a *Accessor) invalidValue(name string, want reflect.Type, value any) error {
	return errorc.With(
		ErrInvalidValue,
		errorc.String(ErrorFieldFieldName, name),
		errorc.String(ErrorFieldRecordType, a.TypeName()),
		errorc.String(ErrorFieldFieldType, want.String()),
		errorc.String(ErrorFieldValueType, reflectx.TypeName(value)),
	)
}

// methodNames lists candidate method names for name: the declared Go field name
// first, then name with its first letter upper-cased.
func (a *Accessor) methodNames(prefix, name string) []string {
	if name == "" {
		return nil
	}

	names := make([]string, 0, 2)

	if f, ok := a.info.Field(name); ok && !f.Private {
		names = append(names, prefix+f.GoName)
	}

	if n := prefix + structinfo.UpperFirst(name); !slices.Contains(names, n) {
		names = append(names, n)
	}

	return names
}

func (a *Accessor) getter(name string) (reflect.Value, string, bool) {
	for _, method := range a.methodNames(getterPrefix, name) {
		m := a.ptr.MethodByName(method)
		if m.IsValid() && isGetter(m.Type()) {
			return m, method, true
		}
	}

	return reflect.Value{}, "", false
}

func (a *Accessor) setter(name string) (reflect.Value, string, bool) {
	for _, method := range a.methodNames(setterPrefix, name) {
		m := a.ptr.MethodByName(method)
		if m.IsValid() && isSetter(m.Type()) {
			return m, method, true
		}
	}

	return reflect.Value{}, "", false
}

func (a *Accessor) callSetter(name string, m reflect.Value, value any) error {
	in := m.Type().In(0)

	v, ok := reflectx.Convert(value, in)
	if !ok {
		return a.invalidValue(name, in, value)
	}

	return trailingError(m.Call([]reflect.Value{v}))
}

func isGetter(t reflect.Type) bool {
	if t.NumIn() != 0 {
		return false
	}

	switch t.NumOut() {
	case 1:
		return true
	case 2:
		return t.Out(1) == errorType
	default:
		return false
	}
}

func isSetter(t reflect.Type) bool {
	return t.NumIn() == 1 && !t.IsVariadic()
}

func callGetter(m reflect.Value) (any, error) {
	out := m.Call(nil)
	if err := trailingError(out); err != nil {
		return nil, err
	}

	return out[0].Interface(), nil
}

// trailingError returns the last result when it is a non-nil error.
func trailingError(out []reflect.Value) error {
	if len(out) == 0 {
		return nil
	}

	last := out[len(out)-1]
	if last.Type() != errorType || last.IsNil() {
		return nil
	}

	return last.Interface().(error)
}

func describeType(rv reflect.Value) string {
	if !rv.IsValid() {
		return "nil"
	}

	return rv.Type().String()
}
