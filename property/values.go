package property

import "slices"

// Values is an insertion-ordered name to value collection.
// Putting an existing name replaces its value and keeps its position.
type Values struct {
	keys []string
	m    map[string]any
}

// NewValues returns an empty collection.
func NewValues() *Values {
	return &Values{m: make(map[string]any)}
}

// Put sets name to v.
func (v *Values) Put(name string, value any) *Values {
	if _, ok := v.m[name]; !ok {
		v.keys = append(v.keys, name)
	}

	v.m[name] = value

	return v
}

// Get returns the value stored under name.
func (v *Values) Get(name string) (any, bool) {
	value, ok := v.m[name]
	return value, ok
}

// Keys returns the names in insertion order.
func (v *Values) Keys() []string {
	return slices.Clone(v.keys)
}

// Len returns the number of names.
func (v *Values) Len() int {
	return len(v.keys)
}

// Map returns an unordered copy.
func (v *Values) Map() map[string]any {
	m := make(map[string]any, len(v.m))
	for k, value := range v.m {
		m[k] = value
	}

	return m
}
