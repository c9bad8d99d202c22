// Package structinfo describes the keyed fields of struct types.
//
// A struct field is addressed by a key: the value of its tag (default "prop") when
// present, otherwise the Go field name with its leading initialism lower-cased
// ("Name" -> "name", "ID" -> "id", "URLPath" -> "urlPath"). A tag of "-" removes the
// field. Fields of embedded non-pointer structs are promoted; shallower fields win on
// key collisions.
//
// Descriptions are computed once per (type, options) pair and cached.
package structinfo

import (
	"reflect"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"
)

// Defaults used when Options leaves a value empty.
const (
	DefaultTagName       = "prop"
	DefaultPrivatePrefix = "_"
)

// Options controls how keys are derived.
type Options struct {
	TagName       string
	PrivatePrefix string
}

func (o Options) normalized() Options {
	if o.TagName == "" {
		o.TagName = DefaultTagName
	}

	if o.PrivatePrefix == "" {
		o.PrivatePrefix = DefaultPrivatePrefix
	}

	return o
}

// Field describes one keyed struct field.
type Field struct {
	Key     string
	GoName  string
	Index   []int
	Type    reflect.Type
	Private bool // key carries the private prefix or the Go field is unexported
}

// Struct is the cached description of a struct type.
type Struct struct {
	Type   reflect.Type
	Fields []Field // declaration order, private fields included

	byKey    map[string]int
	byGoName map[string]int
}

type cacheKey struct {
	t    reflect.Type
	opts Options
}

var cache sync.Map // map[cacheKey]*Struct

// Describe returns the description of struct type t. It panics if t is not a struct.
func Describe(t reflect.Type, opts Options) *Struct {
	if t.Kind() != reflect.Struct {
		panic("structinfo: Describe called with non-struct type " + t.String())
	}

	opts = opts.normalized()
	key := cacheKey{t: t, opts: opts}

	if v, ok := cache.Load(key); ok {
		return v.(*Struct)
	}

	s := build(t, opts)
	v, _ := cache.LoadOrStore(key, s)

	return v.(*Struct)
}

func build(t reflect.Type, opts Options) *Struct {
	s := &Struct{
		Type:     t,
		byKey:    make(map[string]int),
		byGoName: make(map[string]int),
	}

	type level struct {
		t     reflect.Type
		index []int
	}

	current := []level{{t: t}}
	visited := map[reflect.Type]bool{t: true}

	for len(current) > 0 {
		var next []level

		for _, lv := range current {
			for i := range lv.t.NumField() {
				sf := lv.t.Field(i)
				index := append(append([]int{}, lv.index...), i)

				tag, hasTag := sf.Tag.Lookup(opts.TagName)
				if tag == "-" {
					continue
				}

				if sf.Anonymous && !hasTag && sf.Type.Kind() == reflect.Struct {
					if !visited[sf.Type] {
						visited[sf.Type] = true
						next = append(next, level{t: sf.Type, index: index})
					}

					continue
				}

				key := tagKey(tag)
				if key == "" {
					key = KeyFor(sf.Name)
				}

				if _, exists := s.byKey[key]; exists {
					continue
				}

				s.byKey[key] = len(s.Fields)
				s.byGoName[sf.Name] = len(s.Fields)
				s.Fields = append(s.Fields, Field{
					Key:     key,
					GoName:  sf.Name,
					Index:   index,
					Type:    sf.Type,
					Private: !sf.IsExported() || strings.HasPrefix(key, opts.PrivatePrefix),
				})
			}
		}

		current = next
	}

	return s
}

func tagKey(tag string) string {
	if i := strings.IndexByte(tag, ','); i >= 0 {
		tag = tag[:i]
	}

	return strings.TrimSpace(tag)
}

// Field returns the field registered under key.
func (s *Struct) Field(key string) (Field, bool) {
	i, ok := s.byKey[key]
	if !ok {
		return Field{}, false
	}

	return s.Fields[i], true
}

// FieldByGoName returns the field declared with the given Go name.
func (s *Struct) FieldByGoName(name string) (Field, bool) {
	i, ok := s.byGoName[name]
	if !ok {
		return Field{}, false
	}

	return s.Fields[i], true
}

// Keys returns the non-private keys in declaration order.
func (s *Struct) Keys() []string {
	keys := make([]string, 0, len(s.Fields))

	for _, f := range s.Fields {
		if !f.Private {
			keys = append(keys, f.Key)
		}
	}

	return keys
}

// KeyFor derives a key from a Go field name.
func KeyFor(name string) string {
	runes := []rune(name)

	n := 0
	for n < len(runes) && unicode.IsUpper(runes[n]) {
		n++
	}

	switch {
	case n == 0:
		return name
	case n == len(runes):
		return strings.ToLower(name)
	case n > 1:
		// the last capital starts the next word
		n--
	}

	for i := range n {
		runes[i] = unicode.ToLower(runes[i])
	}

	return string(runes)
}

// LowerFirst lower-cases the first rune of s.
func LowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}

	return string(unicode.ToLower(r)) + s[size:]
}

// UpperFirst upper-cases the first rune of s.
func UpperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}

	return string(unicode.ToUpper(r)) + s[size:]
}
