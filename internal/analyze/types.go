package analyze

import (
	"go/types"
	"reflect"
	"strings"

	"modelkit/internal/common"
	"modelkit/internal/structinfo"
)

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "modelkit/examples/accounts"
	Name    string // e.g., "Account"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// TypeKind represents the kind of a type.
type TypeKind int

const (
	TypeKindUnknown  TypeKind = iota
	TypeKindBasic             // int, string, bool, etc.
	TypeKindStruct            // struct type
	TypeKindPointer           // pointer to another type
	TypeKindSlice             // slice of another type
	TypeKindMap               // map type
	TypeKindAlias             // named type wrapping a non-struct type
	TypeKindExternal          // external/opaque type (e.g., time.Time)
)

// String returns a human-readable representation of the TypeKind.
func (k TypeKind) String() string {
	switch k {
	case TypeKindBasic:
		return "basic"
	case TypeKindStruct:
		return "struct"
	case TypeKindPointer:
		return "pointer"
	case TypeKindSlice:
		return "slice"
	case TypeKindMap:
		return "map"
	case TypeKindAlias:
		return "alias"
	case TypeKindExternal:
		return "external"
	default:
		return common.UnknownStr
	}
}

// TypeInfo describes a Go type in the type graph.
type TypeInfo struct {
	ID         TypeID      // Unique identifier (empty for unnamed types like *T or []T)
	Kind       TypeKind    // Kind of type
	Underlying *TypeInfo   // For named types, the underlying type
	ElemType   *TypeInfo   // For pointers, slices and maps, the element type
	Fields     []FieldInfo // For structs, the list of fields
	Methods    []string    // For named types, the hand-written method names of *T (sorted)
	GoType     types.Type  // The original go/types.Type
}

// IsNamed returns true if this type has a name (TypeID is set).
func (t *TypeInfo) IsNamed() bool {
	return t.ID.Name != ""
}

// HasMethod reports whether *T declares or promotes a method with the given name.
func (t *TypeInfo) HasMethod(name string) bool {
	for _, m := range t.Methods {
		if m == name {
			return true
		}
	}

	return false
}

// KeyedField is a field reachable from a record together with its record key.
type KeyedField struct {
	Key   string
	Field *FieldInfo
}

// KeyedFields lists the fields records address by key, in the order records see
// them: direct fields first, then fields promoted from embedded structs without a
// tag. Shallower fields shadow deeper ones with the same key.
func (t *TypeInfo) KeyedFields(tagName string) []KeyedField {
	var out []KeyedField

	seen := make(map[string]bool)
	level := []*TypeInfo{t}
	visited := map[*TypeInfo]bool{t: true}

	for len(level) > 0 {
		var next []*TypeInfo

		for _, ti := range level {
			for i := range ti.Fields {
				f := &ti.Fields[i]

				key, ok := f.Key(tagName)
				if !ok {
					continue
				}

				if f.Embedded && f.Type != nil && f.Type.Kind == TypeKindStruct && !f.HasTag(tagName) {
					if !visited[f.Type] {
						visited[f.Type] = true
						next = append(next, f.Type)
					}

					continue
				}

				if seen[key] {
					continue
				}

				seen[key] = true
				out = append(out, KeyedField{Key: key, Field: f})
			}
		}

		level = next
	}

	return out
}

// LookupKey finds the field addressed by a record key.
func (t *TypeInfo) LookupKey(key, tagName string) (*FieldInfo, bool) {
	for _, kf := range t.KeyedFields(tagName) {
		if kf.Key == key {
			return kf.Field, true
		}
	}

	return nil, false
}

// FieldInfo describes a struct field.
type FieldInfo struct {
	Name     string            // Go field name
	Exported bool              // Whether the field is exported
	Type     *TypeInfo         // Field type
	Tag      reflect.StructTag // Raw struct tag
	Embedded bool              // Whether the field is embedded (anonymous)
	Index    int               // Field index in the struct
}

// Key returns the record key of the field under the given tag name. ok is false when
// the tag excludes the field ("-").
func (f *FieldInfo) Key(tagName string) (key string, ok bool) {
	if tagName == "" {
		tagName = structinfo.DefaultTagName
	}

	tag := f.Tag.Get(tagName)
	if tag == "-" {
		return "", false
	}

	if i := strings.IndexByte(tag, ','); i >= 0 {
		tag = tag[:i]
	}

	if tag = strings.TrimSpace(tag); tag != "" {
		return tag, true
	}

	return structinfo.KeyFor(f.Name), true
}

// HasTag returns true if the field has the specified tag.
func (f *FieldInfo) HasTag(key string) bool {
	return f.Tag.Get(key) != ""
}

// TypeGraph holds all analyzed types from loaded packages.
type TypeGraph struct {
	// Types maps TypeID to TypeInfo for all named types.
	Types map[TypeID]*TypeInfo
	// Packages maps package paths to their package info.
	Packages map[string]*PackageInfo
}

// NewTypeGraph creates a new empty TypeGraph.
func NewTypeGraph() *TypeGraph {
	return &TypeGraph{
		Types:    make(map[TypeID]*TypeInfo),
		Packages: make(map[string]*PackageInfo),
	}
}

// GetType returns the TypeInfo for a given TypeID, or nil if not found.
func (g *TypeGraph) GetType(id TypeID) *TypeInfo {
	return g.Types[id]
}

// PackageInfo holds information about a loaded package.
type PackageInfo struct {
	Path  string   // Import path
	Name  string   // Package name
	Dir   string   // Directory of the package's Go files
	Types []TypeID // Named types defined in this package
}
