package analyze

import (
	"sort"
	"strings"
)

// TypePath builds a readable path string for a record key.
// Examples:
//   - "Account" for the record itself
//   - "Account.createdBy" for a key
//   - "Order.lines[]" for a slice key
//   - "Order.lines[].sku" for a key within slice elements
type TypePath struct {
	parts []string
}

// NewTypePath creates a new TypePath from a root type name.
func NewTypePath(root string) *TypePath {
	return &TypePath{
		parts: []string{root},
	}
}

// Key appends a record key to the path.
func (p *TypePath) Key(key string) *TypePath {
	return &TypePath{
		parts: append(append([]string{}, p.parts...), key),
	}
}

// Slice appends a slice indicator "[]" to the path.
func (p *TypePath) Slice() *TypePath {
	return p.suffix("[]")
}

// Map appends a map indicator "{}" to the path.
func (p *TypePath) Map() *TypePath {
	return p.suffix("{}")
}

func (p *TypePath) suffix(s string) *TypePath {
	if len(p.parts) == 0 {
		return &TypePath{parts: []string{s}}
	}

	newParts := make([]string, len(p.parts))
	copy(newParts, p.parts)
	newParts[len(newParts)-1] += s

	return &TypePath{parts: newParts}
}

// String returns the full path string.
func (p *TypePath) String() string {
	return strings.Join(p.parts, ".")
}

// TypeStringer renders types and key paths for diagnostics and dumps.
type TypeStringer struct {
	tagName string
}

// NewTypeStringer creates a TypeStringer deriving keys from tagName.
func NewTypeStringer(tagName string) *TypeStringer {
	return &TypeStringer{tagName: tagName}
}

// TypeString returns a human-readable string representation of a TypeInfo.
func (s *TypeStringer) TypeString(t *TypeInfo) string {
	if t == nil {
		return "<nil>"
	}

	switch t.Kind {
	case TypeKindStruct, TypeKindAlias:
		if t.IsNamed() {
			return t.ID.Name
		}

		if t.Kind == TypeKindAlias {
			return s.TypeString(t.Underlying)
		}

		return "struct{...}"

	case TypeKindPointer:
		return "*" + s.elemString(t)

	case TypeKindSlice:
		return "[]" + s.elemString(t)

	case TypeKindMap:
		return "map[...]" + s.elemString(t)

	case TypeKindExternal:
		if t.IsNamed() {
			return t.ID.String()
		}

		return t.GoType.String()

	default:
		if t.GoType == nil {
			return "<unknown>"
		}

		return t.GoType.String()
	}
}

func (s *TypeStringer) elemString(t *TypeInfo) string {
	if t.ElemType == nil {
		return "<unknown>"
	}

	return s.TypeString(t.ElemType)
}

// KeyPath is one entry of KeyPaths.
type KeyPath struct {
	Path  string
	Field *FieldInfo
}

// KeyPaths lists the key paths reachable from a struct record down to maxDepth levels
// of nesting, sorted by path. Keys of struct, pointer-to-struct, slice and map fields
// are followed into their element records.
func (s *TypeStringer) KeyPaths(root *TypeInfo, maxDepth int) []KeyPath {
	if root == nil || root.Kind != TypeKindStruct {
		return nil
	}

	rootName := root.ID.Name
	if rootName == "" {
		rootName = "root"
	}

	var out []KeyPath

	s.walk(root, NewTypePath(rootName), &out, 0, maxDepth, map[*TypeInfo]bool{root: true})

	sort.Slice(out, func(i, j int) bool {
		return out[i].Path < out[j].Path
	})

	return out
}

func (s *TypeStringer) walk(t *TypeInfo, path *TypePath, out *[]KeyPath, depth, maxDepth int, active map[*TypeInfo]bool) {
	for _, kf := range t.KeyedFields(s.tagName) {
		keyPath := path.Key(kf.Key)
		*out = append(*out, KeyPath{Path: keyPath.String(), Field: kf.Field})

		if depth < maxDepth {
			s.descend(kf.Field.Type, keyPath, out, depth+1, maxDepth, active)
		}
	}
}

func (s *TypeStringer) descend(t *TypeInfo, path *TypePath, out *[]KeyPath, depth, maxDepth int, active map[*TypeInfo]bool) {
	if t == nil {
		return
	}

	switch t.Kind {
	case TypeKindStruct:
		// recursive types stop at their first repetition
		if active[t] {
			return
		}

		active[t] = true
		s.walk(t, path, out, depth, maxDepth, active)
		delete(active, t)

	case TypeKindPointer:
		s.descend(t.ElemType, path, out, depth, maxDepth, active)

	case TypeKindSlice:
		s.descend(t.ElemType, path.Slice(), out, depth, maxDepth, active)

	case TypeKindMap:
		s.descend(t.ElemType, path.Map(), out, depth, maxDepth, active)

	case TypeKindBasic, TypeKindAlias, TypeKindExternal, TypeKindUnknown:
		// Terminal types - nothing to recurse into
	}
}
