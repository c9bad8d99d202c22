package match

import (
	"fmt"
	"go/types"

	"modelkit/internal/common"
)

// Compatibility grades how a value of one Go type can be copied into another by
// the mapper's copy transformation.
type Compatibility int

const (
	// Incompatible means copy fails at run time; a custom transformation is required.
	Incompatible Compatibility = iota
	// NeedsTransform means the shapes relate (pointer lift, element conversion,
	// struct to struct) but copy alone cannot bridge them.
	NeedsTransform
	// Convertible means copy converts the value (numeric kinds, named types).
	Convertible
	// Assignable means copy stores the value as is.
	Assignable
	// Identical means both types are the same.
	Identical
)

// String returns a human-readable name for the compatibility level.
func (c Compatibility) String() string {
	switch c {
	case Identical:
		return "identical"
	case Assignable:
		return "assignable"
	case Convertible:
		return "convertible"
	case NeedsTransform:
		return "needs_transform"
	case Incompatible:
		return "incompatible"
	default:
		return common.UnknownStr
	}
}

// Copyable reports whether copy handles the pair without a custom transformation.
func (c Compatibility) Copyable() bool {
	return c >= Convertible
}

// Result explains a compatibility verdict.
type Result struct {
	Compatibility Compatibility
	From          string
	To            string
}

// String renders the verdict, e.g. "string -> int64: incompatible".
func (r Result) String() string {
	return fmt.Sprintf("%s -> %s: %s", r.From, r.To, r.Compatibility)
}

// Score grades copying a value of type from into a location of type to, following
// the conversion rules the mapper applies at run time.
func Score(from, to types.Type) Result {
	res := Result{From: from.String(), To: to.String()}

	switch {
	case types.Identical(from, to):
		res.Compatibility = Identical
	case types.AssignableTo(from, to):
		res.Compatibility = Assignable
	case isNumeric(from) && isNumeric(to):
		res.Compatibility = Convertible
	case sameKind(from, to) && types.ConvertibleTo(from, to):
		res.Compatibility = Convertible
	case related(from, to):
		res.Compatibility = NeedsTransform
	default:
		res.Compatibility = Incompatible
	}

	return res
}

// ScoreBothWays grades a copy/copy mapping: the weaker of the two directions.
func ScoreBothWays(a, b types.Type) Result {
	forward, backward := Score(a, b), Score(b, a)
	if backward.Compatibility < forward.Compatibility {
		return backward
	}

	return forward
}

func related(from, to types.Type) bool {
	if p, ok := from.(*types.Pointer); ok && Score(p.Elem(), to).Compatibility.Copyable() {
		return true
	}

	if p, ok := to.(*types.Pointer); ok && Score(from, p.Elem()).Compatibility.Copyable() {
		return true
	}

	fs, fromSlice := from.Underlying().(*types.Slice)
	ts, toSlice := to.Underlying().(*types.Slice)

	if fromSlice && toSlice {
		return Score(fs.Elem(), ts.Elem()).Compatibility >= NeedsTransform
	}

	_, fromStruct := from.Underlying().(*types.Struct)
	_, toStruct := to.Underlying().(*types.Struct)

	return fromStruct && toStruct
}

func isNumeric(t types.Type) bool {
	b, ok := t.Underlying().(*types.Basic)
	return ok && b.Info()&types.IsNumeric != 0 && b.Info()&types.IsComplex == 0
}

// kindClass buckets types the way reflect.Kind does for the conversions the mapper
// allows.
func kindClass(t types.Type) string {
	switch u := t.Underlying().(type) {
	case *types.Basic:
		return "basic:" + u.Name()
	case *types.Slice:
		return "slice"
	case *types.Array:
		return "array"
	case *types.Map:
		return "map"
	case *types.Pointer:
		return "pointer"
	case *types.Struct:
		return "struct"
	case *types.Interface:
		return "interface"
	case *types.Signature:
		return "func"
	case *types.Chan:
		return "chan"
	default:
		return common.UnknownStr
	}
}

func sameKind(a, b types.Type) bool {
	return kindClass(a) == kindClass(b)
}
