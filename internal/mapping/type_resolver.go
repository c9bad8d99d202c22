package mapping

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"modelkit/internal/analyze"
	"modelkit/internal/common"
)

// Type reference resolution errors.
var (
	ErrTypeNotFound  = errors.New("type not found")
	ErrAmbiguousType = errors.New("type reference is ambiguous")
)

// ResolveTypeID resolves a type reference as written in a mapping file:
//   - "modelkit/examples/accounts.Account" (full import path)
//   - "accounts.Account" (trailing path elements)
//   - "Account" (name only)
//
// A full path wins outright. Shorter forms must match exactly one type of the graph,
// otherwise ErrAmbiguousType names the candidates.
func ResolveTypeID(ref string, graph *analyze.TypeGraph) (*analyze.TypeInfo, error) {
	if graph == nil || ref == "" {
		return nil, fmt.Errorf("%w: %q", ErrTypeNotFound, ref)
	}

	pkgRef, name := "", ref
	if i := strings.LastIndex(ref, "."); i >= 0 {
		pkgRef, name = ref[:i], ref[i+1:]
		if pkgRef == "" || name == "" {
			return nil, fmt.Errorf("%w: %q", ErrTypeNotFound, ref)
		}

		if t := graph.GetType(analyze.TypeID{PkgPath: pkgRef, Name: name}); t != nil {
			return t, nil
		}
	}

	var matches []analyze.TypeID

	for id := range graph.Types {
		if id.Name == name && pkgMatches(id.PkgPath, pkgRef) {
			matches = append(matches, id)
		}
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("%w: %q", ErrTypeNotFound, ref)
	case 1:
		return graph.Types[matches[0]], nil
	}

	sort.Slice(matches, func(i, j int) bool {
		return matches[i].PkgPath < matches[j].PkgPath
	})

	names := make([]string, len(matches))
	for i, id := range matches {
		names[i] = id.String()
	}

	return nil, fmt.Errorf("%w: %q matches %s", ErrAmbiguousType, ref, strings.Join(names, ", "))
}

// pkgMatches reports whether pkgRef names pkgPath by its trailing path elements or its
// package name. An empty pkgRef matches any package.
func pkgMatches(pkgPath, pkgRef string) bool {
	return pkgRef == "" || pkgPath == pkgRef || strings.HasSuffix(pkgPath, "/"+pkgRef) ||
		common.PkgAlias(pkgPath) == pkgRef
}
