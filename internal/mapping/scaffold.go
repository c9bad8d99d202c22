package mapping

import (
	"fmt"
	"strings"

	"modelkit/internal/analyze"
	"modelkit/internal/common"
	"modelkit/internal/diagnostic"
	"modelkit/internal/match"
	"modelkit/internal/structinfo"
)

// Pairing thresholds for Scaffold.
const (
	scaffoldMinName = 0.6
	scaffoldMinGap  = 0.05
)

// Scaffold drafts a table pairing the public keys of primary with those of other by
// name similarity and type compatibility. Pairs copy cannot convert get placeholder
// transformations named parse<Key>/format<Key>. Primary keys without a confident
// partner are left out and reported as warnings.
func Scaffold(name string, primary, other *analyze.TypeInfo, cfg ValidateConfig) (*TableDef, *diagnostic.Diagnostics) {
	res := &diagnostic.Diagnostics{}
	if primary == nil || other == nil {
		res.AddError("scaffold_type_missing", "both primary and other types are required", name, "")
		return nil, res
	}

	if cfg.TagName == "" {
		cfg.TagName = structinfo.DefaultTagName
	}

	if cfg.PrivatePrefix == "" {
		cfg.PrivatePrefix = structinfo.DefaultPrivatePrefix
	}

	table := &TableDef{
		Name:    name,
		Primary: shortTypeID(primary.ID),
		Other:   shortTypeID(other.ID),
	}

	available := publicKeyTypes(other, cfg)

	for _, pk := range publicKeyTypes(primary, cfg) {
		best := match.Rank(pk, available).HighConfidence(scaffoldMinName, scaffoldMinGap)
		if best == nil {
			res.AddWarning("unmatched_field", "no confident partner on the other type", name, pk.Name)
			continue
		}

		def := FieldDef{Name: pk.Name, Other: best.Other.Name, Set: TransformCopy, Get: TransformCopy}

		if pk.Type != nil && best.Other.Type != nil {
			if !match.Score(best.Other.Type, pk.Type).Compatibility.Copyable() {
				def.Set = "parse" + structinfo.UpperFirst(pk.Name)
			}

			if !match.Score(pk.Type, best.Other.Type).Compatibility.Copyable() {
				def.Get = "format" + structinfo.UpperFirst(pk.Name)
			}
		}

		if def.Set != TransformCopy || def.Get != TransformCopy {
			res.AddWarning("needs_transform",
				fmt.Sprintf("%s; implement the placeholder transformations", best.Compat), name, pk.Name)
		}

		table.Fields = append(table.Fields, def)
		available = removeKey(available, best.Other.Name)
	}

	return table, res
}

func publicKeyTypes(t *analyze.TypeInfo, cfg ValidateConfig) []match.Key {
	var keys []match.Key

	for _, kf := range t.KeyedFields(cfg.TagName) {
		if strings.HasPrefix(kf.Key, cfg.PrivatePrefix) {
			continue
		}

		k := match.Key{Name: kf.Key}
		if kf.Field.Type != nil {
			k.Type = kf.Field.Type.GoType
		}

		keys = append(keys, k)
	}

	return keys
}

func removeKey(keys []match.Key, name string) []match.Key {
	out := keys[:0:0]

	for _, k := range keys {
		if k.Name != name {
			out = append(out, k)
		}
	}

	return out
}

// shortTypeID renders "modelkit/examples/accounts.Account" as "accounts.Account",
// which ResolveTypeID accepts back.
func shortTypeID(id analyze.TypeID) string {
	if id.PkgPath == "" {
		return id.Name
	}

	return common.PkgAlias(id.PkgPath) + "." + id.Name
}
