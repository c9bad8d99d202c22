package mapping

import (
	"errors"
	"fmt"
	"strings"

	"modelkit/internal/analyze"
	"modelkit/internal/diagnostic"
	"modelkit/internal/match"
)

const maxSuggestions = 3

// typeChecker checks one table against the primary and other Go types it names.
type typeChecker struct {
	res     *diagnostic.Diagnostics
	table   *TableDef
	cfg     ValidateConfig
	primary *analyze.TypeInfo
	other   *analyze.TypeInfo
}

func newTypeChecker(
	res *diagnostic.Diagnostics,
	graph *analyze.TypeGraph,
	t *TableDef,
	cfg ValidateConfig,
) *typeChecker {
	c := &typeChecker{res: res, table: t, cfg: cfg}
	c.primary = c.resolve("primary", t.Primary, graph)
	c.other = c.resolve("other", t.Other, graph)

	return c
}

func (c *typeChecker) resolve(role, typeID string, graph *analyze.TypeGraph) *analyze.TypeInfo {
	if typeID == "" {
		return nil
	}

	info, err := ResolveTypeID(typeID, graph)
	if errors.Is(err, ErrAmbiguousType) {
		c.res.AddError(role+"_type_ambiguous", err.Error(), c.table.Name, "")
		return nil
	}

	if err != nil {
		c.res.AddError(role+"_type_not_found", fmt.Sprintf("%s type %q not found", role, typeID), c.table.Name, "")
		return nil
	}

	if info.Kind != analyze.TypeKindStruct {
		c.res.AddError(role+"_type_not_struct",
			fmt.Sprintf("%s type %q is a %s, not a struct", role, typeID, info.Kind), c.table.Name, "")

		return nil
	}

	return info
}

func (c *typeChecker) check() {
	for _, def := range c.table.Fields {
		if def.Name == "" {
			continue
		}

		pf := c.lookup("primary", c.primary, def.Name, def.Name)
		of := c.lookup("other", c.other, def.Other, def.Name)

		if pf != nil && of != nil {
			c.checkCopy(def, pf, of)
		}
	}
}

// lookup finds key on the record type and reports missing or private keys.
// It returns nil when the type is unknown or the key is unusable.
func (c *typeChecker) lookup(role string, t *analyze.TypeInfo, key, fieldName string) *analyze.FieldInfo {
	if t == nil || key == "" {
		return nil
	}

	if strings.HasPrefix(key, c.cfg.PrivatePrefix) {
		c.res.AddError("private_"+role+"_field",
			fmt.Sprintf("%s key %q is private to %s", role, key, t.ID.Name), c.table.Name, fieldName)

		return nil
	}

	f, ok := t.LookupKey(key, c.cfg.TagName)
	if !ok {
		c.res.AddError("unknown_"+role+"_field",
			fmt.Sprintf("%s has no key %q", t.ID.Name, key), c.table.Name, fieldName,
			match.Suggest(key, c.publicKeys(t), maxSuggestions)...)

		return nil
	}

	return f
}

func (c *typeChecker) publicKeys(t *analyze.TypeInfo) []string {
	var keys []string

	for _, kf := range t.KeyedFields(c.cfg.TagName) {
		if !strings.HasPrefix(kf.Key, c.cfg.PrivatePrefix) {
			keys = append(keys, kf.Key)
		}
	}

	return keys
}

// checkCopy warns when a copy direction cannot convert between the field types.
func (c *typeChecker) checkCopy(def FieldDef, pf, of *analyze.FieldInfo) {
	if pf.Type == nil || of.Type == nil || pf.Type.GoType == nil || of.Type.GoType == nil {
		return
	}

	if orCopy(def.Set) == TransformCopy {
		if r := match.Score(of.Type.GoType, pf.Type.GoType); !r.Compatibility.Copyable() {
			c.res.AddWarning("copy_needs_transform",
				fmt.Sprintf("set copies %s; use a transformation", r), c.table.Name, def.Name)
		}
	}

	if orCopy(def.Get) == TransformCopy {
		if r := match.Score(pf.Type.GoType, of.Type.GoType); !r.Compatibility.Copyable() {
			c.res.AddWarning("copy_needs_transform",
				fmt.Sprintf("get copies %s; use a transformation", r), c.table.Name, def.Name)
		}
	}
}
