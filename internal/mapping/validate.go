package mapping

import (
	"fmt"

	"modelkit/internal/analyze"
	"modelkit/internal/diagnostic"
	"modelkit/internal/structinfo"
)

// ValidateConfig controls how mapping files are checked against Go types.
type ValidateConfig struct {
	// TagName is the struct tag that overrides record keys.
	TagName string
	// PrivatePrefix marks keys records refuse to expose.
	PrivatePrefix string
}

// DefaultValidateConfig returns the key conventions records use by default.
func DefaultValidateConfig() ValidateConfig {
	return ValidateConfig{
		TagName:       structinfo.DefaultTagName,
		PrivatePrefix: structinfo.DefaultPrivatePrefix,
	}
}

// Validate checks a mapping file with the default key conventions. See ValidateWith.
func Validate(f *File, graph *analyze.TypeGraph) *diagnostic.Diagnostics {
	return ValidateWith(f, graph, DefaultValidateConfig())
}

// ValidateWith checks a mapping file. Structural checks always run; when graph is
// not nil, tables naming primary/other types are also checked against those types:
// every field must exist on both sides and copy must be able to convert between
// the field types.
func ValidateWith(f *File, graph *analyze.TypeGraph, cfg ValidateConfig) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError("mapping_is_nil", "mapping file is nil", "", "")
		return res
	}

	if cfg.TagName == "" {
		cfg.TagName = structinfo.DefaultTagName
	}

	if cfg.PrivatePrefix == "" {
		cfg.PrivatePrefix = structinfo.DefaultPrivatePrefix
	}

	declared := validateTransformDefs(res, f)
	used := make(map[string]bool)
	seenTables := make(map[string]bool)

	for i := range f.Tables {
		t := &f.Tables[i]

		switch {
		case t.Name == "":
			res.AddError("missing_table_name", fmt.Sprintf("table #%d has no name", i+1), "", "")
		case seenTables[t.Name]:
			res.AddError("duplicate_table", fmt.Sprintf("duplicate table %q", t.Name), t.Name, "")
		default:
			seenTables[t.Name] = true
		}

		validateFields(res, t)

		for _, name := range t.TransformNames() {
			used[name] = true

			if !IsBuiltinTransform(name) && !declared[name] {
				res.AddWarning("undeclared_transform",
					fmt.Sprintf("transformation %q is not declared under transforms", name), t.Name, "")
			}
		}

		if graph != nil {
			newTypeChecker(res, graph, t, cfg).check()
		}
	}

	for _, def := range f.Transforms {
		if def.Name != "" && !used[def.Name] {
			res.AddInfo("unused_transform",
				fmt.Sprintf("transformation %q is declared but never used", def.Name), "", def.Name)
		}
	}

	return res
}

func validateTransformDefs(res *diagnostic.Diagnostics, f *File) map[string]bool {
	declared := make(map[string]bool)

	for i, def := range f.Transforms {
		switch {
		case def.Name == "":
			res.AddError("missing_transform_name", fmt.Sprintf("transformation #%d has no name", i+1), "", "")
		case IsBuiltinTransform(def.Name):
			res.AddError("reserved_transform",
				fmt.Sprintf("%q is built in and cannot be declared", def.Name), "", def.Name)
		case declared[def.Name]:
			res.AddError("duplicate_transform", fmt.Sprintf("duplicate transformation %q", def.Name), "", def.Name)
		default:
			declared[def.Name] = true
		}
	}

	return declared
}

func validateFields(res *diagnostic.Diagnostics, t *TableDef) {
	seen := make(map[string]bool)

	for _, def := range t.Fields {
		switch {
		case def.Name == "":
			res.AddError("missing_field_name", "field has an empty name", t.Name, "")
			continue
		case seen[def.Name]:
			res.AddError("duplicate_field", fmt.Sprintf("field %q is mapped twice", def.Name), t.Name, def.Name)
			continue
		}

		seen[def.Name] = true

		if def.Other == "" {
			res.AddError("missing_other_name", "field maps to an empty other name", t.Name, def.Name)
		}

		if orCopy(def.Set) == TransformDrop && orCopy(def.Get) == TransformDrop {
			res.AddInfo("dropped_field", "field is dropped in both directions", t.Name, def.Name)
		}
	}
}
