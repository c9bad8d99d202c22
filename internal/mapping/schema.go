package mapping

// Built-in transformation names.
const (
	TransformDrop = "drop"
	TransformCopy = "copy"
)

// IsBuiltinTransform reports whether name is always available without a declaration.
func IsBuiltinTransform(name string) bool {
	return name == TransformDrop || name == TransformCopy
}

// File represents the root of a YAML mapping file.
type File struct {
	// Version of the mapping schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Tables is the list of named mapping tables.
	Tables []TableDef `yaml:"tables"`

	// Transforms declares the custom transformations the tables may reference.
	// Implementations are registered in code; declarations document them and let
	// validation catch typos.
	Transforms []TransformDef `yaml:"transforms,omitempty"`
}

// TableDef is one mapping table.
type TableDef struct {
	// Name identifies the table within the file.
	Name string `yaml:"name"`

	// Primary is the optional Go type of the primary record (e.g. "accounts.Account").
	Primary string `yaml:"primary,omitempty"`

	// Other is the optional Go type of the other record.
	Other string `yaml:"other,omitempty"`

	// Fields maps primary field names to the other side, in file order.
	Fields FieldDefs `yaml:"fields,omitempty"`
}

// FieldDef maps one primary field.
type FieldDef struct {
	// Name is the primary field name.
	Name string
	// Other is the field name on the other record.
	Other string
	// Set is the transformation applied when pulling into the primary record.
	Set string
	// Get is the transformation applied when pushing from the primary record.
	Get string
}

// FieldDefs is an ordered list of field definitions decoded from a YAML mapping.
type FieldDefs []FieldDef

// Lookup returns the definition for the primary field name.
func (f FieldDefs) Lookup(name string) (FieldDef, bool) {
	for _, def := range f {
		if def.Name == name {
			return def, true
		}
	}

	return FieldDef{}, false
}

// Names returns the primary field names in file order.
func (f FieldDefs) Names() []string {
	names := make([]string, len(f))
	for i, def := range f {
		names[i] = def.Name
	}

	return names
}

// TransformDef declares a custom transformation.
type TransformDef struct {
	// Name is the identifier referenced from field definitions.
	Name string `yaml:"name"`

	// Description is an optional human-readable description.
	Description string `yaml:"description,omitempty"`
}

// Table returns the table with the given name.
func (f *File) Table(name string) (*TableDef, bool) {
	for i := range f.Tables {
		if f.Tables[i].Name == name {
			return &f.Tables[i], true
		}
	}

	return nil, false
}

// TableNames returns the table names in file order.
func (f *File) TableNames() []string {
	names := make([]string, len(f.Tables))
	for i := range f.Tables {
		names[i] = f.Tables[i].Name
	}

	return names
}

// Transform returns the declaration with the given name.
func (f *File) Transform(name string) (*TransformDef, bool) {
	for i := range f.Transforms {
		if f.Transforms[i].Name == name {
			return &f.Transforms[i], true
		}
	}

	return nil, false
}

// TransformNames returns every transformation referenced by the table's fields,
// in first-use order.
func (t *TableDef) TransformNames() []string {
	var names []string

	seen := make(map[string]bool)

	for _, f := range t.Fields {
		for _, name := range []string{f.Set, f.Get} {
			if name == "" || seen[name] {
				continue
			}

			seen[name] = true
			names = append(names, name)
		}
	}

	return names
}
