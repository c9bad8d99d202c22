package gen

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"go/types"
	"sort"
	"strings"
	"text/template"
	"unicode"

	"modelkit/internal/analyze"
	"modelkit/internal/common"
	"modelkit/internal/structinfo"
)

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// TagName is the struct tag that overrides property keys.
	TagName string
	// PrivatePrefix marks private property keys; such fields get no accessors.
	PrivatePrefix string
	// OutputDir receives an unformatted sidecar file when formatting fails.
	OutputDir string
	// Filename overrides the generated file name.
	Filename string
	// GenerateComments enables doc comments on generated methods.
	GenerateComments bool
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		TagName:          structinfo.DefaultTagName,
		PrivatePrefix:    structinfo.DefaultPrivatePrefix,
		GenerateComments: true,
	}
}

// Generator renders Go source for records.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	if config.TagName == "" {
		config.TagName = structinfo.DefaultTagName
	}

	if config.PrivatePrefix == "" {
		config.PrivatePrefix = structinfo.DefaultPrivatePrefix
	}

	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "account_accessors.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

type importSpec struct {
	Alias string
	Path  string
}

type accessorData struct {
	Key    string
	Field  string
	Type   string
	Getter string // empty when the record already declares it
	Setter string // empty when the record already declares it
}

type recordData struct {
	Name      string
	Receiver  string
	Accessors []accessorData
}

type accessorsTemplateData struct {
	PackageName      string
	Imports          []importSpec
	Records          []recordData
	GenerateComments bool
}

// GenerateAccessors renders Get<Field>/Set<Field> methods for the given struct types,
// which must all belong to pkg. Private fields and methods the type already has are
// skipped.
func (g *Generator) GenerateAccessors(pkg *analyze.PackageInfo, records []*analyze.TypeInfo) (*GeneratedFile, error) {
	if pkg == nil {
		return nil, errors.New("package is nil")
	}

	if len(records) == 0 {
		return nil, errors.New("no record types given")
	}

	imports := make(map[string]importSpec)
	qualifier := func(p *types.Package) string {
		if p.Path() == pkg.Path {
			return ""
		}

		imp := importSpec{Path: p.Path()}
		if common.PkgAlias(p.Path()) != p.Name() {
			imp.Alias = p.Name()
		}

		imports[p.Path()] = imp

		return p.Name()
	}

	data := accessorsTemplateData{
		PackageName:      pkg.Name,
		GenerateComments: g.config.GenerateComments,
	}

	for _, rec := range records {
		if rec == nil || rec.Kind != analyze.TypeKindStruct {
			return nil, fmt.Errorf("type %v is not a struct", typeIDOf(rec))
		}

		if rec.ID.PkgPath != pkg.Path {
			return nil, fmt.Errorf("type %s is not declared in package %s", rec.ID, pkg.Path)
		}

		data.Records = append(data.Records, g.recordData(rec, qualifier))
	}

	for _, imp := range imports {
		data.Imports = append(data.Imports, imp)
	}

	sort.Slice(data.Imports, func(i, j int) bool {
		return data.Imports[i].Path < data.Imports[j].Path
	})

	filename := g.config.Filename
	if filename == "" {
		filename = snakeCase(records[0].ID.Name) + "_accessors.go"
	}

	return g.render(accessorsTemplate, filename, data)
}

func (g *Generator) recordData(rec *analyze.TypeInfo, qualifier types.Qualifier) recordData {
	rd := recordData{
		Name:     rec.ID.Name,
		Receiver: receiverName(rec.ID.Name),
	}

	for _, kf := range rec.KeyedFields(g.config.TagName) {
		key, f := kf.Key, kf.Field
		if strings.HasPrefix(key, g.config.PrivatePrefix) {
			continue
		}

		acc := accessorData{
			Key:   key,
			Field: f.Name,
			Type:  types.TypeString(f.Type.GoType, qualifier),
		}

		if getter := "Get" + f.Name; !rec.HasMethod(getter) {
			acc.Getter = getter
		}

		if setter := "Set" + f.Name; !rec.HasMethod(setter) {
			acc.Setter = setter
		}

		if acc.Getter == "" && acc.Setter == "" {
			continue
		}

		rd.Accessors = append(rd.Accessors, acc)
	}

	return rd
}

func (g *Generator) render(tmpl *template.Template, filename string, data any) (*GeneratedFile, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		if g.config.OutputDir != "" {
			_ = writeDebugUnformatted(g.config.OutputDir, filename, buf.Bytes())
		}

		return &GeneratedFile{
			Filename: filename,
			Content:  buf.Bytes(),
		}, fmt.Errorf("formatting code: %w", err)
	}

	return &GeneratedFile{
		Filename: filename,
		Content:  formatted,
	}, nil
}

func typeIDOf(t *analyze.TypeInfo) any {
	if t == nil {
		return "<nil>"
	}

	return t.ID
}

func receiverName(typeName string) string {
	if typeName == "" {
		return "r"
	}

	return strings.ToLower(typeName[:1])
}

// snakeCase converts "RemoteAccount" to "remote_account" and "HTTPClient" to
// "http_client".
func snakeCase(s string) string {
	runes := []rune(s)

	var sb strings.Builder

	for i, r := range runes {
		if unicode.IsUpper(r) {
			prevLower := i > 0 && !unicode.IsUpper(runes[i-1])
			nextLower := i > 0 && i+1 < len(runes) && unicode.IsLower(runes[i+1])

			if i > 0 && (prevLower || nextLower) {
				sb.WriteByte('_')
			}

			sb.WriteRune(unicode.ToLower(r))

			continue
		}

		sb.WriteRune(r)
	}

	return sb.String()
}
