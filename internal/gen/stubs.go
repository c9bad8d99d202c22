package gen

import (
	"errors"
	"fmt"
	"go/token"
	"strings"
	"unicode"

	"modelkit/internal/mapping"
)

// MapperImportPath is the import path generated transformation stubs refer to.
const MapperImportPath = "modelkit/mapper"

// StubsConfig configures transformation stub generation.
type StubsConfig struct {
	// PackageName is the package the stubs are generated into.
	PackageName string
	// Source names the mapping file in generated comments.
	Source string
	// RegisterFunc is the name of the generated registration function.
	// Default is "registerTransforms".
	RegisterFunc string
	// Filename overrides the generated file name. Default is "transforms_gen.go".
	Filename string
}

type stubData struct {
	Name        string
	Func        string
	Description string
}

type stubsTemplateData struct {
	PackageName  string
	MapperImport string
	Source       string
	RegisterFunc string
	Stubs        []stubData
}

// GenerateTransformStubs renders a function skeleton for every custom transformation
// the mapping file references, plus a function registering them all. Built-in
// transformations are skipped.
func (g *Generator) GenerateTransformStubs(file *mapping.File, cfg StubsConfig) (*GeneratedFile, error) {
	if file == nil {
		return nil, errors.New("mapping file is nil")
	}

	if !token.IsIdentifier(cfg.PackageName) {
		return nil, fmt.Errorf("invalid package name %q", cfg.PackageName)
	}

	if cfg.RegisterFunc == "" {
		cfg.RegisterFunc = "registerTransforms"
	}

	if cfg.Filename == "" {
		cfg.Filename = "transforms_gen.go"
	}

	if cfg.Source == "" {
		cfg.Source = "the mapping file"
	}

	data := stubsTemplateData{
		PackageName:  cfg.PackageName,
		MapperImport: MapperImportPath,
		Source:       cfg.Source,
		RegisterFunc: cfg.RegisterFunc,
	}

	seen := make(map[string]bool)
	funcs := make(map[string]string)

	for _, name := range transformNames(file) {
		if mapping.IsBuiltinTransform(name) || seen[name] {
			continue
		}

		seen[name] = true

		fn := stubFuncName(name)
		if prev, dup := funcs[fn]; dup {
			return nil, fmt.Errorf("transformations %q and %q both map to function %s", prev, name, fn)
		}

		funcs[fn] = name

		stub := stubData{Name: name, Func: fn}
		if def, ok := file.Transform(name); ok {
			stub.Description = strings.TrimSpace(def.Description)
		}

		data.Stubs = append(data.Stubs, stub)
	}

	return g.render(stubsTemplate, cfg.Filename, data)
}

// transformNames lists declared transformations first, then those only referenced
// from tables.
func transformNames(file *mapping.File) []string {
	var names []string

	for _, def := range file.Transforms {
		names = append(names, def.Name)
	}

	for i := range file.Tables {
		names = append(names, file.Tables[i].TransformNames()...)
	}

	return names
}

// stubFuncName turns a transformation name such as "parse-status" into the
// identifier "transformParseStatus".
func stubFuncName(name string) string {
	var sb strings.Builder

	sb.WriteString("transform")

	upper := true

	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			upper = true
			continue
		}

		if upper {
			r = unicode.ToUpper(r)
			upper = false
		}

		sb.WriteRune(r)
	}

	return sb.String()
}
