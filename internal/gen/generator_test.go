package gen

import (
	"go/token"
	"go/types"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"text/template"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"modelkit/internal/analyze"
	"modelkit/internal/mapping"
)

const testPkgPath = "example.com/shop"

func basicField(name string, kind types.BasicKind, tag reflect.StructTag) analyze.FieldInfo {
	return analyze.FieldInfo{
		Name:     name,
		Exported: true,
		Tag:      tag,
		Type: &analyze.TypeInfo{
			ID:     analyze.TypeID{Name: types.Typ[kind].Name()},
			Kind:   analyze.TypeKindBasic,
			GoType: types.Typ[kind],
		},
	}
}

func namedType(pkgPath, pkgName, name string) types.Type {
	pkg := types.NewPackage(pkgPath, pkgName)
	obj := types.NewTypeName(token.NoPos, pkg, name, nil)

	return types.NewNamed(obj, types.NewStruct(nil, nil), nil)
}

func orderType() *analyze.TypeInfo {
	audit := &analyze.TypeInfo{
		ID:   analyze.TypeID{PkgPath: testPkgPath, Name: "Audit"},
		Kind: analyze.TypeKindStruct,
		Fields: []analyze.FieldInfo{
			{
				Name:     "CreatedAt",
				Exported: true,
				Type: &analyze.TypeInfo{
					ID:     analyze.TypeID{PkgPath: "time", Name: "Time"},
					Kind:   analyze.TypeKindExternal,
					GoType: namedType("time", "time", "Time"),
				},
			},
		},
	}

	return &analyze.TypeInfo{
		ID:   analyze.TypeID{PkgPath: testPkgPath, Name: "Order"},
		Kind: analyze.TypeKindStruct,
		Fields: []analyze.FieldInfo{
			{Name: "Audit", Exported: true, Embedded: true, Type: audit},
			basicField("ID", types.Int64, ""),
			basicField("Total", types.Float64, ""),
			basicField("Note", types.String, `prop:"-"`),
			basicField("Secret", types.String, `prop:"_secret"`),
			basicField("Customer", types.String, ""),
			{
				Name:     "Lines",
				Exported: true,
				Type: &analyze.TypeInfo{
					Kind:   analyze.TypeKindSlice,
					GoType: types.NewSlice(namedType(testPkgPath, "shop", "Line")),
				},
			},
		},
		Methods: []string{"GetCustomer", "SetTotal"},
	}
}

func shopPackage() *analyze.PackageInfo {
	return &analyze.PackageInfo{Path: testPkgPath, Name: "shop"}
}

func TestGenerator_GenerateAccessors(t *testing.T) {
	g := NewGenerator(DefaultGeneratorConfig())

	file, err := g.GenerateAccessors(shopPackage(), []*analyze.TypeInfo{orderType()})
	require.NoError(t, err)

	assert.Equal(t, "order_accessors.go", file.Filename)

	content := string(file.Content)

	assert.Contains(t, content, "// Code generated by modelkit accessors. DO NOT EDIT.")
	assert.Contains(t, content, "package shop")
	assert.Contains(t, content, "import (\n\t\"time\"\n)")

	assert.Contains(t, content, "func (o *Order) GetID() int64 {\n\treturn o.ID\n}")
	assert.Contains(t, content, "func (o *Order) SetID(value int64) *Order {\n\to.ID = value\n\treturn o\n}")
	assert.Contains(t, content, "// GetID returns the id property.")
	assert.Contains(t, content, "func (o *Order) GetLines() []Line {")
	assert.Contains(t, content, "func (o *Order) GetCreatedAt() time.Time {\n\treturn o.CreatedAt\n}")
	assert.Contains(t, content, "func (o *Order) GetTotal() float64 {")
	assert.Contains(t, content, "func (o *Order) SetCustomer(value string) *Order {")

	assert.NotContains(t, content, "func (o *Order) SetTotal(")
	assert.NotContains(t, content, "func (o *Order) GetCustomer(")
	assert.NotContains(t, content, "Note")
	assert.NotContains(t, content, "Secret")
	assert.NotContains(t, content, "GetAudit")
}

func TestGenerator_GenerateAccessors_NoComments(t *testing.T) {
	cfg := DefaultGeneratorConfig()
	cfg.GenerateComments = false
	cfg.Filename = "accessors_gen.go"

	file, err := NewGenerator(cfg).GenerateAccessors(shopPackage(), []*analyze.TypeInfo{orderType()})
	require.NoError(t, err)

	assert.Equal(t, "accessors_gen.go", file.Filename)
	assert.NotContains(t, string(file.Content), "returns the id property")
}

func TestGenerator_GenerateAccessors_AliasedImport(t *testing.T) {
	rec := &analyze.TypeInfo{
		ID:   analyze.TypeID{PkgPath: testPkgPath, Name: "Event"},
		Kind: analyze.TypeKindStruct,
		Fields: []analyze.FieldInfo{
			{
				Name:     "Payload",
				Exported: true,
				Type: &analyze.TypeInfo{
					Kind:   analyze.TypeKindExternal,
					GoType: namedType("example.com/go-wire", "wire", "Payload"),
				},
			},
			{
				Name:     "Trace",
				Exported: true,
				Type: &analyze.TypeInfo{
					Kind:   analyze.TypeKindExternal,
					GoType: namedType("example.com/trace/v2", "trace", "Span"),
				},
			},
		},
	}

	file, err := NewGenerator(DefaultGeneratorConfig()).GenerateAccessors(shopPackage(), []*analyze.TypeInfo{rec})
	require.NoError(t, err)

	content := string(file.Content)
	assert.Contains(t, content, "\twire \"example.com/go-wire\"\n")
	assert.Contains(t, content, "\t\"example.com/trace/v2\"\n")
	assert.Contains(t, content, "func (e *Event) GetPayload() wire.Payload {")
	assert.Contains(t, content, "func (e *Event) GetTrace() trace.Span {")
}

func TestGenerator_GenerateAccessors_Errors(t *testing.T) {
	g := NewGenerator(GeneratorConfig{})

	_, err := g.GenerateAccessors(nil, []*analyze.TypeInfo{orderType()})
	require.Error(t, err)

	_, err = g.GenerateAccessors(shopPackage(), nil)
	require.Error(t, err)

	other := orderType()
	other.ID.PkgPath = "example.com/elsewhere"

	_, err = g.GenerateAccessors(shopPackage(), []*analyze.TypeInfo{other})
	require.ErrorContains(t, err, "not declared in package")

	alias := &analyze.TypeInfo{ID: analyze.TypeID{PkgPath: testPkgPath, Name: "Status"}, Kind: analyze.TypeKindAlias}

	_, err = g.GenerateAccessors(shopPackage(), []*analyze.TypeInfo{alias})
	require.ErrorContains(t, err, "not a struct")
}

func TestGenerator_GenerateTransformStubs(t *testing.T) {
	file := &mapping.File{
		Tables: []mapping.TableDef{
			{
				Name: "orders",
				Fields: mapping.FieldDefs{
					{Name: "id", Other: "orderId", Set: "copy", Get: "copy"},
					{Name: "status", Other: "state", Set: "parse-status", Get: "formatStatus"},
					{Name: "secret", Other: "secret", Set: "drop", Get: "drop"},
				},
			},
		},
		Transforms: []mapping.TransformDef{
			{Name: "formatStatus", Description: "renders a Status for the remote side."},
		},
	}

	out, err := NewGenerator(DefaultGeneratorConfig()).GenerateTransformStubs(file, StubsConfig{
		PackageName: "shop",
		Source:      "mapping.yaml",
	})
	require.NoError(t, err)

	assert.Equal(t, "transforms_gen.go", out.Filename)

	content := string(out.Content)
	assert.Contains(t, content, "package shop")
	assert.Contains(t, content, `import "modelkit/mapper"`)
	assert.Contains(t, content,
		`// transformFormatStatus implements the "formatStatus" transformation: renders a Status for the remote side.`)
	assert.Contains(t, content, "func transformParseStatus(value any, primary, other mapper.Record) (any, error) {")
	assert.Contains(t, content, "func registerTransforms(r *mapper.Registry) *mapper.Registry {")
	assert.Contains(t, content, `MustRegister("parse-status", transformParseStatus)`)
	assert.NotContains(t, content, "transformCopy")
	assert.NotContains(t, content, "transformDrop")
}

func TestGenerator_GenerateTransformStubs_Errors(t *testing.T) {
	g := NewGenerator(DefaultGeneratorConfig())

	_, err := g.GenerateTransformStubs(nil, StubsConfig{PackageName: "shop"})
	require.Error(t, err)

	_, err = g.GenerateTransformStubs(&mapping.File{}, StubsConfig{PackageName: "not a name"})
	require.ErrorContains(t, err, "invalid package name")

	clash := &mapping.File{Transforms: []mapping.TransformDef{{Name: "to-upper"}, {Name: "to_upper"}}}

	_, err = g.GenerateTransformStubs(clash, StubsConfig{PackageName: "shop"})
	require.ErrorContains(t, err, "both map to function transformToUpper")
}

func TestWriteFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	files := []GeneratedFile{{Filename: "a.go", Content: []byte("package a\n")}}

	written, err := WriteFiles(files, dir)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a.go")}, written)

	data, err := os.ReadFile(filepath.Join(dir, "a.go"))
	require.NoError(t, err)
	assert.Equal(t, "package a\n", string(data))

	written, err = WriteFiles(files, dir)
	require.NoError(t, err)
	assert.Empty(t, written, "unchanged files are not rewritten")

	files[0].Content = []byte("package a\n\nvar x int\n")

	written, err = WriteFiles(files, dir)
	require.NoError(t, err)
	assert.Len(t, written, 1)
}

func TestRender_UnformattedSidecar(t *testing.T) {
	dir := t.TempDir()
	g := NewGenerator(GeneratorConfig{OutputDir: dir})

	broken := template.Must(template.New("broken").Parse("package {{.}}\nfunc {"))

	file, err := g.render(broken, "broken.go", "shop")
	require.ErrorContains(t, err, "formatting code")
	require.NotNil(t, file)

	data, err := os.ReadFile(filepath.Join(dir, "broken.go.unformatted"))
	require.NoError(t, err)
	assert.Equal(t, "package shop\nfunc {", string(data))

	_, err = os.Stat(filepath.Join(dir, "broken.go"))
	assert.True(t, os.IsNotExist(err))
}

func TestSnakeCase(t *testing.T) {
	tests := map[string]string{
		"Account":       "account",
		"RemoteAccount": "remote_account",
		"HTTPClient":    "http_client",
		"UserID":        "user_id",
	}

	for in, want := range tests {
		assert.Equal(t, want, snakeCase(in), in)
	}
}
