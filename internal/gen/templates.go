package gen

import "text/template"

var accessorsTemplate = template.Must(template.New("accessors").Parse(
	`// Code generated by modelkit accessors. DO NOT EDIT.

package {{.PackageName}}
{{if .Imports}}
import (
{{- range .Imports}}
	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{- end}}
)
{{end}}
{{- range .Records}}{{$r := .}}
{{- range .Accessors}}
{{- if .Getter}}
{{if $.GenerateComments}}
// {{.Getter}} returns the {{.Key}} property.
{{- end}}
func ({{$r.Receiver}} *{{$r.Name}}) {{.Getter}}() {{.Type}} {
	return {{$r.Receiver}}.{{.Field}}
}
{{end}}
{{- if .Setter}}
{{if $.GenerateComments}}
// {{.Setter}} sets the {{.Key}} property and returns the receiver.
{{- end}}
func ({{$r.Receiver}} *{{$r.Name}}) {{.Setter}}(value {{.Type}}) *{{$r.Name}} {
	{{$r.Receiver}}.{{.Field}} = value
	return {{$r.Receiver}}
}
{{end}}
{{- end}}
{{- end}}
`))

var stubsTemplate = template.Must(template.New("stubs").Parse(
	`// Code generated by modelkit stubs. Edit the function bodies; the file is not regenerated
// once it exists.

package {{.PackageName}}

import "{{.MapperImport}}"
{{range .Stubs}}
{{- if .Description}}
// {{.Func}} implements the "{{.Name}}" transformation: {{.Description}}
{{- else}}
// {{.Func}} implements the "{{.Name}}" transformation.
{{- end}}
func {{.Func}}(value any, primary, other mapper.Record) (any, error) {
	panic("transformation {{.Name}} is not implemented")
}
{{end}}
// {{.RegisterFunc}} registers the transformations declared in {{.Source}}.
func {{.RegisterFunc}}(r *mapper.Registry) *mapper.Registry {
	return r{{range .Stubs}}.
		MustRegister("{{.Name}}", {{.Func}}){{end}}
}
`))
