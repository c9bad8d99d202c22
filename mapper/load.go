package mapper

import (
	"github.com/ygrebnov/errorc"

	"modelkit/internal/mapping"
)

// Load reads the YAML mapping file at path and builds a Mapper from its table named
// table. See Parse.
func Load(path, table string, registry *Registry, opts ...Option) (*Mapper, error) {
	f, err := mapping.LoadFile(path)
	if err != nil {
		return nil, err
	}

	return fromFile(f, table, registry, opts...)
}

// Parse builds a Mapper from the table named table of a YAML mapping document.
//
// Unlike New, Parse checks transformation ids up front: every id the table uses must
// be built in or registered in registry, otherwise it fails with ErrUnknownTransform.
func Parse(data []byte, table string, registry *Registry, opts ...Option) (*Mapper, error) {
	f, err := mapping.Parse(data)
	if err != nil {
		return nil, err
	}

	return fromFile(f, table, registry, opts...)
}

func fromFile(f *mapping.File, name string, registry *Registry, opts ...Option) (*Mapper, error) {
	def, ok := f.Table(name)
	if !ok {
		return nil, errorc.With(ErrTableNotFound, errorc.String(ErrorFieldTable, name))
	}

	for _, id := range def.TransformNames() {
		if !registry.Has(TransformID(id)) {
			return nil, errorc.With(
				ErrUnknownTransform,
				errorc.String(ErrorFieldTable, name),
				errorc.String(ErrorFieldTransform, id),
			)
		}
	}

	table := make(Table, len(def.Fields))
	for _, fd := range def.Fields {
		table[fd.Name] = Map(fd.Other, TransformID(fd.Set), TransformID(fd.Get))
	}

	return New(table, registry, opts...), nil
}
