package mapper

import (
	"log/slog"

	"github.com/ygrebnov/errorc"

	"modelkit/internal/reflectx"
)

// Mapper copies fields between a primary record and another record according to a
// Table, applying a named transformation per field and direction.
//
// The table and registry are copied on construction and never change afterwards, so a
// Mapper may be shared. The records passed to Copy are mutated in place.
type Mapper struct {
	table    Table
	registry *Registry
	cfg      config
}

// New creates a Mapper. registry may be nil when the table only uses Drop and Copy.
func New(table Table, registry *Registry, opts ...Option) *Mapper {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Mapper{
		table:    table.normalized(),
		registry: registry.clone(),
		cfg:      cfg,
	}
}

// Lookup returns the entry for a primary field name.
func (m *Mapper) Lookup(field string) (Entry, bool) {
	return m.table.Lookup(field)
}

// Table returns a copy of the normalized table.
func (m *Mapper) Table() Table {
	return m.table.normalized()
}

// Transform applies the transformation id to value. Drop yields nil, Copy yields value,
// and an id that is not registered yields nil without an error. Errors from a
// registered function are wrapped with ErrTransformFailed.
func (m *Mapper) Transform(id TransformID, value any, primary, other Record) (any, error) {
	switch id {
	case Drop:
		return nil, nil
	case Copy:
		return value, nil
	}

	fn, ok := m.registry.Func(id)
	if !ok {
		m.cfg.logger.Debug("transform not registered", slog.String("transform", string(id)))
		return nil, nil
	}

	out, err := fn(value, primary, other)
	if err != nil {
		return nil, errorc.With(
			ErrTransformFailed,
			errorc.String(ErrorFieldTransform, string(id)),
			errorc.Error(ErrorFieldCause, err),
		)
	}

	return out, nil
}

// Copy synchronizes primary and other in direction dir and returns the record that was
// written to: primary for ToPrimary, other for FromPrimary.
//
// The pass is driven by the keys of the primary record; primary keys without a table
// entry are skipped. ToPrimary reads the entry's Other key (skipping keys the other
// record lacks), applies the Set transformation and writes the result under the
// primary key. FromPrimary reads the primary key, applies the Get transformation and
// writes a non-empty result to the other record under the primary key.
func (m *Mapper) Copy(primary, other any, dir Direction) (any, error) {
	if !dir.IsValid() {
		return nil, errorc.With(ErrInvalidDirection, errorc.String(ErrorFieldDirection, dir.String()))
	}

	p, err := m.record(primary, rolePrimary)
	if err != nil {
		return nil, err
	}

	o, err := m.record(other, roleOther)
	if err != nil {
		return nil, err
	}

	for _, field := range p.Keys() {
		entry, ok := m.table.Lookup(field)
		if !ok {
			m.skip(dir, field, "unmapped")
			continue
		}

		if dir == ToPrimary {
			err = m.pullField(p, o, field, entry)
		} else {
			err = m.pushField(p, o, field, entry)
		}

		if err != nil {
			return nil, err
		}
	}

	if dir == ToPrimary {
		return primary, nil
	}

	return other, nil
}

// Pull copies other into primary.
func (m *Mapper) Pull(primary, other any) error {
	_, err := m.Copy(primary, other, ToPrimary)
	return err
}

// Push copies primary into other.
func (m *Mapper) Push(primary, other any) error {
	_, err := m.Copy(primary, other, FromPrimary)
	return err
}

func (m *Mapper) pullField(p, o Record, field string, entry Entry) error {
	if !o.Has(entry.Other) {
		m.skip(ToPrimary, field, "absent")
		return nil
	}

	v, err := o.Get(entry.Other)
	if err != nil {
		return err
	}

	out, err := m.transformField(entry.Set, field, v, p, o)
	if err != nil {
		return err
	}

	return p.Set(field, out)
}

func (m *Mapper) pushField(p, o Record, field string, entry Entry) error {
	v, err := p.Get(field)
	if err != nil {
		return err
	}

	out, err := m.transformField(entry.Get, field, v, p, o)
	if err != nil {
		return err
	}

	if out == nil || (!m.cfg.keepZeroValues && reflectx.IsEmpty(out)) {
		m.skip(FromPrimary, field, "empty")
		return nil
	}

	key := field
	if m.cfg.otherNameOnPush {
		key = entry.Other
	}

	return o.Set(key, out)
}

func (m *Mapper) transformField(id TransformID, field string, v any, p, o Record) (any, error) {
	out, err := m.Transform(id, v, p, o)
	if err != nil {
		return nil, errorc.With(err, errorc.String(ErrorFieldFieldName, field))
	}

	return out, nil
}

func (m *Mapper) record(v any, role string) (Record, error) {
	r, err := asRecord(v, m.cfg.fields)
	if err != nil {
		return nil, errorc.With(err, errorc.String(ErrorFieldRole, role))
	}

	return r, nil
}

func (m *Mapper) skip(dir Direction, field, reason string) {
	m.cfg.logger.Debug("field skipped",
		slog.String("direction", dir.String()),
		slog.String("field", field),
		slog.String("reason", reason),
	)
}
