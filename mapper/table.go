package mapper

import (
	"maps"
	"slices"
)

// Entry maps one primary field to the other record.
type Entry struct {
	// Other is the field name on the other record.
	Other string
	// Set transforms the other value before it is written to the primary record.
	Set TransformID
	// Get transforms the primary value before it is written to the other record.
	Get TransformID
}

// Map returns an Entry for other with the given set and get transformations.
func Map(other string, set, get TransformID) Entry {
	return Entry{Other: other, Set: set, Get: get}
}

// Table maps primary field names to entries.
type Table map[string]Entry

// Lookup returns the entry for field.
func (t Table) Lookup(field string) (Entry, bool) {
	e, ok := t[field]
	return e, ok
}

// Fields returns the mapped primary field names in sorted order.
func (t Table) Fields() []string {
	return slices.Sorted(maps.Keys(t))
}

// TransformIDs returns every transformation id referenced by the table, sorted and
// deduplicated.
func (t Table) TransformIDs() []TransformID {
	seen := make(map[TransformID]struct{})

	for _, e := range t {
		seen[e.Set] = struct{}{}
		seen[e.Get] = struct{}{}
	}

	return slices.Sorted(maps.Keys(seen))
}

// normalized returns a copy where an empty Other defaults to the field name and
// empty transformations default to Copy.
func (t Table) normalized() Table {
	out := make(Table, len(t))

	for field, e := range t {
		if e.Other == "" {
			e.Other = field
		}

		if e.Set == "" {
			e.Set = Copy
		}

		if e.Get == "" {
			e.Get = Copy
		}

		out[field] = e
	}

	return out
}
