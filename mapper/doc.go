// Package mapper copies fields between two records, a primary record and an other
// record, according to a table of per-field entries.
//
// Records are maps with string keys, non-nil pointers to structs, or any type that
// implements Record. A Table maps each primary field name to an Entry naming the
// field on the other record and the transformation applied in each direction:
//
//	table := mapper.Table{
//		"id":     mapper.Map("userId", mapper.Copy, mapper.Copy),
//		"status": mapper.Map("state", "parseStatus", "formatStatus"),
//	}
//
// ToPrimary (Pull) reads the other record and writes the primary one. FromPrimary
// (Push) reads the primary record and writes the other one, skipping empty values.
//
// Transformations are looked up by id. Drop and Copy are built in; everything else
// is registered in a Registry. Tables can also be loaded from YAML with Load and
// Parse, which reject ids the registry does not know.
package mapper
