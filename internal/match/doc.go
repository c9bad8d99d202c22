// Package match provides fuzzy key matching and type compatibility scoring for
// mapping tables.
//
// It backs two features of the modelkit tool: "did you mean" suggestions when a
// mapping table names a key the record type does not have, and drafting a new
// table by pairing the keys of two record types.
package match
