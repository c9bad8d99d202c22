// Package diagnostic provides structured errors, warnings and notes produced while
// checking mapping files against the Go types they describe.
//
// Each diagnostic carries a stable code (e.g. "unknown_field"), the table and field
// it concerns, and optional suggestions such as the closest existing field name.
package diagnostic
