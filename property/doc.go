// Package property provides key-based access to the fields of struct records.
//
// An Accessor wraps a pointer to a struct and exposes Get, Set, Unset, Exists and
// Validate keyed by field name. Keys come from the "prop" struct tag or from the Go
// field name with its leading initialism lower-cased.
//
// # Computed methods
//
// A record overrides access to one property by declaring a method:
//
//	func (u *User) GetEmail() string          // or (string, error)
//	func (u *User) SetEmail(v string) error   // result optional
//
// Computed methods take precedence over the field of the same key and may exist
// without any backing field. Removal (Unset) never consults them.
//
// # Private and undeclared fields
//
// Keys starting with the private prefix ("_" by default) and unexported Go fields are
// private. Direct access to a private or undeclared key fails with ErrInvalidField.
//
// # Dispatch by method name
//
// Call resolves accessor-style method names at runtime: Get<Name>() and Set<Name>(v)
// fall back to Get and Set when the record does not declare them. The modelkit
// accessors command generates the same methods at compile time.
package property
