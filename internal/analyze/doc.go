// Package analyze provides package loading and type graph extraction.
//
// It uses golang.org/x/tools/go/packages with AST and go/types
// to build a canonical in-memory model of records and their fields.
//
// Key types:
//   - TypeID: package import path + type name
//   - TypeInfo: describes kind (struct/basic/alias/pointer/slice/map/external)
//     and the hand-written methods of *T
//   - FieldInfo: describes field name, type, tags, and embedding
//
// Record keys follow the runtime rules of the property and mapper packages:
// TypeInfo.KeyedFields lists them, TypeStringer.KeyPaths flattens nested ones.
package analyze
