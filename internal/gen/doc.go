// Package gen provides deterministic Go code generation for records.
//
// Generation uses text/template + go/format for readable Go code. Two outputs are
// supported:
//   - Accessors: Get<Field>() and Set<Field>(v) methods for every public property of
//     a struct, skipping methods the struct already declares. The property package
//     picks these up as computed accessors.
//   - Transformation stubs: one mapper.TransformFunc skeleton per custom
//     transformation referenced by a mapping file, plus a registration function.
//
// When formatting fails the raw output is written next to the target as
// <name>.unformatted to ease debugging.
package gen
