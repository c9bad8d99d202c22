package mapper

import "errors"

const Namespace = "mapper"

// Sentinel errors. Use errors.Is to match; structured context is attached with errorc.
var (
	ErrInvalidArgument   = errors.New(Namespace + ": record must be a map with string keys or a non-nil pointer to struct")
	ErrInvalidDirection  = errors.New(Namespace + ": invalid direction")
	ErrUnknownField      = errors.New(Namespace + ": unknown field")
	ErrInvalidValue      = errors.New(Namespace + ": invalid value")
	ErrNilMap            = errors.New(Namespace + ": cannot write to a nil map")
	ErrTransformFailed   = errors.New(Namespace + ": transform failed")
	ErrInvalidTransform  = errors.New(Namespace + ": transform must have a non-empty id and a non-nil function")
	ErrReservedTransform = errors.New(Namespace + ": transform id is reserved")
	ErrUnknownTransform  = errors.New(Namespace + ": unknown transform")
	ErrTableNotFound     = errors.New(Namespace + ": mapping table not found")
)

// ErrorField is a structured error context key.
type ErrorField string

// Structured error field keys. Keep string values stable for log queries.
const (
	ErrorFieldRole       ErrorField = Namespace + ".record.role"
	ErrorFieldRecordType ErrorField = Namespace + ".record.type"
	ErrorFieldFieldName  ErrorField = Namespace + ".field.name"
	ErrorFieldFieldType  ErrorField = Namespace + ".field.type"
	ErrorFieldValueType  ErrorField = Namespace + ".value.type"
	ErrorFieldTransform  ErrorField = Namespace + ".transform"
	ErrorFieldDirection  ErrorField = Namespace + ".direction"
	ErrorFieldTable      ErrorField = Namespace + ".table"
	ErrorFieldCause      ErrorField = Namespace + ".cause"
)

const (
	rolePrimary = "primary"
	roleOther   = "other"
)
