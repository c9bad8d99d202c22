package property

import "errors"

const Namespace = "property"

// Sentinel errors. Use errors.Is to match; structured context is attached with errorc.
var (
	ErrNotStructPtr     = errors.New(Namespace + ": record must be a non-nil pointer to struct")
	ErrInvalidField     = errors.New(Namespace + ": invalid field")
	ErrUnknownOperation = errors.New(Namespace + ": unknown operation")
	ErrInvalidValue     = errors.New(Namespace + ": invalid value")
)

// ErrorField is a structured error context key.
type ErrorField string

// Structured error field keys. Keep string values stable for log queries.
const (
	ErrorFieldFieldName  ErrorField = Namespace + ".field.name"
	ErrorFieldFieldType  ErrorField = Namespace + ".field.type"
	ErrorFieldRecordType ErrorField = Namespace + ".record.type"
	ErrorFieldReason     ErrorField = Namespace + ".reason"
	ErrorFieldOperation  ErrorField = Namespace + ".operation"
	ErrorFieldValueType  ErrorField = Namespace + ".value.type"
)

// Reasons reported under ErrorFieldReason for ErrInvalidField.
const (
	ReasonPrivate    = "private"
	ReasonUndeclared = "undeclared"
)
