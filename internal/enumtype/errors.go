package enumtype

import (
	"errors"
	"fmt"
)

// The errors in this file are the engine-visible diagnostics of the
// enum core. Their Error() strings are the exact shapes the engine's
// error-surfacing path prints; tests pin them verbatim. None are
// recoverable locally: they propagate as user-visible analysis or
// evaluation failures, never as silent defaults.

// DuplicateTypeError reports a registration whose qualified name
// collides case-insensitively with an already-registered type.
type DuplicateTypeError struct {
	// Name is the qualified name as supplied to the failing Register.
	Name string
	// Existing is the previously registered name it collides with.
	Existing string
}

func (e *DuplicateTypeError) Error() string {
	return fmt.Sprintf("enum type '%s' is already registered as '%s'", e.Name, e.Existing)
}

// UnknownKeyError reports a literal resolution that matched a type
// prefix but found no entry for the trailing key.
type UnknownKeyError struct {
	Type *Definition
	// Key is the supplied key, uppercased per the diagnostic shape.
	Key string
}

func (e *UnknownKeyError) Error() string {
	return fmt.Sprintf("No key '%s' in enum '%s'", e.Key, e.Type.Name())
}

// UnknownValueError reports a cast from a backing scalar that matched
// no entry of the target type.
type UnknownValueError struct {
	Type *Definition
	// Value renders exactly as originally typed in the query.
	Value Raw
}

func (e *UnknownValueError) Error() string {
	return fmt.Sprintf("No value '%s' in enum '%s'", e.Value, e.Type.Name())
}

// TypeAsValueError reports a dotted identifier that names an enum type
// exactly, with no key portion left to resolve. Guessing a default
// value here would mask query bugs, so it is an analysis error.
type TypeAsValueError struct {
	Type *Definition
}

func (e *TypeAsValueError) Error() string {
	return fmt.Sprintf("enum type '%s' used where a value was expected", e.Type.Name())
}

// IsUnknownKey reports whether err is an UnknownKeyError.
// Uses errors.As to handle wrapped errors.
func IsUnknownKey(err error) bool {
	var uk *UnknownKeyError
	return errors.As(err, &uk)
}

// IsUnknownValue reports whether err is an UnknownValueError.
// Uses errors.As to handle wrapped errors.
func IsUnknownValue(err error) bool {
	var uv *UnknownValueError
	return errors.As(err, &uv)
}
