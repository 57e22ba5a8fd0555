// Package operator implements the engine-facing operator set over enum
// values: equality, ordering comparisons, BETWEEN, IN-lists, hashing,
// distinct extraction, join-key matching, and window ordering.
//
// Every binary operator enforces strict type identity: both operands
// must be enum-typed and share the identical type definition. A
// mismatch — two different enum types, or an enum paired with any
// non-enum operand — is an OperandTypeError carrying the engine-visible
// message, never a silent false or NULL.
//
// All functions here are pure and safe to call concurrently.
package operator

import (
	"errors"
	"fmt"

	"github.com/enumeral/enumeral/internal/enumtype"
)

// OperandTypeError reports an operator applied across incompatible
// types.
type OperandTypeError struct {
	// Operator is the surface syntax of the operator, e.g. "=" or ">".
	Operator string
	// Left and Right are the display names of the operand types in
	// operand order: qualified names for enum types, ordinary lowercase
	// names (e.g. "integer") for primitives.
	Left  string
	Right string
}

func (e *OperandTypeError) Error() string {
	return fmt.Sprintf("'%s' cannot be applied to %s, %s", e.Operator, e.Left, e.Right)
}

// HeterogeneousInListError reports an IN expression whose operands are
// not uniformly one enum type.
type HeterogeneousInListError struct {
	// ProbeType is non-empty when the list items agree with each other
	// but disagree with the probe value; it names the probe's type.
	ProbeType string
}

func (e *HeterogeneousInListError) Error() string {
	if e.ProbeType != "" {
		return fmt.Sprintf("IN value and list items must be the same type: %s", e.ProbeType)
	}
	return "All IN list values must be the same type"
}

// IsOperandTypeError reports whether err is an OperandTypeError.
// Uses errors.As to handle wrapped errors.
func IsOperandTypeError(err error) bool {
	var ot *OperandTypeError
	return errors.As(err, &ot)
}

// Operand describes one side of a binary operator for analysis-time
// type checking. Exactly one of Enum and Primitive is set.
type Operand struct {
	// Enum is the operand's enum type, nil for non-enum operands.
	Enum *enumtype.Definition
	// Primitive is the lowercase display name of a non-enum operand,
	// e.g. "integer" or "varchar".
	Primitive string
}

// EnumOperand describes an enum-typed operand.
func EnumOperand(def *enumtype.Definition) Operand {
	return Operand{Enum: def}
}

// PrimitiveOperand describes a non-enum operand by display name.
func PrimitiveOperand(name string) Operand {
	return Operand{Primitive: name}
}

// display renders the operand's type name for diagnostics.
func (o Operand) display() string {
	if o.Enum != nil {
		return o.Enum.Name()
	}
	return o.Primitive
}

// CheckBinary validates that a binary operator over the two operands is
// well typed: both enum, identical definition. The engine's analysis
// pass calls this for every operator whose either side is enum-typed.
func CheckBinary(op string, left, right Operand) error {
	if left.Enum == nil || right.Enum == nil || left.Enum != right.Enum {
		return &OperandTypeError{Operator: op, Left: left.display(), Right: right.display()}
	}
	return nil
}

// checkValues enforces type identity between two evaluated values.
func checkValues(op string, a, b enumtype.Value) error {
	if !a.SameType(b) {
		return &OperandTypeError{Operator: op, Left: a.Type().Name(), Right: b.Type().Name()}
	}
	return nil
}
