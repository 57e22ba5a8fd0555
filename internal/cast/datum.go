// Package cast converts values into and out of enum types, including
// recursively through composite shapes (rows, arrays, maps) and across
// the JSON boundary.
//
// The scalar→enum direction validates membership against the target
// type's entries; the enum→scalar direction always succeeds and yields
// the backing value, which is the external representation of every
// enum value.
package cast

import "github.com/enumeral/enumeral/internal/enumtype"

// Datum is a sealed interface over the value shapes the cast engine
// decomposes. Only Null, Int64, Text, Bool, Enum, Array, Map, and Row
// implement it. Floats are deliberately absent: enum backing scalars
// are int64 or string, and nothing in this subsystem produces a float.
type Datum interface {
	datum() // sealed
}

// Null represents SQL NULL.
type Null struct{}

func (Null) datum() {}

// Int64 is an integral scalar. Callers perform their own numeric
// widening (tinyint/smallint/integer → int64) before casting.
type Int64 int64

func (Int64) datum() {}

// Text is a textual scalar.
type Text string

func (Text) datum() {}

// Bool is a boolean scalar.
type Bool bool

func (Bool) datum() {}

// Enum wraps an enum-typed value.
type Enum struct {
	Value enumtype.Value
}

func (Enum) datum() {}

// Array is an ordered sequence of elements.
type Array []Datum

func (Array) datum() {}

// Map is an ordered sequence of key/value pairs. Order is insertion
// order; it is preserved through casts so JSON round-trips stay stable.
type Map struct {
	Keys   []Datum
	Values []Datum
}

func (Map) datum() {}

// Row is a positional tuple of fields.
type Row []Datum

func (Row) datum() {}

// Type is a sealed descriptor of a cast target. Only BigintType,
// VarcharType, BooleanType, EnumType, ArrayType, MapType, and RowType
// implement it.
type Type interface {
	castType() // sealed
}

// BigintType targets 64-bit signed integers.
type BigintType struct{}

func (BigintType) castType() {}

// VarcharType targets Unicode strings.
type VarcharType struct{}

func (VarcharType) castType() {}

// BooleanType targets booleans.
type BooleanType struct{}

func (BooleanType) castType() {}

// EnumType targets an enum type.
type EnumType struct {
	Def *enumtype.Definition
}

func (EnumType) castType() {}

// ArrayType targets an array with one element type.
type ArrayType struct {
	Elem Type
}

func (ArrayType) castType() {}

// MapType targets a map with key and value types.
type MapType struct {
	Key   Type
	Value Type
}

func (MapType) castType() {}

// RowField is one named field of a row target.
type RowField struct {
	Name string
	Type Type
}

// RowType targets a positional row of typed fields.
type RowType struct {
	Fields []RowField
}

func (RowType) castType() {}

// TypeDisplay renders a target type for diagnostics: enum types show
// their qualified name, primitives their ordinary lowercase name.
func TypeDisplay(t Type) string {
	switch tt := t.(type) {
	case BigintType:
		return "bigint"
	case VarcharType:
		return "varchar"
	case BooleanType:
		return "boolean"
	case EnumType:
		return tt.Def.Name()
	case ArrayType:
		return "array(" + TypeDisplay(tt.Elem) + ")"
	case MapType:
		return "map(" + TypeDisplay(tt.Key) + ", " + TypeDisplay(tt.Value) + ")"
	case RowType:
		s := "row("
		for i, f := range tt.Fields {
			if i > 0 {
				s += ", "
			}
			if f.Name != "" {
				s += f.Name + " "
			}
			s += TypeDisplay(f.Type)
		}
		return s + ")"
	default:
		return "unknown"
	}
}
