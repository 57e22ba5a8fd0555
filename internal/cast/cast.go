package cast

import (
	"fmt"

	"github.com/enumeral/enumeral/internal/enumtype"
)

// ToEnum casts a backing scalar into an enum type, validating
// membership.
//
// For integral targets the scalar must equal some entry's value after
// the caller's own numeric widening; for textual targets the match is
// exact, byte for byte, including empty and whitespace-only values.
// Duplicate values tie-break in definition order, which is unobservable
// downstream. Fails with UnknownValueError when nothing matches, and
// with a kind-mismatch error when the scalar's kind disagrees with the
// target's backing kind (an engine coercion bug, not a user error).
func ToEnum(raw enumtype.Raw, def *enumtype.Definition) (enumtype.Value, error) {
	if raw.Kind() != def.Kind() {
		return enumtype.Value{}, fmt.Errorf("cannot cast %s scalar into %s enum '%s'",
			raw.Kind(), def.Kind(), def.Name())
	}
	return def.ValueForRaw(raw)
}

// FromEnum casts an enum value back to its backing scalar. This
// direction always succeeds.
func FromEnum(v enumtype.Value) enumtype.Raw {
	return v.Raw()
}

// Apply casts a datum to a target type, decomposing composite shapes
// structurally and applying ToEnum/FromEnum at each leaf. NULL casts
// to NULL for every target.
func Apply(d Datum, target Type) (Datum, error) {
	if _, isNull := d.(Null); isNull {
		return Null{}, nil
	}

	switch t := target.(type) {
	case EnumType:
		return applyEnum(d, t.Def)
	case BigintType:
		return applyBigint(d)
	case VarcharType:
		return applyVarchar(d)
	case BooleanType:
		if b, ok := d.(Bool); ok {
			return b, nil
		}
		return nil, fmt.Errorf("cannot cast %T to boolean", d)
	case ArrayType:
		arr, ok := d.(Array)
		if !ok {
			return nil, fmt.Errorf("cannot cast %T to %s", d, TypeDisplay(target))
		}
		out := make(Array, len(arr))
		for i, elem := range arr {
			cast, err := Apply(elem, t.Elem)
			if err != nil {
				return nil, err
			}
			out[i] = cast
		}
		return out, nil
	case MapType:
		m, ok := d.(Map)
		if !ok {
			return nil, fmt.Errorf("cannot cast %T to %s", d, TypeDisplay(target))
		}
		out := Map{Keys: make([]Datum, len(m.Keys)), Values: make([]Datum, len(m.Values))}
		for i := range m.Keys {
			k, err := Apply(m.Keys[i], t.Key)
			if err != nil {
				return nil, err
			}
			v, err := Apply(m.Values[i], t.Value)
			if err != nil {
				return nil, err
			}
			out.Keys[i] = k
			out.Values[i] = v
		}
		return out, nil
	case RowType:
		row, ok := d.(Row)
		if !ok {
			return nil, fmt.Errorf("cannot cast %T to %s", d, TypeDisplay(target))
		}
		if len(row) != len(t.Fields) {
			return nil, fmt.Errorf("row has %d fields, target %s has %d",
				len(row), TypeDisplay(target), len(t.Fields))
		}
		out := make(Row, len(row))
		for i, field := range row {
			cast, err := Apply(field, t.Fields[i].Type)
			if err != nil {
				return nil, err
			}
			out[i] = cast
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported cast target %T", target)
	}
}

// applyEnum casts a leaf datum into an enum type. An already-enum datum
// of the same type passes through; any other enum type is rejected
// (strict type identity, no transitive enum→enum casts).
func applyEnum(d Datum, def *enumtype.Definition) (Datum, error) {
	switch v := d.(type) {
	case Enum:
		if v.Value.Type() == def {
			return v, nil
		}
		return nil, fmt.Errorf("cannot cast enum '%s' to enum '%s'",
			v.Value.Type().Name(), def.Name())
	case Int64:
		val, err := ToEnum(enumtype.IntegralRaw(int64(v)), def)
		if err != nil {
			return nil, err
		}
		return Enum{Value: val}, nil
	case Text:
		val, err := ToEnum(enumtype.TextualRaw(string(v)), def)
		if err != nil {
			return nil, err
		}
		return Enum{Value: val}, nil
	default:
		return nil, fmt.Errorf("cannot cast %T to enum '%s'", d, def.Name())
	}
}

// applyBigint unwraps integral enums and passes integral scalars.
func applyBigint(d Datum) (Datum, error) {
	switch v := d.(type) {
	case Int64:
		return v, nil
	case Enum:
		if v.Value.Raw().Kind() != enumtype.KindIntegral {
			return nil, fmt.Errorf("cannot cast enum '%s' to bigint", v.Value.Type().Name())
		}
		return Int64(v.Value.Raw().Int64()), nil
	default:
		return nil, fmt.Errorf("cannot cast %T to bigint", d)
	}
}

// applyVarchar unwraps textual enums and passes textual scalars.
func applyVarchar(d Datum) (Datum, error) {
	switch v := d.(type) {
	case Text:
		return v, nil
	case Enum:
		if v.Value.Raw().Kind() != enumtype.KindTextual {
			return nil, fmt.Errorf("cannot cast enum '%s' to varchar", v.Value.Type().Name())
		}
		return Text(v.Value.Raw().Text()), nil
	default:
		return nil, fmt.Errorf("cannot cast %T to varchar", d)
	}
}
