package cast

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/enumeral/enumeral/internal/enumtype"
)

// FromJSON decodes a JSON document and casts it into the target type.
//
// Object keys cast into an enum-typed map key are resolved against the
// target type's underlying values, not its declaration keys: the JSON
// key string is fed through the ordinary scalar→enum path. Numbers
// decode through json.Number so 64-bit values beyond float53 precision
// survive; fractional numbers are rejected since no enum-bearing shape
// can hold them.
func FromJSON(data []byte, target Type) (Datum, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	return castJSON(raw, target)
}

// castJSON recursively casts a decoded JSON value to the target type.
func castJSON(v any, target Type) (Datum, error) {
	if v == nil {
		return Null{}, nil
	}

	switch t := target.(type) {
	case EnumType:
		d, err := jsonScalar(v)
		if err != nil {
			return nil, err
		}
		return applyEnum(d, t.Def)
	case BigintType:
		d, err := jsonScalar(v)
		if err != nil {
			return nil, err
		}
		return applyBigint(d)
	case VarcharType:
		d, err := jsonScalar(v)
		if err != nil {
			return nil, err
		}
		return applyVarchar(d)
	case BooleanType:
		b, ok := v.(bool)
		if !ok {
			return nil, fmt.Errorf("cannot cast JSON %T to boolean", v)
		}
		return Bool(b), nil
	case ArrayType:
		arr, ok := v.([]any)
		if !ok {
			return nil, fmt.Errorf("cannot cast JSON %T to %s", v, TypeDisplay(target))
		}
		out := make(Array, len(arr))
		for i, elem := range arr {
			cast, err := castJSON(elem, t.Elem)
			if err != nil {
				return nil, fmt.Errorf("array[%d]: %w", i, err)
			}
			out[i] = cast
		}
		return out, nil
	case MapType:
		obj, ok := v.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("cannot cast JSON %T to %s", v, TypeDisplay(target))
		}
		out := Map{Keys: make([]Datum, 0, len(obj)), Values: make([]Datum, 0, len(obj))}
		for _, k := range sortedJSONKeys(obj) {
			// The object key is itself a string scalar cast into the
			// map's key type.
			castKey, err := castJSON(k, t.Key)
			if err != nil {
				return nil, fmt.Errorf("object key %q: %w", k, err)
			}
			castVal, err := castJSON(obj[k], t.Value)
			if err != nil {
				return nil, fmt.Errorf("object value for key %q: %w", k, err)
			}
			out.Keys = append(out.Keys, castKey)
			out.Values = append(out.Values, castVal)
		}
		return out, nil
	case RowType:
		obj, ok := v.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("cannot cast JSON %T to %s", v, TypeDisplay(target))
		}
		out := make(Row, len(t.Fields))
		for i, field := range t.Fields {
			fv, present := obj[field.Name]
			if !present {
				out[i] = Null{}
				continue
			}
			cast, err := castJSON(fv, field.Type)
			if err != nil {
				return nil, fmt.Errorf("row field %q: %w", field.Name, err)
			}
			out[i] = cast
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported cast target %T", target)
	}
}

// jsonScalar converts a decoded JSON leaf into a scalar datum.
func jsonScalar(v any) (Datum, error) {
	switch val := v.(type) {
	case string:
		return Text(val), nil
	case bool:
		return Bool(val), nil
	case json.Number:
		s := string(val)
		if strings.ContainsAny(s, ".eE") {
			return nil, fmt.Errorf("fractional JSON number %s has no enum-compatible type", val)
		}
		n, err := val.Int64()
		if err != nil {
			return nil, fmt.Errorf("JSON number out of int64 range: %s", val)
		}
		return Int64(n), nil
	default:
		return nil, fmt.Errorf("JSON %T is not a scalar", v)
	}
}

// sortedJSONKeys orders object keys for deterministic map output.
func sortedJSONKeys(obj map[string]any) []string {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ToJSON serializes a datum as JSON. Enum values render as their
// backing scalar — never the key — matching the external representation
// rule for result rows.
func ToJSON(d Datum) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeJSON(&buf, d); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeJSON(buf *bytes.Buffer, d Datum) error {
	switch v := d.(type) {
	case Null:
		buf.WriteString("null")
		return nil
	case Int64:
		fmt.Fprintf(buf, "%d", int64(v))
		return nil
	case Text:
		return writeJSONString(buf, string(v))
	case Bool:
		if v {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
		return nil
	case Enum:
		raw := v.Value.Raw()
		if raw.Kind() == enumtype.KindIntegral {
			fmt.Fprintf(buf, "%d", raw.Int64())
			return nil
		}
		return writeJSONString(buf, raw.Text())
	case Array:
		buf.WriteByte('[')
		for i, elem := range v {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, elem); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil
	case Map:
		buf.WriteByte('{')
		for i := range v.Keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			key, err := jsonObjectKey(v.Keys[i])
			if err != nil {
				return err
			}
			if err := writeJSONString(buf, key); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := writeJSON(buf, v.Values[i]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
		return nil
	case Row:
		// Rows serialize positionally, as arrays.
		buf.WriteByte('[')
		for i, field := range v {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, field); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil
	default:
		return fmt.Errorf("unsupported datum %T", d)
	}
}

// jsonObjectKey renders a map key as the JSON object key string.
func jsonObjectKey(d Datum) (string, error) {
	switch k := d.(type) {
	case Text:
		return string(k), nil
	case Int64:
		return fmt.Sprintf("%d", int64(k)), nil
	case Enum:
		return k.Value.Raw().String(), nil
	default:
		return "", fmt.Errorf("datum %T cannot be a JSON object key", d)
	}
}

// writeJSONString writes a JSON string literal.
func writeJSONString(buf *bytes.Buffer, s string) error {
	enc, err := json.Marshal(s)
	if err != nil {
		return err
	}
	buf.Write(enc)
	return nil
}
