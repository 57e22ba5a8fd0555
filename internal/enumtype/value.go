package enumtype

// Value binds a backing scalar to its owning enum type. It is the unit
// of comparison, hashing, and storage for enum-typed expressions.
//
// Value is a plain value type with no shared mutable state: it is safe
// to copy, compare, and hash from any number of goroutines.
type Value struct {
	def *Definition
	raw Raw
}

// Type returns the owning enum type definition. The zero Value has no
// type and represents "no value"; it never flows out of a successful
// resolution or cast.
func (v Value) Type() *Definition {
	return v.def
}

// Raw returns the backing scalar. This is also the external
// representation of the value: display and serialization always use the
// underlying scalar, never the key that produced it.
func (v Value) Raw() Raw {
	return v.raw
}

// SameType reports whether two values share the identical type
// definition. Type identity is pointer identity: the registry holds the
// sole definition per name, so two values of one registered type always
// share a definition pointer.
func (v Value) SameType(other Value) bool {
	return v.def == other.def
}

// Equal reports value equality: same type and equal backing scalar,
// independent of which key (or casing) produced either side.
// Callers that must surface a type-mismatch diagnostic check SameType
// first; Equal itself treats cross-type values as simply unequal.
func (v Value) Equal(other Value) bool {
	return v.def == other.def && v.raw.Equal(other.raw)
}

// Compare orders two values of the same type using the backing kind's
// ordering rule. The caller guarantees SameType; comparing across types
// is a programming error whose result is unspecified.
func (v Value) Compare(other Value) int {
	return v.raw.Compare(other.raw)
}

// String renders the external representation of the value.
func (v Value) String() string {
	return v.raw.String()
}
