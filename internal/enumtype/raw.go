package enumtype

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Kind identifies the backing representation of an enum type.
// This is a closed variant: no third kind is anticipated, and every
// switch over Kind must handle both cases exhaustively.
type Kind int

const (
	// KindIntegral backs entries with 64-bit signed integers.
	KindIntegral Kind = iota
	// KindTextual backs entries with Unicode strings.
	KindTextual
)

// String returns the lowercase display name used in diagnostics.
func (k Kind) String() string {
	switch k {
	case KindIntegral:
		return "integral"
	case KindTextual:
		return "textual"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Raw is the backing scalar of an enum entry or value: an int64 for
// integral types, a string for textual types. Raw is comparable and
// usable as a map key.
type Raw struct {
	kind Kind
	i    int64
	s    string
}

// IntegralRaw wraps an int64 backing value.
func IntegralRaw(v int64) Raw {
	return Raw{kind: KindIntegral, i: v}
}

// TextualRaw wraps a string backing value. The empty string and
// whitespace-only strings are legal values.
func TextualRaw(v string) Raw {
	return Raw{kind: KindTextual, s: v}
}

// Kind reports the backing kind of the scalar.
func (r Raw) Kind() Kind {
	return r.kind
}

// Int64 returns the integral backing value. Only meaningful when
// Kind() == KindIntegral.
func (r Raw) Int64() int64 {
	return r.i
}

// Text returns the textual backing value. Only meaningful when
// Kind() == KindTextual.
func (r Raw) Text() string {
	return r.s
}

// Equal reports backing-scalar equality. Scalars of different kinds are
// never equal.
func (r Raw) Equal(other Raw) bool {
	return r == other
}

// Compare orders two scalars of the same kind. Integral scalars compare
// as signed 64-bit integers; textual scalars compare by lexicographic
// order of Unicode code points. UTF-8 byte order preserves code-point
// order, so native string comparison is exact here.
func (r Raw) Compare(other Raw) int {
	switch r.kind {
	case KindIntegral:
		switch {
		case r.i < other.i:
			return -1
		case r.i > other.i:
			return 1
		default:
			return 0
		}
	case KindTextual:
		return strings.Compare(r.s, other.s)
	default:
		return 0
	}
}

// String renders the scalar exactly as supplied, for embedding in
// diagnostics such as the "No value" message.
func (r Raw) String() string {
	switch r.kind {
	case KindIntegral:
		return fmt.Sprintf("%d", r.i)
	default:
		return r.s
	}
}

// foldName produces the canonical case-insensitive form of a key or
// qualified name. A fresh Caser is built per call: Casers carry state
// and must not be shared between goroutines.
func foldName(s string) string {
	return cases.Fold().String(s)
}

// upperName uppercases a key for the UnknownKeyError message.
func upperName(s string) string {
	return cases.Upper(language.Und).String(s)
}
