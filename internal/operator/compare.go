package operator

import "github.com/enumeral/enumeral/internal/enumtype"

// Equal evaluates a = b: structural equality of the backing scalar,
// independent of which keys produced either side.
func Equal(a, b enumtype.Value) (bool, error) {
	if err := checkValues("=", a, b); err != nil {
		return false, err
	}
	return a.Raw().Equal(b.Raw()), nil
}

// NotEqual evaluates a <> b.
func NotEqual(a, b enumtype.Value) (bool, error) {
	if err := checkValues("<>", a, b); err != nil {
		return false, err
	}
	return !a.Raw().Equal(b.Raw()), nil
}

// Less evaluates a < b under the backing kind's ordering: signed int64
// for integral enums, Unicode code-point lexicographic for textual.
func Less(a, b enumtype.Value) (bool, error) {
	if err := checkValues("<", a, b); err != nil {
		return false, err
	}
	return a.Compare(b) < 0, nil
}

// LessOrEqual evaluates a <= b.
func LessOrEqual(a, b enumtype.Value) (bool, error) {
	if err := checkValues("<=", a, b); err != nil {
		return false, err
	}
	return a.Compare(b) <= 0, nil
}

// Greater evaluates a > b.
func Greater(a, b enumtype.Value) (bool, error) {
	if err := checkValues(">", a, b); err != nil {
		return false, err
	}
	return a.Compare(b) > 0, nil
}

// GreaterOrEqual evaluates a >= b.
func GreaterOrEqual(a, b enumtype.Value) (bool, error) {
	if err := checkValues(">=", a, b); err != nil {
		return false, err
	}
	return a.Compare(b) >= 0, nil
}

// Between evaluates x BETWEEN lo AND hi as lo <= x AND x <= hi. The
// bounds are taken as written: when lo > hi the predicate is simply
// false for every x, with no auto-swap.
func Between(x, lo, hi enumtype.Value) (bool, error) {
	if err := checkValues("BETWEEN", x, lo); err != nil {
		return false, err
	}
	if err := checkValues("BETWEEN", x, hi); err != nil {
		return false, err
	}
	return lo.Compare(x) <= 0 && x.Compare(hi) <= 0, nil
}

// Hash returns the pure hash of (type identity, raw) used by hash
// joins, grouping, and approximate-distinct sketches. Equal values hash
// identically.
func Hash(v enumtype.Value) uint64 {
	return enumtype.HashValue(v)
}

// JoinEqual matches two join keys. Keys match solely by (type identity,
// raw); a cross-type enum join is an analysis error surfaced at plan
// time rather than a silent empty result.
func JoinEqual(a, b enumtype.Value) (bool, error) {
	if err := checkValues("=", a, b); err != nil {
		return false, err
	}
	return a.Raw().Equal(b.Raw()), nil
}
