package operator

import (
	"sort"

	"github.com/enumeral/enumeral/internal/enumtype"
)

// Distinct dedupes a sequence of enum values by the equality rule,
// preserving first-occurrence order within the input — not sorted
// order, not declaration order. This feeds DISTINCT, GROUP BY key
// extraction, and ARRAY_AGG(DISTINCT ...).
//
// All inputs must share one enum type; a mixed sequence is an
// OperandTypeError since grouping across enum types is an upstream
// analysis bug.
func Distinct(values []enumtype.Value) ([]enumtype.Value, error) {
	if len(values) == 0 {
		return nil, nil
	}

	typ := values[0].Type()
	seen := make(map[enumtype.Raw]struct{}, len(values))
	out := make([]enumtype.Value, 0, len(values))
	for _, v := range values {
		if v.Type() != typ {
			return nil, &OperandTypeError{
				Operator: "DISTINCT",
				Left:     typ.Name(),
				Right:    v.Type().Name(),
			}
		}
		if _, dup := seen[v.Raw()]; dup {
			continue
		}
		seen[v.Raw()] = struct{}{}
		out = append(out, v)
	}
	return out, nil
}

// ArgSortStable returns the permutation that orders values ascending
// under the enum ordering rule, with ties broken by input row order.
// Window partitioning and ordering executors apply the permutation to
// whole rows.
func ArgSortStable(values []enumtype.Value) ([]int, error) {
	if len(values) == 0 {
		return nil, nil
	}
	typ := values[0].Type()
	for _, v := range values[1:] {
		if v.Type() != typ {
			return nil, &OperandTypeError{
				Operator: "ORDER BY",
				Left:     typ.Name(),
				Right:    v.Type().Name(),
			}
		}
	}

	perm := make([]int, len(values))
	for i := range perm {
		perm[i] = i
	}
	sort.SliceStable(perm, func(i, j int) bool {
		return values[perm[i]].Compare(values[perm[j]]) < 0
	})
	return perm, nil
}
