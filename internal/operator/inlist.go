package operator

import "github.com/enumeral/enumeral/internal/enumtype"

// Truth is the three-valued logic result of a NULL-bearing predicate.
type Truth int

const (
	TruthUnknown Truth = iota
	TruthFalse
	TruthTrue
)

// String returns the SQL spelling of the truth value.
func (t Truth) String() string {
	switch t {
	case TruthTrue:
		return "true"
	case TruthFalse:
		return "false"
	default:
		return "null"
	}
}

// In evaluates probe IN (list...). List entries are pointers so NULL
// entries can appear as nil.
//
// Type rules, checked before any matching:
//   - every non-null list item must share one enum type, otherwise the
//     "All IN list values must be the same type" error;
//   - that type must be the probe's type, otherwise the "IN value and
//     list items must be the same type: <type>" error naming the probe.
//
// NULL entries are skipped for matching. If no non-null entry matches
// but a NULL entry was present, the result is unknown, not false.
func In(probe enumtype.Value, list []*enumtype.Value) (Truth, error) {
	var itemType *enumtype.Definition
	sawNull := false

	for _, item := range list {
		if item == nil {
			sawNull = true
			continue
		}
		if itemType == nil {
			itemType = item.Type()
			continue
		}
		if item.Type() != itemType {
			return TruthUnknown, &HeterogeneousInListError{}
		}
	}
	if itemType != nil && itemType != probe.Type() {
		return TruthUnknown, &HeterogeneousInListError{ProbeType: probe.Type().Name()}
	}

	for _, item := range list {
		if item == nil {
			continue
		}
		if probe.Raw().Equal(item.Raw()) {
			return TruthTrue, nil
		}
	}
	if sawNull {
		return TruthUnknown, nil
	}
	return TruthFalse, nil
}
