// Package resolve turns dotted identifier chains from query text into
// enum values.
//
// The engine's name-resolution pass calls TryResolve for every dotted
// identifier it cannot otherwise bind as a column or table reference.
// Resolution is a pure function over the static registry: it needs no
// engine state, so the enum core stays decoupled from the rest of name
// binding. On a non-match the engine's ordinary binder proceeds.
package resolve

import "github.com/enumeral/enumeral/internal/enumtype"

// Resolver resolves enum literals against one registry.
type Resolver struct {
	reg *enumtype.Registry
}

// NewResolver creates a resolver over the given registry.
func NewResolver(reg *enumtype.Registry) *Resolver {
	return &Resolver{reg: reg}
}

// TryResolve determines whether an identifier chain denotes an enum
// literal (type prefix + key suffix).
//
// Chain parts arrive already split per the query's quoting: a quoted
// part like "test.enum.mood" is one part. Quoting only affects
// splitting; both the type-name portion and the key portion are always
// matched case-insensitively.
//
// Returns:
//   - (value, true, nil) on a successful literal resolution
//   - (zero, false, nil) when no type prefix matches — the chain is not
//     an enum literal and ordinary resolution proceeds
//   - (zero, true, err) when a type matched but resolution failed:
//     UnknownKeyError for a missing key, TypeAsValueError when the full
//     chain names a type with no key portion remaining
func (r *Resolver) TryResolve(chain []string) (enumtype.Value, bool, error) {
	if len(chain) == 0 {
		return enumtype.Value{}, false, nil
	}

	// A chain that names a type exactly leaves no key to resolve.
	// Flag it rather than guessing a default value.
	if def, ok := r.reg.LookupChain(chain); ok {
		return enumtype.Value{}, true, &enumtype.TypeAsValueError{Type: def}
	}

	match, ok := r.reg.ResolvePrefix(chain)
	if !ok {
		return enumtype.Value{}, false, nil
	}

	val, err := match.Type.Value(match.Key)
	if err != nil {
		return enumtype.Value{}, true, err
	}
	return val, true, nil
}
