package enumtype

import (
	"sort"
	"strings"
	"sync"
)

// Registry is the process-wide lookup of declared enum types, keyed by
// case-insensitive qualified name.
//
// Registration happens during engine or plugin initialization and is
// synchronized; the surrounding engine's plugin-loading barrier
// guarantees registration completes before any resolution is attempted.
// Reads after that point are contention-free under the RWMutex.
//
// Registry is modeled as an explicitly constructed object rather than
// package-level state so tests can hold several independent registries.
type Registry struct {
	mu    sync.RWMutex
	types map[string]*Definition // folded qualified name → definition
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{types: make(map[string]*Definition)}
}

// Register adds a definition. It fails with DuplicateTypeError if the
// case-insensitive qualified name exactly matches a registered type.
// This exact-duplicate check is what makes prefix resolution ties
// impossible later: two distinct registered names can never fold to
// prefixes of identical length.
func (r *Registry) Register(def *Definition) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	folded := foldName(def.Name())
	if existing, ok := r.types[folded]; ok {
		return &DuplicateTypeError{Name: def.Name(), Existing: existing.Name()}
	}
	r.types[folded] = def
	return nil
}

// Lookup finds a registered type by qualified name, matched
// case-insensitively.
func (r *Registry) Lookup(name string) (*Definition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.types[foldName(name)]
	return def, ok
}

// Names returns the registered qualified names as declared, sorted for
// deterministic listings.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.types))
	for _, def := range r.types {
		names = append(names, def.Name())
	}
	sort.Strings(names)
	return names
}

// PrefixMatch is the result of resolving an identifier chain against
// the registry.
type PrefixMatch struct {
	// Type is the matched definition.
	Type *Definition
	// Key is the trailing portion of the chain after the type prefix,
	// rejoined on '.'. Usually a single part; a dotted remainder simply
	// fails key lookup in the caller.
	Key string
}

// ResolvePrefix matches an ordered identifier chain against registered
// type names, preferring the longest prefix by part count. A prefix
// consumes at least one part and at most all-but-last, leaving the
// remainder as the candidate key.
//
// Returns false when no prefix matches, so the caller falls through to
// ordinary identifier resolution.
func (r *Registry) ResolvePrefix(chain []string) (PrefixMatch, bool) {
	if len(chain) < 2 {
		return PrefixMatch{}, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	for n := len(chain) - 1; n >= 1; n-- {
		joined := strings.Join(chain[:n], ".")
		if def, ok := r.types[foldName(joined)]; ok {
			return PrefixMatch{Type: def, Key: strings.Join(chain[n:], ".")}, true
		}
	}
	return PrefixMatch{}, false
}

// LookupChain matches an entire identifier chain as a type name with no
// key remaining. Used to flag "enum type used where a value was
// expected" before the prefix pass.
func (r *Registry) LookupChain(chain []string) (*Definition, bool) {
	if len(chain) == 0 {
		return nil, false
	}
	return r.Lookup(strings.Join(chain, "."))
}
