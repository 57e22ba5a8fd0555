package enumtype

import (
	"fmt"
)

// Entry is one declared key→value pair of an enum type.
type Entry struct {
	// Key is the declared name, matched case-insensitively.
	Key string

	// Value is the backing scalar. Values need not be unique across
	// entries of one type.
	Value Raw
}

// Definition is the immutable declaration of one enum type: a qualified
// name, a backing kind, and a finite ordered key→value mapping.
//
// Definitions are created once at registration time and never mutated.
// Entry order is definition order; it breaks ties when a cast matches
// duplicate values.
type Definition struct {
	name    string
	kind    Kind
	entries []Entry
	byKey   map[string]int // folded key → entry index
}

// NewDefinition constructs a validated enum type definition.
//
// It fails if the name is empty, entries is empty, an entry's scalar
// kind disagrees with the declared kind, or two keys collapse to the
// same case-insensitive form.
func NewDefinition(name string, kind Kind, entries []Entry) (*Definition, error) {
	if name == "" {
		return nil, fmt.Errorf("enum type name must not be empty")
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("enum type '%s' must declare at least one entry", name)
	}

	def := &Definition{
		name:    name,
		kind:    kind,
		entries: make([]Entry, len(entries)),
		byKey:   make(map[string]int, len(entries)),
	}
	copy(def.entries, entries)

	for i, e := range def.entries {
		if e.Key == "" {
			return nil, fmt.Errorf("enum type '%s': entry %d has an empty key", name, i)
		}
		if e.Value.Kind() != kind {
			return nil, fmt.Errorf("enum type '%s': key '%s' has %s value in %s enum",
				name, e.Key, e.Value.Kind(), kind)
		}
		folded := foldName(e.Key)
		if prev, dup := def.byKey[folded]; dup {
			return nil, fmt.Errorf("enum type '%s': keys '%s' and '%s' collide case-insensitively",
				name, def.entries[prev].Key, e.Key)
		}
		def.byKey[folded] = i
	}
	return def, nil
}

// MustDefinition is like NewDefinition but panics on error.
// Use only in tests or when inputs are known to be valid.
func MustDefinition(name string, kind Kind, entries []Entry) *Definition {
	def, err := NewDefinition(name, kind, entries)
	if err != nil {
		panic(err)
	}
	return def
}

// Name returns the qualified name exactly as declared.
func (d *Definition) Name() string {
	return d.name
}

// Kind returns the backing kind.
func (d *Definition) Kind() Kind {
	return d.kind
}

// Entries returns the declared entries in definition order.
// The returned slice must not be modified.
func (d *Definition) Entries() []Entry {
	return d.entries
}

// Lookup finds an entry by key, matched case-insensitively.
func (d *Definition) Lookup(key string) (Entry, bool) {
	i, ok := d.byKey[foldName(key)]
	if !ok {
		return Entry{}, false
	}
	return d.entries[i], true
}

// EntryForValue finds the first entry in definition order whose backing
// value equals raw.
func (d *Definition) EntryForValue(raw Raw) (Entry, bool) {
	for _, e := range d.entries {
		if e.Value.Equal(raw) {
			return e, true
		}
	}
	return Entry{}, false
}

// Value constructs an EnumValue of this type from a key, matched
// case-insensitively. It fails with UnknownKeyError if no key matches.
func (d *Definition) Value(key string) (Value, error) {
	e, ok := d.Lookup(key)
	if !ok {
		return Value{}, &UnknownKeyError{Type: d, Key: upperName(key)}
	}
	return Value{def: d, raw: e.Value}, nil
}

// ValueForRaw constructs an EnumValue from a backing scalar, validating
// membership. When duplicate values exist the first entry in definition
// order wins; the choice is unobservable downstream since display and
// equality use the underlying value, never the key.
//
// It fails with UnknownValueError if no entry's value equals raw.
func (d *Definition) ValueForRaw(raw Raw) (Value, error) {
	e, ok := d.EntryForValue(raw)
	if !ok {
		return Value{}, &UnknownValueError{Type: d, Value: raw}
	}
	return Value{def: d, raw: e.Value}, nil
}
