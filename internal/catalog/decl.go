// Package catalog loads enum type declarations and registers them.
//
// Declarations live in YAML files validated against an embedded CUE
// schema before any definition is built. Loading happens once during
// engine startup — the catalog is the registration entry point the
// plugin barrier guards — and may optionally persist registered types
// to a SQLite-backed store so a registry can be rebuilt from disk.
package catalog

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/enumeral/enumeral/internal/enumtype"
)

// DeclFile is the top-level shape of one declaration file.
type DeclFile struct {
	// Enums lists the enum types declared by this file.
	Enums []EnumDecl `yaml:"enums"`
}

// EnumDecl declares one enum type.
type EnumDecl struct {
	// Name is the dotted qualified name, e.g. "test.enum.Mood".
	Name string `yaml:"name"`

	// Kind is "integral" or "textual".
	Kind string `yaml:"kind"`

	// Entries is the ordered key→value mapping. Order in the file is
	// definition order.
	Entries []EntryDecl `yaml:"entries"`
}

// EntryDecl declares one entry. Value must be an integer for integral
// enums and a string for textual enums; a quoted "0" is a string.
type EntryDecl struct {
	Key   string `yaml:"key"`
	Value any    `yaml:"value"`
}

// ParseDecls parses one YAML declaration document, validates it against
// the schema, and builds definitions.
func ParseDecls(data []byte) ([]*enumtype.Definition, error) {
	var file DeclFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse declarations: %w", err)
	}
	if err := validateDecls(&file); err != nil {
		return nil, err
	}

	defs := make([]*enumtype.Definition, 0, len(file.Enums))
	for _, decl := range file.Enums {
		def, err := buildDefinition(decl)
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}
	return defs, nil
}

// buildDefinition converts one validated declaration into a definition.
func buildDefinition(decl EnumDecl) (*enumtype.Definition, error) {
	var kind enumtype.Kind
	switch decl.Kind {
	case "integral":
		kind = enumtype.KindIntegral
	case "textual":
		kind = enumtype.KindTextual
	default:
		return nil, fmt.Errorf("enum '%s': unknown kind %q", decl.Name, decl.Kind)
	}

	entries := make([]enumtype.Entry, 0, len(decl.Entries))
	for _, e := range decl.Entries {
		raw, err := declValue(kind, e.Value)
		if err != nil {
			return nil, fmt.Errorf("enum '%s', key '%s': %w", decl.Name, e.Key, err)
		}
		entries = append(entries, enumtype.Entry{Key: e.Key, Value: raw})
	}

	def, err := enumtype.NewDefinition(decl.Name, kind, entries)
	if err != nil {
		return nil, err
	}
	return def, nil
}

// declValue coerces a decoded YAML scalar to the declared backing kind.
// yaml.v3 decodes integers as int, int64, or uint64 depending on range.
func declValue(kind enumtype.Kind, v any) (enumtype.Raw, error) {
	switch kind {
	case enumtype.KindIntegral:
		switch n := v.(type) {
		case int:
			return enumtype.IntegralRaw(int64(n)), nil
		case int64:
			return enumtype.IntegralRaw(n), nil
		case uint64:
			if n > 1<<63-1 {
				return enumtype.Raw{}, fmt.Errorf("value %d exceeds int64 range", n)
			}
			return enumtype.IntegralRaw(int64(n)), nil
		default:
			return enumtype.Raw{}, fmt.Errorf("integral enum requires an integer value, got %T", v)
		}
	case enumtype.KindTextual:
		s, ok := v.(string)
		if !ok {
			return enumtype.Raw{}, fmt.Errorf("textual enum requires a string value, got %T", v)
		}
		return enumtype.TextualRaw(s), nil
	default:
		return enumtype.Raw{}, fmt.Errorf("unknown kind %v", kind)
	}
}

// RegisterAll registers every definition, stopping at the first error.
func RegisterAll(reg *enumtype.Registry, defs []*enumtype.Definition) error {
	for _, def := range defs {
		if err := reg.Register(def); err != nil {
			return err
		}
	}
	return nil
}
