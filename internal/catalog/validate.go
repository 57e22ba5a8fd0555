package catalog

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
)

// declSchema constrains declaration files before definitions are built.
// Structural errors (missing keys, wrong value types, empty entry
// lists) surface here with CUE's field positions; semantic checks that
// need the case-insensitive key space (key collisions, kind/value
// agreement) stay in Go.
const declSchema = `
#Entry: {
	key:   string & !=""
	value: int | string
}

#Enum: {
	name: string & !=""
	kind: "integral" | "textual"
	entries: [#Entry, ...#Entry]
}

enums: [...#Enum]
`

// validateDecls checks a decoded declaration file against declSchema.
func validateDecls(file *DeclFile) error {
	ctx := cuecontext.New()

	schema := ctx.CompileString(declSchema)
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compile declaration schema: %w", err)
	}

	doc := ctx.Encode(declAsAny(file))
	if err := doc.Err(); err != nil {
		return fmt.Errorf("encode declarations: %w", err)
	}

	unified := schema.Unify(doc)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return &DeclValidationError{Details: cueerrors.Details(err, nil)}
	}
	return nil
}

// declAsAny rebuilds the declaration as plain maps/slices for
// ctx.Encode; encoding the struct directly would carry Go field names
// instead of the YAML ones the schema speaks.
func declAsAny(file *DeclFile) map[string]any {
	enums := make([]any, len(file.Enums))
	for i, e := range file.Enums {
		entries := make([]any, len(e.Entries))
		for j, en := range e.Entries {
			entries[j] = map[string]any{"key": en.Key, "value": en.Value}
		}
		enums[i] = map[string]any{
			"name":    e.Name,
			"kind":    e.Kind,
			"entries": entries,
		}
	}
	return map[string]any{"enums": enums}
}

// DeclValidationError reports a declaration file that fails the schema.
type DeclValidationError struct {
	// Details is CUE's multi-line error rendering with field paths.
	Details string
}

func (e *DeclValidationError) Error() string {
	return fmt.Sprintf("invalid enum declarations:\n%s", e.Details)
}
