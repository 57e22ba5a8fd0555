package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enumeral/enumeral/internal/enumtype"
)

func writeDecl(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestLoadDirReadsSortedFiles(t *testing.T) {
	dir := t.TempDir()
	writeDecl(t, dir, "b_country.yaml", countryYAML)
	writeDecl(t, dir, "a_mood.yml", moodYAML)
	writeDecl(t, dir, "notes.txt", "ignored")

	result, err := LoadDir(dir)
	require.NoError(t, err)
	assert.Equal(t, 2, result.FileCount)
	require.Len(t, result.Definitions, 2)

	// a_mood.yml sorts before b_country.yaml.
	assert.Equal(t, "test.enum.Mood", result.Definitions[0].Name())
	assert.Equal(t, "test.enum.Country", result.Definitions[1].Name())
}

func TestLoadDirErrors(t *testing.T) {
	t.Run("missing_directory", func(t *testing.T) {
		_, err := LoadDir(filepath.Join(t.TempDir(), "absent"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "declarations directory not found")
	})

	t.Run("not_a_directory", func(t *testing.T) {
		dir := t.TempDir()
		file := filepath.Join(dir, "decls.yaml")
		require.NoError(t, os.WriteFile(file, []byte(moodYAML), 0o644))
		_, err := LoadDir(file)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not a directory")
	})

	t.Run("no_declaration_files", func(t *testing.T) {
		_, err := LoadDir(t.TempDir())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no declaration files found")
	})

	t.Run("invalid_file_names_path", func(t *testing.T) {
		dir := t.TempDir()
		writeDecl(t, dir, "bad.yaml", "enums:\n  - name: x\n    kind: floating\n    entries:\n      - key: A\n        value: 1\n")
		_, err := LoadDir(dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "bad.yaml")
	})
}

func TestLoadAndRegisterLeavesRegistryUntouchedOnFailure(t *testing.T) {
	dir := t.TempDir()
	writeDecl(t, dir, "a_mood.yaml", moodYAML)
	writeDecl(t, dir, "b_dup.yaml", moodYAML)

	reg := enumtype.NewRegistry()
	_, err := LoadAndRegister(reg, dir)
	require.Error(t, err)
	var dupErr *enumtype.DuplicateTypeError
	assert.ErrorAs(t, err, &dupErr)
}

func TestLoadAndRegister(t *testing.T) {
	dir := t.TempDir()
	combined := `
enums:
  - name: test.enum.Mood
    kind: integral
    entries:
      - key: HAPPY
        value: 0
  - name: test.enum.Country
    kind: textual
    entries:
      - key: US
        value: United States
`
	writeDecl(t, dir, "decls.yaml", combined)

	reg := enumtype.NewRegistry()
	result, err := LoadAndRegister(reg, dir)
	require.NoError(t, err)
	assert.Len(t, result.Definitions, 2)
	assert.Equal(t, []string{"test.enum.Country", "test.enum.Mood"}, reg.Names())
}
