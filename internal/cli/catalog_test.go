package cli

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogImportAndList(t *testing.T) {
	dir := writeDeclsDir(t)
	dbPath := filepath.Join(t.TempDir(), "catalog.db")

	stdout, _, err := execCommand(t, "catalog", "import", "--decls", dir, "--db", dbPath)
	require.NoError(t, err)
	assert.Equal(t, "Imported 2 enum type(s)\n", stdout)

	stdout, _, err = execCommand(t, "catalog", "list", "--db", dbPath)
	require.NoError(t, err)
	assert.Contains(t, stdout, "test.enum.Mood\tintegral\t4 entries")
	assert.Contains(t, stdout, "test.enum.Country\ttextual\t2 entries")
}

func TestCatalogListJSON(t *testing.T) {
	dir := writeDeclsDir(t)
	dbPath := filepath.Join(t.TempDir(), "catalog.db")

	_, _, err := execCommand(t, "catalog", "import", "--decls", dir, "--db", dbPath)
	require.NoError(t, err)

	stdout, _, err := execCommand(t, "--format", "json", "catalog", "list", "--db", dbPath)
	require.NoError(t, err)
	assert.Contains(t, stdout, `"status":"ok"`)
	assert.Contains(t, stdout, `"name":"test.enum.Mood"`)
	assert.Contains(t, stdout, `"kind":"integral"`)
}

func TestCatalogImportTwiceFails(t *testing.T) {
	dir := writeDeclsDir(t)
	dbPath := filepath.Join(t.TempDir(), "catalog.db")

	_, _, err := execCommand(t, "catalog", "import", "--decls", dir, "--db", dbPath)
	require.NoError(t, err)

	stdout, _, err := execCommand(t, "catalog", "import", "--decls", dir, "--db", dbPath)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, stdout, "E_CATALOG")
}

func TestCatalogImportMissingDecls(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "catalog.db")

	_, _, err := execCommand(t, "catalog", "import", "--decls", "/nonexistent", "--db", dbPath)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
