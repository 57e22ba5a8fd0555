package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const testDecls = `
enums:
  - name: test.enum.Mood
    kind: integral
    entries:
      - key: HAPPY
        value: 0
      - key: SAD
        value: 1
      - key: MELLOW
        value: 2147483657
      - key: curious
        value: -2
  - name: test.enum.Country
    kind: textual
    entries:
      - key: US
        value: United States
      - key: CHINA
        value: "中国"
`

// writeDeclsDir writes the shared declaration fixture into a temp dir.
func writeDeclsDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "decls.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testDecls), 0o644))
	return dir
}

// execCommand runs the root command with buffered output.
func execCommand(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cmd := NewRootCommand()
	outBuf, errBuf := &bytes.Buffer{}, &bytes.Buffer{}
	cmd.SetOut(outBuf)
	cmd.SetErr(errBuf)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return outBuf.String(), errBuf.String(), err
}
