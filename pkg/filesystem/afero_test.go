// Test Type: Unit Test
// Description: Tests for the filesystem helpers on top of afero

package filesystem_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fluffis/invoicehandler/pkg/filesystem"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExists(t *testing.T) {
	fs := filesystem.NewMemory()
	require.NoError(t, fs.MkdirAll("/inbox/sub", 0755))
	require.NoError(t, afero.WriteFile(fs, "/inbox/a.pdf", []byte("pdf"), 0644))

	assert.True(t, filesystem.Exists(fs, "/inbox/a.pdf"))
	assert.False(t, filesystem.Exists(fs, "/inbox/missing.pdf"))
	assert.False(t, filesystem.Exists(fs, "/inbox/sub"), "directories are not candidates")
}

func TestProbeReadWrite(t *testing.T) {
	fs := filesystem.NewMemory()
	require.NoError(t, afero.WriteFile(fs, "/inbox/a.pdf", []byte("pdf"), 0644))

	assert.NoError(t, filesystem.ProbeReadWrite(fs, "/inbox/a.pdf"))

	err := filesystem.ProbeReadWrite(fs, "/inbox/missing.pdf")
	assert.True(t, os.IsNotExist(err), "got %v", err)

	content, err := afero.ReadFile(fs, "/inbox/a.pdf")
	require.NoError(t, err)
	assert.Equal(t, "pdf", string(content), "probing must not truncate")
}

func TestNewOS(t *testing.T) {
	fs := filesystem.NewOS()
	dir := t.TempDir()
	oldPath := filepath.Join(dir, "scan.pdf")
	newPath := filepath.Join(dir, "renamed.pdf")
	require.NoError(t, os.WriteFile(oldPath, []byte("hello"), 0644))

	require.True(t, filesystem.Exists(fs, oldPath))
	require.NoError(t, filesystem.ProbeReadWrite(fs, oldPath))
	require.NoError(t, filesystem.Rename(fs, oldPath, newPath))

	assert.False(t, filesystem.Exists(fs, oldPath))
	assert.True(t, filesystem.Exists(fs, newPath))
}
