// Test Type: Unit Test
// Description: Tests for the shared test helpers

package testutil

import (
	"errors"
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlakyFs(t *testing.T) {
	t.Run("refuses_configured_number_of_opens", func(t *testing.T) {
		fs := NewFlakyFs(afero.NewMemMapFs())
		fs.LockedOpens = 2
		WriteMemFile(t, fs, "/in/a.pdf", "x")

		for i := 0; i < 2; i++ {
			_, err := fs.OpenFile("/in/a.pdf", os.O_RDWR, 0)
			assert.True(t, errors.Is(err, ErrLocked), "open %d: %v", i+1, err)
		}

		f, err := fs.OpenFile("/in/a.pdf", os.O_RDWR, 0)
		require.NoError(t, err)
		require.NoError(t, f.Close())
		assert.Equal(t, 3, fs.ReadWriteOpens())
	})

	t.Run("read_only_opens_are_not_counted", func(t *testing.T) {
		fs := NewFlakyFs(afero.NewMemMapFs())
		fs.LockedOpens = -1
		WriteMemFile(t, fs, "/in/a.pdf", "x")

		content, err := afero.ReadFile(fs, "/in/a.pdf")
		require.NoError(t, err)
		assert.Equal(t, "x", string(content))
		assert.Zero(t, fs.ReadWriteOpens())
	})

	t.Run("records_renames", func(t *testing.T) {
		fs := NewFlakyFs(afero.NewMemMapFs())
		WriteMemFile(t, fs, "/in/a.pdf", "x")

		require.NoError(t, fs.Rename("/in/a.pdf", "/in/b.pdf"))
		assert.Equal(t, []RenameCall{{Old: "/in/a.pdf", New: "/in/b.pdf"}}, fs.Renames())
		assert.Equal(t, []string{"b.pdf"}, ListDir(t, fs, "/in"))
	})
}

func TestCaptureLogs(t *testing.T) {
	logs := CaptureLogs(t)

	log.Warn().Str("path", "/in/a.pdf").Msg("locked, retrying")
	log.Info().Msg("Loaded rule")

	assert.True(t, logs.Contains("Loaded rule"))
	assert.Equal(t, []string{"locked, retrying"}, logs.Messages(zerolog.WarnLevel))
	require.Len(t, logs.Entries(), 2)
	assert.Equal(t, "/in/a.pdf", logs.Entries()[0]["path"])
}

func TestMockSource(t *testing.T) {
	src := NewMockSource(Spec("a", "b"), Spec("c", "d"))

	specs, err := src.Rules()
	require.NoError(t, err)
	assert.Len(t, specs, 2)
	assert.Equal(t, "c", specs[1].Pattern)
	assert.Equal(t, 1, src.RulesCalls)
}
