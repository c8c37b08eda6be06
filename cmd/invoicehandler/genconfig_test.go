// Test Type: Unit Test
// Description: Tests for writing the sample configuration through afero

package invoicehandler

import (
	"bytes"
	"testing"

	"github.com/fluffis/invoicehandler/pkg/config"
	"github.com/fluffis/invoicehandler/pkg/errors"
	"github.com/fluffis/invoicehandler/pkg/testutil"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteSample(t *testing.T) {
	const target = "/home/u/.config/invoicehandler/config.toml"
	sample := config.SampleConfig(config.FormatTOML)

	t.Run("creates_parents", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		var out bytes.Buffer

		require.NoError(t, writeSample(fs, &out, target, sample, false))

		content, err := afero.ReadFile(fs, target)
		require.NoError(t, err)
		assert.Equal(t, sample, string(content))
		assert.Contains(t, out.String(), target)
	})

	t.Run("refuses_to_overwrite", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		testutil.WriteMemFile(t, fs, target, "# mine")

		err := writeSample(fs, &bytes.Buffer{}, target, sample, false)

		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput), "got %v", err)
		content, _ := afero.ReadFile(fs, target)
		assert.Equal(t, "# mine", string(content))
	})

	t.Run("force_overwrites", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		testutil.WriteMemFile(t, fs, target, "# mine")

		require.NoError(t, writeSample(fs, &bytes.Buffer{}, target, sample, true))

		content, _ := afero.ReadFile(fs, target)
		assert.Equal(t, sample, string(content))
	})

	t.Run("read_only_filesystem", func(t *testing.T) {
		fs := afero.NewReadOnlyFs(afero.NewMemMapFs())

		err := writeSample(fs, &bytes.Buffer{}, target, sample, false)

		assert.True(t, errors.IsErrorCode(err, errors.ErrFileAccess), "got %v", err)
		assert.Equal(t, errors.CategoryFileAccess, errors.CategoryOf(err))
	})
}
