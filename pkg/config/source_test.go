package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fluffis/invoicehandler/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestFormatFor(t *testing.T) {
	assert.Equal(t, FormatTOML, FormatFor("/home/u/.invoicehandler"))
	assert.Equal(t, FormatTOML, FormatFor("/etc/config.toml"))
	assert.Equal(t, FormatYAML, FormatFor("/etc/config.yaml"))
	assert.Equal(t, FormatYAML, FormatFor("/etc/config.YML"))
}

func TestFileSource_Settings(t *testing.T) {
	t.Run("defaults_applied", func(t *testing.T) {
		dir := t.TempDir()
		inbox := filepath.Join(dir, "inbox")
		path := writeConfig(t, dir, "config.toml", `
[settings]
watch_directory = "`+inbox+`"
`)

		settings, err := NewFileSource(path).Settings()
		require.NoError(t, err)

		assert.Equal(t, inbox, settings.WatchDirectory)
		assert.Equal(t, DefaultMaxLockRetries, settings.MaxLockRetries)
		assert.Equal(t, DefaultLockRetryDelay, settings.LockRetryDelay)
		assert.Equal(t, "re2", settings.PatternSyntax)
	})

	t.Run("file_values_override_defaults", func(t *testing.T) {
		dir := t.TempDir()
		path := writeConfig(t, dir, "config.toml", `
[settings]
watch_directory = "/srv/inbox"
max_lock_retries = 5
lock_retry_delay_ms = 250
pattern_syntax = "Extended"

[translations]
'invoice_(\d+)\.pdf' = 'INV-$1.pdf'
`)

		settings, err := NewFileSource(path).Settings()
		require.NoError(t, err)

		assert.Equal(t, filepath.Clean("/srv/inbox"), settings.WatchDirectory)
		assert.Equal(t, 5, settings.MaxLockRetries)
		assert.Equal(t, 250*time.Millisecond, settings.LockRetryDelay)
		assert.Equal(t, "extended", settings.PatternSyntax)
	})

	t.Run("relative_watch_directory_resolves_against_config_dir", func(t *testing.T) {
		dir := t.TempDir()
		path := writeConfig(t, dir, "config.toml", `
[settings]
watch_directory = "inbox"
`)

		settings, err := NewFileSource(path).Settings()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "inbox"), settings.WatchDirectory)
	})

	t.Run("environment_overrides_file", func(t *testing.T) {
		dir := t.TempDir()
		path := writeConfig(t, dir, "config.toml", `
[settings]
watch_directory = "/srv/inbox"
max_lock_retries = 5
`)
		t.Setenv("INVOICEHANDLER_SETTINGS_MAX_LOCK_RETRIES", "7")
		t.Setenv("INVOICEHANDLER_SETTINGS_LOCK_RETRY_DELAY_MS", "10")

		settings, err := NewFileSource(path).Settings()
		require.NoError(t, err)
		assert.Equal(t, 7, settings.MaxLockRetries)
		assert.Equal(t, 10*time.Millisecond, settings.LockRetryDelay)
	})

	t.Run("yaml", func(t *testing.T) {
		dir := t.TempDir()
		path := writeConfig(t, dir, "config.yaml", `
settings:
  watch_directory: /srv/inbox
  max_lock_retries: 3
translations:
  'a\.pdf': 'b.pdf'
`)

		settings, err := NewFileSource(path).Settings()
		require.NoError(t, err)
		assert.Equal(t, filepath.Clean("/srv/inbox"), settings.WatchDirectory)
		assert.Equal(t, 3, settings.MaxLockRetries)
	})
}

func TestFileSource_SettingsErrors(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantCode errors.ErrorCode
	}{
		{
			name:     "missing_watch_directory",
			content:  "[settings]\nmax_lock_retries = 3\n",
			wantCode: errors.ErrConfigInvalid,
		},
		{
			name:     "zero_retries",
			content:  "[settings]\nwatch_directory = \"/srv\"\nmax_lock_retries = 0\n",
			wantCode: errors.ErrConfigInvalid,
		},
		{
			name:     "negative_delay",
			content:  "[settings]\nwatch_directory = \"/srv\"\nlock_retry_delay_ms = -1\n",
			wantCode: errors.ErrConfigInvalid,
		},
		{
			name:     "non_numeric_retries",
			content:  "[settings]\nwatch_directory = \"/srv\"\nmax_lock_retries = \"many\"\n",
			wantCode: errors.ErrConfigInvalid,
		},
		{
			name:     "malformed_toml",
			content:  "[settings\nwatch_directory = ",
			wantCode: errors.ErrConfigParse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), "config.toml", tt.content)

			_, err := NewFileSource(path).Settings()
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, tt.wantCode), "got %v", err)
			assert.Equal(t, errors.CategoryConfiguration, errors.CategoryOf(err))
		})
	}

	t.Run("missing_file", func(t *testing.T) {
		_, err := NewFileSource(filepath.Join(t.TempDir(), "nope.toml")).Settings()
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigNotFound), "got %v", err)
	})
}

func TestFileSource_Rules(t *testing.T) {
	t.Run("toml_preserves_declaration_order", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), "config.toml", `
[settings]
watch_directory = "/srv/inbox"

[translations]
'invoice_(\d+)\.pdf' = 'INV-$1.pdf'
"zeta" = "last-alphabetically-first-declared"
'.*' = 'unmatched_$0'
alpha = "beta"

[other]
ignored = "yes"
`)

		specs, err := NewFileSource(path).Rules()
		require.NoError(t, err)

		assert.Equal(t, []RuleSpec{
			{Pattern: `invoice_(\d+)\.pdf`, Replacement: "INV-$1.pdf"},
			{Pattern: "zeta", Replacement: "last-alphabetically-first-declared"},
			{Pattern: ".*", Replacement: "unmatched_$0"},
			{Pattern: "alpha", Replacement: "beta"},
		}, specs)
	})

	t.Run("yaml_preserves_declaration_order", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), "config.yml", `
settings:
  watch_directory: /srv/inbox
translations:
  'invoice_(\d+)\.pdf': 'INV-$1.pdf'
  zeta: z
  '.*': 'unmatched_$0'
`)

		specs, err := NewFileSource(path).Rules()
		require.NoError(t, err)

		assert.Equal(t, []RuleSpec{
			{Pattern: `invoice_(\d+)\.pdf`, Replacement: "INV-$1.pdf"},
			{Pattern: "zeta", Replacement: "z"},
			{Pattern: ".*", Replacement: "unmatched_$0"},
		}, specs)
	})

	t.Run("missing_section_is_empty", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), "config.toml", "[settings]\nwatch_directory = \"/srv\"\n")

		specs, err := NewFileSource(path).Rules()
		require.NoError(t, err)
		assert.Empty(t, specs)
	})

	t.Run("empty_yaml_section_is_empty", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), "config.yaml", "settings:\n  watch_directory: /srv\ntranslations:\n")

		specs, err := NewFileSource(path).Rules()
		require.NoError(t, err)
		assert.Empty(t, specs)
	})

	t.Run("non_string_replacement", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), "config.toml", "[translations]\n'a' = 1\n")

		_, err := NewFileSource(path).Rules()
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigInvalid), "got %v", err)
	})

	t.Run("array_of_tables_rejected", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), "config.toml", "[[translations]]\npattern = 'a'\n")

		_, err := NewFileSource(path).Rules()
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigInvalid), "got %v", err)
	})

	t.Run("malformed_toml", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), "config.toml", "[translations]\n'a' = \n")

		_, err := NewFileSource(path).Rules()
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse), "got %v", err)
	})

	t.Run("malformed_yaml", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), "config.yaml", "translations: [unclosed\n")

		_, err := NewFileSource(path).Rules()
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse), "got %v", err)
	})

	t.Run("missing_file", func(t *testing.T) {
		_, err := NewFileSource(filepath.Join(t.TempDir(), "gone.toml")).Rules()
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigNotFound), "got %v", err)
	})
}

func TestSampleConfig(t *testing.T) {
	for _, format := range []Format{FormatTOML, FormatYAML} {
		t.Run(string(format), func(t *testing.T) {
			dir := t.TempDir()
			path := writeConfig(t, dir, "config."+string(format), SampleConfig(format))

			src := NewFileSource(path)
			settings, err := src.Settings()
			require.NoError(t, err)
			assert.Equal(t, 30, settings.MaxLockRetries)

			specs, err := src.Rules()
			require.NoError(t, err)
			require.Len(t, specs, 2)
			assert.Equal(t, `invoice_(\d+)\.pdf`, specs[0].Pattern)
		})
	}
}
