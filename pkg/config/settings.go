package config

import (
	"strings"
	"time"

	"github.com/fluffis/invoicehandler/pkg/errors"
	"github.com/fluffis/invoicehandler/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment variables that override settings,
// e.g. INVOICEHANDLER_SETTINGS_MAX_LOCK_RETRIES=5.
const EnvPrefix = "INVOICEHANDLER_SETTINGS_"

// Defaults mirrored from embedded/defaults.toml.
const (
	DefaultMaxLockRetries = 30
	DefaultLockRetryDelay = 1000 * time.Millisecond
	DefaultPatternSyntax  = "re2"
)

// Settings holds the process-wide configuration. It is read once at startup
// and never reloaded.
type Settings struct {
	// WatchDirectory is the absolute, normalized directory being watched.
	WatchDirectory string
	// MaxLockRetries is the number of lock probes, the first one included.
	MaxLockRetries int
	// LockRetryDelay is the pause between two failed probes.
	LockRetryDelay time.Duration
	// PatternSyntax selects the regular expression dialect for translations.
	PatternSyntax string
}

type rawSettings struct {
	WatchDirectory   string `koanf:"watch_directory"`
	MaxLockRetries   int    `koanf:"max_lock_retries"`
	LockRetryDelayMs int64  `koanf:"lock_retry_delay_ms"`
	PatternSyntax    string `koanf:"pattern_syntax"`
}

// settingsOnly hides the translations section from koanf. Pattern keys
// contain dots, which koanf would treat as nesting.
type settingsOnly struct {
	koanf.Parser
}

func (p settingsOnly) Unmarshal(b []byte) (map[string]interface{}, error) {
	m, err := p.Parser.Unmarshal(b)
	if err != nil {
		return nil, err
	}
	delete(m, translationsSection)
	return m, nil
}

func envKey(s string) string {
	return "settings." + strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
}

// loadSettings layers defaults, the file content and the environment, then
// decodes and validates the settings section. baseDir anchors a relative
// watch_directory.
func loadSettings(data []byte, format Format, baseDir string) (Settings, error) {
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return Settings{}, errors.Wrap(err, errors.ErrInternal, "failed to load defaults")
	}

	if err := k.Load(&rawBytesProvider{bytes: data}, settingsOnly{Parser: format.parser()}); err != nil {
		return Settings{}, errors.Wrap(err, errors.ErrConfigParse, "failed to parse configuration")
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return Settings{}, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	var raw rawSettings
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &raw,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("settings", &raw, unmarshalConf); err != nil {
		return Settings{}, errors.Wrap(err, errors.ErrConfigInvalid, "invalid settings")
	}

	return raw.validate(baseDir)
}

func (r rawSettings) validate(baseDir string) (Settings, error) {
	if strings.TrimSpace(r.WatchDirectory) == "" {
		return Settings{}, errors.New(errors.ErrConfigInvalid, "missing 'watch_directory' in [settings]")
	}

	if r.MaxLockRetries < 1 {
		return Settings{}, errors.Newf(errors.ErrConfigInvalid,
			"invalid max_lock_retries: %d (must be at least 1)", r.MaxLockRetries).
			WithDetail("max_lock_retries", r.MaxLockRetries)
	}

	if r.LockRetryDelayMs < 0 {
		return Settings{}, errors.Newf(errors.ErrConfigInvalid,
			"invalid lock_retry_delay_ms: %d (must not be negative)", r.LockRetryDelayMs).
			WithDetail("lock_retry_delay_ms", r.LockRetryDelayMs)
	}

	dir, err := paths.NormalizePath(paths.ResolveRelative(baseDir, r.WatchDirectory))
	if err != nil {
		return Settings{}, errors.Wrap(err, errors.ErrConfigInvalid, "invalid watch_directory")
	}

	syntax := strings.ToLower(strings.TrimSpace(r.PatternSyntax))
	if syntax == "" {
		syntax = DefaultPatternSyntax
	}

	return Settings{
		WatchDirectory: dir,
		MaxLockRetries: r.MaxLockRetries,
		LockRetryDelay: time.Duration(r.LockRetryDelayMs) * time.Millisecond,
		PatternSyntax:  syntax,
	}, nil
}
