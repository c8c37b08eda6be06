package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/fluffis/invoicehandler/pkg/errors"
	"github.com/fluffis/invoicehandler/pkg/logging"
	"github.com/knadh/koanf/parsers/toml"
	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Format is the syntax of a configuration file.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// FormatFor picks the format from the file extension. Anything that is not
// .yaml or .yml, including the extensionless ~/.invoicehandler, is TOML.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

func (f Format) parser() koanf.Parser {
	if f == FormatYAML {
		return kyaml.Parser()
	}
	return toml.Parser()
}

// Source is the configuration collaborator consumed by the watcher pipeline.
type Source interface {
	// Settings is read once at startup.
	Settings() (Settings, error)
	// Rules is read at startup and after every change to the configuration.
	Rules() ([]RuleSpec, error)
}

// FileSource reads settings and translations from a file on disk. Every call
// re-reads the file.
type FileSource struct {
	path   string
	format Format
}

// NewFileSource creates a FileSource for path. The path should already be
// normalized (see paths.ConfigPath).
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path, format: FormatFor(path)}
}

// Path returns the configuration file location.
func (s *FileSource) Path() string {
	return s.path
}

// Format returns the syntax the file is parsed with.
func (s *FileSource) Format() Format {
	return s.format
}

// Settings implements Source.
func (s *FileSource) Settings() (Settings, error) {
	data, err := s.read()
	if err != nil {
		return Settings{}, err
	}

	settings, err := loadSettings(data, s.format, filepath.Dir(s.path))
	if err != nil {
		return Settings{}, err
	}

	logger := logging.GetLogger("config")
	logger.Debug().
		Str("path", s.path).
		Str("watchDirectory", settings.WatchDirectory).
		Int("maxLockRetries", settings.MaxLockRetries).
		Dur("lockRetryDelay", settings.LockRetryDelay).
		Str("patternSyntax", settings.PatternSyntax).
		Msg("Settings loaded")

	return settings, nil
}

// Rules implements Source.
func (s *FileSource) Rules() ([]RuleSpec, error) {
	data, err := s.read()
	if err != nil {
		return nil, err
	}

	specs, err := parseTranslations(data, s.format)
	if err != nil {
		return nil, errors.Wrapf(err, errors.GetErrorCode(err), "failed to read translations from %s", s.path)
	}

	return specs, nil
}

func (s *FileSource) read() ([]byte, error) {
	data, err := file.Provider(s.path).ReadBytes()
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(err, errors.ErrConfigNotFound, "config file not found at %s", s.path).
				WithDetail("path", s.path)
		}
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config file %s", s.path).
			WithDetail("path", s.path)
	}
	return data, nil
}
