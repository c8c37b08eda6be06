package config

import (
	_ "embed"
	"errors"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

//go:embed embedded/sample.toml
var sampleTOML []byte

//go:embed embedded/sample.yaml
var sampleYAML []byte

// SampleConfig returns a commented example configuration in the given format.
func SampleConfig(format Format) string {
	if format == FormatYAML {
		return string(sampleYAML)
	}
	return string(sampleTOML)
}

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}
