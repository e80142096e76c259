package fabric

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// LoadOptions reads a TOML file on top of DefaultOptions and validates the result.
//
//	rows = 30
//	columns = 30
//	spacing = 0.075
//	falloff = 2
func LoadOptions(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("load fabric options: %w", err)
	}
	return ParseOptions(data)
}

// ParseOptions decodes TOML data on top of DefaultOptions and validates the result.
func ParseOptions(data []byte) (Options, error) {
	opts := DefaultOptions()
	if err := toml.Unmarshal(data, &opts); err != nil {
		return Options{}, fmt.Errorf("parse fabric options: %w", err)
	}
	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts.withDefaults(), nil
}
