package config

import (
	"fmt"
	"os"

	"licmedic/internal/flags"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is the config file auto-detected in the working directory
// when --config is not given.
const DefaultFileName = ".licmedic.yml"

// FileConfig is the YAML config file shape. All fields are optional; absent
// fields leave the built-in defaults in place.
type FileConfig struct {
	Year       string   `yaml:"year"`
	Owner      string   `yaml:"owner"`
	Root       string   `yaml:"root"`
	Dirs       []string `yaml:"dirs"`
	Extensions []string `yaml:"extensions"`
	Exclude    []string `yaml:"exclude"`
}

// LoadFile reads and parses a YAML config file.
func LoadFile(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	var fc FileConfig
	if unmarshalErr := yaml.Unmarshal(data, &fc); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file %q: %w", path, unmarshalErr)
	}
	return &fc, nil
}

// Apply copies file values into cfg. Precedence is defaults < file < flags:
// a field is only applied when it is present in the file and its
// corresponding flag was not set explicitly (changed reports that, keyed by
// canonical flag name).
func (fc *FileConfig) Apply(cfg *Config, changed func(flag string) bool) {
	if fc == nil {
		return
	}
	if changed == nil {
		changed = func(string) bool { return false }
	}

	if fc.Year != "" && !changed(flags.FlagYear) {
		cfg.Header.Year = fc.Year
	}
	if fc.Owner != "" && !changed(flags.FlagOwner) {
		cfg.Header.Owner = fc.Owner
	}
	if fc.Root != "" && !changed(flags.FlagRoot) {
		cfg.Targeting.Root = fc.Root
	}
	if len(fc.Dirs) > 0 && !changed(flags.FlagDirs) {
		cfg.Targeting.Dirs = fc.Dirs
	}
	if len(fc.Extensions) > 0 && !changed(flags.FlagExt) {
		cfg.Targeting.Extensions = fc.Extensions
	}
	if len(fc.Exclude) > 0 && !changed(flags.FlagExclude) {
		cfg.Targeting.Exclude = fc.Exclude
	}
}
