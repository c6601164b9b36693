package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".hashforge"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// Profile is one named set of generation parameters in the config file.
// Zero values mean "not set" and fall back to defaults.
type Profile struct {
	// Threads overrides the worker count.
	Threads int `yaml:"threads,omitempty"`

	// NumLinks overrides the digest-reduce cycle count per chain.
	NumLinks uint64 `yaml:"numLinks,omitempty"`

	// CharsetSize overrides the reduction modulus.
	CharsetSize uint64 `yaml:"charsetSize,omitempty"`

	// ASCIIOffset overrides the reduction code point offset.
	ASCIIOffset uint64 `yaml:"asciiOffset,omitempty"`

	// Algorithm overrides the hash algorithm name.
	Algorithm string `yaml:"algorithm,omitempty"`
}

// File represents the structure of the .hashforge configuration file.
type File struct {
	// Defaults applies to every invocation unless overridden by a named
	// profile or a command-line flag.
	Defaults Profile `yaml:"defaults,omitempty"`

	// Profiles maps profile names (selected via --profile) to parameter
	// sets.
	Profiles map[string]Profile `yaml:"profiles,omitempty"`
}

// GetProfile returns the named profile merged over the file's defaults.
// An empty name returns the defaults alone; an unknown name also falls
// back to the defaults.
func (f *File) GetProfile(name string) Profile {
	result := f.Defaults

	if p, ok := f.Profiles[name]; ok {
		if p.Threads != 0 {
			result.Threads = p.Threads
		}
		if p.NumLinks != 0 {
			result.NumLinks = p.NumLinks
		}
		if p.CharsetSize != 0 {
			result.CharsetSize = p.CharsetSize
		}
		if p.ASCIIOffset != 0 {
			result.ASCIIOffset = p.ASCIIOffset
		}
		if p.Algorithm != "" {
			result.Algorithm = p.Algorithm
		}
	}

	return result
}

// LoadConfigFile loads parameter profiles from a YAML file.
// If the file does not exist, it returns ErrConfigNotFound. Callers
// should treat that as fatal only when the path was explicitly specified
// by the user.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // user-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}

	if f.Profiles == nil {
		f.Profiles = make(map[string]Profile)
	}
	return &f, nil
}

// FindConfigFile searches for the configuration file in order:
// the explicit path if given, then .hashforge in the current directory,
// then .hashforge in the user's home directory.
//
// Returns the path if found, or an empty string.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	cwd, err := os.Getwd()
	if err == nil {
		cwdConfig := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(cwdConfig); err == nil {
			return cwdConfig
		}
	}

	home, err := os.UserHomeDir()
	if err == nil {
		homeConfig := filepath.Join(home, DefaultConfigFile)
		if _, err := os.Stat(homeConfig); err == nil {
			return homeConfig
		}
	}

	return ""
}
