package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a YAML configuration file into a RawConfig.
// A missing file yields ErrConfigNotFound; malformed YAML yields ErrInvalidYAML.
func LoadFile(path string) (*RawConfig, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML bytes into a RawConfig.
func Parse(data []byte) (*RawConfig, error) {
	raw := &RawConfig{}
	if err := yaml.Unmarshal(data, raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}
	return raw, nil
}

// ApplyEnvOverrides overlays FLUTTERKIT_* environment variables onto raw.
// List variables are comma separated.
func ApplyEnvOverrides(raw *RawConfig) {
	raw.Overlay(envConfig(os.Getenv))
}

// envConfig builds a RawConfig from the given lookup function.
func envConfig(getenv func(string) string) *RawConfig {
	env := &RawConfig{
		ProjectName:      getenv(EnvProjectName),
		BundleIdentifier: getenv(EnvBundleIdentifier),
		OrgName:          getenv(EnvOrgName),
		Architecture:     getenv(EnvArchitecture),
		StateManagement:  getenv(EnvStateManagement),
	}
	if v := getenv(EnvFeatures); v != "" {
		env.Features = SplitList(v)
	}
	if v := getenv(EnvModules); v != "" {
		env.Modules = SplitList(v)
	}
	return env
}

// SplitList splits a comma separated list and drops empty entries.
func SplitList(s string) []string {
	items := []string{}
	for part := range strings.SplitSeq(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}
