package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// File formats understood by Decode and Encode.
const (
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

// LocalPath is the project-local config file.
const LocalPath = "configs/picofb.yaml"

// Load loads the configuration.
// Search order: customPath -> ~/.picofb/config.yaml -> ./configs/picofb.yaml -> embedded default
//
// Files are decoded over DefaultConfig, so omitted fields keep their
// defaults. Only a custom path reports read and parse errors; the other
// locations are skipped when unreadable.
func Load(customPath string) (Config, error) {
	if customPath != "" {
		cfg := DefaultConfig()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		format, err := FormatForPath(customPath)
		if err != nil {
			return cfg, err
		}
		if err := Decode(data, format, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	for _, path := range []string{userConfigPath("config.yaml"), LocalPath} {
		if path == "" {
			continue
		}
		if cfg, ok := tryLoad(path); ok {
			return cfg, nil
		}
	}

	cfg := DefaultConfig()
	if err := Decode(defaultYAML, FormatYAML, &cfg); err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func tryLoad(path string) (Config, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, false
	}
	cfg := DefaultConfig()
	if err := Decode(data, FormatYAML, &cfg); err != nil {
		return Config{}, false
	}
	if cfg.Validate() != nil {
		return Config{}, false
	}
	return cfg, true
}

// FormatForPath picks the file format from the extension.
func FormatForPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("unsupported config extension %q (expected .yaml, .yml or .toml)", filepath.Ext(path))
	}
}

// Decode unmarshals data in the given format into cfg.
func Decode(data []byte, format string, cfg *Config) error {
	switch format {
	case FormatYAML:
		return yaml.Unmarshal(data, cfg)
	case FormatTOML:
		return toml.Unmarshal(data, cfg)
	default:
		return fmt.Errorf("unsupported config format %q", format)
	}
}

// Encode marshals cfg in the given format.
func Encode(cfg Config, format string) ([]byte, error) {
	switch format {
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case FormatTOML:
		return toml.Marshal(cfg)
	default:
		return nil, fmt.Errorf("unsupported config format %q", format)
	}
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".picofb", filename)
}
