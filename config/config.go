// Package config loads manifest build configuration from a YAML or TOML
// file for the CLI and for hosts that keep their selection on disk.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/plugboard-dev/plugboard/catalog"
	"github.com/plugboard-dev/plugboard/manifest"
)

// File is the on-disk configuration shape. Selector fields accept the
// scalar "all" or "none", or a list of catalog keys.
type File struct {
	Plugins      []string                 `yaml:"plugins" toml:"plugins"`
	Channels     any                      `yaml:"channels" toml:"channels"`
	Tools        any                      `yaml:"tools" toml:"tools"`
	Voice        any                      `yaml:"voice" toml:"voice"`
	Productivity any                      `yaml:"productivity" toml:"productivity"`
	Secrets      map[string]string        `yaml:"secrets" toml:"secrets"`
	BasePriority int                      `yaml:"base_priority" toml:"base_priority"`
	Overrides    map[string]OverrideValue `yaml:"overrides" toml:"overrides"`
}

// OverrideValue mirrors manifest.Override for file decoding.
type OverrideValue struct {
	Enabled  *bool          `yaml:"enabled" toml:"enabled"`
	Priority *int           `yaml:"priority" toml:"priority"`
	Options  map[string]any `yaml:"options" toml:"options"`
}

// Load reads a config file, chosen by extension (.toml, else YAML), and
// returns the manifest config plus the plugin search roots it names.
func Load(path string) (manifest.Config, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return manifest.Config{}, nil, fmt.Errorf("read config: %w", err)
	}

	var f File
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		err = toml.Unmarshal(data, &f)
	} else {
		err = yaml.Unmarshal(data, &f)
	}
	if err != nil {
		return manifest.Config{}, nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg, err := f.ManifestConfig()
	if err != nil {
		return manifest.Config{}, nil, err
	}
	return cfg, f.Plugins, nil
}

// ManifestConfig converts the decoded file into a manifest.Config.
func (f File) ManifestConfig() (manifest.Config, error) {
	cfg := manifest.Config{
		Secrets:      f.Secrets,
		BasePriority: f.BasePriority,
	}

	var err error
	if cfg.Channels, err = parseSelector("channels", f.Channels); err != nil {
		return manifest.Config{}, err
	}
	if cfg.Tools, err = parseSelector("tools", f.Tools); err != nil {
		return manifest.Config{}, err
	}
	if cfg.Voice, err = parseSelector("voice", f.Voice); err != nil {
		return manifest.Config{}, err
	}
	if cfg.Productivity, err = parseSelector("productivity", f.Productivity); err != nil {
		return manifest.Config{}, err
	}

	if len(f.Overrides) > 0 {
		cfg.Overrides = make(map[string]manifest.Override, len(f.Overrides))
		for name, ov := range f.Overrides {
			cfg.Overrides[name] = manifest.Override{
				Enabled:  ov.Enabled,
				Priority: ov.Priority,
				Options:  ov.Options,
			}
		}
	}
	return cfg, nil
}

// parseSelector accepts nil (default "all"), the scalars "all"/"none",
// or a sequence of catalog keys.
func parseSelector(field string, v any) (catalog.Selector, error) {
	switch val := v.(type) {
	case nil:
		return catalog.SelectAll(), nil
	case string:
		switch val {
		case "all":
			return catalog.SelectAll(), nil
		case "none":
			return catalog.SelectNone(), nil
		default:
			return catalog.Selector{}, fmt.Errorf("%s: expected \"all\", \"none\", or a list, got %q", field, val)
		}
	case []string:
		return catalog.SelectKeys(val...), nil
	case []any:
		keys := make([]string, 0, len(val))
		for _, item := range val {
			s, ok := item.(string)
			if !ok {
				return catalog.Selector{}, fmt.Errorf("%s: list items must be strings, got %T", field, item)
			}
			keys = append(keys, s)
		}
		return catalog.SelectKeys(keys...), nil
	default:
		return catalog.Selector{}, fmt.Errorf("%s: unsupported selector value of type %T", field, v)
	}
}
