// Package config loads the list of package identifiers to report on.
//
// Three file formats are accepted, chosen by extension:
//
//   - .toml: parsed with BurntSushi/toml
//   - .yaml, .yml: parsed with yaml.v3
//   - anything else: one identifier per line, "#" starts a comment
//
// TOML and YAML files share the same schema:
//
//	packages = ["Google.Chrome", "Mozilla.Firefox"]
//	concurrency = 4
//	probe_timeout = "5s"
//
// Without a file, [Default] returns the built-in curated list.
package config

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/wingetreport/pkg/errors"
)

// Config is the file-level configuration.
type Config struct {
	Packages     []string `toml:"packages" yaml:"packages"`
	Concurrency  int      `toml:"concurrency,omitempty" yaml:"concurrency,omitempty"`
	ProbeTimeout Duration `toml:"probe_timeout,omitempty" yaml:"probe_timeout,omitempty"`
	QueryTimeout Duration `toml:"query_timeout,omitempty" yaml:"query_timeout,omitempty"`
	Source       string   `toml:"source,omitempty" yaml:"source,omitempty"`
}

// Duration is a time.Duration that decodes from strings like "5s".
type Duration struct{ time.Duration }

// UnmarshalText implements encoding.TextUnmarshaler (used by TOML).
func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(n *yaml.Node) error {
	return d.UnmarshalText([]byte(n.Value))
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (any, error) {
	return d.Duration.String(), nil
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{Packages: DefaultPackages()}
}

// Load reads the configuration at path. Package identifiers are trimmed
// and blank entries dropped; the list must not be empty.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config")
	}
	cfg, err := Parse(data, Format(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// File formats.
const (
	FormatTOML = "toml"
	FormatYAML = "yaml"
	FormatText = "text"
)

// Format returns the format implied by path's extension.
func Format(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatText
	}
}

// Parse decodes data in the given format.
func Parse(data []byte, format string) (*Config, error) {
	var cfg Config
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse toml")
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse yaml")
		}
	case FormatText:
		cfg.Packages = parseText(data)
	default:
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unsupported config format %q", format)
	}

	cfg.Packages = clean(cfg.Packages)
	if len(cfg.Packages) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "no packages listed")
	}
	if cfg.Concurrency < 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "concurrency cannot be negative")
	}
	return &cfg, nil
}

// Encode writes cfg as TOML.
func (c *Config) Encode() ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func parseText(data []byte) []string {
	var ids []string
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := sc.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		ids = append(ids, line)
	}
	return ids
}

func clean(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id = strings.TrimSpace(id); id != "" {
			out = append(out, id)
		}
	}
	return out
}
