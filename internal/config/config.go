// Package config loads demoform session settings from YAML.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-demoform/pkg/model"
	"github.com/goliatone/go-demoform/pkg/options"
	"github.com/goliatone/go-demoform/pkg/render"
)

// Config holds the knobs of a demo form session.
type Config struct {
	// FetchDelay is how long the simulated city lookup takes.
	FetchDelay time.Duration `yaml:"fetch_delay"`
	// Cities replaces the default city options when non-empty.
	Cities []model.CityOption `yaml:"cities"`
	// Output selects the submit payload format: json, form or pretty.
	Output string `yaml:"output"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
	// Schema optionally points at a YAML rule document overriding the
	// built-in validation rules.
	Schema string `yaml:"schema"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		FetchDelay: options.DefaultDelay,
		Cities:     options.DefaultCities(),
		Output:     string(render.OutputFormatJSON),
		LogLevel:   "info",
	}
}

// Load reads a YAML file on top of the defaults. An empty path returns the
// defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	if err := decode(f, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes a YAML document on top of the defaults.
func Parse(r io.Reader) (Config, error) {
	cfg := Default()
	if err := decode(r, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func decode(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode: %w", err)
	}
	if len(cfg.Cities) == 0 {
		cfg.Cities = options.DefaultCities()
	}
	return cfg.Validate()
}

// Validate checks value ranges and option identity.
func (c Config) Validate() error {
	if c.FetchDelay < 0 {
		return fmt.Errorf("fetch_delay must not be negative, got %s", c.FetchDelay)
	}
	if _, err := render.ParseOutputFormat(c.Output); err != nil {
		return err
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	seen := make(map[int]struct{}, len(c.Cities))
	for _, city := range c.Cities {
		if strings.TrimSpace(city.Label) == "" {
			return fmt.Errorf("city %d has no label", city.ID)
		}
		if _, dup := seen[city.ID]; dup {
			return fmt.Errorf("duplicate city id %d", city.ID)
		}
		seen[city.ID] = struct{}{}
	}
	return nil
}

// Level resolves LogLevel into a slog level.
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	raw := strings.TrimSpace(c.LogLevel)
	if raw == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(raw)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log_level %q", c.LogLevel)
	}
	return level, nil
}

// OutputFormat resolves Output.
func (c Config) OutputFormat() render.OutputFormat {
	format, err := render.ParseOutputFormat(c.Output)
	if err != nil {
		return render.OutputFormatJSON
	}
	return format
}
