// Package config loads the optional YAML configuration file.
package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/mathdrill/internal/catalog"
)

// Config holds user settings. Every field is optional in the file.
type Config struct {
	// DBPath overrides the database location. Empty uses the default
	// data directory.
	DBPath string `yaml:"db_path,omitempty"`

	// DefaultCategory is the drill opened by "mathdrill play" without
	// --category.
	DefaultCategory string `yaml:"default_category"`

	Log LogConfig `yaml:"log"`
	UI  UIConfig  `yaml:"ui"`

	// Categories overrides timing or storage per category ID or family ID.
	Categories map[string]CategoryConfig `yaml:"categories,omitempty"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file,omitempty"`
}

// UIConfig holds terminal UI settings.
type UIConfig struct {
	// TickMs is the refresh period of the drill screen in milliseconds.
	TickMs int `yaml:"tick_ms"`
}

// CategoryConfig overrides one category or family. Durations use Go
// syntax ("1.5s", "800ms"); "0s" disables the answer deadline or the pause.
type CategoryConfig struct {
	AnswerTimeout string `yaml:"answer_timeout,omitempty"`
	Pause         string `yaml:"pause,omitempty"`
	StoreKey      string `yaml:"store_key,omitempty"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		DefaultCategory: "multiplication-2digit",
		Log:             LogConfig{Level: "info"},
		UI:              UIConfig{TickMs: 100},
	}
}

// Path resolves the config file location in priority order:
// 1. MATHDRILL_CONFIG environment variable
// 2. $XDG_CONFIG_HOME/mathdrill/config.yaml
// 3. ~/.config/mathdrill/config.yaml
func Path() (string, error) {
	if p := os.Getenv("MATHDRILL_CONFIG"); p != "" {
		return p, nil
	}
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "mathdrill", "config.yaml"), nil
}

// Load reads the config file at path. A missing file yields the defaults.
// Environment overrides are applied last.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		cfg := Default()
		cfg.applyEnv()
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg.applyEnv()
	return cfg, nil
}

// Parse validates data against the config schema and decodes it on top
// of the defaults.
func Parse(data []byte) (*Config, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if doc != nil {
		if err := validate(doc); err != nil {
			return nil, err
		}
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if _, err := cfg.Overrides(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg to path as YAML, creating the directory.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func (c *Config) applyEnv() {
	if p := os.Getenv("MATHDRILL_DB"); p != "" {
		c.DBPath = p
	}
	if l := os.Getenv("MATHDRILL_LOG_LEVEL"); l != "" {
		c.Log.Level = l
	}
}

// TickInterval returns the drill screen refresh period.
func (c *Config) TickInterval() time.Duration {
	if c.UI.TickMs <= 0 {
		return 100 * time.Millisecond
	}
	return time.Duration(c.UI.TickMs) * time.Millisecond
}

// Overrides converts the categories section for catalog.WithOverrides.
func (c *Config) Overrides() (map[string]catalog.Override, error) {
	out := make(map[string]catalog.Override, len(c.Categories))
	keys := make([]string, 0, len(c.Categories))
	for k := range c.Categories {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		cc := c.Categories[key]
		var o catalog.Override
		var err error
		if o.AnswerTimeout, err = parseDuration(cc.AnswerTimeout); err != nil {
			return nil, fmt.Errorf("categories.%s.answer_timeout: %w", key, err)
		}
		if o.Pause, err = parseDuration(cc.Pause); err != nil {
			return nil, fmt.Errorf("categories.%s.pause: %w", key, err)
		}
		o.StoreKey = cc.StoreKey
		out[key] = o
	}
	return out, nil
}

// parseDuration returns nil for an unset value. "0s" is kept as an
// explicit zero.
func parseDuration(s string) (*time.Duration, error) {
	if s == "" {
		return nil, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

//go:embed schema.json
var schemaJSON []byte

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

const schemaURL = "schema://mathdrill-config.json"

func compileSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		def, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaJSON))
		if err != nil {
			schemaErr = fmt.Errorf("parse config schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, def); err != nil {
			schemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, schemaErr = c.Compile(schemaURL)
	})
	return compiledSchema, schemaErr
}

// validate checks a decoded YAML document against the config schema. The
// document is round-tripped through JSON so numbers and maps take the
// shapes the validator expects.
func validate(doc any) error {
	sch, err := compileSchema()
	if err != nil {
		return err
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("config is not representable as JSON: %w", err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	if err := sch.Validate(inst); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
