package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	gotoml "github.com/pelletier/go-toml/v2"
)

//go:embed default.toml
var defaultConfig []byte

var (
	ErrConfigNotFound    = errors.New("config file not found")
	ErrUnsupportedFormat = errors.New("unsupported config format")
	ErrInvalidConfig     = errors.New("invalid config")
)

// Config represents the application configuration
type Config struct {
	DisplayKey       string   `koanf:"display_key" toml:"display_key"`
	Placeholder      string   `koanf:"placeholder" toml:"placeholder"`
	SelectText       string   `koanf:"select_text" toml:"select_text"`
	HideSelectButton bool     `koanf:"hide_select_button" toml:"hide_select_button"`
	Matcher          string   `koanf:"matcher" toml:"matcher"`
	APIRoute         string   `koanf:"api_route" toml:"api_route"`
	HideDelay        Duration `koanf:"hide_delay" toml:"hide_delay"`
	MaxVisible       int      `koanf:"max_visible" toml:"max_visible"`
	DataFile         string   `koanf:"data_file" toml:"data_file"`
	LogFile          string   `koanf:"log_file" toml:"log_file"`
	LogLevel         int      `koanf:"log_level" toml:"log_level"`
	Styles           Styles   `koanf:"styles" toml:"styles"`
}

// Styles holds the style overrides of the widget
type Styles struct {
	Button       StyleConfig `koanf:"button" toml:"button"`
	Content      StyleConfig `koanf:"content" toml:"content"`
	Item         StyleConfig `koanf:"item" toml:"item"`
	SelectedItem StyleConfig `koanf:"selected_item" toml:"selected_item"`
	Placeholder  StyleConfig `koanf:"placeholder" toml:"placeholder"`
}

// StyleConfig describes one style. Empty fields keep the built-in value.
type StyleConfig struct {
	Foreground string `koanf:"foreground" toml:"foreground,omitempty"`
	Background string `koanf:"background" toml:"background,omitempty"`
	Bold       *bool  `koanf:"bold" toml:"bold,omitempty"`
	Italic     *bool  `koanf:"italic" toml:"italic,omitempty"`
	Border     string `koanf:"border" toml:"border,omitempty"` // rounded, normal, thick, double, hidden or none
}

// IsZero reports whether no field is set
func (s StyleConfig) IsZero() bool {
	return s.Foreground == "" && s.Background == "" && s.Bold == nil && s.Italic == nil && s.Border == ""
}

// Duration is a time.Duration written as text ("150ms") in config files
type Duration time.Duration

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// ConfigService handles configuration management
type ConfigService interface {
	Load(overrides map[string]any) (*Config, error)
	LoadFromPath(path string, overrides map[string]any) (*Config, error)
	Save(config *Config) error
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	filePath string
}

// NewConfigService creates a config service for the per-user config file
func NewConfigService() ConfigService {
	return &configService{filePath: DefaultPath()}
}

// NewConfigServiceAt creates a config service for the file at path
func NewConfigServiceAt(path string) ConfigService {
	return &configService{filePath: path}
}

// DefaultPath returns the per-user config file location
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "lookup", "config.toml")
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load reads the service's config file over the defaults. A missing file
// is not an error: the defaults are used.
func (cs *configService) Load(overrides map[string]any) (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath, overrides)
	if errors.Is(err, ErrConfigNotFound) {
		return load("", overrides)
	}
	return cfg, err
}

// LoadFromPath reads the config file at path over the defaults
func (cs *configService) LoadFromPath(path string, overrides map[string]any) (*Config, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
	}
	return load(path, overrides)
}

// Save writes the config to the service's file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// SaveToPath writes the config as TOML
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := gotoml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	cfg, err := load("", nil)
	if err != nil {
		// the embedded file is part of the binary
		panic(fmt.Sprintf("default config: %v", err))
	}
	return cfg
}

// load layers defaults, the file at path (if any) and overrides
func load(path string, overrides map[string]any) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(rawbytes.Provider(defaultConfig), toml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to parse default config: %w", err)
	}

	if path != "" {
		parser, err := parserFor(path)
		if err != nil {
			return nil, err
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	for key, v := range overrides {
		if err := k.Set(key, v); err != nil {
			return nil, fmt.Errorf("failed to set %s: %w", key, err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Parser(), nil
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	case ".json":
		return json.Parser(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// Validate checks values the widget cannot work with
func (c *Config) Validate() error {
	switch strings.ToLower(c.Matcher) {
	case "", "substring", "fuzzy", "fzf":
	default:
		return fmt.Errorf("%w: unknown matcher %q", ErrInvalidConfig, c.Matcher)
	}
	if c.MaxVisible < 0 {
		return fmt.Errorf("%w: max_visible must not be negative", ErrInvalidConfig)
	}
	if c.HideDelay < 0 {
		return fmt.Errorf("%w: hide_delay must not be negative", ErrInvalidConfig)
	}
	for name, s := range map[string]StyleConfig{
		"button":        c.Styles.Button,
		"content":       c.Styles.Content,
		"item":          c.Styles.Item,
		"selected_item": c.Styles.SelectedItem,
		"placeholder":   c.Styles.Placeholder,
	} {
		if _, ok := borders[strings.ToLower(s.Border)]; s.Border != "" && !ok {
			return fmt.Errorf("%w: styles.%s: unknown border %q", ErrInvalidConfig, name, s.Border)
		}
	}
	return nil
}
