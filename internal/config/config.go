package config

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/reakt-dev/reakt/internal/errors"
)

const (
	// DefaultInspectorAddr is the default listen address of the inspector.
	DefaultInspectorAddr = ":7070"

	// DefaultNamespace is the default Prometheus metrics namespace.
	DefaultNamespace = "reakt"

	// DefaultClicks is how many increment clicks `reakt run` performs.
	DefaultClicks = 3

	// DefaultTitle is the demo header text.
	DefaultTitle = "Hello Reakt Header"
)

// FileNames are the configuration file names searched by Load, in order.
var FileNames = []string{"reakt.json", "reakt.yaml", "reakt.yml"}

// Config represents the complete reakt configuration.
type Config struct {
	// Runtime configures the render engine.
	Runtime RuntimeConfig `json:"runtime" yaml:"runtime"`

	// Inspector configures the devtools inspector server.
	Inspector InspectorConfig `json:"inspector" yaml:"inspector"`

	// Metrics configures Prometheus metrics.
	Metrics MetricsConfig `json:"metrics" yaml:"metrics"`

	// Log configures structured logging.
	Log LogConfig `json:"log" yaml:"log"`

	// Demo configures the bundled demo application.
	Demo DemoConfig `json:"demo" yaml:"demo"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// RuntimeConfig contains render engine settings.
type RuntimeConfig struct {
	// HookOrderCheck fails a render pass when hook calls differ from the
	// first pass.
	HookOrderCheck bool `json:"hookOrderCheck" yaml:"hookOrderCheck"`

	// FalsyAsUnset treats zero-valued state as never set, re-applying the
	// initial value on every visit.
	FalsyAsUnset bool `json:"falsyAsUnset" yaml:"falsyAsUnset"`
}

// InspectorConfig contains inspector server settings.
type InspectorConfig struct {
	// Addr is the listen address.
	Addr string `json:"addr,omitempty" yaml:"addr,omitempty"`
}

// MetricsConfig contains Prometheus settings.
type MetricsConfig struct {
	// Enabled registers render metrics.
	Enabled bool `json:"enabled" yaml:"enabled"`

	// Namespace is the metrics namespace.
	Namespace string `json:"namespace,omitempty" yaml:"namespace,omitempty"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `json:"level,omitempty" yaml:"level,omitempty"`

	// Format is "text" or "json".
	Format string `json:"format,omitempty" yaml:"format,omitempty"`
}

// DemoConfig contains settings for the bundled demo app.
type DemoConfig struct {
	// Clicks is the number of increment clicks performed by `reakt run`.
	Clicks int `json:"clicks" yaml:"clicks"`

	// Title is the header text.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Runtime: RuntimeConfig{
			HookOrderCheck: true,
		},
		Inspector: InspectorConfig{
			Addr: DefaultInspectorAddr,
		},
		Metrics: MetricsConfig{
			Enabled:   true,
			Namespace: DefaultNamespace,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Demo: DemoConfig{
			Clicks: DefaultClicks,
			Title:  DefaultTitle,
		},
	}
}

// Load reads configuration from the specified directory.
// It looks for the first of FileNames present in the directory.
func Load(dir string) (*Config, error) {
	for _, name := range FileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return LoadFile(path)
		}
	}
	return nil, errors.New("E141").
		WithDetail("No reakt.json, reakt.yaml or reakt.yml found in " + dir)
}

// LoadOrDefault is like Load but returns defaults when no file exists.
func LoadOrDefault(dir string) (*Config, error) {
	cfg, err := Load(dir)
	if errors.HasCode(err, "E141") {
		return New(), nil
	}
	return cfg, err
}

// LoadFile reads configuration from the specified file path.
// The format is chosen by extension: .yaml/.yml use YAML, anything else JSON.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E141").
				WithDetail("No configuration file at " + path)
		}
		return nil, errors.New("E120").Wrap(err)
	}

	cfg := New()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		err = json.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, errors.New("E120").
			WithDetail("Failed to parse " + filepath.Base(path) + ": " + err.Error())
	}

	cfg.configPath = path
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// applyDefaults fills in default values for empty fields. Fields where
// zero is meaningful, such as demo.clicks, take their default from New.
func (c *Config) applyDefaults() {
	if c.Inspector.Addr == "" {
		c.Inspector.Addr = DefaultInspectorAddr
	}
	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = DefaultNamespace
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
	if c.Demo.Title == "" {
		c.Demo.Title = DefaultTitle
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return errors.New("E120").
			WithDetail("log.format must be \"text\" or \"json\", got " + c.Log.Format)
	}
	if c.Demo.Clicks < 0 {
		return errors.New("E120").
			WithDetail("demo.clicks must not be negative")
	}
	return nil
}

// SlogLevel returns the configured log level. Invalid levels were rejected
// by Validate, so this falls back to Info only for hand-built configs.
func (c *Config) SlogLevel() slog.Level {
	level, err := ParseLevel(c.Log.Level)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

// ParseLevel converts a level name to a slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, errors.New("E121").
			WithDetailf("unknown log level %q; use debug, info, warn or error", name)
	}
}
