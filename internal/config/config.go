// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
)

// Config holds the application configuration.
type Config struct {
	UI      UIConfig      `toml:"ui"`
	Catalog CatalogConfig `toml:"catalog"`
	Export  ExportConfig  `toml:"export"`
	Log     LogConfig     `toml:"log"`
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme string `toml:"theme"` // "mocha", "macchiato", "frappe", "latte", "light"
}

// CatalogConfig lists the names offered by the assignment pickers.
type CatalogConfig struct {
	Professors []string `toml:"professors" validate:"required,uniquefold,dive,notblank"`
	Classes    []string `toml:"classes" validate:"required,uniquefold,dive,notblank"`
}

// ExportConfig holds calendar export settings.
type ExportConfig struct {
	CalendarName string `toml:"calendar_name" validate:"notblank"`
}

// LogConfig holds debug log settings.
type LogConfig struct {
	DebugPath string `toml:"debug_path" validate:"notblank"` // written only with --debug
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		UI: UIConfig{
			Theme: "frappe",
		},
		Catalog: CatalogConfig{
			Professors: []string{"Dr. Smith", "Prof. Johnson", "Dr. Williams", "Prof. Brown"},
			Classes:    []string{"Math 101", "History 202", "Biology 303", "Chemistry 404"},
		},
		Export: ExportConfig{
			CalendarName: "Class schedule",
		},
		Log: LogConfig{
			DebugPath: defaultDebugPath(),
		},
	}
}

func defaultDebugPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "classgrid-debug.log"
	}
	return filepath.Join(home, ".local", "state", "classgrid", "debug.log")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "classgrid", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	cfg.Log.DebugPath = expandPath(cfg.Log.DebugPath)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("CLASSGRID_UI_THEME"); v != "" {
		cfg.UI.Theme = v
	}
	if v := os.Getenv("CLASSGRID_PROFESSORS"); v != "" {
		cfg.Catalog.Professors = splitList(v)
	}
	if v := os.Getenv("CLASSGRID_CLASSES"); v != "" {
		cfg.Catalog.Classes = splitList(v)
	}
	if v := os.Getenv("CLASSGRID_CALENDAR_NAME"); v != "" {
		cfg.Export.CalendarName = v
	}
	if v := os.Getenv("CLASSGRID_DEBUG_PATH"); v != "" {
		cfg.Log.DebugPath = v
	}
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

var validate = newValidator()

// newValidator reports fields by their TOML names and adds the catalog
// checks: entries must not be blank and must not repeat, ignoring case.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("toml"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	_ = v.RegisterValidation("uniquefold", func(fl validator.FieldLevel) bool {
		names, ok := fl.Field().Interface().([]string)
		if !ok {
			return false
		}
		seen := make(map[string]bool, len(names))
		for _, n := range names {
			key := strings.ToLower(strings.TrimSpace(n))
			if seen[key] {
				return false
			}
			seen[key] = true
		}
		return true
	})
	return v
}

// Validate checks if the configuration is valid. Only the first problem is
// reported.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("validating config: %w", err)
	}

	fe := fieldErrs[0]
	// Drop the struct name: "Config.catalog.classes[1]" -> "catalog.classes[1]".
	_, field, _ := strings.Cut(fe.Namespace(), ".")
	switch fe.Tag() {
	case "required":
		return fmt.Errorf("%s: at least one entry must be configured", field)
	case "uniquefold":
		return fmt.Errorf("%s contains an entry twice", field)
	case "notblank":
		if strings.HasSuffix(field, "]") {
			return fmt.Errorf("%s: empty entry", field)
		}
		return fmt.Errorf("%s must be set", field)
	default:
		return fmt.Errorf("%s failed %q validation", field, fe.Tag())
	}
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
