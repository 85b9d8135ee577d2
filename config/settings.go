package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	EnvDataPath = "PREDICTIONS_DATA_PATH"
	EnvPageSize = "PREDICTIONS_PAGE_SIZE"
	EnvTheme    = "PREDICTIONS_THEME"
)

const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

var ErrInvalidSettings = errors.New("invalid settings")

// Settings holds all configuration options.
type Settings struct {
	DataPath             string  `yaml:"data_path"`
	PageSize             int     `yaml:"page_size"`
	ProbabilityThreshold float64 `yaml:"probability_threshold"`
	Theme                string  `yaml:"theme"` // dark, light
	Title                string  `yaml:"title"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		DataPath:             "visualization_data.csv",
		PageSize:             20,
		ProbabilityThreshold: 0.1,
		Theme:                ThemeDark,
		Title:                "Predictions Dashboard",
	}
}

// Load reads settings from a YAML file. A missing file yields the defaults.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

// Save writes settings to a YAML file.
func (s *Settings) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadDotEnv loads KEY=VALUE pairs from path into the process environment
// without overriding variables that are already set. A missing file is not
// an error.
func LoadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err != nil && errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// ApplyEnv overrides settings from the environment. Malformed numbers are
// ignored.
func (s *Settings) ApplyEnv() {
	if v := strings.TrimSpace(os.Getenv(EnvDataPath)); v != "" {
		s.DataPath = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvPageSize)); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			s.PageSize = n
		}
	}
	if v := strings.TrimSpace(os.Getenv(EnvTheme)); v != "" {
		s.Theme = strings.ToLower(v)
	}
}

// Validate checks the value ranges.
func (s *Settings) Validate() error {
	if s.PageSize <= 0 {
		return fmt.Errorf("%w: page_size must be positive, got %d", ErrInvalidSettings, s.PageSize)
	}
	if s.ProbabilityThreshold < 0 || s.ProbabilityThreshold > 1 {
		return fmt.Errorf("%w: probability_threshold must be within [0,1], got %v", ErrInvalidSettings, s.ProbabilityThreshold)
	}
	switch s.Theme {
	case ThemeDark, ThemeLight:
	default:
		return fmt.Errorf("%w: theme must be %q or %q, got %q", ErrInvalidSettings, ThemeDark, ThemeLight, s.Theme)
	}
	return nil
}
