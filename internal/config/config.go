package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	Location LocationConfig `mapstructure:"location" json:"location"`
	Map      MapConfig      `mapstructure:"map" json:"map"`
	Display  DisplayConfig  `mapstructure:"display" json:"display"`
	Storage  StorageConfig  `mapstructure:"storage" json:"storage"`
}

// LocationConfig is the position reported by the location sensor.
// Leaving either field unset makes location lookup fail.
type LocationConfig struct {
	Latitude  *float64 `mapstructure:"latitude" json:"latitude,omitempty"`
	Longitude *float64 `mapstructure:"longitude" json:"longitude,omitempty"`
}

// MapConfig holds map view settings
type MapConfig struct {
	ZoomLevel        int `mapstructure:"zoom_level" json:"zoom_level"`
	FormRearmDelayMS int `mapstructure:"form_rearm_delay_ms" json:"form_rearm_delay_ms"`
}

// FormRearmDelay is how long the form stays un-animated after a submit
func (m MapConfig) FormRearmDelay() time.Duration {
	return time.Duration(m.FormRearmDelayMS) * time.Millisecond
}

// DisplayConfig holds display preferences
type DisplayConfig struct {
	DistanceUnit string `mapstructure:"distance_unit" json:"distance_unit"`
	PaceUnit     string `mapstructure:"pace_unit" json:"pace_unit"`
}

// StorageConfig selects where workouts are persisted
type StorageConfig struct {
	Backend string `mapstructure:"backend" json:"backend"` // "sqlite" or "memory"
	Path    string `mapstructure:"path" json:"path"`
}

// Storage backends
const (
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// ErrNoConfig is returned when the config file doesn't exist
var ErrNoConfig = errors.New("config file not found")

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		Map: MapConfig{
			ZoomLevel:        13,
			FormRearmDelayMS: 1000,
		},
		Display: DisplayConfig{
			DistanceUnit: "km",
			PaceUnit:     "min/km",
		},
		Storage: StorageConfig{
			Backend: BackendSQLite,
		},
	}
}

// newViper returns a viper instance seeded with defaults and MAPTY_* env overrides
func newViper() *viper.Viper {
	d := DefaultConfig()

	v := viper.New()
	v.SetDefault("map.zoom_level", d.Map.ZoomLevel)
	v.SetDefault("map.form_rearm_delay_ms", d.Map.FormRearmDelayMS)
	v.SetDefault("display.distance_unit", d.Display.DistanceUnit)
	v.SetDefault("display.pace_unit", d.Display.PaceUnit)
	v.SetDefault("storage.backend", d.Storage.Backend)
	v.SetDefault("storage.path", d.Storage.Path)

	v.SetEnvPrefix("MAPTY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// No defaults exist for these, so AutomaticEnv alone would not see them
	_ = v.BindEnv("location.latitude")
	_ = v.BindEnv("location.longitude")

	return v
}

// Load reads the configuration from ~/.mapty/config.json
func Load() (*Config, error) {
	path, err := getConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

// LoadFile reads the configuration from path. Missing keys take their
// defaults and MAPTY_* environment variables override file values.
func LoadFile(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, ErrNoConfig
	}

	v := newViper()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	return decode(v)
}

// FromEnv builds a configuration from defaults and MAPTY_* environment
// variables only. Used when no config file exists yet.
func FromEnv() (*Config, error) {
	return decode(newViper())
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	return &cfg, nil
}

// Save writes the configuration to ~/.mapty/config.json
func Save(cfg *Config) error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}
	return SaveFile(path, cfg)
}

// SaveFile writes the configuration to path
func SaveFile(path string, cfg *Config) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// CreateExample creates an example config file at path if none exists
func CreateExample(path string) error {
	// Check if config already exists
	if _, err := os.Stat(path); err == nil {
		return nil // Config exists, don't overwrite
	}

	lat, lng := 51.5074, -0.1278
	example := DefaultConfig()
	example.Location = LocationConfig{Latitude: &lat, Longitude: &lng}

	return SaveFile(path, &example)
}

// Validate checks the config for unsupported values
func (c *Config) Validate() error {
	if lat := c.Location.Latitude; lat != nil && (*lat < -90 || *lat > 90) {
		return fmt.Errorf("location.latitude must be between -90 and 90, got %v", *lat)
	}
	if lng := c.Location.Longitude; lng != nil && (*lng < -180 || *lng > 180) {
		return fmt.Errorf("location.longitude must be between -180 and 180, got %v", *lng)
	}

	if c.Map.ZoomLevel < 1 || c.Map.ZoomLevel > 18 {
		return fmt.Errorf("map.zoom_level must be between 1 and 18, got %d", c.Map.ZoomLevel)
	}
	if c.Map.FormRearmDelayMS < 0 {
		return fmt.Errorf("map.form_rearm_delay_ms must not be negative, got %d", c.Map.FormRearmDelayMS)
	}

	// Validate display units
	if c.Display.DistanceUnit != "" && c.Display.DistanceUnit != "km" && c.Display.DistanceUnit != "mi" {
		return fmt.Errorf("display.distance_unit must be \"km\" or \"mi\", got %q", c.Display.DistanceUnit)
	}
	if c.Display.PaceUnit != "" && c.Display.PaceUnit != "min/km" && c.Display.PaceUnit != "min/mi" {
		return fmt.Errorf("display.pace_unit must be \"min/km\" or \"min/mi\", got %q", c.Display.PaceUnit)
	}

	if c.Storage.Backend != BackendSQLite && c.Storage.Backend != BackendMemory {
		return fmt.Errorf("storage.backend must be \"sqlite\" or \"memory\", got %q", c.Storage.Backend)
	}

	return nil
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// GetConfigDir returns the path to the config directory
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".mapty"), nil
}

// DefaultPath returns the path to the config file
func DefaultPath() (string, error) {
	return getConfigPath()
}
