package model

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// ProfileConfig holds the student identity shown on the Profile tab.
// There is no server-side account; these values are purely local.
type ProfileConfig struct {
	Name      string `mapstructure:"name" yaml:"name"`
	StudentID string `mapstructure:"student_id" yaml:"student_id"`
	Email     string `mapstructure:"email" yaml:"email"`
}

// DisplayConfig holds UI/rendering preferences.
type DisplayConfig struct {
	Theme string `mapstructure:"theme" yaml:"theme"`
}

// AppConfig is the top-level application configuration.
type AppConfig struct {
	// DBPath is the SQLite database location. Empty means the default
	// path next to the config file.
	DBPath string `mapstructure:"db_path" yaml:"db_path"`

	// LogPath is the diagnostic log file location. Empty means the
	// default path next to the config file.
	LogPath string `mapstructure:"log_path" yaml:"log_path"`

	Profile ProfileConfig `mapstructure:"profile" yaml:"profile"`
	Display DisplayConfig `mapstructure:"display" yaml:"display"`
}

// DefaultConfigDir returns the directory holding the config file, database,
// and logs, located at ~/.config/ticksolve.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "ticksolve")
}

// DefaultConfigPath returns the default path for the configuration file.
func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "config.yaml")
}

// defaultAppConfig returns a sensible default configuration.
func defaultAppConfig() *AppConfig {
	return &AppConfig{
		Profile: ProfileConfig{
			Name:      "Student Name",
			StudentID: "ST12345",
			Email:     "student@example.com",
		},
		Display: DisplayConfig{
			Theme: "default",
		},
	}
}

// LoadConfig reads configuration from the given YAML file path using Viper.
// If the file does not exist, it returns a default configuration.
func LoadConfig(path string) (*AppConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	// Set defaults so missing keys resolve to sensible values.
	v.SetDefault("profile.name", "Student Name")
	v.SetDefault("profile.student_id", "ST12345")
	v.SetDefault("profile.email", "student@example.com")
	v.SetDefault("display.theme", "default")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(*os.PathError); ok {
			return defaultAppConfig(), nil
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return defaultAppConfig(), nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := defaultAppConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}

// SaveConfig writes the given configuration to a YAML file at path,
// creating parent directories if needed.
func SaveConfig(path string, cfg *AppConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.Set("db_path", cfg.DBPath)
	v.Set("log_path", cfg.LogPath)
	v.Set("profile", cfg.Profile)
	v.Set("display", cfg.Display)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}

	return nil
}
