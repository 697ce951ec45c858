package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config represents the application configuration
type Config struct {
	PlayerOne   string `toml:"player_one" env:"HIGHCARD_PLAYER_ONE"`
	PlayerTwo   string `toml:"player_two" env:"HIGHCARD_PLAYER_TWO"`
	Color       string `toml:"color" env:"HIGHCARD_COLOR"`
	ClearScreen bool   `toml:"clear_screen" env:"HIGHCARD_CLEAR_SCREEN"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		PlayerOne:   "Player 1",
		PlayerTwo:   "Player 2",
		Color:       "auto",
		ClearScreen: true,
	}
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetConfigFilePath returns the path to the config file.
// HIGHCARD_CONFIG overrides the XDG location.
func GetConfigFilePath() string {
	if p := os.Getenv("HIGHCARD_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(GetXDGConfigHome(), "highcard", "config.toml")
}

// LoadConfig loads the config file, then applies .env and environment overrides.
// A missing config file yields the defaults.
func LoadConfig() (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	config, err := LoadFile(GetConfigFilePath())
	if err != nil {
		return nil, err
	}

	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("error parsing environment: %w", err)
	}

	return config, nil
}

// LoadFile decodes a config file on top of the defaults
func LoadFile(path string) (*Config, error) {
	config := Default()

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return config, nil
	}

	if _, err := toml.DecodeFile(path, config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}

	return config, nil
}

// WriteDefault creates the config file with default values.
// An existing file is left untouched and reported as an error.
func WriteDefault() (string, error) {
	configPath := GetConfigFilePath()

	if _, err := os.Stat(configPath); err == nil {
		return configPath, fmt.Errorf("config file already exists: %s", configPath)
	}

	// Ensure the config directory exists
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return configPath, fmt.Errorf("error creating config directory: %w", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return configPath, fmt.Errorf("error creating config file: %w", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(Default()); err != nil {
		return configPath, fmt.Errorf("error encoding config: %w", err)
	}

	return configPath, nil
}
