// ABOUTME: Configuration management for player tools, polling, and key step sizes
// ABOUTME: Handles loading/saving TOML config files with fallback to defaults

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"
)

// Config holds all tunable controller settings
type Config struct {
	PlayerCommand  string `toml:"player_command"`   // External player executable
	VolumeCommand  string `toml:"volume_command"`   // Volume tool executable
	PollIntervalMS int    `toml:"poll_interval_ms"` // Status poll cadence
	TickIntervalMS int    `toml:"tick_interval_ms"` // UI tick cadence
	VolumeStep     int    `toml:"volume_step"`      // Up/Down volume increment
	SeekStepSec    int    `toml:"seek_step_sec"`    // Seek increment in seconds
	AutoPlay       bool   `toml:"auto_play"`        // Start playing on load
	GeniusToken    string `toml:"genius_token"`     // Lyrics API access token
}

// PollInterval returns the status poll cadence as a duration.
func (c Config) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalMS) * time.Millisecond
}

// TickInterval returns the UI tick cadence as a duration.
func (c Config) TickInterval() time.Duration {
	return time.Duration(c.TickIntervalMS) * time.Millisecond
}

// GetConfigPath returns the default config file path
// First tries current directory, then falls back to the XDG config dir
func GetConfigPath() string {
	// First try current directory
	if _, err := os.Stat("./mediactl.toml"); err == nil {
		return "./mediactl.toml"
	}

	path, err := xdg.ConfigFile(filepath.Join("mediactl", "config.toml"))
	if err != nil {
		return "./mediactl.toml"
	}

	return path
}

// LoadConfig loads configuration from a TOML file
// If the file doesn't exist or fails to load, returns default config
func LoadConfig(path string) (Config, error) {
	// Try to read the file
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// File doesn't exist, return defaults
			return DefaultConfig(), nil
		}
		return DefaultConfig(), fmt.Errorf("failed to read config file: %w", err)
	}

	// Parse TOML over the defaults so sparse files keep sane values
	config := DefaultConfig()
	if err := toml.Unmarshal(data, &config); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&config)

	// Environment token overrides the file so the secret can stay out of it
	if token := os.Getenv("GENIUS_API_TOKEN"); token != "" {
		config.GeniusToken = token
	}

	return config, nil
}

// SaveConfig saves configuration to a TOML file
func SaveConfig(path string, config Config) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Create file
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			fmt.Printf("Warning: failed to close config file: %v\n", err)
		}
	}()

	// Encode config as TOML
	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// DefaultConfig returns the default controller configuration
func DefaultConfig() Config {
	return Config{
		PlayerCommand:  "termux-media-player",
		VolumeCommand:  "termux-volume",
		PollIntervalMS: 500,
		TickIntervalMS: 100,
		VolumeStep:     5,
		SeekStepSec:    10,
		AutoPlay:       true,
		GeniusToken:    os.Getenv("GENIUS_API_TOKEN"),
	}
}

// applyDefaults fills zero-valued fields so a sparse config file still
// yields a runnable setup
func applyDefaults(config *Config) {
	defaults := DefaultConfig()

	if config.PlayerCommand == "" {
		config.PlayerCommand = defaults.PlayerCommand
	}

	if config.VolumeCommand == "" {
		config.VolumeCommand = defaults.VolumeCommand
	}

	if config.PollIntervalMS <= 0 {
		config.PollIntervalMS = defaults.PollIntervalMS
	}

	if config.TickIntervalMS <= 0 {
		config.TickIntervalMS = defaults.TickIntervalMS
	}

	if config.VolumeStep <= 0 {
		config.VolumeStep = defaults.VolumeStep
	}

	if config.SeekStepSec <= 0 {
		config.SeekStepSec = defaults.SeekStepSec
	}
}
