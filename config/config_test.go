// ABOUTME: Tests for configuration load/save functionality
// ABOUTME: Validates TOML parsing, sparse files, and default config fallback behavior

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.PlayerCommand != "termux-media-player" {
		t.Errorf("Expected player command termux-media-player, got %s", cfg.PlayerCommand)
	}

	if cfg.PollIntervalMS != 500 {
		t.Errorf("Expected poll interval 500ms, got %d", cfg.PollIntervalMS)
	}

	if !cfg.AutoPlay {
		t.Error("Expected auto play enabled by default")
	}
}

func TestSaveAndLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mediactl.toml")

	// Save a modified config
	cfg := DefaultConfig()
	cfg.PlayerCommand = "mpv-remote"
	cfg.VolumeStep = 10

	if err := SaveConfig(path, cfg); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	// Load it back
	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if loaded.PlayerCommand != cfg.PlayerCommand {
		t.Errorf("PlayerCommand mismatch: got %s, want %s", loaded.PlayerCommand, cfg.PlayerCommand)
	}

	if loaded.VolumeStep != cfg.VolumeStep {
		t.Errorf("VolumeStep mismatch: got %d, want %d", loaded.VolumeStep, cfg.VolumeStep)
	}
}

func TestLoadNonExistentConfig(t *testing.T) {
	// Loading non-existent file should return defaults without error
	cfg, err := LoadConfig("/nonexistent/path/config.toml")
	if err != nil {
		t.Errorf("Expected no error for non-existent file, got: %v", err)
	}

	// Should be default values
	defaults := DefaultConfig()
	if cfg.PlayerCommand != defaults.PlayerCommand {
		t.Errorf("Expected default player command %s, got %s", defaults.PlayerCommand, cfg.PlayerCommand)
	}
}

// TestLoadSparseConfig verifies unset fields fall back to defaults
func TestLoadSparseConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sparse.toml")
	if err := os.WriteFile(path, []byte(`player_command = "mpv-remote"`), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.PlayerCommand != "mpv-remote" {
		t.Errorf("Expected player command from file, got %s", cfg.PlayerCommand)
	}

	defaults := DefaultConfig()
	if cfg.PollIntervalMS != defaults.PollIntervalMS {
		t.Errorf("Expected default poll interval, got %d", cfg.PollIntervalMS)
	}

	if cfg.VolumeStep != defaults.VolumeStep {
		t.Errorf("Expected default volume step, got %d", cfg.VolumeStep)
	}
}

func TestLoadInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.toml")
	if err := os.WriteFile(path, []byte("not = [valid"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err == nil {
		t.Error("Expected parse error for invalid TOML")
	}

	// Still usable defaults despite the error
	if cfg.PlayerCommand != DefaultConfig().PlayerCommand {
		t.Errorf("Expected default config on parse failure, got %s", cfg.PlayerCommand)
	}
}
