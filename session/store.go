// ABOUTME: Persists session state (playlist, cursor, position, volume, modes)
// ABOUTME: Atomic write-to-temp-then-rename; load failures degrade to "no session"

// Package session stores the resumable playback session on disk. The
// file is TOML under the XDG state directory, overwritten atomically on
// every save so a crash never leaves a half-written session observable.
package session

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"
)

// State is the persisted subset of playback state. Read once at startup,
// overwritten on every state-changing event.
type State struct {
	Tracks   []string `toml:"tracks"`   // Playlist file paths in order
	Index    int      `toml:"index"`    // Cursor into Tracks
	Position float64  `toml:"position"` // Last known position in seconds
	Volume   int      `toml:"volume"`   // Volume percent
	Shuffle  bool     `toml:"shuffle"`  // Shuffle flag
	Repeat   int      `toml:"repeat"`   // Repeat mode (playlist.RepeatMode)
}

// Store reads and writes the session file at a fixed path.
type Store struct {
	path string
}

// NewStore creates a store bound to the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// DefaultPath returns the session file location under the XDG state
// directory (e.g. ~/.local/state/mediactl/session.toml).
func DefaultPath() (string, error) {
	path, err := xdg.StateFile(filepath.Join("mediactl", "session.toml"))
	if err != nil {
		return "", fmt.Errorf("failed to resolve session path: %w", err)
	}

	return path, nil
}

// Save writes the state, replacing any previous session file. The write
// goes to a temp file in the same directory first and is renamed into
// place, so readers never observe a partial file.
func (s *Store) Save(state State) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "session-*.toml")
	if err != nil {
		return fmt.Errorf("failed to create temp session file: %w", err)
	}

	if err := toml.NewEncoder(tmp).Encode(state); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())

		return fmt.Errorf("failed to encode session: %w", err)
	}

	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())

		return fmt.Errorf("failed to close temp session file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		_ = os.Remove(tmp.Name())

		return fmt.Errorf("failed to replace session file: %w", err)
	}

	return nil
}

// Load reads the session file. A missing file means no previous session
// and returns (nil, nil). A corrupt file is logged and also returns
// (nil, nil): startup must never fail on bad session state.
func (s *Store) Load() (*State, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to read session file: %w", err)
	}

	var state State
	if err := toml.Unmarshal(data, &state); err != nil {
		log.Printf("Warning: ignoring corrupt session file %s: %v", s.path, err)

		return nil, nil
	}

	return &state, nil
}

// Path returns the session file path.
func (s *Store) Path() string {
	return s.path
}
