// ABOUTME: Shared initialization code for TUI and one-shot modes
// ABOUTME: Provides playlist/session loading helpers and debug logging

package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"mediactl/playlist"
	"mediactl/session"
)

var debugLog *log.Logger

// loadPlaylistFile reads an .m3u playlist and its track metadata.
// Relative entries are resolved against the playlist's directory so the
// player tool always receives a usable path.
func loadPlaylistFile(path string) ([]playlist.Track, error) {
	tracks, err := playlist.LoadPlaylistWithMetadata(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load playlist: %w", err)
	}

	if len(tracks) == 0 {
		return nil, errors.New("playlist is empty")
	}

	base := filepath.Dir(path)

	for i := range tracks {
		if !filepath.IsAbs(tracks[i].Path) {
			tracks[i].Path = filepath.Join(base, tracks[i].Path)
		}
	}

	return tracks, nil
}

// restoreSession rebuilds tracks from a saved session, skipping paths
// that no longer exist. Returns the tracks and the adjusted cursor.
func restoreSession(sess *session.State) ([]playlist.Track, int) {
	var tracks []playlist.Track

	cursor := 0

	for i, path := range sess.Tracks {
		if _, err := os.Stat(path); err != nil {
			debugf("[SESSION] Skipping missing track: %s", path)

			continue
		}

		if i == sess.Index {
			cursor = len(tracks)
		}

		tracks = append(tracks, playlist.ReadMetadata(path))
	}

	return tracks, cursor
}

// SetupDebugLog initializes debug logging
func SetupDebugLog(filename string) error {
	if err := InitDebugLog(filename); err != nil {
		return fmt.Errorf("failed to initialize debug log: %w", err)
	}

	fileInfo, _ := os.Stdout.Stat()
	if (fileInfo.Mode() & os.ModeCharDevice) != 0 {
		fmt.Printf("Debug logging enabled: %s\n", filename)
	}

	return nil
}

// InitDebugLog initializes debug logging
func InitDebugLog(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create debug log file: %w", err)
	}

	debugLog = log.New(f, "", log.Ltime|log.Lmicroseconds)

	return nil
}

// debugf logs debug messages if enabled
func debugf(format string, args ...interface{}) {
	if debugLog != nil {
		debugLog.Printf(format, args...)
	}
}
