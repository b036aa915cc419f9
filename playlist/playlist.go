// ABOUTME: Handles reading and writing M3U playlist files
// ABOUTME: Provides functions to load playlists with metadata and save them back to disk

// Package playlist handles M3U playlist files, track metadata, and the
// playback sequencing engine (cursor, shuffle order, repeat policy).
// Metadata is read directly from audio file tags (ID3, Vorbis, etc.).
package playlist

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// ReadPlaylist reads an M3U playlist file and returns its tracks in order.
// Only the Path field of each track is populated; metadata is loaded
// separately so callers that just copy playlists don't pay for tag reads.
func ReadPlaylist(path string) ([]Track, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open playlist: %w", err)
	}

	defer func() {
		_ = file.Close() // Explicitly ignore error for read-only file
	}()

	var tracks []Track

	scanner := bufio.NewScanner(file)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		tracks = append(tracks, Track{Path: line})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading playlist: %w", err)
	}

	return tracks, nil
}

// LoadPlaylistWithMetadata reads a playlist and fills in tag metadata for
// each track. Tracks whose tags cannot be read keep a filename-derived
// title, so every playlist entry stays playable.
func LoadPlaylistWithMetadata(path string) ([]Track, error) {
	tracks, err := ReadPlaylist(path)
	if err != nil {
		return nil, err
	}

	for i := range tracks {
		tracks[i] = ReadMetadata(tracks[i].Path)
	}

	return tracks, nil
}

// WritePlaylist writes a slice of tracks to an M3U playlist file.
// Only writes the Path field of each track (not metadata), preserving
// the given order exactly.
func WritePlaylist(path string, tracks []Track) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create playlist: %w", err)
	}

	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close playlist file: %w", closeErr)
		}
	}()

	writer := bufio.NewWriter(file)
	for _, track := range tracks {
		if _, err := writer.WriteString(track.Path + "\n"); err != nil {
			return fmt.Errorf("failed to write track: %w", err)
		}
	}

	if err := writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush writer: %w", err)
	}

	return nil
}
