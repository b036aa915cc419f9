// ABOUTME: Defines the Track value and metadata reading from audio file tags
// ABOUTME: Falls back to filename-derived titles when tags are missing or unreadable

package playlist

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dhowden/tag"
)

// Track represents a single entry in a playlist. Created once when a file
// or playlist is loaded and never mutated afterwards.
type Track struct {
	Path     string  // Path as written in the playlist file
	Title    string  // Track title (filename-derived if tags are missing)
	Artist   string  // Artist name (empty if not available)
	Album    string  // Album name (empty if not available)
	Duration float64 // Duration in seconds (0 if unknown)
}

// ReadMetadata builds a Track for the given path by reading its audio tags.
// Tag failures are not errors: the returned Track falls back to a title
// derived from the filename, with all other fields zero.
func ReadMetadata(path string) Track {
	t := Track{
		Path:  path,
		Title: titleFromPath(path),
	}

	file, err := os.Open(path)
	if err != nil {
		return t
	}
	defer func() { _ = file.Close() }()

	metadata, err := tag.ReadFrom(file)
	if err != nil {
		return t
	}

	if title := metadata.Title(); title != "" {
		t.Title = title
	}

	t.Artist = metadata.Artist()
	t.Album = metadata.Album()

	return t
}

// titleFromPath derives a display title from a file path
// Example: "Artist/Album/01 Dreams.mp3" -> "01 Dreams"
func titleFromPath(path string) string {
	base := filepath.Base(path)

	return strings.TrimSuffix(base, filepath.Ext(base))
}

// String returns a formatted string representation of the track
func (t *Track) String() string {
	if t.Artist == "" {
		return t.Title
	}

	return fmt.Sprintf("%s - %s", t.Artist, t.Title)
}
