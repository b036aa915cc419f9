// ABOUTME: Tests for M3U playlist reading and writing
// ABOUTME: Verifies file I/O, comment handling, and round-trip order preservation

package playlist

import (
	"os"
	"path/filepath"
	"testing"
)

// TestReadPlaylist verifies M3U parsing
func TestReadPlaylist(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		expectCount int
		expectError bool
	}{
		{
			name: "simple playlist",
			content: `Artist/Album/01 Track.mp3
Artist/Album/02 Track.mp3
Artist/Album/03 Track.mp3`,
			expectCount: 3,
			expectError: false,
		},
		{
			name: "with comments",
			content: `#EXTM3U
# This is a comment
Artist/Album/01 Track.mp3
# Another comment
Artist/Album/02 Track.mp3`,
			expectCount: 2,
			expectError: false,
		},
		{
			name: "with empty lines",
			content: `Artist/Album/01 Track.mp3

Artist/Album/02 Track.mp3

`,
			expectCount: 2,
			expectError: false,
		},
		{
			name:        "empty file",
			content:     "",
			expectCount: 0,
			expectError: false,
		},
		{
			name: "only comments",
			content: `#EXTM3U
# Just comments
# No tracks`,
			expectCount: 0,
			expectError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "test.m3u")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}

			tracks, err := ReadPlaylist(path)
			if tt.expectError && err == nil {
				t.Fatal("expected error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if len(tracks) != tt.expectCount {
				t.Errorf("expected %d tracks, got %d", tt.expectCount, len(tracks))
			}
		})
	}
}

func TestReadPlaylistMissingFile(t *testing.T) {
	if _, err := ReadPlaylist("/nonexistent/playlist.m3u"); err == nil {
		t.Error("expected error for missing playlist file")
	}
}

// TestWriteReadRoundTrip verifies that save-then-load preserves track
// path order exactly
func TestWriteReadRoundTrip(t *testing.T) {
	paths := []string{
		"Artist/Album/03 Third.mp3",
		"Artist/Album/01 First.mp3",
		"Other/Album/02 Second.flac",
	}

	tracks := make([]Track, len(paths))
	for i, p := range paths {
		tracks[i] = Track{Path: p}
	}

	file := filepath.Join(t.TempDir(), "roundtrip.m3u")
	if err := WritePlaylist(file, tracks); err != nil {
		t.Fatalf("WritePlaylist failed: %v", err)
	}

	loaded, err := ReadPlaylist(file)
	if err != nil {
		t.Fatalf("ReadPlaylist failed: %v", err)
	}

	if len(loaded) != len(paths) {
		t.Fatalf("expected %d tracks, got %d", len(paths), len(loaded))
	}

	for i, track := range loaded {
		if track.Path != paths[i] {
			t.Errorf("track %d: expected %q, got %q", i, paths[i], track.Path)
		}
	}
}

func TestWritePlaylistOverwrites(t *testing.T) {
	file := filepath.Join(t.TempDir(), "playlist.m3u")

	if err := WritePlaylist(file, []Track{{Path: "a.mp3"}, {Path: "b.mp3"}}); err != nil {
		t.Fatal(err)
	}

	if err := WritePlaylist(file, []Track{{Path: "c.mp3"}}); err != nil {
		t.Fatal(err)
	}

	loaded, err := ReadPlaylist(file)
	if err != nil {
		t.Fatal(err)
	}

	if len(loaded) != 1 || loaded[0].Path != "c.mp3" {
		t.Errorf("expected single track c.mp3 after overwrite, got %v", loaded)
	}
}
