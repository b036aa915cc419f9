// ABOUTME: TUI mode configuration and startup options
// ABOUTME: Defines input parameters for running the controller UI

package tui

// Options contains configuration for running the TUI
type Options struct {
	PlaylistPath  string  // Playlist file to watch for external edits ("" for single files)
	AutoPlay      bool    // Start playback immediately on launch
	StartPosition float64 // Seconds to seek into the first track (session resume)
	ShowLyrics    bool    // Open with the lyrics pane visible
	DebugLog      bool    // Enable debug logging to file
}
