// ABOUTME: Playlist file watching and background reload commands
// ABOUTME: External edits to the loaded playlist are picked up without restart

package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"mediactl/playlist"
)

// waitForFileChange returns a command that waits for file system events
func waitForFileChange(watcher *fsnotify.Watcher, debugf func(string, ...interface{})) tea.Cmd {
	return func() tea.Msg {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				// Only react to write events
				if event.Op&fsnotify.Write == fsnotify.Write {
					// Debounce: wait a bit for atomic writes to complete
					time.Sleep(100 * time.Millisecond)
					return fileChangeMsg{}
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				// Log error but continue watching
				debugf("[WATCHER] Error: %v", err)
			}
		}
	}
}

// reloadPlaylist loads the playlist in the background
func reloadPlaylist(path string) tea.Cmd {
	return func() tea.Msg {
		tracks, err := playlist.LoadPlaylistWithMetadata(path)
		if err != nil {
			return reloadCompleteMsg{err: err}
		}

		return reloadCompleteMsg{tracks: tracks}
	}
}
