// ABOUTME: One-shot non-TUI modes: print lyrics, save the loaded playlist
// ABOUTME: Mirrors the TUI's collaborators without entering the event loop

package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mediactl/lyrics"
	"mediactl/playlist"
)

// runLyricsOnce fetches and prints lyrics for the engine's current
// track, then returns. Used by --lyrics without the TUI.
func runLyricsOnce(client *lyrics.Client, engine *playlist.Engine) error {
	track := engine.Current()
	if track == nil {
		return errors.New("no media loaded to fetch lyrics for")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	text, err := client.Fetch(ctx, track.Artist, track.Title)
	if errors.Is(err, lyrics.ErrNotFound) {
		fmt.Printf("No lyrics found for %s\n", track)

		return nil
	}

	if err != nil {
		return fmt.Errorf("failed to fetch lyrics: %w", err)
	}

	fmt.Println(text)

	return nil
}

// runSavePlaylist writes the loaded playlist to the given path,
// preserving track order. Used by --save-playlist without the TUI.
func runSavePlaylist(engine *playlist.Engine, path string) error {
	if engine.Len() == 0 {
		return errors.New("no playlist loaded to save")
	}

	if err := playlist.WritePlaylist(path, engine.Tracks()); err != nil {
		return fmt.Errorf("failed to save playlist: %w", err)
	}

	fmt.Printf("Playlist saved to %s\n", path)

	return nil
}
