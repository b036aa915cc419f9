// ABOUTME: Entry point for mediactl, a terminal controller for an external media player
// ABOUTME: Handles command-line parsing, session restore, and routing to TUI or one-shot modes

// Package main provides the entry point for mediactl, a terminal
// controller that drives an external media-player process: playlist
// sequencing with shuffle/repeat, session resume, volume, lyrics, and a
// live status display.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"mediactl/config"
	"mediactl/lyrics"
	"mediactl/notify"
	"mediactl/player"
	"mediactl/playlist"
	"mediactl/session"
	"mediactl/tui"
)

func main() {
	os.Exit(run())
}

func run() int {
	resume := flag.Bool("resume", false, "resume playback from the last session")
	playlistFlag := flag.String("playlist", "", "load a playlist file (.m3u)")
	savePlaylist := flag.String("save-playlist", "", "save the loaded playlist to this file and exit")
	lyricsFlag := flag.Bool("lyrics", false, "print lyrics for the current track and exit")
	volumeFlag := flag.Int("volume", -1, "set initial volume (0-100)")
	shuffleFlag := flag.Bool("shuffle", false, "enable shuffle mode")
	repeatFlag := flag.Bool("repeat", false, "enable repeat-all mode")
	debug := flag.Bool("debug", false, "enable debug logging to mediactl-debug.log")
	flag.Parse()

	if *debug {
		if err := SetupDebugLog("mediactl-debug.log"); err != nil {
			log.Printf("Failed to setup debug log: %v", err)

			return 1
		}
	}

	cfg, err := config.LoadConfig(config.GetConfigPath())
	if err != nil {
		log.Printf("Warning: %v (using defaults)", err)
	}

	sessionPath, err := session.DefaultPath()
	if err != nil {
		log.Printf("Warning: %v (session persistence disabled)", err)
	}

	var store *session.Store
	if sessionPath != "" {
		store = session.NewStore(sessionPath)
	}

	engine := playlist.NewEngine()
	ctrl := player.NewController(player.ExecRunner{}, cfg.PlayerCommand, cfg.VolumeCommand)

	opts := tui.Options{
		AutoPlay:   cfg.AutoPlay,
		ShowLyrics: false,
		DebugLog:   *debug,
	}

	volume := 50

	// Resolve the startup source: session resume, playlist, or direct file
	switch {
	case *resume:
		if store == nil {
			fmt.Println("No previous session to resume.")

			return 1
		}

		sess, err := store.Load()
		if err != nil || sess == nil || len(sess.Tracks) == 0 {
			fmt.Println("No previous session to resume.")

			return 1
		}

		tracks, cursor := restoreSession(sess)
		if len(tracks) == 0 {
			fmt.Println("No tracks from the previous session still exist.")

			return 1
		}

		engine.Load(tracks, cursor)
		engine.SetRepeat(playlist.RepeatMode(sess.Repeat))
		engine.SetShuffle(sess.Shuffle)
		volume = sess.Volume
		opts.StartPosition = sess.Position

	case *playlistFlag != "":
		tracks, err := loadPlaylistFile(*playlistFlag)
		if err != nil {
			log.Printf("Error: %v", err)

			return 1
		}

		engine.Load(tracks, 0)
		opts.PlaylistPath = *playlistFlag

	case flag.NArg() == 1:
		path := flag.Arg(0)

		if strings.HasSuffix(path, ".m3u") || strings.HasSuffix(path, ".m3u8") {
			tracks, err := loadPlaylistFile(path)
			if err != nil {
				log.Printf("Error: %v", err)

				return 1
			}

			engine.Load(tracks, 0)
			opts.PlaylistPath = path
		} else {
			if _, err := os.Stat(path); err != nil {
				log.Printf("Error: file not found: %s", path)

				return 1
			}

			engine.Load([]playlist.Track{playlist.ReadMetadata(path)}, 0)
		}

	default:
		fmt.Println("Usage: mediactl [flags] <file-or-playlist>")
		fmt.Println("Example: mediactl ~/Music/favorites.m3u")
		fmt.Println("\nFlags:")
		flag.PrintDefaults()

		return 1
	}

	// Command-line overrides
	if *shuffleFlag {
		engine.SetShuffle(true)
	}

	if *repeatFlag {
		engine.SetRepeat(playlist.RepeatAll)
	}

	if *volumeFlag >= 0 {
		volume = *volumeFlag
	}

	ctrl.SetVolume(volume)

	lyricsClient := lyrics.NewClient(cfg.GeniusToken)

	// One-shot modes exit before the TUI starts
	if *savePlaylist != "" {
		if err := runSavePlaylist(engine, *savePlaylist); err != nil {
			log.Printf("Error: %v", err)

			return 1
		}

		return 0
	}

	if *lyricsFlag {
		if err := runLyricsOnce(lyricsClient, engine); err != nil {
			log.Printf("Error: %v", err)

			return 1
		}

		return 0
	}

	deps := tui.Deps{
		Config:   cfg,
		Engine:   engine,
		Ctrl:     ctrl,
		Store:    store,
		Notifier: notify.New(),
		Lyrics:   lyricsClient,
		Debugf:   debugf,
	}

	if err := tui.Run(opts, deps); err != nil {
		log.Printf("TUI error: %v", err)

		return 1
	}

	return 0
}
