// ABOUTME: Terminal UI model and core state management
// ABOUTME: Bubble Tea model implementation coordinating player, playlist and session

// Package tui provides the interactive terminal controller: one Bubble
// Tea event loop interleaving keyboard input, fixed-interval status
// polling of the external player, and track-boundary transitions.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fsnotify/fsnotify"

	"mediactl/config"
	"mediactl/lyrics"
	"mediactl/notify"
	"mediactl/player"
	"mediactl/playlist"
	"mediactl/session"
)

// Layout constants for UI dimensions
const (
	// UI chrome heights (elements that reduce available viewport space)
	headerHeight    = 4 // Status line, progress bar, volume/mode line, spacing
	titleHeight     = 2 // Playlist panel title
	statusBarHeight = 1 // Bottom status bar
	helpHeight      = 1 // Help text line
	totalUIChrome   = headerHeight + titleHeight + statusBarHeight + helpHeight

	// Minimum viewport dimensions to ensure usability
	minViewportWidth  = 20
	minViewportHeight = 3

	volumeBarWidth = 20
)

// Timing and interaction constants
const (
	statusMessageDuration = 5 * time.Second  // How long to show transient status messages
	sessionCheckpoint     = 5 * time.Second  // Position checkpoint cadence while playing
	pageJumpSize          = 10               // Tracks to jump on PageUp/PageDown
)

// loopState tracks where the event loop is in the playback lifecycle.
type loopState int

const (
	stateIdle loopState = iota
	statePlaying
	statePaused
	stateTransitioning
)

// String returns the state name for the status bar.
func (s loopState) String() string {
	switch s {
	case stateIdle:
		return "Idle"
	case statePlaying:
		return "Playing"
	case statePaused:
		return "Paused"
	case stateTransitioning:
		return "Loading"
	default:
		return "Unknown"
	}
}

// model holds the TUI state
type model struct {
	// Dependencies (concrete types following Go philosophy)
	cfg      config.Config
	engine   *playlist.Engine
	ctrl     *player.Controller
	store    *session.Store
	notifier notify.Notifier
	lyricsc  *lyrics.Client
	debugf   func(string, ...interface{})

	// Playback state
	state    loopState
	snap     player.Snapshot // Last normalized poll result
	lastPoll time.Time       // When the player was last polled
	lastSave time.Time       // When the session was last checkpointed
	dirty    bool            // Session changed since last checkpoint

	// File watching
	playlistPath string
	fileWatcher  *fsnotify.Watcher

	// UI state
	width        int
	height       int
	quitting     bool
	statusMsg    string
	statusMsgAge time.Time

	// Playlist browsing
	cursorPos int            // Selected row in the playlist panel
	viewport  viewport.Model // Scrolling track list

	// Lyrics pane
	showLyrics     bool
	lyricsText     string
	lyricsLoading  bool
	lyricsViewport viewport.Model

	// Progress bar
	progress progress.Model
}

// Key bindings
type keyMap struct {
	Toggle     key.Binding
	NextTrack  key.Binding
	PrevTrack  key.Binding
	VolumeUp   key.Binding
	VolumeDown key.Binding
	SeekFwd    key.Binding
	SeekBack   key.Binding
	Shuffle    key.Binding
	Repeat     key.Binding
	Lyrics     key.Binding
	Up         key.Binding
	Down       key.Binding
	PageUp     key.Binding
	PageDown   key.Binding
	Home       key.Binding
	End        key.Binding
	Select     key.Binding
	Quit       key.Binding
}

var keys = keyMap{
	Toggle: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "play/pause"),
	),
	NextTrack: key.NewBinding(
		key.WithKeys("right"),
		key.WithHelp("→", "next track"),
	),
	PrevTrack: key.NewBinding(
		key.WithKeys("left"),
		key.WithHelp("←", "previous track"),
	),
	VolumeUp: key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("↑", "volume up"),
	),
	VolumeDown: key.NewBinding(
		key.WithKeys("down"),
		key.WithHelp("↓", "volume down"),
	),
	SeekFwd: key.NewBinding(
		key.WithKeys("."),
		key.WithHelp(".", "seek forward"),
	),
	SeekBack: key.NewBinding(
		key.WithKeys(","),
		key.WithHelp(",", "seek back"),
	),
	Shuffle: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "shuffle"),
	),
	Repeat: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "repeat"),
	),
	Lyrics: key.NewBinding(
		key.WithKeys("l"),
		key.WithHelp("l", "lyrics"),
	),
	Up: key.NewBinding(
		key.WithKeys("k"),
		key.WithHelp("k", "browse up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j"),
		key.WithHelp("j", "browse down"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup"),
		key.WithHelp("pgup", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown"),
		key.WithHelp("pgdn", "page down"),
	),
	Home: key.NewBinding(
		key.WithKeys("home", "g"),
		key.WithHelp("g", "first track"),
	),
	End: key.NewBinding(
		key.WithKeys("end", "G"),
		key.WithHelp("G", "last track"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "play selected"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))

	trackStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	playlistHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("10"))

	statusStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("15")).
			Padding(0, 1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	cursorStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("240")).
			Foreground(lipgloss.Color("15"))

	nowPlayingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	modeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("14"))
)

// Deps holds the collaborators the event loop coordinates.
type Deps struct {
	Config   config.Config
	Engine   *playlist.Engine
	Ctrl     *player.Controller
	Store    *session.Store
	Notifier notify.Notifier
	Lyrics   *lyrics.Client
	Debugf   func(string, ...interface{})
}

// Run starts the TUI with the given collaborators and blocks until quit.
func Run(opts Options, deps Deps) error {
	m := initModel(opts, deps)

	// Watch the playlist file so external edits reload the list
	if opts.PlaylistPath != "" {
		watcher, err := fsnotify.NewWatcher()
		if err == nil {
			if err := watcher.Add(opts.PlaylistPath); err != nil {
				_ = watcher.Close()
			} else {
				m.fileWatcher = watcher
				m.playlistPath = opts.PlaylistPath
			}
		}
	}

	// Kick off playback before entering the loop so resume/autoplay
	// doesn't wait for the first tick
	if opts.AutoPlay && m.engine.Current() != nil {
		m.playCurrent()

		if opts.StartPosition > 0 {
			_ = m.ctrl.Seek(opts.StartPosition)
		}
	}

	p := tea.NewProgram(m, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		if m.fileWatcher != nil {
			_ = m.fileWatcher.Close()
		}

		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}

// initModel creates the initial model with injected dependencies
func initModel(opts Options, deps Deps) *model {
	debugf := deps.Debugf
	if debugf == nil {
		debugf = func(string, ...interface{}) {}
	}

	m := &model{
		cfg:      deps.Config,
		engine:   deps.Engine,
		ctrl:     deps.Ctrl,
		store:    deps.Store,
		notifier: deps.Notifier,
		lyricsc:  deps.Lyrics,
		debugf:   debugf,

		state:    stateIdle,
		snap:     deps.Ctrl.Snapshot(),
		lastPoll: time.Now(),
		lastSave: time.Now(),

		showLyrics:     opts.ShowLyrics,
		viewport:       viewport.New(0, 0), // Sized on first WindowSizeMsg
		lyricsViewport: viewport.New(0, 0),
		progress:       progress.New(progress.WithDefaultGradient()),
	}

	m.cursorPos = deps.Engine.Cursor()
	if m.cursorPos < 0 {
		m.cursorPos = 0
	}

	return m
}

// Init initializes the model
func (m *model) Init() tea.Cmd {
	cmds := []tea.Cmd{tick(m.cfg.TickInterval())}

	if m.fileWatcher != nil {
		cmds = append(cmds, waitForFileChange(m.fileWatcher, m.debugf))
	}

	if m.showLyrics {
		cmds = append(cmds, m.fetchLyrics())
	}

	return tea.Batch(cmds...)
}

// setStatus shows a transient status-bar message.
func (m *model) setStatus(format string, args ...interface{}) {
	m.statusMsg = fmt.Sprintf(format, args...)
	m.statusMsgAge = time.Now()
}

// truncate shortens a string to maxLen, adding "..." if truncated
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}

	if maxLen <= 3 {
		return s[:maxLen]
	}

	return s[:maxLen-3] + "..."
}
