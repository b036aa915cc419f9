// ABOUTME: Event handling and state updates for the controller TUI
// ABOUTME: Interleaves keystrokes, status polling and track-end transitions per tick

package tui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"mediactl/lyrics"
	"mediactl/player"
	"mediactl/playlist"
	"mediactl/session"
)

// tickMsg drives the fixed-interval loop body.
type tickMsg time.Time

// lyricsMsg carries the result of an asynchronous lyrics fetch.
type lyricsMsg struct {
	text string
	err  error
}

// fileChangeMsg signals the watched playlist file was modified externally.
type fileChangeMsg struct{}

// reloadCompleteMsg carries a reloaded playlist.
type reloadCompleteMsg struct {
	tracks []playlist.Track
	err    error
}

// tick schedules the next loop iteration.
func tick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles messages and updates the model
//
//nolint:ireturn // Bubble Tea framework requires returning tea.Model interface
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)

		return m, nil

	case tickMsg:
		return m, m.handleTick()

	case tea.KeyMsg:
		return m.handleKey(msg)

	case lyricsMsg:
		m.lyricsLoading = false

		switch {
		case errors.Is(msg.err, lyrics.ErrNotFound):
			m.lyricsText = "No lyrics found."
		case msg.err != nil:
			m.lyricsText = "Error fetching lyrics: " + msg.err.Error()
		default:
			m.lyricsText = msg.text
		}

		m.lyricsViewport.SetContent(m.lyricsText)

		return m, nil

	case fileChangeMsg:
		m.debugf("[WATCHER] Playlist file changed, reloading")

		return m, tea.Batch(
			reloadPlaylist(m.playlistPath),
			waitForFileChange(m.fileWatcher, m.debugf),
		)

	case reloadCompleteMsg:
		m.applyReload(msg)

		return m, nil
	}

	return m, nil
}

// handleTick runs one loop body: poll the player if the interval has
// elapsed, react to track-end, and checkpoint the session.
func (m *model) handleTick() tea.Cmd {
	if m.quitting {
		return nil
	}

	var cmd tea.Cmd

	if time.Since(m.lastPoll) >= m.cfg.PollInterval() {
		m.lastPoll = time.Now()
		cmd = m.pollPlayer()
	}

	m.checkpoint()
	m.updateViewportContent()

	return tea.Batch(cmd, tick(m.cfg.TickInterval()))
}

// pollPlayer queries the external process and drives track-end
// transitions. Returns a follow-up command when a new track starts.
func (m *model) pollPlayer() tea.Cmd {
	if m.state != statePlaying && m.state != statePaused {
		return nil
	}

	prev := m.ctrl.Snapshot()
	snap, err := m.ctrl.Poll(context.Background())
	m.snap = snap

	if err == nil && snap.State != player.Stopped {
		// Player may have been paused or resumed out from under us
		if snap.State == player.Paused {
			m.state = statePaused
		} else {
			m.state = statePlaying
		}

		return nil
	}

	if err != nil {
		m.debugf("[POLL] Player unavailable: %v", err)
	}

	// Process is gone: natural track end or external stop?
	if m.state == statePlaying && player.ClassifyEnd(prev) == player.TrackEnded {
		m.debugf("[POLL] Track ended at %.1fs of %.1fs", prev.Position, prev.Duration)

		return m.advance(1, true)
	}

	m.state = stateIdle
	m.dirty = true
	m.setStatus("Playback stopped")

	return nil
}

// advance resolves the next or previous track through the engine and
// starts it. direction is +1 or -1; atTrackEnd marks automatic
// transitions so repeat-one can restart the same track.
func (m *model) advance(direction int, atTrackEnd bool) tea.Cmd {
	m.state = stateTransitioning

	var (
		track *playlist.Track
		err   error
	)

	if direction >= 0 {
		track, err = m.engine.Next(atTrackEnd)
	} else {
		track, err = m.engine.Previous()
	}

	switch {
	case errors.Is(err, playlist.ErrEndOfPlaylist):
		m.ctrl.Stop()
		m.snap = m.ctrl.Snapshot()
		m.state = stateIdle
		m.dirty = true
		m.setStatus("End of playlist")

		return nil

	case errors.Is(err, playlist.ErrEmptyPlaylist):
		m.state = stateIdle

		return nil

	case err != nil:
		m.state = stateIdle
		m.setStatus("Error: %v", err)

		return nil
	}

	return m.playTrack(track)
}

// playTrack starts playback of the given track and syncs UI state.
func (m *model) playTrack(track *playlist.Track) tea.Cmd {
	if track == nil {
		m.state = stateIdle

		return nil
	}

	if err := m.ctrl.Play(*track); err != nil {
		m.debugf("[PLAY] %v", err)
		m.state = stateIdle
		m.snap = m.ctrl.Snapshot()
		m.setStatus("Player unavailable: is %s installed?", m.cfg.PlayerCommand)

		return nil
	}

	m.state = statePlaying
	m.snap = m.ctrl.Snapshot()
	m.cursorPos = m.engine.Cursor()
	m.dirty = true
	m.lyricsText = ""

	cmds := []tea.Cmd{m.notifyCmd("Playing", track.String())}

	if m.showLyrics {
		cmds = append(cmds, m.fetchLyrics())
	}

	return tea.Batch(cmds...)
}

// playCurrent starts the engine's current track (startup/autoplay path).
func (m *model) playCurrent() {
	if track := m.engine.Current(); track != nil {
		_ = m.playTrack(track)
	}
}

// handleKey applies at most one command per key press.
func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, m.quit()

	case key.Matches(msg, keys.Toggle):
		return m, m.togglePlayback()

	case key.Matches(msg, keys.NextTrack):
		if m.engine.Len() > 0 {
			return m, m.advance(1, false)
		}

	case key.Matches(msg, keys.PrevTrack):
		if m.engine.Len() > 0 {
			return m, m.advance(-1, false)
		}

	case key.Matches(msg, keys.VolumeUp):
		m.snap.Volume = m.ctrl.SetVolume(m.ctrl.Volume() + m.cfg.VolumeStep)
		m.dirty = true

	case key.Matches(msg, keys.VolumeDown):
		m.snap.Volume = m.ctrl.SetVolume(m.ctrl.Volume() - m.cfg.VolumeStep)
		m.dirty = true

	case key.Matches(msg, keys.SeekFwd):
		if err := m.ctrl.Seek(float64(m.cfg.SeekStepSec)); err != nil {
			m.setStatus("Seek failed")
		}

	case key.Matches(msg, keys.SeekBack):
		if err := m.ctrl.Seek(-float64(m.cfg.SeekStepSec)); err != nil {
			m.setStatus("Seek failed")
		}

	case key.Matches(msg, keys.Shuffle):
		on := m.engine.ToggleShuffle()
		m.dirty = true

		if on {
			m.setStatus("Shuffle on")
		} else {
			m.setStatus("Shuffle off")
		}

	case key.Matches(msg, keys.Repeat):
		mode := m.engine.CycleRepeat()
		m.dirty = true
		m.setStatus("Repeat: %s", mode)

	case key.Matches(msg, keys.Lyrics):
		m.showLyrics = !m.showLyrics
		if m.showLyrics && m.lyricsText == "" && !m.lyricsLoading {
			return m, m.fetchLyrics()
		}

	case key.Matches(msg, keys.Up):
		m.moveCursor(-1)

	case key.Matches(msg, keys.Down):
		m.moveCursor(1)

	case key.Matches(msg, keys.PageUp):
		m.moveCursor(-pageJumpSize)

	case key.Matches(msg, keys.PageDown):
		m.moveCursor(pageJumpSize)

	case key.Matches(msg, keys.Home):
		m.moveCursor(-m.engine.Len())

	case key.Matches(msg, keys.End):
		m.moveCursor(m.engine.Len())

	case key.Matches(msg, keys.Select):
		if track := m.engine.Jump(m.cursorPos); track != nil {
			return m, m.playTrack(track)
		}
	}

	return m, nil
}

// togglePlayback flips between playing and paused; from idle it starts
// the current track.
func (m *model) togglePlayback() tea.Cmd {
	switch m.state {
	case statePlaying:
		if err := m.ctrl.Pause(); err != nil {
			m.setStatus("Pause failed")

			return nil
		}

		m.state = statePaused
		m.snap = m.ctrl.Snapshot()
		m.dirty = true

		return m.notifyCmd("Paused", "")

	case statePaused:
		if err := m.ctrl.Resume(); err != nil {
			m.setStatus("Resume failed")

			return nil
		}

		m.state = statePlaying
		m.snap = m.ctrl.Snapshot()
		m.dirty = true

		return nil

	case stateIdle:
		return m.playTrack(m.engine.Current())
	}

	return nil
}

// moveCursor moves the playlist browse cursor, clamped to the list.
func (m *model) moveCursor(delta int) {
	if m.engine.Len() == 0 {
		return
	}

	m.cursorPos += delta
	if m.cursorPos < 0 {
		m.cursorPos = 0
	}

	if m.cursorPos >= m.engine.Len() {
		m.cursorPos = m.engine.Len() - 1
	}

	m.ensureCursorVisible()
}

// checkpoint persists the session when state changed, plus a periodic
// position checkpoint while playing.
func (m *model) checkpoint() {
	if m.store == nil {
		return
	}

	positionDue := m.state == statePlaying && time.Since(m.lastSave) >= sessionCheckpoint
	if !m.dirty && !positionDue {
		return
	}

	if err := m.store.Save(m.sessionState()); err != nil {
		m.debugf("[SESSION] Save failed: %v", err)
	} else {
		m.dirty = false
		m.lastSave = time.Now()
	}
}

// sessionState snapshots the persisted subset of the current state.
func (m *model) sessionState() session.State {
	return session.State{
		Tracks:   m.engine.Paths(),
		Index:    m.engine.Cursor(),
		Position: m.ctrl.Position(),
		Volume:   m.ctrl.Volume(),
		Shuffle:  m.engine.Shuffle(),
		Repeat:   int(m.engine.Repeat()),
	}
}

// quit performs the orderly shutdown: stop the player, flush the
// session, release the watcher, then exit.
func (m *model) quit() tea.Cmd {
	m.quitting = true

	m.ctrl.Stop()

	if m.store != nil {
		if err := m.store.Save(m.sessionState()); err != nil {
			m.debugf("[SESSION] Final save failed: %v", err)
		}
	}

	if m.fileWatcher != nil {
		_ = m.fileWatcher.Close()
	}

	return tea.Quit
}

// notifyCmd sends a desktop notification off the tick path.
func (m *model) notifyCmd(title, body string) tea.Cmd {
	if m.notifier == nil {
		return nil
	}

	notifier := m.notifier

	return func() tea.Msg {
		if err := notifier.Notify(title, body); err != nil {
			// Best-effort only
			return nil
		}

		return nil
	}
}

// fetchLyrics requests lyrics for the current track asynchronously.
func (m *model) fetchLyrics() tea.Cmd {
	track := m.engine.Current()
	if track == nil || m.lyricsc == nil {
		return nil
	}

	m.lyricsLoading = true
	client := m.lyricsc
	artist, title := track.Artist, track.Title

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		text, err := client.Fetch(ctx, artist, title)

		return lyricsMsg{text: text, err: err}
	}
}

// applyReload swaps in an externally-edited playlist, keeping the
// current track where possible.
func (m *model) applyReload(msg reloadCompleteMsg) {
	if msg.err != nil {
		m.setStatus("Reload failed: %v", msg.err)

		return
	}

	start := 0

	if current := m.engine.Current(); current != nil {
		for i, t := range msg.tracks {
			if t.Path == current.Path {
				start = i

				break
			}
		}
	}

	m.engine.Load(msg.tracks, start)
	m.cursorPos = start
	m.dirty = true
	m.setStatus("Playlist reloaded (%d tracks)", len(msg.tracks))
}
