// ABOUTME: Rendering functions for TUI components
// ABOUTME: Pure formatting from the current snapshot; no state mutation except viewports

package tui

import (
	"fmt"
	"strings"
	"time"
)

// renderNowPlaying renders the status line: state icon, track, times.
func (m *model) renderNowPlaying() string {
	track := m.engine.Current()
	if track == nil {
		return trackStyle.Render("■ No media loaded")
	}

	var icon string

	switch m.state {
	case statePlaying:
		icon = "▶"
	case statePaused:
		icon = "⏸"
	case stateTransitioning:
		icon = "…"
	default:
		icon = "■"
	}

	position := m.ctrl.Position()
	duration := m.snap.Duration

	line := fmt.Sprintf("%s %s (%s/%s)",
		icon,
		truncate(track.String(), 60),
		formatTime(position),
		formatTime(duration),
	)

	return trackStyle.Render(line)
}

// renderProgress renders the track progress bar.
func (m *model) renderProgress() string {
	duration := m.snap.Duration
	if duration <= 0 {
		return m.progress.ViewAs(0)
	}

	pct := m.ctrl.Position() / duration
	if pct > 1 {
		pct = 1
	}

	return m.progress.ViewAs(pct)
}

// renderVolumeAndModes renders the volume bar plus shuffle/repeat flags.
func (m *model) renderVolumeAndModes() string {
	volume := m.ctrl.Volume()

	filled := volumeBarWidth * volume / 100
	bar := strings.Repeat("█", filled) + strings.Repeat("░", volumeBarWidth-filled)

	shuffle := "Off"
	if m.engine.Shuffle() {
		shuffle = "On"
	}

	return fmt.Sprintf("Volume [%s] %3d%%  %s",
		bar,
		volume,
		modeStyle.Render(fmt.Sprintf("Shuffle: %s | Repeat: %s", shuffle, m.engine.Repeat())),
	)
}

// renderPlaylist renders the playlist panel with viewport scrolling
func (m *model) renderPlaylist() string {
	var s string

	title := fmt.Sprintf("Playlist (%d tracks)", m.engine.Len())
	s += titleStyle.Render(title) + "\n"

	header := fmt.Sprintf("    %-30s %-20s %-20s", "Title", "Artist", "Album")
	s += playlistHeaderStyle.Render(header) + "\n"

	s += m.viewport.View()

	return s
}

// updateViewportContent builds and sets the playlist viewport content
// Renders ALL tracks - let viewport handle scrolling
func (m *model) updateViewportContent() {
	var content string

	for i, track := range m.engine.Tracks() {
		marker := "  "
		if i == m.engine.Cursor() {
			marker = "♪ "
		}

		line := fmt.Sprintf("%s%-2d %-30s %-20s %-20s",
			marker,
			i+1,
			truncate(track.Title, 30),
			truncate(track.Artist, 20),
			truncate(track.Album, 20),
		)

		switch i {
		case m.cursorPos:
			line = cursorStyle.Render(line)
		case m.engine.Cursor():
			line = nowPlayingStyle.Render(line)
		}

		content += line + "\n"
	}

	m.viewport.SetContent(content)
}

// renderLyrics renders the lyrics pane.
func (m *model) renderLyrics() string {
	var s string

	s += titleStyle.Render("Lyrics") + "\n"

	if m.lyricsLoading {
		s += helpStyle.Render("Fetching lyrics...") + "\n"

		return s
	}

	s += m.lyricsViewport.View()

	return s
}

// renderStatus renders the status bar
func (m *model) renderStatus() string {
	// Show status message if recent
	if m.statusMsg != "" && time.Since(m.statusMsgAge) < statusMessageDuration {
		return statusStyle.Width(m.width).Render(m.statusMsg)
	}

	status := fmt.Sprintf("%s | Track %d/%d",
		m.state,
		m.engine.Cursor()+1,
		m.engine.Len(),
	)

	return statusStyle.Width(m.width).Render(status)
}

// renderHelp renders the help text
func (m *model) renderHelp() string {
	return helpStyle.Render(" space: play/pause | ←/→: prev/next | ↑/↓: volume | ,/.: seek | s: shuffle | r: repeat | l: lyrics | j/k+enter: browse | q: quit")
}

// ensureCursorVisible scrolls the viewport so the browse cursor stays
// on screen.
func (m *model) ensureCursorVisible() {
	if m.cursorPos < m.viewport.YOffset {
		m.viewport.YOffset = m.cursorPos
	}

	if m.cursorPos >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.YOffset = m.cursorPos - m.viewport.Height + 1
	}
}

// formatTime formats seconds as m:ss (or h:mm:ss for long tracks).
func formatTime(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}

	total := int(seconds)
	h := total / 3600
	min := (total % 3600) / 60
	sec := total % 60

	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, min, sec)
	}

	return fmt.Sprintf("%d:%02d", min, sec)
}
