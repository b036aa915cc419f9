// ABOUTME: Rendering and display composition for the controller TUI
// ABOUTME: Implements the Bubble Tea View() function and window resizing

package tui

import (
	"strings"
)

// View renders the TUI
func (m *model) View() string {
	if m.quitting {
		return "Saving session and exiting...\n"
	}

	var b strings.Builder

	b.WriteString(m.renderNowPlaying() + "\n")
	b.WriteString(m.renderProgress() + "\n")
	b.WriteString(m.renderVolumeAndModes() + "\n")
	b.WriteString("\n")

	if m.showLyrics {
		b.WriteString(m.renderLyrics())
	} else {
		b.WriteString(m.renderPlaylist())
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatus() + "\n")
	b.WriteString(m.renderHelp())

	return b.String()
}

// resize recalculates component dimensions for a new terminal size.
func (m *model) resize(width, height int) {
	m.width = width
	m.height = height

	viewportWidth := width
	if viewportWidth < minViewportWidth {
		viewportWidth = minViewportWidth
	}

	viewportHeight := height - totalUIChrome
	if viewportHeight < minViewportHeight {
		viewportHeight = minViewportHeight
	}

	m.viewport.Width = viewportWidth
	m.viewport.Height = viewportHeight
	m.lyricsViewport.Width = viewportWidth
	m.lyricsViewport.Height = viewportHeight

	m.progress.Width = width - 2
	if m.progress.Width > 80 {
		m.progress.Width = 80
	}

	m.ensureCursorVisible()
	m.updateViewportContent()

	if m.lyricsText != "" {
		m.lyricsViewport.SetContent(m.lyricsText)
	}
}
