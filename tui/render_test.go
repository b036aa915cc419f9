// ABOUTME: Tests for rendering helpers
// ABOUTME: Covers time formatting, truncation, and status bar selection

package tui

import (
	"strings"
	"testing"
	"time"
)

func TestFormatTime(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "0:00"},
		{5, "0:05"},
		{65, "1:05"},
		{83.7, "1:23"},
		{3600, "1:00:00"},
		{3723, "1:02:03"},
		{-5, "0:00"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := formatTime(tt.seconds); got != tt.want {
				t.Errorf("formatTime(%f) = %q, want %q", tt.seconds, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{"short string unchanged", "hello", 10, "hello"},
		{"exact length unchanged", "hello", 5, "hello"},
		{"long string truncated", "hello world", 8, "hello..."},
		{"tiny max", "hello", 2, "he"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncate(tt.input, tt.maxLen); got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.want)
			}
		})
	}
}

func TestRenderStatusShowsTransientMessage(t *testing.T) {
	m, _ := newTestModel(t, testTracks())

	m.setStatus("Shuffle on")

	if !strings.Contains(m.renderStatus(), "Shuffle on") {
		t.Error("expected transient message in status bar")
	}

	// Expired messages fall back to the state summary
	m.statusMsgAge = time.Now().Add(-2 * statusMessageDuration)

	status := m.renderStatus()
	if strings.Contains(status, "Shuffle on") {
		t.Error("expected expired message to be replaced")
	}

	if !strings.Contains(status, "Idle") {
		t.Errorf("expected state summary in status bar, got %q", status)
	}
}
