// ABOUTME: Tests for the playback sequencing engine
// ABOUTME: Covers cursor advancement, shuffle permutations, repeat modes, end-of-list

package playlist

import (
	"errors"
	"testing"
)

func testTracks(n int) []Track {
	tracks := make([]Track, n)
	for i := range tracks {
		tracks[i] = Track{Path: string(rune('A'+i)) + ".mp3"}
	}

	return tracks
}

func TestCurrentEmpty(t *testing.T) {
	e := NewEngine()
	if e.Current() != nil {
		t.Error("expected nil current track on empty engine")
	}

	if _, err := e.Next(false); !errors.Is(err, ErrEmptyPlaylist) {
		t.Errorf("expected ErrEmptyPlaylist, got %v", err)
	}

	if _, err := e.Previous(); !errors.Is(err, ErrEmptyPlaylist) {
		t.Errorf("expected ErrEmptyPlaylist, got %v", err)
	}
}

func TestLoadClampsStartIndex(t *testing.T) {
	e := NewEngine()
	e.Load(testTracks(3), 7)

	if e.Cursor() != 0 {
		t.Errorf("expected cursor clamped to 0, got %d", e.Cursor())
	}
}

// TestRepeatAllWraps verifies wrap at both boundaries: [A,B,C] with
// repeat=All, Next from cursor=2 lands on cursor=0
func TestRepeatAllWraps(t *testing.T) {
	e := NewEngine()
	e.Load(testTracks(3), 2)
	e.SetRepeat(RepeatAll)

	track, err := e.Next(false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if e.Cursor() != 0 || track.Path != "A.mp3" {
		t.Errorf("expected wrap to cursor 0 (A.mp3), got cursor %d (%s)", e.Cursor(), track.Path)
	}

	// Previous from 0 wraps back to the end
	track, err = e.Previous()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if e.Cursor() != 2 || track.Path != "C.mp3" {
		t.Errorf("expected wrap to cursor 2 (C.mp3), got cursor %d (%s)", e.Cursor(), track.Path)
	}
}

// TestRepeatNoneEndOfList verifies that advancing past the last track
// returns the end-of-list signal instead of wrapping
func TestRepeatNoneEndOfList(t *testing.T) {
	e := NewEngine()
	e.Load(testTracks(3), 2)

	if _, err := e.Next(false); !errors.Is(err, ErrEndOfPlaylist) {
		t.Errorf("expected ErrEndOfPlaylist, got %v", err)
	}

	// Cursor must not move on the end-of-list signal
	if e.Cursor() != 2 {
		t.Errorf("expected cursor unchanged at 2, got %d", e.Cursor())
	}

	e.Load(testTracks(3), 0)
	if _, err := e.Previous(); !errors.Is(err, ErrEndOfPlaylist) {
		t.Errorf("expected ErrEndOfPlaylist stepping before first track, got %v", err)
	}
}

// TestRepeatAllFullCycle verifies that repeated Next cycles through
// exactly the playlist length before repeating, in both linear and
// shuffle modes
func TestRepeatAllFullCycle(t *testing.T) {
	for _, shuffle := range []bool{false, true} {
		name := "linear"
		if shuffle {
			name = "shuffle"
		}

		t.Run(name, func(t *testing.T) {
			const n = 5

			e := NewEngineSeeded(42)
			e.Load(testTracks(n), 0)
			e.SetRepeat(RepeatAll)
			e.SetShuffle(shuffle)

			first := e.Current().Path
			seen := map[string]bool{first: true}

			for i := 1; i < n; i++ {
				track, err := e.Next(false)
				if err != nil {
					t.Fatalf("advance %d: unexpected error: %v", i, err)
				}

				if seen[track.Path] {
					t.Fatalf("advance %d: track %s repeated within one pass", i, track.Path)
				}

				seen[track.Path] = true
			}

			track, err := e.Next(false)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if track.Path != first {
				t.Errorf("expected cycle to restart at %s, got %s", first, track.Path)
			}
		})
	}
}

// TestRepeatOneTrackEnd verifies repeat-one restarts the same track at
// track end but never blocks a manual skip
func TestRepeatOneTrackEnd(t *testing.T) {
	e := NewEngine()
	e.Load(testTracks(3), 1)
	e.SetRepeat(RepeatOne)

	// Automatic transition: same track restarts
	track, err := e.Next(true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if track.Path != "B.mp3" {
		t.Errorf("expected repeat-one to restart B.mp3, got %s", track.Path)
	}

	// Manual skip: advances normally
	track, err = e.Next(false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if track.Path != "C.mp3" {
		t.Errorf("expected manual skip to C.mp3, got %s", track.Path)
	}
}

// TestToggleShuffleKeepsCurrent verifies toggling shuffle never changes
// the currently playing track
func TestToggleShuffleKeepsCurrent(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		e := NewEngineSeeded(seed)
		e.Load(testTracks(6), 3)

		before := e.Current().Path

		e.ToggleShuffle()

		if got := e.Current().Path; got != before {
			t.Errorf("seed %d: shuffle on changed current track from %s to %s", seed, before, got)
		}

		e.ToggleShuffle()

		if got := e.Current().Path; got != before {
			t.Errorf("seed %d: shuffle off changed current track from %s to %s", seed, before, got)
		}
	}
}

// TestShuffleOrderIsPermutation verifies the regenerated order contains
// each playlist index exactly once
func TestShuffleOrderIsPermutation(t *testing.T) {
	const n = 8

	e := NewEngineSeeded(7)
	e.Load(testTracks(n), 2)
	e.SetShuffle(true)

	order := e.Order()
	if len(order) != n {
		t.Fatalf("expected permutation of length %d, got %d", n, len(order))
	}

	seen := make(map[int]bool, n)

	for _, idx := range order {
		if idx < 0 || idx >= n {
			t.Errorf("index %d out of range", idx)
		}

		if seen[idx] {
			t.Errorf("index %d appears twice", idx)
		}

		seen[idx] = true
	}

	if order[0] != 2 {
		t.Errorf("expected current track first in shuffle order, got index %d", order[0])
	}
}

func TestCycleRepeat(t *testing.T) {
	e := NewEngine()

	sequence := []RepeatMode{RepeatAll, RepeatOne, RepeatNone}
	for i, want := range sequence {
		if got := e.CycleRepeat(); got != want {
			t.Errorf("cycle %d: expected %v, got %v", i, want, got)
		}
	}

	// Three applications return to the original mode
	if e.Repeat() != RepeatNone {
		t.Errorf("expected RepeatNone after full cycle, got %v", e.Repeat())
	}
}

func TestJump(t *testing.T) {
	e := NewEngineSeeded(3)
	e.Load(testTracks(4), 0)
	e.SetShuffle(true)

	if track := e.Jump(2); track == nil || track.Path != "C.mp3" {
		t.Fatalf("expected jump to C.mp3, got %v", track)
	}

	if e.Jump(10) != nil {
		t.Error("expected nil for out-of-range jump")
	}

	// After a jump under shuffle, stepping must continue from the
	// jumped track's slot in the permutation
	if _, err := e.Next(false); err != nil && !errors.Is(err, ErrEndOfPlaylist) {
		t.Errorf("unexpected error after jump: %v", err)
	}
}

func TestLoadEmptyClears(t *testing.T) {
	e := NewEngine()
	e.Load(testTracks(3), 1)
	e.Load(nil, 0)

	if e.Current() != nil {
		t.Error("expected no current track after loading empty playlist")
	}

	if e.Cursor() != -1 {
		t.Errorf("expected cursor -1, got %d", e.Cursor())
	}
}
