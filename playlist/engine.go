// ABOUTME: Playback sequencing engine: cursor, shuffle permutation, repeat policy
// ABOUTME: Resolves next/previous tracks with wrap and end-of-list semantics

package playlist

import (
	"errors"
	"math/rand"
	"time"
)

// Sentinel errors returned by the engine. ErrEndOfPlaylist is a signal,
// not a failure: the caller decides whether to stop or stay put.
var (
	ErrEmptyPlaylist = errors.New("playlist is empty")
	ErrEndOfPlaylist = errors.New("end of playlist")
)

// RepeatMode defines what happens when the current track ends.
type RepeatMode int

const (
	RepeatNone RepeatMode = iota
	RepeatAll
	RepeatOne
)

// String returns the repeat mode name.
func (m RepeatMode) String() string {
	switch m {
	case RepeatNone:
		return "Off"
	case RepeatAll:
		return "All"
	case RepeatOne:
		return "One"
	default:
		return "Unknown"
	}
}

// Engine owns the ordered track list and resolves playback sequencing.
// It is mutated only from the event loop, so it does no locking.
//
// Invariants: cursor is always a valid index or -1 (nothing loaded), and
// when shuffle is on, order is a permutation of exactly [0, len) with
// pos pointing at the permutation slot that holds cursor.
type Engine struct {
	tracks  []Track
	cursor  int // -1 if nothing loaded
	shuffle bool
	order   []int // shuffle permutation, nil while shuffle is off
	pos     int   // position of cursor within order
	repeat  RepeatMode
	rng     *rand.Rand
}

// NewEngine creates an empty engine with a time-seeded shuffle source.
func NewEngine() *Engine {
	return NewEngineSeeded(time.Now().UnixNano())
}

// NewEngineSeeded creates an empty engine with a fixed shuffle seed.
// Used by tests to make permutation assertions deterministic.
func NewEngineSeeded(seed int64) *Engine {
	return &Engine{
		cursor: -1,
		rng:    rand.New(rand.NewSource(seed)),
	}
}

// Load replaces the playlist and moves the cursor to startIndex
// (clamped into range). If shuffle is active the permutation is
// regenerated with the starting track first.
func (e *Engine) Load(tracks []Track, startIndex int) {
	e.tracks = tracks

	if len(tracks) == 0 {
		e.cursor = -1
		e.order = nil

		return
	}

	if startIndex < 0 || startIndex >= len(tracks) {
		startIndex = 0
	}

	e.cursor = startIndex

	if e.shuffle {
		e.reshuffle()
	}
}

// Current returns the track at the cursor, or nil if nothing is loaded.
func (e *Engine) Current() *Track {
	if e.cursor < 0 || e.cursor >= len(e.tracks) {
		return nil
	}

	return &e.tracks[e.cursor]
}

// Next resolves the track that follows the current one. atTrackEnd marks
// an automatic transition (natural end of track) as opposed to a manual
// skip: repeat-one restarts the current track only on automatic
// transitions, never on a keypress.
func (e *Engine) Next(atTrackEnd bool) (*Track, error) {
	if len(e.tracks) == 0 {
		return nil, ErrEmptyPlaylist
	}

	if atTrackEnd && e.repeat == RepeatOne {
		return e.Current(), nil
	}

	return e.step(1)
}

// Previous resolves the track before the current one. Manual only, so
// repeat-one never applies.
func (e *Engine) Previous() (*Track, error) {
	if len(e.tracks) == 0 {
		return nil, ErrEmptyPlaylist
	}

	return e.step(-1)
}

// step moves the cursor by one position in the given direction, walking
// the shuffle permutation when shuffle is on. Repeat-all wraps at either
// boundary; otherwise stepping out of bounds returns ErrEndOfPlaylist
// with the cursor unchanged.
func (e *Engine) step(direction int) (*Track, error) {
	if e.shuffle {
		next := e.pos + direction
		if next < 0 || next >= len(e.order) {
			if e.repeat != RepeatAll {
				return nil, ErrEndOfPlaylist
			}

			next = (next + len(e.order)) % len(e.order)
		}

		e.pos = next
		e.cursor = e.order[e.pos]

		return e.Current(), nil
	}

	next := e.cursor + direction
	if next < 0 || next >= len(e.tracks) {
		if e.repeat != RepeatAll {
			return nil, ErrEndOfPlaylist
		}

		next = (next + len(e.tracks)) % len(e.tracks)
	}

	e.cursor = next

	return e.Current(), nil
}

// Jump moves the cursor directly to the given playlist index.
// Returns nil if the index is out of range.
func (e *Engine) Jump(index int) *Track {
	if index < 0 || index >= len(e.tracks) {
		return nil
	}

	e.cursor = index

	if e.shuffle {
		// Keep the permutation invariant: pos must point at cursor
		for i, idx := range e.order {
			if idx == index {
				e.pos = i

				break
			}
		}
	}

	return e.Current()
}

// ToggleShuffle flips shuffle mode and returns the new state. Enabling
// regenerates the permutation with the current track first, so toggling
// never changes what is playing. Disabling keeps the linear cursor.
func (e *Engine) ToggleShuffle() bool {
	e.SetShuffle(!e.shuffle)

	return e.shuffle
}

// SetShuffle sets shuffle mode explicitly (used for session restore and
// CLI flags).
func (e *Engine) SetShuffle(on bool) {
	if e.shuffle == on {
		return
	}

	e.shuffle = on

	if on && len(e.tracks) > 0 {
		e.reshuffle()
	} else {
		e.order = nil
		e.pos = 0
	}
}

// reshuffle regenerates the permutation so the current track comes first.
func (e *Engine) reshuffle() {
	e.order = e.rng.Perm(len(e.tracks))
	e.pos = 0

	if e.cursor < 0 {
		e.cursor = e.order[0]

		return
	}

	// Swap the current track into the first slot for continuity
	for i, idx := range e.order {
		if idx == e.cursor {
			e.order[0], e.order[i] = e.order[i], e.order[0]

			break
		}
	}
}

// CycleRepeat advances the repeat mode: Off -> All -> One -> Off.
func (e *Engine) CycleRepeat() RepeatMode {
	switch e.repeat {
	case RepeatNone:
		e.repeat = RepeatAll
	case RepeatAll:
		e.repeat = RepeatOne
	default:
		e.repeat = RepeatNone
	}

	return e.repeat
}

// SetRepeat sets the repeat mode explicitly.
func (e *Engine) SetRepeat(mode RepeatMode) {
	e.repeat = mode
}

// Tracks returns the playlist in insertion order.
func (e *Engine) Tracks() []Track {
	return e.tracks
}

// Paths returns the playlist file paths in insertion order.
func (e *Engine) Paths() []string {
	paths := make([]string, len(e.tracks))
	for i, t := range e.tracks {
		paths[i] = t.Path
	}

	return paths
}

// Cursor returns the current playlist index (-1 if nothing loaded).
func (e *Engine) Cursor() int {
	return e.cursor
}

// Len returns the number of tracks.
func (e *Engine) Len() int {
	return len(e.tracks)
}

// Shuffle returns whether shuffle mode is on.
func (e *Engine) Shuffle() bool {
	return e.shuffle
}

// Repeat returns the current repeat mode.
func (e *Engine) Repeat() RepeatMode {
	return e.repeat
}

// Order returns the shuffle permutation (nil while shuffle is off).
// Exposed for tests that assert permutation validity.
func (e *Engine) Order() []int {
	return e.order
}
