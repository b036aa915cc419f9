// ABOUTME: Playback controller for the external media-player process
// ABOUTME: Issues transport commands and polls status into normalized snapshots

// Package player drives an external media-player executable (transport
// commands and status polling) and a companion volume tool. All tool
// failures are converted to snapshot state or ErrProcessUnavailable;
// nothing here panics or kills the event loop.
package player

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"mediactl/playlist"
)

// ErrProcessUnavailable reports that the player tool could not be queried
// (missing binary, process already exited). The event loop decides
// whether this means "track ended" or "external stop".
var ErrProcessUnavailable = errors.New("player process unavailable")

// endTolerance is how close (seconds) the last known position must be to
// the track duration for a dead process to count as a natural track end.
const endTolerance = 1.5

// State represents the transport state reported by the player.
type State int

const (
	Stopped State = iota
	Playing
	Paused
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Stopped:
		return "Stopped"
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// Snapshot is the normalized playback status, recomputed on each poll.
type Snapshot struct {
	State    State
	Position float64 // seconds
	Duration float64 // seconds, 0 if unknown
	Volume   int     // percent, controller-owned
}

// EndCause classifies why a previously-playing process is gone.
type EndCause int

const (
	// TrackEnded means the process stopped with the position at (or
	// within endTolerance of) the track duration: natural end of track.
	TrackEnded EndCause = iota
	// ExternalStop means the process died far from the end of the track.
	ExternalStop
)

// ClassifyEnd decides whether a not-running poll result was a natural
// track end or an external stop, based on the last snapshot taken while
// the process was still alive.
func ClassifyEnd(prev Snapshot) EndCause {
	if prev.Duration > 0 && prev.Duration-prev.Position <= endTolerance {
		return TrackEnded
	}

	return ExternalStop
}

// Controller owns the external player process reference (at most one at
// a time) and the volume tool. Mutated only from the event loop tick.
type Controller struct {
	runner    Runner
	playerCmd string
	volumeCmd string

	snap    Snapshot
	current string // path of the active track, "" when idle

	// Wall-clock position estimate between polls: position =
	// basePos + (now - startedAt) while playing, basePos while paused.
	basePos   float64
	startedAt time.Time
}

// NewController creates a controller for the given tool commands.
func NewController(runner Runner, playerCmd, volumeCmd string) *Controller {
	return &Controller{
		runner:    runner,
		playerCmd: playerCmd,
		volumeCmd: volumeCmd,
	}
}

// Play starts playback of the given track, replacing any active one.
func (c *Controller) Play(track playlist.Track) error {
	if c.current != "" && c.current != track.Path {
		// Replace the old process handle before spawning a new one
		_ = c.runner.Start(c.playerCmd, "stop")
	}

	if err := c.runner.Start(c.playerCmd, "play", track.Path); err != nil {
		c.reset()

		return fmt.Errorf("%w: %v", ErrProcessUnavailable, err)
	}

	c.current = track.Path
	c.basePos = 0
	c.startedAt = time.Now()
	c.snap.State = Playing
	c.snap.Position = 0
	c.snap.Duration = track.Duration

	return nil
}

// Pause pauses playback. No-op when idle or already paused.
func (c *Controller) Pause() error {
	if c.snap.State != Playing {
		return nil
	}

	if err := c.runner.Start(c.playerCmd, "pause"); err != nil {
		return fmt.Errorf("%w: %v", ErrProcessUnavailable, err)
	}

	c.basePos = c.Position()
	c.snap.State = Paused
	c.snap.Position = c.basePos

	return nil
}

// Resume resumes paused playback. No-op unless paused.
func (c *Controller) Resume() error {
	if c.snap.State != Paused {
		return nil
	}

	if err := c.runner.Start(c.playerCmd, "play"); err != nil {
		return fmt.Errorf("%w: %v", ErrProcessUnavailable, err)
	}

	c.startedAt = time.Now()
	c.snap.State = Playing

	return nil
}

// Stop terminates the player process and resets the snapshot to idle.
// The volume setting survives a stop.
func (c *Controller) Stop() {
	if c.current == "" {
		return
	}

	if err := c.runner.Start(c.playerCmd, "stop"); err != nil {
		log.Printf("Warning: failed to stop player: %v", err)
	}

	c.reset()
}

// Seek moves the playback position by delta seconds, clamped to the
// track bounds.
func (c *Controller) Seek(delta float64) error {
	if c.current == "" {
		return nil
	}

	target := c.Position() + delta
	if target < 0 {
		target = 0
	}

	if c.snap.Duration > 0 && target > c.snap.Duration {
		target = c.snap.Duration
	}

	if err := c.runner.Start(c.playerCmd, "seek", strconv.FormatFloat(target, 'f', 1, 64)); err != nil {
		return fmt.Errorf("%w: %v", ErrProcessUnavailable, err)
	}

	c.basePos = target
	c.startedAt = time.Now()
	c.snap.Position = target

	return nil
}

// SetVolume sets the output volume, silently clamping to [0, 100].
// Volume tool failures are logged only; the clamped value is returned
// and kept as the controller-owned volume either way.
func (c *Controller) SetVolume(percent int) int {
	if percent < 0 {
		percent = 0
	}

	if percent > 100 {
		percent = 100
	}

	if err := c.runner.Start(c.volumeCmd, "music", strconv.Itoa(percent)); err != nil {
		log.Printf("Warning: failed to set volume: %v", err)
	}

	c.snap.Volume = percent

	return percent
}

// Volume returns the controller-owned volume percent.
func (c *Controller) Volume() int {
	return c.snap.Volume
}

// Position returns the current position estimate in seconds.
func (c *Controller) Position() float64 {
	pos := c.basePos
	if c.snap.State == Playing {
		pos += time.Since(c.startedAt).Seconds()
	}

	if c.snap.Duration > 0 && pos > c.snap.Duration {
		pos = c.snap.Duration
	}

	return pos
}

// Current returns the path of the active track ("" when idle).
func (c *Controller) Current() string {
	return c.current
}

// Snapshot returns the last computed snapshot with a refreshed position
// estimate. Cheap; does not touch the external process.
func (c *Controller) Snapshot() Snapshot {
	snap := c.snap
	snap.Position = c.Position()

	return snap
}

// Poll queries the external process for current status. On query failure
// it returns a stopped/unknown snapshot together with
// ErrProcessUnavailable; the caller classifies the failure.
func (c *Controller) Poll(ctx context.Context) (Snapshot, error) {
	if c.current == "" {
		return c.snap, nil
	}

	out, err := c.runner.Output(ctx, c.playerCmd, "info")
	if err != nil {
		prev := c.Snapshot()
		c.reset()
		c.snap.Position = prev.Position
		c.snap.Duration = prev.Duration

		return c.snap, ErrProcessUnavailable
	}

	status := parseStatus(out)

	if !status.running {
		prev := c.Snapshot()
		c.reset()
		c.snap.Position = prev.Position
		c.snap.Duration = prev.Duration

		return c.snap, nil
	}

	// Trust the process over the wall-clock estimate when it reports
	if status.position >= 0 {
		c.basePos = status.position
		c.startedAt = time.Now()
	}

	if status.duration > 0 {
		c.snap.Duration = status.duration
	}

	if status.paused && c.snap.State == Playing {
		c.snap.State = Paused
		c.basePos = c.Position()
	} else if !status.paused && c.snap.State == Paused {
		c.snap.State = Playing
		c.startedAt = time.Now()
	}

	c.snap.Position = c.Position()

	return c.snap, nil
}

// reset clears the process reference and zeroes the snapshot, keeping
// the volume.
func (c *Controller) reset() {
	vol := c.snap.Volume
	c.current = ""
	c.basePos = 0
	c.snap = Snapshot{Volume: vol}
}
