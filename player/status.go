// ABOUTME: Parses the external player's status output into structured fields
// ABOUTME: Tolerates key/value and mm:ss formats across player tool versions

package player

import (
	"strconv"
	"strings"
)

// playerStatus is the raw parse of a "<player> info" query.
type playerStatus struct {
	running  bool
	paused   bool
	position float64 // seconds, -1 if not reported
	duration float64 // seconds, 0 if not reported
}

// parseStatus extracts transport state from the tool's "key: value"
// output. Unknown lines are ignored so newer tool versions don't break
// the controller.
//
// Recognized forms:
//
//	Status: Playing | Paused | Stopped
//	Current Position: 1:23 / 3:45
//	Position: 83.2
//	Duration: 225
func parseStatus(out string) playerStatus {
	status := playerStatus{position: -1}

	for _, line := range strings.Split(out, "\n") {
		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}

		key = strings.ToLower(strings.TrimSpace(key))
		value = strings.TrimSpace(value)

		switch key {
		case "status", "state":
			switch strings.ToLower(value) {
			case "playing", "started":
				status.running = true
			case "paused":
				status.running = true
				status.paused = true
			}
		case "current position", "position":
			pos, dur := parsePositionValue(value)
			status.position = pos

			if dur > 0 {
				status.duration = dur
			}
		case "duration", "track duration":
			status.duration = parseTimestamp(value)
		}
	}

	return status
}

// parsePositionValue handles both "83.2" and "1:23 / 3:45" forms.
func parsePositionValue(value string) (position, duration float64) {
	if pos, total, found := strings.Cut(value, "/"); found {
		return parseTimestamp(strings.TrimSpace(pos)), parseTimestamp(strings.TrimSpace(total))
	}

	return parseTimestamp(value), 0
}

// parseTimestamp parses "h:mm:ss", "m:ss" or plain seconds into seconds.
// Returns 0 on anything unparseable.
func parseTimestamp(value string) float64 {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0
	}

	parts := strings.Split(value, ":")
	if len(parts) == 1 {
		seconds, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			return 0
		}

		return seconds
	}

	var total float64

	for _, part := range parts {
		n, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return 0
		}

		total = total*60 + n
	}

	return total
}
