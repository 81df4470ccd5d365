// ABOUTME: Duration utilities for converting raw feed durations to display labels
// ABOUTME: Handles bare seconds, MM:SS and HH:MM:SS itunes:duration formats

package duration

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseToSeconds converts an itunes:duration value to total seconds.
// Accepts bare seconds ("125"), MM:SS ("45:00") and HH:MM:SS ("01:05:30").
// Returns 0 when the value cannot be interpreted.
func ParseToSeconds(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}

	// Bare number is already seconds
	if seconds, err := strconv.Atoi(raw); err == nil {
		if seconds < 0 {
			return 0
		}
		return seconds
	}

	parts := strings.Split(raw, ":")
	switch len(parts) {
	case 3: // HH:MM:SS
		hours, _ := strconv.Atoi(parts[0])
		minutes, _ := strconv.Atoi(parts[1])
		seconds, _ := strconv.Atoi(parts[2])
		return hours*3600 + minutes*60 + seconds
	case 2: // MM:SS
		minutes, _ := strconv.Atoi(parts[0])
		seconds, _ := strconv.Atoi(parts[1])
		return minutes*60 + seconds
	}

	return 0
}

// FormatLabel converts total seconds to a display label: pure minutes
// ("45 min") under an hour, otherwise hours and minutes ("1h 5m").
func FormatLabel(seconds int) string {
	if seconds <= 0 {
		return ""
	}

	minutes := seconds / 60
	if minutes < 1 {
		minutes = 1
	}

	if minutes < 60 {
		return fmt.Sprintf("%d min", minutes)
	}

	hours := minutes / 60
	return fmt.Sprintf("%dh %dm", hours, minutes%60)
}

// LabelFromRaw parses a raw itunes:duration value straight to a display label.
func LabelFromRaw(raw string) string {
	return FormatLabel(ParseToSeconds(raw))
}
