// ABOUTME: Time parsing utilities for flexible date/time parsing
// ABOUTME: Handles the various pubDate formats found in RSS and Atom feeds

package timeutil

import (
	"strings"
	"time"
)

// Formats commonly seen in podcast feed pubDate fields
var timeFormats = []string{
	time.RFC1123Z,
	time.RFC1123,
	time.RFC3339,
	time.RFC3339Nano,
	time.RFC822,
	time.RFC822Z,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"Mon, 2 Jan 2006 15:04:05 MST",
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"02 Jan 2006 15:04:05 MST",
	"02 Jan 2006 15:04:05 -0700",
}

// ParseFlexibleTime attempts to parse a time string using various formats.
// Returns the zero time when no format matches.
func ParseFlexibleTime(timeStr string) time.Time {
	timeStr = strings.TrimSpace(timeStr)
	if timeStr == "" {
		return time.Time{}
	}

	for _, format := range timeFormats {
		if t, err := time.Parse(format, timeStr); err == nil {
			return t
		}
	}

	return time.Time{}
}

// UTCDate returns the ISO calendar date (YYYY-MM-DD) of t in UTC.
func UTCDate(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
