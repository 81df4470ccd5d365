// ABOUTME: PodcastData domain model is the cached artifact produced by a refresh run
// ABOUTME: One snapshot supersedes the previous on every refresh, no versioning

package domain

import "time"

// CacheKey is the fixed logical path of the durable podcast snapshot.
const CacheKey = "podcast/latest.json"

// PodcastData is the full merged episode snapshot persisted by the refresh
// orchestrator and served by the read path.
type PodcastData struct {
	// Episodes is the deduplicated, newest-first merged episode list
	Episodes []Episode `json:"episodes"`

	// RefreshedAt is when this snapshot was produced
	RefreshedAt time.Time `json:"refreshedAt"`

	// Source is a human-readable summary of per-platform fetch counts
	Source string `json:"source"`

	// Error is set when no episodes could be produced. The absence of
	// episodes is a displayable state, not an application failure.
	Error string `json:"error,omitempty"`
}

// IsEmpty reports whether the snapshot contains no episodes.
func (p *PodcastData) IsEmpty() bool {
	return len(p.Episodes) == 0
}
