// ABOUTME: Source interfaces for the episode pipeline
// ABOUTME: Each platform adapter implements the same fetch contract

package interfaces

import (
	"context"

	"episodes-app-api/core/domain"
)

// EpisodeSource fetches episode metadata from one distribution platform.
// Implementations return a typed *errors.FetchError when the platform is
// unreachable; callers treat that as an empty list so one source's outage
// never blocks the other's data.
type EpisodeSource interface {
	// Platform returns the platform tag this source produces episodes for.
	Platform() domain.Platform

	// FetchEpisodes retrieves and normalizes the platform's episode list,
	// newest ordering not guaranteed. Network and parse failures local to
	// individual items are dropped and logged, not returned.
	FetchEpisodes(ctx context.Context) ([]domain.Episode, error)
}
