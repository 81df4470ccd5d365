// ABOUTME: Response DTOs for episode-related API endpoints
// ABOUTME: Provides structured responses with JSON serialization

package responses

import "time"

// EpisodeResponse represents a single episode in API responses
type EpisodeResponse struct {
	ID             string `json:"id" doc:"Synthetic per-batch identifier"`
	GUID           string `json:"guid,omitempty" doc:"Source-native identifier"`
	Title          string `json:"title" doc:"Episode title"`
	Description    string `json:"description" doc:"Episode show notes, HTML stripped"`
	PublishDateUTC string `json:"publishDateUtc" doc:"Publication date in UTC, YYYY-MM-DD"`
	AudioURL       string `json:"audioUrl,omitempty" doc:"Direct audio enclosure URL"`
	VideoURL       string `json:"videoUrl,omitempty" doc:"YouTube watch URL"`
	ThumbnailURL   string `json:"thumbnailUrl,omitempty" doc:"Episode artwork URL"`
	DurationLabel  string `json:"durationLabel,omitempty" doc:"Human-readable duration"`
	Platform       string `json:"platform" doc:"spotify, youtube or composite"`
	ExternalURL    string `json:"externalUrl,omitempty" doc:"Outbound link, video preferred"`
}

// PodcastResponse represents the merged episode feed
type PodcastResponse struct {
	Episodes    []EpisodeResponse `json:"episodes" doc:"Merged episodes, newest first"`
	RefreshedAt time.Time         `json:"refreshedAt" doc:"When this snapshot was built"`
	Source      string            `json:"source,omitempty" doc:"Per-platform fetch counts"`
	Error       string            `json:"error,omitempty" doc:"Set when no episodes are available"`
}

// RefreshResponse represents the result of a forced refresh: the rebuilt
// snapshot plus its episode count
type RefreshResponse struct {
	EpisodeCount int               `json:"episodeCount" doc:"Episodes in the new snapshot"`
	Episodes     []EpisodeResponse `json:"episodes" doc:"The refreshed episodes, newest first"`
	RefreshedAt  time.Time         `json:"refreshedAt" doc:"When the refresh completed"`
	Source       string            `json:"source,omitempty" doc:"Per-platform fetch counts"`
	Error        string            `json:"error,omitempty" doc:"Set when the refresh produced no episodes"`
}

// PlatformEpisodesResponse represents a single-platform diagnostic fetch
type PlatformEpisodesResponse struct {
	Platform string            `json:"platform" doc:"Platform that was fetched"`
	Count    int               `json:"count" doc:"Number of episodes returned"`
	Episodes []EpisodeResponse `json:"episodes" doc:"Episodes, newest first"`
}
