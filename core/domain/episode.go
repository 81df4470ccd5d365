// ABOUTME: Episode domain model represents a single podcast installment
// ABOUTME: An episode may carry fields observed from Spotify, YouTube, or both

package domain

import "time"

// Platform identifies which distribution platform an episode was observed on.
type Platform string

const (
	// PlatformSpotify marks episodes sourced from the Spotify RSS feed
	PlatformSpotify Platform = "spotify"

	// PlatformYouTube marks episodes sourced from YouTube
	PlatformYouTube Platform = "youtube"

	// PlatformComposite marks a merged episode carrying fields from both sources
	PlatformComposite Platform = "composite"
)

// Episode is the canonical unit of podcast data.
type Episode struct {
	// ID is a synthetic identifier, unique within one merge batch.
	// It is not stable across refreshes.
	ID string `json:"id"`

	// GUID is the source-provided identifier (RSS guid or YouTube video id)
	GUID string `json:"guid"`

	// Title is the plain-text episode title, HTML/CDATA stripped
	Title string `json:"title"`

	// Description is the plain-text episode description, HTML/CDATA stripped
	Description string `json:"description"`

	// PublishDateUTC is the calendar date (YYYY-MM-DD) of publication.
	// It is the primary cross-source matching key.
	PublishDateUTC string `json:"publishDateUtc"`

	// PubDateTimestamp is the full publish timestamp, used only for sort order
	PubDateTimestamp time.Time `json:"pubDateTimestamp"`

	// AudioURL is the audio enclosure URL, set for Spotify-sourced episodes
	AudioURL string `json:"audioUrl,omitempty"`

	// VideoURL is the watch URL, set for YouTube-sourced episodes
	VideoURL string `json:"videoUrl,omitempty"`

	// ThumbnailURL is the episode artwork or video thumbnail
	ThumbnailURL string `json:"thumbnailUrl"`

	// DurationLabel is a human-readable duration, e.g. "45 min" or "1h 20m"
	DurationLabel string `json:"durationLabel"`

	// Platform records which source(s) this episode was observed on
	Platform Platform `json:"platform"`

	// ExternalURL is the canonical outbound link, preferring video over audio
	ExternalURL string `json:"externalUrl"`
}
