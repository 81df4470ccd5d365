// ABOUTME: Spotify source adapter fetches the show's RSS feed and normalizes items
// ABOUTME: Emits Episode records with platform=spotify and the audio enclosure set

package sources

import (
	"context"

	"episodes-app-api/core/domain"
	"episodes-app-api/core/interfaces"
	"episodes-app-api/core/rss"
	"episodes-app-api/pkg/config"
	durationutil "episodes-app-api/pkg/utils/duration"
	"episodes-app-api/pkg/utils/timeutil"
)

// SpotifyAdapter fetches episodes from the podcast's Spotify RSS feed.
type SpotifyAdapter struct {
	deps interfaces.Dependencies
	cfg  config.SpotifyConfig
}

// NewSpotifyAdapter creates a new Spotify source adapter.
func NewSpotifyAdapter(deps interfaces.Dependencies, cfg config.SpotifyConfig) *SpotifyAdapter {
	return &SpotifyAdapter{
		deps: deps,
		cfg:  cfg,
	}
}

// Platform returns the platform tag for this adapter.
func (a *SpotifyAdapter) Platform() domain.Platform {
	return domain.PlatformSpotify
}

// FetchEpisodes retrieves the RSS feed and maps its items to episodes.
// Individual malformed items are dropped and logged; a feed-level failure
// returns a typed FetchError.
func (a *SpotifyAdapter) FetchEpisodes(ctx context.Context) ([]domain.Episode, error) {
	body, err := fetchBody(ctx, a.deps.HTTPClient, string(domain.PlatformSpotify), a.cfg.RSSURL)
	if err != nil {
		return nil, err
	}

	items, dropped := rss.Parse(body)
	for _, dropErr := range dropped {
		if a.deps.Logger != nil {
			a.deps.Logger.Warn("Skipping malformed feed item", map[string]interface{}{
				"platform": string(domain.PlatformSpotify),
				"error":    dropErr.Error(),
			})
		}
	}

	episodes := make([]domain.Episode, 0, len(items))
	for _, item := range items {
		episodes = append(episodes, a.toEpisode(item))
	}

	return episodes, nil
}

// toEpisode maps one raw feed item to the canonical episode shape.
func (a *SpotifyAdapter) toEpisode(item rss.Item) domain.Episode {
	thumbnail := item.ImageURL
	if thumbnail == "" {
		thumbnail = a.cfg.DefaultThumbnail
	}

	externalURL := item.Link
	if externalURL == "" {
		externalURL = item.EnclosureURL
	}

	return domain.Episode{
		GUID:             item.GUID,
		Title:            item.Title,
		Description:      item.Description,
		PublishDateUTC:   timeutil.UTCDate(item.PublishedAt),
		PubDateTimestamp: item.PublishedAt,
		AudioURL:         item.EnclosureURL,
		ThumbnailURL:     thumbnail,
		DurationLabel:    durationutil.LabelFromRaw(item.DurationRaw),
		Platform:         domain.PlatformSpotify,
		ExternalURL:      externalURL,
	}
}
