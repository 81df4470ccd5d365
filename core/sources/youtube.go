// ABOUTME: YouTube source adapter fetches episode metadata for the show's channel
// ABOUTME: Uses the Data API when a key is configured, else the public channel feed

package sources

import (
	"context"
	"fmt"
	"strings"
	"time"

	finch "github.com/BrianHicks/finch/duration"
	"github.com/mmcdole/gofeed"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"

	"episodes-app-api/core/domain"
	coreerrors "episodes-app-api/core/errors"
	"episodes-app-api/core/interfaces"
	"episodes-app-api/pkg/config"
	durationutil "episodes-app-api/pkg/utils/duration"
	"episodes-app-api/pkg/utils/timeutil"
)

const maxPlaylistResults = 50

// YouTubeAdapter fetches episodes from the show's YouTube channel.
type YouTubeAdapter struct {
	deps interfaces.Dependencies
	cfg  config.YouTubeConfig
	yt   *youtube.Service
}

// NewYouTubeAdapter creates a new YouTube source adapter. When an API key is
// configured the Data API is used for richer metadata (durations, thumbnail
// variants); otherwise the channel's public feed is the fallback.
func NewYouTubeAdapter(deps interfaces.Dependencies, cfg config.YouTubeConfig) (*YouTubeAdapter, error) {
	adapter := &YouTubeAdapter{
		deps: deps,
		cfg:  cfg,
	}

	if cfg.APIKey != "" {
		svc, err := youtube.NewService(context.Background(), option.WithAPIKey(cfg.APIKey))
		if err != nil {
			return nil, coreerrors.WrapError(err, "failed to create YouTube service")
		}
		adapter.yt = svc
	}

	return adapter, nil
}

// Platform returns the platform tag for this adapter.
func (a *YouTubeAdapter) Platform() domain.Platform {
	return domain.PlatformYouTube
}

// FetchEpisodes retrieves the channel's videos and maps them to episodes.
func (a *YouTubeAdapter) FetchEpisodes(ctx context.Context) ([]domain.Episode, error) {
	if a.yt != nil {
		return a.fetchFromAPI(ctx)
	}
	return a.fetchFromFeed(ctx)
}

// fetchFromAPI walks channel -> uploads playlist -> videos, following the
// Data API call pattern. Videos are queried in one batch for durations and
// thumbnails.
func (a *YouTubeAdapter) fetchFromAPI(ctx context.Context) ([]domain.Episode, error) {
	channels, err := a.yt.Channels.List([]string{"id", "contentDetails"}).
		Id(a.cfg.ChannelID).
		Context(ctx).
		Do()
	if err != nil {
		return nil, &coreerrors.FetchError{Platform: string(domain.PlatformYouTube), Err: err}
	}
	if len(channels.Items) == 0 {
		return nil, &coreerrors.FetchError{
			Platform: string(domain.PlatformYouTube),
			Err:      fmt.Errorf("channel %s not found", a.cfg.ChannelID),
		}
	}

	uploadsID := channels.Items[0].ContentDetails.RelatedPlaylists.Uploads

	playlistItems, err := a.yt.PlaylistItems.List([]string{"snippet"}).
		PlaylistId(uploadsID).
		MaxResults(maxPlaylistResults).
		Context(ctx).
		Do()
	if err != nil {
		return nil, &coreerrors.FetchError{Platform: string(domain.PlatformYouTube), Err: err}
	}

	ids := make([]string, 0, len(playlistItems.Items))
	for _, item := range playlistItems.Items {
		if item.Snippet != nil && item.Snippet.ResourceId != nil {
			ids = append(ids, item.Snippet.ResourceId.VideoId)
		}
	}
	if len(ids) == 0 {
		return []domain.Episode{}, nil
	}

	videos, err := a.yt.Videos.List([]string{"id", "snippet", "contentDetails"}).
		Id(strings.Join(ids, ",")).
		Context(ctx).
		Do()
	if err != nil {
		return nil, &coreerrors.FetchError{Platform: string(domain.PlatformYouTube), Err: err}
	}

	episodes := make([]domain.Episode, 0, len(videos.Items))
	for _, video := range videos.Items {
		episode, ok := a.videoToEpisode(video)
		if !ok {
			continue
		}
		episodes = append(episodes, episode)
	}

	return episodes, nil
}

// videoToEpisode maps one Data API video to the canonical episode shape.
// Videos without a parseable publish date are skipped.
func (a *YouTubeAdapter) videoToEpisode(video *youtube.Video) (domain.Episode, bool) {
	if video.Snippet == nil {
		return domain.Episode{}, false
	}

	published, err := time.Parse(time.RFC3339, video.Snippet.PublishedAt)
	if err != nil {
		if a.deps.Logger != nil {
			a.deps.Logger.Warn("Skipping video with bad publish date", map[string]interface{}{
				"video_id": video.Id,
				"date":     video.Snippet.PublishedAt,
			})
		}
		return domain.Episode{}, false
	}

	var label string
	if video.ContentDetails != nil && video.ContentDetails.Duration != "" {
		if d, err := finch.FromString(video.ContentDetails.Duration); err == nil {
			label = durationutil.FormatLabel(int(d.ToDuration().Seconds()))
		}
	}

	videoURL := fmt.Sprintf("https://www.youtube.com/watch?v=%s", video.Id)

	return domain.Episode{
		GUID:             video.Id,
		Title:            video.Snippet.Title,
		Description:      video.Snippet.Description,
		PublishDateUTC:   timeutil.UTCDate(published),
		PubDateTimestamp: published,
		VideoURL:         videoURL,
		ThumbnailURL:     selectThumbnail(video.Snippet.Thumbnails, video.Id),
		DurationLabel:    label,
		Platform:         domain.PlatformYouTube,
		ExternalURL:      videoURL,
	}, true
}

// selectThumbnail picks the highest resolution thumbnail available, falling
// back to the predictable image URL for the video id.
func selectThumbnail(details *youtube.ThumbnailDetails, videoID string) string {
	if details != nil {
		if details.Maxres != nil {
			return details.Maxres.Url
		}
		if details.High != nil {
			return details.High.Url
		}
		if details.Medium != nil {
			return details.Medium.Url
		}
		if details.Default != nil {
			return details.Default.Url
		}
	}

	if videoID != "" {
		return fmt.Sprintf("https://img.youtube.com/vi/%s/hqdefault.jpg", videoID)
	}
	return ""
}

// fetchFromFeed parses the channel's public Atom feed. Durations are not
// available on this path; the merge overlay leaves the paired source's label
// in place when ours is empty.
func (a *YouTubeAdapter) fetchFromFeed(ctx context.Context) ([]domain.Episode, error) {
	feedURL := a.cfg.FeedURL
	if feedURL == "" {
		feedURL = fmt.Sprintf("https://www.youtube.com/feeds/videos.xml?channel_id=%s", a.cfg.ChannelID)
	}

	body, err := fetchBody(ctx, a.deps.HTTPClient, string(domain.PlatformYouTube), feedURL)
	if err != nil {
		return nil, err
	}

	parsed, err := gofeed.NewParser().ParseString(body)
	if err != nil {
		return nil, &coreerrors.FetchError{Platform: string(domain.PlatformYouTube), Err: err}
	}

	episodes := make([]domain.Episode, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		if item.PublishedParsed == nil {
			if a.deps.Logger != nil {
				a.deps.Logger.Warn("Skipping feed entry with bad publish date", map[string]interface{}{
					"title": item.Title,
					"date":  item.Published,
				})
			}
			continue
		}

		videoID := feedVideoID(item)
		videoURL := item.Link
		if videoURL == "" && videoID != "" {
			videoURL = fmt.Sprintf("https://www.youtube.com/watch?v=%s", videoID)
		}

		guid := videoID
		if guid == "" {
			guid = item.GUID
		}

		episodes = append(episodes, domain.Episode{
			GUID:             guid,
			Title:            item.Title,
			Description:      feedDescription(item),
			PublishDateUTC:   timeutil.UTCDate(*item.PublishedParsed),
			PubDateTimestamp: *item.PublishedParsed,
			VideoURL:         videoURL,
			ThumbnailURL:     feedThumbnail(item, videoID),
			Platform:         domain.PlatformYouTube,
			ExternalURL:      videoURL,
		})
	}

	return episodes, nil
}

// feedVideoID extracts the video id from a channel feed entry. The yt:videoId
// extension is authoritative; the "yt:video:<id>" guid form is the fallback.
func feedVideoID(item *gofeed.Item) string {
	if ext, ok := item.Extensions["yt"]; ok {
		if ids, ok := ext["videoId"]; ok && len(ids) > 0 {
			return ids[0].Value
		}
	}

	if strings.HasPrefix(item.GUID, "yt:video:") {
		return strings.TrimPrefix(item.GUID, "yt:video:")
	}
	return ""
}

// feedDescription pulls the media:group description when the entry body is empty.
func feedDescription(item *gofeed.Item) string {
	if item.Description != "" {
		return item.Description
	}

	if media, ok := item.Extensions["media"]; ok {
		if groups, ok := media["group"]; ok && len(groups) > 0 {
			if descs, ok := groups[0].Children["description"]; ok && len(descs) > 0 {
				return descs[0].Value
			}
		}
	}
	return ""
}

// feedThumbnail pulls the media:group thumbnail, falling back to the
// predictable image URL for the video id.
func feedThumbnail(item *gofeed.Item, videoID string) string {
	if media, ok := item.Extensions["media"]; ok {
		if groups, ok := media["group"]; ok && len(groups) > 0 {
			if thumbs, ok := groups[0].Children["thumbnail"]; ok && len(thumbs) > 0 {
				if url, ok := thumbs[0].Attrs["url"]; ok && url != "" {
					return url
				}
			}
		}
	}

	if videoID != "" {
		return fmt.Sprintf("https://img.youtube.com/vi/%s/hqdefault.jpg", videoID)
	}
	return ""
}
