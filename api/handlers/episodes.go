// ABOUTME: Episode handlers for the Huma API
// ABOUTME: Serves the merged feed, forced refresh and per-platform diagnostics

package handlers

import (
	"context"
	"net/http"

	"episodes-app-api/api/dto/mappers"
	"episodes-app-api/api/dto/responses"
	"episodes-app-api/core/domain"
	"github.com/danielgtaylor/huma/v2"
)

// EpisodeService interface defines the methods needed from the podcast service
type EpisodeService interface {
	GetPodcastData(ctx context.Context) domain.PodcastData
	Refresh(ctx context.Context) domain.PodcastData
	FetchPlatform(ctx context.Context, platform domain.Platform) ([]domain.Episode, error)
}

// EpisodeHandler handles episode-related HTTP requests
type EpisodeHandler struct {
	service EpisodeService
}

// NewEpisodeHandler creates a new episode handler
func NewEpisodeHandler(service EpisodeService) *EpisodeHandler {
	return &EpisodeHandler{service: service}
}

// RegisterRoutes registers all episode-related routes
func (h *EpisodeHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "getEpisodes",
		Method:      http.MethodGet,
		Path:        "/episodes",
		Summary:     "Get the merged episode feed",
		Description: "Serves the cached snapshot, refreshing from the sources when the cache is empty",
		Tags:        []string{"Episodes"},
	}, h.GetEpisodes)

	huma.Register(api, huma.Operation{
		OperationID: "refreshEpisodes",
		Method:      http.MethodGet,
		Path:        "/episodes/refresh",
		Summary:     "Force a refresh from all sources",
		Description: "Fetches every source, rebuilds the merged snapshot and overwrites the cache",
		Tags:        []string{"Episodes"},
	}, h.RefreshEpisodes)
}

// RegisterDiagnosticRoutes registers the per-platform endpoints. They bypass
// the cache, so deployments can keep them off the public surface.
func (h *EpisodeHandler) RegisterDiagnosticRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "getSpotifyEpisodes",
		Method:      http.MethodGet,
		Path:        "/episodes/spotify",
		Summary:     "Fetch Spotify episodes only",
		Description: "Runs the Spotify adapter directly, bypassing merge and cache",
		Tags:        []string{"Diagnostics"},
	}, h.GetSpotifyEpisodes)

	huma.Register(api, huma.Operation{
		OperationID: "getYouTubeEpisodes",
		Method:      http.MethodGet,
		Path:        "/episodes/youtube",
		Summary:     "Fetch YouTube episodes only",
		Description: "Runs the YouTube adapter directly, bypassing merge and cache",
		Tags:        []string{"Diagnostics"},
	}, h.GetYouTubeEpisodes)
}

// GetEpisodesOutput defines the output for the GetEpisodes operation
type GetEpisodesOutput struct {
	CacheControl string `header:"Cache-Control"`
	Body         responses.PodcastResponse
}

// GetEpisodes handles the GET /episodes endpoint. It never fails: an empty
// result is served as a payload with the error field set.
func (h *EpisodeHandler) GetEpisodes(ctx context.Context, _ *struct{}) (*GetEpisodesOutput, error) {
	data := h.service.GetPodcastData(ctx)

	return &GetEpisodesOutput{
		CacheControl: "public, max-age=300",
		Body:         mappers.ToPodcastResponse(data),
	}, nil
}

// RefreshEpisodesOutput defines the output for the RefreshEpisodes operation
type RefreshEpisodesOutput struct {
	Body responses.RefreshResponse
}

// RefreshEpisodes handles the GET /episodes/refresh endpoint
func (h *EpisodeHandler) RefreshEpisodes(ctx context.Context, _ *struct{}) (*RefreshEpisodesOutput, error) {
	data := h.service.Refresh(ctx)

	return &RefreshEpisodesOutput{
		Body: responses.RefreshResponse{
			EpisodeCount: len(data.Episodes),
			Episodes:     mappers.ToEpisodeResponses(data.Episodes),
			RefreshedAt:  data.RefreshedAt,
			Source:       data.Source,
			Error:        data.Error,
		},
	}, nil
}

// PlatformEpisodesOutput defines the output for the platform diagnostics
type PlatformEpisodesOutput struct {
	Body responses.PlatformEpisodesResponse
}

// GetSpotifyEpisodes handles the GET /episodes/spotify endpoint
func (h *EpisodeHandler) GetSpotifyEpisodes(ctx context.Context, _ *struct{}) (*PlatformEpisodesOutput, error) {
	return h.fetchPlatform(ctx, domain.PlatformSpotify)
}

// GetYouTubeEpisodes handles the GET /episodes/youtube endpoint
func (h *EpisodeHandler) GetYouTubeEpisodes(ctx context.Context, _ *struct{}) (*PlatformEpisodesOutput, error) {
	return h.fetchPlatform(ctx, domain.PlatformYouTube)
}

func (h *EpisodeHandler) fetchPlatform(ctx context.Context, platform domain.Platform) (*PlatformEpisodesOutput, error) {
	episodes, err := h.service.FetchPlatform(ctx, platform)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &PlatformEpisodesOutput{
		Body: responses.PlatformEpisodesResponse{
			Platform: string(platform),
			Count:    len(episodes),
			Episodes: mappers.ToEpisodeResponses(episodes),
		},
	}, nil
}
