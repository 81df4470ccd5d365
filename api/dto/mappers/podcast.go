// ABOUTME: Mappers between domain models and response DTOs
// ABOUTME: Keeps wire-format concerns out of the core packages

package mappers

import (
	"episodes-app-api/api/dto/responses"
	"episodes-app-api/core/domain"
)

// ToEpisodeResponse converts a domain episode to its response DTO
func ToEpisodeResponse(episode domain.Episode) responses.EpisodeResponse {
	return responses.EpisodeResponse{
		ID:             episode.ID,
		GUID:           episode.GUID,
		Title:          episode.Title,
		Description:    episode.Description,
		PublishDateUTC: episode.PublishDateUTC,
		AudioURL:       episode.AudioURL,
		VideoURL:       episode.VideoURL,
		ThumbnailURL:   episode.ThumbnailURL,
		DurationLabel:  episode.DurationLabel,
		Platform:       string(episode.Platform),
		ExternalURL:    episode.ExternalURL,
	}
}

// ToEpisodeResponses converts a slice of domain episodes. The result is never
// nil so the JSON field stays an array.
func ToEpisodeResponses(episodes []domain.Episode) []responses.EpisodeResponse {
	out := make([]responses.EpisodeResponse, 0, len(episodes))
	for _, episode := range episodes {
		out = append(out, ToEpisodeResponse(episode))
	}
	return out
}

// ToPodcastResponse converts a full snapshot to its response DTO
func ToPodcastResponse(data domain.PodcastData) responses.PodcastResponse {
	return responses.PodcastResponse{
		Episodes:    ToEpisodeResponses(data.Episodes),
		RefreshedAt: data.RefreshedAt,
		Source:      data.Source,
		Error:       data.Error,
	}
}
