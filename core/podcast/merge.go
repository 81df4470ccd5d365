// ABOUTME: Merge engine combines Spotify and YouTube episode lists into one
// ABOUTME: Positional pairing after independent per-source chronological sorting

package podcast

import (
	"fmt"
	"sort"

	"episodes-app-api/core/domain"
)

// Merge combines two source episode lists into a single deduplicated,
// newest-first list. The sources share no stable identifier, so episodes are
// paired by rank: both platforms publish the same installments in the same
// real-world sequence, so each source is sorted newest-first and the Nth
// entries are treated as the same episode.
//
// Pairing does not re-validate that paired episodes share a date or title;
// index pairing is the documented baseline. When either side is empty the
// other list passes through unchanged apart from re-sorting.
//
// Merge is deterministic, never fails, and returns an empty list for empty
// input. Input order does not affect the output.
func Merge(episodesA, episodesB []domain.Episode) []domain.Episode {
	combined := make([]domain.Episode, 0, len(episodesA)+len(episodesB))
	combined = append(combined, episodesA...)
	combined = append(combined, episodesB...)

	var spotify, youtube []domain.Episode
	for _, episode := range combined {
		if episode.Platform == domain.PlatformYouTube {
			youtube = append(youtube, episode)
		} else {
			spotify = append(spotify, episode)
		}
	}

	spotify = dedupeByGUID(spotify)
	youtube = dedupeByGUID(youtube)
	sortNewestFirst(spotify)
	sortNewestFirst(youtube)

	count := len(spotify)
	if len(youtube) > count {
		count = len(youtube)
	}

	merged := make([]domain.Episode, 0, count)
	for i := 0; i < count; i++ {
		switch {
		case i < len(spotify) && i < len(youtube):
			merged = append(merged, composite(spotify[i], youtube[i]))
		case i < len(spotify):
			merged = append(merged, spotify[i])
		default:
			merged = append(merged, youtube[i])
		}
	}

	sortNewestFirst(merged)

	for i := range merged {
		merged[i].ID = fmt.Sprintf("ep-%d", i+1)
	}

	return merged
}

// composite builds one merged record from a positional pair. Title,
// description and audio come from the Spotify base; YouTube's richer media
// fields overlay it when present. The outbound link prefers video.
func composite(base, overlay domain.Episode) domain.Episode {
	out := base
	out.Platform = domain.PlatformComposite

	if overlay.VideoURL != "" {
		out.VideoURL = overlay.VideoURL
	}
	if overlay.ThumbnailURL != "" {
		out.ThumbnailURL = overlay.ThumbnailURL
	}
	if overlay.DurationLabel != "" {
		out.DurationLabel = overlay.DurationLabel
	}

	if out.VideoURL != "" {
		out.ExternalURL = out.VideoURL
	}

	return out
}

// dedupeByGUID collapses repeated GUIDs within one source, keeping the first
// occurrence. Re-fetches may deliver the same item twice; pairing requires
// idempotent input.
func dedupeByGUID(episodes []domain.Episode) []domain.Episode {
	if len(episodes) < 2 {
		return episodes
	}

	seen := make(map[string]bool, len(episodes))
	out := episodes[:0]
	for _, episode := range episodes {
		if episode.GUID != "" && seen[episode.GUID] {
			continue
		}
		seen[episode.GUID] = true
		out = append(out, episode)
	}

	return out
}

// sortNewestFirst sorts in place by publish timestamp descending. The sort is
// stable so ties keep their relative order.
func sortNewestFirst(episodes []domain.Episode) {
	sort.SliceStable(episodes, func(i, j int) bool {
		return episodes[i].PubDateTimestamp.After(episodes[j].PubDateTimestamp)
	})
}
