// ABOUTME: Podcast service runs the refresh orchestration and the read path
// ABOUTME: Adapters fetch concurrently, results merge, snapshot persists to cache

package podcast

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"episodes-app-api/core/domain"
	coreerrors "episodes-app-api/core/errors"
	"episodes-app-api/core/interfaces"
)

// Service orchestrates episode refreshes and serves cached podcast data.
// All state lives in the cache blob; the service itself is stateless and
// safe for concurrent use.
type Service struct {
	deps         interfaces.Dependencies
	sources      []interfaces.EpisodeSource
	fetchTimeout time.Duration
}

// NewService creates a podcast service over the given source adapters.
func NewService(deps interfaces.Dependencies, fetchTimeout time.Duration, sources ...interfaces.EpisodeSource) *Service {
	if fetchTimeout <= 0 {
		fetchTimeout = 30 * time.Second
	}
	return &Service{
		deps:         deps,
		sources:      sources,
		fetchTimeout: fetchTimeout,
	}
}

type fetchResult struct {
	platform domain.Platform
	episodes []domain.Episode
	err      error
}

// Refresh fetches all sources concurrently, merges the results and persists
// the snapshot. Each adapter's failure is isolated: a failing or slow source
// degrades to an empty list for that platform and never cancels the others.
// A persistence failure is logged and reported, not fatal; the refreshed
// data is still returned.
func (s *Service) Refresh(ctx context.Context) domain.PodcastData {
	results := s.fetchAll(ctx)

	var spotify, youtube []domain.Episode
	counts := make([]string, 0, len(results))
	for _, result := range results {
		counts = append(counts, fmt.Sprintf("%s: %d", result.platform, len(result.episodes)))
		switch result.platform {
		case domain.PlatformYouTube:
			youtube = result.episodes
		default:
			spotify = result.episodes
		}
	}

	data := domain.PodcastData{
		Episodes:    Merge(spotify, youtube),
		RefreshedAt: time.Now().UTC(),
		Source:      strings.Join(counts, ", "),
	}

	if data.IsEmpty() {
		data.Error = "no episodes available from any source"
	}

	if err := s.persist(ctx, data); err != nil {
		s.logWarn("Snapshot persistence failed, cache stays stale", map[string]interface{}{
			"error": err.Error(),
		})
	}

	return data
}

// fetchAll runs every source adapter concurrently and waits for all of them
// to settle. Failures become empty results; each fetch gets its own timeout
// so a hanging source cannot stall the run indefinitely.
func (s *Service) fetchAll(ctx context.Context) []fetchResult {
	resultsChan := make(chan fetchResult, len(s.sources))
	var wg sync.WaitGroup

	for _, source := range s.sources {
		wg.Add(1)
		go func(src interfaces.EpisodeSource) {
			defer wg.Done()

			fetchCtx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
			defer cancel()

			episodes, err := src.FetchEpisodes(fetchCtx)
			if err != nil {
				s.logWarn("Source fetch failed, continuing without it", map[string]interface{}{
					"platform": string(src.Platform()),
					"error":    err.Error(),
				})
				resultsChan <- fetchResult{platform: src.Platform(), episodes: nil, err: err}
				return
			}

			resultsChan <- fetchResult{platform: src.Platform(), episodes: episodes}
		}(source)
	}

	wg.Wait()
	close(resultsChan)

	results := make([]fetchResult, 0, len(s.sources))
	for result := range resultsChan {
		results = append(results, result)
	}

	// Stable summary ordering regardless of which fetch finished first
	sort.Slice(results, func(i, j int) bool {
		return results[i].platform < results[j].platform
	})

	return results
}

// GetPodcastData serves the cached snapshot, falling back to a live refresh,
// then to an explicit empty payload. Absence of episodes is a displayable
// state; this method never fails.
func (s *Service) GetPodcastData(ctx context.Context) domain.PodcastData {
	if cached, ok := s.readCache(ctx); ok {
		return cached
	}

	return s.Refresh(ctx)
}

// FetchPlatform runs a single source adapter for the diagnostic endpoints.
// The result is sorted newest-first but not merged or cached.
func (s *Service) FetchPlatform(ctx context.Context, platform domain.Platform) ([]domain.Episode, error) {
	for _, source := range s.sources {
		if source.Platform() != platform {
			continue
		}

		fetchCtx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
		defer cancel()

		episodes, err := source.FetchEpisodes(fetchCtx)
		if err != nil {
			return nil, err
		}

		sortNewestFirst(episodes)
		for i := range episodes {
			episodes[i].ID = fmt.Sprintf("ep-%d", i+1)
		}
		return episodes, nil
	}

	return nil, &coreerrors.FetchError{
		Platform: string(platform),
		Err:      fmt.Errorf("no source configured for platform %s", platform),
	}
}

// readCache loads the persisted snapshot. Any miss, decode failure or empty
// snapshot reports not-ok so the caller falls through to a live refresh.
func (s *Service) readCache(ctx context.Context) (domain.PodcastData, bool) {
	if s.deps.Cache == nil {
		return domain.PodcastData{}, false
	}

	raw, err := s.deps.Cache.Get(ctx, domain.CacheKey)
	if err != nil || len(raw) == 0 {
		return domain.PodcastData{}, false
	}

	var data domain.PodcastData
	if err := json.Unmarshal(raw, &data); err != nil {
		s.logWarn("Cached snapshot is corrupt, refreshing", map[string]interface{}{
			"error": err.Error(),
		})
		return domain.PodcastData{}, false
	}

	if data.IsEmpty() {
		return domain.PodcastData{}, false
	}

	return data, true
}

// persist overwrites the previous snapshot wholesale. No expiry: the blob is
// superseded by the next refresh, not evicted.
func (s *Service) persist(ctx context.Context, data domain.PodcastData) error {
	if s.deps.Cache == nil {
		return nil
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return &coreerrors.PersistenceError{Key: domain.CacheKey, Err: err}
	}

	if err := s.deps.Cache.Set(ctx, domain.CacheKey, raw, 0); err != nil {
		return &coreerrors.PersistenceError{Key: domain.CacheKey, Err: err}
	}

	return nil
}

func (s *Service) logWarn(msg string, fields map[string]interface{}) {
	if s.deps.Logger != nil {
		s.deps.Logger.Warn(msg, fields)
	}
}
