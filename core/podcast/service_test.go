package podcast

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"episodes-app-api/core/domain"
	coreerrors "episodes-app-api/core/errors"
	"episodes-app-api/core/interfaces"
)

func testSources() (*mockSource, *mockSource) {
	spotify := &mockSource{
		platform: domain.PlatformSpotify,
		episodes: []domain.Episode{
			spotifyEpisode("s1", "One", day(1)),
			spotifyEpisode("s2", "Two", day(8)),
		},
	}
	youtube := &mockSource{
		platform: domain.PlatformYouTube,
		episodes: []domain.Episode{
			youtubeEpisode("y1", "One", day(1)),
			youtubeEpisode("y2", "Two", day(8)),
		},
	}
	return spotify, youtube
}

func TestRefresh_MergesAndPersists(t *testing.T) {
	spotify, youtube := testSources()
	cache := &mockCache{}
	deps := interfaces.Dependencies{Cache: cache, Logger: &mockLogger{}}
	service := NewService(deps, time.Second, spotify, youtube)

	data := service.Refresh(context.Background())

	if len(data.Episodes) != 2 {
		t.Fatalf("Refresh produced %d episodes, want 2", len(data.Episodes))
	}
	if data.RefreshedAt.IsZero() {
		t.Error("RefreshedAt should be stamped")
	}
	if !strings.Contains(data.Source, "spotify: 2") || !strings.Contains(data.Source, "youtube: 2") {
		t.Errorf("source summary = %q, want per-platform counts", data.Source)
	}
	if data.Error != "" {
		t.Errorf("error should be empty, got %q", data.Error)
	}

	if len(cache.setKeys) != 1 || cache.setKeys[0] != domain.CacheKey {
		t.Fatalf("snapshot should be persisted under %s, got %v", domain.CacheKey, cache.setKeys)
	}

	var persisted domain.PodcastData
	if err := json.Unmarshal(cache.setValues[0], &persisted); err != nil {
		t.Fatalf("persisted snapshot is not valid JSON: %v", err)
	}
	if len(persisted.Episodes) != 2 {
		t.Errorf("persisted snapshot has %d episodes, want 2", len(persisted.Episodes))
	}
}

func TestRefresh_PartialSourceFailure(t *testing.T) {
	spotify, _ := testSources()
	youtube := &mockSource{
		platform: domain.PlatformYouTube,
		err:      &coreerrors.FetchError{Platform: "youtube", StatusCode: 503},
	}
	logger := &mockLogger{}
	deps := interfaces.Dependencies{Cache: &mockCache{}, Logger: logger}
	service := NewService(deps, time.Second, spotify, youtube)

	data := service.Refresh(context.Background())

	if len(data.Episodes) != 2 {
		t.Errorf("Refresh produced %d episodes, want spotify's 2", len(data.Episodes))
	}
	for _, ep := range data.Episodes {
		if ep.Platform != domain.PlatformSpotify {
			t.Errorf("episode %s platform = %s, want spotify passthrough", ep.GUID, ep.Platform)
		}
	}
	if !strings.Contains(data.Source, "youtube: 0") {
		t.Errorf("source summary = %q, should report youtube: 0", data.Source)
	}
	if len(logger.warnings) == 0 {
		t.Error("source failure should be logged")
	}
}

func TestRefresh_SlowSourceTimesOut(t *testing.T) {
	spotify, _ := testSources()
	youtube := &mockSource{
		platform: domain.PlatformYouTube,
		episodes: []domain.Episode{youtubeEpisode("y1", "One", day(1))},
		delay:    200 * time.Millisecond,
	}
	deps := interfaces.Dependencies{Logger: &mockLogger{}}
	service := NewService(deps, 20*time.Millisecond, spotify, youtube)

	data := service.Refresh(context.Background())

	// The slow source degrades to empty; the fast one still contributes
	if len(data.Episodes) != 2 {
		t.Errorf("Refresh produced %d episodes, want 2 from the fast source", len(data.Episodes))
	}
}

func TestRefresh_BothSourcesEmptySetsError(t *testing.T) {
	spotify := &mockSource{platform: domain.PlatformSpotify}
	youtube := &mockSource{platform: domain.PlatformYouTube}
	deps := interfaces.Dependencies{Cache: &mockCache{}, Logger: &mockLogger{}}
	service := NewService(deps, time.Second, spotify, youtube)

	data := service.Refresh(context.Background())

	if len(data.Episodes) != 0 {
		t.Errorf("Refresh produced %d episodes, want 0", len(data.Episodes))
	}
	if data.Error == "" {
		t.Error("empty refresh should set the error field")
	}
}

func TestRefresh_PersistenceFailureStillReturnsData(t *testing.T) {
	spotify, youtube := testSources()
	cache := &mockCache{
		setFunc: func(ctx context.Context, key string, value []byte, ttl time.Duration) error {
			return errors.New("disk full")
		},
	}
	logger := &mockLogger{}
	deps := interfaces.Dependencies{Cache: cache, Logger: logger}
	service := NewService(deps, time.Second, spotify, youtube)

	data := service.Refresh(context.Background())

	if len(data.Episodes) != 2 {
		t.Errorf("Refresh should return data despite persistence failure, got %d episodes", len(data.Episodes))
	}
	if len(logger.warnings) == 0 {
		t.Error("persistence failure should be logged as a warning")
	}
}

func TestGetPodcastData_ServesCachedSnapshot(t *testing.T) {
	cached := domain.PodcastData{
		Episodes:    []domain.Episode{spotifyEpisode("s1", "One", day(1))},
		RefreshedAt: day(2),
		Source:      "spotify: 1, youtube: 0",
	}
	raw, _ := json.Marshal(cached)

	cache := &mockCache{
		getFunc: func(ctx context.Context, key string) ([]byte, error) {
			if key != domain.CacheKey {
				t.Errorf("cache read key = %s, want %s", key, domain.CacheKey)
			}
			return raw, nil
		},
	}
	// No sources wired: a refresh would yield nothing, so serving episodes
	// proves the cache was used
	service := NewService(interfaces.Dependencies{Cache: cache, Logger: &mockLogger{}}, time.Second)

	data := service.GetPodcastData(context.Background())

	if len(data.Episodes) != 1 {
		t.Fatalf("GetPodcastData returned %d episodes, want cached 1", len(data.Episodes))
	}
	if data.Source != "spotify: 1, youtube: 0" {
		t.Errorf("source = %q, want cached value", data.Source)
	}
}

func TestGetPodcastData_CacheMissTriggersRefresh(t *testing.T) {
	spotify, youtube := testSources()
	cache := &mockCache{
		getFunc: func(ctx context.Context, key string) ([]byte, error) {
			return nil, errors.New("key not found")
		},
	}
	deps := interfaces.Dependencies{Cache: cache, Logger: &mockLogger{}}
	service := NewService(deps, time.Second, spotify, youtube)

	data := service.GetPodcastData(context.Background())

	if len(data.Episodes) != 2 {
		t.Fatalf("GetPodcastData returned %d episodes, want 2 from live refresh", len(data.Episodes))
	}
	if !strings.Contains(data.Source, "spotify: 2") {
		t.Errorf("source = %q, want adapter success counts", data.Source)
	}
	if len(cache.setKeys) != 1 {
		t.Error("live refresh should persist the new snapshot")
	}
}

func TestGetPodcastData_CorruptCacheTriggersRefresh(t *testing.T) {
	spotify, youtube := testSources()
	cache := &mockCache{
		getFunc: func(ctx context.Context, key string) ([]byte, error) {
			return []byte("{not json"), nil
		},
	}
	deps := interfaces.Dependencies{Cache: cache, Logger: &mockLogger{}}
	service := NewService(deps, time.Second, spotify, youtube)

	data := service.GetPodcastData(context.Background())

	if len(data.Episodes) != 2 {
		t.Errorf("GetPodcastData returned %d episodes, want 2 from live refresh", len(data.Episodes))
	}
}

func TestGetPodcastData_EmptyEverythingReturnsErrorPayload(t *testing.T) {
	spotify := &mockSource{platform: domain.PlatformSpotify}
	youtube := &mockSource{platform: domain.PlatformYouTube}
	deps := interfaces.Dependencies{Cache: &mockCache{}, Logger: &mockLogger{}}
	service := NewService(deps, time.Second, spotify, youtube)

	data := service.GetPodcastData(context.Background())

	if data.Episodes == nil {
		t.Error("episodes should be an empty slice, not nil")
	}
	if len(data.Episodes) != 0 {
		t.Errorf("GetPodcastData returned %d episodes, want 0", len(data.Episodes))
	}
	if data.Error == "" {
		t.Error("empty result should carry an explanatory error field")
	}
}

func TestFetchPlatform_ReturnsSortedSingleSource(t *testing.T) {
	spotify := &mockSource{
		platform: domain.PlatformSpotify,
		episodes: []domain.Episode{
			spotifyEpisode("s1", "One", day(1)),
			spotifyEpisode("s2", "Two", day(8)),
		},
	}
	service := NewService(interfaces.Dependencies{Logger: &mockLogger{}}, time.Second, spotify)

	episodes, err := service.FetchPlatform(context.Background(), domain.PlatformSpotify)
	if err != nil {
		t.Fatalf("FetchPlatform returned error: %v", err)
	}
	if len(episodes) != 2 {
		t.Fatalf("FetchPlatform returned %d episodes, want 2", len(episodes))
	}
	if episodes[0].GUID != "s2" {
		t.Errorf("episodes should be sorted newest-first, got %s first", episodes[0].GUID)
	}
	if episodes[0].ID == "" {
		t.Error("episode IDs should be assigned")
	}
}

func TestFetchPlatform_UnknownPlatform(t *testing.T) {
	service := NewService(interfaces.Dependencies{Logger: &mockLogger{}}, time.Second)

	_, err := service.FetchPlatform(context.Background(), domain.PlatformYouTube)
	if !coreerrors.IsFetch(err) {
		t.Errorf("error should be a FetchError, got %T", err)
	}
}
