// ABOUTME: Load tests for the /episodes endpoint
// ABOUTME: Tests performance under high concurrent load

package loadtest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"episodes-app-api/api"
	"episodes-app-api/api/handlers"
	"episodes-app-api/core/domain"
)

// mockEpisodeService serves a canned snapshot with an optional artificial delay
type mockEpisodeService struct {
	delay time.Duration
}

func (m *mockEpisodeService) snapshot() domain.PodcastData {
	if m.delay > 0 {
		time.Sleep(m.delay)
	}

	episodes := make([]domain.Episode, 20)
	for i := range episodes {
		episodes[i] = domain.Episode{
			ID:             fmt.Sprintf("ep-%d", i+1),
			GUID:           fmt.Sprintf("guid-%d", i+1),
			Title:          fmt.Sprintf("Episode %d", i+1),
			Description:    "Load test episode",
			PublishDateUTC: "2025-01-15",
			AudioURL:       "https://cdn.example.com/episode.mp3",
			Platform:       domain.PlatformComposite,
		}
	}

	return domain.PodcastData{
		Episodes:    episodes,
		RefreshedAt: time.Now().UTC(),
		Source:      "spotify: 20, youtube: 20",
	}
}

func (m *mockEpisodeService) GetPodcastData(ctx context.Context) domain.PodcastData {
	return m.snapshot()
}

func (m *mockEpisodeService) Refresh(ctx context.Context) domain.PodcastData {
	return m.snapshot()
}

func (m *mockEpisodeService) FetchPlatform(ctx context.Context, platform domain.Platform) ([]domain.Episode, error) {
	return m.snapshot().Episodes, nil
}

func newTestServer(delay time.Duration) *httptest.Server {
	humaAPI, router := api.NewAPI()
	handler := handlers.NewEpisodeHandler(&mockEpisodeService{delay: delay})
	handler.RegisterRoutes(humaAPI)
	handler.RegisterDiagnosticRoutes(humaAPI)
	return httptest.NewServer(router)
}

func TestEpisodesEndpoint_ConcurrentLoad(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping load test in short mode")
	}

	server := newTestServer(0)
	defer server.Close()

	const (
		workerCount       = 50
		requestsPerWorker = 20
	)

	var (
		successCount int64
		errorCount   int64
		totalLatency int64
	)

	var wg sync.WaitGroup
	start := time.Now()

	for w := 0; w < workerCount; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			client := &http.Client{Timeout: 10 * time.Second}
			for i := 0; i < requestsPerWorker; i++ {
				reqStart := time.Now()
				resp, err := client.Get(server.URL + "/episodes")
				if err != nil {
					atomic.AddInt64(&errorCount, 1)
					continue
				}

				io.Copy(io.Discard, resp.Body)
				resp.Body.Close()
				atomic.AddInt64(&totalLatency, time.Since(reqStart).Microseconds())

				if resp.StatusCode == http.StatusOK {
					atomic.AddInt64(&successCount, 1)
				} else {
					atomic.AddInt64(&errorCount, 1)
				}
			}
		}()
	}

	wg.Wait()
	elapsed := time.Since(start)

	total := workerCount * requestsPerWorker
	if successCount != int64(total) {
		t.Errorf("%d of %d requests succeeded, %d errors", successCount, total, errorCount)
	}

	throughput := float64(total) / elapsed.Seconds()
	avgLatencyMs := float64(totalLatency) / float64(total) / 1000

	t.Logf("throughput: %.0f req/s, avg latency: %.2f ms", throughput, avgLatencyMs)
}

func TestEpisodesEndpoint_SlowBackendDoesNotCorruptResponses(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping load test in short mode")
	}

	server := newTestServer(5 * time.Millisecond)
	defer server.Close()

	var wg sync.WaitGroup
	errs := make(chan error, 20)

	for w := 0; w < 20; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			resp, err := http.Get(server.URL + "/episodes")
			if err != nil {
				errs <- err
				return
			}
			defer resp.Body.Close()

			var body struct {
				Episodes []struct {
					ID string `json:"id"`
				} `json:"episodes"`
			}
			if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
				errs <- err
				return
			}
			if len(body.Episodes) != 20 {
				errs <- fmt.Errorf("response has %d episodes, want 20", len(body.Episodes))
			}
		}()
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
}
