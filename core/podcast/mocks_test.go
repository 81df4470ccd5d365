package podcast

import (
	"context"
	"time"

	"episodes-app-api/core/domain"
)

// mockSource is a mock implementation of the EpisodeSource interface
type mockSource struct {
	platform domain.Platform
	episodes []domain.Episode
	err      error
	delay    time.Duration
}

func (m *mockSource) Platform() domain.Platform {
	return m.platform
}

func (m *mockSource) FetchEpisodes(ctx context.Context) ([]domain.Episode, error) {
	if m.delay > 0 {
		select {
		case <-time.After(m.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if m.err != nil {
		return nil, m.err
	}
	return m.episodes, nil
}

// mockCache is a mock implementation of the Cache interface
type mockCache struct {
	getFunc func(ctx context.Context, key string) ([]byte, error)
	setFunc func(ctx context.Context, key string, value []byte, ttl time.Duration) error

	setKeys   []string
	setValues [][]byte
}

func (m *mockCache) Get(ctx context.Context, key string) ([]byte, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, key)
	}
	return nil, nil
}

func (m *mockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.setKeys = append(m.setKeys, key)
	m.setValues = append(m.setValues, value)
	if m.setFunc != nil {
		return m.setFunc(ctx, key, value, ttl)
	}
	return nil
}

func (m *mockCache) Delete(ctx context.Context, key string) error {
	return nil
}

// mockLogger is a mock implementation of the Logger interface
type mockLogger struct {
	warnings []string
	errors   []string
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Info(msg string, fields map[string]interface{})  {}

func (m *mockLogger) Warn(msg string, fields map[string]interface{}) {
	m.warnings = append(m.warnings, msg)
}

func (m *mockLogger) Error(msg string, fields map[string]interface{}) {
	m.errors = append(m.errors, msg)
}
