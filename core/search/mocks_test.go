package search

import (
	"context"
	"sync"

	"imagesearch-app-api/core/domain"
)

// mockProvider is a mock implementation of the providers.Provider interface
type mockProvider struct {
	name       string
	searchFunc func(ctx context.Context, query string, page, perPage int) ([]domain.SearchResult, int, error)

	mu    sync.Mutex
	calls int
}

func (m *mockProvider) Name() string {
	return m.name
}

func (m *mockProvider) Search(ctx context.Context, query string, page, perPage int) ([]domain.SearchResult, int, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()
	if m.searchFunc != nil {
		return m.searchFunc(ctx, query, page, perPage)
	}
	return nil, 0, nil
}

func (m *mockProvider) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// mockTotals is a mock implementation of the providers.TotalHitsProvider interface
type mockTotals struct {
	totalHitsFunc func(ctx context.Context, query string) (int, error)
}

func (m *mockTotals) TotalHits(ctx context.Context, query string) (int, error) {
	if m.totalHitsFunc != nil {
		return m.totalHitsFunc(ctx, query)
	}
	return 0, nil
}

// mockLogger records log calls for assertions
type mockLogger struct {
	mu     sync.Mutex
	errors []string
	warns  []string
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}

func (m *mockLogger) Info(msg string, fields map[string]interface{}) {}

func (m *mockLogger) Warn(msg string, fields map[string]interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.warns = append(m.warns, msg)
}

func (m *mockLogger) Error(msg string, fields map[string]interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errors = append(m.errors, msg)
}

// result is a shorthand for building test results with a download URL
func result(source domain.Source, id any, url string) domain.SearchResult {
	return domain.SearchResult{
		ID:          id,
		Title:       "title",
		DownloadURL: url,
		Source:      source,
	}
}
