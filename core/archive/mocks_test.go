package archive

import (
	"context"
	"io"
	"strings"

	"imagesearch-app-api/core/domain"
	"imagesearch-app-api/core/interfaces"
)

// mockHTTPClient is a mock implementation of the HTTPClient interface
type mockHTTPClient struct {
	getFunc func(ctx context.Context, url string, headers map[string]string) (interfaces.Response, error)
}

func (m *mockHTTPClient) Get(ctx context.Context, url string, headers map[string]string) (interfaces.Response, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, url, headers)
	}
	return &mockResponse{statusCode: 200, body: "bytes"}, nil
}

// mockResponse is a mock implementation of the Response interface
type mockResponse struct {
	statusCode int
	body       string
}

func (m *mockResponse) StatusCode() int {
	return m.statusCode
}

func (m *mockResponse) Body() io.ReadCloser {
	return io.NopCloser(strings.NewReader(m.body))
}

func (m *mockResponse) Header(key string) string {
	return ""
}

// mockProvider is a mock implementation of the providers.Provider interface
type mockProvider struct {
	searchFunc func(ctx context.Context, query string, page, perPage int) ([]domain.SearchResult, int, error)
}

func (m *mockProvider) Name() string {
	return "commons"
}

func (m *mockProvider) Search(ctx context.Context, query string, page, perPage int) ([]domain.SearchResult, int, error) {
	if m.searchFunc != nil {
		return m.searchFunc(ctx, query, page, perPage)
	}
	return nil, 0, nil
}
