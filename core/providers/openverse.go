// ABOUTME: Openverse adapter searching the openly licensed image catalog
// ABOUTME: Second-priority provider; requires no credential

package providers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"imagesearch-app-api/core/domain"
	coreerrors "imagesearch-app-api/core/errors"
	"imagesearch-app-api/core/interfaces"
)

const openverseAPIURL = "https://api.openverse.org/v1/images/"

// OpenverseProvider searches the Openverse catalog. Openverse paginates with
// a 1-based page parameter, so the requested page maps through directly.
type OpenverseProvider struct {
	deps interfaces.Dependencies
}

// NewOpenverseProvider creates an Openverse adapter.
func NewOpenverseProvider(deps interfaces.Dependencies) *OpenverseProvider {
	return &OpenverseProvider{deps: deps}
}

// Name returns the provider source tag
func (p *OpenverseProvider) Name() string {
	return string(domain.SourceOpenverse)
}

// Search fetches one page of image results.
func (p *OpenverseProvider) Search(ctx context.Context, query string, page, perPage int) ([]domain.SearchResult, int, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("page", strconv.Itoa(page))
	params.Set("page_size", strconv.Itoa(perPage))

	resp, err := p.deps.HTTPClient.Get(ctx, openverseAPIURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, 0, coreerrors.WrapError(err, "openverse search request failed")
	}

	if resp.StatusCode() != http.StatusOK {
		resp.Body().Close()
		return nil, 0, &coreerrors.ExternalAPIError{
			StatusCode: resp.StatusCode(),
			Provider:   p.Name(),
			Message:    "search returned non-200 status",
		}
	}

	body, err := readBody(resp)
	if err != nil {
		return nil, 0, coreerrors.WrapError(err, "failed to read openverse response")
	}

	var payload struct {
		ResultCount int               `json:"result_count"`
		Results     []json.RawMessage `json:"results"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, 0, coreerrors.WrapError(err, "failed to parse openverse response")
	}

	results := make([]domain.SearchResult, 0, len(payload.Results))
	for _, raw := range payload.Results {
		var item struct {
			ID        string `json:"id"`
			Title     string `json:"title"`
			URL       string `json:"url"`
			Thumbnail string `json:"thumbnail"`
			Width     int    `json:"width"`
			Height    int    `json:"height"`
		}
		if err := json.Unmarshal(raw, &item); err != nil {
			continue
		}

		// Prefer the catalog thumbnail, fall back to the full-size URL.
		downloadURL := item.Thumbnail
		if downloadURL == "" {
			downloadURL = item.URL
		}

		results = append(results, domain.SearchResult{
			ID:             item.ID,
			Title:          item.Title,
			AltDescription: item.Title,
			DownloadURL:    downloadURL,
			Width:          item.Width,
			Height:         item.Height,
			Source:         domain.SourceOpenverse,
			Raw:            raw,
		})
	}

	return results, payload.ResultCount, nil
}
