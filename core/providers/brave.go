// ABOUTME: Brave image search adapter gated on an optional subscription token
// ABOUTME: Fallback provider; without a token it degrades to an empty contribution

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

const braveAPIURL = "https://api.search.brave.com/res/v1/images/search"

// BraveProvider searches Brave image search. Brave paginates with a 0-based
// page index in its offset parameter. The subscription token is optional:
// when absent, Search returns an empty page and zero total without making a
// network call. That is intentional capability degradation, not an error.
type BraveProvider struct {
	deps  interfaces.Dependencies
	token string
}

// NewBraveProvider creates a Brave adapter. An empty token puts the adapter
// in degraded mode.
func NewBraveProvider(deps interfaces.Dependencies, token string) *BraveProvider {
	return &BraveProvider{
		deps:  deps,
		token: token,
	}
}

// Name returns the provider source tag
func (p *BraveProvider) Name() string {
	return string(domain.SourceBrave)
}

// Enabled reports whether a subscription token is configured.
func (p *BraveProvider) Enabled() bool {
	return p.token != ""
}

// Search fetches one page of image results, or nothing in degraded mode.
func (p *BraveProvider) Search(ctx context.Context, query string, page, perPage int) ([]domain.SearchResult, int, error) {
	if !p.Enabled() {
		return []domain.SearchResult{}, 0, nil
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("count", strconv.Itoa(perPage))
	params.Set("offset", strconv.Itoa(page-1))

	headers := map[string]string{
		"Accept":               "application/json",
		"X-Subscription-Token": p.token,
	}

	resp, err := p.deps.HTTPClient.Get(ctx, braveAPIURL+"?"+params.Encode(), headers)
	if err != nil {
		return nil, 0, coreerrors.WrapError(err, "brave search request failed")
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
		return nil, 0, coreerrors.WrapError(err, "failed to read brave response")
	}

	var payload struct {
		Results []json.RawMessage `json:"results"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, 0, coreerrors.WrapError(err, "failed to parse brave response")
	}

	results := make([]domain.SearchResult, 0, len(payload.Results))
	for _, raw := range payload.Results {
		var item struct {
			Title     string `json:"title"`
			URL       string `json:"url"`
			Thumbnail struct {
				Src    string `json:"src"`
				Width  int    `json:"width"`
				Height int    `json:"height"`
			} `json:"thumbnail"`
			Properties struct {
				URL    string `json:"url"`
				Width  int    `json:"width"`
				Height int    `json:"height"`
			} `json:"properties"`
		}
		if err := json.Unmarshal(raw, &item); err != nil {
			continue
		}

		// Prefer the thumbnail, fall back to the full-size image URL.
		downloadURL := item.Thumbnail.Src
		width := item.Thumbnail.Width
		height := item.Thumbnail.Height
		if downloadURL == "" {
			downloadURL = item.Properties.URL
			width = item.Properties.Width
			height = item.Properties.Height
		}

		results = append(results, domain.SearchResult{
			ID:             item.URL,
			Title:          item.Title,
			AltDescription: item.Title,
			DownloadURL:    downloadURL,
			Width:          width,
			Height:         height,
			Source:         domain.SourceBrave,
			Raw:            raw,
		})
	}

	// Brave reports no total hit count; the page length is the best effort.
	return results, len(results), nil
}
