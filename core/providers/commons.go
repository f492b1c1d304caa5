// ABOUTME: Wikimedia Commons adapter searching the File namespace via the MediaWiki API
// ABOUTME: Highest-priority provider; also reports the supplementary total hit count

package providers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"imagesearch-app-api/core/domain"
	coreerrors "imagesearch-app-api/core/errors"
	"imagesearch-app-api/core/interfaces"
)

const (
	commonsAPIURL = "https://commons.wikimedia.org/w/api.php"

	// fileNamespace is the MediaWiki namespace holding media files.
	fileNamespace = "6"

	// thumbnailWidth is the preferred thumbnail size requested from Commons.
	thumbnailWidth = 300
)

// CommonsProvider searches Wikimedia Commons. The MediaWiki search generator
// pages with an absolute offset, so page translation is (page-1)*perPage.
// Wikimedia rejects anonymous clients, so every request carries the
// descriptive User-Agent supplied at construction.
type CommonsProvider struct {
	deps      interfaces.Dependencies
	userAgent string
}

// NewCommonsProvider creates a Commons adapter. userAgent must identify the
// calling application per Wikimedia's User-Agent policy.
func NewCommonsProvider(deps interfaces.Dependencies, userAgent string) *CommonsProvider {
	return &CommonsProvider{
		deps:      deps,
		userAgent: userAgent,
	}
}

// Name returns the provider source tag
func (p *CommonsProvider) Name() string {
	return string(domain.SourceCommons)
}

func (p *CommonsProvider) headers() map[string]string {
	return map[string]string{"User-Agent": p.userAgent}
}

// commonsImageInfo is the subset of the imageinfo block the adapter maps.
type commonsImageInfo struct {
	ThumbURL    string `json:"thumburl"`
	Thumb       string `json:"thumb"`
	URL         string `json:"url"`
	ThumbWidth  int    `json:"thumbwidth"`
	ThumbHeight int    `json:"thumbheight"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
}

// Search fetches one page of File: results with 300px thumbnails requested.
func (p *CommonsProvider) Search(ctx context.Context, query string, page, perPage int) ([]domain.SearchResult, int, error) {
	offset := (page - 1) * perPage

	params := url.Values{}
	params.Set("action", "query")
	params.Set("format", "json")
	params.Set("generator", "search")
	params.Set("gsrsearch", query)
	params.Set("gsrnamespace", fileNamespace)
	params.Set("gsrlimit", strconv.Itoa(perPage))
	params.Set("gsroffset", strconv.Itoa(offset))
	params.Set("prop", "imageinfo")
	params.Set("iiprop", "url|size|mime|extmetadata")
	params.Set("iiurlwidth", strconv.Itoa(thumbnailWidth))
	params.Set("formatversion", "2")

	resp, err := p.deps.HTTPClient.Get(ctx, commonsAPIURL+"?"+params.Encode(), p.headers())
	if err != nil {
		return nil, 0, coreerrors.WrapError(err, "commons search request failed")
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
		return nil, 0, coreerrors.WrapError(err, "failed to read commons response")
	}

	var payload struct {
		Query struct {
			Pages []struct {
				PageID    int               `json:"pageid"`
				Title     string            `json:"title"`
				ImageInfo []json.RawMessage `json:"imageinfo"`
			} `json:"pages"`
		} `json:"query"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, 0, coreerrors.WrapError(err, "failed to parse commons response")
	}

	results := make([]domain.SearchResult, 0, len(payload.Query.Pages))
	for _, pg := range payload.Query.Pages {
		var raw json.RawMessage
		var info commonsImageInfo
		if len(pg.ImageInfo) > 0 {
			raw = pg.ImageInfo[0]
			// Malformed imageinfo leaves the fields zero; the result is
			// still listed, just without a usable URL.
			_ = json.Unmarshal(raw, &info)
		}

		// Prefer the 300px thumbnail, fall back to the full-size URL.
		downloadURL := info.ThumbURL
		if downloadURL == "" {
			downloadURL = info.Thumb
		}
		if downloadURL == "" {
			downloadURL = info.URL
		}

		width := info.ThumbWidth
		if width == 0 {
			width = info.Width
		}
		height := info.ThumbHeight
		if height == 0 {
			height = info.Height
		}

		title := strings.ReplaceAll(pg.Title, "File:", "")
		results = append(results, domain.SearchResult{
			ID:             pg.PageID,
			Title:          title,
			AltDescription: title,
			DownloadURL:    downloadURL,
			Width:          width,
			Height:         height,
			Source:         domain.SourceCommons,
			Raw:            raw,
		})
	}

	// The search generator reports no hit count; the supplementary
	// TotalHits call covers Commons in the aggregated total.
	return results, 0, nil
}

// TotalHits returns the approximate number of File: pages matching query.
func (p *CommonsProvider) TotalHits(ctx context.Context, query string) (int, error) {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("format", "json")
	params.Set("list", "search")
	params.Set("srsearch", query)
	params.Set("srnamespace", fileNamespace)
	params.Set("srlimit", "1")
	params.Set("formatversion", "2")

	resp, err := p.deps.HTTPClient.Get(ctx, commonsAPIURL+"?"+params.Encode(), p.headers())
	if err != nil {
		return 0, coreerrors.WrapError(err, "commons totalhits request failed")
	}

	if resp.StatusCode() != http.StatusOK {
		resp.Body().Close()
		return 0, &coreerrors.ExternalAPIError{
			StatusCode: resp.StatusCode(),
			Provider:   p.Name(),
			Message:    "totalhits returned non-200 status",
		}
	}

	body, err := readBody(resp)
	if err != nil {
		return 0, coreerrors.WrapError(err, "failed to read commons totalhits response")
	}

	var payload struct {
		Query struct {
			SearchInfo struct {
				TotalHits int `json:"totalhits"`
			} `json:"searchinfo"`
		} `json:"query"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return 0, coreerrors.WrapError(err, "failed to parse commons totalhits response")
	}

	return payload.Query.SearchInfo.TotalHits, nil
}
