// ABOUTME: Search domain models for aggregated image search results
// ABOUTME: Defines the normalized result shape shared by all provider adapters

package domain

import "encoding/json"

const (
	// MaxPage is the deepest result page callers may request.
	MaxPage = 10

	// MaxPerPage is the largest page size callers may request.
	MaxPerPage = 50
)

// Source identifies the provider an image result came from.
type Source string

const (
	// SourceCommons is Wikimedia Commons, the primary metadata source.
	SourceCommons Source = "commons"

	// SourceOpenverse is the Openverse image catalog.
	SourceOpenverse Source = "openverse"

	// SourceBrave is Brave image search, the fallback source.
	SourceBrave Source = "brave"
)

// SearchResult is a single normalized image search result.
type SearchResult struct {
	// ID is the provider-specific identifier (int page ID for Commons,
	// UUID string for Openverse, page URL for Brave).
	ID any `json:"id"`

	// Title is the image title, stripped of provider prefixes. May be empty.
	Title string `json:"title"`

	// AltDescription mirrors Title for display fallbacks.
	AltDescription string `json:"alt_description"`

	// DownloadURL is the preferred (thumbnail) URL, falling back to the
	// full-resolution URL. Empty when the provider supplied neither; such
	// results cannot be downloaded or deduplicated by URL.
	// Never mutated after the adapter creates the result.
	DownloadURL string `json:"download_url,omitempty"`

	// Width and Height describe the image at DownloadURL, when known.
	Width  int `json:"width,omitempty"`
	Height int `json:"height,omitempty"`

	// Source tags the originating provider.
	Source Source `json:"source"`

	// Raw is the provider's original record, passed through untouched for
	// debugging and forward compatibility.
	Raw json.RawMessage `json:"raw,omitempty"`
}

// ProviderOutcome is the per-provider result of one fan-out call.
// A non-nil Err marks the provider as failed for this request; failed
// providers contribute no results and a zero total.
type ProviderOutcome struct {
	Source  Source
	Results []SearchResult
	Total   int
	Err     error
}

// AggregatedResponse is the merged response returned to API callers.
type AggregatedResponse struct {
	// Total is the sum of every provider's self-reported hit count plus the
	// supplementary Commons count. It is an upper-bound approximation, not
	// a count of unique results.
	Total int `json:"total"`

	// Results is the deduplicated, priority-ordered result page.
	Results []SearchResult `json:"results"`
}
