// ABOUTME: Provider interface implemented by every image search backend adapter
// ABOUTME: Adapters translate provider-specific APIs into the common result shape

package providers

import (
	"context"
	"io"

	"imagesearch-app-api/core/domain"
	"imagesearch-app-api/core/interfaces"
)

// Provider is implemented by each image search backend adapter. Adapters own
// their provider's request shaping (pagination translation, credentials,
// identifying headers) and map the provider's response fields into
// domain.SearchResult.
//
// Search returns the results for one page together with the provider's
// best-effort total hit count. Errors are returned to the caller; the fan-out
// coordinator converts them into per-provider failure outcomes so one broken
// provider never fails the whole request.
type Provider interface {
	// Name returns the provider's source tag (e.g. "commons").
	Name() string

	// Search fetches one page of results. page is 1-based, perPage 1..50.
	Search(ctx context.Context, query string, page, perPage int) ([]domain.SearchResult, int, error)
}

// TotalHitsProvider is implemented by providers that can report an
// approximate total hit count independently of a result page.
type TotalHitsProvider interface {
	TotalHits(ctx context.Context, query string) (int, error)
}

// readBody drains and closes an HTTP response body.
func readBody(resp interfaces.Response) ([]byte, error) {
	body := resp.Body()
	defer body.Close()
	return io.ReadAll(body)
}
