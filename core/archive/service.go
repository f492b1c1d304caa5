// ABOUTME: Archive service bulk-downloads thumbnails and bundles them into a ZIP
// ABOUTME: Fetches run under a bounded concurrency cap; failed items are skipped

package archive

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"

	"golang.org/x/sync/semaphore"

	"imagesearch-app-api/core/domain"
	coreerrors "imagesearch-app-api/core/errors"
	"imagesearch-app-api/core/interfaces"
	"imagesearch-app-api/core/providers"
)

// fetchConcurrency caps simultaneous in-flight image downloads. Requests
// beyond the cap queue on the semaphore rather than failing.
const fetchConcurrency = 8

// Service builds ZIP archives of thumbnails for a search page.
//
// The page is re-derived from a single provider rather than the merged set
// the search endpoint returns, mirroring the behavior this service was built
// to preserve; see DESIGN.md before changing it.
type Service struct {
	deps     interfaces.Dependencies
	provider providers.Provider
}

// NewService creates an archive service. deps.HTTPClient should carry the
// longer download timeout; provider is the single source the download page
// is derived from.
func NewService(deps interfaces.Dependencies, provider providers.Provider) *Service {
	return &Service{
		deps:     deps,
		provider: provider,
	}
}

// validateParams validates archive request parameters
func (s *Service) validateParams(query string, page, perPage int) error {
	if query == "" {
		return &coreerrors.ValidationError{Field: "query", Message: "cannot be empty"}
	}
	if page < 1 || page > domain.MaxPage {
		return &coreerrors.ValidationError{Field: "page", Message: fmt.Sprintf("must be between 1 and %d", domain.MaxPage)}
	}
	if perPage < 1 || perPage > domain.MaxPerPage {
		return &coreerrors.ValidationError{Field: "per_page", Message: fmt.Sprintf("must be between 1 and %d", domain.MaxPerPage)}
	}
	return nil
}

// BuildPageArchive searches the provider for the requested page, downloads
// every result that has a usable URL, and bundles the successes into a ZIP.
// Entries are named image_<page>_<n>.jpg where n is the item's 1-based
// position among the downloadable results; positions of failed downloads are
// left as gaps, never renumbered.
func (s *Service) BuildPageArchive(ctx context.Context, query string, page, perPage int) (*domain.Archive, error) {
	if err := s.validateParams(query, page, perPage); err != nil {
		return nil, err
	}

	results, _, err := s.provider.Search(ctx, query, page, perPage)
	if err != nil {
		return nil, coreerrors.WrapError(err, "failed to derive download page")
	}

	urls := make([]string, 0, len(results))
	for _, r := range results {
		if r.DownloadURL != "" {
			urls = append(urls, r.DownloadURL)
		}
	}

	fetched := s.fetchAll(ctx, urls)

	data, count, err := buildZip(page, fetched)
	if err != nil {
		return nil, coreerrors.WrapError(err, "failed to build archive")
	}

	if s.deps.Logger != nil {
		s.deps.Logger.Info("Archive built", map[string]interface{}{
			"query":   query,
			"page":    page,
			"entries": count,
			"skipped": len(urls) - count,
		})
	}

	return &domain.Archive{
		Filename:   Filename(query, page),
		Data:       data,
		EntryCount: count,
	}, nil
}

// fetchAll downloads all URLs concurrently under the fetchConcurrency cap.
// The returned slice is index-aligned with urls; a nil entry marks a failed
// fetch. Individual failures never abort sibling fetches.
func (s *Service) fetchAll(ctx context.Context, urls []string) [][]byte {
	sem := semaphore.NewWeighted(fetchConcurrency)
	fetched := make([][]byte, len(urls))

	var wg sync.WaitGroup
	for i, u := range urls {
		wg.Add(1)
		go func(idx int, url string) {
			defer wg.Done()

			if err := sem.Acquire(ctx, 1); err != nil {
				return
			}
			defer sem.Release(1)

			data, err := s.fetchOne(ctx, url)
			if err != nil {
				if s.deps.Logger != nil {
					s.deps.Logger.Warn("Image fetch failed", map[string]interface{}{
						"url":   url,
						"error": err.Error(),
					})
				}
				return
			}
			fetched[idx] = data
		}(i, u)
	}
	wg.Wait()

	return fetched
}

// fetchOne downloads a single image.
func (s *Service) fetchOne(ctx context.Context, url string) ([]byte, error) {
	resp, err := s.deps.HTTPClient.Get(ctx, url, nil)
	if err != nil {
		return nil, err
	}

	body := resp.Body()
	defer body.Close()

	if resp.StatusCode() != http.StatusOK {
		return nil, &coreerrors.ExternalAPIError{
			StatusCode: resp.StatusCode(),
			Provider:   "image host",
			Message:    "download returned non-200 status",
		}
	}

	return io.ReadAll(body)
}

// buildZip writes the successful fetches into an in-memory ZIP. Entry names
// use the 1-based original position so callers can correlate archive entries
// with the search page even when some downloads failed.
func buildZip(page int, fetched [][]byte) ([]byte, int, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	count := 0
	for idx, data := range fetched {
		if data == nil {
			continue
		}
		name := fmt.Sprintf("image_%d_%d.jpg", page, idx+1)
		w, err := zw.Create(name)
		if err != nil {
			return nil, 0, err
		}
		if _, err := w.Write(data); err != nil {
			return nil, 0, err
		}
		count++
	}

	if err := zw.Close(); err != nil {
		return nil, 0, err
	}

	return buf.Bytes(), count, nil
}

// Filename derives the attachment filename from the query and page.
func Filename(query string, page int) string {
	return fmt.Sprintf("images_%s_page%d.zip", strings.ReplaceAll(query, " ", "_"), page)
}
