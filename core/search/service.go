// ABOUTME: Search service fans one query out to all image providers concurrently
// ABOUTME: Merges provider pages into a deduplicated, priority-ordered result page

package search

import (
	"context"
	"fmt"
	"sync"

	"imagesearch-app-api/core/domain"
	coreerrors "imagesearch-app-api/core/errors"
	"imagesearch-app-api/core/interfaces"
	"imagesearch-app-api/core/providers"
)

// Service coordinates the provider fan-out and the merge of their pages.
type Service struct {
	deps interfaces.Dependencies

	// providerList is consulted in fixed priority order during the merge.
	// Position matters: dedup is first-wins, so higher-quality metadata
	// sources must come first.
	providerList []providers.Provider

	// totals supplies the supplementary approximate hit count. Its failure
	// contributes zero to the aggregated total and never fails a request.
	totals providers.TotalHitsProvider
}

// NewService creates a search service. providerList must already be in merge
// priority order; totals may be nil.
func NewService(deps interfaces.Dependencies, providerList []providers.Provider, totals providers.TotalHitsProvider) *Service {
	return &Service{
		deps:         deps,
		providerList: providerList,
		totals:       totals,
	}
}

// validateParams validates search query parameters
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

// Search runs the query against every configured provider concurrently and
// reduces their outcomes into one page.
//
// The returned Total sums each provider's self-reported hit count plus the
// supplementary count. It is an upper-bound approximation: duplicates removed
// from Results are still counted, because computing the true distinct count
// would require fetching every page from every provider.
func (s *Service) Search(ctx context.Context, query string, page, perPage int) (*domain.AggregatedResponse, error) {
	if err := s.validateParams(query, page, perPage); err != nil {
		return nil, err
	}

	outcomes := make([]domain.ProviderOutcome, len(s.providerList))
	var supplementary int

	var wg sync.WaitGroup
	for i, p := range s.providerList {
		wg.Add(1)
		go func(idx int, p providers.Provider) {
			defer wg.Done()
			results, total, err := p.Search(ctx, query, page, perPage)
			outcomes[idx] = domain.ProviderOutcome{
				Source:  domain.Source(p.Name()),
				Results: results,
				Total:   total,
				Err:     err,
			}
		}(i, p)
	}

	if s.totals != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			n, err := s.totals.TotalHits(ctx, query)
			if err != nil {
				if s.deps.Logger != nil {
					s.deps.Logger.Warn("Supplementary total hits lookup failed", map[string]interface{}{
						"query": query,
						"error": err.Error(),
					})
				}
				return
			}
			supplementary = n
		}()
	}

	// Wait for every launched call; no early return on first completion.
	wg.Wait()

	total := supplementary
	for _, outcome := range outcomes {
		if outcome.Err != nil {
			if s.deps.Logger != nil {
				s.deps.Logger.Error("Provider search failed", map[string]interface{}{
					"provider": string(outcome.Source),
					"query":    query,
					"error":    outcome.Err.Error(),
				})
			}
			continue
		}
		total += outcome.Total
	}

	return &domain.AggregatedResponse{
		Total:   total,
		Results: mergeOutcomes(outcomes, perPage),
	}, nil
}

// mergeOutcomes combines provider pages into one deduplicated list capped at
// perPage. Outcomes are consumed strictly in priority order and dedup is
// first-wins, so a duplicate from a lower-priority provider is dropped in
// favor of the earlier insertion. Failed outcomes are treated as empty.
// Truncation happens only after deduplicating across all providers.
func mergeOutcomes(outcomes []domain.ProviderOutcome, perPage int) []domain.SearchResult {
	seen := make(map[string]struct{})
	merged := make([]domain.SearchResult, 0, perPage)

	for _, outcome := range outcomes {
		if outcome.Err != nil {
			continue
		}
		for _, result := range outcome.Results {
			key := dedupKey(result)
			if key == "" {
				continue
			}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			merged = append(merged, result)
		}
	}

	if len(merged) > perPage {
		merged = merged[:perPage]
	}
	return merged
}

// dedupKey returns the identity key for a result: the download URL when
// present, otherwise a composite of source, ID, and title. An empty return
// marks the result as unidentifiable; such results are never added.
func dedupKey(r domain.SearchResult) string {
	if r.DownloadURL != "" {
		return r.DownloadURL
	}
	if r.ID == nil && r.Title == "" {
		return ""
	}
	return fmt.Sprintf("%s|%v|%s", r.Source, r.ID, r.Title)
}
