// ABOUTME: Mappers for converting between domain models and API DTOs
// ABOUTME: Provides clean separation between business logic and API layer

package mappers

import (
	"imagesearch-app-api/api/dto/responses"
	"imagesearch-app-api/core/domain"
)

// ToImageResult converts a domain SearchResult to an ImageResult DTO
func ToImageResult(result domain.SearchResult) responses.ImageResult {
	return responses.ImageResult{
		ID:             result.ID,
		Title:          result.Title,
		AltDescription: result.AltDescription,
		DownloadURL:    result.DownloadURL,
		Width:          result.Width,
		Height:         result.Height,
		Source:         string(result.Source),
	}
}

// ToSearchResponse converts an aggregated domain response to a SearchResponse DTO
func ToSearchResponse(agg *domain.AggregatedResponse) responses.SearchResponse {
	if agg == nil {
		return responses.SearchResponse{Results: []responses.ImageResult{}}
	}

	results := make([]responses.ImageResult, 0, len(agg.Results))
	for _, r := range agg.Results {
		results = append(results, ToImageResult(r))
	}

	return responses.SearchResponse{
		Total:   agg.Total,
		Results: results,
	}
}
