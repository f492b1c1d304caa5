// ABOUTME: Search handler for the Huma API
// ABOUTME: Provides the HTTP endpoint for aggregated image search

package handlers

import (
	"context"
	"net/http"

	"imagesearch-app-api/api/dto/mappers"
	"imagesearch-app-api/api/dto/responses"
	"imagesearch-app-api/core/domain"

	"github.com/danielgtaylor/huma/v2"
)

// SearchService interface defines the methods needed from the search service
type SearchService interface {
	Search(ctx context.Context, query string, page, perPage int) (*domain.AggregatedResponse, error)
}

// SearchHandler handles image search HTTP requests
type SearchHandler struct {
	searchService SearchService
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(searchService SearchService) *SearchHandler {
	return &SearchHandler{
		searchService: searchService,
	}
}

// RegisterRoutes registers the search route
func (h *SearchHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "searchImages",
		Method:      http.MethodGet,
		Path:        "/search",
		Summary:     "Search images across providers",
		Description: "Fans the query out to Wikimedia Commons, Openverse, and Brave concurrently and returns a merged, deduplicated page of results",
		Tags:        []string{"Search"},
	}, h.SearchImages)
}

// SearchImagesInput defines the input for the SearchImages operation
type SearchImagesInput struct {
	Query   string `query:"query" required:"true" minLength:"1" doc:"Search term"`
	Page    int    `query:"page" default:"1" minimum:"1" maximum:"10" doc:"Page number"`
	PerPage int    `query:"per_page" default:"50" minimum:"1" maximum:"50" doc:"Results per page"`
}

// SearchImagesOutput defines the output for the SearchImages operation
type SearchImagesOutput struct {
	Body responses.SearchResponse
}

// SearchImages handles the GET /search endpoint
func (h *SearchHandler) SearchImages(ctx context.Context, input *SearchImagesInput) (*SearchImagesOutput, error) {
	agg, err := h.searchService.Search(ctx, input.Query, input.Page, input.PerPage)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &SearchImagesOutput{
		Body: mappers.ToSearchResponse(agg),
	}, nil
}
