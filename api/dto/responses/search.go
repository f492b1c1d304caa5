// ABOUTME: Response DTOs for image search API endpoints
// ABOUTME: Provides structured responses with JSON serialization

package responses

// ImageResult represents a single image in API responses
type ImageResult struct {
	ID             any    `json:"id,omitempty" doc:"Provider-assigned identifier"`
	Title          string `json:"title,omitempty" doc:"Image title"`
	AltDescription string `json:"alt_description,omitempty" doc:"Alternative description of the image"`
	DownloadURL    string `json:"download_url,omitempty" doc:"URL of the image thumbnail"`
	Width          int    `json:"width,omitempty" doc:"Thumbnail width in pixels"`
	Height         int    `json:"height,omitempty" doc:"Thumbnail height in pixels"`
	Source         string `json:"source" doc:"Provider the result came from"`
}

// SearchResponse represents the response for an aggregated image search
type SearchResponse struct {
	Total   int           `json:"total" doc:"Approximate total matches across all providers"`
	Results []ImageResult `json:"results" doc:"Merged, deduplicated results for the requested page"`
}
