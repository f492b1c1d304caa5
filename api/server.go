// ABOUTME: Huma API server configuration and setup
// ABOUTME: Provides OpenAPI documentation, request validation, and JSON error shaping

package api

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"imagesearch-app-api/api/middleware"
	"imagesearch-app-api/core/interfaces"
)

// APIConfig holds configuration for the API
type APIConfig struct {
	Logger interfaces.Logger
}

// ErrorModel is the wire shape of every error response:
// {"error": "...", "status": 502, "message": "..."}.
type ErrorModel struct {
	ErrorText string `json:"error" doc:"Short error description"`
	Status    int    `json:"status,omitempty" doc:"HTTP status code"`
	Message   string `json:"message,omitempty" doc:"Additional detail"`
}

// Error implements the error interface
func (e *ErrorModel) Error() string {
	return e.ErrorText
}

// GetStatus implements huma.StatusError
func (e *ErrorModel) GetStatus() int {
	return e.Status
}

// useErrorModel swaps Huma's default RFC 7807 problem responses for the
// compact ErrorModel shape API consumers expect.
func useErrorModel() {
	huma.NewError = func(status int, msg string, errs ...error) huma.StatusError {
		model := &ErrorModel{
			ErrorText: msg,
			Status:    status,
		}
		if len(errs) > 0 && errs[0] != nil {
			model.Message = errs[0].Error()
		}
		return model
	}
}

// NewAPIWithMiddleware creates a new API with CORS and logging configured
func NewAPIWithMiddleware(cfg APIConfig) (huma.API, chi.Router) {
	useErrorModel()

	// Create Chi router
	router := chi.NewRouter()

	// Configure CORS (should be first middleware)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"}, // Allow all origins in development
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))

	if cfg.Logger != nil {
		router.Use(middleware.RequestLoggingMiddleware(cfg.Logger))
	}

	// Create Huma API configuration
	config := huma.DefaultConfig("Image Search API", "1.0.0")
	config.Info.Description = "Aggregated image search across Wikimedia Commons, Openverse, and Brave"

	// Create Huma API with Chi adapter
	api := humachi.New(router, config)

	// The OpenAPI spec is automatically available at /openapi.json
	// The Swagger UI is automatically available at /docs

	return api, router
}
