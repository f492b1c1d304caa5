// Package api provides the HTTP API layer for the image search aggregator.
// It uses the Huma framework to provide automatic OpenAPI documentation,
// request/response validation, and a clean handler interface.
//
// # Architecture
//
// The API package is structured as follows:
//
// - server.go: Huma API configuration and setup
// - handlers/: HTTP request handlers
// - dto/: Data Transfer Objects for responses
// - middleware/: HTTP middleware for cross-cutting concerns
//
// # Key Features
//
// 1. Automatic OpenAPI Generation
//
// The API automatically generates OpenAPI 3.0 documentation:
// - JSON spec available at /openapi.json
// - Interactive Swagger UI at /docs
//
// 2. Request Validation
//
// Huma provides automatic validation based on struct tags:
//
//	type SearchImagesInput struct {
//	    Query   string `query:"query" required:"true" minLength:"1"`
//	    Page    int    `query:"page" default:"1" minimum:"1" maximum:"10"`
//	    PerPage int    `query:"per_page" default:"50" minimum:"1" maximum:"50"`
//	}
//
// 3. Middleware Support
//
// The API includes middleware for:
// - Request logging with unique request IDs
// - CORS handling
//
// # Usage Example
//
//	// Create API with middleware
//	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{
//	    Logger: logger,
//	})
//
//	// Register handlers
//	searchHandler := handlers.NewSearchHandler(searchService)
//	searchHandler.RegisterRoutes(humaAPI)
//
//	// Start server
//	http.ListenAndServe(":8000", router)
//
// # Error Handling
//
// Every error response uses a compact JSON shape:
//
//	{
//	    "error": "commons API error",
//	    "status": 503,
//	    "message": "external API error from commons: 502 - bad gateway"
//	}
//
// Domain errors are automatically mapped to appropriate HTTP status codes.
package api
