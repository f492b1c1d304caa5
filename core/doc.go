// Package core contains the business logic for the image search API.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Pure domain models (SearchResult, ProviderOutcome, Archive)
// - providers: Image provider adapters (Wikimedia Commons, Openverse, Brave)
// - search: Fan-out coordinator that merges and deduplicates provider results
// - archive: ZIP archive builder for one page of thumbnails
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (HTTP, logger)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Domain models are free from transport concerns
//
// # Usage Example
//
//	import (
//	    "imagesearch-app-api/core/providers"
//	    "imagesearch-app-api/core/search"
//	    "imagesearch-app-api/core/interfaces"
//	)
//
//	// Create dependencies
//	deps := interfaces.Dependencies{
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	// Create provider adapters and the coordinator
//	commons := providers.NewCommonsProvider(deps, userAgent)
//	openverse := providers.NewOpenverseProvider(deps)
//	svc := search.NewService(deps, []providers.Provider{commons, openverse}, commons)
//
//	// Search
//	results, err := svc.Search(ctx, "sunset", 1, 50)
package core
