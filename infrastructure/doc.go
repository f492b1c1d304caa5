// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as HTTP communication and logging.
//
// The infrastructure package is organized by technical concern:
//
// - http/standard: Standard library HTTP client with per-request headers
// - logger/logrus: Structured JSON logger with optional file rotation
//
// # Design Philosophy
//
// Infrastructure components are designed to be:
// - Pluggable: Easy to swap implementations
// - Configurable: Accept configuration objects
// - Testable: Include both unit and integration tests
// - Production-ready: Include timeouts and error handling
//
// # HTTP Client
//
// The HTTP client makes a single attempt per request and supports
// per-request header overrides:
//
//	client := standard.NewStandardHTTPClient(20 * time.Second)
//	resp, err := client.Get(ctx, "https://example.com", map[string]string{
//	    "User-Agent": "image-search-project/0.1 (dev@example.com)",
//	})
//	if err != nil {
//	    // Handle error
//	}
//	defer resp.Body().Close()
//
// # Logger
//
// The logger supports structured logging with fields:
//
//	logger := logrus.NewLogrusLogger(logrus.Options{Level: "info"})
//	logger.Info("Provider search completed", map[string]interface{}{
//	    "provider": "commons",
//	    "results":  42,
//	})
package infrastructure
