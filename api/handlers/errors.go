// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts domain errors to appropriate HTTP responses

package handlers

import (
	stderrors "errors"
	"fmt"

	"imagesearch-app-api/core/errors"

	"github.com/danielgtaylor/huma/v2"
)

// toHumaError converts domain errors to appropriate Huma HTTP errors
func toHumaError(err error) error {
	if err == nil {
		return nil
	}

	if errors.IsValidation(err) {
		return huma.Error400BadRequest(err.Error())
	}

	if errors.IsExternalAPI(err) {
		// The services wrap provider errors with context, so unwrap
		// rather than assert the concrete type.
		var apiErr *errors.ExternalAPIError
		if stderrors.As(err, &apiErr) {
			msg := fmt.Sprintf("%s API error", apiErr.Provider)
			// Map external API status codes to our API status codes
			switch {
			case apiErr.StatusCode >= 500:
				return huma.Error503ServiceUnavailable(msg, err)
			case apiErr.StatusCode == 429:
				return huma.Error429TooManyRequests(msg)
			case apiErr.StatusCode >= 400:
				return huma.Error502BadGateway(msg, err)
			default:
				return huma.Error500InternalServerError(msg, err)
			}
		}
	}

	// Default to internal server error for unknown errors
	return huma.Error500InternalServerError("Unexpected error", err)
}
