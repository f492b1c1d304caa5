// ABOUTME: Tests for handler error conversion
// ABOUTME: Verifies domain error to HTTP status mapping

package handlers

import (
	stderrors "errors"
	"strings"
	"testing"

	"imagesearch-app-api/core/errors"

	"github.com/danielgtaylor/huma/v2"
)

func TestToHumaError_NilError(t *testing.T) {
	if err := toHumaError(nil); err != nil {
		t.Errorf("toHumaError(nil) = %v, want nil", err)
	}
}

func TestToHumaError_ValidationError(t *testing.T) {
	err := toHumaError(&errors.ValidationError{Field: "page", Message: "page must be between 1 and 10"})

	statusErr, ok := err.(huma.StatusError)
	if !ok {
		t.Fatalf("toHumaError returned %T, want huma.StatusError", err)
	}
	if statusErr.GetStatus() != 400 {
		t.Errorf("status = %d, want 400", statusErr.GetStatus())
	}
}

func TestToHumaError_ExternalAPIServerError(t *testing.T) {
	err := toHumaError(&errors.ExternalAPIError{StatusCode: 502, Message: "bad gateway", Provider: "commons"})

	statusErr, ok := err.(huma.StatusError)
	if !ok {
		t.Fatalf("toHumaError returned %T, want huma.StatusError", err)
	}
	if statusErr.GetStatus() != 503 {
		t.Errorf("status = %d, want 503", statusErr.GetStatus())
	}
	if !strings.Contains(err.Error(), "commons") {
		t.Errorf("error %q does not name the provider", err.Error())
	}
}

func TestToHumaError_ExternalAPIRateLimited(t *testing.T) {
	err := toHumaError(&errors.ExternalAPIError{StatusCode: 429, Message: "slow down", Provider: "openverse"})

	statusErr, ok := err.(huma.StatusError)
	if !ok {
		t.Fatalf("toHumaError returned %T, want huma.StatusError", err)
	}
	if statusErr.GetStatus() != 429 {
		t.Errorf("status = %d, want 429", statusErr.GetStatus())
	}
}

func TestToHumaError_WrappedExternalAPIError(t *testing.T) {
	wrapped := errors.WrapError(
		&errors.ExternalAPIError{StatusCode: 503, Message: "unavailable", Provider: "commons"},
		"failed to derive download page",
	)

	err := toHumaError(wrapped)

	statusErr, ok := err.(huma.StatusError)
	if !ok {
		t.Fatalf("toHumaError returned %T, want huma.StatusError", err)
	}
	if statusErr.GetStatus() != 503 {
		t.Errorf("status = %d, want 503 for wrapped upstream server error", statusErr.GetStatus())
	}
	if !strings.Contains(err.Error(), "commons") {
		t.Errorf("error %q does not name the provider", err.Error())
	}
}

func TestToHumaError_WrappedExternalAPIRateLimited(t *testing.T) {
	wrapped := errors.WrapError(
		&errors.ExternalAPIError{StatusCode: 429, Message: "slow down", Provider: "commons"},
		"failed to derive download page",
	)

	err := toHumaError(wrapped)

	statusErr, ok := err.(huma.StatusError)
	if !ok {
		t.Fatalf("toHumaError returned %T, want huma.StatusError", err)
	}
	if statusErr.GetStatus() != 429 {
		t.Errorf("status = %d, want 429 for wrapped rate limit error", statusErr.GetStatus())
	}
}

func TestToHumaError_ExternalAPIClientError(t *testing.T) {
	err := toHumaError(&errors.ExternalAPIError{StatusCode: 403, Message: "forbidden", Provider: "brave"})

	statusErr, ok := err.(huma.StatusError)
	if !ok {
		t.Fatalf("toHumaError returned %T, want huma.StatusError", err)
	}
	if statusErr.GetStatus() != 502 {
		t.Errorf("status = %d, want 502", statusErr.GetStatus())
	}
}

func TestToHumaError_UnknownError(t *testing.T) {
	err := toHumaError(stderrors.New("something broke"))

	statusErr, ok := err.(huma.StatusError)
	if !ok {
		t.Fatalf("toHumaError returned %T, want huma.StatusError", err)
	}
	if statusErr.GetStatus() != 500 {
		t.Errorf("status = %d, want 500", statusErr.GetStatus())
	}
	if !strings.Contains(err.Error(), "Unexpected error") {
		t.Errorf("error = %q, want it to contain %q", err.Error(), "Unexpected error")
	}
}
