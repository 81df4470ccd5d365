// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts domain errors to appropriate HTTP responses

package handlers

import (
	"episodes-app-api/core/errors"
	"github.com/danielgtaylor/huma/v2"
)

// toHumaError converts domain errors to appropriate Huma HTTP errors
func toHumaError(err error) error {
	if err == nil {
		return nil
	}

	if errors.IsFetch(err) {
		if fetchErr, ok := err.(*errors.FetchError); ok {
			switch {
			case fetchErr.StatusCode >= 500:
				return huma.Error503ServiceUnavailable("Upstream source error", err)
			case fetchErr.StatusCode == 429:
				return huma.Error429TooManyRequests("Rate limited by upstream source")
			case fetchErr.StatusCode >= 400:
				return huma.Error502BadGateway("Upstream source rejected the request", err)
			default:
				return huma.Error503ServiceUnavailable("Upstream source unreachable", err)
			}
		}
	}

	if errors.IsParse(err) {
		return huma.Error502BadGateway("Upstream source returned malformed data", err)
	}

	if errors.IsPersistence(err) {
		return huma.Error500InternalServerError("Snapshot persistence failed", err)
	}

	// Default to internal server error for unknown errors
	return huma.Error500InternalServerError("Internal server error", err)
}
