// ABOUTME: Shared fetch helper for source adapters
// ABOUTME: Wraps HTTP failures in typed FetchError values at the adapter boundary

package sources

import (
	"context"
	"io"

	coreerrors "episodes-app-api/core/errors"
	"episodes-app-api/core/interfaces"
)

// fetchBody performs a GET and returns the response body, converting network
// and HTTP status failures into *errors.FetchError for the given platform.
func fetchBody(ctx context.Context, client interfaces.HTTPClient, platform, url string) (string, error) {
	resp, err := client.Get(ctx, url)
	if err != nil {
		return "", &coreerrors.FetchError{Platform: platform, Err: err}
	}
	defer resp.Body().Close()

	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		return "", &coreerrors.FetchError{Platform: platform, StatusCode: resp.StatusCode()}
	}

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return "", &coreerrors.FetchError{Platform: platform, Err: err}
	}

	return string(body), nil
}
