// Package api holds one file per server resource. Functions are stateless:
// they take the http.Client to use (authenticated or plain) plus the base
// URL, mirroring the REST contract one to one.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	apierr "github.com/shopwire/storefront-client/internal/errors"
)

// maxErrorBody bounds how much of a failure response is retained for the
// caller; server error pages can be arbitrarily large.
const maxErrorBody = 8 << 10

// postJSON builds a POST request with a JSON body. The body is an in-memory
// buffer, so the request is replayable by the auth pipeline.
func postJSON(ctx context.Context, url string, payload any) (*http.Request, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

// checkStatus converts a non-expected status into a classified error
// carrying the (truncated) response detail.
func checkStatus(resp *http.Response, want int, operation string) error {
	if resp.StatusCode == want {
		return nil
	}
	detail, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return apierr.NewHTTPError(resp.StatusCode, string(detail), operation)
}
