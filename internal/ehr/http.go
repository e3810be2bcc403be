package ehr

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
)

// HTTPDoer is the minimal interface needed from an HTTP client.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// DoJSON executes one HTTP exchange against a vendor backend and normalizes
// transport and status failures into categorized errors. On 2xx it returns
// the raw response body for the caller to parse.
func DoJSON(ctx context.Context, client HTTPDoer, vendorName, method, url string, body []byte) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, NewError(ErrorInternal, vendorName, "failed to create request", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, NewError(ErrorTimeout, vendorName, fmt.Sprintf("%s request timed out", vendorName), err)
		}
		return nil, NewError(ErrorVendorOutage, vendorName, fmt.Sprintf("%s unreachable: %v", vendorName, err), err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NewError(ErrorBadData, vendorName, "failed to read response", err)
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return respBody, nil
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, NewError(ErrorAuthentication, vendorName, statusMessage(vendorName, resp.StatusCode), nil)
	case resp.StatusCode == http.StatusNotFound:
		return nil, NewError(ErrorNotFound, vendorName, statusMessage(vendorName, resp.StatusCode), nil)
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, NewError(ErrorRateLimited, vendorName, statusMessage(vendorName, resp.StatusCode), nil)
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return nil, NewError(ErrorRejected, vendorName, statusMessage(vendorName, resp.StatusCode), nil)
	default:
		return nil, NewError(ErrorVendorOutage, vendorName, statusMessage(vendorName, resp.StatusCode), nil)
	}
}
