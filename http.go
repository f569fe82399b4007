package sahha

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	headerAuthorization = "Authorization"
	headerContentType   = "Content-Type"
	headerRequestID     = "X-Request-Id"
	headerUserAgent     = "User-Agent"
	contentTypeJSON     = "application/json"
)

// doRequest performs an HTTP request and handles common error cases.
//
// The endpoint must already be percent-encoded by the caller; the engine
// appends it to the base URL verbatim. A bearer token is attached when the
// credential store holds one. Caller headers are merged last and may override
// any engine-set header. Every failure is surfaced as an *Error.
func (c *Client) doRequest(ctx context.Context, method, endpoint string, body interface{}, headers map[string]string, result interface{}) error {
	reqURL := c.baseURL + endpoint
	if _, err := url.Parse(reqURL); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidURL, endpoint)
	}

	var bodyReader io.Reader
	if body != nil {
		// encoding/json writes time.Time as RFC 3339, the ISO-8601 profile
		// the API expects.
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidURL, endpoint)
	}

	req.Header.Set(headerContentType, contentTypeJSON)
	req.Header.Set(headerUserAgent, c.userAgent)
	req.Header.Set(headerRequestID, c.newRequestID())

	if token, ok := c.creds.Get(KeyAccessToken); ok {
		req.Header.Set(headerAuthorization, "Bearer "+token)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("request failed",
			"method", method, "endpoint", endpoint, "error", err)
		return fmt.Errorf("%w: %v", newNetworkError(), err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read body: %v", newNetworkError(), err)
	}

	c.logger.Debug("request completed",
		"method", method, "endpoint", endpoint,
		"status", resp.StatusCode, "duration", time.Since(start))

	// 401 is surfaced as-is. There is no automatic refresh-token exchange;
	// the caller decides whether to force a re-login or call Auth.Refresh.
	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newServerError(resp.StatusCode, respBody)
	}

	if result != nil {
		if len(respBody) == 0 {
			return ErrNoData
		}
		if err := json.Unmarshal(respBody, result); err != nil {
			c.logger.Debug("decode failed", "endpoint", endpoint, "error", err)
			return fmt.Errorf("%w: %s", newDecodingError(), endpoint)
		}
	}

	return nil
}

// get performs a GET request.
func (c *Client) get(ctx context.Context, endpoint string, result interface{}) error {
	return c.doRequest(ctx, http.MethodGet, endpoint, nil, nil, result)
}

// post performs a POST request.
func (c *Client) post(ctx context.Context, endpoint string, body interface{}, result interface{}) error {
	return c.doRequest(ctx, http.MethodPost, endpoint, body, nil, result)
}
