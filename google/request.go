package google

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"thde.io/porter"
)

// newRequest creates a new HTTP request against the API base URL.
// path is relative to the base URL and already escaped.
func (c *Client) newRequest(
	ctx context.Context,
	method, path string,
	params url.Values,
	body any,
) (*http.Request, error) {
	rel, err := url.Parse(path)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid path %q: %w", porter.ErrTransport, path, err)
	}

	// Joined rather than resolved so dot segments in IDs stay below the base path.
	u := *c.baseURL
	u.Path = c.baseURL.Path + rel.Path
	u.RawPath = c.baseURL.EscapedPath() + rel.EscapedPath()
	u.RawQuery = params.Encode()

	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("%w: marshal request: %w", porter.ErrSerialization, err)
		}
		reqBody = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reqBody)
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %w", porter.ErrTransport, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	return req, nil
}

// doJSON executes the request and decodes the JSON response into v.
func (c *Client) doJSON(req *http.Request, v any) error {
	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if v == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: decode response: %w", porter.ErrSerialization, err)
	}

	return nil
}

// do executes the request with the current bearer token.
// A non-2xx response is returned as *porter.APIError with the body verbatim.
func (c *Client) do(req *http.Request) (*http.Response, error) {
	token, err := c.Token(req.Context())
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", porter.ErrTransport, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("%w: read error response: %w", porter.ErrTransport, err)
		}

		return nil, &porter.APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	return resp, nil
}

// send issues a single API call and decodes the response into a new T.
func send[T any](
	ctx context.Context,
	c *Client,
	method, path string,
	params url.Values,
	body any,
) (*T, error) {
	req, err := c.newRequest(ctx, method, path, params, body)
	if err != nil {
		return nil, err
	}

	var result T
	if err := c.doJSON(req, &result); err != nil {
		return nil, err
	}

	return &result, nil
}
