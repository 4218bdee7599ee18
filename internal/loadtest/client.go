package loadtest

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"
)

// Response is the outcome of one call. StatusCode is 0 when the request never completed.
type Response struct {
	StatusCode int
	Body       []byte
	Latency    time.Duration
}

// HTTPClient posts JSON bodies to a base URL.
type HTTPClient struct {
	BaseURL string
	Client  *http.Client
	Headers map[string]string
}

func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: timeout},
		Headers: map[string]string{},
	}
}

// PostJSON marshals body and posts it to endpoint, timing the round trip.
func (c *HTTPClient) PostJSON(ctx context.Context, endpoint string, body any) (*Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range c.Headers {
		req.Header.Set(k, v)
	}

	start := time.Now()
	resp, err := c.Client.Do(req)
	if err != nil {
		return &Response{Latency: time.Since(start)}, err
	}
	defer resp.Body.Close()
	respBody, err := io.ReadAll(resp.Body)
	out := &Response{StatusCode: resp.StatusCode, Body: respBody, Latency: time.Since(start)}
	return out, err
}
