package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// maxBodySize caps how much of a response body is buffered.
const maxBodySize = 1 << 20

// Request is a JSON POST request.
type Request struct {
	URL     string
	Body    any
	Headers map[string]string
}

// Response is the raw outcome of a request. Status interpretation is left to
// the caller.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Decode unmarshals the JSON body into v.
func (r *Response) Decode(v any) error {
	if r == nil || len(bytes.TrimSpace(r.Body)) == 0 {
		return ErrEmptyResponse
	}
	if err := json.Unmarshal(r.Body, v); err != nil {
		return errors.Join(ErrDecodeResponse, err)
	}
	return nil
}

// Client posts JSON payloads over HTTP.
// Zero value is not usable; use New.
type Client struct {
	client *http.Client
	opts   *options
}

// New returns a client with pooled connections and a 10s per-attempt timeout.
func New(opts ...Option) *Client {
	c := &Client{
		client: &http.Client{
			Transport: &http.Transport{
				Proxy:               http.ProxyFromEnvironment,
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		opts: defaultOptions(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Post sends req as JSON and returns the response for any HTTP status.
// Errors are returned only when no response could be obtained.
func (c *Client) Post(ctx context.Context, req Request) (*Response, error) {
	if err := validateURL(req.URL); err != nil {
		return nil, err
	}

	var payload []byte
	if req.Body != nil {
		b, err := json.Marshal(req.Body)
		if err != nil {
			return nil, errors.Join(ErrEncodeBody, err)
		}
		payload = b
	}

	var (
		resp    *Response
		lastErr error
	)
	for attempt := 0; attempt <= c.opts.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(c.opts.backoff.NextInterval(attempt)):
			}
		}

		start := time.Now()
		resp, lastErr = c.do(ctx, req, payload)
		if c.opts.onAttempt != nil {
			a := Attempt{URL: req.URL, Number: attempt + 1, Duration: time.Since(start), Err: lastErr}
			if resp != nil {
				a.StatusCode = resp.StatusCode
			}
			c.opts.onAttempt(a)
		}

		if !shouldRetry(resp, lastErr) {
			break
		}
	}

	if lastErr != nil {
		return nil, lastErr
	}
	return resp, nil
}

func (c *Client) do(ctx context.Context, req Request, payload []byte) (*Response, error) {
	reqCtx, cancel := context.WithTimeout(ctx, c.opts.timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(reqCtx, http.MethodPost, req.URL, bytes.NewReader(payload))
	if err != nil {
		return nil, errors.Join(ErrRequestFailed, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.opts.userAgent)
	for k, v := range c.opts.headers {
		httpReq.Header.Set(k, v)
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	httpResp, err := c.client.Do(httpReq)
	if err != nil {
		if errors.Is(reqCtx.Err(), context.DeadlineExceeded) && ctx.Err() == nil {
			return nil, fmt.Errorf("%w: %w", ErrTimeout, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	defer func() { _ = httpResp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(httpResp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %w", ErrRequestFailed, err)
	}

	return &Response{
		StatusCode: httpResp.StatusCode,
		Header:     httpResp.Header,
		Body:       body,
	}, nil
}

// shouldRetry treats transport errors, 5xx, 408 and 429 as transient.
func shouldRetry(resp *Response, err error) bool {
	if err != nil {
		return !errors.Is(err, context.Canceled)
	}
	switch {
	case resp.StatusCode >= http.StatusInternalServerError:
		return true
	case resp.StatusCode == http.StatusRequestTimeout, resp.StatusCode == http.StatusTooManyRequests:
		return true
	default:
		return false
	}
}

func validateURL(raw string) error {
	if raw == "" {
		return fmt.Errorf("%w: URL is required", ErrInvalidURL)
	}
	u, err := url.Parse(raw)
	if err != nil {
		return errors.Join(ErrInvalidURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: only http and https schemes are supported", ErrInvalidURL)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: host is required", ErrInvalidURL)
	}
	return nil
}
