package httpclient

import (
	"log/slog"
	"net/http"
	"time"
)

// Attempt describes a single request attempt, reported to the OnAttempt hook.
type Attempt struct {
	URL        string
	Number     int
	StatusCode int
	Duration   time.Duration
	Err        error
}

// AttemptHook observes every attempt, e.g. for logging.
type AttemptHook func(Attempt)

type options struct {
	timeout    time.Duration
	headers    map[string]string
	maxRetries int
	backoff    BackoffStrategy
	onAttempt  AttemptHook
	userAgent  string
}

func defaultOptions() *options {
	return &options{
		timeout:   10 * time.Second,
		headers:   make(map[string]string),
		backoff:   DefaultBackoffStrategy(),
		userAgent: "authform/1.0",
	}
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client. Nil is ignored.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		if c != nil {
			cl.client = c
		}
	}
}

// WithTimeout bounds every attempt. Non-positive values are ignored.
func WithTimeout(d time.Duration) Option {
	return func(cl *Client) {
		if d > 0 {
			cl.opts.timeout = d
		}
	}
}

// WithHeader adds a header sent with every request.
func WithHeader(key, value string) Option {
	return func(cl *Client) {
		if key != "" && value != "" {
			cl.opts.headers[key] = value
		}
	}
}

// WithUserAgent overrides the default User-Agent header.
func WithUserAgent(ua string) Option {
	return func(cl *Client) {
		if ua != "" {
			cl.opts.userAgent = ua
		}
	}
}

// WithRetries enables up to n retries for transient failures: transport errors,
// 5xx, 408 and 429 responses. Retries are disabled by default because sign-up
// requests are not idempotent.
func WithRetries(n int, strategy BackoffStrategy) Option {
	return func(cl *Client) {
		if n >= 0 {
			cl.opts.maxRetries = n
		}
		if strategy != nil {
			cl.opts.backoff = strategy
		}
	}
}

// WithOnAttempt registers a hook invoked after every attempt.
func WithOnAttempt(hook AttemptHook) Option {
	return func(cl *Client) {
		cl.opts.onAttempt = hook
	}
}

// WithLogger logs every attempt at debug level and failures at warn level.
func WithLogger(log *slog.Logger) Option {
	return func(cl *Client) {
		if log == nil {
			return
		}
		cl.opts.onAttempt = func(a Attempt) {
			attrs := []any{
				slog.String("url", a.URL),
				slog.Int("attempt", a.Number),
				slog.Int("status", a.StatusCode),
				slog.Duration("duration", a.Duration),
			}
			if a.Err != nil {
				log.Warn("http request failed", append(attrs, slog.String("error", a.Err.Error()))...)
				return
			}
			log.Debug("http request completed", attrs...)
		}
	}
}
