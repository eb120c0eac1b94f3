// Package download fetches release payloads and catalog documents over HTTP.
package download

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/thoreinstein/mlvm/internal/errors"
	"github.com/thoreinstein/mlvm/internal/logging"
)

// Defaults for New.
const (
	DefaultTimeout   = 10 * time.Minute
	DefaultMaxBytes  = int64(1 << 30)
	DefaultUserAgent = "mlvm"
)

// GitHubAPIHost receives the configured token. No other host does.
const GitHubAPIHost = "api.github.com"

// ErrTooLarge is returned when a body exceeds the configured limit.
var ErrTooLarge = errors.New("response body exceeds size limit")

// StatusError reports a non-2xx response.
type StatusError struct {
	URL        string
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: unexpected status %s", e.URL, e.Status)
}

// RateLimitError reports GitHub API rate limiting. It wraps the
// StatusError of the response.
type RateLimitError struct {
	*StatusError
	Remaining *int
}

func (e *RateLimitError) Error() string {
	remaining := "unknown"
	if e.Remaining != nil {
		remaining = strconv.Itoa(*e.Remaining)
	}
	return fmt.Sprintf("github api rate limit exceeded (%s, remaining=%s); set github_token to raise the limit", e.Status, remaining)
}

func (e *RateLimitError) Unwrap() error { return e.StatusError }

// Client performs GET requests with a size limit and identifying headers.
type Client struct {
	http      *http.Client
	userAgent string
	maxBytes  int64
	token     string
	authHosts map[string]bool
	logger    *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout sets the overall request timeout. Zero disables it.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithMaxBytes bounds response bodies. Non-positive values are ignored.
func WithMaxBytes(n int64) Option {
	return func(c *Client) {
		if n > 0 {
			c.maxBytes = n
		}
	}
}

// WithGitHubToken sends token as a bearer credential to the GitHub API.
func WithGitHubToken(token string) Option {
	return func(c *Client) { c.token = strings.TrimSpace(token) }
}

// WithAuthHosts replaces the set of hosts that receive the GitHub token.
func WithAuthHosts(hosts ...string) Option {
	return func(c *Client) {
		c.authHosts = make(map[string]bool, len(hosts))
		for _, h := range hosts {
			c.authHosts[h] = true
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// New returns a Client.
func New(opts ...Option) *Client {
	c := &Client{
		http:      &http.Client{Timeout: DefaultTimeout},
		userAgent: DefaultUserAgent,
		maxBytes:  DefaultMaxBytes,
		authHosts: map[string]bool{GitHubAPIHost: true},
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch returns the body of rawURL. Non-2xx responses yield a
// *StatusError and are never retried.
func (c *Client) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	resp, err := c.get(ctx, rawURL, "application/octet-stream")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := c.readBody(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", logging.MaskURL(rawURL))
	}

	c.logger.Debug("downloaded", "url", logging.MaskURL(rawURL), "bytes", len(data))
	return data, nil
}

// GetJSON decodes the JSON body of rawURL into v.
func (c *Client) GetJSON(ctx context.Context, rawURL string, v any) error {
	resp, err := c.get(ctx, rawURL, "application/json")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := c.readBody(resp.Body)
	if err != nil {
		return errors.Wrapf(err, "reading %s", logging.MaskURL(rawURL))
	}
	if err := json.Unmarshal(data, v); err != nil {
		return errors.Wrapf(err, "decoding %s", logging.MaskURL(rawURL))
	}
	return nil
}

func (c *Client) get(ctx context.Context, rawURL, accept string) (*http.Response, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "creating request")
	}
	req.Header.Set("User-Agent", c.userAgent)

	if c.token != "" && c.authHosts[req.URL.Hostname()] {
		req.Header.Set("Authorization", "Bearer "+c.token)
		req.Header.Set("Accept", "application/vnd.github+json")
	} else {
		req.Header.Set("Accept", accept)
	}

	c.logger.Debug("GET", "url", logging.MaskURL(rawURL))

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "GET %s", logging.MaskURL(rawURL))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_ = resp.Body.Close()
		statusErr := &StatusError{URL: logging.MaskURL(rawURL), StatusCode: resp.StatusCode, Status: resp.Status}
		if rl := rateLimitError(resp, statusErr); rl != nil {
			return nil, rl
		}
		return nil, statusErr
	}
	return resp, nil
}

func (c *Client) readBody(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, c.maxBytes+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > c.maxBytes {
		return nil, errors.Wrapf(ErrTooLarge, "limit %d bytes", c.maxBytes)
	}
	return data, nil
}

func rateLimitError(resp *http.Response, statusErr *StatusError) *RateLimitError {
	if resp.StatusCode == http.StatusTooManyRequests {
		return &RateLimitError{StatusError: statusErr}
	}
	// GitHub answers 403 on exhaustion; confirm with the remaining header.
	if resp.StatusCode != http.StatusForbidden {
		return nil
	}
	raw := strings.TrimSpace(resp.Header.Get("X-RateLimit-Remaining"))
	remaining, err := strconv.Atoi(raw)
	if err != nil || remaining != 0 {
		return nil
	}
	return &RateLimitError{StatusError: statusErr, Remaining: &remaining}
}

// IsStatus reports whether err carries a StatusError with the given code.
func IsStatus(err error, code int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode == code
}
