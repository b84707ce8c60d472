package queuetimes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// DefaultURL is the queue-times.com feed for Disneyland (park 16).
const DefaultURL = "https://queue-times.com/parks/16/queue_times.json"

const (
	defaultUserAgent = "queueboard/0.1"
	requestTimeout   = 10 * time.Second
)

var (
	// ErrNetwork covers transport failures and non-2xx responses.
	ErrNetwork = errors.New("network error")
	// ErrParse covers malformed JSON and payloads missing expected fields.
	ErrParse = errors.New("parse error")
)

// ParkFetcher fetches a park payload. *Client implements it.
type ParkFetcher interface {
	FetchPark(ctx context.Context) (*Park, error)
}

var _ ParkFetcher = (*Client)(nil)

// Client talks to the queue-times.com JSON API.
type Client struct {
	url       *url.URL
	http      *http.Client
	userAgent string
	logger    *zap.Logger
}

// NewClient builds a Client for rawURL. A zero timeout uses the package
// default and a nil logger discards output.
func NewClient(rawURL string, timeout time.Duration, logger *zap.Logger) (*Client, error) {
	u, err := parseFeedURL(rawURL)
	if err != nil {
		return nil, err
	}
	if timeout <= 0 {
		timeout = requestTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		url:       u,
		http:      &http.Client{Timeout: timeout},
		userAgent: defaultUserAgent,
		logger:    logger,
	}, nil
}

// URL returns the feed URL the client requests.
func (c *Client) URL() string {
	if c == nil || c.url == nil {
		return ""
	}
	return c.url.String()
}

// FetchPark performs one GET against the feed and decodes the payload.
// Errors wrap ErrNetwork or ErrParse. Nothing is retried.
func (c *Client) FetchPark(ctx context.Context) (*Park, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	start := time.Now()
	park, err := c.fetch(ctx)
	elapsed := time.Since(start)
	if err != nil {
		c.logger.Warn("queue times fetch failed",
			zap.String("url", c.URL()),
			zap.Duration("elapsed", elapsed),
			zap.Error(err),
		)
		return nil, err
	}
	c.logger.Info("queue times fetched",
		zap.String("url", c.URL()),
		zap.Int("lands", len(park.Lands)),
		zap.Int("open_rides", park.OpenRides()),
		zap.Duration("elapsed", elapsed),
	)
	return park, nil
}

func (c *Client) fetch(ctx context.Context) (*Park, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %w", ErrNetwork, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: execute request: %w", ErrNetwork, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: %s returned status %d", ErrNetwork, c.url.Path, resp.StatusCode)
	}

	var park Park
	if err := json.NewDecoder(resp.Body).Decode(&park); err != nil {
		return nil, fmt.Errorf("%w: decode response: %w", ErrParse, err)
	}
	if park.Lands == nil {
		return nil, fmt.Errorf("%w: payload has no lands", ErrParse)
	}
	return &park, nil
}

func parseFeedURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = DefaultURL
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse feed url %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("feed url %q: scheme must be http or https", raw)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("feed url %q: missing host", raw)
	}
	u.Fragment = ""
	return u, nil
}
