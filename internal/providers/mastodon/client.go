// Package mastodon fetches instance activity from a Mastodon server.
package mastodon

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/net/http/httpguts"

	"aquarium/internal/domain"
	"aquarium/internal/infra"
)

// ActivityPath is the public endpoint reporting weekly instance activity.
const ActivityPath = "/api/v1/instance/activity"

var (
	// ErrMissingBaseURL indicates that the client was configured without an instance URL.
	ErrMissingBaseURL = errors.New("mastodon: base url is required")
	// ErrMissingUserAgent indicates that the client was configured without a user agent.
	ErrMissingUserAgent = errors.New("mastodon: user agent is required")
	// ErrInvalidHeader indicates a configured value cannot be sent as a header.
	ErrInvalidHeader = errors.New("mastodon: invalid header value")
)

// Options configures the Mastodon client.
type Options struct {
	BaseURL    string
	UserAgent  string
	HTTPClient *http.Client
	Logger     *infra.Logger
}

// Client performs a single blocking GET against a Mastodon instance.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	logger     *infra.Logger
}

// NewClient validates the options and constructs a client. Invalid options
// are reported as Configuration errors before any network I/O.
func NewClient(opts Options) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if baseURL == "" {
		return nil, domain.Wrap(domain.KindConfiguration, "mastodon: new client", ErrMissingBaseURL)
	}
	if opts.UserAgent == "" {
		return nil, domain.Wrap(domain.KindConfiguration, "mastodon: new client", ErrMissingUserAgent)
	}
	if !httpguts.ValidHeaderFieldValue(opts.UserAgent) {
		return nil, domain.Wrap(domain.KindConfiguration, "mastodon: new client",
			fmt.Errorf("%w: User-Agent %q", ErrInvalidHeader, opts.UserAgent))
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	var logger *infra.Logger
	if opts.Logger != nil {
		logger = opts.Logger
	} else {
		discard := zerolog.New(io.Discard)
		l := infra.Logger(discard)
		logger = &l
	}
	return &Client{
		baseURL:    baseURL,
		userAgent:  opts.UserAgent,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// Endpoint returns the activity URL the client calls.
func (c *Client) Endpoint() string {
	return c.baseURL + ActivityPath
}

// FetchActivity issues exactly one GET and decodes the weekly history in the
// order the instance returned it. It does not retry.
func (c *Client) FetchActivity(ctx context.Context) (domain.ActivityHistory, error) {
	endpoint := c.Endpoint()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, domain.Wrap(domain.KindConfiguration, "mastodon: build request", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domain.Wrap(domain.KindExternalRequest, "mastodon: http request", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.Wrap(domain.KindExternalRequest, "mastodon: read response", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, domain.Wrap(domain.KindExternalRequest, "mastodon: response",
			fmt.Errorf("status %d: %s", resp.StatusCode, truncate(strings.TrimSpace(string(raw)), 200)))
	}

	var history domain.ActivityHistory
	if err := json.Unmarshal(raw, &history); err != nil {
		return nil, domain.Wrap(domain.KindParsing, "mastodon: decode response", err)
	}
	c.logger.Debug().
		Str("url", endpoint).
		Int("weeks", len(history)).
		Msg("mastodon: fetched instance activity")
	return history, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "…"
}
