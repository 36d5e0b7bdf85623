// Package appcenter is a minimal client for the App Center distribution API.
// It covers the two endpoints needed to build a provisioning device list:
// listing the distribution groups of an app and downloading a group's devices.
package appcenter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/arthur-debert/appcenter-devices/internal/version"
	"github.com/arthur-debert/appcenter-devices/pkg/logging"
	"github.com/arthur-debert/appcenter-devices/pkg/types"
)

const (
	// DefaultBaseURL is the public App Center API
	DefaultBaseURL = "https://api.appcenter.ms/v0.1"

	defaultTimeout = 30 * time.Second
	tokenHeader    = "X-API-Token"
)

// Config configures a Client
type Config struct {
	BaseURL  string
	APIToken string
	Timeout  time.Duration

	// HTTPClient replaces the default client; Timeout is ignored when set.
	HTTPClient *http.Client
}

// Client talks to the App Center REST API.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// HTTPStatusError is returned for non-2xx responses
type HTTPStatusError struct {
	Status int
	URL    string
	Body   string
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("appcenter api error %d: %s", e.Status, strings.TrimSpace(e.Body))
}

// IsUnauthorized reports whether the API rejected the token
func (e *HTTPStatusError) IsUnauthorized() bool {
	return e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden
}

// NewClient creates a client. An empty token is accepted; App Center rejects
// the requests and the authorization error surfaces from the call.
func NewClient(cfg Config) (*Client, error) {
	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("invalid base url %q: %w", baseURL, err)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      cfg.APIToken,
		httpClient: httpClient,
	}, nil
}

// DistributionGroups lists the distribution groups of an app in service order
func (c *Client) DistributionGroups(ctx context.Context, owner, app string) ([]types.DistributionGroup, error) {
	var groups []types.DistributionGroup
	if err := c.getJSON(ctx, groupsPath(owner, app), &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

// DownloadDevicesList returns the raw tab-separated device export of a group.
// The group name is escaped as a single path segment.
func (c *Client) DownloadDevicesList(ctx context.Context, owner, app, group string) ([]byte, error) {
	return c.getBytes(ctx, devicesListPath(owner, app, group), "text/csv")
}

func groupsPath(owner, app string) string {
	return fmt.Sprintf("/apps/%s/%s/distribution_groups", url.PathEscape(owner), url.PathEscape(app))
}

func devicesListPath(owner, app, group string) string {
	return fmt.Sprintf("%s/%s/devices/download_devices_list", groupsPath(owner, app), url.PathEscape(group))
}

func (c *Client) getJSON(ctx context.Context, path string, dest any) error {
	payload, err := c.getBytes(ctx, path, "application/json")
	if err != nil {
		return err
	}
	if err := json.Unmarshal(payload, dest); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

func (c *Client) getBytes(ctx context.Context, path, accept string) ([]byte, error) {
	logger := logging.GetLogger("appcenter.client")

	// Paths are pre-escaped, so concatenate instead of url.JoinPath which
	// would escape the percent signs again.
	endpoint := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set(tokenHeader, c.token)
	req.Header.Set("Accept", accept)
	req.Header.Set("User-Agent", version.UserAgent())

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", endpoint, err)
	}

	logger.Debug().
		Str("url", endpoint).
		Int("status", resp.StatusCode).
		Int("bytes", len(payload)).
		Dur("duration", time.Since(start)).
		Msg("App Center request")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &HTTPStatusError{Status: resp.StatusCode, URL: endpoint, Body: string(payload)}
	}

	return payload, nil
}
