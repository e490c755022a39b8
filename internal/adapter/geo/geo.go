// Package geo resolves the city of a visitor IP address using the ipinfo.io API.
package geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	DefaultBaseURL = "https://ipinfo.io"
	defaultTimeout = 2 * time.Second
)

// ErrCityUnknown is returned when the lookup succeeds but carries no city.
var ErrCityUnknown = errors.New("city unknown")

type Option func(*Locator)

func WithBaseURL(baseURL string) Option {
	return func(l *Locator) {
		if baseURL != "" {
			l.baseURL = strings.TrimRight(baseURL, "/")
		}
	}
}

func WithToken(token string) Option {
	return func(l *Locator) {
		l.token = token
	}
}

func WithTimeout(d time.Duration) Option {
	return func(l *Locator) {
		if d > 0 {
			l.timeout = d
		}
	}
}

func WithHTTPClient(c *http.Client) Option {
	return func(l *Locator) {
		l.client = c
	}
}

type Locator struct {
	client  *http.Client
	baseURL string
	token   string
	timeout time.Duration
}

func New(opts ...Option) *Locator {
	l := &Locator{
		client:  http.DefaultClient,
		baseURL: DefaultBaseURL,
		timeout: defaultTimeout,
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

type ipInfo struct {
	City  string `json:"city"`
	Bogon bool   `json:"bogon"`
}

// City returns the city ip is located in. An empty ip looks up the caller of the API.
func (l *Locator) City(ctx context.Context, ip string) (string, error) {
	const op = "adapter.geo.Locator.City"

	endpoint := l.baseURL + "/json"
	if ip != "" {
		endpoint = l.baseURL + "/" + url.PathEscape(ip) + "/json"
	}

	if l.token != "" {
		endpoint += "?token=" + url.QueryEscape(l.token)
	}

	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("%s: failed to build request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := l.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%s: failed to send request: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%s: unexpected status code: %d", op, resp.StatusCode)
	}

	var info ipInfo

	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return "", fmt.Errorf("%s: failed to decode response: %w", op, err)
	}

	if info.Bogon || info.City == "" {
		return "", fmt.Errorf("%s: %w", op, ErrCityUnknown)
	}

	return info.City, nil
}
