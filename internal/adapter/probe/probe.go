// Package probe checks that a submitted long URL is reachable before it is shortened.
package probe

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/vadimbarashkov/shorty/internal/entity"
)

const (
	defaultTimeout   = 5 * time.Second
	defaultUserAgent = "shorty-probe/1.0"
	maxDrainBytes    = 4 << 10
)

type Option func(*Prober)

func WithTimeout(d time.Duration) Option {
	return func(p *Prober) {
		if d > 0 {
			p.timeout = d
		}
	}
}

func WithUserAgent(ua string) Option {
	return func(p *Prober) {
		if ua != "" {
			p.userAgent = ua
		}
	}
}

func WithHTTPClient(c *http.Client) Option {
	return func(p *Prober) {
		p.client = c
	}
}

// Prober issues a GET request to a URL. Any HTTP response, whatever its status,
// means the URL is reachable.
type Prober struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

func New(opts ...Option) *Prober {
	p := &Prober{
		client:    http.DefaultClient,
		timeout:   defaultTimeout,
		userAgent: defaultUserAgent,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

func (p *Prober) Probe(ctx context.Context, rawURL string) error {
	const op = "adapter.probe.Prober.Probe"

	u, err := url.ParseRequestURI(rawURL)
	if err != nil {
		return fmt.Errorf("%s: %w: %w", op, entity.ErrURLMalformed, err)
	}

	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%s: %w: unsupported url %q", op, entity.ErrURLMalformed, rawURL)
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("%s: %w: %w", op, entity.ErrURLMalformed, err)
	}
	req.Header.Set("User-Agent", p.userAgent)

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w: %w", op, entity.ErrURLUnreachable, err)
	}
	defer resp.Body.Close()

	io.Copy(io.Discard, io.LimitReader(resp.Body, maxDrainBytes))

	return nil
}
