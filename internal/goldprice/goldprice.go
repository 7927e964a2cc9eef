// Package goldprice fetches the current gold spot price from a configured
// HTTP endpoint, with a single-slot time-windowed cache and an externally
// configured override that bypasses the network entirely.
package goldprice

import (
	"context"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
	"golang.org/x/sync/singleflight"

	"goldshop/internal/observability"
)

const maxResponseBytes = 1 << 20

var (
	ErrNotConfigured = eris.New("gold price endpoint is not configured")
	ErrBadPayload    = eris.New("gold price response is missing a numeric price field")
)

// Config controls the gold price provider.
type Config struct {
	// URL is the spot price endpoint. Required unless MockPrice is set.
	URL string
	// APIKey, when set, is attached to every request under APIHeader.
	APIKey    string
	APIHeader string // defaults to X-API-KEY
	// MockPrice, when parseable as a finite number, supersedes network
	// fetching on every call while set.
	MockPrice string
}

// HTTPClient describes the HTTP client used for upstream calls.
//
//go:generate mockgen -package=goldprice_test -destination=mock_http_client_test.go -source=goldprice.go HTTPClient
type HTTPClient interface {
	Do(ctx context.Context, req *http.Request) (*http.Response, error)
}

// Provider serves the spot price from the cache, the override, or the
// upstream API, in that order. Concurrent cache misses are coalesced so at
// most one upstream request is in flight at a time.
type Provider struct {
	cfg    Config
	client HTTPClient
	cache  *SpotCache
	sf     singleflight.Group
}

func New(cfg Config, client HTTPClient, cache *SpotCache) *Provider {
	if cfg.APIHeader == "" {
		cfg.APIHeader = "X-API-KEY"
	}
	return &Provider{cfg: cfg, client: client, cache: cache}
}

// Spot returns the current gold price per gram in currency units.
func (p *Provider) Spot(ctx context.Context) (float64, error) {
	if v, ok := p.cache.Get(); ok {
		observability.SpotCacheHits.Inc()
		return v, nil
	}
	observability.SpotCacheMisses.Inc()

	v, err, _ := p.sf.Do("spot", func() (any, error) {
		// Another caller may have refreshed the slot while we waited.
		if v, ok := p.cache.Get(); ok {
			return v, nil
		}
		return p.refresh(ctx)
	})
	if err != nil {
		return 0, err
	}
	return v.(float64), nil
}

func (p *Provider) refresh(ctx context.Context) (float64, error) {
	if v, ok := parseFinite(p.cfg.MockPrice); ok {
		observability.SpotOverrideHits.Inc()
		p.cache.Put(v)
		return v, nil
	}
	if p.cfg.URL == "" {
		return 0, ErrNotConfigured
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.cfg.URL, nil)
	if err != nil {
		return 0, eris.Wrap(err, "build gold price request")
	}
	if p.cfg.APIKey != "" {
		req.Header.Set(p.cfg.APIHeader, p.cfg.APIKey)
	}

	resp, err := p.client.Do(ctx, req)
	if err != nil {
		observability.SpotFetchErrors.Inc()
		return 0, eris.Wrap(err, "fetch gold price")
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		observability.SpotFetchErrors.Inc()
		return 0, eris.Errorf("GET %s -> %d", p.cfg.URL, resp.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		observability.SpotFetchErrors.Inc()
		return 0, eris.Wrap(err, "read gold price response")
	}

	price, ok := Extract(body)
	if !ok || !isFinite(price) {
		observability.SpotFetchErrors.Inc()
		return 0, ErrBadPayload
	}
	observability.SpotFetches.Inc()
	p.cache.Put(price)
	return price, nil
}

func parseFinite(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || !isFinite(v) {
		return 0, false
	}
	return v, true
}

func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
