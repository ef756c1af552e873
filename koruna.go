// Package koruna returns currency exchange rates exactly as declared by two
// remote pipe-delimited text feeds. Rates are never inverted or derived
// across currencies: if a feed does not declare a code, koruna does not
// return it.
package koruna

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/korunafx/koruna/feed"
	"github.com/korunafx/koruna/feed/httputil"
	"github.com/korunafx/koruna/label"
)

type Option func(*Provider)

// WithRequestTimeout bounds a whole GetRates call, both feed requests
// included. Zero means no timeout
func WithRequestTimeout(t time.Duration) Option {
	return func(p *Provider) {
		p.requestTimeout = t
	}
}

// WithFetcher replaces the HTTP fetcher with a custom one
func WithFetcher(f feed.Fetcher) Option {
	return func(p *Provider) {
		p.fetcher = f
	}
}

// Provider serves rates from a primary "common" feed with a fallback "other"
// feed. Immutable after construction; safe for concurrent GetRates calls as
// long as its fetcher is
type Provider struct {
	fetcher        feed.Fetcher
	commonURL      string
	otherURL       string
	requestTimeout time.Duration
}

// New return provider for the given feed URLs. Both URLs must be non-empty;
// violations are reported together. A nil client selects the preconfigured
// transport
func New(client *http.Client, commonURL, otherURL string, opts ...Option) (*Provider, error) {
	var merr *multierror.Error

	if commonURL == "" {
		merr = multierror.Append(merr, fmt.Errorf("%w: common feed url is empty", feed.ErrInvalidArgument))
	}

	if otherURL == "" {
		merr = multierror.Append(merr, fmt.Errorf("%w: other feed url is empty", feed.ErrInvalidArgument))
	}

	if err := merr.ErrorOrNil(); err != nil {
		return nil, err
	}

	p := &Provider{
		commonURL: commonURL,
		otherURL:  otherURL,
	}

	if client == nil {
		p.fetcher = httputil.DefaultFeedHTTPClient()
	} else {
		p.fetcher = httputil.NewHTTPClient(client)
	}

	for _, opt := range opts {
		opt(p)
	}

	return p, nil
}

// GetRates returns the declared rates for the requested symbols in
// feed-encounter order, common feed first. An empty symbol set returns an
// empty result without touching the network.
//
// The other feed is queried only when the common feed yields fewer rates
// than symbols were requested. That is a count heuristic, not a check of
// which symbols are missing: duplicates or extras in the common feed can
// mask a shortfall, and the other feed may be queried in vain. Rates found
// in both feeds are returned twice, common feed's entry first.
//
// Any fetch or parse failure aborts the call with no partial result; a
// failure on the common feed means the other feed is never contacted
func (p *Provider) GetRates(ctx context.Context, symbols []label.Symbol) ([]feed.ExchangeRate, error) {
	if len(symbols) == 0 {
		return nil, nil
	}

	if p.requestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.requestTimeout)
		defer cancel()
	}

	rates, err := p.fetchRates(ctx, p.commonURL, symbols)
	if err != nil {
		return nil, fmt.Errorf("common feed: %w", err)
	}

	if len(symbols) > len(rates) {
		other, err := p.fetchRates(ctx, p.otherURL, symbols)
		if err != nil {
			return nil, fmt.Errorf("other feed: %w", err)
		}

		rates = append(rates, other...)
	}

	return rates, nil
}

func (p *Provider) fetchRates(ctx context.Context, url string, symbols []label.Symbol) ([]feed.ExchangeRate, error) {
	b, err := p.fetcher.Get(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetching: %w", err)
	}

	rates, err := feed.ParseRates(string(b), symbols)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	return rates, nil
}
