package feed

import (
	"context"
	"errors"
	"fmt"

	"github.com/korunafx/koruna/label"
	"github.com/shopspring/decimal"
)

// ErrInvalidArgument is returned before any I/O when a required argument is
// missing, such as an empty feed URL or empty feed content
var ErrInvalidArgument = errors.New("invalid argument")

// Fetcher is an interface for downloading raw feed content. Fetcher takes care
// of a single network attempt and gives back the response body as-is
//
//go:generate mockgen -source feed.go -destination mock_feed.go -package feed
type Fetcher interface {
	// Get performs exactly one request for the given url and returns the body
	Get(ctx context.Context, url string) ([]byte, error)
}

// FetchError reports a failed fetch of a single feed. It carries the URL that
// was requested and wraps the transport-level cause
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// ExchangeRate is a single source-declared quotation: amount units of the
// quoted currency are worth rate units of the feed's implicit home currency.
// The home currency is a feed-wide convention and is not modeled here
type ExchangeRate struct {
	symbol label.Symbol
	amount int
	rate   decimal.Decimal
}

// NewExchangeRate returns an immutable rate value
func NewExchangeRate(symbol label.Symbol, amount int, rate decimal.Decimal) ExchangeRate {
	return ExchangeRate{symbol: symbol, amount: amount, rate: rate}
}

func (r ExchangeRate) Symbol() label.Symbol {
	return r.symbol
}

func (r ExchangeRate) Amount() int {
	return r.amount
}

func (r ExchangeRate) Rate() decimal.Decimal {
	return r.rate
}

func (r ExchangeRate) String() string {
	return fmt.Sprintf("%d %s = %s", r.amount, r.symbol, r.rate.String())
}
