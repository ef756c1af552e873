package feed

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/korunafx/koruna/label"
	"github.com/shopspring/decimal"
)

// Field layout of one feed record. The two leading fields are opaque and
// never read:
// ?|?|amount|code|rate
const (
	fieldAmount = 2
	fieldCode   = 3
	fieldRate   = 4
	fieldNum    = 5
)

// ParseRates extracts the rates declared in content for the requested symbols,
// in line order. Content is a pipe-delimited text feed, one record per line.
//
// Lines that are not well-formed records are skipped silently: the feed is
// third-party and carries headers, blank lines and unrelated rows. A line
// yields a rate only if it has exactly five fields, its code field is three
// characters long and present in symbols, its amount field is a positive
// integer and its rate field is a non-negative decimal.
//
// ParseRates never derives a rate: only directly declared codes appear in the
// result. Empty content returns ErrInvalidArgument; an empty symbol set
// returns an empty result
func ParseRates(content string, symbols []label.Symbol) ([]ExchangeRate, error) {
	if content == "" {
		return nil, fmt.Errorf("%w: content is empty", ErrInvalidArgument)
	}

	requested := make(map[label.Symbol]struct{}, len(symbols))
	for _, s := range symbols {
		requested[s] = struct{}{}
	}

	var list []ExchangeRate

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSuffix(line, "\r")

		fields := strings.Split(line, "|")
		if len(fields) != fieldNum || len(fields[fieldCode]) != 3 {
			continue
		}

		symbol := label.Symbol(fields[fieldCode])
		if _, ok := requested[symbol]; !ok {
			continue
		}

		amount, err := strconv.Atoi(fields[fieldAmount])
		if err != nil || amount <= 0 {
			continue
		}

		rate, err := decimal.NewFromString(fields[fieldRate])
		if err != nil || rate.Sign() < 0 {
			continue
		}

		list = append(list, ExchangeRate{symbol: symbol, amount: amount, rate: rate})
	}

	return list, nil
}
