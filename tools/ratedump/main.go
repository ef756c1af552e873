// Ratedump fetches the declared rates for the requested currency codes and
// prints them one per line. Intended for eyeballing feed contents, not for
// scripting
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/korunafx/koruna"
	"github.com/korunafx/koruna/internal/logging"
	"github.com/korunafx/koruna/label"
)

const defaultRequestTimeout = 10 * time.Second

var flagDump = flag.NewFlagSet("flagdump", flag.ContinueOnError)

var (
	commonURL  = flagDump.String("common", "", "URL of the common currencies feed")
	otherURL   = flagDump.String("other", "", "URL of the other currencies feed")
	currencies = flagDump.String("currencies", "", "comma separated currency codes, ex: USD,EUR,JPY")
	timeout    = flagDump.Duration("timeout", defaultRequestTimeout, "timeout for the whole fetch")
)

func main() {
	ctx := logging.WithLogger(context.Background(), logging.NewLogger("Ratedump: ", log.Lmsgprefix))
	logger := logging.FromContext(ctx)

	if err := flagDump.Parse(os.Args[1:]); err != nil {
		logger.Fatalf("flag parse: %v", err)
	}

	symbols, err := parseSymbols(*currencies)
	if err != nil {
		logger.Fatalf("bad -currencies: %v", err)
	}

	if len(symbols) == 0 {
		logger.Fatal("use -currencies <codes> comma separated currency codes")
	}

	if err := realMain(ctx, symbols); err != nil {
		logger.Fatal(err)
	}
}

func realMain(ctx context.Context, symbols []label.Symbol) error {
	p, err := koruna.New(nil, *commonURL, *otherURL, koruna.WithRequestTimeout(*timeout))
	if err != nil {
		return fmt.Errorf("create provider: %w", err)
	}

	rates, err := p.GetRates(ctx, symbols)
	if err != nil {
		return fmt.Errorf("get rates: %w", err)
	}

	for _, r := range rates {
		fmt.Println(r)
	}

	return nil
}

func parseSymbols(s string) ([]label.Symbol, error) {
	var merr *multierror.Error
	var symbols []label.Symbol

	for _, token := range strings.Split(s, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}

		symbol := label.Symbol(strings.ToUpper(token))
		if !symbol.IsValid() {
			merr = multierror.Append(merr, fmt.Errorf("%q is not a currency code", token))
			continue
		}

		symbols = append(symbols, symbol)
	}

	return symbols, merr.ErrorOrNil()
}
