package feed

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/korunafx/koruna/label"
	"github.com/shopspring/decimal"
)

var decimalComparer = cmp.Comparer(func(a, b decimal.Decimal) bool {
	return a.Equal(b)
})

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()

	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("decimal.NewFromString(%q): %v", s, err)
	}

	return d
}

func TestParseRates(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		content  string
		symbols  []label.Symbol
		expected []ExchangeRate
	}{
		{
			name:    "test_single_record",
			content: "Some Name|CZK|100|USD|21.345",
			symbols: []label.Symbol{label.USD},
			expected: []ExchangeRate{
				{symbol: label.USD, amount: 100, rate: decimal.RequireFromString("21.345")},
			},
		},
		{
			name: "test_line_order_kept",
			content: "dollar|USD|1|USD|21.345\n" +
				"euro|EUR|1|EUR|24.170\n" +
				"yen|JPY|100|JPY|14.720",
			symbols: []label.Symbol{label.JPY, label.USD, label.EUR},
			expected: []ExchangeRate{
				{symbol: label.USD, amount: 1, rate: decimal.RequireFromString("21.345")},
				{symbol: label.EUR, amount: 1, rate: decimal.RequireFromString("24.170")},
				{symbol: label.JPY, amount: 100, rate: decimal.RequireFromString("14.720")},
			},
		},
		{
			name: "test_unrequested_code_skipped",
			content: "dollar|USD|1|USD|21.345\n" +
				"euro|EUR|1|EUR|24.170",
			symbols: []label.Symbol{label.EUR},
			expected: []ExchangeRate{
				{symbol: label.EUR, amount: 1, rate: decimal.RequireFromString("24.170")},
			},
		},
		{
			name:     "test_code_length_two_skipped",
			content:  "A|B|100|US|21.345",
			symbols:  []label.Symbol{label.USD, label.Symbol("US")},
			expected: nil,
		},
		{
			name:     "test_wrong_field_count_skipped",
			content:  "A|B|100|USD|21.345|extra\nA|100|USD|21.345",
			symbols:  []label.Symbol{label.USD},
			expected: nil,
		},
		{
			name:     "test_bad_amount_skipped",
			content:  "A|B|1oo|USD|21.345\nA|B|1.5|USD|21.345\nA|B|0|USD|21.345\nA|B|-1|USD|21.345",
			symbols:  []label.Symbol{label.USD},
			expected: nil,
		},
		{
			name:     "test_bad_rate_skipped",
			content:  "A|B|100|USD|21,345\nA|B|100|USD|\nA|B|100|USD|-0.5",
			symbols:  []label.Symbol{label.USD},
			expected: nil,
		},
		{
			name: "test_headers_and_blank_lines_skipped",
			content: "24 Aug 2026 #163\n" +
				"country|currency|amount|code|rate\n" +
				"\n" +
				"USA|dollar|1|USD|21.345\n",
			symbols: []label.Symbol{label.USD},
			expected: []ExchangeRate{
				{symbol: label.USD, amount: 1, rate: decimal.RequireFromString("21.345")},
			},
		},
		{
			name:    "test_crlf_lines",
			content: "USA|dollar|1|USD|21.345\r\nEMU|euro|1|EUR|24.170\r\n",
			symbols: []label.Symbol{label.USD, label.EUR},
			expected: []ExchangeRate{
				{symbol: label.USD, amount: 1, rate: decimal.RequireFromString("21.345")},
				{symbol: label.EUR, amount: 1, rate: decimal.RequireFromString("24.170")},
			},
		},
		{
			name:    "test_duplicate_code_yields_both",
			content: "USA|dollar|1|USD|21.345\nUSA|dollar|1|USD|21.400",
			symbols: []label.Symbol{label.USD},
			expected: []ExchangeRate{
				{symbol: label.USD, amount: 1, rate: decimal.RequireFromString("21.345")},
				{symbol: label.USD, amount: 1, rate: decimal.RequireFromString("21.400")},
			},
		},
		{
			name:    "test_no_inversion",
			content: "EMU|euro|1|EUR|24.170",
			symbols: []label.Symbol{label.CZK},
			// CZK per EUR is declared, CZK itself is not; nothing may be derived
			expected: nil,
		},
		{
			name:     "test_field_spaces_not_trimmed",
			content:  "USA|dollar| 1 | USD | 21.345 ",
			symbols:  []label.Symbol{label.USD},
			expected: nil,
		},
		{
			name:     "test_empty_symbols",
			content:  "USA|dollar|1|USD|21.345",
			symbols:  nil,
			expected: nil,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseRates(tc.content, tc.symbols)
			if err != nil {
				t.Fatalf("ParseRates: unexpected error: %v", err)
			}

			if diff := cmp.Diff(tc.expected, got, cmp.AllowUnexported(ExchangeRate{}), decimalComparer); diff != "" {
				t.Errorf("mismatch (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestParseRates_EmptyContent(t *testing.T) {
	t.Parallel()

	if _, err := ParseRates("", []label.Symbol{label.USD}); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("ParseRates(\"\"): got %v, want ErrInvalidArgument", err)
	}
}

func TestParseRates_FullPrecision(t *testing.T) {
	t.Parallel()

	got, err := ParseRates("X|Y|100|IDR|0.00000000000000000001", []label.Symbol{label.Symbol("IDR")})
	if err != nil {
		t.Fatalf("ParseRates: unexpected error: %v", err)
	}

	if len(got) != 1 {
		t.Fatalf("ParseRates: got %d rates, want 1", len(got))
	}

	if want := mustDecimal(t, "0.00000000000000000001"); !got[0].Rate().Equal(want) {
		t.Errorf("rate = %s, want %s", got[0].Rate(), want)
	}
}
