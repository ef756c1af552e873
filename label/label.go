package label

// Symbol is a three-letter uppercase currency code, ISO 4217 style.
// Two symbols are equal iff their codes match case-sensitively
type Symbol string

func (s Symbol) String() string {
	return string(s)
}

// IsValid reports whether the symbol is exactly three uppercase latin letters
func (s Symbol) IsValid() bool {
	if len(s) != 3 {
		return false
	}

	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}

	return true
}

// Commonly requested symbols. The set is not exhaustive: any caller-made
// Symbol is accepted everywhere a Symbol is
const (
	AUD Symbol = "AUD"
	BGN Symbol = "BGN"
	BRL Symbol = "BRL"
	CAD Symbol = "CAD"
	CHF Symbol = "CHF"
	CNY Symbol = "CNY"
	CZK Symbol = "CZK"
	DKK Symbol = "DKK"
	EUR Symbol = "EUR"
	GBP Symbol = "GBP"
	HKD Symbol = "HKD"
	HUF Symbol = "HUF"
	IDR Symbol = "IDR"
	ILS Symbol = "ILS"
	INR Symbol = "INR"
	ISK Symbol = "ISK"
	JPY Symbol = "JPY"
	KRW Symbol = "KRW"
	MXN Symbol = "MXN"
	MYR Symbol = "MYR"
	NOK Symbol = "NOK"
	NZD Symbol = "NZD"
	PHP Symbol = "PHP"
	PLN Symbol = "PLN"
	RON Symbol = "RON"
	SEK Symbol = "SEK"
	SGD Symbol = "SGD"
	THB Symbol = "THB"
	TRY Symbol = "TRY"
	USD Symbol = "USD"
	XDR Symbol = "XDR"
	ZAR Symbol = "ZAR"
)
