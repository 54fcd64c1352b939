package domain

// Currency selects the cryptocurrency variant of the packaged library.
type Currency string

const (
	// CurrencyBCH builds the Bitcoin Cash variant.
	CurrencyBCH Currency = "BCH"
	// CurrencyBTC builds the Bitcoin variant.
	CurrencyBTC Currency = "BTC"
)

// Currencies returns the variants built for every retained configuration,
// in the order their derived configurations appear in the output matrix.
func Currencies() []Currency {
	return []Currency{CurrencyBCH, CurrencyBTC}
}

func (c Currency) String() string {
	return string(c)
}
