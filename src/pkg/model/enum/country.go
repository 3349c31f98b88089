package enum

type CountryCode string

const (
	CountryIndia CountryCode = "IN"
	CountryUS    CountryCode = "US"
	CountryUK    CountryCode = "UK"
	CountryUAE   CountryCode = "AE"
)

func (c CountryCode) String() string {
	return string(c)
}

type CurrencyCode string

const (
	CurrencyINR CurrencyCode = "INR"
	CurrencyUSD CurrencyCode = "USD"
	CurrencyGBP CurrencyCode = "GBP"
	CurrencyAED CurrencyCode = "AED"
)

func (c CurrencyCode) String() string {
	return string(c)
}
