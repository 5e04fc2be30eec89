package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// currencyExponents maps ISO 4217 currency codes to their decimal exponent.
// Currencies not listed use the default exponent of 2.
var currencyExponents = map[string]int{
	"BHD": 3,
	"IQD": 3,
	"JOD": 3,
	"KWD": 3,
	"LYD": 3,
	"OMR": 3,
	"TND": 3,
	"BIF": 0,
	"CLP": 0,
	"DJF": 0,
	"GNF": 0,
	"ISK": 0,
	"JPY": 0,
	"KMF": 0,
	"KRW": 0,
	"PYG": 0,
	"RWF": 0,
	"UGX": 0,
	"VND": 0,
	"VUV": 0,
	"XAF": 0,
	"XOF": 0,
	"XPF": 0,
}

// Amount is a monetary value carried as an exact decimal plus its ISO 4217
// currency code. The wire format wants integer minor units, never floats.
type Amount struct {
	Value    decimal.Decimal
	Currency string
}

// NewAmount parses a decimal amount string (e.g. "7.45") with its currency code.
func NewAmount(value, currency string) (Amount, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Amount{}, WrapError(ErrorCodeRequestInvalid, "invalid amount", err)
	}
	return Amount{
		Value:    d,
		Currency: strings.ToUpper(currency),
	}, nil
}

// Exponent returns the currency's decimal exponent (e.g. 2 for GBP, 0 for JPY).
func (a Amount) Exponent() int {
	if exp, ok := currencyExponents[a.Currency]; ok {
		return exp
	}
	return 2
}

// MinorUnits returns the amount as an integer count of the currency's minor
// unit, e.g. 7.45 GBP -> 745.
func (a Amount) MinorUnits() int64 {
	return a.Value.Shift(int32(a.Exponent())).Round(0).IntPart()
}

// IsZero reports whether no amount has been set.
func (a Amount) IsZero() bool {
	return a.Currency == "" && a.Value.IsZero()
}
