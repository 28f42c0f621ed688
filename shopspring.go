package money

import (
	"fmt"

	"github.com/govalues/decimal"
	shopspring "github.com/shopspring/decimal"
)

// NewMoneyFromShopspring converts a [shopspring.Decimal] to an amount of the
// given currency. It lets applications that keep amounts in
// github.com/shopspring/decimal hand them over without going through float64.
//
// NewMoneyFromShopspring returns an error if the value cannot be represented
// exactly, that is if it has more than [decimal.MaxPrec] significant digits
// or more than [decimal.MaxScale] digits after the decimal point.
// Such an error wraps [ErrInexact].
func NewMoneyFromShopspring(amount shopspring.Decimal, curr *Currency) (Money, error) {
	d, err := decimal.Parse(amount.String())
	if err != nil {
		return Money{}, fmt.Errorf("converting %v: %w: %w", amount, ErrInexact, err)
	}
	if !toShopspring(d).Equal(amount) {
		return Money{}, fmt.Errorf("converting %v: %w", amount, ErrInexact)
	}
	return newMoney(curr, d), nil
}

// Shopspring returns the amount as a [shopspring.Decimal].
// The conversion is exact.
func (m Money) Shopspring() shopspring.Decimal {
	return toShopspring(m.value)
}

// toShopspring converts a decimal without loss.
// shopspring.Decimal has an arbitrary-precision coefficient, so the
// conversion can never fail.
func toShopspring(d decimal.Decimal) shopspring.Decimal {
	return shopspring.RequireFromString(d.String())
}
