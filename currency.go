package money

import (
	"errors"
	"fmt"
	"strings"

	"github.com/govalues/decimal"
)

//go:generate go run scripts/currency/codegen.go

const (
	// DefaultDigits is the number of fractional digits used by most currencies.
	DefaultDigits = 2

	// MaxDigits is the largest number of fractional digits a currency can use.
	// It leaves room for at least one integer digit in a [decimal.Decimal].
	MaxDigits = decimal.MaxScale - 1
)

// ErrInvalidCurrency is returned when a currency descriptor cannot be
// constructed or resolved.
var ErrInvalidCurrency = errors.New("invalid currency")

// Currency type describes how amounts of a currency are identified and
// displayed. It does not carry any exchange rate information.
//
// A Currency is immutable after construction and is meant to be created once
// and shared by pointer between all [Money] values denominated in it.
// This makes it safe for concurrent use by multiple goroutines.
//
// A nil *Currency behaves as [XXX], which indicates an unknown currency.
type Currency struct {
	name   string // English name
	code   string // ISO 4217 3-letter code
	symbol string // display glyph, empty if absent
	digits int    // fractional digits used for display
}

// NewCurrency returns a currency descriptor with the given properties.
// An empty symbol means that the currency has no symbol and amounts are
// displayed with the code instead. Use [DefaultDigits] for the common case.
// The code is stored in upper case.
//
// NewCurrency returns an error if:
//   - the code is not exactly three ASCII letters;
//   - the digits are negative or greater than [MaxDigits].
func NewCurrency(name, code, symbol string, digits int) (*Currency, error) {
	if !isAlphaCode(code) {
		return nil, fmt.Errorf("%w: code %q is not a 3-letter code", ErrInvalidCurrency, code)
	}
	if digits < 0 || digits > MaxDigits {
		return nil, fmt.Errorf("%w: digits %v out of range [0, %v]", ErrInvalidCurrency, digits, MaxDigits)
	}
	return newCurrencyUnsafe(name, strings.ToUpper(code), symbol, digits), nil
}

// newCurrencyUnsafe creates a currency without validating its properties.
func newCurrencyUnsafe(name, code, symbol string, digits int) *Currency {
	return &Currency{name: name, code: code, symbol: symbol, digits: digits}
}

// MustNewCurrency is like [NewCurrency] but panics if the currency cannot be constructed.
// It simplifies safe initialization of global variables holding currencies.
func MustNewCurrency(name, code, symbol string, digits int) *Currency {
	c, err := NewCurrency(name, code, symbol, digits)
	if err != nil {
		panic(fmt.Sprintf("NewCurrency(%q, %q, %q, %v) failed: %v", name, code, symbol, digits, err))
	}
	return c
}

func isAlphaCode(code string) bool {
	if len(code) != 3 {
		return false
	}
	for i := range len(code) {
		b := code[i]
		if (b < 'A' || b > 'Z') && (b < 'a' || b > 'z') {
			return false
		}
	}
	return true
}

// LookupCurr returns the built-in descriptor for the given code.
// The code is matched case-insensitively, so both "USD" and "usd" resolve to [USD].
func LookupCurr(code string) (*Currency, error) {
	c, ok := currLookup[strings.ToUpper(code)]
	if !ok {
		return nil, fmt.Errorf("%w: unknown code %q", ErrInvalidCurrency, code)
	}
	return c, nil
}

// MustLookupCurr is like [LookupCurr] but panics if the code is not known.
func MustLookupCurr(code string) *Currency {
	c, err := LookupCurr(code)
	if err != nil {
		panic(fmt.Sprintf("LookupCurr(%q) failed: %v", code, err))
	}
	return c
}

// orXXX substitutes [XXX] for a nil currency.
func (c *Currency) orXXX() *Currency {
	if c == nil {
		return XXX
	}
	return c
}

// Name returns the English name of the currency.
func (c *Currency) Name() string {
	return c.orXXX().name
}

// Code returns the [3-letter code] of the currency.
// The code is the identity used to decide whether amounts can be added
// or subtracted.
//
// [3-letter code]: https://en.wikipedia.org/wiki/ISO_4217#National_currencies
func (c *Currency) Code() string {
	return c.orXXX().code
}

// Symbol returns the display symbol of the currency, or an empty string if
// the currency has none.
func (c *Currency) Symbol() string {
	return c.orXXX().symbol
}

// HasSymbol returns true if the currency has a display symbol.
func (c *Currency) HasSymbol() bool {
	return c.Symbol() != ""
}

// Digits returns the number of fractional digits used when displaying
// amounts of the currency:
//   - 0 for currencies without minor units, such as the [Japanese Yen];
//   - 2 for currencies such as the [US Dollar], whose cent is 0.01 dollars;
//   - 3 for currencies such as the [Omani Rial], whose baisa is 0.001 rials.
//
// [Japanese Yen]: https://en.wikipedia.org/wiki/Japanese_yen
// [US Dollar]: https://en.wikipedia.org/wiki/United_States_dollar
// [Omani Rial]: https://en.wikipedia.org/wiki/Omani_rial
func (c *Currency) Digits() int {
	return c.orXXX().digits
}

// String implements the [fmt.Stringer] interface and returns the code
// followed by the symbol in parentheses, for example "USD ($)".
// If the currency has no symbol, only the code is returned.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (c *Currency) String() string {
	if !c.HasSymbol() {
		return c.Code()
	}
	return c.Code() + " (" + c.Symbol() + ")"
}

// Equal returns true if all properties of the currencies are equal.
// Two nil currencies are equal, and a nil currency is equal to [XXX].
// See also method [Currency.SameCode].
func (c *Currency) Equal(d *Currency) bool {
	c, d = c.orXXX(), d.orXXX()
	if c == d {
		return true
	}
	return c.name == d.name &&
		c.code == d.code &&
		c.symbol == d.symbol &&
		c.digits == d.digits
}

// SameCode returns true if the currencies have the same code.
// Name, symbol and digits are ignored.
func (c *Currency) SameCode(d *Currency) bool {
	return c.Code() == d.Code()
}
