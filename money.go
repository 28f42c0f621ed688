package money

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/govalues/decimal"
)

var (
	// ErrCurrencyMismatch is returned when two amounts denominated in
	// currencies with different codes are added, subtracted or compared.
	ErrCurrencyMismatch = errors.New("currency mismatch")

	// ErrDivisionByZero is returned when an amount is divided by zero.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrInexact is returned when a product or a conversion would have to
	// drop significant digits.
	ErrInexact = errors.New("inexact result")
)

// Money type represents an amount of a specific currency.
// Its zero value corresponds to "XXX 0", where [XXX] indicates an unknown currency.
//
// Money values are immutable: arithmetic methods return new values and never
// modify their receiver or arguments. Money is designed to be safe for
// concurrent use by multiple goroutines.
//
// The == operator compares currency pointers and decimal representations,
// so 9.5 and 9.50 are different under ==. Use [Money.Equal] instead.
type Money struct {
	curr  *Currency       // shared descriptor, nil means XXX
	value decimal.Decimal // exact amount
}

// newMoney creates a new amount and zero-pads it to the digits of its
// currency where possible.
func newMoney(c *Currency, d decimal.Decimal) Money {
	if d.Scale() < c.Digits() {
		d = d.Pad(c.Digits())
	}
	return Money{curr: c, value: d}
}

// NewMoney returns an amount of the given currency.
// If the scale of the amount is less than the digits of the currency, the
// result will be zero-padded to the right.
// The currency is shared, not copied.
func NewMoney(amount decimal.Decimal, curr *Currency) Money {
	return newMoney(curr, amount)
}

// NewMoneyFromInt returns an amount equal to the whole number n.
func NewMoneyFromInt(n int64, curr *Currency) Money {
	return newMoney(curr, decimal.MustNew(n, 0))
}

// NewMoneyFromMinorUnits converts an integer, representing minor units of
// currency (e.g. cents, pennies, fens), to an amount.
// See also method [Money.MinorUnits].
//
// NewMoneyFromMinorUnits returns an error if the currency digits exceed
// [decimal.MaxScale].
func NewMoneyFromMinorUnits(units int64, curr *Currency) (Money, error) {
	d, err := decimal.New(units, curr.Digits())
	if err != nil {
		return Money{}, fmt.Errorf("converting minor units: %w", err)
	}
	return newMoney(curr, d), nil
}

// Curr returns the currency of the amount.
// It returns [XXX] for the zero value.
func (m Money) Curr() *Currency {
	return m.curr.orXXX()
}

// Decimal returns the decimal representation of the amount.
func (m Money) Decimal() decimal.Decimal {
	return m.value
}

// MinorUnits returns a (possibly rounded) amount in minor units of currency
// (e.g. cents, pennies, fens).
// If the scale of the amount is greater than the digits of the currency, then
// the fractional part is rounded using [rounding half to even] (banker's rounding).
// See also constructor [NewMoneyFromMinorUnits].
//
// If the result cannot be represented as an int64, then false is returned.
//
// [rounding half to even]: https://en.wikipedia.org/wiki/Rounding#Rounding_half_to_even
func (m Money) MinorUnits() (units int64, ok bool) {
	d := m.RoundToCurr().Decimal()
	if d.Scale() != m.Curr().Digits() {
		return 0, false
	}
	u := d.Coef()
	if d.IsNeg() {
		if u > -math.MinInt64 {
			return 0, false
		}
		return -int64(u), true //nolint:gosec
	}
	if u > math.MaxInt64 {
		return 0, false
	}
	return int64(u), true
}

// Sign returns:
//
//	-1 if m < 0
//	 0 if m = 0
//	+1 if m > 0
func (m Money) Sign() int {
	return m.value.Sign()
}

// IsZero returns true if m = 0.
func (m Money) IsZero() bool {
	return m.value.IsZero()
}

// IsNeg returns true if m < 0.
func (m Money) IsNeg() bool {
	return m.value.IsNeg()
}

// IsPos returns true if m > 0.
func (m Money) IsPos() bool {
	return m.value.IsPos()
}

// Abs returns the absolute value of the amount.
func (m Money) Abs() Money {
	return Money{curr: m.curr, value: m.value.Abs()}
}

// Neg returns an amount with the opposite sign.
func (m Money) Neg() Money {
	return Money{curr: m.curr, value: m.value.Neg()}
}

// SameCurr returns true if amounts are denominated in currencies with the
// same code. Only such amounts can be added, subtracted or compared.
// See also method [Currency.SameCode].
func (m Money) SameCurr(n Money) bool {
	return m.Curr().SameCode(n.Curr())
}

// Equal returns true if the amounts are numerically equal and their
// currencies are equal in every property.
// Trailing zeros are ignored, so 9.5 and 9.50 are equal.
// See also methods [Currency.Equal] and [Money.Cmp].
func (m Money) Equal(n Money) bool {
	return m.Curr().Equal(n.Curr()) && m.value.Cmp(n.value) == 0
}

// Add returns the sum of amounts m and n.
// The result is denominated in the currency of m.
//
// Add returns an error if:
//   - amounts are denominated in currencies with different codes;
//   - the integer part of the result has more than ([decimal.MaxPrec] - [Currency.Digits]) digits.
func (m Money) Add(n Money) (Money, error) {
	r, err := m.add(n)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v + %v]: %w", m, n, err)
	}
	return r, nil
}

func (m Money) add(n Money) (Money, error) {
	if !m.SameCurr(n) {
		return Money{}, ErrCurrencyMismatch
	}
	c, d, e := m.Curr(), m.Decimal(), n.Decimal()
	d, err := d.AddExact(e, c.Digits())
	if err != nil {
		return Money{}, err
	}
	return newMoney(c, d), nil
}

// Sub returns the difference between amounts m and n.
// The result is denominated in the currency of m.
//
// Sub returns an error if:
//   - amounts are denominated in currencies with different codes;
//   - the integer part of the result has more than ([decimal.MaxPrec] - [Currency.Digits]) digits.
func (m Money) Sub(n Money) (Money, error) {
	r, err := m.sub(n)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v - %v]: %w", m, n, err)
	}
	return r, nil
}

func (m Money) sub(n Money) (Money, error) {
	if !m.SameCurr(n) {
		return Money{}, ErrCurrencyMismatch
	}
	c, d, e := m.Curr(), m.Decimal(), n.Decimal()
	d, err := d.SubExact(e, c.Digits())
	if err != nil {
		return Money{}, err
	}
	return newMoney(c, d), nil
}

// Mul returns the exact product of amount m and factor e.
//
// Mul returns an error if:
//   - the integer part of the result has more than ([decimal.MaxPrec] - [Currency.Digits]) digits.
//     For example, when currency is US Dollars, Mul will return an error if the
//     integer part of the result has more than 17 digits (19 - 2 = 17);
//   - the product cannot be represented without rounding, the error wraps [ErrInexact].
func (m Money) Mul(e decimal.Decimal) (Money, error) {
	r, err := m.mul(e)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v * %v]: %w", m, e, err)
	}
	return r, nil
}

func (m Money) mul(e decimal.Decimal) (Money, error) {
	c, d := m.Curr(), m.Decimal()
	f, err := d.MulExact(e, c.Digits())
	if err != nil {
		return Money{}, err
	}
	// The coefficient holds at most 19 digits, so a product that fits the
	// scale can still lose trailing digits.
	want := toShopspring(d).Mul(toShopspring(e))
	if !toShopspring(f).Equal(want) {
		return Money{}, ErrInexact
	}
	return newMoney(c, f), nil
}

// Quo returns the (possibly rounded) quotient of amount m and divisor e.
// See also method [Money.Split].
//
// Quo returns an error if:
//   - the divisor is 0, the error wraps [ErrDivisionByZero];
//   - the integer part of the result has more than ([decimal.MaxPrec] - [Currency.Digits]) digits.
func (m Money) Quo(e decimal.Decimal) (Money, error) {
	r, err := m.quo(e)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v / %v]: %w", m, e, err)
	}
	return r, nil
}

func (m Money) quo(e decimal.Decimal) (Money, error) {
	if e.IsZero() {
		return Money{}, ErrDivisionByZero
	}
	c, d := m.Curr(), m.Decimal()
	d, err := d.QuoExact(e, c.Digits())
	if err != nil {
		return Money{}, err
	}
	return newMoney(c, d), nil
}

// Split returns a slice of amounts that sum up to the original amount,
// ensuring the parts are as equal as possible.
// If the original amount cannot be divided equally among the specified number
// of parts, the remainder is distributed among the first parts of the slice.
//
// Split returns an error if the number of parts is not a positive integer.
func (m Money) Split(parts int) ([]Money, error) {
	r, err := m.split(parts)
	if err != nil {
		return nil, fmt.Errorf("splitting %v into %v parts: %w", m, parts, err)
	}
	return r, nil
}

func (m Money) split(parts int) ([]Money, error) {
	if parts <= 0 {
		return nil, fmt.Errorf("number of parts must be positive")
	}
	par, err := decimal.New(int64(parts), 0)
	if err != nil {
		return nil, err
	}

	// Quotient
	quo, err := m.Quo(par)
	if err != nil {
		return nil, err
	}
	scale := max(m.value.Scale(), m.Curr().Digits())
	quo = Money{curr: quo.curr, value: quo.value.Trunc(scale)}

	// Remainder
	rem, err := quo.Mul(par)
	if err != nil {
		return nil, err
	}
	rem, err = m.Sub(rem)
	if err != nil {
		return nil, err
	}
	ulp := Money{curr: m.curr, value: rem.value.ULP().CopySign(rem.value)}

	res := make([]Money, parts)
	for i := range parts {
		res[i] = quo
		// Remainder distribution
		if !rem.IsZero() {
			rem, err = rem.Sub(ulp)
			if err != nil {
				return nil, err
			}
			res[i], err = res[i].Add(ulp)
			if err != nil {
				return nil, err
			}
		}
	}
	return res, nil
}

// RoundToCurr returns an amount rounded to the digits of its currency
// using [rounding half to even] (banker's rounding).
//
// [rounding half to even]: https://en.wikipedia.org/wiki/Rounding#Rounding_half_to_even
func (m Money) RoundToCurr() Money {
	c := m.Curr()
	return Money{curr: m.curr, value: m.value.Round(c.Digits()).Pad(c.Digits())}
}

// TruncToCurr returns an amount truncated to the digits of its currency
// using [rounding toward zero].
//
// [rounding toward zero]: https://en.wikipedia.org/wiki/Rounding#Rounding_toward_zero
func (m Money) TruncToCurr() Money {
	c := m.Curr()
	return Money{curr: m.curr, value: m.value.Trunc(c.Digits()).Pad(c.Digits())}
}

// Cmp compares amounts and returns:
//
//	-1 if m < n
//	 0 if m = n
//	+1 if m > n
//
// Cmp returns an error if amounts are denominated in currencies with different codes.
func (m Money) Cmp(n Money) (int, error) {
	if !m.SameCurr(n) {
		return 0, fmt.Errorf("comparing [%v] and [%v]: %w", m, n, ErrCurrencyMismatch)
	}
	return m.value.Cmp(n.value), nil
}

// Min returns the smaller amount.
//
// Min returns an error if amounts are denominated in currencies with different codes.
func (m Money) Min(n Money) (Money, error) {
	switch c, err := m.Cmp(n); {
	case err != nil:
		return Money{}, err
	case c <= 0: // m <= n
		return m, nil
	default:
		return n, nil
	}
}

// Max returns the larger amount.
//
// Max returns an error if amounts are denominated in currencies with different codes.
func (m Money) Max(n Money) (Money, error) {
	switch c, err := m.Cmp(n); {
	case err != nil:
		return Money{}, err
	case c >= 0: // m >= n
		return m, nil
	default:
		return n, nil
	}
}

// fixed returns the amount rounded and zero-padded to the given scale.
// Zeros that do not fit into the decimal coefficient are appended as text.
func (m Money) fixed(scale int) string {
	d := m.value.Round(scale).Pad(scale)
	s := d.String()
	if pad := scale - d.Scale(); pad > 0 {
		if d.Scale() == 0 {
			s += "."
		}
		s += strings.Repeat("0", pad)
	}
	return s
}

// String implements the [fmt.Stringer] interface and returns the amount
// rounded to the digits of its currency.
// The symbol is placed directly before the amount, as in "$9.50".
// Currencies without a symbol use the code and a space, as in "USD 9.50".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (m Money) String() string {
	c := m.Curr()
	s := m.fixed(c.Digits())
	if c.HasSymbol() {
		return c.Symbol() + s
	}
	return c.Code() + " " + s
}

// GoString implements the [fmt.GoStringer] interface and returns the
// representation used for debugging, as in "<Money $9.50>".
//
// [fmt.GoStringer]: https://pkg.go.dev/fmt#GoStringer
func (m Money) GoString() string {
	return "<Money " + m.String() + ">"
}

// minor returns the amount in minor units as a decimal string.
// Unlike [Money.MinorUnits] it does not fail when the result exceeds int64.
func (m Money) minor() string {
	c := m.Curr()
	d := m.value.Round(c.Digits()).Pad(c.Digits())
	s := strconv.FormatUint(d.Coef(), 10)
	if pad := c.Digits() - d.Scale(); pad > 0 && !d.IsZero() {
		s += strings.Repeat("0", pad)
	}
	if d.IsNeg() {
		s = "-" + s
	}
	return s
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb   | Example        | Description              |
//	| ------ | -------------- | ------------------------ |
//	| %s, %v | $9.50          | Display form             |
//	| %#v    | <Money $9.50>  | Debug form               |
//	| %q     | "$9.50"        | Quoted display form      |
//	| %f     | 9.50           | Amount                   |
//	| %d     | 950            | Amount in minor units    |
//	| %c     | USD            | Currency code            |
//
// The '-' format flag can be used with all verbs.
// Precision is only supported for the %f verb.
// The default precision is equal to the digits of the currency.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (m Money) Format(state fmt.State, verb rune) {
	var s string
	switch verb {
	case 'v', 'V':
		if state.Flag('#') {
			s = m.GoString()
		} else {
			s = m.String()
		}
	case 's', 'S':
		s = m.String()
	case 'q', 'Q':
		s = `"` + m.String() + `"`
	case 'f', 'F':
		scale := m.Curr().Digits()
		if p, ok := state.Precision(); ok {
			scale = p
		}
		s = m.fixed(scale)
	case 'd', 'D':
		s = m.minor()
	case 'c', 'C':
		s = m.Curr().Code()
	default:
		s = "%!" + string(verb) + "(money.Money=" + m.String() + ")"
	}

	// Padding
	if w, ok := state.Width(); ok {
		if n := w - utf8.RuneCountInString(s); n > 0 {
			if state.Flag('-') {
				s += strings.Repeat(" ", n)
			} else {
				s = strings.Repeat(" ", n) + s
			}
		}
	}

	//nolint:errcheck
	state.Write([]byte(s))
}
