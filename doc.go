/*
Package money implements monetary amounts tied to currencies.
It leverages the [decimal] package's capabilities for exact decimal arithmetic
and combines it with a [Currency] descriptor that controls how amounts are
identified and displayed.

# Features

  - Immutable monetary values, ensuring safe usage across multiple goroutines
  - Currency descriptors with name, ISO 4217 code, optional symbol, and digits
  - Built-in descriptors for widely used currencies
  - Arithmetic and comparison operations between amounts of the same currency
  - Display formatting in accordance with the currency's symbol and digits

# Representation

The package consists of two main types: Money and Currency.
A Currency is an immutable descriptor created once and shared by pointer.
A Money value consists of a pointer to a Currency and a decimal.Decimal value.
The built-in descriptors, such as [USD] and [EUR], are package variables
that must be treated as read-only; [LookupCurr] always returns the
original descriptors.
Amounts never use binary floating-point numbers, so repeated additions and
multiplications do not drift.

# Compatibility

Amounts can be added, subtracted and compared only if their currencies have the
same code. Name, symbol and digits do not take part in this check.
Equality of two amounts, however, requires the currencies to match in every
property, see [Money.Equal] and [Currency.Equal].

# Display

Amounts are rounded to the digits of their currency using rounding half to even.
If the currency has a symbol, it is placed directly before the amount:

	$9.50

Otherwise the code is used, followed by a space:

	USD 9.50

# Errors

Adding or subtracting amounts of different currencies returns an error wrapping
[ErrCurrencyMismatch]. Division by zero returns an error wrapping
[ErrDivisionByZero]. A product or a conversion that would have to drop
significant digits returns an error wrapping [ErrInexact].
Use [errors.Is] to tell them apart.
The package never logs or recovers from errors on its own.
*/
package money
