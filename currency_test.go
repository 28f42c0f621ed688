package money

import (
	"errors"
	"testing"
)

func TestNewCurrency(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			name, code, symbol string
			digits             int
			wantCode           string
		}{
			{"US Dollar", "USD", "$", 2, "USD"},
			{"US Dollar", "usd", "$", 2, "USD"},
			{"Yen", "JPY", "¥", 0, "JPY"},
			{"Rial Omani", "OMR", "", 3, "OMR"},
			{"Test", "TST", "", 18, "TST"},
		}
		for _, tt := range tests {
			got, err := NewCurrency(tt.name, tt.code, tt.symbol, tt.digits)
			if err != nil {
				t.Errorf("NewCurrency(%q, %q, %q, %v) failed: %v", tt.name, tt.code, tt.symbol, tt.digits, err)
				continue
			}
			if got.Code() != tt.wantCode {
				t.Errorf("NewCurrency(%q, ...).Code() = %q, want %q", tt.code, got.Code(), tt.wantCode)
			}
			if got.Name() != tt.name || got.Symbol() != tt.symbol || got.Digits() != tt.digits {
				t.Errorf("NewCurrency(%q, %q, %q, %v) = %q, %q, %v", tt.name, tt.code, tt.symbol, tt.digits, got.Name(), got.Symbol(), got.Digits())
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			code   string
			digits int
		}{
			"code 1":   {"", 2},
			"code 2":   {"US", 2},
			"code 3":   {"USDX", 2},
			"code 4":   {"U$D", 2},
			"code 5":   {"840", 2},
			"digits 1": {"USD", -1},
			"digits 2": {"USD", 19},
			"digits 3": {"USD", 20},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := NewCurrency("Test", tt.code, "", tt.digits)
				if !errors.Is(err, ErrInvalidCurrency) {
					t.Errorf("NewCurrency(%q, %v) error = %v, want %v", tt.code, tt.digits, err, ErrInvalidCurrency)
				}
			})
		}
	})
}

func TestMustNewCurrency(t *testing.T) {
	t.Run("error", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("MustNewCurrency(\"Test\", \"\", \"\", 2) did not panic")
			}
		}()
		MustNewCurrency("Test", "", "", 2)
	})
}

func TestNewCurrency_MaxDigits(t *testing.T) {
	c := MustNewCurrency("Test", "TST", "", MaxDigits)
	one := NewMoneyFromInt(1, c)
	if got, want := one.String(), "TST 1.000000000000000000"; got != want {
		t.Errorf("%#v.String() = %q, want %q", one, got, want)
	}
	got, err := one.Add(one)
	if err != nil {
		t.Fatalf("%#v.Add(%#v) failed: %v", one, one, err)
	}
	if want := NewMoneyFromInt(2, c); !got.Equal(want) {
		t.Errorf("%#v.Add(%#v) = %#v, want %#v", one, one, got, want)
	}
}

func TestLookupCurr(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			code string
			want *Currency
		}{
			{"xxx", XXX},
			{"XXX", XXX},
			{"jpy", JPY},
			{"JPY", JPY},
			{"usd", USD},
			{"USD", USD},
			{"Omr", OMR},
		}
		for _, tt := range tests {
			got, err := LookupCurr(tt.code)
			if err != nil {
				t.Errorf("LookupCurr(%q) failed: %v", tt.code, err)
				continue
			}
			if got != tt.want {
				t.Errorf("LookupCurr(%q) = %v, want %v", tt.code, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []string{
			"", "000", "840", "test", "xbt", "$", "AU$", "BTC",
		}
		for _, tt := range tests {
			_, err := LookupCurr(tt)
			if !errors.Is(err, ErrInvalidCurrency) {
				t.Errorf("LookupCurr(%q) error = %v, want %v", tt, err, ErrInvalidCurrency)
			}
		}
	})
}

func TestMustLookupCurr(t *testing.T) {
	t.Run("error", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("MustLookupCurr(\"UUU\") did not panic")
			}
		}()
		MustLookupCurr("UUU")
	})
}

func TestCurrency_Table(t *testing.T) {
	if len(currLookup) == 0 {
		t.Fatal("currLookup is empty")
	}
	for code, c := range currLookup {
		if c.Code() != code {
			t.Errorf("currLookup[%q].Code() = %q", code, c.Code())
		}
		if !isAlphaCode(c.Code()) {
			t.Errorf("currLookup[%q] has invalid code", code)
		}
		if c.Digits() < 0 || c.Digits() > 3 {
			t.Errorf("currLookup[%q].Digits() = %v", code, c.Digits())
		}
		if c.Name() == "" {
			t.Errorf("currLookup[%q].Name() is empty", code)
		}
	}
}

func TestCurrency_Builtins(t *testing.T) {
	tests := []*Currency{XXX, EUR, GBP, JPY, OMR, USD}
	for _, tt := range tests {
		got, err := LookupCurr(tt.Code())
		if err != nil {
			t.Errorf("LookupCurr(%q) failed: %v", tt.Code(), err)
			continue
		}
		if got != tt {
			t.Errorf("LookupCurr(%q) = %p, want %p", tt.Code(), got, tt)
		}
	}
}

func TestCurrency_Digits(t *testing.T) {
	tests := []struct {
		curr *Currency
		want int
	}{
		{nil, 0},
		{XXX, 0},
		{JPY, 0},
		{AED, 2},
		{EUR, 2},
		{USD, 2},
		{OMR, 3},
		{IQD, 3},
	}
	for _, tt := range tests {
		got := tt.curr.Digits()
		if got != tt.want {
			t.Errorf("%v.Digits() = %v, want %v", tt.curr, got, tt.want)
		}
	}
}

func TestCurrency_String(t *testing.T) {
	tests := []struct {
		curr *Currency
		want string
	}{
		{nil, "XXX"},
		{XXX, "XXX"},
		{USD, "USD ($)"},
		{EUR, "EUR (€)"},
		{CHF, "CHF"},
		{MustNewCurrency("US Dollar", "USD", "", 2), "USD"},
	}
	for _, tt := range tests {
		got := tt.curr.String()
		if got != tt.want {
			t.Errorf("%q.String() = %q, want %q", tt.curr.Code(), got, tt.want)
		}
	}
}

func TestCurrency_Equal(t *testing.T) {
	base := MustNewCurrency("US Dollar", "USD", "$", 2)
	tests := []struct {
		c, d *Currency
		want bool
	}{
		{base, base, true},
		{base, MustNewCurrency("US Dollar", "USD", "$", 2), true},
		{base, MustNewCurrency("US Dollar", "usd", "$", 2), true},
		{base, USD, true},
		{nil, nil, true},
		{nil, XXX, true},
		{XXX, nil, true},
		// Every property takes part
		{base, MustNewCurrency("Dollar", "USD", "$", 2), false},
		{base, MustNewCurrency("US Dollar", "USN", "$", 2), false},
		{base, MustNewCurrency("US Dollar", "USD", "US$", 2), false},
		{base, MustNewCurrency("US Dollar", "USD", "", 2), false},
		{base, MustNewCurrency("US Dollar", "USD", "$", 3), false},
		{base, nil, false},
		{nil, base, false},
	}
	for _, tt := range tests {
		got := tt.c.Equal(tt.d)
		if got != tt.want {
			t.Errorf("%v.Equal(%v) = %v, want %v", tt.c, tt.d, got, tt.want)
		}
	}
}

func TestCurrency_SameCode(t *testing.T) {
	tests := []struct {
		c, d *Currency
		want bool
	}{
		{USD, USD, true},
		{USD, MustNewCurrency("Dollar", "USD", "", 4), true},
		{nil, XXX, true},
		{USD, EUR, false},
		{nil, USD, false},
	}
	for _, tt := range tests {
		got := tt.c.SameCode(tt.d)
		if got != tt.want {
			t.Errorf("%v.SameCode(%v) = %v, want %v", tt.c, tt.d, got, tt.want)
		}
	}
}
