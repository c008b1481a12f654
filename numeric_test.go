package fnformat

import (
	"math"
	"math/big"
	"strings"
	"testing"

	"github.com/govalues/decimal"
)

func TestParseNumeric(t *testing.T) {
	cases := []struct {
		in   string
		kind NumericKind
		str  string
	}{
		{"", NumericEmpty, ""},
		{"42", NumericInteger, "42"},
		{"-7", NumericInteger, "-7"},
		{"12.50", NumericDecimal, "12.5"},
		{"12345678901234567890.5", NumericDecimal, "12345678901234567890.5"},
		{"-0.1234567890123456789012345", NumericDecimal, "-0.1234567890123456789012345"},
		{".5", NumericDecimal, "0.5"},
		{"1.5e3", NumericDouble, "1500"},
		{"NaN", NumericDouble, "NaN"},
		{"-INF", NumericDouble, "-Inf"},
	}

	for _, tc := range cases {
		n, err := ParseNumeric(tc.in)
		if err != nil {
			t.Fatalf("ParseNumeric(%q): %v", tc.in, err)
		}
		if n.Kind() != tc.kind {
			t.Fatalf("ParseNumeric(%q).Kind() = %s want %s", tc.in, n.Kind(), tc.kind)
		}
		if n.String() != tc.str {
			t.Fatalf("ParseNumeric(%q).String() = %q want %q", tc.in, n.String(), tc.str)
		}
	}

	for _, bad := range []string{"abc", "1.2.3", "1e", "."} {
		if _, err := ParseNumeric(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestNumericScaled(t *testing.T) {
	d := decimal.MustParse("-0.125")
	got, infinite := NewDecimal(d).scaled(2)
	if infinite || got.String() != "-12.5" {
		t.Fatalf("scaled decimal = %s,%v want -12.5", got, infinite)
	}

	huge := new(big.Int).Exp(big.NewInt(10), big.NewInt(40), nil)
	got, _ = NewBigInteger(huge).scaled(3)
	if got.precision() != 41 || got.magnitude() != 43 {
		t.Fatalf("scaled big integer precision=%d magnitude=%d", got.precision(), got.magnitude())
	}

	if _, infinite := NewDouble(math.MaxFloat64).scaled(3); !infinite {
		t.Fatal("expected overflow to infinity")
	}
	if _, infinite := NewFloat(math.MaxFloat32).scaled(2); !infinite {
		t.Fatal("expected float overflow to infinity")
	}
}

func TestBigDecimalRounding(t *testing.T) {
	cases := []struct {
		in       string
		fraction int
		want     string
	}{
		{"1.005", 2, "1.01"},
		{"-1.005", 2, "-1.01"},
		{"2.4", 0, "2"},
		{"0.0004", 3, "0"},
		{"123", 2, "123"},
	}
	for _, tc := range cases {
		d, err := parseBigDecimal(tc.in)
		if err != nil {
			t.Fatalf("parseBigDecimal(%q): %v", tc.in, err)
		}
		if got := d.roundHalfUp(tc.fraction).String(); got != tc.want {
			t.Fatalf("roundHalfUp(%s, %d) = %s want %s", tc.in, tc.fraction, got, tc.want)
		}
	}

	d, _ := parseBigDecimal("12345678901234567.5")
	if got := d.roundSignificant(16).String(); got != "12345678901234570" {
		t.Fatalf("roundSignificant = %s", got)
	}
}

func TestFormatNumberWideDecimals(t *testing.T) {
	cases := []struct {
		in      string
		picture string
		want    string
	}{
		{"12345678901234567890.5", "#,##0.0", "12,345,678,901,234,567,890.5"},
		{"0.1234567890123456789012345", "0." + strings.Repeat("0", 25), "0.1234567890123456789012345"},
		{"0.1234567890123456789012345", "0.000", "0.123"},
	}
	for _, tc := range cases {
		t.Run(tc.in+" "+tc.picture, func(t *testing.T) {
			n, err := ParseNumeric(tc.in)
			if err != nil {
				t.Fatalf("ParseNumeric(%q): %v", tc.in, err)
			}
			got, err := FormatNumber(n, tc.picture)
			if err != nil {
				t.Fatalf("FormatNumber: %v", err)
			}
			if got != tc.want {
				t.Fatalf("got %q; want %q", got, tc.want)
			}
		})
	}
}
