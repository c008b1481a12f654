package fnformat

import (
	"math"
	"testing"
)

func renderNumber(t *testing.T, value Numeric, picture string, format DecimalFormat) string {
	t.Helper()
	analyzed, err := AnalyzeDecimalPicture(picture, format)
	if err != nil {
		t.Fatalf("AnalyzeDecimalPicture(%q): %v", picture, err)
	}
	return RenderDecimal(value, format, analyzed)
}

func mustParseNumeric(t *testing.T, s string) Numeric {
	t.Helper()
	n, err := ParseNumeric(s)
	if err != nil {
		t.Fatalf("ParseNumeric(%q): %v", s, err)
	}
	return n
}

func TestRenderDecimal(t *testing.T) {
	cases := []struct {
		name    string
		value   Numeric
		picture string
		want    string
	}{
		{"grouped fraction", NewDouble(1234.5), "#,##0.00", "1,234.50"},
		{"percent", NewDouble(0.5), "0%", "50%"},
		{"per-mille", NewDouble(0.25), "0‰", "250‰"},
		{"nan", NewDouble(math.NaN()), "#,##0", "NaN"},
		{"empty", Numeric{}, "0.00", "NaN"},
		{"explicit negative", NewDouble(-1234.5), "0.0;(0.0)", "(1234.5)"},
		{"implicit minus", NewDouble(-1), "0", "-1"},
		{"negative zero", NewDouble(math.Copysign(0, -1)), "0", "-0"},
		{"infinity", NewDouble(math.Inf(1)), "#,##0", "Infinity"},
		{"negative infinity", NewDouble(math.Inf(-1)), "#,##0", "-Infinity"},
		{"percent overflow", NewDouble(math.MaxFloat64), "0%", "Infinity%"},
		{"half up", NewDouble(2.5), "0", "3"},
		{"half up negative", NewDouble(-2.5), "0", "-3"},
		{"half up fraction", NewDouble(0.125), "0.00", "0.13"},
		{"zero optional", NewDouble(0), "#", "0"},
		{"irregular grouping", NewInteger(12345678), "#,##,##0", "123,45,678"},
		{"regular grouping", NewInteger(1234567890), "#,##0", "1,234,567,890"},
		{"decimal optional fraction", mustParseNumeric(t, "1234.5"), "#,###.##", "1,234.5"},
		{"big integer", mustParseNumeric(t, "123456789012345678901234567890"), "#,##0", "123,456,789,012,345,678,901,234,567,890"},
		{"float", NewFloat(0.1), "0.000", "0.100"},
		{"fraction grouping", NewDouble(3.14159265), "0.000,000", "3.141,593"},
		{"exponent", NewDouble(1234.5678), "00.000e0", "12.346e2"},
		{"negative exponent", NewDouble(0.234), "0.0e0", "2.3e-1"},
		{"no integer digits", NewDouble(0.234), ".00e0", ".23e0"},
		{"optional integer digit", NewDouble(0.234), "#.00e0", "0.23e0"},
		{"exponent carry", NewDouble(9.99), "0.0e0", "1.0e1"},
		{"exponent digits", NewDouble(12345), "0.00e00", "1.23e04"},
		{"zero with exponent", NewDouble(0), "0.0e0", "0.0e0"},
		{"exponent without separator", NewDouble(5), "#e0", "05e1"},
		{"two optional digits with exponent", NewDouble(5), "##e0", "05e1"},
		{"exponent without separator large", NewDouble(1234), "#e0", "01e4"},
		{"prefix and suffix", NewDouble(42), "$#,##0 USD", "$42 USD"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := renderNumber(t, tc.value, tc.picture, DefaultDecimalFormat())
			if got != tc.want {
				t.Fatalf("render %s with %q: got %q; want %q", tc.value, tc.picture, got, tc.want)
			}
		})
	}
}

func TestRenderDecimalCustomSymbols(t *testing.T) {
	french := DefaultDecimalFormat()
	french.DecimalSeparator = ','
	french.GroupingSeparator = ' '
	french.Infinity = "∞"

	if got := renderNumber(t, NewDouble(1234.5), "# ##0,00", french); got != "1 234,50" {
		t.Fatalf("french grouping: got %q; want %q", got, "1 234,50")
	}
	if got := renderNumber(t, NewDouble(math.Inf(-1)), "0", french); got != "-∞" {
		t.Fatalf("french infinity: got %q; want %q", got, "-∞")
	}

	arabic := DefaultDecimalFormat()
	arabic.ZeroDigit = '٠'
	if got := renderNumber(t, NewInteger(123), "٠٠٠٠", arabic); got != "٠١٢٣" {
		t.Fatalf("arabic digits: got %q; want %q", got, "٠١٢٣")
	}

	minus := DefaultDecimalFormat()
	minus.MinusSign = '−'
	if got := renderNumber(t, NewInteger(-7), "0", minus); got != "−7" {
		t.Fatalf("minus sign: got %q; want %q", got, "−7")
	}
}

func TestGroupInteger(t *testing.T) {
	cases := []struct {
		digits    string
		positions []int
		want      string
	}{
		{"1234567", []int{3}, "1,234,567"},
		{"123", []int{3}, "123"},
		{"12345678", []int{3, 5}, "123,45,678"},
		{"1234", nil, "1234"},
		{"1234567", []int{3, 6, 9}, "1,234,567"},
	}

	for _, tc := range cases {
		got := string(groupInteger([]rune(tc.digits), tc.positions, ','))
		if got != tc.want {
			t.Fatalf("groupInteger(%q, %v) = %q want %q", tc.digits, tc.positions, got, tc.want)
		}
	}
}
