package fnformat

import (
	"fmt"
	"unicode"
)

// DecimalFormat holds the symbols of one named decimal format from the static context.
type DecimalFormat struct {
	DecimalSeparator  rune
	GroupingSeparator rune
	ExponentSeparator rune
	Digit             rune
	PatternSeparator  rune
	Percent           rune
	PerMille          rune
	ZeroDigit         rune
	MinusSign         rune
	Infinity          string
	NaN               string
}

// DefaultDecimalFormat returns the unnamed default decimal format.
func DefaultDecimalFormat() DecimalFormat {
	return DecimalFormat{
		DecimalSeparator:  '.',
		GroupingSeparator: ',',
		ExponentSeparator: 'e',
		Digit:             '#',
		PatternSeparator:  ';',
		Percent:           '%',
		PerMille:          '‰',
		ZeroDigit:         '0',
		MinusSign:         '-',
		Infinity:          "Infinity",
		NaN:               "NaN",
	}
}

// Validate checks that the picture-significant symbols are mutually distinct and that
// the zero digit starts a decimal digit family.
func (f DecimalFormat) Validate() error {
	if !isZeroDigit(f.ZeroDigit) {
		return fmt.Errorf("%w: zero-digit %q is not a digit with numeric value zero", ErrInvalidDecimalFormat, f.ZeroDigit)
	}

	named := []struct {
		name string
		r    rune
	}{
		{"decimal-separator", f.DecimalSeparator},
		{"grouping-separator", f.GroupingSeparator},
		{"exponent-separator", f.ExponentSeparator},
		{"digit", f.Digit},
		{"pattern-separator", f.PatternSeparator},
		{"percent", f.Percent},
		{"per-mille", f.PerMille},
	}

	seen := make(map[rune]string, len(named))
	for _, sym := range named {
		if sym.r == 0 {
			return fmt.Errorf("%w: %s is not set", ErrInvalidDecimalFormat, sym.name)
		}
		if f.isDigitFamily(sym.r) {
			return fmt.Errorf("%w: %s %q is a member of the digit family", ErrInvalidDecimalFormat, sym.name, sym.r)
		}
		if other, ok := seen[sym.r]; ok {
			return fmt.Errorf("%w: %s and %s share %q", ErrInvalidDecimalFormat, other, sym.name, sym.r)
		}
		seen[sym.r] = sym.name
	}
	return nil
}

func (f DecimalFormat) isDigitFamily(r rune) bool {
	return r >= f.ZeroDigit && r <= f.ZeroDigit+9
}

// digit maps 0..9 onto the format's digit family.
func (f DecimalFormat) digit(n int) rune {
	return f.ZeroDigit + rune(n)
}

func isZeroDigit(r rune) bool {
	return unicode.IsDigit(r) && digitValue(r) == 0
}

// digitValue returns the numeric value of a decimal digit. Every range of the Nd
// table starts at a zero and holds whole runs of ten digits.
func digitValue(r rune) int {
	if r >= '0' && r <= '9' {
		return int(r - '0')
	}
	for _, rng := range unicode.Nd.R16 {
		if r >= rune(rng.Lo) && r <= rune(rng.Hi) {
			return int(r-rune(rng.Lo)) % 10
		}
	}
	for _, rng := range unicode.Nd.R32 {
		if r >= rune(rng.Lo) && r <= rune(rng.Hi) {
			return int(r-rune(rng.Lo)) % 10
		}
	}
	return -1
}

// zeroOf returns the zero digit of the family r belongs to.
func zeroOf(r rune) rune {
	return r - rune(digitValue(r))
}
