package fnformat

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// bigDecimal is an exact decimal: (-1)^neg * coef * 10^-scale. Values are never
// mutated in place; every operation allocates a fresh coefficient.
type bigDecimal struct {
	neg   bool
	coef  *big.Int
	scale int
}

var bigTen = big.NewInt(10)

func pow10(n int) *big.Int {
	return new(big.Int).Exp(bigTen, big.NewInt(int64(n)), nil)
}

// parseBigDecimal accepts an optional sign, digits with an optional point, and an
// optional e/E exponent.
func parseBigDecimal(s string) (bigDecimal, error) {
	text := strings.TrimSpace(s)
	var d bigDecimal
	if text == "" {
		return d, fmt.Errorf("empty decimal literal")
	}
	switch text[0] {
	case '-':
		d.neg = true
		text = text[1:]
	case '+':
		text = text[1:]
	}

	exponent := 0
	if idx := strings.IndexAny(text, "eE"); idx >= 0 {
		e, err := strconv.Atoi(text[idx+1:])
		if err != nil {
			return bigDecimal{}, fmt.Errorf("invalid exponent in %q: %w", s, err)
		}
		exponent = e
		text = text[:idx]
	}

	digits := text
	if idx := strings.IndexByte(text, '.'); idx >= 0 {
		digits = text[:idx] + text[idx+1:]
		d.scale = len(text) - idx - 1
	}
	if digits == "" {
		return bigDecimal{}, fmt.Errorf("no digits in %q", s)
	}
	for _, c := range digits {
		if c < '0' || c > '9' {
			return bigDecimal{}, fmt.Errorf("invalid digit %q in %q", c, s)
		}
	}

	coef, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return bigDecimal{}, fmt.Errorf("invalid decimal literal %q", s)
	}
	d.coef = coef
	d.scale -= exponent
	return d, nil
}

func bigDecimalFromInt(v *big.Int) bigDecimal {
	coef := new(big.Int).Abs(v)
	return bigDecimal{neg: v.Sign() < 0, coef: coef}
}

func (d bigDecimal) isZero() bool {
	return d.coef == nil || d.coef.Sign() == 0
}

func (d bigDecimal) abs() bigDecimal {
	out := d
	out.neg = false
	return out
}

// shift multiplies by 10^n.
func (d bigDecimal) shift(n int) bigDecimal {
	out := d
	out.scale = d.scale - n
	return out
}

func (d bigDecimal) precision() int {
	if d.isZero() {
		return 1
	}
	return len(d.coef.String())
}

// magnitude returns floor(log10(|d|)) for non-zero d.
func (d bigDecimal) magnitude() int {
	return d.precision() - d.scale - 1
}

// integerDigits counts the digits left of the decimal point, ignoring leading zeros.
func (d bigDecimal) integerDigits() int {
	if d.isZero() {
		return 0
	}
	if n := d.magnitude() + 1; n > 0 {
		return n
	}
	return 0
}

// roundSignificant rounds half-to-even to at most digits significant digits,
// the behaviour of a DECIMAL64 math context when digits is 16.
func (d bigDecimal) roundSignificant(digits int) bigDecimal {
	drop := d.precision() - digits
	if d.isZero() || drop <= 0 {
		return d
	}
	divisor := pow10(drop)
	q, r := new(big.Int).QuoRem(d.coef, divisor, new(big.Int))
	twice := new(big.Int).Lsh(r, 1)
	switch twice.Cmp(divisor) {
	case 1:
		q.Add(q, big.NewInt(1))
	case 0:
		if q.Bit(0) == 1 {
			q.Add(q, big.NewInt(1))
		}
	}
	return bigDecimal{neg: d.neg, coef: q, scale: d.scale - drop}
}

// roundHalfUp rounds to at most fraction digits after the point, ties away from zero.
func (d bigDecimal) roundHalfUp(fraction int) bigDecimal {
	if d.isZero() {
		return bigDecimal{neg: d.neg, coef: new(big.Int), scale: 0}
	}
	if d.scale <= fraction {
		return d
	}
	divisor := pow10(d.scale - fraction)
	q, r := new(big.Int).QuoRem(d.coef, divisor, new(big.Int))
	if new(big.Int).Lsh(r, 1).Cmp(divisor) >= 0 {
		q.Add(q, big.NewInt(1))
	}
	return bigDecimal{neg: d.neg, coef: q, scale: fraction}
}

// plainDigits renders |d| as ASCII integer and fraction digits with leading zeros of
// the integer part and trailing zeros of the fraction removed.
func (d bigDecimal) plainDigits() (string, string) {
	if d.isZero() {
		return "", ""
	}
	s := d.coef.String()
	var intPart, fracPart string
	switch {
	case d.scale <= 0:
		intPart = s + strings.Repeat("0", -d.scale)
	case len(s) <= d.scale:
		fracPart = strings.Repeat("0", d.scale-len(s)) + s
	default:
		intPart = s[:len(s)-d.scale]
		fracPart = s[len(s)-d.scale:]
	}
	return strings.TrimLeft(intPart, "0"), strings.TrimRight(fracPart, "0")
}

func (d bigDecimal) String() string {
	intPart, fracPart := d.plainDigits()
	if intPart == "" {
		intPart = "0"
	}
	sign := ""
	if d.neg && !d.isZero() {
		sign = "-"
	}
	if fracPart == "" {
		return sign + intPart
	}
	return sign + intPart + "." + fracPart
}
