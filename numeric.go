package fnformat

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/govalues/decimal"
)

// NumericKind identifies the XML Schema type of a Numeric.
type NumericKind int

const (
	// NumericEmpty is the empty sequence; it formats as NaN.
	NumericEmpty NumericKind = iota
	NumericDouble
	NumericFloat
	NumericDecimal
	NumericInteger
)

func (k NumericKind) String() string {
	switch k {
	case NumericDouble:
		return "xs:double"
	case NumericFloat:
		return "xs:float"
	case NumericDecimal:
		return "xs:decimal"
	case NumericInteger:
		return "xs:integer"
	default:
		return "empty-sequence()"
	}
}

// Numeric is an atomized numeric value handed over by the query engine.
// The zero value is the empty sequence.
type Numeric struct {
	kind NumericKind
	f    float64
	dec  bigDecimal
	i    *big.Int
}

func NewDouble(v float64) Numeric {
	return Numeric{kind: NumericDouble, f: v}
}

func NewFloat(v float32) Numeric {
	return Numeric{kind: NumericFloat, f: float64(v)}
}

func NewDecimal(d decimal.Decimal) Numeric {
	v, err := parseBigDecimal(d.String())
	if err != nil {
		return Numeric{kind: NumericDecimal, dec: bigDecimal{coef: new(big.Int)}}
	}
	return Numeric{kind: NumericDecimal, dec: v}
}

func NewInteger(v int64) Numeric {
	return Numeric{kind: NumericInteger, i: big.NewInt(v)}
}

// NewBigInteger copies v so later changes by the caller are not observed.
func NewBigInteger(v *big.Int) Numeric {
	if v == nil {
		return Numeric{}
	}
	return Numeric{kind: NumericInteger, i: new(big.Int).Set(v)}
}

// ParseNumeric reads an XPath numeric literal: digits only give xs:integer, a point
// gives xs:decimal, an exponent or INF/NaN gives xs:double. Decimal literals keep
// every digit.
func ParseNumeric(s string) (Numeric, error) {
	text := strings.TrimSpace(s)
	switch text {
	case "":
		return Numeric{}, nil
	case "NaN":
		return NewDouble(math.NaN()), nil
	case "INF", "+INF":
		return NewDouble(math.Inf(1)), nil
	case "-INF":
		return NewDouble(math.Inf(-1)), nil
	}

	if strings.ContainsAny(text, "eE") {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return Numeric{}, fmt.Errorf("parse xs:double %q: %w", s, err)
		}
		return NewDouble(f), nil
	}

	if strings.Contains(text, ".") {
		d, err := parseBigDecimal(text)
		if err != nil {
			return Numeric{}, fmt.Errorf("parse xs:decimal %q: %w", s, err)
		}
		return Numeric{kind: NumericDecimal, dec: d}, nil
	}

	i, ok := new(big.Int).SetString(strings.TrimPrefix(text, "+"), 10)
	if !ok {
		return Numeric{}, fmt.Errorf("parse xs:integer %q: invalid literal", s)
	}
	return Numeric{kind: NumericInteger, i: i}, nil
}

func (n Numeric) Kind() NumericKind { return n.kind }

func (n Numeric) IsEmpty() bool { return n.kind == NumericEmpty }

func (n Numeric) isFloating() bool {
	return n.kind == NumericDouble || n.kind == NumericFloat
}

func (n Numeric) isNaN() bool {
	return n.isFloating() && math.IsNaN(n.f)
}

// isNegative treats IEEE negative zero as negative; decimal and integer zero never are.
func (n Numeric) isNegative() bool {
	switch n.kind {
	case NumericDouble, NumericFloat:
		return math.Signbit(n.f)
	case NumericDecimal:
		return n.dec.neg && !n.dec.isZero()
	case NumericInteger:
		return n.i.Sign() < 0
	default:
		return false
	}
}

// scaled multiplies by 10^digits (0, 2 or 3) and converts to an exact decimal.
// Floating values are multiplied in their own precision first so an overflowing
// product is reported as infinite.
func (n Numeric) scaled(digits int) (bigDecimal, bool) {
	switch n.kind {
	case NumericDouble:
		v := n.f * math.Pow10(digits)
		if math.IsInf(v, 0) {
			return bigDecimal{}, true
		}
		return floatDecimal(v, 64), false
	case NumericFloat:
		v := float32(n.f) * float32(math.Pow10(digits))
		if math.IsInf(float64(v), 0) {
			return bigDecimal{}, true
		}
		return floatDecimal(float64(v), 32), false
	case NumericDecimal:
		return n.dec.shift(digits), false
	case NumericInteger:
		return bigDecimalFromInt(n.i).shift(digits), false
	default:
		return bigDecimal{coef: new(big.Int)}, false
	}
}

// floatDecimal converts a finite float through its shortest round-tripping form.
func floatDecimal(v float64, bitSize int) bigDecimal {
	d, err := parseBigDecimal(strconv.FormatFloat(v, 'e', -1, bitSize))
	if err != nil {
		return bigDecimal{coef: new(big.Int)}
	}
	return d
}

func (n Numeric) String() string {
	switch n.kind {
	case NumericDouble:
		return strconv.FormatFloat(n.f, 'g', -1, 64)
	case NumericFloat:
		return strconv.FormatFloat(n.f, 'g', -1, 32)
	case NumericDecimal:
		return n.dec.String()
	case NumericInteger:
		return n.i.String()
	default:
		return ""
	}
}
