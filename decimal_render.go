package fnformat

import (
	"strconv"
	"strings"
)

// decimal64Digits is the significant-digit budget used to locate the exponent.
const decimal64Digits = 16

// RenderDecimal formats value with an analyzed picture. The picture has already been
// validated, so rendering cannot fail: NaN, infinity and zero are ordinary outputs.
func RenderDecimal(value Numeric, format DecimalFormat, picture DecimalPicture) string {
	if value.IsEmpty() || value.isNaN() {
		return format.NaN
	}

	sub := picture.Positive
	if value.isNegative() {
		if picture.Negative != nil {
			sub = *picture.Negative
		} else {
			sub = picture.Positive.negated(format.MinusSign)
		}
	}

	scale := 0
	switch {
	case sub.HasPercent:
		scale = 2
	case sub.HasPerMille:
		scale = 3
	}
	number, infinite := value.scaled(scale)
	if infinite {
		return sub.Prefix + format.Infinity + sub.Suffix
	}
	mantissa := number.abs()

	exponent := 0
	withExponent := sub.MinimumExponentDigits > 0
	if withExponent && !mantissa.isZero() {
		exponent = mantissa.roundSignificant(decimal64Digits).magnitude() - sub.ScalingFactor + 1
		mantissa = mantissa.shift(-exponent)
	}

	mantissa = mantissa.roundHalfUp(sub.MaximumFractionalDigits)
	if withExponent && mantissa.integerDigits() > sub.ScalingFactor {
		// rounding carried into a new integer digit
		mantissa = mantissa.shift(-1).roundHalfUp(sub.MaximumFractionalDigits)
		exponent++
	}

	intDigits, fracDigits := mantissa.plainDigits()
	if n := sub.MinimumIntegerDigits - len(intDigits); n > 0 {
		intDigits = strings.Repeat("0", n) + intDigits
	}
	if n := sub.MinimumFractionalDigits - len(fracDigits); n > 0 {
		fracDigits += strings.Repeat("0", n)
	}

	intRunes := groupInteger(translateDigits(intDigits, format), sub.IntegerGroupingPositions, format.GroupingSeparator)
	fracRunes := groupFraction(translateDigits(fracDigits, format), sub.FractionalGroupingPositions, format.GroupingSeparator)

	var b strings.Builder
	b.WriteString(sub.Prefix)
	b.WriteString(string(intRunes))
	// Without a declared separator the fractional digits run straight on from the
	// integer digits.
	if len(fracRunes) > 0 && sub.HasDecimalSeparator {
		b.WriteRune(format.DecimalSeparator)
	}
	b.WriteString(string(fracRunes))
	if withExponent {
		b.WriteRune(format.ExponentSeparator)
		if exponent < 0 {
			b.WriteRune(format.MinusSign)
			exponent = -exponent
		}
		digits := strconv.Itoa(exponent)
		if n := sub.MinimumExponentDigits - len(digits); n > 0 {
			digits = strings.Repeat("0", n) + digits
		}
		b.WriteString(string(translateDigits(digits, format)))
	}
	b.WriteString(sub.Suffix)
	return b.String()
}

// translateDigits maps ASCII digits onto the format's digit family.
func translateDigits(ascii string, format DecimalFormat) []rune {
	out := make([]rune, 0, len(ascii))
	for i := 0; i < len(ascii); i++ {
		out = append(out, format.digit(int(ascii[i]-'0')))
	}
	return out
}

// groupInteger inserts sep counting positions leftwards from the decimal point.
func groupInteger(digits []rune, positions []int, sep rune) []rune {
	if len(positions) == 0 || len(digits) < 2 {
		return digits
	}

	at := make(map[int]bool)
	if interval, ok := regularGrouping(positions); ok {
		for p := interval; p < len(digits); p += interval {
			at[p] = true
		}
	} else {
		for _, p := range positions {
			if p > 0 && p < len(digits) {
				at[p] = true
			}
		}
	}

	out := make([]rune, 0, len(digits)+len(at))
	for i, r := range digits {
		if at[len(digits)-i] && i > 0 {
			out = append(out, sep)
		}
		out = append(out, r)
	}
	return out
}

// groupFraction inserts sep counting positions rightwards from the decimal point.
func groupFraction(digits []rune, positions []int, sep rune) []rune {
	if len(positions) == 0 {
		return digits
	}
	at := make(map[int]bool, len(positions))
	for _, p := range positions {
		if p > 0 && p < len(digits) {
			at[p] = true
		}
	}
	out := make([]rune, 0, len(digits)+len(at))
	for i, r := range digits {
		if at[i] {
			out = append(out, sep)
		}
		out = append(out, r)
	}
	return out
}
