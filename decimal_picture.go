package fnformat

import (
	"sort"
	"strings"
)

// SubPicture describes how to render a value of one sign. It is produced by
// AnalyzeDecimalPicture and must be treated as read only.
type SubPicture struct {
	IntegerGroupingPositions    []int
	MinimumIntegerDigits        int
	ScalingFactor               int
	FractionalGroupingPositions []int
	MinimumFractionalDigits     int
	MaximumFractionalDigits     int
	MinimumExponentDigits       int
	Prefix                      string
	Suffix                      string
	HasIntegerOptionalDigit     bool
	HasPercent                  bool
	HasPerMille                 bool
	HasDecimalSeparator         bool
}

// DecimalPicture is a parsed format-number picture. Negative is nil when the
// picture has a single sub-picture.
type DecimalPicture struct {
	Positive SubPicture
	Negative *SubPicture
}

// negated synthesizes the implicit negative sub-picture.
func (s SubPicture) negated(minus rune) SubPicture {
	out := s
	out.Prefix = string(minus) + s.Prefix
	return out
}

// regularGrouping reports whether positions repeat at a fixed interval. The interval
// is the smallest position; every position must be a multiple of it and every
// multiple up to the largest position must be present.
func regularGrouping(positions []int) (int, bool) {
	if len(positions) == 0 {
		return 0, false
	}
	interval := positions[0]
	for _, p := range positions[1:] {
		if p < interval {
			interval = p
		}
	}
	if interval <= 0 {
		return 0, false
	}

	present := make(map[int]struct{}, len(positions))
	largest := 0
	for _, p := range positions {
		if p%interval != 0 {
			return 0, false
		}
		present[p] = struct{}{}
		if p > largest {
			largest = p
		}
	}
	for m := interval; m <= largest; m += interval {
		if _, ok := present[m]; !ok {
			return 0, false
		}
	}
	return interval, true
}

type pictureState int

const (
	integerPart pictureState = iota
	fractionalPart
	exponentPart
)

type charKind int

const (
	kindNone charKind = iota
	kindPassive
	kindDigit
	kindOptional
	kindGrouping
	kindDecimal
	kindExponent
)

// AnalyzeDecimalPicture parses a format-number picture into its positive and optional
// negative sub-pictures.
func AnalyzeDecimalPicture(picture string, format DecimalFormat) (DecimalPicture, error) {
	if picture == "" {
		return DecimalPicture{}, newPictureError(ErrInvalidPicture, picture, -1, "picture string is empty")
	}

	runes := []rune(picture)
	var (
		subs    []SubPicture
		builder = newSubPictureBuilder(picture, format)
	)

	for i, r := range runes {
		if r == format.PatternSeparator {
			if len(subs) == 1 {
				return DecimalPicture{}, newPictureError(ErrInvalidPicture, picture, i, "more than one pattern separator")
			}
			sub, err := builder.build(i)
			if err != nil {
				return DecimalPicture{}, err
			}
			subs = append(subs, sub)
			builder = newSubPictureBuilder(picture, format)
			continue
		}

		var next rune
		hasNext := i+1 < len(runes) && runes[i+1] != format.PatternSeparator
		if hasNext {
			next = runes[i+1]
		}
		if err := builder.accept(i, r, next, hasNext); err != nil {
			return DecimalPicture{}, err
		}
	}

	last, err := builder.build(len(runes))
	if err != nil {
		return DecimalPicture{}, err
	}
	subs = append(subs, last)

	result := DecimalPicture{Positive: subs[0]}
	if len(subs) == 2 {
		negative := subs[1]
		result.Negative = &negative
	}
	return result, nil
}

// subPictureBuilder accumulates one sub-picture; build freezes it into a SubPicture.
type subPictureBuilder struct {
	picture string
	format  DecimalFormat

	state      pictureState
	prev       charKind
	seenActive bool
	prefix     strings.Builder
	suffix     strings.Builder

	intMarks    []int
	intDigits   int
	intZeros    int
	intOptional bool

	hasDecimal   bool
	fracMarks    []int
	fracDigits   int
	fracZeros    int
	fracOptional bool

	hasExponent bool
	expDigits   int

	percent  int
	perMille int
}

func newSubPictureBuilder(picture string, format DecimalFormat) *subPictureBuilder {
	return &subPictureBuilder{picture: picture, format: format}
}

// baseKind classifies r ignoring the exponent separator, which depends on context.
func (b *subPictureBuilder) baseKind(r rune) charKind {
	switch {
	case b.format.isDigitFamily(r):
		return kindDigit
	case r == b.format.Digit:
		return kindOptional
	case r == b.format.GroupingSeparator:
		return kindGrouping
	case r == b.format.DecimalSeparator:
		return kindDecimal
	default:
		return kindPassive
	}
}

func (b *subPictureBuilder) accept(offset int, r, next rune, hasNext bool) error {
	kind := b.baseKind(r)
	if kind == kindPassive && r == b.format.ExponentSeparator {
		if b.prev != kindNone && b.prev != kindPassive && hasNext && b.baseKind(next) != kindPassive {
			kind = kindExponent
		}
	}

	if kind == kindPassive {
		if !b.seenActive {
			b.prefix.WriteRune(r)
		} else {
			b.suffix.WriteRune(r)
		}
		switch r {
		case b.format.Percent:
			b.percent++
		case b.format.PerMille:
			b.perMille++
		}
		b.prev = kindPassive
		return nil
	}

	if b.seenActive && b.suffix.Len() > 0 {
		return b.fail(offset, "passive character %q appears between active characters", []rune(b.suffix.String())[0])
	}
	b.seenActive = true

	var err error
	switch b.state {
	case integerPart:
		err = b.acceptInteger(offset, kind)
	case fractionalPart:
		err = b.acceptFraction(offset, kind)
	case exponentPart:
		if kind != kindDigit {
			err = b.fail(offset, "only decimal digits may follow the exponent separator")
		}
		b.expDigits++
	}
	if err != nil {
		return err
	}
	b.prev = kind
	return nil
}

func (b *subPictureBuilder) acceptInteger(offset int, kind charKind) error {
	switch kind {
	case kindDigit:
		b.intDigits++
		b.intZeros++
	case kindOptional:
		if b.intZeros > 0 {
			return b.fail(offset, "optional digit follows a decimal digit in the integer part")
		}
		b.intDigits++
		b.intOptional = true
	case kindGrouping:
		if b.prev == kindGrouping {
			return b.fail(offset, "adjacent grouping separators")
		}
		b.intMarks = append(b.intMarks, b.intDigits)
	case kindDecimal:
		if b.prev == kindGrouping {
			return b.fail(offset, "grouping separator adjacent to decimal separator")
		}
		b.hasDecimal = true
		b.state = fractionalPart
	case kindExponent:
		b.hasExponent = true
		b.state = exponentPart
	}
	return nil
}

func (b *subPictureBuilder) acceptFraction(offset int, kind charKind) error {
	switch kind {
	case kindDigit:
		if b.fracOptional {
			return b.fail(offset, "decimal digit follows an optional digit in the fractional part")
		}
		b.fracDigits++
		b.fracZeros++
	case kindOptional:
		b.fracDigits++
		b.fracOptional = true
	case kindGrouping:
		switch b.prev {
		case kindDecimal:
			return b.fail(offset, "grouping separator adjacent to decimal separator")
		case kindGrouping:
			return b.fail(offset, "adjacent grouping separators")
		}
		b.fracMarks = append(b.fracMarks, b.fracDigits)
	case kindDecimal:
		return b.fail(offset, "more than one decimal separator")
	case kindExponent:
		b.hasExponent = true
		b.state = exponentPart
	}
	return nil
}

func (b *subPictureBuilder) build(offset int) (SubPicture, error) {
	if b.intDigits+b.fracDigits == 0 {
		return SubPicture{}, b.fail(offset, "sub-picture has no digit or optional digit in its mantissa")
	}
	if b.percent > 1 {
		return SubPicture{}, b.fail(offset, "more than one percent sign")
	}
	if b.perMille > 1 {
		return SubPicture{}, b.fail(offset, "more than one per-mille sign")
	}
	if b.percent > 0 && b.perMille > 0 {
		return SubPicture{}, b.fail(offset, "both percent and per-mille signs")
	}
	if b.hasExponent && (b.percent > 0 || b.perMille > 0) {
		return SubPicture{}, b.fail(offset, "exponent combined with percent or per-mille")
	}
	if n := len(b.intMarks); n > 0 && b.intMarks[n-1] == b.intDigits {
		return SubPicture{}, b.fail(offset, "grouping separator at the end of the integer part")
	}

	sub := SubPicture{
		MinimumIntegerDigits:    b.intZeros,
		ScalingFactor:           b.intZeros,
		MinimumFractionalDigits: b.fracZeros,
		MaximumFractionalDigits: b.fracDigits,
		MinimumExponentDigits:   b.expDigits,
		Prefix:                  b.prefix.String(),
		Suffix:                  b.suffix.String(),
		HasIntegerOptionalDigit: b.intOptional,
		HasPercent:              b.percent > 0,
		HasPerMille:             b.perMille > 0,
		HasDecimalSeparator:     b.hasDecimal,
	}

	var intPositions []int
	for _, mark := range b.intMarks {
		if p := b.intDigits - mark; p > 0 {
			intPositions = append(intPositions, p)
		}
	}
	sub.IntegerGroupingPositions = sortedUnique(intPositions)

	var fracPositions []int
	for _, mark := range b.fracMarks {
		if mark > 0 {
			fracPositions = append(fracPositions, mark)
		}
	}
	sub.FractionalGroupingPositions = sortedUnique(fracPositions)

	adjustSubPicture(&sub, b.hasExponent)
	return sub, nil
}

// adjustSubPicture applies the post-parse repairs that guarantee at least one digit
// is always rendered.
func adjustSubPicture(sub *SubPicture, hasExponent bool) {
	if sub.MinimumIntegerDigits == 0 && sub.MaximumFractionalDigits == 0 {
		if hasExponent {
			sub.MinimumFractionalDigits = 1
			sub.MaximumFractionalDigits = 1
		} else {
			sub.MinimumIntegerDigits = 1
		}
	}
	if hasExponent && sub.MinimumIntegerDigits == 0 && sub.HasIntegerOptionalDigit {
		sub.MinimumIntegerDigits = 1
	}
	if sub.MinimumIntegerDigits == 0 && sub.MinimumFractionalDigits == 0 {
		sub.MinimumFractionalDigits = 1
	}
}

func (b *subPictureBuilder) fail(offset int, format string, args ...any) *PictureError {
	return newPictureError(ErrInvalidPicture, b.picture, offset, format, args...)
}

func sortedUnique(values []int) []int {
	if len(values) == 0 {
		return nil
	}
	sort.Ints(values)
	out := values[:1]
	for _, v := range values[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}
