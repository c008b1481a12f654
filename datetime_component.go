package fnformat

import (
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

// legacyMinutePicture is the one picture in which M means minute rather than month.
const legacyMinutePicture = "[H00]:[M00] [ZN]"

// ComponentOptions carries the per-call context a component needs.
type ComponentOptions struct {
	Language string
	Calendar string
	Place    string
	// MonthAsMinute renders M as the minute, see legacyMinutePicture.
	MonthAsMinute bool
	// At resolves named timezones; the zero value uses the value's own instant.
	At time.Time
}

const (
	dateComponents = "YMDdWwF"
	timeComponents = "HhmsfP"
)

// FormatComponent renders one variable marker of a date/time picture.
func FormatComponent(c DateTimeComponent, v DateTimeValue, naming NamingProvider, opts ComponentOptions) (string, error) {
	specifier := c.Specifier
	if specifier == 'M' && opts.MonthAsMinute {
		specifier = 'm'
	}

	switch {
	case strings.ContainsRune(dateComponents, specifier) && !v.hasDate():
		return "", newPictureError(ErrUnsupportedComponent, c.String(), -1, "%c needs a date", specifier)
	case strings.ContainsRune(timeComponents, specifier) && !v.hasTime():
		return "", newPictureError(ErrUnsupportedComponent, c.String(), -1, "%c needs a time", specifier)
	}

	minWidth, maxWidth := 0, Unbounded
	if c.Width != nil {
		minWidth, maxWidth = c.Width.Min, c.Width.Max
	}

	switch specifier {
	case 'Z', 'z':
		offset, ok := v.TimezoneOffset()
		if !ok {
			return "", nil
		}
		at := opts.At
		if at.IsZero() {
			at = v.Time()
		}
		tz := TimezoneFormatter{Naming: naming, Language: opts.Language}
		out := tz.formatOffset(c.Picture, offset, opts.Place, at)
		if specifier == 'z' {
			out = "GMT" + out
		}
		return out, nil
	case 'f':
		return formatFraction(c.Picture, v.Millisecond(), minWidth, maxWidth), nil
	case 'P':
		return formatName(naming.DayPeriod(opts.Language, v.Hour(), minWidth, maxWidth), namePicture(c.Picture, "n"), opts.Language, minWidth, maxWidth), nil
	case 'E':
		return formatName(naming.EraName(opts.Language, v.Year()), namePicture(c.Picture, "N"), opts.Language, minWidth, maxWidth), nil
	case 'C':
		calendar := "AD"
		if strings.EqualFold(opts.Calendar, "ISO") {
			calendar = "ISO"
		}
		return formatName(calendar, namePicture(c.Picture, "N"), opts.Language, minWidth, maxWidth), nil
	}

	value := componentValue(specifier, v)
	if isNamePicture(c.Picture) {
		switch specifier {
		case 'M':
			return formatName(naming.MonthName(opts.Language, value, minWidth, maxWidth), c.Picture, opts.Language, minWidth, maxWidth), nil
		case 'F':
			return formatName(naming.DayName(opts.Language, value, minWidth, maxWidth), c.Picture, opts.Language, minWidth, maxWidth), nil
		}
		// No names exist for the other components.
		return formatInteger(specifier, "1", value, minWidth, maxWidth, naming, opts.Language), nil
	}
	return formatInteger(specifier, c.Picture, value, minWidth, maxWidth, naming, opts.Language), nil
}

func componentValue(specifier rune, v DateTimeValue) int {
	switch specifier {
	case 'Y':
		return v.Year()
	case 'M':
		return v.Month()
	case 'D':
		return v.Day()
	case 'd':
		return v.DayOfYear()
	case 'W':
		return v.WeekOfYear()
	case 'w':
		return v.WeekOfMonth()
	case 'F':
		return v.DayOfWeek()
	case 'H':
		return v.Hour()
	case 'h':
		if h := v.Hour() % 12; h != 0 {
			return h
		}
		return 12
	case 'm':
		return v.Minute()
	case 's':
		return v.Second()
	}
	return 0
}

func (c DateTimeComponent) String() string {
	var b strings.Builder
	b.WriteByte('[')
	b.WriteRune(c.Specifier)
	b.WriteString(c.Picture)
	if c.Width != nil {
		b.WriteByte(',')
		b.WriteString(widthBound(c.Width.Min))
		b.WriteByte('-')
		b.WriteString(widthBound(c.Width.Max))
	}
	b.WriteByte(']')
	return b.String()
}

func widthBound(n int) string {
	if n == Unbounded {
		return "*"
	}
	return strconv.Itoa(n)
}

func isNamePicture(picture string) bool {
	return picture == "N" || picture == "n" || picture == "Nn"
}

func namePicture(picture, fallback string) string {
	if isNamePicture(picture) {
		return picture
	}
	return fallback
}

// formatName cases name per picture, clips it to maxWidth and pads it to minWidth.
func formatName(name, picture, lang string, minWidth, maxWidth int) string {
	tag := languageTag(lang)
	switch picture {
	case "N":
		name = cases.Upper(tag).String(name)
	case "n":
		name = cases.Lower(tag).String(name)
	case "Nn":
		name = cases.Title(tag).String(name)
	}

	if maxWidth != Unbounded && utf8.RuneCountInString(name) > maxWidth {
		name = string([]rune(name)[:maxWidth])
	}
	if n := minWidth - utf8.RuneCountInString(name); n > 0 {
		name += strings.Repeat(" ", n)
	}
	return name
}

// splitModifier separates a trailing o (ordinal), c (cardinal) or t (traditional)
// modifier from a presentation picture.
func splitModifier(picture string) (string, rune) {
	if n := len(picture); n > 1 {
		switch m := rune(picture[n-1]); m {
		case 'o', 'c', 't':
			return picture[:n-1], m
		}
	}
	return picture, 0
}

// formatInteger renders an integer component under a numeric, roman, alphabetic or
// word presentation.
func formatInteger(specifier rune, picture string, value, minWidth, maxWidth int, naming NamingProvider, lang string) string {
	picture, modifier := splitModifier(picture)
	ordinal := modifier == 'o'

	switch picture {
	case "W", "w", "Ww":
		words := naming.Words(lang, int64(value), ordinal)
		return formatName(words, wordsCase(picture), lang, minWidth, Unbounded)
	case "I", "i":
		if value > 0 && value < 4000 {
			return padRight(caseLike(romanNumeral(value), picture), minWidth)
		}
	case "A", "a":
		if value > 0 {
			return padRight(caseLike(alphabeticNumeral(value), picture), minWidth)
		}
	}

	mandatory, optional := 0, 0
	zero := '0'
	for _, r := range picture {
		switch {
		case r == '#':
			optional++
		case unicode.IsDigit(r):
			if mandatory == 0 {
				zero = zeroOf(r)
			}
			mandatory++
		}
	}
	if mandatory == 0 {
		mandatory = 1
	}
	if minWidth == 0 {
		minWidth = mandatory
	}

	if value < 0 {
		value = -value
	}
	digits := strconv.Itoa(value)
	if specifier == 'Y' {
		limit := maxWidth
		if limit == Unbounded && mandatory+optional == 2 {
			limit = 2
		}
		if limit != Unbounded && len(digits) > limit {
			digits = digits[len(digits)-limit:]
		}
	}
	if n := minWidth - len(digits); n > 0 {
		digits = strings.Repeat("0", n) + digits
	}

	out := translateDigits(digits, DecimalFormat{ZeroDigit: zero})
	if ordinal {
		return string(out) + naming.OrdinalSuffix(lang, int64(value))
	}
	return string(out)
}

// formatFraction renders milliseconds as a decimal fraction of a second.
func formatFraction(picture string, millis, minWidth, maxWidth int) string {
	picture, _ = splitModifier(picture)
	count := 0
	zero := '0'
	for _, r := range picture {
		if unicode.IsDigit(r) {
			if count == 0 {
				zero = zeroOf(r)
			}
			count++
		} else if r == '#' {
			count++
		}
	}
	if minWidth == 0 {
		minWidth = max(count, 1)
	}
	if maxWidth == Unbounded && count > 1 {
		maxWidth = count
	}

	digits := strconv.Itoa(millis + 1000)[1:]
	if maxWidth != Unbounded && len(digits) > maxWidth {
		digits = digits[:maxWidth]
	}
	if n := minWidth - len(digits); n > 0 {
		digits += strings.Repeat("0", n)
	}
	for len(digits) > minWidth && digits[len(digits)-1] == '0' {
		digits = digits[:len(digits)-1]
	}
	return string(translateDigits(digits, DecimalFormat{ZeroDigit: zero}))
}

func wordsCase(picture string) string {
	switch picture {
	case "W":
		return "N"
	case "w":
		return "n"
	}
	return "Nn"
}

func caseLike(s, picture string) string {
	if picture == strings.ToLower(picture) {
		return strings.ToLower(s)
	}
	return s
}

func padRight(s string, width int) string {
	if n := width - utf8.RuneCountInString(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}

var romanNumerals = []struct {
	value int
	glyph string
}{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
	{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
	{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
}

func romanNumeral(value int) string {
	var b strings.Builder
	for _, n := range romanNumerals {
		for value >= n.value {
			b.WriteString(n.glyph)
			value -= n.value
		}
	}
	return b.String()
}

// alphabeticNumeral numbers A..Z, AA..AZ, BA.. like spreadsheet columns.
func alphabeticNumeral(value int) string {
	var out []byte
	for value > 0 {
		value--
		out = append([]byte{byte('A' + value%26)}, out...)
		value /= 26
	}
	return string(out)
}
