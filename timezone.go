package fnformat

import (
	"strconv"
	"strings"
	"time"
)

// TimezoneFormatter renders timezone offsets for the Z and z components.
type TimezoneFormatter struct {
	Naming   NamingProvider
	Language string
	// At is the instant used to resolve named zones; the zero value means now.
	At time.Time
}

// Format renders the offset hour:minute under picture. The sign is carried by hour,
// minute is always non-negative.
func (f TimezoneFormatter) Format(picture string, hour, minute int, place string) string {
	offset := hour*60 + minute
	if hour < 0 {
		offset = hour*60 - minute
	}
	at := f.At
	if at.IsZero() {
		at = time.Now()
	}
	return f.formatOffset(picture, offset, place, at)
}

// formatOffset works on signed minutes so offsets like -00:30 keep their sign.
func (f TimezoneFormatter) formatOffset(picture string, offset int, place string, at time.Time) string {
	switch picture {
	case "Z":
		return militaryZone(offset)
	case "N":
		if f.Naming != nil {
			if name, ok := f.Naming.TimezoneName(f.Language, place, offset, at); ok {
				return name
			}
		}
		return numericOffset(offset, 2, ":", true)
	}

	if rest, ok := strings.CutSuffix(picture, "t"); ok {
		if offset == 0 {
			return "Z"
		}
		picture = rest
	}

	hourDigits, sep, hasSep := splitOffsetPicture(picture)
	switch {
	case hasSep:
		return numericOffset(offset, hourDigits, sep, true)
	case hourDigits <= 2:
		// "0": minutes only when present.
		return numericOffset(offset, hourDigits, ":", offset%60 != 0)
	default:
		return numericOffset(offset, hourDigits-2, "", true)
	}
}

// splitOffsetPicture counts the hour digits of an offset picture and returns the
// separator between hours and minutes, if any.
func splitOffsetPicture(picture string) (hourDigits int, sep string, hasSep bool) {
	runes := []rune(picture)
	for i, r := range runes {
		if digitValue(r) >= 0 || r == '#' {
			hourDigits++
			continue
		}
		return max(hourDigits, 1), string(runes[i : i+1]), true
	}
	return max(hourDigits, 1), "", false
}

func numericOffset(offset, hourDigits int, sep string, withMinutes bool) string {
	sign := "+"
	if offset < 0 {
		sign = "-"
		offset = -offset
	}
	h := strconv.Itoa(offset / 60)
	if n := hourDigits - len(h); n > 0 {
		h = strings.Repeat("0", n) + h
	}
	if !withMinutes {
		return sign + h
	}
	m := strconv.Itoa(offset % 60)
	if len(m) < 2 {
		m = "0" + m
	}
	return sign + h + sep + m
}

// militaryZone returns the single-letter zone, or +HH:MM when none exists.
func militaryZone(offset int) string {
	if offset%60 != 0 || offset > 12*60 || offset < -12*60 {
		return numericOffset(offset, 2, ":", true)
	}
	hours := offset / 60
	switch {
	case hours == 0:
		return "Z"
	case hours > 0 && hours < 10:
		return string(rune('A' + hours - 1))
	case hours > 0:
		// J is not used.
		return string(rune('K' + hours - 10))
	default:
		return string(rune('N' - hours - 1))
	}
}
