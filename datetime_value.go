package fnformat

import (
	"fmt"
	"strings"
	"time"
)

// DateTimeKind distinguishes xs:dateTime, xs:date and xs:time values.
type DateTimeKind int

const (
	// KindEmpty is the empty sequence.
	KindEmpty DateTimeKind = iota
	KindDateTime
	KindDate
	KindTime
)

func (k DateTimeKind) String() string {
	switch k {
	case KindDateTime:
		return "xs:dateTime"
	case KindDate:
		return "xs:date"
	case KindTime:
		return "xs:time"
	default:
		return "empty-sequence()"
	}
}

// DateTimeValue is a read-only Gregorian date/time. Values without a timezone are
// stored in UTC with hasTZ unset. The zero value is the empty sequence.
type DateTimeValue struct {
	t     time.Time
	kind  DateTimeKind
	hasTZ bool
}

// NewDateTime wraps t; when hasTimezone is false the wall-clock fields of t are used
// and its location is ignored.
func NewDateTime(t time.Time, hasTimezone bool) DateTimeValue {
	return newDateTimeValue(t, KindDateTime, hasTimezone)
}

func NewDate(t time.Time, hasTimezone bool) DateTimeValue {
	return newDateTimeValue(t, KindDate, hasTimezone)
}

func NewTime(t time.Time, hasTimezone bool) DateTimeValue {
	return newDateTimeValue(t, KindTime, hasTimezone)
}

func newDateTimeValue(t time.Time, kind DateTimeKind, hasTZ bool) DateTimeValue {
	if !hasTZ {
		t = time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
	}
	switch kind {
	case KindDate:
		t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	case KindTime:
		t = time.Date(1972, time.January, 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	}
	return DateTimeValue{t: t, kind: kind, hasTZ: hasTZ}
}

var (
	dateTimeLayouts = []string{"2006-01-02T15:04:05.999999999Z07:00", "2006-01-02T15:04:05.999999999"}
	dateLayouts     = []string{"2006-01-02Z07:00", "2006-01-02"}
	timeLayouts     = []string{"15:04:05.999999999Z07:00", "15:04:05.999999999"}
)

// ParseDateTime reads the xs:dateTime lexical form, e.g. 2024-03-05T13:04:05.250+01:00.
func ParseDateTime(s string) (DateTimeValue, error) {
	return parseLexical(s, KindDateTime, dateTimeLayouts)
}

// ParseDate reads the xs:date lexical form, e.g. 2024-03-05 or 2024-03-05Z.
func ParseDate(s string) (DateTimeValue, error) {
	return parseLexical(s, KindDate, dateLayouts)
}

// ParseTime reads the xs:time lexical form, e.g. 13:04:05 or 13:04:05-05:00.
func ParseTime(s string) (DateTimeValue, error) {
	return parseLexical(s, KindTime, timeLayouts)
}

func parseLexical(s string, kind DateTimeKind, layouts []string) (DateTimeValue, error) {
	text := strings.TrimSpace(s)
	if text == "" {
		return DateTimeValue{}, nil
	}
	var lastErr error
	for i, layout := range layouts {
		t, err := time.Parse(layout, text)
		if err != nil {
			lastErr = err
			continue
		}
		return newDateTimeValue(t, kind, i == 0), nil
	}
	return DateTimeValue{}, fmt.Errorf("parse %s %q: %w", kind, s, lastErr)
}

func (v DateTimeValue) Kind() DateTimeKind { return v.kind }

func (v DateTimeValue) IsEmpty() bool { return v.kind == KindEmpty }

// Time returns the underlying instant.
func (v DateTimeValue) Time() time.Time { return v.t }

func (v DateTimeValue) HasTimezone() bool { return v.hasTZ }

func (v DateTimeValue) hasDate() bool { return v.kind == KindDateTime || v.kind == KindDate }

func (v DateTimeValue) hasTime() bool { return v.kind == KindDateTime || v.kind == KindTime }

func (v DateTimeValue) Year() int        { return v.t.Year() }
func (v DateTimeValue) Month() int       { return int(v.t.Month()) }
func (v DateTimeValue) Day() int         { return v.t.Day() }
func (v DateTimeValue) Hour() int        { return v.t.Hour() }
func (v DateTimeValue) Minute() int      { return v.t.Minute() }
func (v DateTimeValue) Second() int      { return v.t.Second() }
func (v DateTimeValue) Millisecond() int { return v.t.Nanosecond() / int(time.Millisecond) }
func (v DateTimeValue) DayOfYear() int   { return v.t.YearDay() }

// DayOfWeek numbers days ISO style, 1 for Monday through 7 for Sunday.
func (v DateTimeValue) DayOfWeek() int {
	if wd := v.t.Weekday(); wd != time.Sunday {
		return int(wd)
	}
	return 7
}

// WeekOfYear is the ISO 8601 week number.
func (v DateTimeValue) WeekOfYear() int {
	_, week := v.t.ISOWeek()
	return week
}

// WeekOfMonth applies the ISO week rule within a month: weeks start on Monday and a
// week belongs to the month holding its Thursday, so early days can fall in the last
// week of the previous month.
func (v DateTimeValue) WeekOfMonth() int {
	thursday := v.t.AddDate(0, 0, 4-v.DayOfWeek())
	return (thursday.Day()-1)/7 + 1
}

// TimezoneOffset returns the offset from UTC in minutes and whether one is present.
func (v DateTimeValue) TimezoneOffset() (int, bool) {
	if !v.hasTZ {
		return 0, false
	}
	_, seconds := v.t.Zone()
	return seconds / 60, true
}

func (v DateTimeValue) String() string {
	layout := ""
	switch v.kind {
	case KindDateTime:
		layout = "2006-01-02T15:04:05.999"
	case KindDate:
		layout = "2006-01-02"
	case KindTime:
		layout = "15:04:05.999"
	default:
		return ""
	}
	if v.hasTZ {
		layout += "Z07:00"
	}
	return v.t.Format(layout)
}
