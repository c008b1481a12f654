package fnformat

import (
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// NamingProvider supplies the language-specific words used by date/time pictures.
// Implementations must be safe for concurrent use.
type NamingProvider interface {
	// MonthName returns the name of month 1..12, abbreviated when the full name is
	// wider than maxWidth (Unbounded for no limit).
	MonthName(language string, month, minWidth, maxWidth int) string
	// DayName returns the name of ISO day 1 (Monday) .. 7 (Sunday).
	DayName(language string, day, minWidth, maxWidth int) string
	// DayPeriod returns the am/pm marker for hour 0..23.
	DayPeriod(language string, hour, minWidth, maxWidth int) string
	EraName(language string, year int) string
	// TimezoneName names the offset, preferring the zone of place when given.
	TimezoneName(language, place string, offsetMinutes int, at time.Time) (string, bool)
	OrdinalSuffix(language string, value int64) string
	Words(language string, value int64, ordinal bool) string
}

// LanguageResolver is implemented by providers that can report which language they
// actually serve for a request.
type LanguageResolver interface {
	ResolveLanguage(language string) (resolved string, supported bool)
}

// NamingData is one language's naming table. Days start on Monday; Eras holds the
// BC and AD designators in that order.
type NamingData struct {
	Language    string   `json:"language" yaml:"language"`
	Months      []string `json:"months" yaml:"months"`
	MonthsShort []string `json:"months_short" yaml:"months_short"`
	Days        []string `json:"days" yaml:"days"`
	DaysShort   []string `json:"days_short" yaml:"days_short"`
	AM          string   `json:"am" yaml:"am"`
	PM          string   `json:"pm" yaml:"pm"`
	Eras        []string `json:"eras" yaml:"eras"`
	Ordinal     string   `json:"ordinal" yaml:"ordinal"`
}

// merge overlays the non-empty fields of other.
func (d NamingData) merge(other NamingData) NamingData {
	if len(other.Months) == 12 {
		d.Months = other.Months
		d.MonthsShort = abbreviate(other.Months, 3)
	}
	if len(other.MonthsShort) == 12 {
		d.MonthsShort = other.MonthsShort
	}
	if len(other.Days) == 7 {
		d.Days = other.Days
		d.DaysShort = abbreviate(other.Days, 3)
	}
	if len(other.DaysShort) == 7 {
		d.DaysShort = other.DaysShort
	}
	if other.AM != "" {
		d.AM = other.AM
	}
	if other.PM != "" {
		d.PM = other.PM
	}
	if len(other.Eras) == 2 {
		d.Eras = other.Eras
	}
	if other.Ordinal != "" {
		d.Ordinal = other.Ordinal
	}
	return d
}

func abbreviate(names []string, width int) []string {
	out := make([]string, len(names))
	for i, name := range names {
		if runes := []rune(name); len(runes) > width {
			name = string(runes[:width])
		}
		out[i] = name
	}
	return out
}

const defaultNamingLanguage = "en"

// LocaleNaming is the built-in NamingProvider. Its tables are read only after
// construction.
type LocaleNaming struct {
	tables   map[string]NamingData
	resolver FallbackResolver
}

var (
	_ NamingProvider   = &LocaleNaming{}
	_ LanguageResolver = &LocaleNaming{}
)

// NewLocaleNaming builds a provider from the generated CLDR tables, overlaid with
// extra tables (matched by Language).
func NewLocaleNaming(resolver FallbackResolver, extra ...NamingData) *LocaleNaming {
	tables := make(map[string]NamingData, len(generatedNaming)+len(extra))
	for lang, data := range generatedNaming {
		tables[lang] = data
	}
	for _, data := range extra {
		lang := normalizeLanguage(data.Language)
		if lang == "" {
			continue
		}
		base, ok := tables[lang]
		if !ok {
			base = generatedNaming[defaultNamingLanguage]
			base.Language = lang
		}
		tables[lang] = base.merge(data)
	}
	return &LocaleNaming{tables: tables, resolver: resolver}
}

// ResolveLanguage tries the exact language, explicit fallbacks, then parent tags.
// Requests nothing matches are served in English and reported as unsupported.
func (n *LocaleNaming) ResolveLanguage(lang string) (string, bool) {
	lang = normalizeLanguage(lang)
	if lang == "" {
		return defaultNamingLanguage, true
	}
	if _, ok := n.tables[lang]; ok {
		return lang, true
	}
	if n.resolver != nil {
		for _, candidate := range n.resolver.Resolve(lang) {
			if _, ok := n.tables[candidate]; ok {
				return candidate, true
			}
		}
	}
	for _, parent := range languageParentChain(lang) {
		if _, ok := n.tables[parent]; ok {
			return parent, true
		}
	}
	return defaultNamingLanguage, false
}

func (n *LocaleNaming) table(lang string) NamingData {
	resolved, _ := n.ResolveLanguage(lang)
	return n.tables[resolved]
}

func (n *LocaleNaming) MonthName(lang string, month, minWidth, maxWidth int) string {
	t := n.table(lang)
	if month < 1 || month > 12 {
		return strconv.Itoa(month)
	}
	return fitName(t.Months[month-1], pick(t.MonthsShort, month-1), maxWidth)
}

func (n *LocaleNaming) DayName(lang string, day, minWidth, maxWidth int) string {
	t := n.table(lang)
	if day < 1 || day > 7 {
		return strconv.Itoa(day)
	}
	return fitName(t.Days[day-1], pick(t.DaysShort, day-1), maxWidth)
}

func (n *LocaleNaming) DayPeriod(lang string, hour, minWidth, maxWidth int) string {
	t := n.table(lang)
	if hour < 12 {
		return t.AM
	}
	return t.PM
}

func (n *LocaleNaming) EraName(lang string, year int) string {
	t := n.table(lang)
	if len(t.Eras) != 2 {
		return ""
	}
	if year > 0 {
		return t.Eras[1]
	}
	return t.Eras[0]
}

// wellKnownZones names common standard-time offsets when no place is given.
var wellKnownZones = map[int]string{
	-600: "HST",
	-480: "PST",
	-420: "MST",
	-360: "CST",
	-300: "EST",
	0:    "GMT",
	60:   "CET",
	120:  "EET",
	330:  "IST",
	540:  "JST",
}

func (n *LocaleNaming) TimezoneName(lang, place string, offsetMinutes int, at time.Time) (string, bool) {
	if place != "" {
		if loc, err := time.LoadLocation(place); err == nil {
			name, seconds := at.In(loc).Zone()
			if seconds/60 == offsetMinutes && name != "" && !strings.ContainsAny(name[:1], "+-") {
				return name, true
			}
		}
	}
	name, ok := wellKnownZones[offsetMinutes]
	return name, ok
}

func (n *LocaleNaming) OrdinalSuffix(lang string, value int64) string {
	switch n.table(lang).Ordinal {
	case "spanish":
		return "º"
	case "german":
		return "."
	case "french":
		if value == 1 {
			return "er"
		}
		return "e"
	default:
		return englishOrdinalSuffix(value)
	}
}

// Words spells value out. Only English words are available; other languages fall
// back to them.
func (n *LocaleNaming) Words(lang string, value int64, ordinal bool) string {
	return englishWords(value, ordinal)
}

func pick(values []string, idx int) string {
	if idx < 0 || idx >= len(values) {
		return ""
	}
	return values[idx]
}

// fitName prefers the full name and falls back to the abbreviation when the full
// name does not fit maxWidth.
func fitName(full, short string, maxWidth int) string {
	if maxWidth == Unbounded || utf8.RuneCountInString(full) <= maxWidth || short == "" {
		return full
	}
	return short
}

func englishOrdinalSuffix(value int64) string {
	abs := value
	if abs < 0 {
		abs = -abs
	}
	mod100 := abs % 100
	if mod100 >= 11 && mod100 <= 13 {
		return "th"
	}
	switch abs % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}

var (
	smallWords = []string{
		"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine",
		"ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen", "sixteen",
		"seventeen", "eighteen", "nineteen",
	}
	tensWords  = []string{"", "", "twenty", "thirty", "forty", "fifty", "sixty", "seventy", "eighty", "ninety"}
	scaleWords = []struct {
		value int64
		name  string
	}{
		{1_000_000_000_000_000_000, "quintillion"},
		{1_000_000_000_000_000, "quadrillion"},
		{1_000_000_000_000, "trillion"},
		{1_000_000_000, "billion"},
		{1_000_000, "million"},
		{1_000, "thousand"},
	}
	irregularOrdinals = map[string]string{
		"one":    "first",
		"two":    "second",
		"three":  "third",
		"five":   "fifth",
		"eight":  "eighth",
		"nine":   "ninth",
		"twelve": "twelfth",
	}
)

func englishWords(value int64, ordinal bool) string {
	var words string
	switch {
	case value < 0:
		// -value overflows for MinInt64; spell the magnitude via uint64.
		words = "minus " + cardinalWords(uint64(-(value+1))+1)
	default:
		words = cardinalWords(uint64(value))
	}
	if !ordinal {
		return words
	}

	cut := strings.LastIndexAny(words, " -") + 1
	last := words[cut:]
	switch {
	case irregularOrdinals[last] != "":
		last = irregularOrdinals[last]
	case strings.HasSuffix(last, "y"):
		last = strings.TrimSuffix(last, "y") + "ieth"
	default:
		last += "th"
	}
	return words[:cut] + last
}

func cardinalWords(v uint64) string {
	if v < 20 {
		return smallWords[v]
	}
	if v < 100 {
		if v%10 == 0 {
			return tensWords[v/10]
		}
		return tensWords[v/10] + "-" + smallWords[v%10]
	}
	if v < 1000 {
		head := smallWords[v/100] + " hundred"
		if v%100 == 0 {
			return head
		}
		return head + " and " + cardinalWords(v%100)
	}
	for _, scale := range scaleWords {
		s := uint64(scale.value)
		if v < s {
			continue
		}
		head := cardinalWords(v/s) + " " + scale.name
		rest := v % s
		switch {
		case rest == 0:
			return head
		case rest < 100:
			return head + " and " + cardinalWords(rest)
		default:
			return head + " " + cardinalWords(rest)
		}
	}
	return strconv.FormatUint(v, 10)
}
