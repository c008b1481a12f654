package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	cldr "golang.org/x/text/unicode/cldr"
)

type generatorConfig struct {
	pkg      string
	out      string
	cldrPath string
	locales  []string
}

type namingPayload struct {
	Language    string
	Months      []string
	MonthsShort []string
	Days        []string
	DaysShort   []string
	AM          string
	PM          string
	Eras        []string
	Ordinal     string
}

// CLDR day types in ISO order, Monday first.
var dayTypes = []string{"mon", "tue", "wed", "thu", "fri", "sat", "sun"}

type localeFlag struct {
	items []string
}

func (f *localeFlag) String() string {
	return strings.Join(f.items, ",")
}

func (f *localeFlag) Set(value string) error {
	parts := strings.Split(value, ",")
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		f.items = append(f.items, part)
	}
	return nil
}

func main() {
	cfg, err := parseFlags()
	if err != nil {
		reportError(err)
	}

	if err := run(cfg); err != nil {
		reportError(err)
	}
}

func reportError(err error) {
	fmt.Fprintf(os.Stderr, "fnformat-names: %v\n", err)
	os.Exit(1)
}

func parseFlags() (generatorConfig, error) {
	var cfg generatorConfig
	var localeList localeFlag

	flag.StringVar(&cfg.pkg, "pkg", "fnformat", "package name for generated file")
	flag.StringVar(&cfg.out, "out", "naming_data.go", "path to generated Go file")
	flag.StringVar(&cfg.cldrPath, "cldr", "", "path to CLDR core data directory (expects a main/ subdirectory)")
	flag.Var(&localeList, "locale", "language to generate. Repeat flag or separate with commas to add more.")

	flag.Parse()

	if len(localeList.items) == 0 {
		return generatorConfig{}, errors.New("at least one -locale value is required")
	}

	for _, item := range localeList.items {
		locale, err := normalizeLocale(item)
		if err != nil {
			return generatorConfig{}, err
		}
		cfg.locales = append(cfg.locales, locale)
	}

	if cfg.cldrPath == "" {
		cfg.cldrPath = os.Getenv("CLDR_CORE_DIR")
	}

	if cfg.cldrPath == "" {
		return generatorConfig{}, errors.New("missing CLDR data directory (set -cldr or CLDR_CORE_DIR)")
	}

	return cfg, nil
}

func run(cfg generatorConfig) error {
	data, err := loadCLDR(cfg.cldrPath)
	if err != nil {
		return err
	}

	var payloads []namingPayload
	for _, locale := range cfg.locales {
		payload, err := buildNaming(data, locale)
		if err != nil {
			return fmt.Errorf("build naming for %s: %w", locale, err)
		}
		payloads = append(payloads, payload)
	}

	sort.Slice(payloads, func(i, j int) bool {
		return payloads[i].Language < payloads[j].Language
	})

	source, err := renderSource(cfg.pkg, payloads)
	if err != nil {
		return err
	}

	if err := ensureDir(cfg.out); err != nil {
		return err
	}

	return os.WriteFile(cfg.out, source, 0o644)
}

func loadCLDR(path string) (*cldr.CLDR, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat CLDR directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("CLDR path %q is not a directory", path)
	}

	var decoder cldr.Decoder
	decoder.SetSectionFilter("main")

	data, err := decoder.DecodePath(path)
	if err != nil {
		return nil, fmt.Errorf("decode CLDR data: %w", err)
	}
	return data, nil
}

// normalizeLocale canonicalizes a BCP 47 tag, e.g. "pt_br" -> "pt-BR".
func normalizeLocale(input string) (string, error) {
	input = strings.ReplaceAll(strings.TrimSpace(input), "_", "-")
	if input == "" {
		return "", errors.New("empty locale value")
	}
	tag, err := language.Parse(input)
	if err != nil {
		return "", fmt.Errorf("invalid locale %q: %w", input, err)
	}
	return tag.String(), nil
}

func buildNaming(data *cldr.CLDR, locale string) (namingPayload, error) {
	payload := namingPayload{Language: locale, Ordinal: detectOrdinalSystem(locale)}

	chain := ldmlChain(data, locale)
	if len(chain) == 0 {
		return payload, fmt.Errorf("missing LDML data")
	}

	// Walk from the most specific LDML to root, keeping the first value found.
	for _, ldml := range chain {
		calendar := gregorian(ldml)
		if calendar == nil {
			continue
		}
		if payload.Months == nil {
			payload.Months = extractMonths(calendar, "wide")
		}
		if payload.MonthsShort == nil {
			payload.MonthsShort = extractMonths(calendar, "abbreviated")
		}
		if payload.Days == nil {
			payload.Days = extractDays(calendar, "wide")
		}
		if payload.DaysShort == nil {
			payload.DaysShort = extractDays(calendar, "abbreviated")
		}
		if payload.AM == "" && payload.PM == "" {
			payload.AM, payload.PM = extractDayPeriods(calendar)
		}
		if payload.Eras == nil {
			payload.Eras = extractEras(calendar)
		}
	}

	if payload.Months == nil || payload.Days == nil {
		return payload, fmt.Errorf("no gregorian month or day names")
	}
	return payload, nil
}

// ldmlChain returns the raw LDML of locale and each of its truncations, ending at root.
func ldmlChain(data *cldr.CLDR, locale string) []*cldr.LDML {
	if data == nil {
		return nil
	}
	var chain []*cldr.LDML
	candidate := strings.ReplaceAll(locale, "-", "_")
	for candidate != "" {
		if ldml := data.RawLDML(candidate); ldml != nil {
			chain = append(chain, ldml)
		}
		idx := strings.LastIndex(candidate, "_")
		if idx < 0 {
			break
		}
		candidate = candidate[:idx]
	}
	if root := data.RawLDML("root"); root != nil {
		chain = append(chain, root)
	}
	return chain
}

func gregorian(ldml *cldr.LDML) *cldr.Calendar {
	if ldml == nil || ldml.Dates == nil || ldml.Dates.Calendars == nil {
		return nil
	}
	for _, calendar := range ldml.Dates.Calendars.Calendar {
		if calendar != nil && calendar.Type == "gregorian" {
			return calendar
		}
	}
	return nil
}

func extractMonths(calendar *cldr.Calendar, width string) []string {
	if calendar.Months == nil {
		return nil
	}
	names := make([]string, 12)
	found := 0
	for _, context := range calendar.Months.MonthContext {
		if context == nil || context.Type != "format" {
			continue
		}
		for _, w := range context.MonthWidth {
			if w == nil || w.Type != width {
				continue
			}
			for _, month := range w.Month {
				if month == nil || month.Alt != "" {
					continue
				}
				n, err := strconv.Atoi(month.Type)
				if err != nil || n < 1 || n > 12 || names[n-1] != "" {
					continue
				}
				names[n-1] = month.Data()
				found++
			}
		}
	}
	if found != 12 {
		return nil
	}
	return names
}

func extractDays(calendar *cldr.Calendar, width string) []string {
	if calendar.Days == nil {
		return nil
	}
	byType := make(map[string]string, 7)
	for _, context := range calendar.Days.DayContext {
		if context == nil || context.Type != "format" {
			continue
		}
		for _, w := range context.DayWidth {
			if w == nil || w.Type != width {
				continue
			}
			for _, day := range w.Day {
				if day == nil || day.Alt != "" {
					continue
				}
				if _, exists := byType[day.Type]; !exists {
					byType[day.Type] = day.Data()
				}
			}
		}
	}

	names := make([]string, 0, len(dayTypes))
	for _, typ := range dayTypes {
		name, ok := byType[typ]
		if !ok {
			return nil
		}
		names = append(names, name)
	}
	return names
}

func extractDayPeriods(calendar *cldr.Calendar) (string, string) {
	if calendar.DayPeriods == nil {
		return "", ""
	}
	var am, pm string
	for _, context := range calendar.DayPeriods.DayPeriodContext {
		if context == nil || context.Type != "format" {
			continue
		}
		for _, w := range context.DayPeriodWidth {
			if w == nil || w.Type != "abbreviated" {
				continue
			}
			for _, period := range w.DayPeriod {
				if period == nil || period.Alt != "" {
					continue
				}
				switch period.Type {
				case "am":
					am = period.Data()
				case "pm":
					pm = period.Data()
				}
			}
		}
	}
	return am, pm
}

func extractEras(calendar *cldr.Calendar) []string {
	if calendar.Eras == nil || calendar.Eras.EraAbbr == nil {
		return nil
	}
	eras := make([]string, 2)
	for _, era := range calendar.Eras.EraAbbr.Era {
		if era == nil || era.Alt != "" {
			continue
		}
		switch era.Type {
		case "0":
			eras[0] = era.Data()
		case "1":
			eras[1] = era.Data()
		}
	}
	if eras[0] == "" || eras[1] == "" {
		return nil
	}
	return eras
}

func detectOrdinalSystem(locale string) string {
	locale = strings.ToLower(locale)
	switch {
	case strings.HasPrefix(locale, "es"), strings.HasPrefix(locale, "it"), strings.HasPrefix(locale, "pt"):
		return "spanish"
	case strings.HasPrefix(locale, "de"):
		return "german"
	case strings.HasPrefix(locale, "fr"):
		return "french"
	default:
		return "english"
	}
}

func renderSource(pkg string, payloads []namingPayload) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("// Code generated by fnformat-names. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", pkg)

	buf.WriteString("var generatedNaming = map[string]NamingData{\n")
	for _, payload := range payloads {
		fmt.Fprintf(&buf, "\t%q: {\n", payload.Language)
		fmt.Fprintf(&buf, "\t\tLanguage: %q,\n", payload.Language)
		writeStrings(&buf, "Months", payload.Months)
		writeStrings(&buf, "MonthsShort", payload.MonthsShort)
		writeStrings(&buf, "Days", payload.Days)
		writeStrings(&buf, "DaysShort", payload.DaysShort)
		fmt.Fprintf(&buf, "\t\tAM: %q,\n", payload.AM)
		fmt.Fprintf(&buf, "\t\tPM: %q,\n", payload.PM)
		writeStrings(&buf, "Eras", payload.Eras)
		fmt.Fprintf(&buf, "\t\tOrdinal: %q,\n", payload.Ordinal)
		buf.WriteString("\t},\n")
	}
	buf.WriteString("}\n\n")

	buf.WriteString("var generatedNamingLanguages = []string{\n")
	for _, payload := range payloads {
		fmt.Fprintf(&buf, "\t%q,\n", payload.Language)
	}
	buf.WriteString("}\n\n")

	buf.WriteString("// GeneratedNamingLanguages lists the languages compiled into LocaleNaming.\n")
	buf.WriteString("func GeneratedNamingLanguages() []string {\n")
	buf.WriteString("\treturn append([]string{}, generatedNamingLanguages...)\n")
	buf.WriteString("}\n")

	return format.Source(buf.Bytes())
}

func writeStrings(buf *bytes.Buffer, field string, values []string) {
	if len(values) == 0 {
		return
	}
	fmt.Fprintf(buf, "\t\t%s: []string{", field)
	for i, v := range values {
		if i > 0 {
			buf.WriteString(", ")
		}
		fmt.Fprintf(buf, "%q", v)
	}
	buf.WriteString("},\n")
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
