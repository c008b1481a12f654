package fnformat

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

//go:embed data/decimal_formats.json
var builtinDecimalFormatsJSON []byte

// decimalFormatSpec is the file form of a decimal format. Every property is optional
// and overrides the XPath default.
type decimalFormatSpec struct {
	DecimalSeparator  string `json:"decimal-separator" yaml:"decimal-separator"`
	GroupingSeparator string `json:"grouping-separator" yaml:"grouping-separator"`
	ExponentSeparator string `json:"exponent-separator" yaml:"exponent-separator"`
	Digit             string `json:"digit" yaml:"digit"`
	PatternSeparator  string `json:"pattern-separator" yaml:"pattern-separator"`
	Percent           string `json:"percent" yaml:"percent"`
	PerMille          string `json:"per-mille" yaml:"per-mille"`
	ZeroDigit         string `json:"zero-digit" yaml:"zero-digit"`
	MinusSign         string `json:"minus-sign" yaml:"minus-sign"`
	Infinity          string `json:"infinity" yaml:"infinity"`
	NaN               string `json:"NaN" yaml:"NaN"`
}

func (s decimalFormatSpec) build(name string) (DecimalFormat, error) {
	format := DefaultDecimalFormat()
	for _, field := range []struct {
		key   string
		value string
		dest  *rune
	}{
		{"decimal-separator", s.DecimalSeparator, &format.DecimalSeparator},
		{"grouping-separator", s.GroupingSeparator, &format.GroupingSeparator},
		{"exponent-separator", s.ExponentSeparator, &format.ExponentSeparator},
		{"digit", s.Digit, &format.Digit},
		{"pattern-separator", s.PatternSeparator, &format.PatternSeparator},
		{"percent", s.Percent, &format.Percent},
		{"per-mille", s.PerMille, &format.PerMille},
		{"zero-digit", s.ZeroDigit, &format.ZeroDigit},
		{"minus-sign", s.MinusSign, &format.MinusSign},
	} {
		if field.value == "" {
			continue
		}
		if utf8.RuneCountInString(field.value) != 1 {
			return DecimalFormat{}, fmt.Errorf("%w: %s: %s must be a single character, got %q", ErrInvalidDecimalFormat, name, field.key, field.value)
		}
		*field.dest, _ = utf8.DecodeRuneInString(field.value)
	}
	if s.Infinity != "" {
		format.Infinity = s.Infinity
	}
	if s.NaN != "" {
		format.NaN = s.NaN
	}
	if err := format.Validate(); err != nil {
		return DecimalFormat{}, fmt.Errorf("%s: %w", name, err)
	}
	return format, nil
}

// BuiltinDecimalFormats returns the named formats compiled into the package.
func BuiltinDecimalFormats() (map[string]DecimalFormat, error) {
	var specs map[string]decimalFormatSpec
	if err := json.Unmarshal(builtinDecimalFormatsJSON, &specs); err != nil {
		return nil, fmt.Errorf("fnformat: parse builtin decimal formats: %w", err)
	}
	return buildDecimalFormats(specs)
}

// LoadDecimalFormats reads named decimal formats from JSON or YAML files. Later files
// override earlier ones.
func LoadDecimalFormats(paths ...string) (map[string]DecimalFormat, error) {
	if len(paths) == 0 {
		return nil, errors.New("fnformat: no decimal format paths configured")
	}

	specs := make(map[string]decimalFormatSpec)
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("fnformat: read %s: %w", path, err)
		}
		var src map[string]decimalFormatSpec
		if err := decodeDataFile(path, data, &src); err != nil {
			return nil, fmt.Errorf("fnformat: decode %s: %w", path, err)
		}
		for name, spec := range src {
			if name == "" {
				return nil, fmt.Errorf("fnformat: empty decimal format name in %s", path)
			}
			specs[name] = spec
		}
	}
	return buildDecimalFormats(specs)
}

func buildDecimalFormats(specs map[string]decimalFormatSpec) (map[string]DecimalFormat, error) {
	formats := make(map[string]DecimalFormat, len(specs))
	for name, spec := range specs {
		format, err := spec.build(name)
		if err != nil {
			return nil, err
		}
		formats[name] = format
	}
	return formats, nil
}

// LoadNamingData reads naming tables keyed by language from JSON or YAML files.
// Tables are returned sorted by language; a language repeated across files is merged.
func LoadNamingData(paths ...string) ([]NamingData, error) {
	if len(paths) == 0 {
		return nil, errors.New("fnformat: no naming data paths configured")
	}

	merged := make(map[string]NamingData)
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("fnformat: read %s: %w", path, err)
		}
		var src map[string]NamingData
		if err := decodeDataFile(path, data, &src); err != nil {
			return nil, fmt.Errorf("fnformat: decode %s: %w", path, err)
		}
		for lang, table := range src {
			lang = normalizeLanguage(lang)
			if lang == "" {
				return nil, fmt.Errorf("fnformat: empty language in %s", path)
			}
			if err := table.validate(); err != nil {
				return nil, fmt.Errorf("fnformat: %s/%s: %w", path, lang, err)
			}
			table.Language = lang
			if existing, ok := merged[lang]; ok {
				table = existing.merge(table)
			}
			merged[lang] = table
		}
	}

	langs := make([]string, 0, len(merged))
	for lang := range merged {
		langs = append(langs, lang)
	}
	sort.Strings(langs)

	tables := make([]NamingData, 0, len(langs))
	for _, lang := range langs {
		tables = append(tables, merged[lang])
	}
	return tables, nil
}

func (d NamingData) validate() error {
	for _, check := range []struct {
		name  string
		count int
		want  int
	}{
		{"months", len(d.Months), 12},
		{"months_short", len(d.MonthsShort), 12},
		{"days", len(d.Days), 7},
		{"days_short", len(d.DaysShort), 7},
		{"eras", len(d.Eras), 2},
	} {
		if check.count != 0 && check.count != check.want {
			return fmt.Errorf("%s needs %d entries, got %d", check.name, check.want, check.count)
		}
	}
	return nil
}

func decodeDataFile(path string, data []byte, dest any) error {
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".json":
		return json.Unmarshal(data, dest)
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, dest)
	default:
		return fmt.Errorf("unsupported extension %s", ext)
	}
}
