package fnformat

import (
	"strings"
	"sync"
)

// DateTimeOptions are the optional language, calendar and place arguments of the
// date/time formatting functions.
type DateTimeOptions struct {
	Language string
	Calendar string
	Place    string
}

// Engine formats numbers and dates against a fixed set of decimal formats and a
// naming provider. It is immutable and safe for concurrent use.
type Engine struct {
	defaultLanguage string
	defaultFormat   DecimalFormat
	formats         map[string]DecimalFormat
	naming          NamingProvider
	hooks           []FormatHook
}

// DecimalFormat returns the named decimal format; "" names the default format.
func (e *Engine) DecimalFormat(name string) (DecimalFormat, bool) {
	if name == "" {
		return e.defaultFormat, true
	}
	format, ok := e.formats[name]
	return format, ok
}

func (e *Engine) FormatNumber(value Numeric, picture string) (string, error) {
	return e.FormatNumberWithFormat(value, picture, "")
}

// FormatNumberWithFormat formats value using the named decimal format.
func (e *Engine) FormatNumberWithFormat(value Numeric, picture, decimalFormatName string) (string, error) {
	ctx := &FormatHookContext{
		Operation: OpFormatNumber,
		Value:     value.String(),
		Picture:   picture,
	}
	if decimalFormatName != "" {
		ctx.SetMetadata("decimal_format", decimalFormatName)
	}

	return runHooked(e.hooks, ctx, func(ctx *FormatHookContext) (string, error) {
		format, ok := e.DecimalFormat(decimalFormatName)
		if !ok {
			return "", newPictureError(ErrUnknownDecimalFormat, ctx.Picture, -1, "no decimal format named %q", decimalFormatName)
		}
		analyzed, err := AnalyzeDecimalPicture(ctx.Picture, format)
		if err != nil {
			return "", err
		}
		return RenderDecimal(value, format, analyzed), nil
	})
}

func (e *Engine) FormatDateTime(value DateTimeValue, picture string, opts ...DateTimeOptions) (string, error) {
	return e.formatTemporal(OpFormatDateTime, KindDateTime, value, picture, opts)
}

func (e *Engine) FormatDate(value DateTimeValue, picture string, opts ...DateTimeOptions) (string, error) {
	return e.formatTemporal(OpFormatDate, KindDate, value, picture, opts)
}

func (e *Engine) FormatTime(value DateTimeValue, picture string, opts ...DateTimeOptions) (string, error) {
	return e.formatTemporal(OpFormatTime, KindTime, value, picture, opts)
}

func (e *Engine) formatTemporal(op Operation, kind DateTimeKind, value DateTimeValue, picture string, opts []DateTimeOptions) (string, error) {
	var opt DateTimeOptions
	if len(opts) > 0 {
		opt = opts[0]
	}
	if opt.Language == "" {
		opt.Language = e.defaultLanguage
	}

	ctx := &FormatHookContext{
		Operation: op,
		Value:     value.String(),
		Picture:   picture,
		Language:  opt.Language,
	}

	return runHooked(e.hooks, ctx, func(ctx *FormatHookContext) (string, error) {
		if value.IsEmpty() {
			return "", nil
		}
		if value.Kind() != kind {
			return "", newPictureError(ErrTypeMismatch, ctx.Picture, -1, "%s expects %s, got %s", op, kind, value.Kind())
		}

		segments, err := ScanDateTimePicture(ctx.Picture)
		if err != nil {
			return "", err
		}

		var b strings.Builder
		language, supported := e.resolveLanguage(ctx.Language)
		if !supported {
			b.WriteString("[Language: " + language + "]")
		}
		if !knownCalendar(opt.Calendar) {
			b.WriteString("[Calendar: AD]")
		}

		compOpts := ComponentOptions{
			Language:      language,
			Calendar:      opt.Calendar,
			Place:         opt.Place,
			MonthAsMinute: ctx.Picture == legacyMinutePicture,
		}
		for _, segment := range segments {
			if !segment.IsComponent() {
				b.WriteString(segment.Literal)
				continue
			}
			out, err := FormatComponent(*segment.Component, value, e.naming, compOpts)
			if err != nil {
				return "", err
			}
			b.WriteString(out)
		}
		return b.String(), nil
	})
}

func (e *Engine) resolveLanguage(language string) (string, bool) {
	if resolver, ok := e.naming.(LanguageResolver); ok {
		return resolver.ResolveLanguage(language)
	}
	return language, true
}

func knownCalendar(calendar string) bool {
	switch strings.ToUpper(strings.TrimSpace(calendar)) {
	case "", "AD", "ISO":
		return true
	}
	return false
}

var (
	defaultEngineOnce sync.Once
	defaultEngine     *Engine
)

// Default returns the engine used by the package-level functions: XPath default
// symbols, the built-in decimal formats and the generated naming tables.
func Default() *Engine {
	defaultEngineOnce.Do(func() {
		cfg, err := NewConfig()
		if err == nil {
			defaultEngine, err = cfg.BuildEngine()
		}
		if err != nil {
			defaultEngine = &Engine{
				defaultLanguage: defaultNamingLanguage,
				defaultFormat:   DefaultDecimalFormat(),
				naming:          NewLocaleNaming(nil),
			}
		}
	})
	return defaultEngine
}

func FormatNumber(value Numeric, picture string) (string, error) {
	return Default().FormatNumber(value, picture)
}

func FormatDateTime(value DateTimeValue, picture string, opts ...DateTimeOptions) (string, error) {
	return Default().FormatDateTime(value, picture, opts...)
}

func FormatDate(value DateTimeValue, picture string, opts ...DateTimeOptions) (string, error) {
	return Default().FormatDate(value, picture, opts...)
}

func FormatTime(value DateTimeValue, picture string, opts ...DateTimeOptions) (string, error) {
	return Default().FormatTime(value, picture, opts...)
}
