package fnformat

import (
	"io"
	"sync"
	"time"

	"github.com/go-logfmt/logfmt"
	"golang.org/x/exp/slog"
)

// Operation names the formatting function a hook observes.
type Operation string

const (
	OpFormatNumber   Operation = "format-number"
	OpFormatDateTime Operation = "format-dateTime"
	OpFormatDate     Operation = "format-date"
	OpFormatTime     Operation = "format-time"
)

type FormatHook interface {
	BeforeFormat(ctx *FormatHookContext)
	AfterFormat(ctx *FormatHookContext)
}

// FormatHookContext is created per call. Hooks may rewrite Result and Error in
// AfterFormat.
type FormatHookContext struct {
	Operation Operation
	Value     string
	Picture   string
	Language  string
	Result    string
	Error     error
	Started   time.Time
	Metadata  map[string]any
}

func (ctx *FormatHookContext) SetMetadata(key string, value any) {
	if ctx == nil || key == "" {
		return
	}
	if ctx.Metadata == nil {
		ctx.Metadata = make(map[string]any)
	}
	ctx.Metadata[key] = value
}

func (ctx *FormatHookContext) MetadataValue(key string) (any, bool) {
	if ctx == nil || ctx.Metadata == nil {
		return nil, false
	}
	val, ok := ctx.Metadata[key]
	return val, ok
}

type FormatHookFuncs struct {
	Before func(ctx *FormatHookContext)
	After  func(ctx *FormatHookContext)
}

func (h FormatHookFuncs) BeforeFormat(ctx *FormatHookContext) {
	if h.Before != nil {
		h.Before(ctx)
	}
}

func (h FormatHookFuncs) AfterFormat(ctx *FormatHookContext) {
	if h.After != nil {
		h.After(ctx)
	}
}

func filterHooks(hooks []FormatHook) []FormatHook {
	var filtered []FormatHook
	for _, hook := range hooks {
		if hook != nil {
			filtered = append(filtered, hook)
		}
	}
	return filtered
}

// runHooked wraps format with the before/after hooks.
func runHooked(hooks []FormatHook, ctx *FormatHookContext, format func(ctx *FormatHookContext) (string, error)) (string, error) {
	if len(hooks) == 0 {
		return format(ctx)
	}

	ctx.Started = time.Now()
	for _, hook := range hooks {
		hook.BeforeFormat(ctx)
	}

	ctx.Result, ctx.Error = format(ctx)

	for _, hook := range hooks {
		hook.AfterFormat(ctx)
	}
	return ctx.Result, ctx.Error
}

// NewSlogHook logs every call at debug level, failures at warn level.
func NewSlogHook(logger *slog.Logger) FormatHook {
	if logger == nil {
		return nil
	}
	return FormatHookFuncs{
		After: func(ctx *FormatHookContext) {
			attrs := []any{
				slog.String("op", string(ctx.Operation)),
				slog.String("picture", ctx.Picture),
				slog.String("value", ctx.Value),
			}
			if ctx.Language != "" {
				attrs = append(attrs, slog.String("lang", ctx.Language))
			}
			if ctx.Error != nil {
				attrs = append(attrs, slog.Any("error", ctx.Error))
				if code := Code(ctx.Error); code != "" {
					attrs = append(attrs, slog.String("code", string(code)))
				}
				logger.Warn("format failed", attrs...)
				return
			}
			attrs = append(attrs, slog.String("result", ctx.Result))
			if !ctx.Started.IsZero() {
				attrs = append(attrs, slog.Duration("dur", time.Since(ctx.Started)))
			}
			logger.Debug("formatted", attrs...)
		},
	}
}

// NewLogfmtHook writes one logfmt record per call to w.
func NewLogfmtHook(w io.Writer) FormatHook {
	if w == nil {
		return nil
	}
	var mu sync.Mutex
	enc := logfmt.NewEncoder(w)
	return FormatHookFuncs{
		After: func(ctx *FormatHookContext) {
			keyvals := []any{
				"op", string(ctx.Operation),
				"picture", ctx.Picture,
				"value", ctx.Value,
			}
			if ctx.Language != "" {
				keyvals = append(keyvals, "lang", ctx.Language)
			}
			if ctx.Error != nil {
				keyvals = append(keyvals, "error", ctx.Error.Error(), "code", string(Code(ctx.Error)))
			} else {
				keyvals = append(keyvals, "result", ctx.Result)
			}

			mu.Lock()
			defer mu.Unlock()
			for i := 0; i < len(keyvals); i += 2 {
				if err := enc.EncodeKeyval(keyvals[i], keyvals[i+1]); err != nil {
					return
				}
			}
			_ = enc.EndRecord()
		},
	}
}
