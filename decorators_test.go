package fnformat

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

type recordingHook struct {
	beforeCalls int
	afterCalls  int
	lastOp      Operation
	lastErr     error
	lastResult  string
}

func (h *recordingHook) BeforeFormat(ctx *FormatHookContext) {
	h.beforeCalls++
}

func (h *recordingHook) AfterFormat(ctx *FormatHookContext) {
	h.afterCalls++
	h.lastOp = ctx.Operation
	h.lastErr = ctx.Error
	h.lastResult = ctx.Result
}

func newHookedEngine(t *testing.T, hooks ...FormatHook) *Engine {
	t.Helper()
	cfg, err := NewConfig(WithHooks(hooks...))
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	engine, err := cfg.BuildEngine()
	if err != nil {
		t.Fatalf("BuildEngine: %v", err)
	}
	return engine
}

func TestFormatHooks(t *testing.T) {
	recorder := &recordingHook{}
	engine := newHookedEngine(t, recorder, nil)

	got, err := engine.FormatNumber(NewDouble(1234.5), "#,##0.00")
	if err != nil {
		t.Fatalf("FormatNumber: %v", err)
	}
	if got != "1,234.50" {
		t.Fatalf("FormatNumber() = %q want 1,234.50", got)
	}
	if recorder.beforeCalls != 1 || recorder.afterCalls != 1 {
		t.Fatalf("unexpected hook counts before=%d after=%d", recorder.beforeCalls, recorder.afterCalls)
	}
	if recorder.lastOp != OpFormatNumber || recorder.lastResult != "1,234.50" {
		t.Fatalf("hook saw op=%s result=%q", recorder.lastOp, recorder.lastResult)
	}

	_, err = engine.FormatDate(mustParseDate(t, "2024-03-05"), "[H]")
	if !errors.Is(recorder.lastErr, ErrUnsupportedComponent) || !errors.Is(err, ErrUnsupportedComponent) {
		t.Fatalf("hook saw err %v, caller got %v", recorder.lastErr, err)
	}
	if recorder.lastOp != OpFormatDate {
		t.Fatalf("hook saw op %s want %s", recorder.lastOp, OpFormatDate)
	}
}

func TestFormatHookCanRewriteResult(t *testing.T) {
	engine := newHookedEngine(t, FormatHookFuncs{
		Before: func(ctx *FormatHookContext) {
			ctx.Picture = strings.TrimSpace(ctx.Picture)
			ctx.SetMetadata("trimmed", true)
		},
		After: func(ctx *FormatHookContext) {
			if trimmed, _ := ctx.MetadataValue("trimmed"); trimmed == true {
				ctx.Result = "<" + ctx.Result + ">"
			}
		},
	})

	got, err := engine.FormatNumber(NewInteger(42), "  000  ")
	if err != nil {
		t.Fatalf("FormatNumber: %v", err)
	}
	if got != "<042>" {
		t.Fatalf("FormatNumber() = %q want <042>", got)
	}
}

func TestLogfmtHook(t *testing.T) {
	var buf bytes.Buffer
	engine := newHookedEngine(t, NewLogfmtHook(&buf))

	if _, err := engine.FormatNumber(NewDouble(0.5), "0%"); err != nil {
		t.Fatalf("FormatNumber: %v", err)
	}
	if _, err := engine.FormatTime(mustParseTime(t, "10:00:00"), "[H"); err == nil {
		t.Fatal("expected picture error")
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 records, got %q", buf.String())
	}
	if lines[0] != "op=format-number picture=0% value=0.5 result=50%" {
		t.Fatalf("unexpected first record %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "op=format-time picture=[H value=10:00:00 lang=en error=") {
		t.Fatalf("unexpected second record %q", lines[1])
	}
	if !strings.HasSuffix(lines[1], "code=FOFD1340") {
		t.Fatalf("expected error code in %q", lines[1])
	}
}

func TestNilHookConstructors(t *testing.T) {
	if NewSlogHook(nil) != nil {
		t.Fatal("expected nil hook for nil logger")
	}
	if NewLogfmtHook(nil) != nil {
		t.Fatal("expected nil hook for nil writer")
	}
}
