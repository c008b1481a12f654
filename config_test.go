package fnformat

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/exp/slog"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	if cfg.DefaultLanguage != "en" {
		t.Fatalf("DefaultLanguage = %q want en", cfg.DefaultLanguage)
	}
	if cfg.DecimalFormat != DefaultDecimalFormat() {
		t.Fatalf("unexpected default decimal format %+v", cfg.DecimalFormat)
	}
	if cfg.Resolver == nil {
		t.Fatal("expected a fallback resolver")
	}
}

func TestConfigRejectsInvalidDecimalFormat(t *testing.T) {
	bad := DefaultDecimalFormat()
	bad.GroupingSeparator = '.'

	if _, err := NewConfig(WithDecimalFormat("bad", bad)); err == nil {
		t.Fatal("expected error for clashing separators")
	}
	if _, err := NewConfig(WithDefaultDecimalFormat(bad)); err == nil {
		t.Fatal("expected error for invalid default format")
	}
	if _, err := NewConfig(WithDecimalFormat("", DefaultDecimalFormat())); err == nil {
		t.Fatal("expected error for empty format name")
	}
}

func TestBuildEngineWithOptions(t *testing.T) {
	swiss := DefaultDecimalFormat()
	swiss.GroupingSeparator = '\''

	cfg, err := NewConfig(
		WithDefaultLanguage("de_DE"),
		WithDecimalFormat("ch", swiss),
		WithDecimalFormatFiles(filepath.Join("testdata", "decimal_formats.yaml")),
		WithNamingData(filepath.Join("testdata", "naming.yaml")),
		WithFallback("pt-BR", "es"),
	)
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}

	engine, err := cfg.BuildEngine()
	if err != nil {
		t.Fatalf("BuildEngine: %v", err)
	}

	if got, err := engine.FormatNumberWithFormat(NewInteger(1234567), "#,##0", "ch"); err != nil || got != "1'234'567" {
		t.Fatalf("ch format = %q,%v", got, err)
	}
	if got, err := engine.FormatNumberWithFormat(NewDouble(1234.5), "# ##0,0", "french"); err != nil || got != "1 234,5" {
		t.Fatalf("french format = %q,%v", got, err)
	}
	if _, ok := engine.DecimalFormat("european"); !ok {
		t.Fatal("builtin formats should stay available")
	}

	date := mustParseDate(t, "2024-03-05")
	if got, err := engine.FormatDate(date, "[D1o] [MNn]"); err != nil || got != "5. März" {
		t.Fatalf("default language = %q,%v want %q", got, err, "5. März")
	}
	if got, err := engine.FormatDate(date, "[MNn]", DateTimeOptions{Language: "it"}); err != nil || got != "Marzo" {
		t.Fatalf("it = %q,%v want Marzo", got, err)
	}
	if got, err := engine.FormatDate(date, "[Mn]", DateTimeOptions{Language: "pt-BR"}); err != nil || got != "marzo" {
		t.Fatalf("pt-BR fallback = %q,%v want marzo", got, err)
	}
}

func TestBuildEngineNamingFileError(t *testing.T) {
	cfg, err := NewConfig(WithNamingData("missing.yaml"))
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	if _, err := cfg.BuildEngine(); err == nil {
		t.Fatal("expected error for missing naming file")
	}
}

func TestBuildEngineWithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cfg, err := NewConfig(WithLogger(logger))
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	engine, err := cfg.BuildEngine()
	if err != nil {
		t.Fatalf("BuildEngine: %v", err)
	}

	if _, err := engine.FormatNumber(NewDouble(0.5), "0%"); err != nil {
		t.Fatalf("FormatNumber: %v", err)
	}
	if _, err := engine.FormatNumber(NewDouble(1), "#0#"); err == nil {
		t.Fatal("expected picture error")
	}

	out := buf.String()
	if !strings.Contains(out, "result=50%") {
		t.Fatalf("expected debug record with result, got %q", out)
	}
	if !strings.Contains(out, "level=WARN") || !strings.Contains(out, "code=FODF1310") {
		t.Fatalf("expected warn record with code, got %q", out)
	}
}
