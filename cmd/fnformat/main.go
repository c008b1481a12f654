package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/goliatone/go-fnformat"
)

type cliConfig struct {
	kind       string
	picture    string
	language   string
	calendar   string
	place      string
	formatName string
	formats    string
	names      string
	workers    int
	trace      bool
	values     []string
}

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		reportError(err)
	}

	if err := run(cfg, os.Stdin, os.Stdout, os.Stderr); err != nil {
		reportError(err)
	}
}

func reportError(err error) {
	fmt.Fprintf(os.Stderr, "fnformat: %v\n", err)
	os.Exit(1)
}

func parseFlags(args []string) (cliConfig, error) {
	var cfg cliConfig
	fs := flag.NewFlagSet("fnformat", flag.ContinueOnError)

	fs.StringVar(&cfg.kind, "kind", "number", "value kind: number, date, time or datetime")
	fs.StringVar(&cfg.picture, "picture", "", "picture string")
	fs.StringVar(&cfg.language, "lang", "", "language for date/time names")
	fs.StringVar(&cfg.calendar, "calendar", "", "calendar for date/time values (AD or ISO)")
	fs.StringVar(&cfg.place, "place", "", "IANA timezone used to name offsets")
	fs.StringVar(&cfg.formatName, "format-name", "", "named decimal format for numbers")
	fs.StringVar(&cfg.formats, "formats", "", "JSON or YAML file with named decimal formats")
	fs.StringVar(&cfg.names, "names", "", "JSON or YAML file with naming tables")
	fs.IntVar(&cfg.workers, "workers", 4, "number of values formatted concurrently")
	fs.BoolVar(&cfg.trace, "trace", false, "write a logfmt trace record per value to stderr")

	if err := fs.Parse(args); err != nil {
		return cliConfig{}, err
	}

	switch cfg.kind {
	case "number", "date", "time", "datetime":
	default:
		return cliConfig{}, fmt.Errorf("unknown -kind %q", cfg.kind)
	}
	if cfg.picture == "" {
		return cliConfig{}, errors.New("-picture is required")
	}
	if cfg.workers < 1 {
		cfg.workers = 1
	}
	cfg.values = fs.Args()
	return cfg, nil
}

func run(cfg cliConfig, stdin io.Reader, stdout, stderr io.Writer) error {
	engine, err := buildEngine(cfg, stderr)
	if err != nil {
		return err
	}

	values := cfg.values
	if len(values) == 0 {
		if values, err = readLines(stdin); err != nil {
			return err
		}
	}

	results := make([]string, len(values))
	var g errgroup.Group
	g.SetLimit(cfg.workers)
	for i, value := range values {
		i, value := i, value
		g.Go(func() error {
			out, err := formatValue(engine, cfg, value)
			if err != nil {
				return fmt.Errorf("%q: %w", value, err)
			}
			results[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	w := bufio.NewWriter(stdout)
	for _, line := range results {
		fmt.Fprintln(w, line)
	}
	return w.Flush()
}

func buildEngine(cfg cliConfig, stderr io.Writer) (*fnformat.Engine, error) {
	opts := []fnformat.Option{}
	if cfg.language != "" {
		opts = append(opts, fnformat.WithDefaultLanguage(cfg.language))
	}
	if cfg.formats != "" {
		opts = append(opts, fnformat.WithDecimalFormatFiles(cfg.formats))
	}
	if cfg.names != "" {
		opts = append(opts, fnformat.WithNamingData(cfg.names))
	}
	if cfg.trace {
		opts = append(opts, fnformat.WithHooks(fnformat.NewLogfmtHook(stderr)))
	}

	conf, err := fnformat.NewConfig(opts...)
	if err != nil {
		return nil, err
	}
	return conf.BuildEngine()
}

func formatValue(engine *fnformat.Engine, cfg cliConfig, value string) (string, error) {
	opts := fnformat.DateTimeOptions{
		Language: cfg.language,
		Calendar: cfg.calendar,
		Place:    cfg.place,
	}

	switch cfg.kind {
	case "date":
		v, err := fnformat.ParseDate(value)
		if err != nil {
			return "", err
		}
		return engine.FormatDate(v, cfg.picture, opts)
	case "time":
		v, err := fnformat.ParseTime(value)
		if err != nil {
			return "", err
		}
		return engine.FormatTime(v, cfg.picture, opts)
	case "datetime":
		v, err := fnformat.ParseDateTime(value)
		if err != nil {
			return "", err
		}
		return engine.FormatDateTime(v, cfg.picture, opts)
	default:
		v, err := fnformat.ParseNumeric(value)
		if err != nil {
			return "", err
		}
		return engine.FormatNumberWithFormat(v, cfg.picture, cfg.formatName)
	}
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, scanner.Err()
}
