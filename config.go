package fnformat

import (
	"errors"
	"fmt"

	"golang.org/x/exp/slog"
)

// Config captures engine setup
type Config struct {
	DefaultLanguage string
	DecimalFormat   DecimalFormat
	Naming          NamingProvider
	Resolver        FallbackResolver
	Hooks           []FormatHook
	Logger          *slog.Logger

	decimalFormats     map[string]DecimalFormat
	decimalFormatFiles []string
	namingFiles        []string
}

// Option mutates Config during construction
type Option func(*Config) error

// NewConfig builds Config via supplied options
func NewConfig(opts ...Option) (*Config, error) {
	cfg := &Config{DecimalFormat: DefaultDecimalFormat()}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	cfg.DefaultLanguage = normalizeLanguage(cfg.DefaultLanguage)
	if cfg.DefaultLanguage == "" {
		cfg.DefaultLanguage = defaultNamingLanguage
	}

	if cfg.Resolver == nil {
		cfg.Resolver = NewStaticFallbackResolver()
	}

	return cfg, nil
}

// WithDefaultLanguage sets the language used when a call names none
func WithDefaultLanguage(language string) Option {
	return func(c *Config) error {
		c.DefaultLanguage = language
		return nil
	}
}

// WithDefaultDecimalFormat replaces the unnamed decimal format
func WithDefaultDecimalFormat(format DecimalFormat) Option {
	return func(c *Config) error {
		if err := format.Validate(); err != nil {
			return err
		}
		c.DecimalFormat = format
		return nil
	}
}

// WithDecimalFormat registers a named decimal format
func WithDecimalFormat(name string, format DecimalFormat) Option {
	return func(c *Config) error {
		if name == "" {
			return errors.New("fnformat: decimal format name is empty")
		}
		if err := format.Validate(); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		if c.decimalFormats == nil {
			c.decimalFormats = make(map[string]DecimalFormat)
		}
		c.decimalFormats[name] = format
		return nil
	}
}

// WithDecimalFormatFiles loads named decimal formats from JSON or YAML files at build time
func WithDecimalFormatFiles(paths ...string) Option {
	return func(c *Config) error {
		c.decimalFormatFiles = append(c.decimalFormatFiles, paths...)
		return nil
	}
}

func WithNamingProvider(provider NamingProvider) Option {
	return func(c *Config) error {
		c.Naming = provider
		return nil
	}
}

// WithNamingData merges naming tables from JSON or YAML files into the built-in provider
func WithNamingData(paths ...string) Option {
	return func(c *Config) error {
		c.namingFiles = append(c.namingFiles, paths...)
		return nil
	}
}

func WithFallbackResolver(resolver FallbackResolver) Option {
	return func(c *Config) error {
		c.Resolver = resolver
		return nil
	}
}

func WithFallback(language string, fallbacks ...string) Option {
	return func(c *Config) error {
		if language == "" {
			return nil
		}
		resolver, ok := c.Resolver.(*StaticFallbackResolver)
		if !ok {
			if c.Resolver != nil {
				return nil
			}
			resolver = NewStaticFallbackResolver()
			c.Resolver = resolver
		}
		resolver.Set(language, fallbacks...)
		return nil
	}
}

func WithHooks(hooks ...FormatHook) Option {
	return func(c *Config) error {
		c.Hooks = append(c.Hooks, filterHooks(hooks)...)
		return nil
	}
}

// WithLogger logs every call through a slog hook
func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}

func (cfg *Config) BuildEngine() (*Engine, error) {
	if cfg == nil {
		return nil, errors.New("fnformat: nil config")
	}

	formats, err := BuiltinDecimalFormats()
	if err != nil {
		return nil, err
	}
	if len(cfg.decimalFormatFiles) > 0 {
		loaded, err := LoadDecimalFormats(cfg.decimalFormatFiles...)
		if err != nil {
			return nil, err
		}
		for name, format := range loaded {
			formats[name] = format
		}
	}
	for name, format := range cfg.decimalFormats {
		formats[name] = format
	}

	naming := cfg.Naming
	if naming == nil {
		var tables []NamingData
		if len(cfg.namingFiles) > 0 {
			if tables, err = LoadNamingData(cfg.namingFiles...); err != nil {
				return nil, err
			}
		}
		naming = NewLocaleNaming(cfg.Resolver, tables...)
	}

	hooks := filterHooks(cfg.Hooks)
	if cfg.Logger != nil {
		hooks = append(hooks, NewSlogHook(cfg.Logger))
	}

	return &Engine{
		defaultLanguage: cfg.DefaultLanguage,
		defaultFormat:   cfg.DecimalFormat,
		formats:         formats,
		naming:          naming,
		hooks:           hooks,
	}, nil
}
