package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/goliatone/go-md2html/internal/markdown"
	"github.com/goliatone/go-md2html/pkg/interfaces"
)

var (
	ErrEngineUnknown           = errors.New("md2html config: markdown engine is invalid")
	ErrLoggingProviderRequired = errors.New("md2html config: logging provider is required when logging feature is enabled")
	ErrLoggingProviderUnknown  = errors.New("md2html config: logging provider is invalid")
	ErrLoggingLevelInvalid     = errors.New("md2html config: logging level is invalid")
	ErrLoggingFormatInvalid    = errors.New("md2html config: logging format is invalid")
	ErrCommandTimeoutInvalid   = errors.New("md2html config: command timeout must be zero or positive")
)

const (
	EngineNative   = markdown.EngineNative
	EngineGoldmark = markdown.EngineGoldmark
)

// Config is the runtime configuration for the converter.
type Config struct {
	Engine   string         `yaml:"engine"`
	Parser   ParserConfig   `yaml:"parser"`
	Features Features       `yaml:"features"`
	Logging  LoggingConfig  `yaml:"logging"`
	Commands CommandsConfig `yaml:"commands"`
}

// ParserConfig mirrors interfaces.ParseOptions. Paragraphs, InlineStyles and
// HeadingIDs only affect the native engine; Extensions, HardWraps and SafeMode
// only affect goldmark.
type ParserConfig struct {
	Paragraphs       bool     `yaml:"paragraphs"`
	InlineStyles     bool     `yaml:"inline_styles"`
	HeadingIDs       bool     `yaml:"heading_ids"`
	StripFrontMatter bool     `yaml:"strip_front_matter"`
	Extensions       []string `yaml:"extensions"`
	HardWraps        bool     `yaml:"hard_wraps"`
	SafeMode         bool     `yaml:"safe_mode"`
}

// Features toggles optional subsystems.
type Features struct {
	Logger bool `yaml:"logger"`
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string   `yaml:"provider"`
	Level     string   `yaml:"level"`
	Format    string   `yaml:"format"`
	AddSource bool     `yaml:"add_source"`
	Focus     []string `yaml:"focus"`
}

// CommandsConfig captures command-layer behaviour. A zero Timeout disables
// the per command deadline.
type CommandsConfig struct {
	Timeout time.Duration `yaml:"timeout"`
}

// DefaultConfig returns the native engine with paragraphs and inline styles
// enabled and logging switched off.
func DefaultConfig() Config {
	return Config{
		Engine: EngineNative,
		Parser: ParserConfig{
			Paragraphs:   true,
			InlineStyles: true,
		},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
		},
		Commands: CommandsConfig{
			Timeout: 30 * time.Second,
		},
	}
}

// ParseOptions converts the parser section into parser defaults.
func (p ParserConfig) ParseOptions() interfaces.ParseOptions {
	paragraphs := p.Paragraphs
	inline := p.InlineStyles
	return interfaces.ParseOptions{
		Paragraphs:   &paragraphs,
		InlineStyles: &inline,
		HeadingIDs:   p.HeadingIDs,
		Extensions:   append([]string(nil), p.Extensions...),
		HardWraps:    p.HardWraps,
		SafeMode:     p.SafeMode,
	}
}

// NormalizedEngine returns the lower-cased engine name, defaulting to native.
func (cfg Config) NormalizedEngine() string {
	engine := strings.ToLower(strings.TrimSpace(cfg.Engine))
	if engine == "" {
		return EngineNative
	}
	return engine
}

// Validate ensures the configuration is internally consistent.
func (cfg Config) Validate() error {
	switch engine := cfg.NormalizedEngine(); engine {
	case EngineNative, EngineGoldmark:
	default:
		return fmt.Errorf("%w: %s", ErrEngineUnknown, engine)
	}
	if cfg.Commands.Timeout < 0 {
		return fmt.Errorf("%w: %s", ErrCommandTimeoutInvalid, cfg.Commands.Timeout)
	}
	if cfg.Features.Logger {
		provider := NormalizeProvider(cfg.Logging.Provider)
		if provider == "" {
			return ErrLoggingProviderRequired
		}
		if !isSupportedProvider(provider) {
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
		}
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if provider == "gologger" {
			if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
				return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
			}
		}
	}
	return nil
}

// NormalizeProvider lower-cases and trims a logging provider name.
func NormalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "console", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
