// Package md2html converts a small Markdown dialect into HTML.
//
// Transform is the pure core: headings, "-" and "*" lists, paragraphs and the
// **bold** / __emphasis__ inline styles. Module wraps it with file loading,
// optional front matter stripping, structured logging and a command handler
// used by the md2html CLI.
package md2html

import (
	"context"
	"fmt"

	"github.com/goliatone/go-md2html/internal/commands"
	convertcmd "github.com/goliatone/go-md2html/internal/commands/convert"
	"github.com/goliatone/go-md2html/internal/logging"
	"github.com/goliatone/go-md2html/internal/logging/console"
	"github.com/goliatone/go-md2html/internal/logging/gologger"
	"github.com/goliatone/go-md2html/internal/markdown"
	"github.com/goliatone/go-md2html/internal/runtimeconfig"
	"github.com/goliatone/go-md2html/pkg/interfaces"
)

type (
	Document       = interfaces.Document
	FrontMatter    = interfaces.FrontMatter
	ParseOptions   = interfaces.ParseOptions
	MarkdownParser = interfaces.MarkdownParser
	Logger         = interfaces.Logger
	LoggerProvider = interfaces.LoggerProvider

	ConvertFileCommand = convertcmd.ConvertFileCommand
	ConvertFileHandler = convertcmd.ConvertFileHandler
	CommandRegistry    = convertcmd.CommandRegistry
)

var (
	// ErrMissingInput matches conversions whose input file does not exist.
	ErrMissingInput = markdown.ErrMissingInput
	// ErrUnknownEngine is returned when a parser engine name is not registered.
	ErrUnknownEngine = markdown.ErrUnknownEngine
)

// MissingInputCode is the go-errors text code carried by missing input
// failures reported through the command handler.
const MissingInputCode = convertcmd.MissingInputCode

// Transform converts document text into HTML using the default rules.
func Transform(text string) string {
	return markdown.Transform(text)
}

// Module is the top level converter runtime.
type Module struct {
	cfg      Config
	provider interfaces.LoggerProvider
	logger   interfaces.Logger
	parser   interfaces.MarkdownParser
	service  *markdown.Service
	convert  *convertcmd.ConvertFileHandler
	registry convertcmd.CommandRegistry
}

// Option overrides a dependency New would otherwise build from Config.
type Option func(*Module)

// WithLoggerProvider replaces the provider selected by Config.Logging.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(m *Module) {
		if provider != nil {
			m.provider = provider
		}
	}
}

// WithParser replaces the parser selected by Config.Engine.
func WithParser(parser interfaces.MarkdownParser) Option {
	return func(m *Module) {
		if parser != nil {
			m.parser = parser
		}
	}
}

// WithCommandRegistry registers the convert handler with reg while New runs,
// so a go-command dispatcher can route ConvertFileCommand messages to it.
func WithCommandRegistry(reg CommandRegistry) Option {
	return func(m *Module) {
		m.registry = reg
	}
}

// New validates cfg and wires the logger provider, parser, service and
// convert handler. The handler is registered with the command registry when
// one is supplied.
func New(cfg Config, opts ...Option) (*Module, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	m := &Module{cfg: cfg}
	for _, opt := range opts {
		if opt != nil {
			opt(m)
		}
	}

	if m.provider == nil {
		provider, err := newLoggerProvider(cfg)
		if err != nil {
			return nil, err
		}
		m.provider = provider
	}
	m.logger = logging.ModuleLogger(m.provider, "")

	defaults := cfg.Parser.ParseOptions()
	if m.parser == nil {
		parser, err := markdown.NewParser(cfg.NormalizedEngine(), defaults)
		if err != nil {
			return nil, err
		}
		m.parser = parser
	}

	m.service = markdown.NewService(markdown.Config{
		Parser:           defaults,
		StripFrontMatter: cfg.Parser.StripFrontMatter,
	}, m.parser, markdown.WithLogger(logging.MarkdownLogger(m.provider)))

	handler, err := convertcmd.RegisterConvertCommands(m.registry, m.service, m.provider,
		convertcmd.WithHandlerOptions(commands.WithTimeout[convertcmd.ConvertFileCommand](cfg.Commands.Timeout)),
	)
	if err != nil {
		return nil, fmt.Errorf("md2html: register convert command: %w", err)
	}
	m.convert = handler
	return m, nil
}

// Config returns the configuration the module was built with.
func (m *Module) Config() Config {
	return m.cfg
}

// Service exposes the Markdown file service.
func (m *Module) Service() interfaces.MarkdownService {
	return m.service
}

// Logger returns the root module logger.
func (m *Module) Logger() interfaces.Logger {
	return m.logger
}

// LoggerProvider returns the provider every module logger is derived from.
func (m *Module) LoggerProvider() interfaces.LoggerProvider {
	return m.provider
}

// ConvertHandler exposes the go-command handler for file conversions.
func (m *Module) ConvertHandler() *ConvertFileHandler {
	return m.convert
}

// Convert converts input into output through the command handler. A missing
// input file yields an error matching ErrMissingInput.
func (m *Module) Convert(ctx context.Context, input, output string) error {
	return m.convert.Execute(ctx, ConvertFileCommand{InputPath: input, OutputPath: output})
}

// Render converts Markdown bytes with the module parser and defaults.
func (m *Module) Render(ctx context.Context, source []byte) ([]byte, error) {
	return m.service.Render(ctx, source, interfaces.ParseOptions{})
}

func newLoggerProvider(cfg Config) (interfaces.LoggerProvider, error) {
	if !cfg.Features.Logger {
		return logging.NoOpProvider(), nil
	}
	switch runtimeconfig.NormalizeProvider(cfg.Logging.Provider) {
	case "console":
		opts := console.Options{}
		if level, ok := console.ParseLevel(cfg.Logging.Level); ok {
			opts.MinLevel = &level
		}
		return console.NewProvider(opts), nil
	case "gologger":
		provider, err := gologger.NewProvider(cfg.Logging)
		if err != nil {
			return nil, fmt.Errorf("md2html: %w", err)
		}
		return provider, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, cfg.Logging.Provider)
	}
}
