package markdown

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-md2html/internal/logging"
	"github.com/goliatone/go-md2html/pkg/interfaces"
)

// Config controls how the Markdown service reads, renders and writes files.
type Config struct {
	Parser           interfaces.ParseOptions
	StripFrontMatter bool
	// MakeDirs creates missing parent directories for output files.
	MakeDirs bool
}

// Service implements interfaces.MarkdownService for filesystem documents.
type Service struct {
	cfg    Config
	parser interfaces.MarkdownParser
	loader *Loader
	writer Writer
	logger interfaces.Logger
}

var _ interfaces.MarkdownService = (*Service)(nil)

// ServiceOption customises a Service.
type ServiceOption func(*Service)

// WithLogger sets the logger used for conversion events.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewService constructs a Markdown service. When parser is nil the native
// parser with the configured defaults is used.
func NewService(cfg Config, parser interfaces.MarkdownParser, opts ...ServiceOption) *Service {
	if parser == nil {
		parser = NewNativeParser(cfg.Parser)
	}
	s := &Service{
		cfg:    cfg,
		parser: parser,
		loader: NewLoader(LoaderConfig{StripFrontMatter: cfg.StripFrontMatter}),
		writer: Writer{MakeDirs: cfg.MakeDirs},
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads a Markdown file and renders its body.
func (s *Service) Load(ctx context.Context, path string) (*interfaces.Document, error) {
	result, err := s.loader.LoadFile(ctx, path)
	if err != nil {
		return nil, err
	}
	if _, err := s.RenderDocument(ctx, result.Document, interfaces.ParseOptions{}); err != nil {
		return nil, err
	}
	return result.Document, nil
}

// Render converts Markdown bytes into HTML with the configured parser.
func (s *Service) Render(ctx context.Context, markdown []byte, opts interfaces.ParseOptions) ([]byte, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}
	return s.parser.ParseWithOptions(markdown, MergeParseOptions(s.cfg.Parser, opts))
}

// RenderDocument renders the document body and stores the result on BodyHTML.
func (s *Service) RenderDocument(ctx context.Context, doc *interfaces.Document, opts interfaces.ParseOptions) ([]byte, error) {
	if doc == nil {
		return nil, ErrDocumentNil
	}
	html, err := s.Render(ctx, doc.Body, opts)
	if err != nil {
		return nil, fmt.Errorf("markdown render document %s: %w", doc.FilePath, err)
	}
	doc.BodyHTML = html
	return html, nil
}

// Convert reads input, renders it and writes the HTML to output, which is
// created or truncated.
func (s *Service) Convert(ctx context.Context, input, output string) (*interfaces.Document, error) {
	if strings.TrimSpace(output) == "" {
		return nil, ErrOutputPathRequired
	}
	logger := logging.WithMarkdownContext(s.logger.WithContext(ctx), input, output)

	doc, err := s.Load(ctx, input)
	if err != nil {
		logger.Debug("markdown.convert.load_failed", "error", err)
		return nil, err
	}
	if title := doc.FrontMatter.Title; title != "" {
		logger.Debug("markdown.convert.frontmatter", "title", title)
	}

	if err := s.writer.WriteFile(ctx, output, doc.BodyHTML); err != nil {
		logger.Error("markdown.convert.write_failed", "error", err)
		return nil, err
	}
	doc.OutputPath = output

	logger.Info("markdown.convert.completed",
		"bytes_in", len(doc.Body),
		"bytes_out", len(doc.BodyHTML),
	)
	return doc, nil
}
