package interfaces

import (
	"context"
	"time"
)

// MarkdownParser converts raw Markdown bytes into HTML.
type MarkdownParser interface {
	// Parse converts Markdown into HTML using the parser's default settings.
	Parse(markdown []byte) ([]byte, error)
	// ParseWithOptions converts Markdown into HTML using the supplied overrides.
	ParseWithOptions(markdown []byte, opts ParseOptions) ([]byte, error)
}

// ParseOptions customises rendering. Pointer fields distinguish "not set"
// from an explicit false so overrides can disable a default-on feature.
type ParseOptions struct {
	// Paragraphs groups consecutive plain lines into <p> blocks (native engine).
	Paragraphs *bool
	// InlineStyles enables the **bold** and __emphasis__ substitutions (native engine).
	InlineStyles *bool
	// HeadingIDs adds slug based id attributes to headings.
	HeadingIDs bool
	// Extensions lists goldmark extensions by name (goldmark engine).
	Extensions []string
	// HardWraps renders soft line breaks as <br> (goldmark engine).
	HardWraps bool
	// SafeMode suppresses raw HTML passthrough (goldmark engine).
	SafeMode bool
}

// MarkdownService exposes the file level conversion workflow.
type MarkdownService interface {
	Load(ctx context.Context, path string) (*Document, error)
	Render(ctx context.Context, markdown []byte, opts ParseOptions) ([]byte, error)
	RenderDocument(ctx context.Context, doc *Document, opts ParseOptions) ([]byte, error)
	Convert(ctx context.Context, input, output string) (*Document, error)
}

// Document is a Markdown source file together with its rendered output.
type Document struct {
	FilePath     string
	OutputPath   string
	FrontMatter  FrontMatter
	Body         []byte
	BodyHTML     []byte
	LastModified time.Time
	// Checksum is the SHA-256 digest of the raw source, front matter included.
	Checksum []byte
}

// FrontMatter holds metadata stripped from the top of a Markdown file.
type FrontMatter struct {
	Title   string         `yaml:"title" json:"title"`
	Slug    string         `yaml:"slug" json:"slug"`
	Summary string         `yaml:"summary" json:"summary"`
	Tags    []string       `yaml:"tags" json:"tags"`
	Author  string         `yaml:"author" json:"author"`
	Draft   bool           `yaml:"draft" json:"draft"`
	Custom  map[string]any `yaml:",inline" json:"custom"`
	Raw     map[string]any `yaml:"-" json:"raw"`
}
