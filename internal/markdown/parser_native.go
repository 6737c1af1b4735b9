package markdown

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-md2html/pkg/interfaces"
)

const (
	// EngineNative is the built-in line oriented converter.
	EngineNative = "native"
	// EngineGoldmark delegates to the goldmark CommonMark implementation.
	EngineGoldmark = "goldmark"
)

// ErrUnknownEngine is returned by NewParser for an unsupported engine name.
var ErrUnknownEngine = errors.New("markdown: unknown engine")

var _ interfaces.MarkdownParser = (*NativeParser)(nil)

// NativeParser implements interfaces.MarkdownParser on top of Transform.
// It keeps no per-call state and is safe for concurrent use.
type NativeParser struct {
	defaultOptions interfaces.ParseOptions
}

// NewNativeParser constructs a native parser with the supplied defaults.
func NewNativeParser(defaults interfaces.ParseOptions) *NativeParser {
	return &NativeParser{defaultOptions: defaults}
}

// Parse renders markdown with the parser's default options. The error is
// always nil; it exists to satisfy interfaces.MarkdownParser.
func (p *NativeParser) Parse(markdown []byte) ([]byte, error) {
	return p.ParseWithOptions(markdown, p.defaultOptions)
}

// ParseWithOptions renders markdown with the supplied options. Options that
// only apply to the goldmark engine are ignored.
func (p *NativeParser) ParseWithOptions(markdown []byte, opts interfaces.ParseOptions) ([]byte, error) {
	return []byte(TransformWithOptions(string(markdown), toNativeOptions(opts))), nil
}

func toNativeOptions(opts interfaces.ParseOptions) Options {
	native := DefaultOptions()
	if opts.Paragraphs != nil {
		native.Paragraphs = *opts.Paragraphs
	}
	if opts.InlineStyles != nil {
		native.InlineStyles = *opts.InlineStyles
	}
	native.HeadingIDs = opts.HeadingIDs
	return native
}

// NewParser returns the parser registered for engine. An empty engine name
// selects the native parser.
func NewParser(engine string, defaults interfaces.ParseOptions) (interfaces.MarkdownParser, error) {
	switch strings.ToLower(strings.TrimSpace(engine)) {
	case "", EngineNative:
		return NewNativeParser(defaults), nil
	case EngineGoldmark:
		return NewGoldmarkParser(defaults), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEngine, engine)
	}
}

// MergeParseOptions overlays override on base. Set pointers and true flags
// in override win; extensions are replaced when override lists any.
func MergeParseOptions(base, override interfaces.ParseOptions) interfaces.ParseOptions {
	result := base
	if override.Paragraphs != nil {
		v := *override.Paragraphs
		result.Paragraphs = &v
	}
	if override.InlineStyles != nil {
		v := *override.InlineStyles
		result.InlineStyles = &v
	}
	if override.HeadingIDs {
		result.HeadingIDs = true
	}
	if len(override.Extensions) > 0 {
		result.Extensions = append([]string(nil), override.Extensions...)
	}
	if override.HardWraps {
		result.HardWraps = true
	}
	if override.SafeMode {
		result.SafeMode = true
	}
	return result
}
