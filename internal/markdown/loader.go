package markdown

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/goliatone/go-md2html/pkg/interfaces"
)

// LoaderConfig configures how Markdown sources are read.
type LoaderConfig struct {
	// StripFrontMatter removes YAML/TOML front matter before rendering and
	// records it on the document.
	StripFrontMatter bool
}

// Loader reads Markdown files from the local filesystem.
type Loader struct {
	stripFrontMatter bool
}

// NewLoader constructs a Loader using the provided configuration.
func NewLoader(cfg LoaderConfig) *Loader {
	return &Loader{stripFrontMatter: cfg.StripFrontMatter}
}

// LoadFile reads and prepares a single Markdown document. A path that does
// not exist yields an error matching ErrMissingInput.
func (l *Loader) LoadFile(ctx context.Context, path string) (*DocumentResult, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	clean := filepath.Clean(path)
	info, err := os.Stat(clean)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s: %w", ErrMissingInput, path, err)
		}
		return nil, fmt.Errorf("markdown loader stat %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("markdown loader: %s is a directory", path)
	}

	data, err := os.ReadFile(clean)
	if err != nil {
		return nil, fmt.Errorf("markdown loader read %s: %w", path, err)
	}

	doc, err := BuildDocument(path, data, info.ModTime(), l.stripFrontMatter)
	if err != nil {
		return nil, err
	}
	sum := sha256.Sum256(data)
	doc.Checksum = sum[:]

	return &DocumentResult{
		Document: doc,
		Source:   data,
	}, nil
}

// DocumentResult carries the parsed document along with the raw source.
type DocumentResult struct {
	Document *interfaces.Document
	Source   []byte
}
