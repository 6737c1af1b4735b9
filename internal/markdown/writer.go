package markdown

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

const outputFileMode = 0o644

// Writer persists rendered HTML to the local filesystem.
type Writer struct {
	// MakeDirs creates missing parent directories of the output path.
	MakeDirs bool
}

// WriteFile creates or truncates path and writes html to it.
func (w Writer) WriteFile(ctx context.Context, path string, html []byte) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if w.MakeDirs {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("markdown writer mkdir %s: %w", dir, err)
			}
		}
	}
	if err := os.WriteFile(path, html, outputFileMode); err != nil {
		return fmt.Errorf("markdown writer write %s: %w", path, err)
	}
	return nil
}
