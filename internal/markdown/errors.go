package markdown

import "errors"

var (
	// ErrMissingInput reports that the Markdown source path does not exist.
	// The loader wraps it together with the underlying fs.ErrNotExist.
	ErrMissingInput = errors.New("markdown loader: input file does not exist")
	// ErrDocumentNil is returned when a nil document is rendered.
	ErrDocumentNil = errors.New("markdown service: document is nil")
	// ErrOutputPathRequired is returned by Convert when no output path is given.
	ErrOutputPathRequired = errors.New("markdown service: output path is required")
)
