package convertcmd

import (
	"context"
	"encoding/hex"
	"errors"

	command "github.com/goliatone/go-command"
	"github.com/google/uuid"

	"github.com/goliatone/go-md2html/internal/commands"
	"github.com/goliatone/go-md2html/internal/logging"
	"github.com/goliatone/go-md2html/internal/markdown"
	"github.com/goliatone/go-md2html/pkg/interfaces"
)

const (
	convertOperation = "markdown.convert_file"

	// MissingInputCode is the go-errors text code attached when the input
	// file does not exist.
	MissingInputCode = "MISSING_INPUT"
)

var _ command.Commander[ConvertFileCommand] = (*ConvertFileHandler)(nil)

// ConvertFileHandler runs single file conversions through the shared command
// handler.
type ConvertFileHandler struct {
	inner *commands.Handler[ConvertFileCommand]
	newID func() uuid.UUID
}

// NewConvertFileHandler binds a handler to service. The handler logs through
// logger and reports every outcome with commands.DefaultTelemetry.
func NewConvertFileHandler(service interfaces.MarkdownService, logger interfaces.Logger, opts ...commands.HandlerOption[ConvertFileCommand]) *ConvertFileHandler {
	if service == nil {
		panic("convertcmd: markdown service cannot be nil")
	}
	baseLogger := commands.EnsureLogger(logger)

	exec := func(ctx context.Context, msg ConvertFileCommand) error {
		ctx = logging.ContextWithFields(ctx, map[string]any{"run_id": msg.RunID})

		doc, err := service.Convert(ctx, msg.InputPath, msg.OutputPath)
		if err != nil {
			if errors.Is(err, markdown.ErrMissingInput) {
				return commands.WrapValidation(err, "markdown input missing", MissingInputCode)
			}
			return err
		}

		fields := map[string]any{"run_id": msg.RunID}
		if doc != nil {
			fields["bytes_out"] = len(doc.BodyHTML)
			if len(doc.Checksum) > 0 {
				fields["checksum"] = hex.EncodeToString(doc.Checksum)
			}
		}
		logging.WithFields(baseLogger, fields).Debug("markdown.command.convert_file.completed")
		return nil
	}

	handlerOpts := []commands.HandlerOption[ConvertFileCommand]{
		commands.WithLogger[ConvertFileCommand](baseLogger),
		commands.WithOperation[ConvertFileCommand](convertOperation),
		commands.WithMessageFields(func(msg ConvertFileCommand) map[string]any {
			return map[string]any{
				"markdown_path": msg.InputPath,
				"output_path":   msg.OutputPath,
				"run_id":        msg.RunID,
			}
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[ConvertFileCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &ConvertFileHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
		newID: uuid.New,
	}
}

// Execute satisfies command.Commander[ConvertFileCommand].
func (h *ConvertFileHandler) Execute(ctx context.Context, msg ConvertFileCommand) error {
	if msg.RunID == uuid.Nil {
		msg.RunID = h.newID()
	}
	return h.inner.Execute(ctx, msg)
}
