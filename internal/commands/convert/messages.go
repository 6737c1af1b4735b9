package convertcmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

const convertFileMessageType = "md2html.convert_file"

// ConvertFileCommand converts the Markdown file at InputPath and writes the
// HTML to OutputPath. RunID correlates the log entries of one run; the
// handler assigns a fresh one when it is left empty.
type ConvertFileCommand struct {
	InputPath  string    `json:"input_path"`
	OutputPath string    `json:"output_path"`
	RunID      uuid.UUID `json:"run_id,omitempty"`
}

// Type implements command.Message.
func (ConvertFileCommand) Type() string { return convertFileMessageType }

// Validate ensures both paths are present before handlers execute.
func (cmd ConvertFileCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.InputPath, validation.Required, validation.By(nonBlank("md2html.convert_file.input_required", "input path is required"))),
		validation.Field(&cmd.OutputPath, validation.Required, validation.By(nonBlank("md2html.convert_file.output_required", "output path is required"))),
	)
}

func nonBlank(code, message string) validation.RuleFunc {
	return func(value any) error {
		s, _ := value.(string)
		if strings.TrimSpace(s) == "" {
			return validation.NewError(code, message)
		}
		return nil
	}
}
