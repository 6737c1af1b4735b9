package convertcmd

import (
	"strings"
	"testing"

	command "github.com/goliatone/go-command"
)

func TestConvertFileCommandValidate(t *testing.T) {
	tests := []struct {
		name    string
		cmd     ConvertFileCommand
		wantErr string
	}{
		{"valid", ConvertFileCommand{InputPath: "README.md", OutputPath: "README.html"}, ""},
		{"missing input", ConvertFileCommand{OutputPath: "README.html"}, "input_path"},
		{"blank input", ConvertFileCommand{InputPath: "   ", OutputPath: "README.html"}, "input_path"},
		{"missing output", ConvertFileCommand{InputPath: "README.md"}, "output_path"},
		{"blank output", ConvertFileCommand{InputPath: "README.md", OutputPath: "\t"}, "output_path"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cmd.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("expected valid command, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected validation error mentioning %q", tc.wantErr)
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("expected error to mention %q, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestConvertFileCommandType(t *testing.T) {
	if got := command.GetMessageType(ConvertFileCommand{}); got != "md2html.convert_file" {
		t.Fatalf("unexpected message type %q", got)
	}
}
