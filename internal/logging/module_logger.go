package logging

import (
	"context"
	"strings"

	"github.com/goliatone/go-md2html/pkg/interfaces"
)

const (
	rootModule     = "md2html"
	markdownModule = "md2html.markdown"
	cliModule      = "md2html.cli"
)

const (
	fieldMarkdownPath = "markdown_path"
	fieldOutputPath   = "output_path"
)

// ModuleLogger returns a logger for module, tagged with a "module" field.
// A nil provider, or one that returns nil, yields a no-op logger.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// QualifiedModule prefixes a short module name with the md2html logger root.
// Names that already carry the root are returned trimmed; blank names yield
// an empty string.
func QualifiedModule(name string) string {
	name = strings.TrimSpace(name)
	switch {
	case name == "":
		return ""
	case name == rootModule, strings.HasPrefix(name, rootModule+"."):
		return name
	}
	return rootModule + "." + name
}

// MarkdownLogger returns the logger for the conversion service.
func MarkdownLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, markdownModule)
}

// CLILogger returns the logger for the command line front end.
func CLILogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, cliModule)
}

// WithMarkdownContext adds the source and output paths to logger. Blank
// values are skipped.
func WithMarkdownContext(logger interfaces.Logger, path, output string) interfaces.Logger {
	fields := map[string]any{}
	if trimmed := strings.TrimSpace(path); trimmed != "" {
		fields[fieldMarkdownPath] = trimmed
	}
	if trimmed := strings.TrimSpace(output); trimmed != "" {
		fields[fieldOutputPath] = trimmed
	}
	return WithFields(logger, fields)
}

// NoOp returns a logger that drops every entry.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}

// NoOpProvider hands out no-op loggers.
func NoOpProvider() interfaces.LoggerProvider {
	return noopProvider{}
}

type noopProvider struct{}

func (noopProvider) GetLogger(string) interfaces.Logger {
	return noopLogger{}
}
