package convertcmd

import (
	"errors"

	"github.com/goliatone/go-md2html/internal/commands"
	"github.com/goliatone/go-md2html/pkg/interfaces"
)

// CommandRegistry is the registration contract used when wiring handlers
// into a dispatcher.
type CommandRegistry interface {
	RegisterCommand(handler any) error
}

// Option customises handler wiring during registration.
type Option func(*options)

type options struct {
	handlerOpts []commands.HandlerOption[ConvertFileCommand]
}

// WithHandlerOptions forwards options to NewConvertFileHandler.
func WithHandlerOptions(opts ...commands.HandlerOption[ConvertFileCommand]) Option {
	return func(cfg *options) {
		cfg.handlerOpts = append(cfg.handlerOpts, opts...)
	}
}

// RegisterConvertCommands builds the convert handler and registers it with
// reg when one is given.
func RegisterConvertCommands(reg CommandRegistry, service interfaces.MarkdownService, provider interfaces.LoggerProvider, opts ...Option) (*ConvertFileHandler, error) {
	if service == nil {
		return nil, errors.New("convert command registration: service is nil")
	}

	cfg := options{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	handler := NewConvertFileHandler(service, commands.CommandLogger(provider, "convert"), cfg.handlerOpts...)
	if reg != nil {
		if err := reg.RegisterCommand(handler); err != nil {
			return nil, err
		}
	}
	return handler, nil
}
