package runtimeconfig_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-md2html/internal/runtimeconfig"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() returned unexpected error: %v", err)
	}
	if cfg.Features.Logger {
		t.Fatal("expected logging to be disabled by default")
	}
	if !cfg.Parser.Paragraphs || !cfg.Parser.InlineStyles {
		t.Fatalf("expected paragraphs and inline styles on by default, got %+v", cfg.Parser)
	}
}

func TestConfigValidate_RejectsUnknownEngine(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Engine = "blackfriday"

	err := cfg.Validate()
	if !errors.Is(err, runtimeconfig.ErrEngineUnknown) {
		t.Fatalf("expected ErrEngineUnknown, got %v", err)
	}
}

func TestConfigValidate_EngineNamesAreCaseInsensitive(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Engine = " GoldMark "
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() returned unexpected error: %v", err)
	}
	if got := cfg.NormalizedEngine(); got != runtimeconfig.EngineGoldmark {
		t.Fatalf("expected goldmark, got %q", got)
	}
}

func TestConfigValidate_RequiresLoggingProviderWhenFeatureEnabled(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Features.Logger = true
	cfg.Logging.Provider = ""

	err := cfg.Validate()
	if !errors.Is(err, runtimeconfig.ErrLoggingProviderRequired) {
		t.Fatalf("expected ErrLoggingProviderRequired, got %v", err)
	}
}

func TestConfigValidate_RejectsUnknownLoggingProvider(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Features.Logger = true
	cfg.Logging.Provider = "syslog"

	err := cfg.Validate()
	if !errors.Is(err, runtimeconfig.ErrLoggingProviderUnknown) {
		t.Fatalf("expected ErrLoggingProviderUnknown, got %v", err)
	}
}

func TestConfigValidate_RejectsInvalidLoggingLevel(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Features.Logger = true
	cfg.Logging.Level = "loud"

	err := cfg.Validate()
	if !errors.Is(err, runtimeconfig.ErrLoggingLevelInvalid) {
		t.Fatalf("expected ErrLoggingLevelInvalid, got %v", err)
	}
}

func TestConfigValidate_RejectsInvalidLoggingFormat(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Features.Logger = true
	cfg.Logging.Provider = "gologger"
	cfg.Logging.Format = "xml"

	err := cfg.Validate()
	if !errors.Is(err, runtimeconfig.ErrLoggingFormatInvalid) {
		t.Fatalf("expected ErrLoggingFormatInvalid, got %v", err)
	}
}

func TestConfigValidate_IgnoresLoggingWhenDisabled(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Logging.Provider = "syslog"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() returned unexpected error: %v", err)
	}
}

func TestConfigValidate_RejectsNegativeTimeout(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Commands.Timeout = -time.Second

	err := cfg.Validate()
	if !errors.Is(err, runtimeconfig.ErrCommandTimeoutInvalid) {
		t.Fatalf("expected ErrCommandTimeoutInvalid, got %v", err)
	}
}

func TestParserConfigParseOptions(t *testing.T) {
	cfg := runtimeconfig.ParserConfig{
		Paragraphs: false,
		HeadingIDs: true,
		Extensions: []string{"table"},
		SafeMode:   true,
	}
	opts := cfg.ParseOptions()
	if opts.Paragraphs == nil || *opts.Paragraphs {
		t.Fatalf("expected explicit paragraphs=false, got %v", opts.Paragraphs)
	}
	if opts.InlineStyles == nil || *opts.InlineStyles {
		t.Fatalf("expected explicit inline styles=false, got %v", opts.InlineStyles)
	}
	if !opts.HeadingIDs || !opts.SafeMode {
		t.Fatalf("expected heading ids and safe mode, got %+v", opts)
	}
	cfg.Extensions[0] = "mutated"
	if opts.Extensions[0] != "table" {
		t.Fatal("expected extensions to be copied")
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "md2html.yaml")
	data := `
engine: goldmark
parser:
  heading_ids: true
  extensions: [table, strikethrough]
features:
  logger: true
logging:
  provider: gologger
  format: json
commands:
  timeout: 5s
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	got, err := runtimeconfig.Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	want := runtimeconfig.DefaultConfig()
	want.Engine = runtimeconfig.EngineGoldmark
	want.Parser.HeadingIDs = true
	want.Parser.Extensions = []string{"table", "strikethrough"}
	want.Features.Logger = true
	want.Logging.Provider = "gologger"
	want.Logging.Format = "json"
	want.Commands.Timeout = 5 * time.Second

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestParseEmptyDocumentKeepsDefaults(t *testing.T) {
	got, err := runtimeconfig.Parse(nil)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if diff := cmp.Diff(runtimeconfig.DefaultConfig(), got); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestParseRejectsUnknownKeysAndInvalidValues(t *testing.T) {
	if _, err := runtimeconfig.Parse([]byte("engin: native\n")); err == nil {
		t.Fatal("expected unknown key to be rejected")
	}
	if _, err := runtimeconfig.Parse([]byte("engine: pandoc\n")); !errors.Is(err, runtimeconfig.ErrEngineUnknown) {
		t.Fatalf("expected ErrEngineUnknown, got %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := runtimeconfig.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}
