package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	md2html "github.com/goliatone/go-md2html"
	"github.com/goliatone/go-md2html/internal/logging"
)

const usageLine = "Usage: md2html README.md README.html"

var moduleBuilder = func(cfg md2html.Config) (converter, error) {
	return md2html.New(cfg)
}

type converter interface {
	Convert(ctx context.Context, input, output string) error
	LoggerProvider() md2html.LoggerProvider
}

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

// run converts the first positional argument into the second and returns
// the process exit code.
func run(args []string, stderr io.Writer) int {
	flags := flag.NewFlagSet("md2html", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintln(stderr, usageLine)
		flags.PrintDefaults()
	}
	configPath := flags.String("config", "", "Path to a YAML configuration file")
	engine := flags.String("engine", "", "Markdown engine: native or goldmark")
	stripFrontMatter := flags.Bool("strip-frontmatter", false, "Strip YAML/TOML front matter before rendering")
	headingIDs := flags.Bool("heading-ids", false, "Add slug id attributes to headings")
	logLevel := flags.String("log-level", "", "Enable console logging to stderr at the given level")
	logFormat := flags.String("log-format", "", "Enable go-logger output in json, console or pretty format")

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}
	if flags.NArg() < 2 {
		fmt.Fprintln(stderr, usageLine)
		return 1
	}
	input, output := flags.Arg(0), flags.Arg(1)

	if _, err := os.Stat(input); errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(stderr, "Missing %s\n", input)
		return 1
	}

	cfg := md2html.DefaultConfig()
	if *configPath != "" {
		loaded, err := md2html.LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "md2html: %v\n", err)
			return 1
		}
		cfg = loaded
	}

	set := map[string]bool{}
	flags.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if set["engine"] {
		cfg.Engine = *engine
	}
	if set["strip-frontmatter"] {
		cfg.Parser.StripFrontMatter = *stripFrontMatter
	}
	if set["heading-ids"] {
		cfg.Parser.HeadingIDs = *headingIDs
	}
	if level := strings.TrimSpace(*logLevel); level != "" {
		cfg.Features.Logger = true
		cfg.Logging.Provider = "console"
		cfg.Logging.Level = level
	}
	if format := strings.TrimSpace(*logFormat); format != "" {
		cfg.Features.Logger = true
		cfg.Logging.Provider = "gologger"
		cfg.Logging.Format = format
	}

	module, err := moduleBuilder(cfg)
	if err != nil {
		fmt.Fprintf(stderr, "md2html: %v\n", err)
		return 1
	}

	logger := logging.CLILogger(module.LoggerProvider())
	if err := module.Convert(context.Background(), input, output); err != nil {
		if errors.Is(err, md2html.ErrMissingInput) {
			fmt.Fprintf(stderr, "Missing %s\n", input)
			return 1
		}
		logger.Debug("cli.convert.failed", "error", err)
		fmt.Fprintf(stderr, "md2html: %v\n", err)
		return 1
	}
	logger.Debug("cli.convert.completed", "markdown_path", input, "output_path", output)
	return 0
}
