package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	md2html "github.com/goliatone/go-md2html"
	"github.com/goliatone/go-md2html/pkg/interfaces"
)

var moduleBuilder = func(cfg md2html.Config) (interfaces.MarkdownService, error) {
	module, err := md2html.New(cfg)
	if err != nil {
		return nil, err
	}
	return module.Service(), nil
}

func main() {
	os.Exit(runPreview(os.Args[1:], os.Stdout, os.Stderr))
}

// runPreview prints the checksum, front matter and rendered body of one
// Markdown file without writing any output file.
func runPreview(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("md2html-preview", flag.ContinueOnError)
	flags.SetOutput(stderr)
	filePath := flags.String("file", "", "Markdown file to preview")
	engine := flags.String("engine", md2html.EngineNative, "Markdown engine: native or goldmark")
	stripFrontMatter := flags.Bool("strip-frontmatter", true, "Strip YAML/TOML front matter before rendering")
	renderHTML := flags.Bool("render-html", true, "Render the markdown body into HTML")

	if err := flags.Parse(args); err != nil {
		return 2
	}
	if *filePath == "" {
		fmt.Fprintln(stderr, "md2html-preview: -file is required")
		return 1
	}

	cfg := md2html.DefaultConfig()
	cfg.Engine = *engine
	cfg.Parser.StripFrontMatter = *stripFrontMatter

	service, err := moduleBuilder(cfg)
	if err != nil {
		fmt.Fprintf(stderr, "md2html-preview: %v\n", err)
		return 1
	}

	ctx := context.Background()
	doc, err := service.Load(ctx, *filePath)
	if err != nil {
		fmt.Fprintf(stderr, "md2html-preview: load %s: %v\n", *filePath, err)
		return 1
	}

	fmt.Fprintf(stdout, "Path: %s\nChecksum: %x\n\n", doc.FilePath, doc.Checksum)

	if len(doc.FrontMatter.Raw) > 0 {
		frontmatter, err := json.MarshalIndent(doc.FrontMatter.Raw, "", "  ")
		if err == nil {
			fmt.Fprintf(stdout, "Frontmatter:\n%s\n\n", frontmatter)
		}
	}

	if *renderHTML {
		fmt.Fprintf(stdout, "Rendered HTML:\n%s\n", doc.BodyHTML)
	} else {
		fmt.Fprintf(stdout, "Markdown Body:\n%s\n", doc.Body)
	}
	return 0
}
