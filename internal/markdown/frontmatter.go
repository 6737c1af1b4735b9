package markdown

import (
	"bytes"
	"fmt"
	"time"

	"github.com/adrg/frontmatter"

	"github.com/goliatone/go-md2html/pkg/interfaces"
)

// ParseFrontMatter splits YAML or TOML front matter from the Markdown body.
// Sources without front matter are returned unchanged with empty metadata.
func ParseFrontMatter(source []byte) (interfaces.FrontMatter, []byte, error) {
	var meta frontMatterEnvelope

	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return interfaces.FrontMatter{}, nil, fmt.Errorf("parse frontmatter: %w", err)
	}

	return envelopeToFrontMatter(meta), body, nil
}

// BuildDocument assembles a Document from a file's path, raw content and
// modification time. When strip is false the whole source becomes the body.
// BodyHTML is left empty for the caller to render.
func BuildDocument(path string, source []byte, modified time.Time, strip bool) (*interfaces.Document, error) {
	doc := &interfaces.Document{
		FilePath:     path,
		Body:         source,
		LastModified: modified,
	}
	if !strip {
		return doc, nil
	}

	fm, body, err := ParseFrontMatter(source)
	if err != nil {
		return nil, fmt.Errorf("markdown document %s: %w", path, err)
	}
	doc.FrontMatter = fm
	doc.Body = body
	return doc, nil
}

type frontMatterEnvelope struct {
	Title   string         `yaml:"title" toml:"title"`
	Slug    string         `yaml:"slug" toml:"slug"`
	Summary string         `yaml:"summary" toml:"summary"`
	Tags    []string       `yaml:"tags" toml:"tags"`
	Author  string         `yaml:"author" toml:"author"`
	Draft   bool           `yaml:"draft" toml:"draft"`
	Custom  map[string]any `yaml:",inline" toml:"-"`
}

func envelopeToFrontMatter(env frontMatterEnvelope) interfaces.FrontMatter {
	raw := make(map[string]any, len(env.Custom)+6)
	for key, value := range env.Custom {
		raw[key] = value
	}
	if env.Title != "" {
		raw["title"] = env.Title
	}
	if env.Slug != "" {
		raw["slug"] = env.Slug
	}
	if env.Summary != "" {
		raw["summary"] = env.Summary
	}
	if len(env.Tags) > 0 {
		raw["tags"] = append([]string(nil), env.Tags...)
	}
	if env.Author != "" {
		raw["author"] = env.Author
	}
	if env.Draft {
		raw["draft"] = true
	}

	return interfaces.FrontMatter{
		Title:   env.Title,
		Slug:    env.Slug,
		Summary: env.Summary,
		Tags:    append([]string(nil), env.Tags...),
		Author:  env.Author,
		Draft:   env.Draft,
		Custom:  cloneMap(env.Custom),
		Raw:     raw,
	}
}

func cloneMap(input map[string]any) map[string]any {
	out := make(map[string]any, len(input))
	for key, value := range input {
		out[key] = value
	}
	return out
}
