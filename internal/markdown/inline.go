package markdown

import (
	"strings"
	"unicode/utf8"
)

type inlineStyle struct {
	delim string
	tags  TagPair
}

// Applied in order; bold runs are replaced before emphasis runs.
var inlineStyles = []inlineStyle{
	{delim: "**", tags: TagPair{Start: "<b>", End: "</b>"}},
	{delim: "__", tags: TagPair{Start: "<em>", End: "</em>"}},
}

var inlineTagStripper = strings.NewReplacer(
	"<b>", "", "</b>", "",
	"<em>", "", "</em>", "",
)

func renderInline(line string) string {
	for _, style := range inlineStyles {
		line = replaceDelimited(line, style.delim, style.tags)
	}
	return line
}

// replaceDelimited wraps every delim...delim run in tags. Each run is the
// shortest one starting at the leftmost opener and holds at least one
// character. An opener without a closer is left as literal text.
func replaceDelimited(s, delim string, tags TagPair) string {
	start := strings.Index(s, delim)
	if start < 0 {
		return s
	}

	var sb strings.Builder
	sb.Grow(len(s) + 8)
	for start >= 0 {
		contentStart := start + len(delim)
		if contentStart >= len(s) {
			break
		}
		_, w := utf8.DecodeRuneInString(s[contentStart:])
		end := strings.Index(s[contentStart+w:], delim)
		if end < 0 {
			break
		}
		end += contentStart + w

		sb.WriteString(s[:start])
		sb.WriteString(tags.Start)
		sb.WriteString(s[contentStart:end])
		sb.WriteString(tags.End)

		s = s[end+len(delim):]
		start = strings.Index(s, delim)
	}
	sb.WriteString(s)
	return sb.String()
}
