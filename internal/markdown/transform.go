package markdown

import (
	"strconv"
	"strings"

	"github.com/goliatone/go-slug"
)

// Options selects the behaviour of the native converter. The zero value is
// the most basic form (headings, lists and verbatim plain lines); use
// DefaultOptions for the full feature set.
type Options struct {
	// Paragraphs groups consecutive plain lines into <p> blocks. When false,
	// plain and blank lines are emitted verbatim after trimming.
	Paragraphs bool
	// InlineStyles turns **text** into <b>text</b> and __text__ into
	// <em>text</em> before a line is classified.
	InlineStyles bool
	// HeadingIDs adds an id attribute derived from the heading text. Headings
	// whose text leaves an empty slug, such as "# é ü", get no id.
	HeadingIDs bool
}

// DefaultOptions enables paragraphs and inline styles.
func DefaultOptions() Options {
	return Options{
		Paragraphs:   true,
		InlineStyles: true,
	}
}

// TagPair is an opening and closing tag wrapped around some content.
type TagPair struct {
	Start, End string
}

var (
	unorderedListTags = TagPair{Start: "<ul>", End: "</ul>"}
	orderedListTags   = TagPair{Start: "<ol>", End: "</ol>"}
	listItemTags      = TagPair{Start: "<li>", End: "</li>"}
	paragraphTags     = TagPair{Start: "<p>", End: "</p>"}
)

const lineBreak = "<br/>"

// Transform converts a Markdown document into HTML using DefaultOptions.
// It never fails and does not escape HTML special characters.
func Transform(text string) string {
	return TransformWithOptions(text, DefaultOptions())
}

// TransformWithOptions converts a Markdown document into HTML. The output is
// the emitted lines joined by newlines, without a trailing newline.
func TransformWithOptions(text string, opts Options) string {
	p := blockParser{
		lines: lineSplitter{text: text},
		opts:  opts,
	}
	p.render()
	return strings.Join(p.out, "\n")
}

// blockState is the single piece of state carried between lines. Lists and
// paragraphs are mutually exclusive, so one value describes what is open.
type blockState uint8

const (
	stateNeutral blockState = iota
	stateUnorderedList
	stateOrderedList
	stateParagraph
)

type blockParser struct {
	lines     lineSplitter
	opts      Options
	state     blockState
	paragraph []string
	out       []string
	headingID map[string]int
}

func (p *blockParser) render() {
	for p.lines.more() {
		line := strings.TrimSpace(p.lines.next())
		if p.opts.InlineStyles {
			line = renderInline(line)
		}

		switch {
		case strings.HasPrefix(line, "#"):
			p.closeBlock()
			p.renderHeading(line)
		case strings.HasPrefix(line, "-"):
			p.openList(stateUnorderedList)
			p.renderLeaf(listItemTags, strings.TrimSpace(line[1:]))
		case strings.HasPrefix(line, "*"):
			p.openList(stateOrderedList)
			p.renderLeaf(listItemTags, strings.TrimSpace(line[1:]))
		case !p.opts.Paragraphs:
			p.closeBlock()
			p.emit(line)
		case line == "":
			p.closeBlock()
		default:
			if p.state != stateParagraph {
				p.closeBlock()
				p.state = stateParagraph
			}
			p.paragraph = append(p.paragraph, line)
		}
	}
	p.closeBlock()
}

func (p *blockParser) renderHeading(line string) {
	level := len(line) - len(strings.TrimLeft(line, "#"))
	content := strings.TrimSpace(line[level:])
	tag := "h" + strconv.Itoa(level)

	start := "<" + tag + ">"
	if p.opts.HeadingIDs {
		if id := p.nextHeadingID(content); id != "" {
			start = "<" + tag + ` id="` + id + `">`
		}
	}
	p.renderLeaf(TagPair{Start: start, End: "</" + tag + ">"}, content)
}

// nextHeadingID derives a slug from the heading text and appends a numeric
// suffix when the same slug was already handed out in this document.
func (p *blockParser) nextHeadingID(content string) string {
	id, err := slug.Normalize(inlineTagStripper.Replace(content))
	if err != nil || id == "" {
		return ""
	}
	if p.headingID == nil {
		p.headingID = map[string]int{}
	}
	seen := p.headingID[id]
	p.headingID[id] = seen + 1
	if seen == 0 {
		return id
	}
	return id + "-" + strconv.Itoa(seen)
}

// openList makes sure a list of the given kind is open, closing whatever
// other block was open first.
func (p *blockParser) openList(kind blockState) {
	if p.state == kind {
		return
	}
	p.closeBlock()
	switch kind {
	case stateUnorderedList:
		p.emit(unorderedListTags.Start)
	case stateOrderedList:
		p.emit(orderedListTags.Start)
	}
	p.state = kind
}

// closeBlock closes the open list or flushes the pending paragraph, and
// returns the parser to the neutral state.
func (p *blockParser) closeBlock() {
	switch p.state {
	case stateUnorderedList:
		p.emit(unorderedListTags.End)
	case stateOrderedList:
		p.emit(orderedListTags.End)
	case stateParagraph:
		if len(p.paragraph) > 0 {
			p.emit(paragraphTags.Start)
			p.emit(strings.Join(p.paragraph, lineBreak))
			p.emit(paragraphTags.End)
		}
		p.paragraph = p.paragraph[:0]
	}
	p.state = stateNeutral
}

func (p *blockParser) renderLeaf(tags TagPair, content string) {
	p.emit(tags.Start + content + tags.End)
}

func (p *blockParser) emit(line string) {
	p.out = append(p.out, line)
}

// lineSplitter yields the lines of a text. A trailing newline does not
// produce an extra empty line.
type lineSplitter struct {
	text string
	pos  int
}

func (s *lineSplitter) more() bool {
	return s.pos < len(s.text)
}

func (s *lineSplitter) next() string {
	begin := s.pos
	delta := strings.IndexByte(s.text[begin:], '\n')
	if delta == -1 {
		s.pos = len(s.text)
		return s.text[begin:]
	}
	s.pos += delta + 1
	return s.text[begin : s.pos-1]
}
