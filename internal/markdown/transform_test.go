package markdown

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var transformTests = []struct {
	name  string
	input string
	want  string
}{
	{"empty", "", ""},
	{"only newline", "\n", ""},
	{"h1", "# A", "<h1>A</h1>"},
	{"h3", "### A", "<h3>A</h3>"},
	{"heading without text", "###", "<h3></h3>"},
	{"heading without space", "##Title", "<h2>Title</h2>"},
	{"heading indented", "   # A  ", "<h1>A</h1>"},
	{"heading with bold", "# **Bold** title", "<h1><b>Bold</b> title</h1>"},
	{
		"unordered items share one list",
		"- a\n- b",
		"<ul>\n<li>a</li>\n<li>b</li>\n</ul>",
	},
	{
		"ordered items share one list",
		"* a\n* b",
		"<ol>\n<li>a</li>\n<li>b</li>\n</ol>",
	},
	{
		"list closed before heading",
		"- a\n# T",
		"<ul>\n<li>a</li>\n</ul>\n<h1>T</h1>",
	},
	{
		"list closed at end of document",
		"- a",
		"<ul>\n<li>a</li>\n</ul>",
	},
	{
		"switching list kinds",
		"- a\n* b\n- c",
		"<ul>\n<li>a</li>\n</ul>\n<ol>\n<li>b</li>\n</ol>\n<ul>\n<li>c</li>\n</ul>",
	},
	{
		"blank line ends list",
		"- a\n\n- b",
		"<ul>\n<li>a</li>\n</ul>\n<ul>\n<li>b</li>\n</ul>",
	},
	{
		"paragraph lines merge",
		"line1\nline2\n",
		"<p>\nline1<br/>line2\n</p>",
	},
	{
		"blank line separates paragraphs",
		"a\n\nb",
		"<p>\na\n</p>\n<p>\nb\n</p>",
	},
	{
		"whitespace only line is blank",
		"a\n   \t\nb",
		"<p>\na\n</p>\n<p>\nb\n</p>",
	},
	{
		"paragraph flushed before list",
		"text\n- a",
		"<p>\ntext\n</p>\n<ul>\n<li>a</li>\n</ul>",
	},
	{
		"list closed before paragraph",
		"- a\ntext",
		"<ul>\n<li>a</li>\n</ul>\n<p>\ntext\n</p>",
	},
	{
		"paragraph flushed before heading",
		"intro\n## Next",
		"<p>\nintro\n</p>\n<h2>Next</h2>",
	},
	{
		"bold runs are independent",
		"**a** and **b**",
		"<p>\n<b>a</b> and <b>b</b>\n</p>",
	},
	{
		"emphasis in list item",
		"- __x__ y",
		"<ul>\n<li><em>x</em> y</li>\n</ul>",
	},
	{
		"unterminated bold stays literal",
		"x **a",
		"<p>\nx **a\n</p>",
	},
	{
		"no escaping",
		"a < b & c",
		"<p>\na < b & c\n</p>",
	},
	{
		"crlf line endings",
		"# A\r\n- b\r\n",
		"<h1>A</h1>\n<ul>\n<li>b</li>\n</ul>",
	},
	{
		"item text is trimmed",
		"-   spaced   ",
		"<ul>\n<li>spaced</li>\n</ul>",
	},
}

func TestTransform(t *testing.T) {
	for _, tc := range transformTests {
		t.Run(tc.name, func(t *testing.T) {
			got := Transform(tc.input)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Transform(%q) diff (-want +got):\n%s", tc.input, diff)
			}
		})
	}
}

func TestTransformWithoutParagraphs(t *testing.T) {
	opts := Options{InlineStyles: true}
	tests := []struct {
		input string
		want  string
	}{
		{"plain\ntext", "plain\ntext"},
		{"a\n\nb", "a\n\nb"},
		{"  padded  ", "padded"},
		{"- a\nplain", "<ul>\n<li>a</li>\n</ul>\nplain"},
		{"# T\n* x\n", "<h1>T</h1>\n<ol>\n<li>x</li>\n</ol>"},
		{"**b** text", "<b>b</b> text"},
	}
	for _, tc := range tests {
		got := TransformWithOptions(tc.input, opts)
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("TransformWithOptions(%q) diff (-want +got):\n%s", tc.input, diff)
		}
	}
}

func TestTransformWithoutInlineStyles(t *testing.T) {
	opts := Options{Paragraphs: true}
	tests := []struct {
		input string
		want  string
	}{
		{"x **a** __b__", "<p>\nx **a** __b__\n</p>"},
		// Without the inline pass a leading "*" still opens an ordered item.
		{"**a** __b__", "<ol>\n<li>*a** __b__</li>\n</ol>"},
		{"__a__", "<p>\n__a__\n</p>"},
	}
	for _, tc := range tests {
		got := TransformWithOptions(tc.input, opts)
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("TransformWithOptions(%q) diff (-want +got):\n%s", tc.input, diff)
		}
	}
}

func TestTransformHeadingIDs(t *testing.T) {
	opts := DefaultOptions()
	opts.HeadingIDs = true

	got := TransformWithOptions("# intro\n## intro\n### intro", opts)
	want := strings.Join([]string{
		`<h1 id="intro">intro</h1>`,
		`<h2 id="intro-1">intro</h2>`,
		`<h3 id="intro-2">intro</h3>`,
	}, "\n")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("diff (-want +got):\n%s", diff)
	}

	if got := TransformWithOptions("## **Bold** move", opts); got != `<h2 id="bold-move"><b>Bold</b> move</h2>` {
		t.Errorf("expected id without inline tags, got %q", got)
	}

	if got := TransformWithOptions("#", opts); got != "<h1></h1>" {
		t.Errorf("expected empty heading without id, got %q", got)
	}

	if got := TransformWithOptions("# é ü", opts); got != "<h1>é ü</h1>" {
		t.Errorf("expected heading without slug characters to have no id, got %q", got)
	}
}

func TestTransformPlainLinesPassThrough(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	opts := Options{InlineStyles: true}
	for i := 0; i < 200; i++ {
		lines := make([]string, 1+rng.Intn(8))
		for j := range lines {
			lines[j] = randomWords(rng)
		}
		input := strings.Join(lines, "\n")
		if got := TransformWithOptions(input, opts); got != input {
			t.Fatalf("plain document changed\ninput: %q\n  got: %q", input, got)
		}
	}
}

func TestTransformKeepsBlocksBalanced(t *testing.T) {
	pool := []string{
		"# heading", "### deep", "#", "- bullet", "  - indented bullet", "-",
		"* ordered", "*", "plain text", "more **bold** text", "", "   ",
	}
	rng := rand.New(rand.NewSource(42))
	for _, opts := range []Options{DefaultOptions(), {}} {
		for i := 0; i < 500; i++ {
			lines := make([]string, rng.Intn(20))
			for j := range lines {
				lines[j] = pool[rng.Intn(len(pool))]
			}
			input := strings.Join(lines, "\n")
			if err := checkBalanced(TransformWithOptions(input, opts)); err != "" {
				t.Fatalf("unbalanced output for %q: %s", input, err)
			}
		}
	}
}

// checkBalanced walks the emitted lines and verifies that block tags open
// and close in pairs without nesting.
func checkBalanced(html string) string {
	closers := map[string]string{"<ul>": "</ul>", "<ol>": "</ol>", "<p>": "</p>"}
	open := ""
	for _, line := range strings.Split(html, "\n") {
		if closer, ok := closers[line]; ok {
			if open != "" {
				return "opened " + line + " while " + open + " is open"
			}
			open = closer
			continue
		}
		if line == "</ul>" || line == "</ol>" || line == "</p>" {
			if line != open {
				return "unexpected " + line
			}
			open = ""
		}
	}
	if open != "" {
		return "missing " + open
	}
	return ""
}

func randomWords(rng *rand.Rand) string {
	const letters = "abcdefghijklmnopqrstuvwxyz"
	words := make([]string, 1+rng.Intn(5))
	for i := range words {
		b := make([]byte, 1+rng.Intn(7))
		for j := range b {
			b[j] = letters[rng.Intn(len(letters))]
		}
		words[i] = string(b)
	}
	return strings.Join(words, " ")
}

func TestLineSplitter(t *testing.T) {
	s := lineSplitter{text: "a\n\nb\n"}
	var got []string
	for s.more() {
		got = append(got, s.next())
	}
	if diff := cmp.Diff([]string{"a", "", "b"}, got); diff != "" {
		t.Errorf("diff (-want +got):\n%s", diff)
	}
}
