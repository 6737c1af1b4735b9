// Package markdown converts a small Markdown dialect into HTML.
//
// Transform is the core: a line oriented converter for headings (#), bullet
// items (-), ordered items (*), paragraphs and the **bold** / __emphasis__
// inline styles. The rest of the package wraps it for file based use: parser
// adapters (native and goldmark), front matter stripping, a loader and writer
// for the input and output files, and the Service tying them together.
package markdown
