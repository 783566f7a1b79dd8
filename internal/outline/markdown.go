package outline

import (
	"bytes"
	"io"
	"strings"

	"github.com/dgallion1/md2docx/internal/doctree"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownReader reads the outline of Markdown source using goldmark.
// Headings are read the way the converter classifies lines: '#' markers at
// column 0 followed by a space, with any closing '#' sequence kept in the
// title. Setext underlines and indented headings are treated as text since
// the converter renders them as paragraphs and rules.
type MarkdownReader struct{}

func (p *MarkdownReader) Read(r io.Reader, filename string) (*doctree.Outline, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	doc := goldmark.New().Parser().Parse(text.NewReader(src))
	b := doctree.NewBuilder(trimExt(filename))

	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		if h, ok := n.(*ast.Heading); ok {
			if title, ok := atxTitle(h, src); ok {
				b.Heading(h.Level, title)
				continue
			}
		}
		b.Text(extractText(n, src))
	}
	return b.Outline(), nil
}

// atxTitle returns the text after the "### " markers of the source line the
// heading starts on. ok is false for setext and indented headings.
func atxTitle(h *ast.Heading, src []byte) (string, bool) {
	lines := h.Lines()
	if lines.Len() == 0 {
		return "", false
	}
	start := lines.At(0).Start
	line := src[bytes.LastIndexByte(src[:start], '\n')+1:]
	if i := bytes.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	markers := strings.Repeat("#", h.Level) + " "
	if !bytes.HasPrefix(line, []byte(markers)) {
		return "", false
	}
	return strings.TrimSpace(string(line[len(markers):])), true
}

// rawText is the heading content as written, markup included.
func rawText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		buf.Write(line.Value(src))
	}
	return strings.TrimSpace(buf.String())
}

// extractText gets the text content of a goldmark AST node: the raw lines
// of leaf blocks, joined across container children.
func extractText(n ast.Node, src []byte) string {
	if n.Type() == ast.TypeBlock && n.Lines().Len() > 0 {
		return rawText(n, src)
	}
	var parts []string
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t := extractText(c, src); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, "\n")
}
