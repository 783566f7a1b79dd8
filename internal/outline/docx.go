package outline

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/dgallion1/md2docx/internal/doctree"
	"github.com/fumiama/go-docx"
)

// DOCXReader reads the outline of a .docx file from its paragraph styles.
type DOCXReader struct{}

func (p *DOCXReader) Read(r io.Reader, filename string) (*doctree.Outline, error) {
	// go-docx needs a ReaderAt and a size.
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read docx: %w", err)
	}
	doc, err := docx.Parse(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("parse docx: %w", err)
	}

	b := doctree.NewBuilder(trimExt(filename))
	for _, item := range doc.Document.Body.Items {
		para, ok := item.(*docx.Paragraph)
		if !ok {
			continue
		}
		level := headingLevel(para)
		text := paragraphText(para)
		if level > 0 && text != "" {
			b.Heading(level, text)
		} else {
			b.Text(text)
		}
	}
	return b.Outline(), nil
}

// headingLevel recognises both style ids ("Heading2") and style names
// ("heading 2").
func headingLevel(para *docx.Paragraph) int {
	if para.Properties == nil || para.Properties.Style == nil {
		return 0
	}
	style := strings.ToLower(strings.ReplaceAll(para.Properties.Style.Val, " ", ""))
	rest, ok := strings.CutPrefix(style, "heading")
	if !ok || len(rest) != 1 || rest[0] < '1' || rest[0] > '6' {
		return 0
	}
	return int(rest[0] - '0')
}

func paragraphText(para *docx.Paragraph) string {
	var buf strings.Builder
	for _, child := range para.Children {
		switch c := child.(type) {
		case *docx.Run:
			runText(&buf, c)
		case *docx.Hyperlink:
			runText(&buf, &c.Run)
		}
	}
	return strings.TrimSpace(buf.String())
}

func runText(buf *strings.Builder, run *docx.Run) {
	for _, rc := range run.Children {
		if t, ok := rc.(*docx.Text); ok {
			buf.WriteString(t.Text)
		}
	}
}
