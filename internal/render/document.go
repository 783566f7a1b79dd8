// Package render builds .docx documents with go-docx. It is the only package
// that knows about OOXML; callers work in terms of headings, paragraphs,
// styled runs, tables and hyperlinks.
package render

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dgallion1/md2docx/internal/inline"
	"github.com/fumiama/go-docx"
)

// Style is the document-wide formatting applied to every run.
type Style struct {
	FontName  string  // Body font.
	FontSize  float64 // Body size in points.
	CodeFont  string
	CodeSize  float64
	CodeShade string // Hex fill behind code blocks; empty for none.
	LinkColor string // Hex color for link text.
	HeadColor string // Hex color for headings.
	RuleWidth int     // Underscores drawn for a horizontal rule.
	RuleSize  float64 // Point size of the rule underscores.
	TableHead string  // Hex fill for table header cells; empty for none.
}

// DefaultStyle returns Calibri 11pt body text with Courier New 9pt code.
func DefaultStyle() Style {
	return Style{
		FontName:  "Calibri",
		FontSize:  11,
		CodeFont:  "Courier New",
		CodeSize:  9,
		CodeShade: "F2F2F2",
		LinkColor: "0563C1",
		HeadColor: "2F5496",
		RuleWidth: 80,
		RuleSize:  1,
		TableHead: "D9E2F3",
	}
}

// headingSizes are point sizes for heading levels 1-6.
var headingSizes = [...]float64{20, 16, 14, 13, 12, 11}

// Document is a .docx under construction. It is not safe for concurrent use.
type Document struct {
	doc       *docx.Docx
	style     Style
	finalized bool
}

// New creates an empty document on go-docx's default theme. Zero fields of
// style fall back to DefaultStyle.
func New(style Style) *Document {
	def := DefaultStyle()
	if style.FontName == "" {
		style.FontName = def.FontName
	}
	if style.FontSize <= 0 {
		style.FontSize = def.FontSize
	}
	if style.CodeFont == "" {
		style.CodeFont = def.CodeFont
	}
	if style.CodeSize <= 0 {
		style.CodeSize = def.CodeSize
	}
	if style.LinkColor == "" {
		style.LinkColor = def.LinkColor
	}
	if style.HeadColor == "" {
		style.HeadColor = def.HeadColor
	}
	if style.RuleWidth <= 0 {
		style.RuleWidth = def.RuleWidth
	}
	if style.RuleSize <= 0 {
		style.RuleSize = def.RuleSize
	}
	return &Document{
		doc:   docx.New().WithDefaultTheme(),
		style: style,
	}
}

// Style returns the effective style of the document.
func (d *Document) Style() Style {
	return d.style
}

// Docx exposes the underlying go-docx document.
func (d *Document) Docx() *docx.Docx {
	return d.doc
}

// AddParagraph appends an empty body paragraph.
func (d *Document) AddParagraph() *docx.Paragraph {
	return d.doc.AddParagraph()
}

// AddRun appends text to p in the body font and size. The returned run can be
// restyled with Bold, Italic, Underline, Color, Font and Size.
func (d *Document) AddRun(p *docx.Paragraph, text string) *docx.Run {
	r := p.AddText(text)
	r.Font(d.style.FontName, d.style.FontName, d.style.FontName, "")
	r.Size(halfPoints(d.style.FontSize))
	preserveSpace(r)
	return r
}

// AddTitle appends a document title paragraph.
func (d *Document) AddTitle(text string) *docx.Paragraph {
	p := d.doc.AddParagraph().Style("Title")
	d.AddRun(p, text).Bold().Size(halfPoints(26)).Color(d.style.HeadColor)
	return p
}

// AddHeading appends a heading paragraph. Levels outside 1-6 are clamped.
// The paragraph carries the "HeadingN" style id so readers can recover the
// outline.
func (d *Document) AddHeading(text string, level int) *docx.Paragraph {
	level = min(max(level, 1), 6)
	p := d.doc.AddParagraph().Style("Heading" + strconv.Itoa(level))
	d.AddRun(p, text).Bold().Size(halfPoints(headingSizes[level-1])).Color(d.style.HeadColor)
	return p
}

// AddSpans writes formatted spans into p. Links become colored, underlined
// runs showing only the display text unless hyperlinks is set, in which case
// a clickable hyperlink to the span's URL is inserted.
func (d *Document) AddSpans(p *docx.Paragraph, spans []inline.Span, hyperlinks bool) {
	for _, s := range spans {
		switch s.Kind {
		case inline.Bold:
			d.AddRun(p, s.Text).Bold()
		case inline.Italic:
			d.AddRun(p, s.Text).Italic()
		case inline.Link:
			if hyperlinks && s.URL != "" {
				d.AddHyperlink(p, s.URL, s.Text)
				continue
			}
			d.AddRun(p, s.Text).Color(d.style.LinkColor).Underline("single")
		default:
			if s.Text != "" {
				d.AddRun(p, s.Text)
			}
		}
	}
}

// AddBullet appends a bulleted list item.
func (d *Document) AddBullet(spans []inline.Span, hyperlinks bool) *docx.Paragraph {
	p := d.listParagraph("ListBullet")
	d.AddRun(p, "•\t")
	d.AddSpans(p, spans, hyperlinks)
	return p
}

// AddNumbered appends the n-th item of a numbered list.
func (d *Document) AddNumbered(n int, spans []inline.Span, hyperlinks bool) *docx.Paragraph {
	p := d.listParagraph("ListNumber")
	d.AddRun(p, strconv.Itoa(n)+".\t")
	d.AddSpans(p, spans, hyperlinks)
	return p
}

func (d *Document) listParagraph(style string) *docx.Paragraph {
	p := d.doc.AddParagraph().Style(style)
	p.Properties.Ind = &docx.Ind{Left: 720, Hanging: 360}
	return p
}

// AddCode appends a code block as a single monospaced run, one line break
// per source line. Empty blocks add nothing and return nil.
func (d *Document) AddCode(lines []string) *docx.Paragraph {
	if len(lines) == 0 {
		return nil
	}
	p := d.doc.AddParagraph()
	r := d.AddRun(p, strings.Join(lines, "\n"))
	r.Font(d.style.CodeFont, d.style.CodeFont, d.style.CodeFont, "")
	r.Size(halfPoints(d.style.CodeSize))
	if d.style.CodeShade != "" {
		r.Shade("clear", "auto", d.style.CodeShade)
	}
	return p
}

// AddRule appends a horizontal rule drawn as a line of tiny underscores.
func (d *Document) AddRule() *docx.Paragraph {
	p := d.doc.AddParagraph()
	d.AddRun(p, strings.Repeat("_", d.style.RuleWidth)).Size(halfPoints(d.style.RuleSize))
	return p
}

// Save writes the document to path.
func (d *Document) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if _, err := d.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("write docx: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	return nil
}

// WriteTo serializes the document as a .docx zip archive. Section properties
// (A4 page) are appended on the first call.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	if !d.finalized {
		d.doc.WithA4Page()
		d.finalized = true
	}
	return d.doc.WriteTo(w)
}

// halfPoints converts a point size to the OOXML half-point string.
func halfPoints(pt float64) string {
	return strconv.Itoa(int(pt*2 + 0.5))
}

// preserveSpace keeps leading and trailing blanks of every text node; Word
// trims them otherwise.
func preserveSpace(r *docx.Run) {
	for _, c := range r.Children {
		if t, ok := c.(*docx.Text); ok {
			t.XMLSpace = "preserve"
		}
	}
}
