package render

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dgallion1/md2docx/internal/inline"
	"github.com/fumiama/go-docx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// reparse serializes d and reads it back with go-docx.
func reparse(t *testing.T, d *Document) *docx.Docx {
	t.Helper()
	var buf bytes.Buffer
	_, err := d.WriteTo(&buf)
	require.NoError(t, err)
	out, err := docx.Parse(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	return out
}

func paragraphs(doc *docx.Docx) []*docx.Paragraph {
	var out []*docx.Paragraph
	for _, item := range doc.Document.Body.Items {
		if p, ok := item.(*docx.Paragraph); ok {
			out = append(out, p)
		}
	}
	return out
}

func runs(p *docx.Paragraph) []*docx.Run {
	var out []*docx.Run
	for _, c := range p.Children {
		if r, ok := c.(*docx.Run); ok {
			out = append(out, r)
		}
	}
	return out
}

func runText(r *docx.Run) string {
	var sb strings.Builder
	for _, c := range r.Children {
		switch x := c.(type) {
		case *docx.Text:
			sb.WriteString(x.Text)
		case *docx.Tab:
			sb.WriteByte('\t')
		case *docx.BarterRabbet:
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func paragraphText(p *docx.Paragraph) string {
	var sb strings.Builder
	for _, r := range runs(p) {
		sb.WriteString(runText(r))
	}
	return sb.String()
}

func TestNew_ZeroStyleUsesDefaults(t *testing.T) {
	d := New(Style{})
	assert.Equal(t, "Calibri", d.Style().FontName)
	assert.Equal(t, 11.0, d.Style().FontSize)
	assert.Equal(t, "Courier New", d.Style().CodeFont)
	assert.Equal(t, 80, d.Style().RuleWidth)

	custom := New(Style{FontName: "Arial", FontSize: 12})
	assert.Equal(t, "Arial", custom.Style().FontName)
	assert.Equal(t, 12.0, custom.Style().FontSize)
}

func TestAddRun_AppliesDefaultFont(t *testing.T) {
	d := New(DefaultStyle())
	p := d.AddParagraph()
	r := d.AddRun(p, "  indented")

	require.NotNil(t, r.RunProperties.Fonts)
	assert.Equal(t, "Calibri", r.RunProperties.Fonts.ASCII)
	assert.Equal(t, "22", r.RunProperties.Size.Val)

	got := paragraphs(reparse(t, d))
	require.Len(t, got, 1)
	assert.Equal(t, "  indented", paragraphText(got[0]))
}

func TestAddHeading(t *testing.T) {
	tests := []struct {
		level     int
		wantStyle string
		wantSize  string
	}{
		{1, "Heading1", "40"},
		{2, "Heading2", "32"},
		{3, "Heading3", "28"},
		{6, "Heading6", "22"},
		{0, "Heading1", "40"},
		{9, "Heading6", "22"},
	}
	for _, tt := range tests {
		d := New(DefaultStyle())
		p := d.AddHeading("Title", tt.level)
		require.NotNil(t, p.Properties.Style)
		assert.Equal(t, tt.wantStyle, p.Properties.Style.Val, "level %d", tt.level)

		rs := runs(p)
		require.Len(t, rs, 1)
		assert.NotNil(t, rs[0].RunProperties.Bold)
		assert.Equal(t, tt.wantSize, rs[0].RunProperties.Size.Val, "level %d", tt.level)
	}
}

func TestAddHeading_SurvivesReparse(t *testing.T) {
	d := New(DefaultStyle())
	d.AddHeading("Plan", 1)
	d.AddHeading("Goals", 2)

	got := paragraphs(reparse(t, d))
	require.Len(t, got, 2)
	assert.Equal(t, "Heading1", got[0].Properties.Style.Val)
	assert.Equal(t, "Plan", paragraphText(got[0]))
	assert.Equal(t, "Heading2", got[1].Properties.Style.Val)
	assert.Equal(t, "Goals", paragraphText(got[1]))
}

func TestAddSpans_LinkAsStyledRun(t *testing.T) {
	d := New(DefaultStyle())
	p := d.AddParagraph()
	d.AddSpans(p, inline.Format("See **this** and *that* at [docs](https://x.io)."), false)

	rs := runs(p)
	require.Len(t, rs, 7)
	assert.Equal(t, "See ", runText(rs[0]))
	assert.Equal(t, "this", runText(rs[1]))
	assert.NotNil(t, rs[1].RunProperties.Bold)
	assert.Equal(t, "that", runText(rs[3]))
	assert.NotNil(t, rs[3].RunProperties.Italic)

	link := rs[5]
	assert.Equal(t, "docs", runText(link))
	assert.Equal(t, "0563C1", link.RunProperties.Color.Val)
	assert.Equal(t, "single", link.RunProperties.Underline.Val)
	assert.Equal(t, ".", runText(rs[6]))
	assert.NotContains(t, paragraphText(p), "https://x.io")
}

func TestAddSpans_Hyperlink(t *testing.T) {
	d := New(DefaultStyle())
	p := d.AddParagraph()
	d.AddSpans(p, []inline.Span{
		{Kind: inline.Plain, Text: "go "},
		{Kind: inline.Link, Text: "home", URL: "https://example.com"},
	}, true)

	require.Len(t, p.Children, 2)
	h, ok := p.Children[1].(*docx.Hyperlink)
	require.True(t, ok)
	assert.Empty(t, h.Run.InstrText)
	assert.Equal(t, "home", runText(&h.Run))
	assert.Equal(t, "0563C1", h.Run.RunProperties.Color.Val)

	target, err := d.Docx().ReferTarget(h.ID)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", target)
}

func TestAddBulletAndNumbered(t *testing.T) {
	d := New(DefaultStyle())
	b := d.AddBullet(inline.Format("☐ Todo"), false)
	n := d.AddNumbered(3, inline.Format("Third **step**"), false)

	assert.Equal(t, "ListBullet", b.Properties.Style.Val)
	assert.Equal(t, "•\t☐ Todo", paragraphText(b))
	assert.Equal(t, 720, b.Properties.Ind.Left)

	assert.Equal(t, "ListNumber", n.Properties.Style.Val)
	assert.Equal(t, "3.\tThird step", paragraphText(n))
}

func TestAddCode(t *testing.T) {
	d := New(DefaultStyle())
	p := d.AddCode([]string{"func main() {", "    fmt.Println(1)", "}"})
	require.NotNil(t, p)

	rs := runs(p)
	require.Len(t, rs, 1)
	assert.Equal(t, "func main() {\n    fmt.Println(1)\n}", runText(rs[0]))
	assert.Equal(t, "Courier New", rs[0].RunProperties.Fonts.ASCII)
	assert.Equal(t, "18", rs[0].RunProperties.Size.Val)

	got := paragraphs(reparse(t, d))
	require.Len(t, got, 1)
	assert.Equal(t, "func main() {\n    fmt.Println(1)\n}", paragraphText(got[0]))
}

func TestAddCode_EmptyAddsNothing(t *testing.T) {
	d := New(DefaultStyle())
	assert.Nil(t, d.AddCode(nil))
	assert.Empty(t, d.Docx().Document.Body.Items)
}

func TestAddRule(t *testing.T) {
	d := New(Style{RuleWidth: 10, RuleSize: 1})
	p := d.AddRule()
	rs := runs(p)
	require.Len(t, rs, 1)
	assert.Equal(t, strings.Repeat("_", 10), runText(rs[0]))
	assert.Equal(t, "2", rs[0].RunProperties.Size.Val)
}

func TestAddTable(t *testing.T) {
	d := New(DefaultStyle())
	tbl := d.AddTable([]string{"Name", "Role"}, [][]string{
		{"ann"},
		{"bob", "ops", "dropped"},
	})
	require.NotNil(t, tbl)
	require.Len(t, tbl.TableRows, 3)

	head := tbl.TableRows[0].TableCells
	require.Len(t, head, 2)
	assert.Equal(t, "Name", paragraphText(head[0].Paragraphs[0]))
	assert.NotNil(t, runs(head[0].Paragraphs[0])[0].RunProperties.Bold)
	assert.Equal(t, "D9E2F3", head[0].TableCellProperties.Shade.Fill)

	first := tbl.TableRows[1].TableCells
	require.Len(t, first, 2)
	assert.Equal(t, "ann", paragraphText(first[0].Paragraphs[0]))
	require.Len(t, first[1].Paragraphs, 1)
	assert.Empty(t, first[1].Paragraphs[0].Children)

	second := tbl.TableRows[2].TableCells
	require.Len(t, second, 2)
	assert.Equal(t, "ops", paragraphText(second[1].Paragraphs[0]))
}

func TestAddTable_SurvivesReparse(t *testing.T) {
	d := New(DefaultStyle())
	d.AddTable([]string{"A", "B"}, [][]string{{"1", "2"}, {"3", "4"}})

	doc := reparse(t, d)
	var tables []*docx.Table
	for _, item := range doc.Document.Body.Items {
		if tbl, ok := item.(*docx.Table); ok {
			tables = append(tables, tbl)
		}
	}
	require.Len(t, tables, 1)
	require.Len(t, tables[0].TableRows, 3)
	assert.Equal(t, "4", paragraphText(tables[0].TableRows[2].TableCells[1].Paragraphs[0]))
}

func TestAddTable_NoHeader(t *testing.T) {
	d := New(DefaultStyle())
	assert.Nil(t, d.AddTable(nil, [][]string{{"x"}}))
}

func TestWriteTo_AppendsSectionOnce(t *testing.T) {
	d := New(DefaultStyle())
	d.AddHeading("x", 1)

	var a, b bytes.Buffer
	_, err := d.WriteTo(&a)
	require.NoError(t, err)
	_, err = d.WriteTo(&b)
	require.NoError(t, err)

	sections := 0
	for _, item := range d.Docx().Document.Body.Items {
		if _, ok := item.(*docx.SectPr); ok {
			sections++
		}
	}
	assert.Equal(t, 1, sections)
}

func TestSave(t *testing.T) {
	d := New(DefaultStyle())
	d.AddHeading("Saved", 1)
	path := filepath.Join(t.TempDir(), "out.docx")
	require.NoError(t, d.Save(path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	info, err := f.Stat()
	require.NoError(t, err)
	doc, err := docx.Parse(f, info.Size())
	require.NoError(t, err)
	assert.Equal(t, "Saved", paragraphText(paragraphs(doc)[0]))
}

func TestSave_MissingDirectory(t *testing.T) {
	d := New(DefaultStyle())
	err := d.Save(filepath.Join(t.TempDir(), "nope", "out.docx"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
