package render

import "github.com/fumiama/go-docx"

// AddHyperlink appends a clickable link to url showing text. The link run
// carries explicit color and underline instead of a character style.
func (d *Document) AddHyperlink(p *docx.Paragraph, url, text string) *docx.Hyperlink {
	h := p.AddLink(text, url)
	h.Run.InstrText = ""
	h.Run.RunProperties = &docx.RunProperties{
		Fonts: &docx.RunFonts{
			ASCII:    d.style.FontName,
			EastAsia: d.style.FontName,
			HAnsi:    d.style.FontName,
		},
		Size:      &docx.Size{Val: halfPoints(d.style.FontSize)},
		Color:     &docx.Color{Val: d.style.LinkColor},
		Underline: &docx.Underline{Val: "single"},
	}
	h.Run.Children = []interface{}{&docx.Text{Text: text, XMLSpace: "preserve"}}
	return h
}
