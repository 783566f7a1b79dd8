package inline

import "strings"

// SpanKind is the formatting applied to a Span.
type SpanKind int

const (
	Plain SpanKind = iota
	Bold
	Italic
	Link
)

func (k SpanKind) String() string {
	switch k {
	case Plain:
		return "plain"
	case Bold:
		return "bold"
	case Italic:
		return "italic"
	case Link:
		return "link"
	}
	return "unknown"
}

// Span is a contiguous run of display text with one formatting kind.
// URL is set only for Link spans.
type Span struct {
	Kind SpanKind
	Text string
	URL  string
}

// Text concatenates the display text of spans.
func Text(spans []Span) string {
	var sb strings.Builder
	for _, s := range spans {
		sb.WriteString(s.Text)
	}
	return sb.String()
}
