package markdown

// BlockKind identifies the variant of a Block.
type BlockKind string

const (
	KindHeading      BlockKind = "heading"
	KindRule         BlockKind = "rule"
	KindCode         BlockKind = "code"
	KindBulletItem   BlockKind = "bullet_item"
	KindNumberedItem BlockKind = "numbered_item"
	KindTable        BlockKind = "table"
	KindParagraph    BlockKind = "paragraph"
)

// Block is one structural unit of a Markdown document. The set of
// implementations is closed: Heading, Rule, Code, BulletItem, NumberedItem,
// Table and Paragraph.
type Block interface {
	Kind() BlockKind
	block()
}

// Heading is an ATX heading ("# Title" .. "###### Title").
type Heading struct {
	Level int // 1-6
	Text  string
}

// Rule is a horizontal rule ("---").
type Rule struct{}

// Code is a fenced code block. Lines are copied verbatim, fences excluded.
type Code struct {
	Lines []string
}

// BulletItem is a "- " or "* " list item. Checkbox markers are already
// translated to ☐ / ☑.
type BulletItem struct {
	Text string
}

// NumberedItem is a "1. " list item with the numeral stripped.
type NumberedItem struct {
	Text string
}

// Table is a pipe table. Rows may be shorter or longer than Header.
type Table struct {
	Header []string
	Rows   [][]string
}

// Paragraph is any line that matched nothing else.
type Paragraph struct {
	Text string
}

func (Heading) Kind() BlockKind      { return KindHeading }
func (Rule) Kind() BlockKind         { return KindRule }
func (Code) Kind() BlockKind         { return KindCode }
func (BulletItem) Kind() BlockKind   { return KindBulletItem }
func (NumberedItem) Kind() BlockKind { return KindNumberedItem }
func (Table) Kind() BlockKind        { return KindTable }
func (Paragraph) Kind() BlockKind    { return KindParagraph }

func (Heading) block()      {}
func (Rule) block()         {}
func (Code) block()         {}
func (BulletItem) block()   {}
func (NumberedItem) block() {}
func (Table) block()        {}
func (Paragraph) block()    {}
