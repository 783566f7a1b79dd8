package doctree

import "strings"

// Outline is the heading structure of a parsed document.
type Outline struct {
	Title    string     // Document title (from the filename)
	Sections []*Section // Top-level sections
}

// Section is a heading and the content nested under it.
type Section struct {
	Title    string     // Heading text (empty for headingless text)
	Level    int        // 1-6, 0 for headingless text
	Text     string     // Body text directly under the heading
	Children []*Section // Subsections
}

// Heading is one entry of a flattened outline.
type Heading struct {
	Level int
	Title string
}

// Headings returns every heading in document order.
func (o *Outline) Headings() []Heading {
	var out []Heading
	var walk func([]*Section)
	walk = func(ss []*Section) {
		for _, s := range ss {
			if s.Level > 0 {
				out = append(out, Heading{Level: s.Level, Title: s.Title})
			}
			walk(s.Children)
		}
	}
	walk(o.Sections)
	return out
}

// Builder assembles an Outline from a stream of headings and text blocks.
// A heading nests under the nearest preceding heading of a lower level.
type Builder struct {
	title string
	root  *Section
	stack []stackEntry
	text  strings.Builder
}

type stackEntry struct {
	section *Section
	level   int
}

func NewBuilder(title string) *Builder {
	root := &Section{Title: title}
	return &Builder{
		title: title,
		root:  root,
		stack: []stackEntry{{section: root, level: 0}},
	}
}

// Heading opens a new section at level.
func (b *Builder) Heading(level int, title string) {
	b.flush()
	s := &Section{Title: title, Level: level}
	for len(b.stack) > 1 && b.stack[len(b.stack)-1].level >= level {
		b.stack = b.stack[:len(b.stack)-1]
	}
	parent := b.stack[len(b.stack)-1].section
	parent.Children = append(parent.Children, s)
	b.stack = append(b.stack, stackEntry{section: s, level: level})
}

// Text appends a block of body text to the current section.
func (b *Builder) Text(t string) {
	t = strings.TrimSpace(t)
	if t == "" {
		return
	}
	if b.text.Len() > 0 {
		b.text.WriteString("\n\n")
	}
	b.text.WriteString(t)
}

func (b *Builder) flush() {
	t := b.text.String()
	b.text.Reset()
	if t == "" {
		return
	}
	top := b.stack[len(b.stack)-1].section
	if top.Text != "" {
		top.Text += "\n\n" + t
	} else {
		top.Text = t
	}
}

// Outline finishes the build. Text without any heading becomes a single
// untitled section.
func (b *Builder) Outline() *Outline {
	b.flush()
	o := &Outline{Title: b.title, Sections: b.root.Children}
	if len(o.Sections) == 0 && b.root.Text != "" {
		o.Sections = []*Section{{Text: b.root.Text}}
	}
	return o
}
