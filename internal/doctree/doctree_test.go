package doctree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_Nesting(t *testing.T) {
	b := NewBuilder("plan")
	b.Text("preamble")
	b.Heading(1, "Title")
	b.Text("intro")
	b.Heading(2, "A")
	b.Heading(3, "A1")
	b.Text("deep")
	b.Heading(2, "B")
	b.Heading(1, "Second")
	o := b.Outline()

	assert.Equal(t, "plan", o.Title)
	require.Len(t, o.Sections, 2)
	title := o.Sections[0]
	assert.Equal(t, "intro", title.Text)
	require.Len(t, title.Children, 2)
	assert.Equal(t, "A1", title.Children[0].Children[0].Title)
	assert.Equal(t, "deep", title.Children[0].Children[0].Text)

	assert.Equal(t, []Heading{
		{1, "Title"}, {2, "A"}, {3, "A1"}, {2, "B"}, {1, "Second"},
	}, o.Headings())
}

func TestBuilder_SkippedLevels(t *testing.T) {
	b := NewBuilder("x")
	b.Heading(3, "deep first")
	b.Heading(1, "top")
	b.Heading(4, "under top")
	o := b.Outline()

	require.Len(t, o.Sections, 2)
	assert.Equal(t, "under top", o.Sections[1].Children[0].Title)
}

func TestBuilder_NoHeadings(t *testing.T) {
	b := NewBuilder("x")
	b.Text("one")
	b.Text("  ")
	b.Text("two")
	o := b.Outline()

	require.Len(t, o.Sections, 1)
	assert.Equal(t, "one\n\ntwo", o.Sections[0].Text)
	assert.Empty(t, o.Headings())
}

func TestBuilder_Empty(t *testing.T) {
	o := NewBuilder("x").Outline()
	assert.Empty(t, o.Sections)
}
