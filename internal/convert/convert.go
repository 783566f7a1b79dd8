// Package convert drives a Markdown to .docx conversion: it reads the
// source, classifies blocks, formats inline text and saves the document.
package convert

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dgallion1/md2docx/internal/config"
	"github.com/dgallion1/md2docx/internal/frontmatter"
	"github.com/dgallion1/md2docx/internal/inline"
	"github.com/dgallion1/md2docx/internal/markdown"
	"github.com/dgallion1/md2docx/internal/outline"
	"github.com/dgallion1/md2docx/internal/render"
)

// Result summarizes one conversion.
type Result struct {
	Input    string
	Output   string
	Title    string // From front matter, if any.
	Lines    int
	Blocks   map[markdown.BlockKind]int
	Duration time.Duration
	// Outline differences between source and saved document.
	OutlineDiffs []string

	body []string // lines after front matter
}

// Converter renders Markdown into documents styled from its config.
type Converter struct {
	cfg config.Config
	log *slog.Logger
}

func New(cfg config.Config, log *slog.Logger) *Converter {
	return &Converter{cfg: cfg, log: log}
}

// Style maps the configured fonts and colors onto a render style.
func (c *Converter) Style() render.Style {
	s := render.DefaultStyle()
	s.FontName = c.cfg.FontName
	s.FontSize = c.cfg.FontSize
	s.CodeFont = c.cfg.CodeFont
	s.CodeSize = c.cfg.CodeSize
	s.LinkColor = c.cfg.LinkColor
	return s
}

// Render converts lines into a new document in a single pass. With front
// matter enabled, a leading YAML block is removed and its title becomes the
// document title. Cancelling ctx stops rendering between blocks.
func (c *Converter) Render(ctx context.Context, lines []string) (*render.Document, Result, error) {
	res := Result{Lines: len(lines), Blocks: map[markdown.BlockKind]int{}}
	res.body = lines
	if c.cfg.FrontMatter {
		meta, rest, ok, err := frontmatter.Split(lines)
		switch {
		case err != nil:
			c.log.Warn("front matter ignored", "error", err)
		case ok:
			res.Title, res.body = meta.Title, rest
			c.log.Debug("front matter", "title", meta.Title, "author", meta.Author)
		}
	}

	doc := render.New(c.Style())
	if res.Title != "" {
		doc.AddTitle(res.Title)
	}

	// Numbering continues across code blocks, bullets and indented
	// continuation lines; headings, rules, tables and body paragraphs
	// start a new list.
	numbered := 0
	for b := range markdown.Blocks(res.body) {
		if err := ctx.Err(); err != nil {
			return doc, res, err
		}
		res.Blocks[b.Kind()]++

		switch b := b.(type) {
		case markdown.Heading:
			numbered = 0
			doc.AddHeading(b.Text, b.Level)
		case markdown.Rule:
			numbered = 0
			doc.AddRule()
		case markdown.Code:
			doc.AddCode(b.Lines)
		case markdown.BulletItem:
			doc.AddBullet(inline.Format(b.Text), c.cfg.Hyperlinks)
		case markdown.NumberedItem:
			numbered++
			doc.AddNumbered(numbered, inline.Format(b.Text), c.cfg.Hyperlinks)
		case markdown.Table:
			numbered = 0
			if doc.AddTable(b.Header, b.Rows) == nil {
				c.log.Warn("table without header cells dropped", "rows", len(b.Rows))
			}
		case markdown.Paragraph:
			if !continuation(b.Text) {
				numbered = 0
			}
			doc.AddSpans(doc.AddParagraph(), inline.Format(b.Text), c.cfg.Hyperlinks)
		default:
			panic(fmt.Sprintf("convert: unhandled block %T", b))
		}
	}
	return doc, res, nil
}

// continuation reports whether a paragraph line is indented under a list item.
func continuation(line string) bool {
	return strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t")
}

// File converts the Markdown file in into the .docx file out. A missing
// output directory is created once and the save retried. With verification
// enabled, the saved document's heading outline is compared with the
// source's and differences are logged; they never fail the conversion.
func (c *Converter) File(ctx context.Context, in, out string) (Result, error) {
	start := time.Now()
	log := c.log.With("input", in, "output", out)

	lines, err := ReadLines(in, c.cfg.Normalize)
	if err != nil {
		return Result{}, err
	}

	doc, res, err := c.withLogger(log).Render(ctx, lines)
	res.Input, res.Output = in, out
	if err != nil {
		return res, fmt.Errorf("render: %w", err)
	}

	err = WithRecovery(
		func() error { return save(doc, out) },
		func(missing *MissingDependencyError) error {
			log.Warn("creating output directory", "dir", missing.Resource)
			return os.MkdirAll(missing.Resource, 0o755)
		},
	)
	if err != nil {
		return res, fmt.Errorf("save document: %w", err)
	}

	if c.cfg.Verify {
		res.OutlineDiffs = c.verify(res.body, in, out, log)
	}

	res.Duration = time.Since(start)
	log.Info("document converted",
		"lines", res.Lines,
		"headings", res.Blocks[markdown.KindHeading],
		"tables", res.Blocks[markdown.KindTable],
		"code_blocks", res.Blocks[markdown.KindCode],
		"duration", res.Duration,
	)
	return res, nil
}

func (c *Converter) withLogger(log *slog.Logger) *Converter {
	cc := *c
	cc.log = log
	return &cc
}

// save writes doc to path, reporting a nonexistent parent directory as a
// MissingDependencyError.
func save(doc *render.Document, path string) error {
	err := doc.Save(path)
	if err == nil || !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	dir := filepath.Dir(path)
	if _, serr := os.Stat(dir); errors.Is(serr, fs.ErrNotExist) {
		return &MissingDependencyError{Resource: dir, Err: err}
	}
	return err
}

func (c *Converter) verify(body []string, in, out string, log *slog.Logger) []string {
	src, err := (&outline.MarkdownReader{}).Read(strings.NewReader(strings.Join(body, "\n")), filepath.Base(in))
	if err != nil {
		log.Warn("outline check skipped", "error", err)
		return nil
	}
	saved, err := outline.ReadFile(out)
	if err != nil {
		log.Warn("outline check skipped", "error", err)
		return nil
	}
	diffs := outline.Compare(src, saved)
	for _, d := range diffs {
		log.Warn("outline mismatch", "detail", d)
	}
	return diffs
}
