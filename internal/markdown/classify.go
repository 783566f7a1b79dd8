// Package markdown classifies Markdown source lines into typed blocks.
//
// The classifier is line oriented: each block starts at a single line and
// may consume further lines (code fences and tables). It is a subset of
// Markdown tuned for plans and reports, not a CommonMark implementation.
package markdown

import (
	"iter"
	"regexp"
	"strings"
)

const (
	fenceMarker = "```"
	ruleMarker  = "---"

	uncheckedBox = "☐"
	checkedBox   = "☑"
)

var numberedRe = regexp.MustCompile(`^\d+\.\s`)

// Next returns the block that starts at or after pos. consumed counts every
// line used, including blank lines skipped before the block. ok is false at
// end of input.
func Next(lines []string, pos int) (b Block, consumed int, ok bool) {
	start := pos
	for pos < len(lines) && isBlank(lines[pos]) {
		pos++
	}
	if pos >= len(lines) {
		return nil, pos - start, false
	}
	b, n := classify(lines, pos)
	return b, pos - start + n, true
}

// Blocks lazily yields the blocks of lines in document order.
func Blocks(lines []string) iter.Seq[Block] {
	return func(yield func(Block) bool) {
		pos := 0
		for {
			b, n, ok := Next(lines, pos)
			if !ok {
				return
			}
			pos += n
			if !yield(b) {
				return
			}
		}
	}
}

// Classify returns all blocks of lines.
func Classify(lines []string) []Block {
	var blocks []Block
	for b := range Blocks(lines) {
		blocks = append(blocks, b)
	}
	return blocks
}

// classify handles the non-blank line at pos. Rules are checked in priority
// order and the first match wins.
func classify(lines []string, pos int) (Block, int) {
	line := strings.TrimRight(lines[pos], " \t\r\n")

	if level, text, ok := heading(line); ok {
		return Heading{Level: level, Text: text}, 1
	}

	if strings.HasPrefix(line, ruleMarker) {
		return Rule{}, 1
	}

	if strings.HasPrefix(line, fenceMarker) {
		return code(lines, pos)
	}

	if strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* ") {
		return BulletItem{Text: checkbox(strings.TrimSpace(line[2:]))}, 1
	}

	if m := numberedRe.FindString(line); m != "" {
		return NumberedItem{Text: line[len(m):]}, 1
	}

	if strings.Contains(line, "|") && pos+1 < len(lines) && strings.Contains(lines[pos+1], ruleMarker) {
		return table(lines, pos)
	}

	return Paragraph{Text: line}, 1
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// heading recognises 1-6 '#' followed by a space.
func heading(line string) (int, string, bool) {
	level := 0
	for level < len(line) && line[level] == '#' {
		level++
	}
	if level == 0 || level > 6 || level >= len(line) || line[level] != ' ' {
		return 0, "", false
	}
	return level, line[level+1:], true
}

// code collects the lines between the opening fence at pos and the next line
// whose trimmed form starts with a fence. An unterminated fence runs to the
// end of input.
func code(lines []string, pos int) (Block, int) {
	i := pos + 1
	var body []string
	for i < len(lines) && !strings.HasPrefix(strings.TrimSpace(lines[i]), fenceMarker) {
		body = append(body, lines[i])
		i++
	}
	if i < len(lines) {
		i++ // closing fence
	}
	return Code{Lines: body}, i - pos
}

// checkbox replaces a leading task-list marker with a checkbox glyph.
func checkbox(text string) string {
	switch {
	case strings.HasPrefix(text, "[ ]"):
		return uncheckedBox + " " + strings.TrimSpace(text[3:])
	case strings.HasPrefix(text, "[x]"), strings.HasPrefix(text, "[X]"):
		return checkedBox + " " + strings.TrimSpace(text[3:])
	}
	return text
}

// table parses the header at pos, skips the separator line and collects
// every following line that contains a pipe.
func table(lines []string, pos int) (Block, int) {
	t := Table{Header: splitRow(lines[pos])}
	i := pos + 2
	for i < len(lines) && strings.Contains(lines[i], "|") {
		t.Rows = append(t.Rows, splitRow(lines[i]))
		i++
	}
	return t, i - pos
}

// splitRow splits a pipe table line into trimmed cells. The empty fields
// produced by a leading or trailing pipe are dropped.
func splitRow(line string) []string {
	fields := strings.Split(strings.TrimRight(line, " \t\r\n"), "|")
	if len(fields) > 0 && strings.TrimSpace(fields[0]) == "" {
		fields = fields[1:]
	}
	if len(fields) > 0 && strings.TrimSpace(fields[len(fields)-1]) == "" {
		fields = fields[:len(fields)-1]
	}
	cells := make([]string, len(fields))
	for i, f := range fields {
		cells[i] = strings.TrimSpace(f)
	}
	return cells
}
