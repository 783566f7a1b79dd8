// Package inline resolves bold, italic and link markup within a single line
// of Markdown text into an ordered sequence of styled spans.
package inline

import (
	"regexp"
	"sort"
	"strings"
)

var (
	boldRe = regexp.MustCompile(`\*\*(.*?)\*\*`)
	linkRe = regexp.MustCompile(`\[([^\]]+)\]\(([^\)]+)\)`)
)

// match is a candidate span found by one of the scans. start and end are
// byte offsets into the line, end exclusive.
type match struct {
	start, end int
	span       Span
}

// Format splits line into spans covering the whole line in order, with
// markup delimiters removed from the display text.
//
// Bold takes precedence over italic: an italic match that lies inside a bold
// match is discarded. When matches of different kinds overlap, the one that
// starts first wins and the later one is dropped, so no text is emitted twice.
func Format(line string) []Span {
	bold := boldMatches(line)

	matches := make([]match, 0, len(bold))
	matches = append(matches, bold...)
	for _, m := range italicMatches(line) {
		if !containedIn(m, bold) {
			matches = append(matches, m)
		}
	}
	matches = append(matches, linkMatches(line)...)

	// Stable sort keeps bold, italic, link order for equal starts.
	sort.SliceStable(matches, func(i, j int) bool { return matches[i].start < matches[j].start })

	var spans []Span
	cursor := 0
	for _, m := range matches {
		if m.start < cursor {
			continue
		}
		if m.start > cursor {
			spans = append(spans, Span{Kind: Plain, Text: line[cursor:m.start]})
		}
		spans = append(spans, m.span)
		cursor = m.end
	}
	if len(spans) == 0 {
		return []Span{{Kind: Plain, Text: line}}
	}
	if cursor < len(line) {
		spans = append(spans, Span{Kind: Plain, Text: line[cursor:]})
	}
	return spans
}

// boldMatches finds **content** pairs, shortest match first.
func boldMatches(line string) []match {
	var out []match
	for _, loc := range boldRe.FindAllStringSubmatchIndex(line, -1) {
		out = append(out, match{
			start: loc[0],
			end:   loc[1],
			span:  Span{Kind: Bold, Text: line[loc[2]:loc[3]]},
		})
	}
	return out
}

// italicMatches finds *content* where neither delimiter touches another '*'
// on its outer side and content holds no '*'.
func italicMatches(line string) []match {
	var out []match
	i := 0
	for i < len(line) {
		if line[i] != '*' || (i > 0 && line[i-1] == '*') {
			i++
			continue
		}
		n := strings.IndexByte(line[i+1:], '*')
		if n <= 0 {
			i++
			continue
		}
		closing := i + 1 + n
		if closing+1 < len(line) && line[closing+1] == '*' {
			i++
			continue
		}
		out = append(out, match{
			start: i,
			end:   closing + 1,
			span:  Span{Kind: Italic, Text: line[i+1 : closing]},
		})
		i = closing + 1
	}
	return out
}

// linkMatches finds [display](url) links.
func linkMatches(line string) []match {
	var out []match
	for _, loc := range linkRe.FindAllStringSubmatchIndex(line, -1) {
		out = append(out, match{
			start: loc[0],
			end:   loc[1],
			span: Span{
				Kind: Link,
				Text: line[loc[2]:loc[3]],
				URL:  line[loc[4]:loc[5]],
			},
		})
	}
	return out
}

func containedIn(m match, outer []match) bool {
	for _, o := range outer {
		if m.start >= o.start && m.end <= o.end {
			return true
		}
	}
	return false
}
