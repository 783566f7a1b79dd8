// Package frontmatter splits an optional YAML header off a Markdown source.
package frontmatter

import (
	"fmt"
	"strings"

	"go.yaml.in/yaml/v3"
)

const (
	open      = "---"
	closeDots = "..."
	closeDash = open
)

// Meta holds the recognised front matter keys. Anything else lands in Extra.
type Meta struct {
	Title  string         `yaml:"title"`
	Author string         `yaml:"author"`
	Date   string         `yaml:"date"`
	Extra  map[string]any `yaml:",inline"`
}

// Split detects a front matter block: line 0 is exactly "---" and a later
// line is exactly "---" or "...". When found and decodable, the block is
// removed from the returned body and ok is true. Without a block lines are
// returned untouched. A block that is not valid YAML is left in place and
// reported as an error alongside the untouched lines.
func Split(lines []string) (meta Meta, body []string, ok bool, err error) {
	if len(lines) == 0 || strings.TrimRight(lines[0], " \t\r") != open {
		return Meta{}, lines, false, nil
	}
	end := -1
	for i := 1; i < len(lines); i++ {
		l := strings.TrimRight(lines[i], " \t\r")
		if l == closeDash || l == closeDots {
			end = i
			break
		}
	}
	if end < 0 {
		return Meta{}, lines, false, nil
	}

	src := strings.Join(lines[1:end], "\n")
	if err := yaml.Unmarshal([]byte(src), &meta); err != nil {
		return Meta{}, lines, false, fmt.Errorf("decode front matter: %w", err)
	}
	return meta, lines[end+1:], true, nil
}
