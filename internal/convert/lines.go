package convert

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/unicode/norm"
)

const bom = "\uFEFF"

// ReadLines reads path fully and splits it into lines with line terminators
// ("\n" or "\r\n") removed. A leading byte order mark is dropped. With
// normalize set the text is converted to Unicode NFC first, so composed and
// decomposed accents render identically.
func ReadLines(path string, normalize bool) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read source: %w", err)
	}
	if normalize {
		data = norm.NFC.Bytes(data)
	}
	return SplitLines(string(data)), nil
}

// SplitLines splits text on "\n" and strips a trailing "\r" from each line.
// A final newline does not produce an extra empty line.
func SplitLines(text string) []string {
	text = strings.TrimPrefix(text, bom)
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
