// Package paragraph splits text into paragraph units. A paragraph is a
// maximal run of consecutive non-blank lines; a line is blank when it is
// empty after trimming surrounding whitespace.
package paragraph

import "strings"

// Split returns the paragraphs of text in order. Blank lines separate
// paragraphs; consecutive blank lines do not produce empty paragraphs.
func Split(text string) []string {
	var paras []string
	var cur strings.Builder

	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			if cur.Len() > 0 {
				paras = append(paras, cur.String())
				cur.Reset()
			}
			continue
		}
		if cur.Len() > 0 {
			cur.WriteByte('\n')
		}
		cur.WriteString(line)
	}
	if cur.Len() > 0 {
		paras = append(paras, cur.String())
	}

	return paras
}

// Count returns the number of paragraphs in text. Empty or all-blank
// input counts zero.
func Count(text string) int {
	return len(Split(text))
}
