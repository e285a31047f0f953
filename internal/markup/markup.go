// Package markup provides lossy two-way transcoding between a small HTML
// subset and plain text. Conversion never fails: malformed markup degrades
// to best-effort stripped text, and entities are left untouched in both
// directions (loading `&amp;` yields the literal text `&amp;`).
package markup

import (
	"strings"

	"github.com/gerunddev/scribe/internal/paragraph"
)

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// ToPlainText strips markup from html, keeping text content. Tags whose
// body begins with "br", "p" or "/p" become paragraph breaks; every other
// tag is discarded with no substitution. Runs of blank lines collapse to
// at most two, and the result is trimmed of surrounding whitespace.
func ToPlainText(html string) string {
	var out strings.Builder
	var tag strings.Builder
	inTag := false

	for _, c := range html {
		if c == '<' {
			// A '<' inside an open tag restarts it.
			inTag = true
			tag.Reset()
			continue
		}
		if inTag {
			if c != '>' {
				tag.WriteRune(c)
				continue
			}
			inTag = false
			t := strings.ToLower(strings.TrimSpace(tag.String()))
			if strings.HasPrefix(t, "br") || strings.HasPrefix(t, "p") || strings.HasPrefix(t, "/p") {
				out.WriteString("\n\n")
			}
			continue
		}
		out.WriteRune(c)
	}
	// An unclosed tag swallows the remainder of the input.

	return strings.TrimSpace(collapseBlankLines(out.String()))
}

// collapseBlankLines keeps at most two consecutive blank lines and drops
// whitespace from the blank lines it keeps.
func collapseBlankLines(s string) string {
	var result strings.Builder
	empty := 0
	for _, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) == "" {
			empty++
			if empty <= 2 {
				result.WriteByte('\n')
			}
			continue
		}
		empty = 0
		result.WriteString(line)
		result.WriteByte('\n')
	}
	return result.String()
}

// ToMarkup renders text as a minimal HTML document: each blank-line
// separated paragraph is escaped and wrapped in a <p> element.
func ToMarkup(text string) string {
	var out strings.Builder
	out.WriteString("<html><body>\n")
	for _, p := range paragraph.Split(text) {
		out.WriteString("<p>")
		out.WriteString(escaper.Replace(p))
		out.WriteString("</p>\n")
	}
	out.WriteString("\n</body></html>\n")
	return out.String()
}
