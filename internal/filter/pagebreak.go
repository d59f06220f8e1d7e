package filter

import (
	"strings"

	"github.com/gubarz/mdtoc/internal/document"
)

// PageBreak is the HTML marker most Markdown-to-PDF exporters honour.
const PageBreak = `<div style="page-break-after: always;"></div>`

// PageBreaks inserts a page break before every level-1 and level-2 heading
// except the first heading of the document. A heading whose nearest
// preceding non-blank line already mentions "page-break" is left alone, so
// the filter can be rerun safely. It returns the new text and the number of
// breaks added.
func PageBreaks(text string) (string, int) {
	lines := document.Split(text)
	out := make([]string, 0, len(lines))
	added := 0
	first := true

	state := document.Normal
	for _, line := range lines {
		var marker bool
		state, marker = state.Next(line)
		if marker || state == document.InFence || !isBreakHeading(line) {
			out = append(out, line)
			continue
		}

		if first {
			first = false
			out = append(out, line)
			continue
		}

		if !precededByBreak(out) {
			if len(out) > 0 && strings.TrimSpace(out[len(out)-1]) != "" {
				out = append(out, "")
			}
			out = append(out, PageBreak, "")
			added++
		}
		out = append(out, line)
	}
	return document.Join(out), added
}

func isBreakHeading(line string) bool {
	s := strings.TrimSpace(line)
	return strings.HasPrefix(s, "# ") || strings.HasPrefix(s, "## ")
}

func precededByBreak(out []string) bool {
	for i := len(out) - 1; i >= 0; i-- {
		prev := strings.TrimSpace(out[i])
		if prev == "" {
			continue
		}
		return strings.Contains(prev, "page-break")
	}
	return false
}
