package filter

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/gubarz/mdtoc/internal/document"
)

// IndentStyle selects the paragraph indent string
type IndentStyle string

const (
	IndentFullWidth IndentStyle = "fullwidth"
	IndentHTML      IndentStyle = "html"
)

// Indent returns the prefix written before each paragraph.
func (s IndentStyle) Indent() string {
	if s == IndentHTML {
		return "&emsp;&emsp;"
	}
	return "　　"
}

// ParseIndentStyle accepts "fullwidth" or "html".
func ParseIndentStyle(s string) (IndentStyle, error) {
	switch IndentStyle(strings.ToLower(s)) {
	case IndentFullWidth, "":
		return IndentFullWidth, nil
	case IndentHTML:
		return IndentHTML, nil
	}
	return "", fmt.Errorf("unknown indent style: %s (supported: fullwidth, html)", s)
}

// IndentStats counts what Indent touched
type IndentStats struct {
	Processed int // paragraph lines re-indented
	Skipped   int // non-blank lines left alone
}

var (
	atxHeadingRe  = regexp.MustCompile(`^#{1,6}\s`)
	bulletRe      = regexp.MustCompile(`^[-*]\s`)
	orderedRe     = regexp.MustCompile(`^\d+\.\s`)
	bareURLRe     = regexp.MustCompile(`^https?://`)
	ruleRe        = regexp.MustCompile(`^[-*_]{3,}$`)
	cjkRe         = regexp.MustCompile(`[\x{4e00}-\x{9fff}]`)
	latinLetterRe = regexp.MustCompile(`[a-zA-Z]`)
)

// Indent re-indents plain paragraph lines with style's prefix. Existing
// leading whitespace and indent entities are stripped first, so the result
// is stable across reruns.
func Indent(text string, style IndentStyle) (string, IndentStats) {
	lines := document.Split(text)
	out := make([]string, 0, len(lines))
	prefix := style.Indent()
	var stats IndentStats

	state := document.Normal
	for _, line := range lines {
		var marker bool
		state, marker = state.Next(line)
		if marker {
			out = append(out, line)
			stats.Skipped++
			continue
		}

		if state == document.Normal && isParagraph(line) {
			out = append(out, prefix+stripIndent(line))
			stats.Processed++
			continue
		}

		out = append(out, line)
		if strings.TrimSpace(line) != "" {
			stats.Skipped++
		}
	}
	return document.Join(out), stats
}

func stripIndent(line string) string {
	s := line
	for {
		trimmed := strings.TrimLeftFunc(s, unicode.IsSpace)
		trimmed = strings.TrimPrefix(trimmed, "&emsp;")
		if trimmed == s {
			return s
		}
		s = trimmed
	}
}

func isParagraph(line string) bool {
	s := strings.TrimSpace(stripIndent(line))
	switch {
	case s == "":
		return false
	case atxHeadingRe.MatchString(s):
		return false
	case bulletRe.MatchString(s), orderedRe.MatchString(s):
		return false
	case strings.HasPrefix(s, ">"):
		return false
	case strings.Contains(s, "|"):
		return false
	case strings.HasPrefix(s, "<"):
		return false
	case strings.HasPrefix(s, "!["):
		return false
	case bareURLRe.MatchString(s):
		return false
	case strings.Contains(line, "page-break"):
		return false
	case ruleRe.MatchString(s):
		return false
	}
	return cjkRe.MatchString(s) || latinLetterRe.MatchString(s)
}
