package toc

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	// Letters, digits, underscore, whitespace, hyphen and CJK ideographs survive.
	nonAnchorRegex = regexp.MustCompile(`[^\p{L}\p{N}_\s\p{Zs}\x{4e00}-\x{9fff}-]`)
	spaceRunRegex  = regexp.MustCompile(`[\s\p{Zs}]+`)
)

// Anchor derives the in-page link fragment for a heading title.
//
// Each whitespace run becomes a single hyphen, but hyphens already in the
// title are kept as-is, so "任务 - 分配" yields "任务---分配". Duplicate
// titles yield duplicate anchors.
func Anchor(title string) string {
	s := strings.TrimSpace(title)
	s = cases.Lower(language.Und).String(s)
	s = nonAnchorRegex.ReplaceAllString(s, "")
	s = spaceRunRegex.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
