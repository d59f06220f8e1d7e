package toc

import (
	"regexp"
	"strings"

	"github.com/gubarz/mdtoc/internal/document"
)

// Heading is a TOC-eligible heading found in a document
type Heading struct {
	Level  int    // 2..5
	Title  string // Title with links and bold markers collapsed
	Anchor string // Slug derived from Title
	Line   int    // 0-based line index in the source document
}

var (
	headingRegex = regexp.MustCompile(`^(#{2,5})\s+(.+)$`)
	linkRegex    = regexp.MustCompile(`\[([^\]]+)\]\([^\)]+\)`)
	boldRegex    = regexp.MustCompile(`\*\*(.+?)\*\*`)
)

// Extract returns every level 2-5 heading outside fenced code blocks, in
// document order. Duplicate titles are kept.
func Extract(text string) []Heading {
	var headings []Heading
	document.Prose(document.Split(text), func(i int, line string) bool {
		if h, ok := parseHeading(line); ok {
			h.Line = i
			headings = append(headings, h)
		}
		return true
	})
	return headings
}

func parseHeading(line string) (Heading, bool) {
	m := headingRegex.FindStringSubmatch(line)
	if m == nil {
		return Heading{}, false
	}
	title := CleanTitle(m[2])
	return Heading{
		Level:  len(m[1]),
		Title:  title,
		Anchor: Anchor(title),
	}, true
}

// CleanTitle trims a raw heading title and collapses [text](url) and
// **text** to text.
func CleanTitle(raw string) string {
	title := strings.TrimSpace(raw)
	title = linkRegex.ReplaceAllString(title, "$1")
	title = boldRegex.ReplaceAllString(title, "$1")
	return title
}

// LevelCounts tallies headings per level.
func LevelCounts(headings []Heading) map[int]int {
	counts := make(map[int]int)
	for _, h := range headings {
		counts[h.Level]++
	}
	return counts
}
