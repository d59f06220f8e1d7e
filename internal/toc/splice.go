package toc

import (
	"errors"
	"regexp"
	"strings"

	"github.com/gubarz/mdtoc/internal/document"
)

// Separator ends a freshly inserted TOC.
const Separator = "***"

// ErrNoHeadings is returned when a document has nothing to list.
var ErrNoHeadings = errors.New("no headings found")

var (
	tocHeaderRegex = regexp.MustCompile(`^##\s+` + Title + `\s*$`)
	h2Regex        = regexp.MustCompile(`^##\s+`)
)

// Span is a half-open line range [Start, End)
type Span struct {
	Start int
	End   int
}

// Contains reports whether line falls inside the span
func (s Span) Contains(line int) bool {
	return line >= s.Start && line < s.End
}

// Locate finds an existing TOC. It starts at the first "## 目录" line outside
// fenced code and ends before the next "## " heading, a "***" line, or the
// end of the document.
func Locate(lines []string) (Span, bool) {
	start := -1
	document.Prose(lines, func(i int, line string) bool {
		if tocHeaderRegex.MatchString(line) {
			start = i
			return false
		}
		return true
	})
	if start < 0 {
		return Span{}, false
	}

	end := len(lines)
	for j := start + 1; j < len(lines); j++ {
		if h2Regex.MatchString(lines[j]) || strings.TrimSpace(lines[j]) == Separator {
			end = j
			break
		}
	}
	return Span{Start: start, End: end}, true
}

// firstH2 returns the index of the first "## " line outside fenced code, or 0.
func firstH2(lines []string) int {
	pos := 0
	document.Prose(lines, func(i int, line string) bool {
		if h2Regex.MatchString(line) {
			pos = i
			return false
		}
		return true
	})
	return pos
}

// Result describes an Update
type Result struct {
	Text     string
	Headings []Heading // headings listed in the new TOC
	Replaced bool      // an existing TOC was replaced
	Line     int       // 0-based line where the TOC now starts
}

// Update regenerates the document's TOC. An existing TOC is replaced in
// place; otherwise a new one followed by a "***" rule is inserted before
// the first "## " heading. Running Update on its own output is a no-op.
func Update(text string, opts Options) (Result, error) {
	if err := opts.Validate(); err != nil {
		return Result{}, err
	}

	all := Extract(text)
	if len(all) == 0 {
		return Result{Text: text}, ErrNoHeadings
	}

	lines := document.Split(text)
	span, found := Locate(lines)

	headings := all
	if found {
		headings = excludeSpan(all, span)
	}
	block := append(Render(headings, opts), "")

	if found {
		return Result{
			Text:     document.Join(document.Splice(lines, span.Start, span.End, block)),
			Headings: headings,
			Replaced: true,
			Line:     span.Start,
		}, nil
	}

	pos := firstH2(lines)
	insert := append(block, Separator, "")
	return Result{
		Text:     document.Join(document.Insert(lines, pos, insert)),
		Headings: headings,
		Line:     pos,
	}, nil
}

func excludeSpan(headings []Heading, span Span) []Heading {
	out := make([]Heading, 0, len(headings))
	for _, h := range headings {
		if !span.Contains(h.Line) {
			out = append(out, h)
		}
	}
	return out
}
