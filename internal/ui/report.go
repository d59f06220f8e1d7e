package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gubarz/mdtoc/internal/filter"
	"github.com/gubarz/mdtoc/internal/lint"
	"github.com/gubarz/mdtoc/internal/toc"
)

const (
	dividerWidth = 60
	sampleChars  = 20
)

// Preview is everything --preview shows about a pending TOC update
type Preview struct {
	Path     string
	TOC      []string // rendered TOC lines, empty when there are no headings
	Headings []toc.Heading
	Sample   []string // leading lines of the updated document
	Replaced bool
}

func divider() string {
	return styles.Divider.Render(strings.Repeat("=", dividerWidth))
}

// RenderPreview formats a preview for the terminal.
func RenderPreview(p Preview) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s\n", styles.Title.Render("TOC preview:"), styles.Dim.Render(p.Path))
	if len(p.Headings) == 0 {
		b.WriteString(styles.Warn.Render("no headings found, nothing would change") + "\n")
		return b.String()
	}

	entries := make([]string, len(p.TOC))
	for i, line := range p.TOC {
		entries[i] = renderTOCLine(line)
	}
	b.WriteString(styles.Border.Render(strings.Join(entries, "\n")) + "\n\n")

	fmt.Fprintf(&b, "Found %d headings\n", len(p.Headings))
	b.WriteString(RenderLevelCounts(toc.LevelCounts(p.Headings)))

	action := "insert a new TOC"
	if p.Replaced {
		action = "replace the existing TOC"
	}
	fmt.Fprintf(&b, "\n%s\n", styles.Dim.Render("Would "+action+". Updated document begins:"))
	b.WriteString(divider() + "\n")
	for _, line := range p.Sample {
		b.WriteString(line + "\n")
	}
	b.WriteString(divider() + "\n")
	return b.String()
}

func renderTOCLine(line string) string {
	switch {
	case strings.HasPrefix(line, "## "):
		return styles.Heading.Render(line)
	case strings.TrimSpace(line) == "":
		return line
	}
	if i := strings.LastIndex(line, "](#"); i >= 0 {
		return styles.Entry.Render(line[:i+1]) + styles.Anchor.Render(line[i+1:])
	}
	return styles.Entry.Render(line)
}

// RenderLevelCounts lists how many headings each level has, shallowest first.
func RenderLevelCounts(counts map[int]int) string {
	levels := make([]int, 0, len(counts))
	for level := range counts {
		levels = append(levels, level)
	}
	sort.Ints(levels)

	var b strings.Builder
	for _, level := range levels {
		fmt.Fprintf(&b, "  %s %s\n", styles.Heading.Render(strings.Repeat("#", level)), styles.Dim.Render(fmt.Sprintf("%d", counts[level])))
	}
	return b.String()
}

// RenderCheck formats a lint report.
func RenderCheck(path string, r lint.Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s\n", styles.Title.Render("Checked"), styles.Dim.Render(path))
	fmt.Fprintf(&b, "  %d headings, %d in-document links\n", r.Headings, len(r.Links))

	for _, l := range r.Dangling {
		fmt.Fprintf(&b, "  %s line %d: [%s](#%s) points to no heading\n", styles.Warn.Render("dangling"), l.Line, l.Text, l.Fragment)
	}
	for _, a := range r.Duplicates {
		fmt.Fprintf(&b, "  %s #%s is shared by several headings\n", styles.Dim.Render("duplicate"), a)
	}
	switch {
	case !r.HasTOC:
		fmt.Fprintf(&b, "  %s\n", styles.Dim.Render("no table of contents"))
	case r.StaleTOC:
		fmt.Fprintf(&b, "  %s table of contents is out of date\n", styles.Warn.Render("stale"))
	}

	if r.Clean() {
		b.WriteString(styles.OK.Render("ok") + "\n")
	}
	return b.String()
}

// RenderSimplify formats a t2s preview: the start of the converted text and
// the characters that changed.
func RenderSimplify(path, sample string, stats filter.SimplifyStats) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s\n", styles.Title.Render("t2s preview:"), styles.Dim.Render(path))
	if stats.Changed == 0 {
		b.WriteString(styles.OK.Render("no traditional characters found") + "\n")
		return b.String()
	}

	b.WriteString(divider() + "\n")
	b.WriteString(sample + "\n")
	b.WriteString(divider() + "\n")

	fmt.Fprintf(&b, "Converted %d characters\n", stats.Changed)
	chars := stats.Chars
	if len(chars) > sampleChars {
		chars = chars[:sampleChars]
	}
	b.WriteString("  " + styles.Entry.Render(strings.Join(chars, " ")))
	if more := len(stats.Chars) - len(chars); more > 0 {
		b.WriteString(styles.Dim.Render(fmt.Sprintf(" ... and %d more", more)))
	}
	b.WriteString("\n")
	return b.String()
}
