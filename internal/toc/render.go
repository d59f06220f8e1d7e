package toc

import (
	"errors"
	"fmt"
	"strings"
)

// Title is the heading text of a generated table of contents.
const Title = "目录"

const indentUnit = "  "

// ErrInvalidLevels is returned when a level range cannot be rendered.
var ErrInvalidLevels = errors.New("invalid heading level range")

// Options selects which heading levels appear in the TOC
type Options struct {
	StartLevel int
	MaxLevel   int
}

// DefaultOptions returns the ## through ##### range.
func DefaultOptions() Options {
	return Options{StartLevel: 2, MaxLevel: 5}
}

// Validate checks that 1 <= StartLevel <= MaxLevel <= 6.
func (o Options) Validate() error {
	if o.StartLevel < 1 || o.MaxLevel > 6 || o.StartLevel > o.MaxLevel {
		return fmt.Errorf("%w: start=%d max=%d", ErrInvalidLevels, o.StartLevel, o.MaxLevel)
	}
	return nil
}

// Render produces the TOC lines: the header, a blank line, then one list
// entry per heading within the level range. Indentation is relative to
// StartLevel and ignores how the headings actually nest.
func Render(headings []Heading, opts Options) []string {
	lines := []string{"## " + Title, ""}
	for _, h := range headings {
		if h.Level < opts.StartLevel || h.Level > opts.MaxLevel {
			continue
		}
		indent := strings.Repeat(indentUnit, h.Level-opts.StartLevel)
		lines = append(lines, fmt.Sprintf("%s- [%s](#%s)", indent, h.Title, h.Anchor))
	}
	return lines
}

// RenderString is Render joined with newlines.
func RenderString(headings []Heading, opts Options) string {
	return strings.Join(Render(headings, opts), "\n")
}
