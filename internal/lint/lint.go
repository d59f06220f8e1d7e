// Package lint checks in-document anchor links against the headings they
// point to.
package lint

import (
	"bytes"
	"errors"
	"net/url"
	"strings"

	"github.com/gubarz/mdtoc/internal/document"
	"github.com/gubarz/mdtoc/internal/toc"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// ErrProblems is returned by callers when a Report is not clean.
var ErrProblems = errors.New("document has unresolved anchors or a stale table of contents")

// Link is an in-document link, i.e. one whose destination starts with '#'
type Link struct {
	Text     string
	Fragment string
	Line     int // 1-based, 0 if unknown
}

// Report is the outcome of Check
type Report struct {
	Headings   int
	Links      []Link
	Dangling   []Link
	Duplicates []string
	HasTOC     bool
	StaleTOC   bool
}

// Clean reports whether nothing needs fixing. Duplicate anchors are
// informational only.
func (r Report) Clean() bool {
	return len(r.Dangling) == 0 && !r.StaleTOC
}

// Checker parses documents with goldmark
type Checker struct {
	md   goldmark.Markdown
	opts toc.Options
}

// NewChecker creates a checker that judges TOC staleness with opts
func NewChecker(opts toc.Options) *Checker {
	return &Checker{md: goldmark.New(), opts: opts}
}

// Check walks the document and cross-references links with headings.
func (c *Checker) Check(src string) (Report, error) {
	source := []byte(src)
	doc := c.md.Parser().Parse(text.NewReader(source))

	var report Report
	anchors := make(map[string]int)
	var order []string

	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Heading:
			anchor := toc.Anchor(plainText(node, source))
			if anchors[anchor] == 0 {
				order = append(order, anchor)
			}
			anchors[anchor]++
			report.Headings++
		case *ast.Link:
			dest := string(node.Destination)
			if !strings.HasPrefix(dest, "#") {
				return ast.WalkContinue, nil
			}
			fragment := dest[1:]
			if decoded, err := url.PathUnescape(fragment); err == nil {
				fragment = decoded
			}
			report.Links = append(report.Links, Link{
				Text:     plainText(node, source),
				Fragment: fragment,
				Line:     lineOf(node, source),
			})
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return Report{}, err
	}

	// Headings as toc.Extract titles them are link targets too.
	known := make(map[string]bool, len(anchors))
	for a := range anchors {
		known[a] = true
	}
	for _, h := range toc.Extract(src) {
		known[h.Anchor] = true
	}

	for _, l := range report.Links {
		if !known[l.Fragment] {
			report.Dangling = append(report.Dangling, l)
		}
	}
	for _, a := range order {
		if anchors[a] > 1 {
			report.Duplicates = append(report.Duplicates, a)
		}
	}

	if _, found := toc.Locate(document.Split(src)); found {
		report.HasTOC = true
		res, err := toc.Update(src, c.opts)
		switch {
		case errors.Is(err, toc.ErrNoHeadings):
		case err != nil:
			return Report{}, err
		default:
			report.StaleTOC = res.Text != src
		}
	}
	return report, nil
}

// plainText concatenates the literal text below n.
func plainText(n ast.Node, source []byte) string {
	var buf bytes.Buffer
	ast.Walk(n, func(child ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := child.(type) {
		case *ast.Text:
			buf.Write(t.Segment.Value(source))
			if t.SoftLineBreak() {
				buf.WriteByte(' ')
			}
		case *ast.String:
			buf.Write(t.Value)
		case *ast.RawHTML:
			for i := 0; i < t.Segments.Len(); i++ {
				seg := t.Segments.At(i)
				buf.Write(seg.Value(source))
			}
		case *ast.AutoLink:
			buf.Write(t.URL(source))
		}
		return ast.WalkContinue, nil
	})
	return buf.String()
}

// lineOf finds the source line of the first text segment below n.
func lineOf(n ast.Node, source []byte) int {
	line := 0
	ast.Walk(n, func(child ast.Node, entering bool) (ast.WalkStatus, error) {
		if t, ok := child.(*ast.Text); ok && entering {
			line = bytes.Count(source[:t.Segment.Start], []byte("\n")) + 1
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})
	return line
}
