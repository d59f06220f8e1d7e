package filter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageBreaks(t *testing.T) {
	doc := strings.Join([]string{
		"# Book",
		"intro",
		"## One",
		"text",
		"### Sub",
		"",
		"## Two",
	}, "\n")

	got, added := PageBreaks(doc)

	expected := strings.Join([]string{
		"# Book",
		"intro",
		"",
		PageBreak,
		"",
		"## One",
		"text",
		"### Sub",
		"",
		PageBreak,
		"",
		"## Two",
	}, "\n")
	assert.Equal(t, expected, got)
	assert.Equal(t, 2, added)
}

func TestPageBreaksIdempotent(t *testing.T) {
	doc := "# A\n\n## B\n```\n# not a heading\n```\n# C\n"

	once, added := PageBreaks(doc)
	assert.Equal(t, 2, added)

	twice, added := PageBreaks(once)
	assert.Equal(t, once, twice)
	assert.Zero(t, added)
}

func TestPageBreaksKeepsExistingMarker(t *testing.T) {
	doc := "# A\n<div style=\"page-break-before: always\"></div>\n\n# B"

	got, added := PageBreaks(doc)
	assert.Equal(t, doc, got)
	assert.Zero(t, added)
}
