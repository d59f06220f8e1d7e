package filter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndent(t *testing.T) {
	doc := strings.Join([]string{
		"# 标题",
		"这是第一段。",
		"   Leading spaces paragraph.",
		"",
		"- 列表项",
		"1. ordered",
		"> 引用",
		"| a | b |",
		"<div>html</div>",
		"![img](a.png)",
		"https://example.com",
		"---",
		"```",
		"代码里的文字",
		"```",
		"12345",
	}, "\n")

	got, stats := Indent(doc, IndentFullWidth)
	lines := strings.Split(got, "\n")

	assert.Equal(t, "　　这是第一段。", lines[1])
	assert.Equal(t, "　　Leading spaces paragraph.", lines[2])
	assert.Equal(t, "代码里的文字", lines[13])
	assert.Equal(t, "12345", lines[15])
	assert.Equal(t, 2, stats.Processed)
	assert.Equal(t, 13, stats.Skipped)
}

func TestIndentIdempotent(t *testing.T) {
	for _, style := range []IndentStyle{IndentFullWidth, IndentHTML} {
		t.Run(string(style), func(t *testing.T) {
			doc := "段落一\n\n\t段落二\n"
			once, _ := Indent(doc, style)
			twice, _ := Indent(once, style)
			assert.Equal(t, once, twice)
			assert.True(t, strings.HasPrefix(once, style.Indent()+"段落一"))
		})
	}
}

func TestParseIndentStyle(t *testing.T) {
	style, err := ParseIndentStyle("HTML")
	require.NoError(t, err)
	assert.Equal(t, IndentHTML, style)

	style, err = ParseIndentStyle("")
	require.NoError(t, err)
	assert.Equal(t, IndentFullWidth, style)

	_, err = ParseIndentStyle("tabs")
	assert.Error(t, err)
}
