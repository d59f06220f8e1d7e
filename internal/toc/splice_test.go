package toc

import (
	"strings"
	"testing"

	"github.com/gubarz/mdtoc/internal/document"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateInsertsBeforeFirstH2(t *testing.T) {
	res, err := Update(scenarioA, DefaultOptions())
	require.NoError(t, err)

	expected := strings.Join([]string{
		"# Title",
		"## 目录",
		"",
		"- [Intro](#intro)",
		"  - [Sub Intro](#sub-intro)",
		"- [任务 - 分配](#任务---分配)",
		"",
		"***",
		"",
		"## Intro",
		"Some text.",
		"### Sub Intro",
		"## 任务 - 分配",
	}, "\n")
	assert.Equal(t, expected, res.Text)
	assert.False(t, res.Replaced)
	assert.Equal(t, 1, res.Line)
	assert.Len(t, res.Headings, 3)
}

func TestUpdateIdempotentScenarioB(t *testing.T) {
	first, err := Update(scenarioA, DefaultOptions())
	require.NoError(t, err)

	second, err := Update(first.Text, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, first.Text, second.Text)
	assert.True(t, second.Replaced)

	third, err := Update(second.Text, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, second.Text, third.Text)
}

func TestUpdateIdempotent(t *testing.T) {
	docs := []string{
		"## Only",
		"intro\n\n## A\n### B\n#### C\n##### D\n###### E\n",
		"no h2 here\n### Three\n",
		"## 目录\n\n- stale\n",
		"```\n## 目录\n```\n## Real\ntext\n",
		"## A\r\n## B\r\n",
	}

	for _, doc := range docs {
		once, err := Update(doc, DefaultOptions())
		require.NoError(t, err)
		twice, err := Update(once.Text, DefaultOptions())
		require.NoError(t, err)
		assert.Equal(t, once.Text, twice.Text, "doc %q", doc)
	}
}

func TestUpdateReplacesStaleTOCScenarioE(t *testing.T) {
	doc := strings.Join([]string{
		"# Book",
		"## 目录",
		"- [Old](#old)",
		"- [Gone](#gone)",
		"## Intro",
		"body",
		"### Detail",
	}, "\n")

	res, err := Update(doc, DefaultOptions())
	require.NoError(t, err)
	assert.True(t, res.Replaced)
	assert.Equal(t, 1, res.Line)

	expected := strings.Join([]string{
		"# Book",
		"## 目录",
		"",
		"- [Intro](#intro)",
		"  - [Detail](#detail)",
		"",
		"## Intro",
		"body",
		"### Detail",
	}, "\n")
	assert.Equal(t, expected, res.Text)
}

func TestUpdateStopsAtSeparator(t *testing.T) {
	doc := "## 目录\n- stale\n***\nkeep me\n## A\n"

	res, err := Update(doc, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, "## 目录\n\n- [A](#a)\n\n***\nkeep me\n## A\n", res.Text)
}

func TestUpdateNoH2InsertsAtTop(t *testing.T) {
	doc := "preface\n### Three\n"

	res, err := Update(doc, DefaultOptions())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(res.Text, "## 目录\n\n  - [Three](#three)\n\n***\n\npreface"))
}

func TestUpdateNoHeadingsScenarioD(t *testing.T) {
	doc := "just text\n# only h1\n```\n## in code\n```\n"

	res, err := Update(doc, DefaultOptions())
	assert.ErrorIs(t, err, ErrNoHeadings)
	assert.Equal(t, doc, res.Text)
}

func TestUpdateInvalidLevels(t *testing.T) {
	_, err := Update(scenarioA, Options{StartLevel: 5, MaxLevel: 2})
	assert.ErrorIs(t, err, ErrInvalidLevels)
}

func TestUpdatePreservesOrder(t *testing.T) {
	doc := "## Z\n#### y\n## A\n### m\n###### skip\n## B\n"
	res, err := Update(doc, Options{StartLevel: 2, MaxLevel: 3})
	require.NoError(t, err)

	span, ok := Locate(document.Split(res.Text))
	require.True(t, ok)

	var anchors []string
	for _, line := range document.Split(res.Text)[span.Start:span.End] {
		if i := strings.Index(line, "](#"); i >= 0 {
			anchors = append(anchors, strings.TrimSuffix(line[i+3:], ")"))
		}
	}
	assert.Equal(t, []string{"z", "a", "m", "b"}, anchors)
}

func TestLocate(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		span  Span
		found bool
	}{
		{
			name:  "ends at next h2",
			lines: []string{"x", "## 目录", "- a", "## Next"},
			span:  Span{Start: 1, End: 3},
			found: true,
		},
		{
			name:  "ends at rule",
			lines: []string{"## 目录", "", "- a", "  ***  ", "## Next"},
			span:  Span{Start: 0, End: 3},
			found: true,
		},
		{
			name:  "runs to end",
			lines: []string{"## 目录", "- a"},
			span:  Span{Start: 0, End: 2},
			found: true,
		},
		{
			name:  "extra title text is not a toc",
			lines: []string{"## 目录 v2", "- a"},
		},
		{
			name:  "level three is not a toc",
			lines: []string{"### 目录"},
		},
		{
			name:  "fenced header ignored",
			lines: []string{"```", "## 目录", "```"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			span, found := Locate(tt.lines)
			assert.Equal(t, tt.found, found)
			if tt.found {
				assert.Equal(t, tt.span, span)
			}
		})
	}
}
