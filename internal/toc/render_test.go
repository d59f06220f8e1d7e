package toc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderScenarioA(t *testing.T) {
	got := RenderString(Extract(scenarioA), DefaultOptions())

	expected := "## 目录\n" +
		"\n" +
		"- [Intro](#intro)\n" +
		"  - [Sub Intro](#sub-intro)\n" +
		"- [任务 - 分配](#任务---分配)"
	assert.Equal(t, expected, got)
}

func TestRenderIndentIgnoresNesting(t *testing.T) {
	headings := []Heading{
		{Level: 2, Title: "A", Anchor: "a"},
		{Level: 5, Title: "Deep", Anchor: "deep"},
	}
	lines := Render(headings, DefaultOptions())
	assert.Equal(t, "      - [Deep](#deep)", lines[3])
}

func TestRenderLevelFilter(t *testing.T) {
	headings := []Heading{
		{Level: 1, Title: "Top", Anchor: "top"},
		{Level: 2, Title: "A", Anchor: "a"},
		{Level: 3, Title: "B", Anchor: "b"},
		{Level: 4, Title: "C", Anchor: "c"},
		{Level: 6, Title: "Tiny", Anchor: "tiny"},
	}

	lines := Render(headings, Options{StartLevel: 3, MaxLevel: 4})
	assert.Equal(t, []string{
		"## 目录",
		"",
		"- [B](#b)",
		"  - [C](#c)",
	}, lines)
}

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr bool
	}{
		{name: "default", opts: DefaultOptions()},
		{name: "single level", opts: Options{StartLevel: 3, MaxLevel: 3}},
		{name: "inverted", opts: Options{StartLevel: 4, MaxLevel: 2}, wantErr: true},
		{name: "zero start", opts: Options{StartLevel: 0, MaxLevel: 2}, wantErr: true},
		{name: "max too deep", opts: Options{StartLevel: 2, MaxLevel: 7}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidLevels)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
