package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLatexToMarkdown(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "sectioning",
			input:    "\\section{Intro}\n\\subsection*{Goal}\n\\subsubsection{Detail}",
			expected: "## Intro\n### Goal\n#### Detail",
		},
		{
			name:     "inline formatting",
			input:    "Use \\textbf{bold}, \\textit{it}, \\emph{em} and \\texttt{code}.",
			expected: "Use **bold**, *it*, *em* and `code`.",
		},
		{
			name:     "citations and references",
			input:    "See~\\cite{knuth} and Table~\\ref{tab:a}.\\label{sec:x}",
			expected: "See [knuth] and Table [ref:tab:a].",
		},
		{
			name:     "itemize",
			input:    "\\begin{itemize}\n  \\item One\n  \\item Two\n\\end{itemize}",
			expected: "- One\n- Two",
		},
		{
			name:     "tabular with booktabs rules",
			input:    "\\begin{tabular}{ll}\n\\toprule\nName & Value \\\\\n\\midrule\na & 1 \\\\\n\\bottomrule\n\\end{tabular}",
			expected: "| Name | Value |\n|---|---|\n| a | 1 |",
		},
		{
			name:     "figure",
			input:    "\\begin{figure}[h]\n\\centering\n\\includegraphics[width=0.5\\textwidth]{fig.png}\n\\end{figure}",
			expected: "![](fig.png)",
		},
		{
			name:     "listing kept verbatim",
			input:    "\\begin{lstlisting}[language=Go]\nx := a -- b  // ``raw''\n\\end{lstlisting}",
			expected: "```go\nx := a -- b  // ``raw''\n```",
		},
		{
			name:     "display math",
			input:    "\\[ a + b \\]",
			expected: "$$ a + b $$",
		},
		{
			name:     "equation environment",
			input:    "\\begin{equation}\nE = mc^2\n\\end{equation}",
			expected: "$$\nE = mc^2\n$$",
		},
		{
			name:     "dashes and quotes",
			input:    "pages 1--2 --- done ``quoted''",
			expected: "pages 1–2 — done \"quoted\"",
		},
		{
			name:     "comments and escapes",
			input:    "% note\nA \\& B costs 5\\% \\ldots",
			expected: "A & B costs 5% ...",
		},
		{
			name:     "blank runs collapse",
			input:    "first\n\n\n\nsecond",
			expected: "first\n\nsecond",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := LatexToMarkdown(tt.input)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestLatexToMarkdownStats(t *testing.T) {
	src := "\\section{A}\n% \\section{commented}\n\\subsection{B}\n" +
		"\\begin{tabular}{l}\nx & y \\\\\n\\end{tabular}\n" +
		"\\begin{lstlisting}\nls\n\\end{lstlisting}\n" +
		"\\begin{lstlisting}[language=Python]\nprint()\n\\end{lstlisting}"

	got, stats := LatexToMarkdown(src)

	assert.Equal(t, LatexStats{Sections: 2, Tables: 1, Listings: 2}, stats)
	assert.Contains(t, got, "```\nls\n```")
	assert.Contains(t, got, "```python\nprint()\n```")
	assert.NotContains(t, got, "commented")
}
