package filter

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/gubarz/mdtoc/internal/document"
)

// LatexStats counts the structures LatexToMarkdown converted
type LatexStats struct {
	Sections int
	Tables   int
	Listings int
}

type latexRule struct {
	re   *regexp.Regexp
	repl string
}

func rule(pattern, repl string) latexRule {
	return latexRule{re: regexp.MustCompile(pattern), repl: repl}
}

var (
	latexComment  = regexp.MustCompile(`(?m)^%.*$`)
	latexSection  = regexp.MustCompile(`\\(?:sub){0,2}section\*?\{[^}]+\}`)
	latexListing  = regexp.MustCompile(`(?s)\\begin\{lstlisting\}(?:\[([^\]]*)\])?(.*?)\\end\{lstlisting\}`)
	latexLanguage = regexp.MustCompile(`language=(\w+)`)
	latexTabular  = regexp.MustCompile(`(?s)\\begin\{tabular\}\{[^}]*\}(.*?)\\end\{tabular\}`)
	listingToken  = regexp.MustCompile("\x00LST(\\d+)\x00")
	tabularRule   = regexp.MustCompile(`\\(?:(?:top|mid|bottom)rule|hline)`)

	// Applied in order after listings are set aside and tables converted.
	latexRules = []latexRule{
		rule(`\\section\*?\{([^}]+)\}`, "## ${1}"),
		rule(`\\subsection\*?\{([^}]+)\}`, "### ${1}"),
		rule(`\\subsubsection\*?\{([^}]+)\}`, "#### ${1}"),
		rule(`\\paragraph\*?\{([^}]+)\}`, "**${1}**"),
		rule(`\\textbf\{([^}]+)\}`, "**${1}**"),
		rule(`\\textit\{([^}]+)\}`, "*${1}*"),
		rule(`\\emph\{([^}]+)\}`, "*${1}*"),
		rule(`\\texttt\{([^}]+)\}`, "`${1}`"),
		rule(`\\underline\{([^}]+)\}`, "<u>${1}</u>"),
		rule(`~?\\cite\{([^}]+)\}`, " [${1}]"),
		rule(`~?\\ref\{([^}]+)\}`, " [ref:${1}]"),
		rule(`\\label\{[^}]+\}`, ""),
		rule(`\\(?:begin|end)\{(?:itemize|enumerate)\}`, ""),
		rule(`\\item\b\s*`, "- "),
		rule(`\\begin\{table\*?\}(?:\[[^\]]*\])?`, ""),
		rule(`\\end\{table\*?\}`, ""),
		rule(`\\centering`, ""),
		rule(`\\caption\{([^}]+)\}`, "*Table: ${1}*"),
		rule(`\\(?:top|mid|bottom)rule`, ""),
		rule(`\\begin\{figure\*?\}(?:\[[^\]]*\])?`, ""),
		rule(`\\end\{figure\*?\}`, ""),
		rule(`\\includegraphics(?:\[[^\]]*\])?\{([^}]+)\}`, "![](${1})"),
		rule(`(?s)\\\[(.*?)\\\]`, "$$$$${1}$$$$"),
		rule(`(?s)\\begin\{equation\*?\}(.*?)\\end\{equation\*?\}`, "$$$$${1}$$$$"),
		rule(`\\noindent\s*`, ""),
		rule(`\\[vh]space\*?\{[^}]*\}`, ""),
		rule(`\\newline`, "\n"),
		rule(`\\\\\s*`, "\n"),
	}

	latexSymbols = strings.NewReplacer(
		`\&`, "&",
		`\%`, "%",
		`\$`, "$",
		`\#`, "#",
		`\textbackslash`, `\`,
		`\cmark`, "✓",
		`\xmark`, "✗",
		`\checkmark`, "✓",
		`\times`, "×",
		`\ldots`, "...",
		`\dots`, "...",
	)

	// Typography only touches prose, never code or table rules.
	latexTypography = strings.NewReplacer(
		"~", " ",
		"``", `"`,
		"''", `"`,
		"---", "—",
		"--", "–",
	)

	blankRun   = regexp.MustCompile(`\n[ \t]*\n\s*\n`)
	spaceRun   = regexp.MustCompile(`[ \t]+`)
	newlineRun = regexp.MustCompile(`\n{3,}`)
)

// LatexToMarkdown converts the common subset of a LaTeX article to Markdown:
// sectioning, inline formatting, citations, lists, tabular, figures,
// lstlisting and display math. Listing bodies are copied verbatim into
// fenced code blocks.
func LatexToMarkdown(src string) (string, LatexStats) {
	var stats LatexStats

	var listings []string
	content := latexListing.ReplaceAllStringFunc(src, func(m string) string {
		sub := latexListing.FindStringSubmatch(m)
		lang := ""
		if lm := latexLanguage.FindStringSubmatch(sub[1]); lm != nil {
			lang = strings.ToLower(lm[1])
		}
		listings = append(listings, document.FenceMarker+lang+"\n"+strings.TrimSpace(sub[2])+"\n"+document.FenceMarker)
		return fmt.Sprintf("\x00LST%d\x00", len(listings)-1)
	})
	stats.Listings = len(listings)

	content = latexComment.ReplaceAllString(content, "")
	stats.Sections = len(latexSection.FindAllString(content, -1))

	content = latexTabular.ReplaceAllStringFunc(content, func(m string) string {
		stats.Tables++
		return convertTabular(latexTabular.FindStringSubmatch(m)[1])
	})

	for _, r := range latexRules {
		content = r.re.ReplaceAllString(content, r.repl)
	}
	content = latexSymbols.Replace(content)
	content = blankRun.ReplaceAllString(content, "\n\n")

	lines := document.Split(content)
	state := document.Normal
	for i, line := range lines {
		var marker bool
		state, marker = state.Next(line)
		if marker || state == document.InFence || strings.HasPrefix(strings.TrimSpace(line), "|") {
			continue
		}
		lines[i] = spaceRun.ReplaceAllString(strings.TrimLeft(latexTypography.Replace(line), " \t"), " ")
	}
	content = newlineRun.ReplaceAllString(document.Join(lines), "\n\n")

	content = listingToken.ReplaceAllStringFunc(content, func(m string) string {
		n, _ := strconv.Atoi(listingToken.FindStringSubmatch(m)[1])
		return listings[n]
	})
	return strings.TrimSpace(content), stats
}

// convertTabular turns the rows of a tabular body into a Markdown table.
// The first row becomes the header.
func convertTabular(body string) string {
	var rows []string
	body = tabularRule.ReplaceAllString(body, "")
	for _, line := range strings.Split(body, `\\`) {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, `\`) || !strings.Contains(line, "&") {
			continue
		}
		cells := strings.Split(line, "&")
		for i := range cells {
			cells[i] = strings.TrimSpace(cells[i])
		}
		rows = append(rows, "| "+strings.Join(cells, " | ")+" |")
	}
	if len(rows) == 0 {
		return ""
	}

	cols := strings.Count(rows[0], "|") - 1
	separator := "|" + strings.Repeat("---|", cols)
	rows = append(rows[:1], append([]string{separator}, rows[1:]...)...)
	return strings.Join(rows, "\n")
}
