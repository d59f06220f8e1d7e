package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gubarz/mdtoc/internal/config"
	"github.com/gubarz/mdtoc/internal/filter"
	"github.com/gubarz/mdtoc/internal/lint"
	"github.com/gubarz/mdtoc/internal/toc"
	"github.com/gubarz/mdtoc/internal/ui"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// transform rewrites a document and reports what changed
type transform func(text string) (string, log.Fields, error)

// runTransform reads the input, applies fn and writes the result.
func runTransform(cmd *cobra.Command, args []string, fn transform) error {
	input, output := resolvePaths(args)

	text, err := store.Read(input)
	if err != nil {
		return err
	}

	result, fields, err := fn(text)
	if err != nil {
		return fmt.Errorf("%s: %w", input, err)
	}
	if err := writeDocument(cmd, output, result); err != nil {
		return err
	}

	log.WithFields(fields).WithField("file", output).Info(cmd.Name() + " done")
	return nil
}

func newDivideCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "divide [input] [output]",
		Short: "Insert page breaks before # and ## headings",
		Long: `Inserts an HTML page-break marker before every level 1 and level 2
heading except the first one, for Markdown-to-PDF exporters. Headings
already preceded by a page break are skipped.`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTransform(cmd, args, func(text string) (string, log.Fields, error) {
				result, added := filter.PageBreaks(text)
				return result, log.Fields{"breaks": added}, nil
			})
		},
	}
}

func newIndentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "indent [input] [output]",
		Short: "Indent plain paragraphs with full-width spaces",
		Long: `Re-indents every plain paragraph line with two full-width spaces (or
&emsp;&emsp; with --html). Headings, lists, quotes, tables, HTML, images,
rules and fenced code are left alone.`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			styleName := config.GetIndentStyle()
			if html, _ := cmd.Flags().GetBool("html"); html {
				styleName = string(filter.IndentHTML)
			}
			style, err := filter.ParseIndentStyle(styleName)
			if err != nil {
				return err
			}

			return runTransform(cmd, args, func(text string) (string, log.Fields, error) {
				result, stats := filter.Indent(text, style)
				return result, log.Fields{"style": style, "processed": stats.Processed, "skipped": stats.Skipped}, nil
			})
		},
	}
	cmd.Flags().Bool("html", false, "Indent with &emsp;&emsp; instead of full-width spaces")
	return cmd
}

func newPunctCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "punct [input] [output]",
		Short: "Use full-width commas and full stops in Chinese prose",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTransform(cmd, args, func(text string) (string, log.Fields, error) {
				result, stats := filter.FixPunctuation(text)
				return result, log.Fields{
					"commas":      fmt.Sprintf("%d -> %d", stats.CommasBefore, stats.CommasAfter),
					"cjk_commas":  stats.CJKCommas,
					"periods":     fmt.Sprintf("%d -> %d", stats.PeriodsBefore, stats.PeriodsAfter),
					"cjk_periods": stats.CJKPeriods,
				}, nil
			})
		},
	}
}

func newLatexCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "latex <input> [output]",
		Short: "Convert a LaTeX article to Markdown",
		Long: `Converts sections, inline formatting, citations, lists, tabular,
figures, lstlisting and display math to Markdown. The output defaults to
the input path with a .md extension.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				args = append(args, strings.TrimSuffix(args[0], filepath.Ext(args[0]))+".md")
			}
			return runTransform(cmd, args, func(text string) (string, log.Fields, error) {
				result, stats := filter.LatexToMarkdown(text)
				return result, log.Fields{"sections": stats.Sections, "tables": stats.Tables, "listings": stats.Listings}, nil
			})
		},
	}
}

func newT2SCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "t2s [input] [output]",
		Short: "Convert traditional Chinese characters to simplified",
		Long: `Converts traditional characters to simplified with the OpenCC t2s
dictionary. Fenced and inline code, links, images and HTML tags are
copied through unchanged.`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			conv, err := newConverter()
			if err != nil {
				return err
			}

			preview, _ := cmd.Flags().GetBool("preview")
			if !preview {
				return runTransform(cmd, args, func(text string) (string, log.Fields, error) {
					result, stats, err := filter.Simplify(text, conv)
					return result, log.Fields{"changed": stats.Changed}, err
				})
			}

			input, _ := resolvePaths(args)
			text, err := store.Read(input)
			if err != nil {
				return err
			}
			result, stats, err := filter.Simplify(text, conv)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), ui.RenderSimplify(input, headRunes(result, config.GetPreviewChars()), stats))
			return nil
		},
	}
	cmd.Flags().BoolP("preview", "p", false, "Print the start of the converted document without writing")
	return cmd
}

// headRunes cuts s to n runes, marking the cut with "...".
func headRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [input]",
		Short: "Report anchor links that point nowhere and stale TOCs",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, _ := resolvePaths(args)

			text, err := store.Read(input)
			if err != nil {
				return err
			}

			opts := toc.Options{StartLevel: config.GetStartLevel(), MaxLevel: config.GetMaxLevel()}
			report, err := lint.NewChecker(opts).Check(text)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), ui.RenderCheck(input, report))
			if !report.Clean() {
				return lint.ErrProblems
			}
			return nil
		},
	}
}
