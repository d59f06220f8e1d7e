package main

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/gubarz/mdtoc/internal/config"
	"github.com/gubarz/mdtoc/internal/document"
	"github.com/gubarz/mdtoc/internal/executor"
	"github.com/gubarz/mdtoc/internal/toc"
	"github.com/gubarz/mdtoc/internal/ui"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func runTOC(cmd *cobra.Command, args []string) error {
	input, output := resolvePaths(args)

	interactive, _ := cmd.Flags().GetBool("interactive")
	preview, _ := cmd.Flags().GetBool("preview")
	preview = preview || interactive
	mode := outputMode(cmd)

	text, err := store.Read(input)
	if err != nil {
		return err
	}

	opts := toc.Options{
		StartLevel: config.GetStartLevel(),
		MaxLevel:   config.GetMaxLevel(),
	}
	res, err := toc.Update(text, opts)
	noHeadings := errors.Is(err, toc.ErrNoHeadings)
	if err != nil && !(noHeadings && preview) {
		if noHeadings {
			log.WithField("file", input).Warn("no headings found")
			return fmt.Errorf("%s: %w", input, err)
		}
		return err
	}

	if mode != "" && !noHeadings {
		rendered := toc.RenderString(res.Headings, opts)
		if err := newExecutor(cmd.OutOrStdout()).OutputWithMode(rendered, mode); err != nil {
			return fmt.Errorf("%s: %w", mode, err)
		}
		if mode == executor.OutputCopy {
			log.WithField("headings", len(res.Headings)).Info("TOC copied to clipboard")
		}
	}

	if preview {
		p := ui.Preview{Path: input, Replaced: res.Replaced}
		if !noHeadings {
			p.TOC = toc.Render(res.Headings, opts)
			p.Headings = res.Headings
			p.Sample = head(document.Split(res.Text), config.GetPreviewLines())
		}
		content := ui.RenderPreview(p)
		if interactive {
			return ui.RunPager(input, content)
		}
		fmt.Fprint(cmd.OutOrStdout(), content)
		return nil
	}

	if mode != "" {
		return nil
	}

	if err := writeDocument(cmd, output, res.Text); err != nil {
		return err
	}

	action := "inserted new TOC"
	if res.Replaced {
		action = "updated existing TOC"
	}
	log.WithFields(log.Fields{
		"file":     output,
		"line":     res.Line + 1,
		"headings": len(res.Headings),
	}).Info(action)
	counts := toc.LevelCounts(res.Headings)
	levels := make([]int, 0, len(counts))
	for level := range counts {
		levels = append(levels, level)
	}
	sort.Ints(levels)
	for _, level := range levels {
		log.WithFields(log.Fields{"heading": strings.Repeat("#", level), "count": counts[level]}).Debug("heading statistics")
	}
	return nil
}

// outputMode reports where --copy or --print send the TOC, or "" when the
// document is written instead.
func outputMode(cmd *cobra.Command) executor.OutputMode {
	if copyTOC, _ := cmd.Flags().GetBool("copy"); copyTOC {
		return executor.OutputCopy
	}
	if printTOC, _ := cmd.Flags().GetBool("print"); printTOC {
		return executor.OutputPrint
	}
	return ""
}

func head(lines []string, n int) []string {
	if n < 0 || n >= len(lines) {
		return lines
	}
	return lines[:n]
}
