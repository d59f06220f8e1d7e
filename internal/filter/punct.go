package filter

import (
	"regexp"
	"strings"

	"github.com/gubarz/mdtoc/internal/document"
)

// PunctStats compares punctuation counts before and after FixPunctuation
type PunctStats struct {
	CommasBefore  int
	CommasAfter   int
	CJKCommas     int
	PeriodsBefore int
	PeriodsAfter  int
	CJKPeriods    int
}

// Lines where ASCII makes up more than this share are treated as English.
const asciiLineRatio = 0.7

var (
	commaAfterCJK     = regexp.MustCompile(`([\x{4e00}-\x{9fff}])\s*,\s*`)
	commaBeforeCJK    = regexp.MustCompile(`,\s*([\x{4e00}-\x{9fff}])`)
	periodAtEOL       = regexp.MustCompile(`([\x{4e00}-\x{9fff}])\s*\.\s*$`)
	periodBeforeSpace = regexp.MustCompile(`([\x{4e00}-\x{9fff}])\s*\.\s+`)
	periodBetweenCJK  = regexp.MustCompile(`([\x{4e00}-\x{9fff}])\.\s+([\x{4e00}-\x{9fff}])`)
	listLinkRe        = regexp.MustCompile(`^\s*-\s*https?://`)
)

// FixPunctuation replaces ASCII commas and full stops used in Chinese prose
// with their full-width forms. Fenced code, bare link list items, image
// lines and mostly-ASCII lines are left untouched.
func FixPunctuation(text string) (string, PunctStats) {
	lines := document.Split(text)
	out := make([]string, 0, len(lines))

	state := document.Normal
	for _, line := range lines {
		var marker bool
		state, marker = state.Next(line)
		if marker || state == document.InFence || !needsPunctFix(line) {
			out = append(out, line)
			continue
		}
		out = append(out, fixLine(line))
	}

	result := document.Join(out)
	return result, PunctStats{
		CommasBefore:  strings.Count(text, ","),
		CommasAfter:   strings.Count(result, ","),
		CJKCommas:     strings.Count(result, "，"),
		PeriodsBefore: strings.Count(text, "."),
		PeriodsAfter:  strings.Count(result, "."),
		CJKPeriods:    strings.Count(result, "。"),
	}
}

func needsPunctFix(line string) bool {
	if listLinkRe.MatchString(line) {
		return false
	}
	if strings.Contains(line, "![") && strings.Contains(line, "](") {
		return false
	}
	if strings.TrimSpace(line) != "" && asciiShare(line) > asciiLineRatio {
		return false
	}
	return true
}

func asciiShare(line string) float64 {
	var ascii, total int
	for _, r := range line {
		total++
		if r < 128 {
			ascii++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(ascii) / float64(total)
}

func fixLine(line string) string {
	line = commaAfterCJK.ReplaceAllString(line, "${1}，")
	line = commaBeforeCJK.ReplaceAllString(line, "，${1}")
	line = periodAtEOL.ReplaceAllString(line, "${1}。")
	line = periodBeforeSpace.ReplaceAllString(line, "${1}。 ")
	line = periodBetweenCJK.ReplaceAllString(line, "${1}。${2}")
	return line
}
