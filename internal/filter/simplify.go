package filter

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/longbridgeapp/opencc"
)

// Converter rewrites a run of text, e.g. from traditional to simplified Chinese.
type Converter interface {
	Convert(text string) (string, error)
}

// NewT2S returns the OpenCC traditional to simplified converter.
func NewT2S() (Converter, error) {
	cc, err := opencc.New("t2s")
	if err != nil {
		return nil, fmt.Errorf("loading t2s dictionary: %w", err)
	}
	return cc, nil
}

// SimplifyStats describes what Simplify changed
type SimplifyStats struct {
	Changed int
	Chars   []string
}

// Spans that are copied through untouched. Images come before links so the
// longer image match wins when they overlap.
var protectedPatterns = []*regexp.Regexp{
	regexp.MustCompile("(?s)```[^\n]*\n.*?```"),
	regexp.MustCompile("`[^`\n]+`"),
	regexp.MustCompile(`!\[[^\]]*\]\([^)]+\)`),
	regexp.MustCompile(`\[[^\]]+\]\([^)]+\)`),
	regexp.MustCompile(`<[^>]+>`),
}

type span struct{ start, end int }

// protectedSpans returns the sorted, non-overlapping regions of text that
// must not be converted.
func protectedSpans(text string) []span {
	var spans []span
	for _, re := range protectedPatterns {
		for _, loc := range re.FindAllStringIndex(text, -1) {
			spans = append(spans, span{loc[0], loc[1]})
		}
	}
	sort.Slice(spans, func(i, j int) bool { return spans[i].start < spans[j].start })

	var merged []span
	for _, s := range spans {
		if n := len(merged); n > 0 && s.start < merged[n-1].end {
			merged[n-1].end = max(merged[n-1].end, s.end)
			continue
		}
		merged = append(merged, s)
	}
	return merged
}

// Simplify runs conv over everything outside fenced code, inline code, images,
// links and HTML tags.
func Simplify(text string, conv Converter) (string, SimplifyStats, error) {
	var out []byte
	last := 0
	convert := func(part string) error {
		if part == "" {
			return nil
		}
		converted, err := conv.Convert(part)
		if err != nil {
			return err
		}
		out = append(out, converted...)
		return nil
	}

	for _, s := range protectedSpans(text) {
		if err := convert(text[last:s.start]); err != nil {
			return text, SimplifyStats{}, err
		}
		out = append(out, text[s.start:s.end]...)
		last = s.end
	}
	if err := convert(text[last:]); err != nil {
		return text, SimplifyStats{}, err
	}

	result := string(out)
	return result, diffRunes(text, result), nil
}

// diffRunes counts positions whose rune changed and collects the distinct
// original runes, sorted. Lengths differ only if conv did not map rune for
// rune, in which case the shorter prefix is compared.
func diffRunes(before, after string) SimplifyStats {
	var stats SimplifyStats
	a, b := []rune(before), []rune(after)
	seen := map[rune]bool{}
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] == b[i] {
			continue
		}
		stats.Changed++
		if !seen[a[i]] {
			seen[a[i]] = true
			stats.Chars = append(stats.Chars, string(a[i])+"→"+string(b[i]))
		}
	}
	sort.Strings(stats.Chars)
	return stats
}
