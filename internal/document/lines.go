package document

import "strings"

// Split breaks text into lines on "\n". A trailing newline yields a final
// empty line so that Join(Split(s)) == s.
func Split(text string) []string {
	return strings.Split(text, "\n")
}

// Join is the inverse of Split.
func Join(lines []string) string {
	return strings.Join(lines, "\n")
}

// Splice returns a new line sequence with lines[start:end] replaced by insert.
// The input slice is never modified.
func Splice(lines []string, start, end int, insert []string) []string {
	start = clamp(start, 0, len(lines))
	end = clamp(end, start, len(lines))

	out := make([]string, 0, len(lines)-(end-start)+len(insert))
	out = append(out, lines[:start]...)
	out = append(out, insert...)
	out = append(out, lines[end:]...)
	return out
}

// Insert is Splice with an empty range.
func Insert(lines []string, at int, insert []string) []string {
	return Splice(lines, at, at, insert)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
