package document

import "strings"

// FenceMarker opens and closes a fenced code block.
const FenceMarker = "```"

// FenceState is the scanner state carried from one line to the next.
type FenceState int

const (
	Normal FenceState = iota
	InFence
)

// Next returns the state after consuming line and whether line itself is a
// fence marker. Marker lines belong to neither state: callers treat them as
// opaque.
func (s FenceState) Next(line string) (FenceState, bool) {
	if !IsFence(line) {
		return s, false
	}
	if s == InFence {
		return Normal, true
	}
	return InFence, true
}

// IsFence reports whether line toggles a fenced code block.
func IsFence(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), FenceMarker)
}

// Prose calls fn for every line outside fenced code blocks, in order.
// Returning false from fn stops the walk.
func Prose(lines []string, fn func(i int, line string) bool) {
	state := Normal
	for i, line := range lines {
		var marker bool
		state, marker = state.Next(line)
		if marker || state == InFence {
			continue
		}
		if !fn(i, line) {
			return
		}
	}
}
