package services

import (
	"fmt"
	"strings"
)

// DefaultLine is what the first character says when the script is blank.
const DefaultLine = "Hello from AiVantu"

// SplitScript previews how the backend divides script between n characters.
//
// With speaker markers ("[C1]: ... [C2]: ...") each character gets the text
// after its own marker up to the next marker. Without markers non-empty
// lines are dealt round-robin. A blank script gives DefaultLine to the
// first character. The result always has n entries.
func SplitScript(script string, n int) []string {
	if n <= 0 {
		return nil
	}

	markers := make([]string, n)
	hasMarker := false
	for i := range markers {
		markers[i] = fmt.Sprintf("[C%d]:", i+1)
		if strings.Contains(script, markers[i]) {
			hasMarker = true
		}
	}

	out := make([]string, n)
	switch {
	case hasMarker:
		for i, m := range markers {
			idx := strings.Index(script, m)
			if idx == -1 {
				continue
			}
			end := len(script)
			for _, other := range markers {
				if j := indexFrom(script, other, idx+1); j != -1 && j < end {
					end = j
				}
			}
			out[i] = strings.TrimSpace(script[idx+len(m) : end])
		}
	default:
		var lines []string
		for _, l := range strings.FieldsFunc(script, isLineBreak) {
			if l = strings.TrimSpace(l); l != "" {
				lines = append(lines, l)
			}
		}
		if len(lines) == 0 {
			out[0] = DefaultLine
			break
		}
		parts := make([][]string, n)
		for i, l := range lines {
			parts[i%n] = append(parts[i%n], l)
		}
		for i, p := range parts {
			out[i] = strings.Join(p, " ")
		}
	}
	return out
}

// PadVoices extends voices to n entries by repeating the first one, or
// "Female" when none was chosen.
func PadVoices(voices []string, n int) []string {
	out := append([]string(nil), voices...)
	def := "Female"
	if len(out) > 0 {
		def = out[0]
	}
	for len(out) < n {
		out = append(out, def)
	}
	return out
}

// isLineBreak reports line separators, including lone CR and Unicode ones.
func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}

func indexFrom(s, substr string, from int) int {
	if from > len(s) {
		return -1
	}
	if i := strings.Index(s[from:], substr); i != -1 {
		return from + i
	}
	return -1
}
