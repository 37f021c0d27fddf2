package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var highlightStyle = lipgloss.NewStyle().Background(lipgloss.AdaptiveColor{Light: "228", Dark: "94"}).Foreground(lipgloss.AdaptiveColor{Light: "0", Dark: "0"})

// findMatches returns the indexes of lines containing query (case-insensitive).
func findMatches(lines []string, query string) []int {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	var idxs []int
	for i, ln := range lines {
		if strings.Contains(strings.ToLower(ln), q) {
			idxs = append(idxs, i)
		}
	}
	return idxs
}

// highlight wraps every case-insensitive occurrence of query in s.
// Matching is done on the lowered string, so it assumes lowering does not
// change byte lengths; lines where it does are returned unchanged.
func highlight(s, query string, style lipgloss.Style) string {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return s
	}
	lower := strings.ToLower(s)
	if len(lower) != len(s) {
		return s
	}
	var b strings.Builder
	off := 0
	for {
		p := strings.Index(lower[off:], q)
		if p < 0 {
			break
		}
		p += off
		b.WriteString(s[off:p])
		b.WriteString(style.Render(s[p : p+len(q)]))
		off = p + len(q)
	}
	b.WriteString(s[off:])
	return b.String()
}

func containsIndex(a []int, x int) bool {
	for _, v := range a {
		if v == x {
			return true
		}
	}
	return false
}
