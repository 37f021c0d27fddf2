package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"headroom/internal/headroom"
	"headroom/internal/tui/state"
	"headroom/internal/tui/util"
	"headroom/internal/tui/widgets/helpoverlay"
	"headroom/internal/tui/widgets/prompt"
	"headroom/internal/tui/widgets/statusbar"
	"headroom/internal/tui/widgets/tagchips"
)

var currentMatchStyle = lipgloss.NewStyle().Bold(true).Underline(true)

// headerLines renders the header: a title bar and a rule. Its line count is
// the height the controller measures.
func (m *Model) headerLines() []string {
	w := max(m.vp.Width, 4)
	inner := w - 2
	pos := fmt.Sprintf("%d%%", state.Percent(m.ui))
	room := max(inner-runewidth.StringWidth(pos)-1, 1)
	title := runewidth.Truncate(m.title, room, "…")
	gap := max(inner-runewidth.StringWidth(title)-runewidth.StringWidth(pos), 1)
	bar := m.palette.HeaderStyle(m.opts.NoColor).Width(w).Render(title + strings.Repeat(" ", gap) + pos)
	rule := lipgloss.NewStyle().Foreground(m.palette.Muted).Render(strings.Repeat("─", w))
	if m.opts.NoColor {
		rule = strings.Repeat("-", w)
	}
	return append(strings.Split(bar, "\n"), rule)
}

// placeholder reserves the header's height at the top of the document. While
// unfixed the header itself sits there and scrolls with the content; once
// fixed the slot is blank and the header is drawn over the viewport instead.
func (m *Model) placeholder(rs headroom.RenderState) []string {
	if !rs.Measured || rs.Height <= 0 {
		return nil
	}
	out := make([]string, rs.Height)
	if rs.Mode == headroom.Unfixed {
		copy(out, m.headerLines())
	}
	return out
}

// refresh rebuilds the viewport content and the position shown in the
// header and status bar.
func (m *Model) refresh() {
	rs := m.ctrl.State()
	top := m.vp.YOffset - rs.Height
	if !rs.Measured {
		top = m.vp.YOffset
	}
	m.ui = state.Position(m.ui, top+1, len(m.body))

	lines := m.placeholder(rs)
	current := -1
	if len(m.matches) > 0 && m.ui.MatchPos < len(m.matches) {
		current = m.matches[m.ui.MatchPos]
	}
	for i, ln := range m.body {
		if m.ui.Query != "" && containsIndex(m.matches, i) {
			ln = highlight(ln, m.ui.Query, highlightStyle)
			if i == current {
				ln = currentMatchStyle.Render(ln)
			}
		}
		lines = append(lines, ln)
	}
	offset := m.vp.YOffset
	m.vp.SetContent(strings.Join(lines, "\n"))
	m.vp.SetYOffset(offset)
}

func (m *Model) View() string {
	if m.ui.ShowHelp {
		return helpoverlay.NewHelpOverlay().View(m.ui, m.keys.sections())
	}
	rs := m.ctrl.State()
	lines := strings.Split(m.vp.View(), "\n")
	if rs.Mode != headroom.Unfixed {
		overlay(lines, m.headerLines(), m.slide.rows(rs.Height))
	}
	return strings.Join(lines, "\n") + "\n" + m.statusLine()
}

// overlay draws the bottom rows of header over the first rows of lines.
func overlay(lines, header []string, rows int) {
	rows = min(rows, len(header), len(lines))
	for i := 0; i < rows; i++ {
		lines[i] = header[len(header)-rows+i]
	}
}

func (m *Model) statusLine() string {
	clip := lipgloss.NewStyle().MaxWidth(m.ui.Width)
	if m.ui.Searching {
		return clip.Render(prompt.NewPrompt().View(m.ui))
	}
	tags := util.ComputeTags(m.ctrl.State(), m.ctrl.LastOffset(), m.ctrl.CommitPending())
	left := statusbar.NewStatusBar().View(m.ui, tagchips.View(tags, m.opts.NoColor))
	return clip.Render(left + "  " + m.help.ShortHelpView(m.keys.ShortHelp()))
}
