package statusbar

import (
    "fmt"
    "strings"

    "headroom/internal/tui/state"
)

type StatusBar struct{}

func NewStatusBar() StatusBar { return StatusBar{} }

// View composes a concise status line: chips, position, follow flag, last
// header action and any notice.
func (StatusBar) View(s state.UIState, chips string) string {
    pos := fmt.Sprintf("L%d/%d %d%%", s.Line, s.Lines, state.Percent(s))

    parts := []string{}
    if chips != "" {
        parts = append(parts, chips)
    }
    parts = append(parts, pos)
    if s.Follow {
        parts = append(parts, "[FOLLOW]")
    }
    if s.LastAction != "" {
        parts = append(parts, "last: "+s.LastAction)
    }
    if s.Matches > 0 && !s.Searching {
        parts = append(parts, fmt.Sprintf("[%d/%d]", s.MatchPos+1, s.Matches))
    }
    if s.Notice != "" {
        parts = append(parts, s.Notice)
    }
    return strings.Join(parts, "  ")
}
