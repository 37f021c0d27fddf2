package prompt

import (
    "fmt"

    "headroom/internal/tui/state"
)

type Prompt struct{}

func NewPrompt() Prompt { return Prompt{} }

// View renders the search input line with the live match count.
func (Prompt) View(s state.UIState) string {
    if !s.Searching {
        return ""
    }
    return fmt.Sprintf("/%s█  (%d matches)  enter: jump  esc: cancel", s.Query, s.Matches)
}
