package helpoverlay

import (
    "fmt"
    "strings"

    "github.com/charmbracelet/bubbles/key"

    "headroom/internal/tui/state"
)

// Section is a titled group of bindings.
type Section struct {
    Title string
    Keys  []key.Binding
}

type HelpOverlay struct{}

func NewHelpOverlay() HelpOverlay { return HelpOverlay{} }

// View returns grouped keys help with the follow state indicated. Disabled
// bindings are skipped.
func (HelpOverlay) View(s state.UIState, sections []Section) string {
    follow := "off"
    if s.Follow {
        follow = "on"
    }
    var b strings.Builder
    fmt.Fprintf(&b, "Help (Follow: %s)\n", follow)
    for _, sec := range sections {
        fmt.Fprintf(&b, "\n%s:\n", sec.Title)
        for _, k := range sec.Keys {
            if !k.Enabled() {
                continue
            }
            h := k.Help()
            fmt.Fprintf(&b, "  %s: %s\n", h.Key, h.Desc)
        }
    }
    return b.String()
}
