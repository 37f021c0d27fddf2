package helpoverlay

import (
    "strings"
    "testing"

    "github.com/charmbracelet/bubbles/key"

    "headroom/internal/tui/state"
)

func TestViewGroupsAndSkipsDisabled(t *testing.T) {
    on := key.NewBinding(key.WithKeys("j"), key.WithHelp("j/↓", "down"))
    off := key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "hidden"), key.WithDisabled())
    out := NewHelpOverlay().View(state.UIState{Follow: true}, []Section{{Title: "Navigation", Keys: []key.Binding{on, off}}})

    if !strings.HasPrefix(out, "Help (Follow: on)\n") {
        t.Fatalf("missing header: %q", out)
    }
    if !strings.Contains(out, "Navigation:\n  j/↓: down\n") {
        t.Fatalf("missing section: %q", out)
    }
    if strings.Contains(out, "hidden") {
        t.Fatalf("disabled binding rendered: %q", out)
    }
}
