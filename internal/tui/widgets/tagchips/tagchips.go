package tagchips

import (
    "fmt"
    "os"
    "strings"

    "github.com/charmbracelet/lipgloss"

    "headroom/internal/tui/state"
    "headroom/internal/tui/util"
)

// View renders header status tags in a stable order using colored chips when
// possible and ASCII fallbacks when color is disabled or not desired.
func View(tags []state.Tag, noColor bool) string {
    if len(tags) == 0 {
        return ""
    }
    // Honor NO_COLOR env var in addition to explicit param
    if !noColor && os.Getenv("NO_COLOR") != "" {
        noColor = true
    }

    parts := make([]string, 0, len(tags))
    for _, t := range tags {
        parts = append(parts, renderChip(t, noColor))
    }
    return strings.Join(parts, " ")
}

func renderChip(t state.Tag, noColor bool) string {
    label := chipLabel(t)
    if noColor {
        return fmt.Sprintf("[%s]", label)
    }
    return chipStyle(t).Render(label)
}

func chipLabel(t state.Tag) string {
    switch t.Kind {
    case state.UNFIXED:
        return "Unfixed"
    case state.PINNED:
        return "Pinned"
    case state.UNPINNED:
        return "Unpinned"
    case state.ANIMATED:
        return "Anim"
    case state.COMMITTING:
        return "Commit"
    case state.HEIGHT:
        return fmt.Sprintf("H %d", t.Value)
    case state.SCROLL:
        return fmt.Sprintf("Y %d", t.Value)
    default:
        return "Tag"
    }
}

func chipStyle(t state.Tag) lipgloss.Style {
    p := util.DefaultPalette()
    base := lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(p.OnColor)
    switch t.Kind {
    case state.PINNED:
        return base.Background(p.Success)
    case state.UNPINNED:
        return base.Background(p.Danger)
    case state.UNFIXED:
        return base.Background(p.Primary)
    case state.ANIMATED, state.COMMITTING:
        return base.Background(p.Warning).Foreground(lipgloss.Color("#111111"))
    case state.HEIGHT:
        return base.Background(p.Muted)
    case state.SCROLL:
        return base.Background(p.MutedDark)
    default:
        return base
    }
}
