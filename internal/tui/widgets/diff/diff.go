package diff

import (
    "strings"

    "github.com/charmbracelet/lipgloss"
    dmp "github.com/sergi/go-diff/diffmatchpatch"
)

type styles struct {
    delLine, addLine, delChar, addChar, same, tag lipgloss.Style
}

func newStyles(noColor bool) styles {
    if noColor {
        plain := lipgloss.NewStyle()
        return styles{plain, plain, plain, plain, plain, plain}
    }
    return styles{
        delLine: lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "203"}),
        addLine: lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "114"}),
        delChar: lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "203"}).Underline(true),
        addChar: lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "114"}).Underline(true),
        same:    lipgloss.NewStyle().Faint(true),
        tag:     lipgloss.NewStyle().Bold(true),
    }
}

// Unified renders a line diff of two transition logs. Changed blocks with the
// same number of lines on both sides get char-level highlights.
func Unified(expected, actual string, noColor bool) string {
    if expected == actual {
        return "No changes\n"
    }
    st := newStyles(noColor)
    d := dmp.New()
    a, b, index := d.DiffLinesToChars(expected, actual)
    diffs := d.DiffCharsToLines(d.DiffMain(a, b, false), index)

    var sb strings.Builder
    sb.WriteString(st.tag.Render("EXPECTED (-) vs ACTUAL (+)") + "\n")
    for i := 0; i < len(diffs); i++ {
        df := diffs[i]
        switch df.Type {
        case dmp.DiffEqual:
            for _, l := range splitLines(df.Text) {
                sb.WriteString("  " + st.same.Render(l) + "\n")
            }
        case dmp.DiffDelete:
            if i+1 < len(diffs) && diffs[i+1].Type == dmp.DiffInsert {
                del, ins := splitLines(df.Text), splitLines(diffs[i+1].Text)
                if len(del) == len(ins) {
                    for j := range del {
                        writePair(&sb, d, st, del[j], ins[j])
                    }
                    i++
                    continue
                }
            }
            for _, l := range splitLines(df.Text) {
                sb.WriteString(st.delLine.Render("- "+l) + "\n")
            }
        case dmp.DiffInsert:
            for _, l := range splitLines(df.Text) {
                sb.WriteString(st.addLine.Render("+ "+l) + "\n")
            }
        }
    }
    return sb.String()
}

// writePair renders one changed line as a -/+ pair with char-level spans.
func writePair(sb *strings.Builder, d *dmp.DiffMatchPatch, st styles, before, after string) {
    diffs := d.DiffMain(before, after, false)
    diffs = d.DiffCleanupSemantic(diffs)
    sb.WriteString(st.delLine.Render("- "))
    for _, df := range diffs {
        switch df.Type {
        case dmp.DiffDelete:
            sb.WriteString(st.delChar.Render(df.Text))
        case dmp.DiffEqual:
            sb.WriteString(st.delLine.Render(df.Text))
        }
    }
    sb.WriteString("\n")
    sb.WriteString(st.addLine.Render("+ "))
    for _, df := range diffs {
        switch df.Type {
        case dmp.DiffInsert:
            sb.WriteString(st.addChar.Render(df.Text))
        case dmp.DiffEqual:
            sb.WriteString(st.addLine.Render(df.Text))
        }
    }
    sb.WriteString("\n")
}

// SideBySide renders the two logs in columns of the given width (best-effort).
func SideBySide(expected, actual string, width int, noColor bool) string {
    st := newStyles(noColor)
    if width < 10 {
        width = 10
    }
    bLines := splitLines(expected)
    aLines := splitLines(actual)
    max := len(bLines)
    if len(aLines) > max {
        max = len(aLines)
    }
    pad := func(s string, n int) string {
        if w := lipgloss.Width(s); w < n {
            return s + strings.Repeat(" ", n-w)
        }
        return s
    }
    var sb strings.Builder
    sb.WriteString(pad(st.tag.Render("EXPECTED"), width) + "  |  " + st.tag.Render("ACTUAL") + "\n")
    for i := 0; i < max; i++ {
        var bl, al string
        if i < len(bLines) {
            bl = bLines[i]
        }
        if i < len(aLines) {
            al = aLines[i]
        }
        if bl == al {
            sb.WriteString(pad("  "+st.same.Render(bl), width) + "  |  " + "  " + st.same.Render(al) + "\n")
            continue
        }
        sb.WriteString(pad(st.delLine.Render("- "+bl), width) + "  |  " + st.addLine.Render("+ "+al) + "\n")
    }
    return sb.String()
}

func splitLines(s string) []string {
    s = strings.TrimSuffix(s, "\n")
    if s == "" {
        return nil
    }
    return strings.Split(s, "\n")
}
