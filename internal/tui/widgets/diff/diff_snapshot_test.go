package diff

import (
    "strings"
    "testing"
)

func TestUnifiedSnapshot(t *testing.T) {
    exp := "  1 scroll 0->150 down/150 unpin-snap\n  2 scroll 150->140 up/10 pin\n"
    act := "  1 scroll 0->150 down/150 unpin-snap\n  2 scroll 150->140 up/10 none\n"
    out := Unified(exp, act, true)
    if !strings.HasPrefix(out, "EXPECTED (-) vs ACTUAL (+)\n") {
        t.Fatalf("missing unified header: %q", out)
    }
    if !strings.Contains(out, "  1 scroll") {
        t.Fatalf("expected unchanged context line: %q", out)
    }
    if !strings.Contains(out, "- ") || !strings.Contains(out, "+ ") {
        t.Fatalf("expected +/- lines in unified output: %q", out)
    }
    if !strings.Contains(out, "pin") || !strings.Contains(out, "none") {
        t.Fatalf("expected both sides of the changed line: %q", out)
    }
}

func TestUnifiedNoChanges(t *testing.T) {
    if Unified("a\n", "a\n", true) != "No changes\n" {
        t.Fatalf("expected no changes")
    }
}

func TestUnifiedExtraLines(t *testing.T) {
    out := Unified("a\n", "a\nb\nc\n", true)
    if !strings.Contains(out, "+ b\n") || !strings.Contains(out, "+ c\n") {
        t.Fatalf("expected inserted lines: %q", out)
    }
}

func TestSideBySideSnapshot(t *testing.T) {
    out := SideBySide("left", "right", 20, true)
    if !strings.HasPrefix(out, "EXPECTED") {
        t.Fatalf("missing sbs header: %q", out)
    }
    if !strings.Contains(out, "  |  ") {
        t.Fatalf("missing separator")
    }
    if !strings.Contains(out, "- left") || !strings.Contains(out, "+ right") {
        t.Fatalf("missing sides: %q", out)
    }
}
