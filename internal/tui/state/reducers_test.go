package state

import "testing"

func TestToggleFollowSetsNotice(t *testing.T) {
    s := UIState{}
    s = ToggleFollow(s)
    if !s.Follow || s.Notice != "[FOLLOW]" { t.Fatalf("expected follow on with notice, got %+v", s) }
    s = ToggleFollow(s)
    if s.Follow || s.Notice == "" { t.Fatalf("expected follow off with notice") }
}

func TestToggleHelp(t *testing.T) {
    s := ToggleHelp(UIState{})
    if !s.ShowHelp { t.Fatalf("expected ShowHelp to be true") }
}

func TestResizeClamps(t *testing.T) {
    s := Resize(UIState{}, 0, -3)
    if s.Width != 1 || s.Height != 1 { t.Fatalf("expected 1x1, got %dx%d", s.Width, s.Height) }
}

func TestPositionAndPercent(t *testing.T) {
    s := Position(UIState{}, 0, 101)
    if s.Line != 1 || Percent(s) != 0 { t.Fatalf("expected top, got line=%d pct=%d", s.Line, Percent(s)) }
    s = Position(s, 51, 101)
    if Percent(s) != 50 { t.Fatalf("expected 50%%, got %d", Percent(s)) }
    s = Position(s, 500, 101)
    if s.Line != 101 || Percent(s) != 100 { t.Fatalf("expected clamp to last line") }
    if Percent(Position(UIState{}, 1, 0)) != 100 { t.Fatalf("empty body is 100%%") }
}

func TestSearchInput(t *testing.T) {
    s := StartSearch(UIState{Query: "old"})
    if !s.Searching || s.Query != "" { t.Fatalf("expected fresh search") }
    s = TypeQuery(s, []rune("héad"))
    s = Backspace(s)
    if s.Query != "héa" { t.Fatalf("unexpected query %q", s.Query) }
    s = EndSearch(s, true)
    if s.Searching || s.Query != "héa" { t.Fatalf("commit should keep query") }
    s = EndSearch(StartSearch(s), false)
    if s.Query != "" { t.Fatalf("cancel should clear query") }
}

func TestSetMatchesWraps(t *testing.T) {
    s := SetMatches(UIState{}, 3, 3)
    if s.MatchPos != 0 { t.Fatalf("expected wrap to 0, got %d", s.MatchPos) }
    s = SetMatches(s, 3, -1)
    if s.MatchPos != 2 { t.Fatalf("expected wrap to 2, got %d", s.MatchPos) }
    s = SetMatches(s, 0, 2)
    if s.MatchPos != 0 { t.Fatalf("expected 0 with no matches") }
}
