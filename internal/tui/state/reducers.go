package state

// ToggleFollow flips follow mode and sets a brief notice.
func ToggleFollow(s UIState) UIState {
    s.Follow = !s.Follow
    if s.Follow {
        s.Notice = "[FOLLOW]"
    } else {
        s.Notice = "[NO FOLLOW]"
    }
    return s
}

// ToggleHelp shows or hides the help overlay.
func ToggleHelp(s UIState) UIState {
    s.ShowHelp = !s.ShowHelp
    return s
}

// Resize records the terminal size. Sizes below one cell are clamped.
func Resize(s UIState, width, height int) UIState {
    if width < 1 {
        width = 1
    }
    if height < 1 {
        height = 1
    }
    s.Width = width
    s.Height = height
    return s
}

// Position records the first visible body line and the body length.
func Position(s UIState, line, lines int) UIState {
    if line < 1 {
        line = 1
    }
    if lines < 0 {
        lines = 0
    }
    if line > lines && lines > 0 {
        line = lines
    }
    s.Line = line
    s.Lines = lines
    return s
}

// Percent returns how far through the body the top line is.
func Percent(s UIState) int {
    if s.Lines <= 1 {
        return 100
    }
    return (s.Line - 1) * 100 / (s.Lines - 1)
}

// StartSearch enters search input with an empty query.
func StartSearch(s UIState) UIState {
    s.Searching = true
    s.Query = ""
    s.Matches = 0
    s.MatchPos = 0
    return s
}

// TypeQuery appends runes to the query.
func TypeQuery(s UIState, r []rune) UIState {
    s.Query += string(r)
    return s
}

// Backspace drops the last rune of the query.
func Backspace(s UIState) UIState {
    if r := []rune(s.Query); len(r) > 0 {
        s.Query = string(r[:len(r)-1])
    }
    return s
}

// EndSearch leaves input mode, keeping the query when commit is true.
func EndSearch(s UIState, commit bool) UIState {
    s.Searching = false
    if !commit {
        s.Query = ""
        s.Matches = 0
        s.MatchPos = 0
    }
    return s
}

// SetMatches stores the match count and the current match index, wrapping
// pos into range.
func SetMatches(s UIState, n, pos int) UIState {
    s.Matches = n
    switch {
    case n == 0:
        pos = 0
    case pos < 0:
        pos = n - 1
    case pos >= n:
        pos = 0
    }
    s.MatchPos = pos
    return s
}

// Transition records the last header action.
func Transition(s UIState, action string) UIState {
    s.LastAction = action
    return s
}
