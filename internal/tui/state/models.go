package state

// UIState holds pager UI state shared by the status bar, prompt and help.
type UIState struct {
    // Layout
    Width  int
    Height int

    // Position in the body, 1-based
    Line  int
    Lines int

    // Modes
    Follow   bool
    ShowHelp bool

    // Search
    Searching bool
    Query     string
    Matches   int
    MatchPos  int

    // Last header action, e.g. "pin"
    LastAction string

    // Notices and ephemeral messages
    Notice string
}
