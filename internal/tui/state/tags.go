package state

// TagKind enumerates the header status chips.
type TagKind int

const (
    // Stable ordering for display: Mode, Animated, Committing, Height, Scroll
    UNFIXED TagKind = iota
    PINNED
    UNPINNED
    ANIMATED
    COMMITTING
    HEIGHT
    SCROLL
)

// Tag represents a single status chip. Value is used for numeric counters
// (header height, scroll offset). Non-numeric tags use Value = 0.
type Tag struct {
    Kind  TagKind
    Value int
}
