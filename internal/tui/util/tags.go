package util

import (
    "headroom/internal/headroom"
    "headroom/internal/tui/state"
)

// ComputeTags derives the header status chips from a render state and the
// last processed scroll offset.
//
// The returned slice preserves a stable order:
//   Mode, Animated, Committing, Height, Scroll
//
// Rules:
// - Exactly one mode chip is present.
// - Animated appears only while the state asks for an animated transition.
// - Committing appears between the two phases of an unfix.
// - Height appears once the header has been measured.
// - Scroll is always included.
func ComputeTags(rs headroom.RenderState, lastOffset int, committing bool) []state.Tag {
    tags := make([]state.Tag, 0, 5)

    // 1) Mode
    switch rs.Mode {
    case headroom.Pinned:
        tags = append(tags, state.Tag{Kind: state.PINNED})
    case headroom.Unpinned:
        tags = append(tags, state.Tag{Kind: state.UNPINNED})
    default:
        tags = append(tags, state.Tag{Kind: state.UNFIXED})
    }

    // 2) Animated
    if rs.Animated {
        tags = append(tags, state.Tag{Kind: state.ANIMATED})
    }

    // 3) Committing
    if committing {
        tags = append(tags, state.Tag{Kind: state.COMMITTING})
    }

    // 4) Height (N)
    if rs.Measured {
        tags = append(tags, state.Tag{Kind: state.HEIGHT, Value: rs.Height})
    }

    // 5) Scroll (N)
    tags = append(tags, state.Tag{Kind: state.SCROLL, Value: lastOffset})

    return tags
}
