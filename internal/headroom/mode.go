package headroom

// Mode is the header placement. Exactly one holds at a time.
type Mode int

const (
	Unfixed  Mode = iota // normal document flow
	Pinned               // fixed, fully visible
	Unpinned             // fixed, moved fully off-screen
)

func (m Mode) String() string {
	switch m {
	case Unfixed:
		return "unfixed"
	case Pinned:
		return "pinned"
	case Unpinned:
		return "unpinned"
	default:
		return "unknown"
	}
}

// fixed reports whether the header is taken out of the document flow.
func (m Mode) fixed() bool { return m != Unfixed }

// Action is the transition chosen by Decide.
type Action int

const (
	ActionNone Action = iota
	ActionPin
	ActionUnpin
	ActionUnpinSnap
	ActionUnfix
)

func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionPin:
		return "pin"
	case ActionUnpin:
		return "unpin"
	case ActionUnpinSnap:
		return "unpin-snap"
	case ActionUnfix:
		return "unfix"
	default:
		return "unknown"
	}
}

// Direction of a scroll delta. Zero-length deltas count as Down.
type Direction int

const (
	Down Direction = iota
	Up
)

func (d Direction) String() string {
	if d == Up {
		return "up"
	}
	return "down"
}

// Offset is the header's vertical translation.
type Offset int

const (
	OffsetZero   Offset = iota // 0
	OffsetHidden               // -100%
)

func (o Offset) String() string {
	if o == OffsetHidden {
		return "-100%"
	}
	return "0"
}
