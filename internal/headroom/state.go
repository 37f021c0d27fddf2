package headroom

import "fmt"

// RenderState is what the presentation layer draws. It is a value: each
// transition returns a new RenderState rather than editing one in place.
type RenderState struct {
	Mode     Mode
	Offset   Offset
	Height   int  // measured header height in lines, valid when Measured
	Measured bool // false until the first measurement
	Animated bool
}

// InitialState is the state at mount.
func InitialState() RenderState {
	return RenderState{Mode: Unfixed, Offset: OffsetZero}
}

// pinned: fixed, visible, animated.
func (s RenderState) pinned() RenderState {
	s.Mode = Pinned
	s.Offset = OffsetZero
	s.Animated = true
	return s
}

// unpinned: fixed, hidden. animate is false for a snap.
func (s RenderState) unpinned(animate bool) RenderState {
	s.Mode = Unpinned
	s.Offset = OffsetHidden
	s.Animated = animate
	return s
}

// visualReset is phase one of unfix; Mode is left for commitUnfixed.
func (s RenderState) visualReset() RenderState {
	s.Offset = OffsetZero
	s.Animated = false
	return s
}

func (s RenderState) commitUnfixed() RenderState {
	s.Mode = Unfixed
	return s
}

func (s RenderState) withHeight(h int) RenderState {
	s.Height = h
	s.Measured = true
	return s
}

func (s RenderState) String() string {
	h := "?"
	if s.Measured {
		h = fmt.Sprintf("%d", s.Height)
	}
	return fmt.Sprintf("{%s %s h=%s animated=%t}", s.Mode, s.Offset, h, s.Animated)
}
