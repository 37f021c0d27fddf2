package headroom

// Options configure a header for one session.
type Options struct {
	Pin           bool // force always-pinned
	UpTolerance   int  // lines scrolled up before a pin
	DownTolerance int  // lines scrolled down before an unpin
	PinStart      int  // offsets at or below this keep the header unfixed
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{UpTolerance: 5}
}

// Decision is the result of one engine evaluation.
type Decision struct {
	Action    Action
	Direction Direction
	Distance  int
	From, To  int
}

// Decide maps a scroll delta and the current state to the next action.
// It is pure. Rules are checked in order and the first match wins:
//
//  1. forced pin
//  2. offset <= PinStart while fixed: unfix
//  3. unfixed, heading down, still inside the header: none
//  4. unfixed, heading down, past header+PinStart: unpin without animation
//  5. fixed and visible, heading down past header+PinStart beyond DownTolerance: unpin
//  6. unpinned, heading up beyond UpTolerance: pin
//  7. unpinned, heading up inside the header: pin
//  8. none
//
// Rules 3-7 need a measured height. Rules 4 and 5 compare with a strict
// '>', so an offset equal to Height+PinStart resolves to none.
func Decide(last, current int, opts Options, s RenderState) Decision {
	d := Decision{From: last, To: current, Direction: Down, Distance: current - last}
	if current < last {
		d.Direction = Up
		d.Distance = last - current
	}
	d.Action = rule(d, opts, s)
	return d
}

func rule(d Decision, opts Options, s RenderState) Action {
	current := d.To
	down := d.Direction == Down
	switch {
	case opts.Pin:
		if s.Mode != Pinned {
			return ActionPin
		}
		return ActionNone
	case current <= opts.PinStart && s.Mode != Unfixed:
		return ActionUnfix
	case s.Measured && down && s.Mode == Unfixed && current <= s.Height:
		return ActionNone
	case s.Measured && down && s.Mode == Unfixed && current > s.Height+opts.PinStart:
		return ActionUnpinSnap
	case s.Measured && down && s.Mode != Unpinned && current > s.Height+opts.PinStart && d.Distance > opts.DownTolerance:
		return ActionUnpin
	case s.Measured && !down && s.Mode == Unpinned && d.Distance > opts.UpTolerance:
		return ActionPin
	case s.Measured && !down && s.Mode == Unpinned && current <= s.Height:
		return ActionPin
	}
	return ActionNone
}
