package headroom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func measured(mode Mode, h int) RenderState {
	return RenderState{Mode: mode, Height: h, Measured: true}
}

// applyAction mirrors the controller's transition table with both unfix
// phases collapsed.
func applyAction(s RenderState, a Action) RenderState {
	switch a {
	case ActionPin:
		return s.pinned()
	case ActionUnpin:
		return s.unpinned(true)
	case ActionUnpinSnap:
		return s.unpinned(false)
	case ActionUnfix:
		return s.visualReset().commitUnfixed()
	}
	return s
}

func TestDecideForcedPin(t *testing.T) {
	opts := DefaultOptions()
	opts.Pin = true
	deltas := [][2]int{{0, 0}, {0, 500}, {500, 0}, {10, 11}, {-3, 40}}
	for _, mode := range []Mode{Unfixed, Pinned, Unpinned} {
		for _, st := range []RenderState{{Mode: mode}, measured(mode, 3)} {
			for _, dl := range deltas {
				got := Decide(dl[0], dl[1], opts, st).Action
				want := ActionPin
				if mode == Pinned {
					want = ActionNone
				}
				assert.Equal(t, want, got, "mode=%s delta=%v", mode, dl)
			}
		}
	}
}

func TestDecideNoOscillationAtRest(t *testing.T) {
	opts := DefaultOptions()
	cases := []struct {
		name     string
		last, at int
		state    RenderState
	}{
		{"snap past header", 0, 150, measured(Unfixed, 100)},
		{"unpin while pinned", 120, 250, measured(Pinned, 100)},
		{"pin on way up", 150, 140, measured(Unpinned, 100)},
		{"pin inside header", 102, 99, measured(Unpinned, 100)},
		{"unfix at top", 50, 0, measured(Pinned, 100)},
		{"inside header", 0, 40, measured(Unfixed, 100)},
		{"unmeasured", 0, 400, RenderState{Mode: Unfixed}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			first := Decide(tc.last, tc.at, opts, tc.state)
			next := applyAction(tc.state, first.Action)
			second := Decide(tc.last, tc.at, opts, next)
			assert.Equal(t, ActionNone, second.Action, "first action was %s", first.Action)
		})
	}
}

func TestDecideDistanceSymmetry(t *testing.T) {
	points := []int{-20, -1, 0, 1, 7, 100, 4096}
	for _, a := range points {
		for _, b := range points {
			ab := Decide(a, b, DefaultOptions(), InitialState())
			ba := Decide(b, a, DefaultOptions(), InitialState())
			require.Equal(t, ab.Distance, ba.Distance)
			require.GreaterOrEqual(t, ab.Distance, 0)
			if b >= a {
				assert.Equal(t, Down, ab.Direction)
			} else {
				assert.Equal(t, Up, ab.Direction)
			}
		}
	}
}

func TestDecideBoundaryExactness(t *testing.T) {
	opts := DefaultOptions()
	st := measured(Unfixed, 100)

	assert.Equal(t, ActionNone, Decide(0, 100, opts, st).Action)
	assert.Equal(t, ActionUnpinSnap, Decide(0, 101, opts, st).Action)

	// With a PinStart the equality point moves and still resolves to none.
	opts.PinStart = 10
	assert.Equal(t, ActionNone, Decide(105, 110, opts, st).Action)
	assert.Equal(t, ActionUnpinSnap, Decide(105, 111, opts, st).Action)

	// Rule 5 uses the same strict bound.
	pinned := measured(Pinned, 100)
	assert.Equal(t, ActionNone, Decide(50, 110, opts, pinned).Action)
	assert.Equal(t, ActionUnpin, Decide(50, 111, opts, pinned).Action)
}

func TestDecideTolerances(t *testing.T) {
	opts := Options{UpTolerance: 5, DownTolerance: 3}

	pinned := measured(Pinned, 10)
	assert.Equal(t, ActionNone, Decide(50, 53, opts, pinned).Action, "3 lines is inside the down band")
	assert.Equal(t, ActionUnpin, Decide(50, 54, opts, pinned).Action)

	unpinned := measured(Unpinned, 10)
	assert.Equal(t, ActionNone, Decide(50, 45, opts, unpinned).Action, "5 lines is inside the up band")
	assert.Equal(t, ActionPin, Decide(50, 44, opts, unpinned).Action)

	// Inside the header an upward scroll pins regardless of tolerance.
	assert.Equal(t, ActionPin, Decide(12, 10, opts, unpinned).Action)
}

func TestDecideUnmeasuredOnlyUnfixOrNone(t *testing.T) {
	opts := DefaultOptions()
	for _, mode := range []Mode{Unfixed, Pinned, Unpinned} {
		st := RenderState{Mode: mode}
		for _, dl := range [][2]int{{0, 300}, {300, 200}, {300, 0}, {5, 1}} {
			a := Decide(dl[0], dl[1], opts, st).Action
			if dl[1] <= opts.PinStart && mode != Unfixed {
				assert.Equal(t, ActionUnfix, a)
				continue
			}
			assert.Equal(t, ActionNone, a, "mode=%s delta=%v", mode, dl)
		}
	}
}

func TestDecideScenarioUnpinThenPin(t *testing.T) {
	opts := DefaultOptions()
	st := measured(Unfixed, 100)

	d := Decide(0, 150, opts, st)
	require.Equal(t, ActionUnpinSnap, d.Action)
	require.Equal(t, Down, d.Direction)
	st = applyAction(st, d.Action)
	assert.Equal(t, Unpinned, st.Mode)
	assert.Equal(t, OffsetHidden, st.Offset)
	assert.False(t, st.Animated)

	d = Decide(150, 140, opts, st)
	require.Equal(t, ActionPin, d.Action)
	assert.Equal(t, Up, d.Direction)
	assert.Equal(t, 10, d.Distance)
	st = applyAction(st, d.Action)
	assert.Equal(t, Pinned, st.Mode)
	assert.Equal(t, OffsetZero, st.Offset)
	assert.True(t, st.Animated)
}

func TestActionStrings(t *testing.T) {
	assert.Equal(t, "unpin-snap", ActionUnpinSnap.String())
	assert.Equal(t, "-100%", OffsetHidden.String())
	assert.Equal(t, "pinned", Pinned.String())
}
