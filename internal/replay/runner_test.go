package replay

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"headroom/internal/headroom"
)

const scenario = `
viewport: 40
document: 1000
header: 100
events:
  - scroll: [150]
  - scroll: [140]
  - scroll: [-5]
  - scroll: [30, 20, 0]
  - header: 6
`

func TestRunScenario(t *testing.T) {
	tr, err := Parse([]byte(scenario))
	require.NoError(t, err)
	steps := Run(tr, headroom.DefaultOptions(), zap.NewNop())
	require.Len(t, steps, 7)

	assert.Equal(t, "mount", steps[0].Kind)
	assert.True(t, steps[0].State.Measured)

	require.NotNil(t, steps[1].Decision)
	assert.Equal(t, headroom.ActionUnpinSnap, steps[1].Decision.Action)
	assert.Equal(t, headroom.Unpinned, steps[1].State.Mode)
	assert.Empty(t, steps[1].Fired)

	assert.Equal(t, headroom.ActionPin, steps[2].Decision.Action)
	assert.Equal(t, []string{"onPin"}, steps[2].Fired)
	assert.True(t, steps[2].State.Animated)

	assert.Nil(t, steps[3].Decision, "overscroll skips the engine")
	assert.Equal(t, -5, steps[3].Offset)

	assert.Equal(t, 3, steps[4].Burst)
	assert.Equal(t, headroom.ActionUnfix, steps[4].Decision.Action)
	assert.Equal(t, -5, steps[4].Decision.From)
	assert.Equal(t, []string{"onUnfix"}, steps[4].Fired)
	assert.Equal(t, headroom.Pinned, steps[4].State.Mode)

	assert.Equal(t, "commit", steps[5].Kind)
	assert.Equal(t, 4, steps[5].Event)
	assert.Equal(t, headroom.Unfixed, steps[5].State.Mode)

	assert.Equal(t, "resize", steps[6].Kind)
	assert.Equal(t, 6, steps[6].State.Height)

	out := Format(steps)
	assert.Contains(t, out, "  1 scroll 0->150 down/150 unpin-snap {unpinned -100% h=100 animated=false}\n")
	assert.Contains(t, out, "  3 scroll -5 out-of-bound")
	assert.Contains(t, out, "-5->0 down/5 unfix (x3) [onUnfix]")
	assert.Equal(t, 7, strings.Count(out, "\n"))
}

func TestRunOverrides(t *testing.T) {
	tr, err := Parse([]byte(`
viewport: 10
document: 100
header: 2
options:
  pin: true
events:
  - scroll: [50]
  - scroll: [60]
`))
	require.NoError(t, err)
	steps := Run(tr, headroom.DefaultOptions(), nil)
	require.Len(t, steps, 3)
	assert.Equal(t, headroom.ActionPin, steps[1].Decision.Action)
	assert.Equal(t, headroom.ActionNone, steps[2].Decision.Action)
}

func TestParseRejectsBadEvents(t *testing.T) {
	_, err := Parse([]byte("viewport: 1\ndocument: 1\nevents:\n  - {}\n"))
	assert.ErrorIs(t, err, errEmptyEvent)

	_, err = Parse([]byte("viewport: 1\ndocument: 1\nevents:\n  - {scroll: [1], header: 2}\n"))
	assert.Error(t, err)

	_, err = Parse([]byte("events: []\n"))
	assert.Error(t, err)
}
