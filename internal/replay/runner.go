package replay

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"headroom/internal/headroom"
)

// Step is one processed tick.
type Step struct {
	Event    int // 1-based event index, 0 for mount
	Kind     string
	Burst    int // notifications coalesced into this tick
	Offset   int
	Decision *headroom.Decision // nil when the engine was skipped
	Fired    []string
	State    headroom.RenderState
}

func (s Step) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%3d %-6s", s.Event, s.Kind)
	switch s.Kind {
	case "scroll":
		if s.Decision == nil {
			fmt.Fprintf(&b, " %d out-of-bound", s.Offset)
			break
		}
		d := s.Decision
		fmt.Fprintf(&b, " %d->%d %s/%d %s", d.From, d.To, d.Direction, d.Distance, d.Action)
		if s.Burst > 1 {
			fmt.Fprintf(&b, " (x%d)", s.Burst)
		}
	}
	if len(s.Fired) > 0 {
		fmt.Fprintf(&b, " [%s]", strings.Join(s.Fired, ","))
	}
	fmt.Fprintf(&b, " %s", s.State)
	return b.String()
}

// Format renders steps one per line.
func Format(steps []Step) string {
	var b strings.Builder
	for _, s := range steps {
		b.WriteString(s.String())
		b.WriteByte('\n')
	}
	return b.String()
}

type scripted struct {
	offset, viewport, document, header int
}

func (s *scripted) ScrollOffset() int   { return s.offset }
func (s *scripted) ViewportHeight() int { return s.viewport }
func (s *scripted) DocumentHeight() int { return s.document }
func (s *scripted) MeasuredHeight() int { return s.header }

// Run plays tr against a fresh controller. Each event is delivered as one
// burst followed by its processing tick; an unfix commit is reported as its
// own step on the following tick.
func Run(tr *Trace, base headroom.Options, log *zap.Logger) []Step {
	m := &scripted{viewport: tr.Viewport, document: tr.Document, header: tr.Header}
	var (
		fired   []string
		decided *headroom.Decision
	)
	record := func(name string) func() {
		return func() { fired = append(fired, name) }
	}
	c := headroom.New(m, tr.Options.Apply(base),
		headroom.WithLogger(log),
		headroom.WithCallbacks(headroom.Callbacks{
			OnPin:   record("onPin"),
			OnUnpin: record("onUnpin"),
			OnUnfix: record("onUnfix"),
			OnDecision: func(d headroom.Decision) {
				decided = &d
			},
		}),
	)
	c.Mount()
	defer c.Unmount()

	steps := []Step{{Kind: "mount", State: c.State()}}
	for i, ev := range tr.Events {
		fired, decided = nil, nil
		step := Step{Event: i + 1}
		var tick tea.Cmd
		switch {
		case len(ev.Scroll) > 0:
			step.Kind = "scroll"
			for _, off := range ev.Scroll {
				m.offset = off
				if cmd := c.NotifyScroll(); cmd != nil {
					tick = cmd
				}
			}
			step.Burst = len(ev.Scroll)
			step.Offset = m.offset
		case ev.Header != nil:
			step.Kind = "resize"
			m.header = *ev.Header
			tick = c.NotifyResize()
		case ev.Document != nil:
			step.Kind = "resize"
			m.document = *ev.Document
			tick = c.NotifyResize()
		case ev.Viewport != nil:
			step.Kind = "resize"
			m.viewport = *ev.Viewport
			tick = c.NotifyResize()
		}
		if tick == nil {
			continue
		}
		next := c.Update(tick())
		step.Decision = decided
		step.Fired = fired
		step.State = c.State()
		steps = append(steps, step)

		for next != nil {
			fired = nil
			next = c.Update(next())
			steps = append(steps, Step{Event: i + 1, Kind: "commit", Fired: fired, State: c.State()})
		}
	}
	return steps
}
