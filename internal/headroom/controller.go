package headroom

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// Metrics is the host's view of the scroll surface.
type Metrics interface {
	ScrollOffset() int
	ViewportHeight() int
	DocumentHeight() int
	MeasuredHeight() int // header height in lines
}

// Callbacks are invoked synchronously from the controller's processing step.
// A panic inside a callback is not recovered.
type Callbacks struct {
	OnPin   func()
	OnUnpin func()
	OnUnfix func()

	// OnDecision observes every engine evaluation, including ActionNone.
	OnDecision func(Decision)
}

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

type scrollTickMsg struct{ id int }

type resizeTickMsg struct{ id int }

type commitMsg struct{ id int }

// Controller owns a header's RenderState and drives it from scroll and resize
// notifications. All methods must be called from the bubbletea update loop.
type Controller struct {
	id      int
	opts    Options
	cb      Callbacks
	metrics Metrics
	log     *zap.Logger

	state      RenderState
	lastOffset int
	scroll     Slot
	resize     Slot
	mounted    bool
	committing bool
}

// Option customises a Controller.
type Option func(*Controller)

// WithCallbacks sets lifecycle callbacks.
func WithCallbacks(cb Callbacks) Option {
	return func(c *Controller) { c.cb = cb }
}

// WithLogger sets the logger used for transitions.
func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// WithFrameInterval sets how long a notification waits before it is
// processed. Notifications arriving in that window are coalesced.
func WithFrameInterval(d time.Duration) Option {
	return func(c *Controller) {
		c.scroll = NewSlot(d)
		c.resize = NewSlot(d)
	}
}

// New returns an unmounted controller.
func New(m Metrics, opts Options, options ...Option) *Controller {
	c := &Controller{
		id:      nextID(),
		opts:    opts,
		metrics: m,
		log:     zap.NewNop(),
		state:   InitialState(),
	}
	for _, o := range options {
		o(c)
	}
	return c
}

// State returns the current render state.
func (c *Controller) State() RenderState { return c.state }

// LastOffset returns the offset seen by the most recent scroll tick.
func (c *Controller) LastOffset() int { return c.lastOffset }

// Options returns the session options.
func (c *Controller) Options() Options { return c.opts }

// Mounted reports whether the controller accepts notifications.
func (c *Controller) Mounted() bool { return c.mounted }

// Mount subscribes the controller and takes the first height measurement.
func (c *Controller) Mount() {
	if c.mounted {
		return
	}
	c.mounted = true
	c.measure()
}

// Unmount releases the subscriptions. Notifications and ticks that arrive
// afterwards are dropped. It is safe to call more than once.
func (c *Controller) Unmount() {
	c.mounted = false
	c.scroll.Release()
	c.resize.Release()
	c.committing = false
}

// NotifyScroll records a scroll notification. It returns the command that
// delivers the processing tick, or nil when one is already pending.
func (c *Controller) NotifyScroll() tea.Cmd {
	if !c.mounted {
		return nil
	}
	return c.scroll.Schedule(scrollTickMsg{id: c.id})
}

// NotifyResize records a resize notification; see NotifyScroll.
func (c *Controller) NotifyResize() tea.Cmd {
	if !c.mounted {
		return nil
	}
	return c.resize.Schedule(resizeTickMsg{id: c.id})
}

// Update handles the controller's own tick messages and ignores the rest.
func (c *Controller) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case scrollTickMsg:
		if msg.id == c.id {
			return c.processScroll()
		}
	case resizeTickMsg:
		if msg.id == c.id {
			c.processResize()
		}
	case commitMsg:
		if msg.id == c.id && c.mounted && c.committing {
			c.CommitModeChange()
		}
	}
	return nil
}

func (c *Controller) processScroll() tea.Cmd {
	defer c.scroll.Release()
	if !c.mounted {
		return nil
	}
	current := c.metrics.ScrollOffset()
	var cmd tea.Cmd
	if c.outOfBound(current) {
		c.log.Debug("scroll out of bound", zap.Int("offset", current))
	} else {
		d := Decide(c.lastOffset, current, c.opts, c.state)
		if c.cb.OnDecision != nil {
			c.cb.OnDecision(d)
		}
		cmd = c.apply(d)
	}
	c.lastOffset = current
	return cmd
}

func (c *Controller) processResize() {
	defer c.resize.Release()
	if !c.mounted {
		return
	}
	c.measure()
}

func (c *Controller) measure() {
	h := c.metrics.MeasuredHeight()
	c.state = c.state.withHeight(h)
	c.log.Debug("header measured", zap.Int("height", h))
}

// outOfBound reports elastic overscroll past either end of the document.
func (c *Controller) outOfBound(offset int) bool {
	pastTop := offset < 0
	pastBottom := offset+c.metrics.ViewportHeight() > c.metrics.DocumentHeight()
	return pastTop || pastBottom
}

func (c *Controller) apply(d Decision) tea.Cmd {
	if d.Action == ActionNone {
		return nil
	}
	c.log.Debug("header transition",
		zap.Stringer("action", d.Action),
		zap.Stringer("direction", d.Direction),
		zap.Int("distance", d.Distance),
		zap.Int("offset", d.To),
		zap.Stringer("mode", c.state.Mode),
	)
	if d.Action != ActionUnfix {
		// a later transition supersedes an unfix whose commit is in flight
		c.committing = false
	}
	switch d.Action {
	case ActionPin:
		c.state = c.state.pinned()
		call(c.cb.OnPin)
	case ActionUnpin:
		c.state = c.state.unpinned(true)
		call(c.cb.OnUnpin)
	case ActionUnpinSnap:
		c.state = c.state.unpinned(false)
	case ActionUnfix:
		c.ApplyVisualReset()
		return c.scheduleCommit()
	}
	return nil
}

// ApplyVisualReset is phase one of unfix: the header is moved back to offset
// zero without animation and OnUnfix fires, but the mode is kept so that the
// header is not repositioned and re-parented in the same frame.
func (c *Controller) ApplyVisualReset() {
	c.state = c.state.visualReset()
	call(c.cb.OnUnfix)
}

// CommitModeChange is phase two of unfix and sets the mode to Unfixed. The
// controller only reaches it through a command scheduled by the processing
// step, so it always runs on a later tick than ApplyVisualReset.
func (c *Controller) CommitModeChange() {
	c.committing = false
	c.state = c.state.commitUnfixed()
	c.log.Debug("header unfixed")
}

// CommitPending reports whether phase two of an unfix is scheduled.
func (c *Controller) CommitPending() bool { return c.committing }

func (c *Controller) scheduleCommit() tea.Cmd {
	c.committing = true
	id := c.id
	return func() tea.Msg { return commitMsg{id: id} }
}

func call(f func()) {
	if f != nil {
		f()
	}
}
