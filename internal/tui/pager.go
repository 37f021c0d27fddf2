package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"headroom/internal/config"
	"headroom/internal/headroom"
	"headroom/internal/tui/state"
	"headroom/internal/tui/util"
)

const historyLimit = 50

// Options configure the pager.
type Options struct {
	Title         string
	Header        headroom.Options
	FrameInterval time.Duration
	Animate       bool
	NoColor       bool
	Follow        bool
}

// OptionsFromConfig maps the loaded configuration onto pager options.
func OptionsFromConfig(c *config.Config) Options {
	return Options{
		Title:         c.Header.Title,
		Header:        c.Options(),
		FrameInterval: c.UI.FrameInterval,
		Animate:       c.UI.Animate,
		NoColor:       util.NoColor(c.UI.NoColor),
		Follow:        c.UI.Follow,
	}
}

// Run opens path in the pager and blocks until the user quits. The file
// watcher and the header controller are released on every return path.
func Run(path string, opts Options, log *zap.Logger) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", path, err)
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	m := New(abs, string(data), opts, log)
	defer m.ctrl.Unmount()

	if w, err := watchFile(abs); err != nil {
		log.Warn("file watch disabled", zap.Error(err))
	} else {
		m.watcher = w
		defer w.Close()
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = p.Run()
	return err
}

// Model is a file pager with an auto-hiding header.
type Model struct {
	path    string
	title   string
	body    []string
	matches []int

	vp      viewport.Model
	ctrl    *headroom.Controller
	slide   slide
	ui      state.UIState
	keys    keyMap
	help    help.Model
	watcher *fsnotify.Watcher
	log     *zap.Logger
	palette util.Palette
	opts    Options
	history []string
}

// New builds an unmounted pager for content. The header controller mounts on
// the first window size message.
func New(path, content string, opts Options, log *zap.Logger) *Model {
	if log == nil {
		log = zap.NewNop()
	}
	title := opts.Title
	if title == "" {
		title = filepath.Base(path)
	}
	m := &Model{
		path:    path,
		title:   title,
		vp:      viewport.New(0, 0),
		slide:   newSlide(),
		keys:    defaultKeyMap(),
		help:    help.New(),
		log:     log,
		palette: util.DefaultPalette(),
		opts:    opts,
	}
	m.ui.Follow = opts.Follow
	m.ctrl = headroom.New(pagerMetrics{m}, opts.Header,
		headroom.WithLogger(log.Named("header")),
		headroom.WithFrameInterval(opts.FrameInterval),
		headroom.WithCallbacks(headroom.Callbacks{
			OnPin:   func() { m.record("pin") },
			OnUnpin: func() { m.record("unpin") },
			OnUnfix: func() { m.record("unfix") },
			OnDecision: func(d headroom.Decision) {
				if d.Action != headroom.ActionNone {
					m.ui = state.Transition(m.ui, d.Action.String())
				}
			},
		}),
	)
	m.setBody(content)
	return m
}

// Header exposes the controller state for callers and tests.
func (m *Model) Header() headroom.RenderState { return m.ctrl.State() }

func (m *Model) Init() tea.Cmd {
	return waitChange(m.watcher, m.path)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	before := m.ctrl.State()
	offset := m.vp.YOffset
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ui = state.Resize(m.ui, msg.Width, msg.Height)
		m.vp.Width = m.ui.Width
		m.vp.Height = max(m.ui.Height-1, 1)
		m.help.Width = m.ui.Width
		first := !m.ctrl.Mounted()
		if first {
			m.ctrl.Mount()
		}
		m.refresh()
		if first && m.ui.Follow {
			m.vp.GotoBottom()
		}
		cmds = append(cmds, m.ctrl.NotifyResize())
	case tea.KeyMsg:
		cmd, quit := m.handleKey(msg)
		if quit {
			return m, tea.Quit
		}
		cmds = append(cmds, cmd)
	case tea.MouseMsg:
		var cmd tea.Cmd
		m.vp, cmd = m.vp.Update(msg)
		cmds = append(cmds, cmd)
	case fileChangedMsg:
		m.reload()
		cmds = append(cmds, m.ctrl.NotifyResize(), waitChange(m.watcher, m.path))
	case watchErrMsg:
		m.log.Warn("file watch error", zap.Error(msg.err))
		m.ui.Notice = "watch: " + msg.err.Error()
		cmds = append(cmds, waitChange(m.watcher, m.path))
	case slideFrameMsg:
		cmds = append(cmds, m.slide.step(msg.gen))
	default:
		cmds = append(cmds, m.ctrl.Update(msg))
	}

	if m.vp.YOffset != offset {
		m.refresh()
		cmds = append(cmds, m.ctrl.NotifyScroll())
	}
	if after := m.ctrl.State(); after != before {
		m.refresh()
		cmds = append(cmds, m.slide.sync(after, m.opts.Animate))
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	if m.ui.Searching {
		m.handleSearchKey(msg)
		return nil, false
	}
	m.ui.Notice = ""
	k := m.keys
	switch {
	case key.Matches(msg, k.Quit):
		return nil, true
	case key.Matches(msg, k.Up):
		m.vp.SetYOffset(m.vp.YOffset - 1)
	case key.Matches(msg, k.Down):
		m.vp.SetYOffset(m.vp.YOffset + 1)
	case key.Matches(msg, k.PageUp):
		m.vp.SetYOffset(m.vp.YOffset - m.vp.Height)
	case key.Matches(msg, k.PageDown):
		m.vp.SetYOffset(m.vp.YOffset + m.vp.Height)
	case key.Matches(msg, k.HalfUp):
		m.vp.SetYOffset(m.vp.YOffset - m.vp.Height/2)
	case key.Matches(msg, k.HalfDown):
		m.vp.SetYOffset(m.vp.YOffset + m.vp.Height/2)
	case key.Matches(msg, k.Top):
		m.vp.GotoTop()
	case key.Matches(msg, k.Bottom):
		m.vp.GotoBottom()
	case key.Matches(msg, k.Search):
		m.ui = state.StartSearch(m.ui)
		m.matches = nil
		m.refresh()
	case key.Matches(msg, k.Next):
		m.jump(m.ui.MatchPos + 1)
	case key.Matches(msg, k.Prev):
		m.jump(m.ui.MatchPos - 1)
	case key.Matches(msg, k.Follow):
		m.ui = state.ToggleFollow(m.ui)
		if m.ui.Follow {
			m.vp.GotoBottom()
		}
	case key.Matches(msg, k.Copy):
		if err := clipboard.WriteAll(m.snapshot()); err != nil {
			m.ui.Notice = "Copy failed: " + err.Error()
		} else {
			m.ui.Notice = "Copied header state"
		}
	case key.Matches(msg, k.Help):
		m.ui = state.ToggleHelp(m.ui)
	}
	return nil, false
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) {
	switch msg.Type {
	case tea.KeyEnter:
		m.ui = state.EndSearch(m.ui, true)
		m.jump(0)
		return
	case tea.KeyEsc:
		m.ui = state.EndSearch(m.ui, false)
		m.matches = nil
	case tea.KeyBackspace, tea.KeyCtrlH:
		m.ui = state.Backspace(m.ui)
	case tea.KeyRunes, tea.KeySpace:
		m.ui = state.TypeQuery(m.ui, msg.Runes)
	default:
		return
	}
	if m.ui.Query != "" {
		m.matches = findMatches(m.body, m.ui.Query)
	} else {
		m.matches = nil
	}
	m.ui = state.SetMatches(m.ui, len(m.matches), 0)
	m.refresh()
}

// jump scrolls so that match pos sits just below the header slot.
func (m *Model) jump(pos int) {
	if len(m.matches) == 0 && strings.TrimSpace(m.ui.Query) != "" {
		m.matches = findMatches(m.body, m.ui.Query)
	}
	m.ui = state.SetMatches(m.ui, len(m.matches), pos)
	if len(m.matches) == 0 {
		if m.ui.Query != "" {
			m.ui.Notice = "Pattern not found: " + m.ui.Query
		}
		return
	}
	m.vp.SetYOffset(m.matches[m.ui.MatchPos])
	m.refresh()
}

func (m *Model) setBody(content string) {
	content = strings.ReplaceAll(content, "\t", "    ")
	content = strings.TrimRight(content, "\n")
	m.body = strings.Split(content, "\n")
	if m.ui.Query != "" {
		m.matches = findMatches(m.body, m.ui.Query)
		m.ui = state.SetMatches(m.ui, len(m.matches), m.ui.MatchPos)
	}
}

func (m *Model) reload() {
	data, err := os.ReadFile(m.path)
	if err != nil {
		m.log.Warn("reload failed", zap.String("path", m.path), zap.Error(err))
		m.ui.Notice = "Reload failed: " + err.Error()
		return
	}
	m.setBody(string(data))
	m.refresh()
	if m.ui.Follow {
		m.vp.GotoBottom()
	}
}

func (m *Model) record(event string) {
	line := fmt.Sprintf("%s %s at %d", time.Now().Format("15:04:05"), event, m.vp.YOffset)
	m.history = append(m.history, line)
	if len(m.history) > historyLimit {
		m.history = m.history[len(m.history)-historyLimit:]
	}
}

// snapshot is the text copied by the copy key.
func (m *Model) snapshot() string {
	var b strings.Builder
	fmt.Fprintf(&b, "file: %s\n", m.path)
	fmt.Fprintf(&b, "header: %s\n", m.ctrl.State())
	fmt.Fprintf(&b, "offset: %d\n", m.ctrl.LastOffset())
	for _, h := range m.history {
		b.WriteString(h + "\n")
	}
	return b.String()
}

// pagerMetrics reads scroll metrics from the pager's viewport.
type pagerMetrics struct{ m *Model }

func (p pagerMetrics) ScrollOffset() int   { return p.m.vp.YOffset }
func (p pagerMetrics) ViewportHeight() int { return p.m.vp.Height }

// DocumentHeight never reports less than the viewport, so a short file is
// not treated as permanently overscrolled.
func (p pagerMetrics) DocumentHeight() int {
	return max(p.m.vp.TotalLineCount(), p.m.vp.Height)
}

func (p pagerMetrics) MeasuredHeight() int {
	return len(p.m.headerLines())
}
