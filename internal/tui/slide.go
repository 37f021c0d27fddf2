package tui

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"

	"headroom/internal/headroom"
)

const slideFPS = 60

type slideFrameMsg struct{ gen int }

// slide eases the number of visible header rows while a fixed header moves
// between offset zero and -100%. Transitions without the Animated flag snap.
type slide struct {
	spring  harmonica.Spring
	pos     float64
	vel     float64
	target  float64
	running bool
	gen     int // frames from an older chain are ignored
}

func newSlide() slide {
	return slide{spring: harmonica.NewSpring(harmonica.FPS(slideFPS), 9.0, 1.0)}
}

// sync retargets the slide for rs and returns a frame command when an
// animation has to start.
func (s *slide) sync(rs headroom.RenderState, enabled bool) tea.Cmd {
	s.target = 0
	if rs.Offset == headroom.OffsetZero {
		s.target = float64(rs.Height)
	}
	if !rs.Animated || !enabled {
		if s.running {
			s.gen++
		}
		s.pos, s.vel, s.running = s.target, 0, false
		return nil
	}
	if s.running || s.pos == s.target {
		return nil
	}
	s.running = true
	s.gen++
	return slideFrame(s.gen)
}

// step advances one frame of chain gen.
func (s *slide) step(gen int) tea.Cmd {
	if !s.running || gen != s.gen {
		return nil
	}
	s.pos, s.vel = s.spring.Update(s.pos, s.vel, s.target)
	if math.Abs(s.pos-s.target) < 0.05 && math.Abs(s.vel) < 0.05 {
		s.pos, s.vel, s.running = s.target, 0, false
		return nil
	}
	return slideFrame(s.gen)
}

// rows is the number of header rows currently on screen, clamped to height.
func (s slide) rows(height int) int {
	r := int(math.Round(s.pos))
	if r < 0 {
		return 0
	}
	if r > height {
		return height
	}
	return r
}

func slideFrame(gen int) tea.Cmd {
	return tea.Tick(time.Second/slideFPS, func(time.Time) tea.Msg { return slideFrameMsg{gen: gen} })
}
