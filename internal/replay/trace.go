// Package replay runs recorded scroll traces against a headless header
// controller and reports every transition.
package replay

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"headroom/internal/headroom"
)

// Trace is a scripted session. Offsets and heights are in lines.
//
//	viewport: 40
//	document: 1000
//	header: 3
//	options: {up_tolerance: 2}
//	events:
//	  - scroll: [10, 20, 150]  # one burst, coalesced into one tick
//	  - header: 4              # header re-measured on resize
//	  - document: 2000
type Trace struct {
	Viewport int       `yaml:"viewport"`
	Document int       `yaml:"document"`
	Header   int       `yaml:"header"`
	Options  Overrides `yaml:"options"`
	Events   []Event   `yaml:"events"`
}

// Overrides replace individual session options when set.
type Overrides struct {
	Pin           *bool `yaml:"pin"`
	UpTolerance   *int  `yaml:"up_tolerance"`
	DownTolerance *int  `yaml:"down_tolerance"`
	PinStart      *int  `yaml:"pin_start"`
}

// Event is one notification burst. Exactly one field is set.
type Event struct {
	Scroll   []int `yaml:"scroll,omitempty"`
	Header   *int  `yaml:"header,omitempty"`
	Document *int  `yaml:"document,omitempty"`
	Viewport *int  `yaml:"viewport,omitempty"`
}

var errEmptyEvent = errors.New("event sets no field")

// Apply returns base with the overrides applied.
func (o Overrides) Apply(base headroom.Options) headroom.Options {
	if o.Pin != nil {
		base.Pin = *o.Pin
	}
	if o.UpTolerance != nil {
		base.UpTolerance = *o.UpTolerance
	}
	if o.DownTolerance != nil {
		base.DownTolerance = *o.DownTolerance
	}
	if o.PinStart != nil {
		base.PinStart = *o.PinStart
	}
	return base
}

// Parse decodes and validates a YAML trace.
func Parse(data []byte) (*Trace, error) {
	var tr Trace
	if err := yaml.Unmarshal(data, &tr); err != nil {
		return nil, fmt.Errorf("parse trace: %w", err)
	}
	if tr.Viewport <= 0 || tr.Document <= 0 {
		return nil, fmt.Errorf("trace needs positive viewport and document heights")
	}
	for i, ev := range tr.Events {
		set := 0
		if len(ev.Scroll) > 0 {
			set++
		}
		for _, p := range []*int{ev.Header, ev.Document, ev.Viewport} {
			if p != nil {
				set++
			}
		}
		if set != 1 {
			return nil, fmt.Errorf("event %d: %w", i+1, eventError(set))
		}
	}
	return &tr, nil
}

func eventError(set int) error {
	if set == 0 {
		return errEmptyEvent
	}
	return fmt.Errorf("event sets %d fields, want 1", set)
}

// Load reads a trace file.
func Load(path string) (*Trace, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read trace: %w", err)
	}
	return Parse(data)
}
