// Package controller ties the input router, the slingshot handle, the
// question field and the reveal sequence together. One Update call is one
// frame; everything runs on the caller's goroutine.
package controller

import (
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"slingshot/internal/handle"
	"slingshot/internal/input"
	"slingshot/internal/reveal"
	"slingshot/internal/textfield"
)

// Cues are the sounds played during a reveal.
type Cues interface {
	Tick()
	Chime()
}

type silent struct{}

func (silent) Tick()  {}
func (silent) Chime() {}

type Options struct {
	Geometry handle.Geometry
	Timing   reveal.Timing
	Texts    reveal.Texts
	Clock    clockwork.Clock
	Source   input.Source
	Keys     input.Keys
	Picker   reveal.Picker
	Cues     Cues // optional
}

type Controller struct {
	source input.Source
	keys   input.Keys
	router *input.Router

	handle *handle.Handle
	field  *textfield.Field
	seq    *reveal.Sequencer

	chars []rune
}

func New(opts Options) *Controller {
	cues := opts.Cues
	if cues == nil {
		cues = silent{}
	}
	clock := opts.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	field := textfield.New(textfield.DefaultMaxLen)
	seq := reveal.New(clock, opts.Timing, opts.Texts, field, opts.Picker)
	seq.OnBlink(func(text string) {
		if text != "" {
			cues.Tick()
		}
	})
	seq.OnPhase(func(p reveal.Phase) {
		if p == reveal.Revealing {
			cues.Chime()
		}
	})

	return &Controller{
		source: opts.Source,
		keys:   opts.Keys,
		router: input.NewRouter(),
		handle: handle.New(opts.Geometry),
		field:  field,
		seq:    seq,
	}
}

func (c *Controller) Handle() *handle.Handle       { return c.handle }
func (c *Controller) Field() *textfield.Field      { return c.field }
func (c *Controller) Sequencer() *reveal.Sequencer { return c.seq }

// Update runs one frame: pointer events, typing, the reveal schedule and
// finally the handle's easing step.
func (c *Controller) Update() {
	for _, ev := range c.router.Route(c.source.Snapshot()) {
		c.Pointer(ev)
	}
	c.typing()

	c.seq.Update()
	c.handle.Tick()
}

// Pointer applies a single routed event.
func (c *Controller) Pointer(ev input.Event) {
	switch ev.Kind {
	case input.Down:
		c.handle.PointerDown(ev.Pos, c.seq.Locked())
	case input.Move:
		c.handle.PointerMove(ev.Pos)
	case input.Up:
		if c.handle.PointerUp() && !c.seq.Start() {
			log.Warn().Msg("release ignored, reveal already running")
		}
	}
}

func (c *Controller) typing() {
	if c.keys == nil {
		return
	}
	c.chars = c.keys.AppendChars(c.chars[:0])
	if len(c.chars) > 0 {
		c.field.Insert(c.chars)
	}
	if c.keys.Backspace() {
		c.field.Backspace()
	}
}
