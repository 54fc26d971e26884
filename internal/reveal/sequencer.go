// Package reveal runs the timed "thinking" sequence that ends in an answer.
//
// The sequencer is polled from the game loop and reads time from a
// clockwork.Clock, so it never sleeps and never spawns goroutines. Tests
// drive it with a fake clock.
package reveal

import (
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

// Timing is the schedule of a reveal, measured from its start.
type Timing struct {
	BlinkInterval time.Duration // placeholder toggle period
	BlinkDuration time.Duration // blinking stops here
	Settle        time.Duration // pause between blink stop and answer
	Hold          time.Duration // answer shown before the field unlocks
}

func DefaultTiming() Timing {
	return Timing{
		BlinkInterval: 500 * time.Millisecond,
		BlinkDuration: 3500 * time.Millisecond,
		Settle:        1000 * time.Millisecond,
		Hold:          1500 * time.Millisecond,
	}
}

// Toggles is how many times the placeholder flips during one reveal.
func (t Timing) Toggles() int {
	if t.BlinkInterval <= 0 {
		return 0
	}
	return int(t.BlinkDuration / t.BlinkInterval)
}

// Total is the length of a full reveal.
func (t Timing) Total() time.Duration {
	return t.BlinkDuration + t.Settle + t.Hold
}

// Texts are the fixed strings the sequencer may display.
type Texts struct {
	Placeholder string // shown on alternate blinks
	EmptyPrompt string // shown instead of an answer when no question was typed
}

func DefaultTexts() Texts {
	return Texts{Placeholder: "...", EmptyPrompt: "Ask a question"}
}

// Field is the question box the sequencer locks and clears.
type Field interface {
	Blank() bool
	Clear()
	SetDisabled(bool)
}

// Picker supplies answers.
type Picker interface {
	Pick() string
}

// Sequencer owns the input lock and the answer display.
type Sequencer struct {
	clock  clockwork.Clock
	timing Timing
	texts  Texts
	field  Field
	picker Picker

	phase   Phase
	locked  bool
	started time.Time
	toggles int
	text    string
	visible bool

	onPhase []func(Phase)
	onBlink []func(string)
}

func New(clock clockwork.Clock, timing Timing, texts Texts, field Field, picker Picker) *Sequencer {
	return &Sequencer{
		clock:  clock,
		timing: timing,
		texts:  texts,
		field:  field,
		picker: picker,
	}
}

// OnPhase registers fn to run on every phase change.
func (s *Sequencer) OnPhase(fn func(Phase)) { s.onPhase = append(s.onPhase, fn) }

// OnBlink registers fn to run on every placeholder toggle with the new text.
func (s *Sequencer) OnBlink(fn func(string)) { s.onBlink = append(s.onBlink, fn) }

func (s *Sequencer) Phase() Phase  { return s.phase }
func (s *Sequencer) Locked() bool  { return s.locked }
func (s *Sequencer) Text() string  { return s.text }
func (s *Sequencer) Visible() bool { return s.visible }

// Start begins a reveal. It returns false if one is already running.
func (s *Sequencer) Start() bool {
	if s.phase != Idle {
		return false
	}
	s.started = s.clock.Now()
	s.toggles = 0

	s.setPhase(Locking)
	s.locked = true
	s.field.SetDisabled(true)
	s.text = ""
	s.visible = true

	s.setPhase(Blinking)
	return true
}

// Update fires every step that is due at the current clock reading, in
// order. Call it once per frame; a late call catches up.
func (s *Sequencer) Update() {
	if s.phase == Idle {
		return
	}
	elapsed := s.clock.Since(s.started)

	if s.phase == Blinking {
		for s.toggles < s.timing.Toggles() && elapsed >= time.Duration(s.toggles+1)*s.timing.BlinkInterval {
			s.blink()
		}
		if elapsed < s.timing.BlinkDuration {
			return
		}
		s.setPhase(Waiting)
	}

	if s.phase == Waiting {
		if elapsed < s.timing.BlinkDuration+s.timing.Settle {
			return
		}
		s.reveal()
		s.setPhase(Revealing)
	}

	if s.phase == Revealing {
		if elapsed < s.timing.Total() {
			return
		}
		s.setPhase(Resetting)
		s.field.Clear()
		s.field.SetDisabled(false)
		s.locked = false
		s.setPhase(Idle)
	}
}

// blink flips the placeholder. The first toggle shows nothing, the second
// shows the placeholder, and so on.
func (s *Sequencer) blink() {
	if s.toggles%2 == 0 {
		s.text = ""
	} else {
		s.text = s.texts.Placeholder
	}
	s.toggles++
	for _, fn := range s.onBlink {
		fn(s.text)
	}
}

func (s *Sequencer) reveal() {
	if s.field.Blank() {
		s.text = s.texts.EmptyPrompt
		log.Debug().Msg("no question asked")
	} else {
		s.text = s.picker.Pick()
		log.Debug().Str("answer", s.text).Msg("answer picked")
	}
	s.visible = true
}

func (s *Sequencer) setPhase(p Phase) {
	s.phase = p
	log.Debug().Stringer("phase", p).Msg("reveal phase")
	for _, fn := range s.onPhase {
		fn(p)
	}
}
