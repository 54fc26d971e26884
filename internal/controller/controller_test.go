package controller

import (
	"math/rand"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"

	"slingshot/internal/answer"
	"slingshot/internal/config"
	"slingshot/internal/handle"
	"slingshot/internal/input"
	"slingshot/internal/reveal"
)

type scriptedSource struct {
	snap input.Snapshot
}

func (s *scriptedSource) Snapshot() input.Snapshot { return s.snap }

type scriptedKeys struct {
	pending []rune
	back    int
}

func (k *scriptedKeys) AppendChars(rs []rune) []rune {
	rs = append(rs, k.pending...)
	k.pending = nil
	return rs
}

func (k *scriptedKeys) Backspace() bool {
	if k.back == 0 {
		return false
	}
	k.back--
	return true
}

type countingCues struct {
	ticks, chimes int
}

func (c *countingCues) Tick()  { c.ticks++ }
func (c *countingCues) Chime() { c.chimes++ }

type rig struct {
	t       *testing.T
	clock   *clockwork.FakeClock
	source  *scriptedSource
	keys    *scriptedKeys
	cues    *countingCues
	picker  *answer.Picker
	answers []string
	ctl     *Controller
}

func newRig(t *testing.T) *rig {
	t.Helper()
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("config.Load: %v", err)
	}
	picker, err := answer.New(cfg.Answers, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatalf("answer.New: %v", err)
	}
	r := &rig{
		t:       t,
		clock:   clockwork.NewFakeClock(),
		source:  &scriptedSource{},
		keys:    &scriptedKeys{},
		cues:    &countingCues{},
		picker:  picker,
		answers: cfg.Answers,
	}
	r.ctl = New(Options{
		Geometry: handle.DefaultGeometry(),
		Timing:   reveal.DefaultTiming(),
		Texts:    reveal.DefaultTexts(),
		Clock:    r.clock,
		Source:   r.source,
		Keys:     r.keys,
		Picker:   picker,
		Cues:     r.cues,
	})
	return r
}

// frame sets the mouse state, advances the clock by one 60Hz frame and
// runs Update.
func (r *rig) frame(p handle.Vec, down bool) {
	r.source.snap = input.Snapshot{Mouse: p, MouseInside: true, MouseDown: down}
	r.clock.Advance(time.Second / 60)
	r.ctl.Update()
}

// idle runs frames with the mouse parked until d has passed.
func (r *rig) idle(d time.Duration) {
	park := handle.Vec{X: 5, Y: 5}
	for elapsed := time.Duration(0); elapsed < d; elapsed += time.Second / 60 {
		r.frame(park, false)
	}
}

// pull presses the ring, drags by off and releases.
func (r *rig) pull(off handle.Vec) {
	grip := r.ctl.Handle().Pos().Add(handle.Vec{X: 10, Y: 0})
	r.frame(grip, false)
	r.frame(grip, true)
	r.frame(grip.Add(off), true)
	r.frame(grip.Add(off), false)
}

func (r *rig) typeText(s string) {
	r.keys.pending = []rune(s)
	r.idle(time.Second / 60)
}

func TestPullRevealsAnswerAndUnlocks(t *testing.T) {
	r := newRig(t)
	r.typeText("hello")
	if got := r.ctl.Field().Value(); got != "hello" {
		t.Fatalf("field = %q, want hello", got)
	}

	r.pull(handle.Vec{X: 80, Y: 40})
	seq := r.ctl.Sequencer()
	if !seq.Locked() || !r.ctl.Field().Disabled() {
		t.Fatalf("release did not lock input")
	}

	// Typing is ignored while locked.
	r.typeText("!")
	if got := r.ctl.Field().Value(); got != "hello" {
		t.Fatalf("field changed while locked: %q", got)
	}

	r.idle(4600 * time.Millisecond)
	text := seq.Text()
	found := false
	for _, a := range r.answers {
		if a == text {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("revealed %q, not one of the answers", text)
	}

	r.idle(1600 * time.Millisecond)
	if seq.Locked() || r.ctl.Field().Disabled() || r.ctl.Field().Value() != "" {
		t.Fatalf("not reset: locked=%v disabled=%v value=%q",
			seq.Locked(), r.ctl.Field().Disabled(), r.ctl.Field().Value())
	}
	if r.cues.ticks != 3 || r.cues.chimes != 1 {
		t.Fatalf("cues ticks=%d chimes=%d, want 3 and 1", r.cues.ticks, r.cues.chimes)
	}
}

func TestPressIgnoredWhileRevealRuns(t *testing.T) {
	r := newRig(t)
	r.typeText("hello")
	r.pull(handle.Vec{X: 0, Y: 120})
	r.idle(2 * time.Second)

	grip := r.ctl.Handle().Pos().Add(handle.Vec{X: 10, Y: 0})
	r.frame(grip, false)
	r.frame(grip, true)
	if r.ctl.Handle().State() != handle.Idle {
		t.Fatalf("drag started while locked")
	}
	r.frame(grip.Add(handle.Vec{X: 50, Y: 0}), true)
	r.frame(grip, false)
	if r.ctl.Sequencer().Phase() == reveal.Idle {
		t.Fatalf("sequence ended early")
	}
}

func TestClickWithoutMoveDoesNotReveal(t *testing.T) {
	r := newRig(t)
	r.typeText("hello")
	grip := r.ctl.Handle().Pos().Add(handle.Vec{X: 0, Y: 12})
	r.frame(grip, false)
	r.frame(grip, true)
	r.frame(grip, false)
	if r.ctl.Sequencer().Locked() {
		t.Fatalf("click without movement started a reveal")
	}
	if r.ctl.Handle().State() != handle.Idle {
		t.Fatalf("handle still dragging after release")
	}
}

func TestPressArrivingWithCursorDoesNotReveal(t *testing.T) {
	r := newRig(t)
	r.typeText("hello")
	grip := r.ctl.Handle().Pos().Add(handle.Vec{X: 10, Y: 0})

	// The cursor travels from the parked spot onto the ring and the button
	// goes down within the same frame.
	r.frame(grip, true)
	if r.ctl.Handle().State() != handle.Dragging {
		t.Fatalf("press on the ring did not start a drag")
	}
	if r.ctl.Handle().Moved() {
		t.Fatalf("press frame counted as drag movement")
	}
	r.frame(grip, false)
	if r.ctl.Sequencer().Locked() {
		t.Fatalf("stationary click started a reveal")
	}
}

func TestBlankQuestionShowsPrompt(t *testing.T) {
	r := newRig(t)
	r.typeText("   ")
	r.pull(handle.Vec{X: -60, Y: 0})
	r.idle(5 * time.Second)
	if got, want := r.ctl.Sequencer().Text(), reveal.DefaultTexts().EmptyPrompt; got != want {
		t.Fatalf("text = %q, want %q", got, want)
	}
}

func TestHandleReturnsToRestAfterRelease(t *testing.T) {
	r := newRig(t)
	r.pull(handle.Vec{X: 300, Y: 0})
	if d := r.ctl.Handle().Distance(); d > 200 {
		t.Fatalf("distance after release = %f, exceeds max length", d)
	}
	r.idle(3 * time.Second)
	if d := r.ctl.Handle().Distance(); d > 1 {
		t.Fatalf("distance after 3s = %f, want under 1px", d)
	}
}

func TestBackspaceEditsField(t *testing.T) {
	r := newRig(t)
	r.typeText("why")
	r.keys.back = 1
	r.idle(time.Second / 60)
	if got := r.ctl.Field().Value(); got != "wh" {
		t.Fatalf("field = %q, want wh", got)
	}
}
