package device

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/rs/zerolog/log"

	"slingshot/internal/sound"
)

// Cues plays the blink tick and the reveal chime. The zero value is
// silent.
type Cues struct {
	tick  *audio.Player
	chime *audio.Player
}

// NewCues builds the cues on ctx. A nil ctx yields silent cues.
func NewCues(ctx *audio.Context, volume float64) *Cues {
	if ctx == nil {
		return &Cues{}
	}
	p := &Cues{
		tick:  ctx.NewPlayerFromBytes(sound.Tone(880, 40*time.Millisecond, 0.1)),
		chime: ctx.NewPlayerFromBytes(sound.Chord([]float64{523, 659, 784}, 90*time.Millisecond, 0.1)),
	}
	p.tick.SetVolume(volume)
	p.chime.SetVolume(volume)
	return p
}

func (p *Cues) Tick()  { replay(p.tick) }
func (p *Cues) Chime() { replay(p.chime) }

func replay(ap *audio.Player) {
	if ap == nil {
		return
	}
	if err := ap.SetPosition(0); err != nil {
		log.Warn().Err(err).Msg("rewind cue")
		return
	}
	ap.Play()
}
