// Package sound synthesises the short chiptune cues of the reveal sequence.
package sound

import (
	"math"
	"time"
)

const SampleRate = 44100

// Tone renders a square wave as 16-bit little-endian stereo PCM. The last
// quarter fades out so the cue does not click.
func Tone(freq float64, dur time.Duration, vol float64) []byte {
	n := int(int64(dur) * SampleRate / int64(time.Second))
	if n <= 0 || freq <= 0 {
		return nil
	}
	buf := make([]byte, n*4)
	fade := n / 4
	for i := 0; i < n; i++ {
		val := vol
		phase := int(float64(i) * freq * 2 / SampleRate)
		if phase%2 != 0 {
			val = -vol
		}
		if left := n - i; fade > 0 && left < fade {
			val *= float64(left) / float64(fade)
		}

		v := int16(math.Max(-1, math.Min(1, val)) * 32767)
		buf[i*4] = byte(v)
		buf[i*4+1] = byte(v >> 8)
		buf[i*4+2] = byte(v)
		buf[i*4+3] = byte(v >> 8)
	}
	return buf
}

// Chord concatenates tones, each note lasting step.
func Chord(freqs []float64, step time.Duration, vol float64) []byte {
	var out []byte
	for _, f := range freqs {
		out = append(out, Tone(f, step, vol)...)
	}
	return out
}
