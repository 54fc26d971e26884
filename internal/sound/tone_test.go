package sound

import (
	"testing"
	"time"
)

func sample(buf []byte, i int) int16 {
	return int16(uint16(buf[i*4]) | uint16(buf[i*4+1])<<8)
}

func TestToneLengthAndChannels(t *testing.T) {
	buf := Tone(440, 100*time.Millisecond, 0.5)
	if want := 4410 * 4; len(buf) != want {
		t.Fatalf("len = %d, want %d", len(buf), want)
	}
	for i := 0; i < len(buf)/4; i++ {
		if buf[i*4] != buf[i*4+2] || buf[i*4+1] != buf[i*4+3] {
			t.Fatalf("sample %d: left and right differ", i)
		}
	}
}

func TestToneAlternatesSign(t *testing.T) {
	// 441Hz flips every 50 samples.
	buf := Tone(441, 100*time.Millisecond, 0.5)
	if s := sample(buf, 10); s <= 0 {
		t.Fatalf("sample 10 = %d, want positive", s)
	}
	if s := sample(buf, 60); s >= 0 {
		t.Fatalf("sample 60 = %d, want negative", s)
	}
}

func TestToneFadesOut(t *testing.T) {
	buf := Tone(441, 100*time.Millisecond, 0.5)
	n := len(buf) / 4
	first, last := sample(buf, 0), sample(buf, n-1)
	if abs(last) >= abs(first) {
		t.Fatalf("tail %d not quieter than head %d", last, first)
	}
}

func TestToneInvalid(t *testing.T) {
	if Tone(0, time.Second, 1) != nil || Tone(440, 0, 1) != nil {
		t.Fatalf("expected nil for empty tone")
	}
}

func TestChordConcatenates(t *testing.T) {
	buf := Chord([]float64{440, 550}, 10*time.Millisecond, 0.2)
	if want := 2 * 441 * 4; len(buf) != want {
		t.Fatalf("len = %d, want %d", len(buf), want)
	}
}

func abs(v int16) int16 {
	if v < 0 {
		return -v
	}
	return v
}
