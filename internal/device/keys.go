package device

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// EbitenKeys reads typed characters from ebiten. Backspace repeats while
// held, like a native text box.
type EbitenKeys struct{}

func (EbitenKeys) AppendChars(rs []rune) []rune {
	return ebiten.AppendInputChars(rs)
}

func (EbitenKeys) Backspace() bool {
	return repeatingKeyPressed(ebiten.KeyBackspace)
}

func repeatingKeyPressed(key ebiten.Key) bool {
	const (
		delay    = 30
		interval = 3
	)
	d := inpututil.KeyPressDuration(key)
	if d == 1 {
		return true
	}
	if d >= delay && (d-delay)%interval == 0 {
		return true
	}
	return false
}
