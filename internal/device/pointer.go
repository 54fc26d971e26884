// Package device adapts ebiten's mouse, touch and keyboard polling to the
// input interfaces.
package device

import (
	"github.com/hajimehoshi/ebiten/v2"

	"slingshot/internal/handle"
	"slingshot/internal/input"
)

// EbitenSource polls ebiten's mouse and touch state. Width and Height are
// the logical surface size returned from Layout.
type EbitenSource struct {
	Width, Height int

	touchIDs []ebiten.TouchID
}

func (e *EbitenSource) Snapshot() input.Snapshot {
	mx, my := ebiten.CursorPosition()
	s := input.Snapshot{
		Mouse:       handle.Vec{X: float64(mx), Y: float64(my)},
		MouseInside: mx >= 0 && my >= 0 && mx < e.Width && my < e.Height,
		MouseDown:   ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
	}

	e.touchIDs = ebiten.AppendTouchIDs(e.touchIDs[:0])
	for _, id := range e.touchIDs {
		tx, ty := ebiten.TouchPosition(id)
		s.Touches = append(s.Touches, input.Touch{
			ID:  int(id),
			Pos: handle.Vec{X: float64(tx), Y: float64(ty)},
		})
	}
	return s
}
