package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"slingshot/internal/controller"
	"slingshot/internal/entity"
)

// --- Colors ---
var (
	ColBg          = color.RGBA{0x2d, 0x2d, 0x2d, 0xff}
	ColField       = color.RGBA{0x45, 0x45, 0x45, 0xff}
	ColFieldOff    = color.RGBA{0x33, 0x33, 0x33, 0xff}
	ColFieldRim    = color.RGBA{0xa9, 0xa9, 0xa9, 0xff}
	ColFieldRimOff = color.RGBA{0x5a, 0x5a, 0x5a, 0xff}
)

// Debug font cell size.
const (
	glyphW = 6
	glyphH = 16
)

const (
	fieldHeight = 28
	fieldMargin = 40
	answerY     = 70
)

// Game hosts the controller in ebiten's Update/Draw loop.
type Game struct {
	Tick int

	width, height int

	ctl   *controller.Controller
	sling *entity.Slingshot
}

func NewGame(width, height int, ctl *controller.Controller) *Game {
	return &Game{width: width, height: height, ctl: ctl}
}

// --- UPDATE ---
func (g *Game) Update() error {
	g.Tick++
	g.ctl.Update()
	return nil
}

// --- DRAW ---
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(ColBg)

	h := g.ctl.Handle()
	if g.sling == nil {
		g.sling = entity.NewSlingshot(h.Geometry(), g.width, g.height)
	}
	g.sling.Draw(screen, h.Pos())

	if seq := g.ctl.Sequencer(); seq.Visible() {
		g.printCentered(screen, seq.Text(), answerY)
	}
	g.drawField(screen)
}

func (g *Game) drawField(screen *ebiten.Image) {
	x := float32(fieldMargin)
	y := float32(g.height - fieldMargin - fieldHeight)
	w := float32(g.width - 2*fieldMargin)

	field := g.ctl.Field()
	fill, rim := ColField, ColFieldRim
	if field.Disabled() {
		fill, rim = ColFieldOff, ColFieldRimOff
	}
	vector.DrawFilledRect(screen, x, y, w, fieldHeight, fill, false)
	vector.StrokeRect(screen, x, y, w, fieldHeight, 1, rim, false)

	text := field.Value()
	if !field.Disabled() && g.Tick%60 < 30 {
		text += "_"
	}
	ty := int(y) + (fieldHeight-glyphH)/2
	ebitenutil.DebugPrintAt(screen, text, int(x)+6, ty)

	hint := "Type a question, then pull the handle."
	if field.Disabled() {
		hint = "Thinking..."
	}
	ebitenutil.DebugPrintAt(screen, hint, int(x), int(y)-glyphH-4)
}

func (g *Game) printCentered(screen *ebiten.Image, s string, y int) {
	x := (g.width - len([]rune(s))*glyphW) / 2
	ebitenutil.DebugPrintAt(screen, s, x, y)
}

func (g *Game) Layout(w, h int) (int, int) {
	return g.width, g.height
}
