package game

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const gridSpacing = 40

var (
	fieldColor   = color.RGBA{R: 16, G: 22, B: 18, A: 255}
	gridColor    = color.RGBA{R: 34, G: 48, B: 38, A: 255}
	barColor     = color.RGBA{R: 10, G: 12, B: 10, A: 255}
	barEdgeColor = color.RGBA{R: 60, G: 90, B: 60, A: 255}
	dimColor     = color.RGBA{R: 0, G: 0, B: 0, A: 150}
	textColor    = color.RGBA{R: 220, G: 230, B: 220, A: 255}
	mutedColor   = color.RGBA{R: 130, G: 150, B: 130, A: 255}
)

// Draw renders one frame. It never mutates simulation state.
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(fieldColor)
	drawGrid(screen, ScreenWidth, ScreenHeight, gridSpacing, gridColor)

	w := a.world
	drawTank(screen, w.Player())
	for _, e := range w.Enemies() {
		drawTank(screen, e)
	}
	for _, b := range w.Bullets() {
		if b.Active {
			vector.FillCircle(screen, float32(b.X), float32(b.Y), bulletRadius, b.Owner.Color(), true)
		}
	}
	drawParticles(screen, w.Particles())

	if !w.Running() {
		a.drawOverlay(screen)
	}
	a.drawHUD(screen)
}

func drawGrid(screen *ebiten.Image, w, h, spacing int, c color.Color) {
	for x := 0; x <= w; x += spacing {
		vector.StrokeLine(screen, float32(x), 0, float32(x), float32(h), 1, c, false)
	}
	for y := 0; y <= h; y += spacing {
		vector.StrokeLine(screen, 0, float32(y), float32(w), float32(y), 1, c, false)
	}
}

// drawTank draws a round hull, a darker turret and a barrel along the heading.
func drawTank(screen *ebiten.Image, t *Tank) {
	if t == nil {
		return
	}
	x, y := float32(t.X), float32(t.Y)
	r := float32(t.Radius())
	vector.FillCircle(screen, x, y, r, t.Color, true)
	vector.StrokeCircle(screen, x, y, r, 2, shade(t.Color, 0.5), true)
	vector.FillCircle(screen, x, y, r*0.5, shade(t.Color, 0.65), true)

	reach := t.Size * muzzleOffset
	bx := x + float32(math.Cos(t.Angle)*reach)
	by := y + float32(math.Sin(t.Angle)*reach)
	vector.StrokeLine(screen, x, y, bx, by, 6, shade(t.Color, 0.4), true)
}

// drawParticles fades each spark by its remaining life.
func drawParticles(screen *ebiten.Image, ps *ParticleSystem) {
	for _, p := range ps.P {
		c := color.NRGBA{R: p.Color.R, G: p.Color.G, B: p.Color.B, A: uint8(255 * p.Alpha())}
		vector.FillCircle(screen, float32(p.X), float32(p.Y), 2.5, c, true)
	}
}

func (a *App) drawOverlay(screen *ebiten.Image) {
	vector.FillRect(screen, 0, 0, ScreenWidth, ScreenHeight, dimColor, false)

	var title, hint string
	switch a.world.Phase() {
	case PhaseIdle:
		title = "TANK SKIRMISH"
		hint = "Click the field or press Start. Arrows/WASD move, Space fires, P pauses, R resets."
	case PhasePaused:
		title = "PAUSED"
		hint = "Press P or Resume to continue."
	case PhaseGameOver:
		title = "DEFEATED"
		hint = fmt.Sprintf("Final score %d. Press R or Reset to play again.", a.world.Score())
	}
	a.drawCentered(screen, title, ScreenHeight/2-20, textColor)
	a.drawCentered(screen, hint, ScreenHeight/2+4, mutedColor)
}

func (a *App) drawHUD(screen *ebiten.Image) {
	top := float32(ScreenHeight)
	vector.FillRect(screen, 0, top, ScreenWidth, HUDBarHeight, barColor, false)
	vector.StrokeLine(screen, 0, top, ScreenWidth, top, 2, barEdgeColor, false)

	hud := a.world.HUD()
	a.drawText(screen, hud.Score, 12, ScreenHeight+8, textColor)
	a.drawText(screen, hud.Lives, 140, ScreenHeight+8, textColor)
	a.drawText(screen, hud.Status, 12, ScreenHeight+28, textColor)
	if recent := a.world.Events().Recent(1); len(recent) > 0 {
		a.drawText(screen, recent[0].String(), 12, ScreenHeight+48, mutedColor)
	}

	for _, b := range a.buttons {
		bx, by := float32(b.X), float32(b.Y)
		vector.FillRect(screen, bx, by, float32(b.W), float32(b.H), color.RGBA{R: 26, G: 38, B: 28, A: 255}, false)
		vector.StrokeRect(screen, bx, by, float32(b.W), float32(b.H), 1, barEdgeColor, false)
		label := b.Label()
		tw, th := text.Measure(label, a.face, 0)
		a.drawText(screen, label, float64(b.X)+(float64(b.W)-tw)/2, float64(b.Y)+(float64(b.H)-th)/2, textColor)
	}
}

func (a *App) drawText(dst *ebiten.Image, s string, x, y float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(dst, s, a.face, op)
}

func (a *App) drawCentered(dst *ebiten.Image, s string, y float64, c color.Color) {
	w, _ := text.Measure(s, a.face, 0)
	a.drawText(dst, s, (ScreenWidth-w)/2, y, c)
}

// shade scales the colour channels by f, keeping alpha.
func shade(c color.RGBA, f float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: c.A,
	}
}
