package game

// Button is a clickable HUD control in screen coordinates.
type Button struct {
	X, Y, W, H int
	Label      func() string
	OnClick    func()
}

// Contains reports whether (x,y) is inside the button.
func (b *Button) Contains(x, y int) bool {
	return x >= b.X && x < b.X+b.W && y >= b.Y && y < b.Y+b.H
}

const (
	buttonW   = 90
	buttonH   = 28
	buttonGap = 8
)

func (a *App) newButtons() []*Button {
	y := ScreenHeight + (HUDBarHeight-buttonH)/2
	x := ScreenWidth - 3*(buttonW+buttonGap)
	mk := func(i int, label func() string, fn func()) *Button {
		return &Button{X: x + i*(buttonW+buttonGap), Y: y, W: buttonW, H: buttonH, Label: label, OnClick: fn}
	}
	return []*Button{
		mk(0, func() string { return "Start" }, a.world.Start),
		mk(1, func() string {
			if a.world.Phase() == PhasePaused {
				return "Resume"
			}
			return "Pause"
		}, a.world.TogglePause),
		mk(2, func() string { return "Reset" }, a.world.Reset),
	}
}
