package game

import "math"

// Controller is a steering policy. Steer moves and turns the tank for one
// tick; WantsFire decides whether the tank pulls the trigger this tick.
type Controller interface {
	Steer(t *Tank, tc TickContext)
	WantsFire() bool
}

// PlayerController drives a tank from the held direction keys.
type PlayerController struct {
	Input Input
}

// Steer moves along the normalised key direction so diagonals are no faster
// than axes. The heading only follows while moving.
func (pc *PlayerController) Steer(t *Tank, _ TickContext) {
	if pc.Input == nil {
		return
	}
	var dx, dy float64
	if pc.Input.Pressed(KeyUp) {
		dy--
	}
	if pc.Input.Pressed(KeyDown) {
		dy++
	}
	if pc.Input.Pressed(KeyLeft) {
		dx--
	}
	if pc.Input.Pressed(KeyRight) {
		dx++
	}
	l := math.Hypot(dx, dy)
	if l == 0 {
		return
	}
	dx /= l
	dy /= l
	t.X += dx * t.Speed
	t.Y += dy * t.Speed
	t.Angle = math.Atan2(dy, dx)
}

// WantsFire is true while the fire key is held.
func (pc *PlayerController) WantsFire() bool {
	return pc.Input != nil && pc.Input.Pressed(KeyFire)
}

// WanderController is the enemy AI: hold a heading for a random duration,
// then pick a new one, with an occasional 90° snap in between. It never stops.
//
// Random draws per tick, in order: when the hold expires, one for the heading
// and one for the next hold; then one for the snap roll, plus one for the snap
// direction when it fires. WantsFire draws one more.
type WanderController struct {
	Rand  Rand
	Timer float64 // ticks until the next heading change
}

func (wc *WanderController) Steer(t *Tank, tc TickContext) {
	wc.Timer -= tc.DT
	if wc.Timer <= 0 {
		t.Angle = wc.Rand.Float64() * 2 * math.Pi
		wc.Timer = wanderMinTicks + wc.Rand.Float64()*wanderSpanTicks
	}
	if wc.Rand.Float64() < wanderTurnChance {
		if wc.Rand.Float64() < 0.5 {
			t.Angle -= math.Pi / 2
		} else {
			t.Angle += math.Pi / 2
		}
	}
	cruise := t.Speed * enemyCruise
	t.X += math.Cos(t.Angle) * cruise
	t.Y += math.Sin(t.Angle) * cruise
}

func (wc *WanderController) WantsFire() bool {
	return wc.Rand.Float64() < enemyFireChance
}
