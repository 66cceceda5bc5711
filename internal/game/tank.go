package game

import (
	"image/color"
	"math"

	"github.com/google/uuid"
)

// TickContext carries what a tank needs to advance one tick.
type TickContext struct {
	DT     float64 // elapsed ticks since the previous update
	Bounds Bounds
}

// Tank is the shared body of the player and the enemies. Behaviour differs
// only through its Controller.
type Tank struct {
	ID       uuid.UUID
	X, Y     float64
	Angle    float64 // heading in radians, 0 = east, +π/2 = south
	Size     float64
	Speed    float64
	Color    color.RGBA
	Cooldown float64 // ticks until the next shot is allowed

	ctrl Controller
}

func newTank(x, y, angle, speed float64, col color.RGBA, ctrl Controller) *Tank {
	return &Tank{
		ID:    uuid.New(),
		X:     x,
		Y:     y,
		Angle: angle,
		Size:  tankSize,
		Speed: speed,
		Color: col,
		ctrl:  ctrl,
	}
}

// NewPlayerTank creates a player tank facing north, steered by in.
func NewPlayerTank(x, y float64, in Input) *Tank {
	return newTank(x, y, -math.Pi/2, playerSpeed, playerColor, &PlayerController{Input: in})
}

// NewEnemyTank creates an enemy tank that wanders using rng.
func NewEnemyTank(x, y float64, rng Rand) *Tank {
	return newTank(x, y, math.Pi/2, enemySpeed, enemyColor, &WanderController{Rand: rng})
}

// Controller returns the steering policy.
func (t *Tank) Controller() Controller {
	return t.ctrl
}

// IsPlayer reports whether the tank is driven by keyboard input.
func (t *Tank) IsPlayer() bool {
	_, ok := t.ctrl.(*PlayerController)
	return ok
}

// Owner is the tag stamped on bullets this tank fires.
func (t *Tank) Owner() Owner {
	if t.IsPlayer() {
		return OwnerPlayer
	}
	return OwnerEnemy
}

// Update ticks the cooldown, lets the controller steer, then clamps the body
// inside the playfield.
func (t *Tank) Update(tc TickContext) {
	t.Cooldown = math.Max(0, t.Cooldown-tc.DT)
	if t.ctrl != nil {
		t.ctrl.Steer(t, tc)
	}
	t.X, t.Y = tc.Bounds.clampCircle(t.X, t.Y, t.Size)
}

// TryShoot fires a bullet from the muzzle when the cooldown has expired.
// It returns the (possibly grown) bullet list and whether a shot was fired.
func (t *Tank) TryShoot(bullets []*Bullet, owner Owner) ([]*Bullet, bool) {
	if t.Cooldown > 0 {
		return bullets, false
	}
	off := t.Size * muzzleOffset
	b := NewBullet(t.X+math.Cos(t.Angle)*off, t.Y+math.Sin(t.Angle)*off, t.Angle, owner)
	t.Cooldown = fireCooldown
	return append(bullets, b), true
}

// Radius is half the body size.
func (t *Tank) Radius() float64 {
	return t.Size / 2
}

// Overlaps reports whether two tank bodies intersect.
func (t *Tank) Overlaps(o *Tank) bool {
	return dist(t.X, t.Y, o.X, o.Y) < (t.Size+o.Size)/2
}

// Contains reports whether a point lies inside the tank body.
func (t *Tank) Contains(x, y float64) bool {
	return dist(t.X, t.Y, x, y) < t.Radius()
}

// removeTanks compacts tanks in place, dropping every tank whose ID is in gone.
func removeTanks(tanks []*Tank, gone map[uuid.UUID]struct{}) []*Tank {
	if len(gone) == 0 {
		return tanks
	}
	kept := tanks[:0]
	for _, t := range tanks {
		if _, dead := gone[t.ID]; !dead {
			kept = append(kept, t)
		}
	}
	for i := len(kept); i < len(tanks); i++ {
		tanks[i] = nil
	}
	return kept
}
