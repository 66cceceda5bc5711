package game

import (
	"image/color"
	"math"
)

// Owner tags a bullet with the side that fired it.
type Owner uint8

const (
	OwnerPlayer Owner = iota
	OwnerEnemy
)

func (o Owner) String() string {
	if o == OwnerPlayer {
		return "player"
	}
	return "enemy"
}

// Color returns the shell colour for the owner.
func (o Owner) Color() color.RGBA {
	if o == OwnerPlayer {
		return playerShellColor
	}
	return enemyShellColor
}

// Bullet is a straight-line projectile. It is culled once it leaves the
// playfield by more than bulletMargin or registers a hit.
type Bullet struct {
	X, Y   float64
	Dir    float64 // radians
	Owner  Owner
	Active bool
}

// NewBullet creates an active bullet.
func NewBullet(x, y, dir float64, owner Owner) *Bullet {
	return &Bullet{X: x, Y: y, Dir: dir, Owner: owner, Active: true}
}

// Update advances the bullet one tick. Inactive bullets stay where they are.
func (b *Bullet) Update(bounds Bounds) {
	if !b.Active {
		return
	}
	b.X += bulletSpeed * math.Cos(b.Dir)
	b.Y += bulletSpeed * math.Sin(b.Dir)
	if bounds.outside(b.X, b.Y, bulletMargin) {
		b.Active = false
	}
}

// compactBullets drops inactive bullets in place.
func compactBullets(bullets []*Bullet) []*Bullet {
	kept := bullets[:0]
	for _, b := range bullets {
		if b.Active {
			kept = append(kept, b)
		}
	}
	for i := len(kept); i < len(bullets); i++ {
		bullets[i] = nil
	}
	return kept
}
