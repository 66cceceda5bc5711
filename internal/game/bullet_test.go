package game

import (
	"math"
	"testing"
)

func TestBullet_MovesAlongHeading(t *testing.T) {
	b := NewBullet(100, 100, math.Pi/2, OwnerEnemy)
	b.Update(DefaultBounds())
	if !near(b.X, 100) || !near(b.Y, 100+bulletSpeed) {
		t.Fatalf("expected (100,%.0f), got (%.4f,%.4f)", 100+bulletSpeed, b.X, b.Y)
	}
	if !b.Active {
		t.Fatalf("expected bullet to stay active inside the field")
	}
}

func TestBullet_CulledPastMargin(t *testing.T) {
	b := NewBullet(ScreenWidth+bulletMargin-bulletSpeed+1, 300, 0, OwnerPlayer)
	b.Update(DefaultBounds())
	if b.Active {
		t.Fatalf("expected bullet at x=%.1f to be culled", b.X)
	}

	edge := NewBullet(ScreenWidth+bulletMargin-bulletSpeed, 300, 0, OwnerPlayer)
	edge.Update(DefaultBounds())
	if !edge.Active {
		t.Fatalf("expected bullet exactly at the margin to stay active")
	}
}

func TestBullet_InactiveNeverMoves(t *testing.T) {
	b := NewBullet(-20, 300, math.Pi, OwnerPlayer)
	b.Update(DefaultBounds())
	if b.Active {
		t.Fatalf("expected bullet to be culled")
	}
	x, y := b.X, b.Y
	for i := 0; i < 10; i++ {
		b.Update(DefaultBounds())
	}
	if b.Active || b.X != x || b.Y != y {
		t.Fatalf("expected inactive bullet frozen at (%.1f,%.1f), got (%.1f,%.1f) active=%v", x, y, b.X, b.Y, b.Active)
	}
}

func TestBullet_EventuallyLeavesField(t *testing.T) {
	for _, dir := range []float64{0, math.Pi / 3, math.Pi, -math.Pi / 2, 2.5} {
		b := NewBullet(ScreenWidth/2, ScreenHeight/2, dir, OwnerEnemy)
		ticks := 0
		for b.Active && ticks < 1000 {
			b.Update(DefaultBounds())
			ticks++
		}
		if b.Active {
			t.Fatalf("dir %.2f: expected bullet to leave the field", dir)
		}
	}
}

func TestOwner_Colors(t *testing.T) {
	if OwnerPlayer.Color() != playerShellColor || OwnerEnemy.Color() != enemyShellColor {
		t.Fatalf("unexpected shell colours")
	}
	if OwnerPlayer.String() != "player" || OwnerEnemy.String() != "enemy" {
		t.Fatalf("unexpected owner names %q %q", OwnerPlayer, OwnerEnemy)
	}
}

func TestCompactBullets_KeepsActiveInOrder(t *testing.T) {
	a := NewBullet(1, 1, 0, OwnerPlayer)
	b := NewBullet(2, 2, 0, OwnerPlayer)
	c := NewBullet(3, 3, 0, OwnerEnemy)
	b.Active = false
	got := compactBullets([]*Bullet{a, b, c})
	if len(got) != 2 || got[0] != a || got[1] != c {
		t.Fatalf("expected [a c], got %d bullets", len(got))
	}
}
