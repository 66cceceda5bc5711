package game

import (
	"math"
	"math/rand"
	"testing"

	"github.com/google/uuid"
)

func tickCtx() TickContext {
	return TickContext{DT: 1, Bounds: DefaultBounds()}
}

func TestPlayer_DiagonalSpeedMatchesAxial(t *testing.T) {
	axial := NewPlayerTank(400, 300, NewKeySet(KeyUp))
	diag := NewPlayerTank(400, 300, NewKeySet(KeyUp, KeyRight))
	axial.Update(tickCtx())
	diag.Update(tickCtx())

	da := dist(400, 300, axial.X, axial.Y)
	dd := dist(400, 300, diag.X, diag.Y)
	if !near(da, playerSpeed) || !near(dd, playerSpeed) {
		t.Fatalf("expected both to move %.1f, got axial=%.4f diagonal=%.4f", playerSpeed, da, dd)
	}
	if !near(diag.Angle, -math.Pi/4) {
		t.Fatalf("expected heading -π/4 for up+right, got %.4f", diag.Angle)
	}
}

func TestPlayer_OpposingKeysCancel(t *testing.T) {
	tk := NewPlayerTank(400, 300, NewKeySet(KeyLeft, KeyRight))
	tk.Update(tickCtx())
	if tk.X != 400 || tk.Y != 300 {
		t.Fatalf("expected no movement, got (%.1f,%.1f)", tk.X, tk.Y)
	}
}

func TestPlayer_HeadingHoldsWhenIdle(t *testing.T) {
	keys := NewKeySet(KeyLeft)
	tk := NewPlayerTank(400, 300, keys)
	tk.Update(tickCtx())
	if !near(tk.Angle, math.Pi) {
		t.Fatalf("expected heading π while moving left, got %.4f", tk.Angle)
	}
	keys.Release(KeyLeft)
	tk.Update(tickCtx())
	if !near(tk.Angle, math.Pi) {
		t.Fatalf("expected heading to hold at π when idle, got %.4f", tk.Angle)
	}
}

func TestPlayer_StaysInsideBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	keys := NewKeySet()
	tk := NewPlayerTank(400, 300, keys)
	b := DefaultBounds()
	half := tk.Size / 2
	dirs := []Key{KeyUp, KeyDown, KeyLeft, KeyRight}
	for i := 0; i < 5000; i++ {
		if i%60 == 0 {
			keys.Clear()
			for _, k := range dirs {
				if rng.Intn(2) == 0 {
					keys.Press(k)
				}
			}
		}
		tk.Update(tickCtx())
		if tk.X < half || tk.X > b.W-half || tk.Y < half || tk.Y > b.H-half {
			t.Fatalf("tick %d: player left bounds at (%.1f,%.1f)", i, tk.X, tk.Y)
		}
	}
}

func TestEnemy_StaysInsideBounds(t *testing.T) {
	tk := NewEnemyTank(400, 150, rand.New(rand.NewSource(11)))
	b := DefaultBounds()
	half := tk.Size / 2
	for i := 0; i < 5000; i++ {
		tk.Update(tickCtx())
		if tk.X < half || tk.X > b.W-half || tk.Y < half || tk.Y > b.H-half {
			t.Fatalf("tick %d: enemy left bounds at (%.1f,%.1f)", i, tk.X, tk.Y)
		}
	}
}

func TestTryShoot_SpawnsAtMuzzleAndStartsCooldown(t *testing.T) {
	tk := NewPlayerTank(100, 200, NewKeySet())
	tk.Angle = 0
	bullets, fired := tk.TryShoot(nil, OwnerPlayer)
	if !fired || len(bullets) != 1 {
		t.Fatalf("expected one bullet, got fired=%v len=%d", fired, len(bullets))
	}
	b := bullets[0]
	if !near(b.X, 100+tankSize*muzzleOffset) || !near(b.Y, 200) {
		t.Fatalf("expected muzzle at (%.1f,200), got (%.2f,%.2f)", 100+tankSize*muzzleOffset, b.X, b.Y)
	}
	if b.Dir != 0 || b.Owner != OwnerPlayer || !b.Active {
		t.Fatalf("unexpected bullet %+v", *b)
	}
	if tk.Cooldown != fireCooldown {
		t.Fatalf("expected cooldown %.0f, got %.1f", fireCooldown, tk.Cooldown)
	}
}

func TestTryShoot_BlockedDuringCooldown(t *testing.T) {
	tk := NewEnemyTank(100, 100, &seqRand{def: 0.5})
	bullets, _ := tk.TryShoot(nil, OwnerEnemy)
	bullets, fired := tk.TryShoot(bullets, OwnerEnemy)
	if fired || len(bullets) != 1 {
		t.Fatalf("expected the second shot to be blocked, got fired=%v len=%d", fired, len(bullets))
	}
	for i := 0; i < int(fireCooldown); i++ {
		tk.Update(tickCtx())
	}
	if _, fired = tk.TryShoot(bullets, OwnerEnemy); !fired {
		t.Fatalf("expected a shot once the cooldown has run out")
	}
}

func TestUpdate_CooldownFloorsAtZero(t *testing.T) {
	tk := NewPlayerTank(100, 100, NewKeySet())
	tk.Cooldown = 0.5
	tk.Update(TickContext{DT: 2, Bounds: DefaultBounds()})
	if tk.Cooldown != 0 {
		t.Fatalf("expected cooldown floored at 0, got %.2f", tk.Cooldown)
	}
}

func TestWander_HoldsHeadingThenRepicks(t *testing.T) {
	rng := &seqRand{vals: []float64{0.25, 0.5}, def: 0.9}
	tk := NewEnemyTank(400, 60, rng)
	wc := tk.Controller().(*WanderController)

	tk.Update(tickCtx())
	if !near(tk.Angle, math.Pi/2) || wc.Timer != 180 {
		t.Fatalf("expected heading π/2 held for 180, got angle=%.4f timer=%.1f", tk.Angle, wc.Timer)
	}
	for i := 1; i < 180; i++ {
		tk.Update(tickCtx())
	}
	if !near(tk.Angle, math.Pi/2) || wc.Timer != 1 {
		t.Fatalf("expected heading still π/2 with 1 tick left, got angle=%.4f timer=%.1f", tk.Angle, wc.Timer)
	}
	tk.Update(tickCtx())
	if !near(tk.Angle, 0.9*2*math.Pi) {
		t.Fatalf("expected a new heading once the hold expired, got %.4f", tk.Angle)
	}
	if wc.Timer < wanderMinTicks || wc.Timer >= wanderMinTicks+wanderSpanTicks {
		t.Fatalf("hold %.1f outside [120,240)", wc.Timer)
	}
}

func TestWander_CruisesAtEightyPercent(t *testing.T) {
	tk := NewEnemyTank(400, 300, &seqRand{def: 0})
	tk.Update(tickCtx())
	// def 0: heading 0, then a snap roll of 0 (<0.01) with sign draw 0 → -π/2.
	moved := dist(400, 300, tk.X, tk.Y)
	if !near(moved, enemySpeed*enemyCruise) {
		t.Fatalf("expected %.2f px per tick, got %.4f", enemySpeed*enemyCruise, moved)
	}
}

func TestWander_SnapTurnsNinetyDegrees(t *testing.T) {
	rng := &seqRand{vals: []float64{0, 0, 0.005, 0.9}, def: 0.9}
	tk := NewEnemyTank(400, 300, rng)
	tk.Update(tickCtx())
	if !near(tk.Angle, math.Pi/2) {
		t.Fatalf("expected snap from 0 to π/2, got %.4f", tk.Angle)
	}
	if !near(tk.X, 400) || !near(tk.Y, 300+enemySpeed*enemyCruise) {
		t.Fatalf("expected to move south after the snap, got (%.2f,%.2f)", tk.X, tk.Y)
	}
}

func TestWander_FireChance(t *testing.T) {
	wc := &WanderController{Rand: &seqRand{vals: []float64{0.005, 0.5}}}
	if !wc.WantsFire() {
		t.Fatalf("expected a roll under %.2f to fire", enemyFireChance)
	}
	if wc.WantsFire() {
		t.Fatalf("expected a roll of 0.5 not to fire")
	}
}

func TestTank_Variants(t *testing.T) {
	p := NewPlayerTank(0, 0, NewKeySet())
	e := NewEnemyTank(0, 0, &seqRand{})
	if !p.IsPlayer() || p.Owner() != OwnerPlayer {
		t.Fatalf("expected player variant")
	}
	if e.IsPlayer() || e.Owner() != OwnerEnemy {
		t.Fatalf("expected enemy variant")
	}
	if p.ID == e.ID || p.ID == uuid.Nil {
		t.Fatalf("expected distinct non-nil IDs")
	}
}

func TestOverlaps_UsesCombinedRadii(t *testing.T) {
	a := NewPlayerTank(100, 100, nil)
	b := NewEnemyTank(100+tankSize-0.1, 100, &seqRand{})
	c := NewEnemyTank(100+tankSize, 100, &seqRand{})
	if !a.Overlaps(b) {
		t.Fatalf("expected overlap just inside combined radii")
	}
	if a.Overlaps(c) {
		t.Fatalf("expected no overlap at exactly the combined radii")
	}
}

func TestRemoveTanks_ByID(t *testing.T) {
	rng := &seqRand{}
	a, b, c := NewEnemyTank(1, 1, rng), NewEnemyTank(2, 2, rng), NewEnemyTank(3, 3, rng)
	got := removeTanks([]*Tank{a, b, c}, map[uuid.UUID]struct{}{b.ID: {}})
	if len(got) != 2 || got[0] != a || got[1] != c {
		t.Fatalf("expected [a c], got %d tanks", len(got))
	}
}
