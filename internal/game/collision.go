package game

import (
	"slices"

	"github.com/google/uuid"
)

// resolveCollisions runs the collision passes in their fixed order and then
// resynchronises the HUD. The player loses at most one life per tick.
func (w *World) resolveCollisions() {
	hit := w.resolveRams()
	w.resolvePlayerShells()
	if !hit && w.phase == PhaseRunning {
		w.resolveEnemyShells()
	}
	w.syncHUD()
}

// resolveRams destroys every enemy touching the player. Each one scores, but
// the player pays a single life for the whole tick.
func (w *World) resolveRams() bool {
	p := w.player
	gone := make(map[uuid.UUID]struct{})
	for _, e := range w.enemies {
		if !p.Overlaps(e) {
			continue
		}
		gone[e.ID] = struct{}{}
		w.particles.Burst(e.X, e.Y, e.Color)
		w.particles.Burst(p.X, p.Y, p.Color)
		w.score += killScore
		w.emit(Event{Kind: EventEnemyDestroyed, X: e.X, Y: e.Y, Detail: "rammed"})
	}
	if len(gone) == 0 {
		return false
	}
	w.enemies = removeTanks(w.enemies, gone)
	w.damagePlayer("rammed")
	return true
}

// resolvePlayerShells lets each live player bullet destroy at most one enemy.
// A destroyed enemy leaves the roster at once, so no other bullet can hit it.
func (w *World) resolvePlayerShells() {
	for _, b := range w.bullets {
		if !b.Active || b.Owner != OwnerPlayer {
			continue
		}
		for i, e := range w.enemies {
			if !e.Contains(b.X, b.Y) {
				continue
			}
			b.Active = false
			w.score += killScore
			w.particles.Burst(e.X, e.Y, e.Color)
			w.emit(Event{Kind: EventEnemyDestroyed, X: e.X, Y: e.Y, Detail: "shot"})
			w.enemies = slices.Delete(w.enemies, i, i+1)
			break
		}
	}
}

// resolveEnemyShells stops at the first enemy bullet that hits the player.
func (w *World) resolveEnemyShells() {
	p := w.player
	for _, b := range w.bullets {
		if !b.Active || b.Owner != OwnerEnemy {
			continue
		}
		if !p.Contains(b.X, b.Y) {
			continue
		}
		b.Active = false
		w.particles.Burst(p.X, p.Y, p.Color)
		w.damagePlayer("shot")
		return
	}
}

// damagePlayer takes one life and either respawns the player or ends the game.
func (w *World) damagePlayer(cause string) {
	p := w.player
	w.lives--
	if w.lives <= 0 {
		w.lives = 0
		w.syncHUD()
		w.gameOver()
		return
	}
	w.emit(Event{Kind: EventPlayerHit, X: p.X, Y: p.Y, Detail: cause})
	w.player = w.newPlayer()
	w.status = StatusHit
	w.statusTimer = hitStatusTicks
	w.syncHUD()
}
