package game

import (
	"fmt"
	"math/rand"
	"time"
)

// Phase is the lifecycle state of a World.
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhasePaused
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	}
	return "unknown"
}

// World owns every entity and runs one simulation tick per Update.
// It has no rendering or platform dependency.
type World struct {
	bounds Bounds
	rng    Rand
	input  Input

	player    *Tank
	enemies   []*Tank
	bullets   []*Bullet
	particles *ParticleSystem

	score  int
	lives  int
	phase  Phase
	status Status
	hud    HUD
	events *EventLog

	tick        int
	waves       int
	statusTimer float64 // ticks left before a transient status reverts
}

// WorldOption configures a World at construction.
type WorldOption func(*World)

// WithBounds sets the playfield size.
func WithBounds(b Bounds) WorldOption {
	return func(w *World) { w.bounds = b }
}

// WithRand supplies the random source.
func WithRand(r Rand) WorldOption {
	return func(w *World) { w.rng = r }
}

// WithSeed seeds a math/rand source for deterministic runs.
func WithSeed(seed int64) WorldOption {
	return func(w *World) {
		w.rng = rand.New(rand.NewSource(seed)) // #nosec G404 -- gameplay only
	}
}

// NewWorld builds a world in the idle phase with a fresh roster.
func NewWorld(in Input, opts ...WorldOption) *World {
	w := &World{
		bounds: DefaultBounds(),
		input:  in,
		events: NewEventLog(),
	}
	for _, o := range opts {
		o(w)
	}
	if w.rng == nil {
		w.rng = rand.New(rand.NewSource(time.Now().UnixNano())) // #nosec G404 -- gameplay only
	}
	w.particles = NewParticleSystem(w.rng)
	w.Reset()
	return w
}

func (w *World) Bounds() Bounds { return w.bounds }
func (w *World) Player() *Tank { return w.player }
func (w *World) Enemies() []*Tank { return w.enemies }
func (w *World) Bullets() []*Bullet { return w.bullets }
func (w *World) Particles() *ParticleSystem { return w.particles }
func (w *World) Score() int { return w.score }
func (w *World) Lives() int { return w.lives }
func (w *World) Phase() Phase { return w.phase }
func (w *World) Status() Status { return w.status }
func (w *World) HUD() HUD { return w.hud }
func (w *World) Events() *EventLog { return w.events }
func (w *World) Tick() int { return w.tick }
func (w *World) Waves() int { return w.waves }
func (w *World) Running() bool { return w.phase == PhaseRunning }

func (w *World) SpawnPoint() (float64, float64) {
	return w.bounds.W / 2, w.bounds.H - playerSpawnInset
}

// Start begins or resumes play. A finished game stays finished until Reset.
func (w *World) Start() {
	if w.phase == PhaseIdle || w.phase == PhasePaused {
		w.setPhase(PhaseRunning, StatusFighting)
	}
}

// TogglePause flips between running and paused.
func (w *World) TogglePause() {
	switch w.phase {
	case PhaseRunning:
		w.setPhase(PhasePaused, StatusPaused)
	case PhasePaused:
		w.setPhase(PhaseRunning, StatusFighting)
	}
}

// Reset restores a fresh game: new player at the spawn point, empty bullet
// and particle lists, score 0, full lives, a new roster, and the idle phase.
func (w *World) Reset() {
	w.player = w.newPlayer()
	w.bullets = nil
	w.particles.Clear()
	w.enemies = nil
	w.score = 0
	w.lives = maxLives
	w.waves = 0
	w.statusTimer = 0
	w.spawnWave()
	w.setPhase(PhaseIdle, StatusIdle)
}

func (w *World) gameOver() {
	w.setPhase(PhaseGameOver, StatusDefeated)
	w.emit(Event{Kind: EventDefeat, X: w.player.X, Y: w.player.Y, Detail: fmt.Sprintf("score %d", w.score)})
}

func (w *World) setPhase(p Phase, s Status) {
	prev := w.phase
	w.phase = p
	w.status = s
	w.statusTimer = 0
	w.syncHUD()
	if prev != p {
		w.emit(Event{Kind: EventPhase, Detail: fmt.Sprintf("%s → %s", prev, p)})
	}
}

func (w *World) newPlayer() *Tank {
	x, y := w.SpawnPoint()
	return NewPlayerTank(x, y, w.input)
}

// Update runs one simulation tick of dt ticks. It does nothing unless running.
func (w *World) Update(dt float64) {
	if w.phase != PhaseRunning {
		return
	}
	w.tick++
	tc := TickContext{DT: dt, Bounds: w.bounds}

	// 1. Player.
	w.stepTank(w.player, tc)

	// 2. Enemies: wander, then maybe shoot.
	for _, e := range w.enemies {
		w.stepTank(e, tc)
	}

	// 3. Bullets.
	for _, b := range w.bullets {
		b.Update(w.bounds)
	}

	// 4. Collisions, then cull spent bullets.
	w.resolveCollisions()
	w.bullets = compactBullets(w.bullets)

	// 5. Refill the roster once it is empty.
	if len(w.enemies) == 0 {
		w.spawnWave()
	}

	if w.statusTimer > 0 {
		w.statusTimer -= dt
		if w.statusTimer <= 0 && w.phase == PhaseRunning {
			w.status = StatusFighting
			w.syncHUD()
		}
	}
}

// StepEffects advances cosmetic state. It runs every frame, even while the
// simulation is paused or over, so bursts finish fading.
func (w *World) StepEffects(dt float64) {
	w.particles.Update(dt)
}

func (w *World) stepTank(t *Tank, tc TickContext) {
	t.Update(tc)
	if t.ctrl == nil || !t.ctrl.WantsFire() {
		return
	}
	var fired bool
	w.bullets, fired = t.TryShoot(w.bullets, t.Owner())
	if fired {
		w.emit(Event{Kind: EventShot, X: t.X, Y: t.Y, Owner: t.Owner(), Detail: t.Owner().String()})
	}
}

// spawnWave places a fresh roster at random points in the upper half.
func (w *World) spawnWave() {
	w.waves++
	for i := 0; i < enemyCount; i++ {
		x := tankSize + w.rng.Float64()*(w.bounds.W-2*tankSize)
		y := tankSize + w.rng.Float64()*(w.bounds.H/2-tankSize)
		w.enemies = append(w.enemies, NewEnemyTank(x, y, w.rng))
	}
	w.emit(Event{Kind: EventWave, Detail: fmt.Sprintf("wave %d", w.waves)})
}

func (w *World) syncHUD() {
	w.hud = makeHUD(w.score, w.lives, w.status)
}

func (w *World) emit(e Event) {
	e.Tick = w.tick
	w.events.Add(e)
}
