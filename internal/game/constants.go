package game

import "image/color"

// Playfield surface in pixels. The HUD bar sits below it.
const (
	ScreenWidth  = 800
	ScreenHeight = 600
	HUDBarHeight = 72
)

// Time is measured in ticks: one tick is one 60 Hz frame.
const (
	tankSize         = 40.0
	playerSpeed      = 3.0  // px per tick
	enemySpeed       = 2.0  // base speed; enemies cruise at enemyCruise of it
	enemyCruise      = 0.8  // fraction of base speed an enemy always moves at
	fireCooldown     = 40.0 // ticks between shots
	muzzleOffset     = 0.7  // bullet spawn distance as a fraction of tank size
	playerSpawnInset = 60.0 // distance of the spawn point from the bottom edge

	wanderMinTicks   = 120.0 // shortest heading hold
	wanderSpanTicks  = 120.0 // hold is drawn from [min, min+span)
	wanderTurnChance = 0.01  // per-tick chance of a 90° snap
	enemyFireChance  = 0.01  // per-tick chance an enemy pulls the trigger

	enemyCount = 5
	maxLives   = 3
	killScore  = 100

	hitStatusTicks = 90 // how long "hit" stays on the status line
)

const (
	bulletSpeed  = 7.0
	bulletRadius = 4.0
	bulletMargin = 10.0 // how far past the edge a bullet may travel before it is culled
)

const (
	burstSize         = 10
	particleMinLife   = 30.0
	particleLifeSpan  = 20.0 // life is drawn from [min, min+span)
	particleMaxSpeed  = 2.0
	particleFadeTicks = 30.0 // alpha is life/fade, capped at 1
)

var (
	playerColor      = color.RGBA{R: 70, G: 200, B: 110, A: 255}
	enemyColor       = color.RGBA{R: 220, G: 70, B: 70, A: 255}
	playerShellColor = color.RGBA{R: 255, G: 230, B: 90, A: 255}
	enemyShellColor  = color.RGBA{R: 255, G: 120, B: 40, A: 255}
)
