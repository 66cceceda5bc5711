package game

import (
	"io"
	"time"

	"github.com/Garsondee/Tank-Skirmish/internal/sfx"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// SoundPlayer plays a sound effect. *sfx.Player satisfies it.
type SoundPlayer interface {
	Play(kind sfx.Kind)
}

// AppOptions wires the platform services into an App.
type AppOptions struct {
	Seed      int64 // 0 picks a time-based seed
	Logger    *log.Logger
	Sounds    SoundPlayer        // nil for silence
	Clipboard func(string) error // nil disables the copy key
	Now       func() time.Time   // frame clock; defaults to time.Now
}

// App is the application context: it owns the World, the held-key set, the
// frame loop and the HUD controls, and implements ebiten.Game.
// Input handlers only touch the key set and lifecycle transitions; entity
// state is changed solely by the frame loop.
type App struct {
	world    *World
	keys     *KeySet
	loop     *FrameLoop
	buttons  []*Button
	logger   *log.Logger
	sounds   SoundPlayer
	copyText func(string) error
	face     text.Face
	seed     int64
}

// NewApp constructs the application once at startup.
func NewApp(opts AppOptions) *App {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	a := &App{
		keys:     NewKeySet(),
		logger:   logger,
		sounds:   opts.Sounds,
		copyText: opts.Clipboard,
		face:     text.NewGoXFace(basicfont.Face7x13),
		seed:     seed,
	}
	a.world = NewWorld(a.keys, WithSeed(seed))
	a.loop = NewFrameLoop(a.tick)
	if opts.Now != nil {
		a.loop.Now = opts.Now
	}
	a.buttons = a.newButtons()
	a.flushEvents()
	logger.Info("game ready", "seed", seed)
	return a
}

// World exposes the simulation, mainly for tools and tests.
func (a *App) World() *World {
	return a.world
}

// Seed is the seed the session's random source was built from.
func (a *App) Seed() int64 {
	return a.seed
}

func (a *App) tick(dt float64) {
	a.world.Update(dt)
	a.world.StepEffects(dt)
}

// Update is called by ebiten once per frame.
func (a *App) Update() error {
	for _, k := range PollKeyboard(a.keys) {
		a.keyDown(k)
	}
	if !ebiten.IsFocused() {
		a.keys.Clear()
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		a.click(x, y)
	}
	a.loop.Step()
	a.flushEvents()
	return nil
}

// keyDown handles the lifecycle keys. Movement and fire keys are polled.
func (a *App) keyDown(k Key) {
	switch k {
	case KeyReset:
		a.world.Reset()
	case KeyPause:
		a.world.TogglePause()
	case KeyCopy:
		a.copySummary()
	}
}

// click dispatches a mouse press in screen coordinates. Buttons win over the
// playfield; a press on the playfield starts the game.
func (a *App) click(x, y int) bool {
	for _, b := range a.buttons {
		if b.Contains(x, y) {
			b.OnClick()
			return true
		}
	}
	if x >= 0 && x < ScreenWidth && y >= 0 && y < ScreenHeight {
		a.world.Start()
		return true
	}
	return false
}

func (a *App) copySummary() {
	if a.copyText == nil {
		return
	}
	s := a.world.HUD().Summary()
	if err := a.copyText(s); err != nil {
		a.logger.Warn("clipboard write failed", "err", err)
		return
	}
	a.logger.Info("copied summary", "summary", s)
}

// flushEvents hands this frame's events to the logger and the sound player.
func (a *App) flushEvents() {
	for _, e := range a.world.Events().Drain() {
		a.logEvent(e)
		a.playEvent(e)
	}
}

func (a *App) logEvent(e Event) {
	switch e.Kind {
	case EventShot:
		a.logger.Debug("shot", "tick", e.Tick, "owner", e.Owner)
	case EventEnemyDestroyed:
		a.logger.Info("enemy destroyed", "tick", e.Tick, "cause", e.Detail, "score", a.world.Score())
	case EventPlayerHit:
		a.logger.Info("player hit", "tick", e.Tick, "cause", e.Detail, "lives", a.world.Lives())
	case EventDefeat:
		a.logger.Info("defeated", "tick", e.Tick, "score", a.world.Score())
	case EventWave:
		a.logger.Info("wave spawned", "tick", e.Tick, "wave", e.Detail, "enemies", len(a.world.Enemies()))
	case EventPhase:
		a.logger.Info("phase", "tick", e.Tick, "change", e.Detail)
	}
}

func (a *App) playEvent(e Event) {
	if a.sounds == nil {
		return
	}
	switch e.Kind {
	case EventShot:
		if e.Owner == OwnerPlayer {
			a.sounds.Play(sfx.Shot)
		} else {
			a.sounds.Play(sfx.EnemyShot)
		}
	case EventEnemyDestroyed:
		a.sounds.Play(sfx.Explosion)
	case EventPlayerHit:
		a.sounds.Play(sfx.Hit)
	case EventDefeat:
		a.sounds.Play(sfx.Defeat)
	case EventWave:
		a.sounds.Play(sfx.Wave)
	}
}

// Layout returns the fixed surface: playfield plus HUD bar.
func (a *App) Layout(_, _ int) (int, int) {
	return ScreenWidth, ScreenHeight + HUDBarHeight
}
