package game

import "time"

const (
	frameDuration = time.Second / 60
	maxFrameDelta = 3.0 // ticks; longer stalls (window drag, breakpoints) are not replayed
)

// FrameLoop turns wall-clock frames into simulation ticks. A platform
// scheduler (ebiten's Update, or a plain for-loop in headless tools) calls
// Step once per displayed frame; Step measures the elapsed time in ticks and
// hands it to Tick.
type FrameLoop struct {
	Now  func() time.Time
	Tick func(dt float64)

	last    time.Time
	started bool
}

// NewFrameLoop returns a loop driven by the wall clock.
func NewFrameLoop(tick func(dt float64)) *FrameLoop {
	return &FrameLoop{Now: time.Now, Tick: tick}
}

// Step runs one frame and returns the dt it passed to Tick. The first frame
// is always exactly one tick.
func (fl *FrameLoop) Step() float64 {
	now := fl.Now()
	dt := 1.0
	if fl.started {
		dt = float64(now.Sub(fl.last)) / float64(frameDuration)
	}
	fl.last = now
	fl.started = true
	dt = clamp(dt, 0, maxFrameDelta)
	if fl.Tick != nil {
		fl.Tick(dt)
	}
	return dt
}

// RunFor steps n frames back to back.
func (fl *FrameLoop) RunFor(n int) {
	for i := 0; i < n; i++ {
		fl.Step()
	}
}
