// Package sfx synthesises the game's sound effects at runtime and plays them
// through ebiten's audio context. There are no sample files.
package sfx

import (
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// SampleRate of every generated buffer.
const SampleRate = 44100

// maxVoices caps simultaneous players so explosion chains do not clip.
const maxVoices = 6

// Kind identifies a sound effect.
type Kind uint8

const (
	Shot Kind = iota
	EnemyShot
	Explosion
	Hit
	Defeat
	Wave
	kindCount
)

var kindNames = [kindCount]string{
	Shot:      "shot",
	EnemyShot: "enemy_shot",
	Explosion: "explosion",
	Hit:       "hit",
	Defeat:    "defeat",
	Wave:      "wave",
}

func (k Kind) String() string {
	if k >= kindCount {
		return "unknown"
	}
	return kindNames[k]
}

// Player plays synthesised effects. Buffers are generated once per kind.
type Player struct {
	ctx    *audio.Context
	volume float64

	mu     sync.Mutex
	cache  map[Kind][]byte
	voices []*audio.Player
}

// NewPlayer creates the process-wide audio context. Call it at most once.
func NewPlayer(volume float64) *Player {
	return &Player{
		ctx:    audio.NewContext(SampleRate),
		volume: math.Max(0, math.Min(1, volume)),
		cache:  make(map[Kind][]byte),
	}
}

// Play starts kind without blocking. Extra voices beyond maxVoices are dropped.
func (p *Player) Play(kind Kind) {
	if p == nil || p.volume == 0 {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	live := p.voices[:0]
	for _, v := range p.voices {
		if v.IsPlaying() {
			live = append(live, v)
		} else {
			_ = v.Close()
		}
	}
	p.voices = live
	if len(p.voices) >= maxVoices {
		return
	}

	buf, ok := p.cache[kind]
	if !ok {
		buf = Generate(kind)
		p.cache[kind] = buf
	}
	if len(buf) == 0 {
		return
	}
	v := p.ctx.NewPlayerF32FromBytes(buf)
	v.SetVolume(p.volume)
	v.Play()
	p.voices = append(p.voices, v)
}
