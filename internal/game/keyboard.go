package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// keyBindings maps physical keys onto logical ones. Several physical keys may
// share a logical key (arrows and WASD both steer).
var keyBindings = map[ebiten.Key]Key{
	ebiten.KeyArrowUp:    KeyUp,
	ebiten.KeyW:          KeyUp,
	ebiten.KeyArrowDown:  KeyDown,
	ebiten.KeyS:          KeyDown,
	ebiten.KeyArrowLeft:  KeyLeft,
	ebiten.KeyA:          KeyLeft,
	ebiten.KeyArrowRight: KeyRight,
	ebiten.KeyD:          KeyRight,
	ebiten.KeySpace:      KeyFire,
	ebiten.KeyR:          KeyReset,
	ebiten.KeyP:          KeyPause,
	ebiten.KeyC:          KeyCopy,
}

// PollKeyboard feeds this frame's key-down and key-up transitions into ks and
// returns the logical keys that went down this frame.
func PollKeyboard(ks *KeySet) []Key {
	var down []Key
	for phys, k := range keyBindings {
		if inpututil.IsKeyJustPressed(phys) {
			ks.Press(k)
			down = append(down, k)
		}
		if inpututil.IsKeyJustReleased(phys) {
			// Only release when no other binding for k is still held.
			if !anyBindingHeld(k) {
				ks.Release(k)
			}
		}
	}
	return down
}

func anyBindingHeld(k Key) bool {
	for phys, bound := range keyBindings {
		if bound == k && ebiten.IsKeyPressed(phys) {
			return true
		}
	}
	return false
}
