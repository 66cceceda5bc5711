package game

// Key is a logical key; physical bindings live in keyboard.go.
type Key uint8

const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
	KeyFire
	KeyReset
	KeyPause
	KeyCopy
	keyCount
)

var keyNames = [keyCount]string{
	KeyUp:    "up",
	KeyDown:  "down",
	KeyLeft:  "left",
	KeyRight: "right",
	KeyFire:  "fire",
	KeyReset: "reset",
	KeyPause: "pause",
	KeyCopy:  "copy",
}

func (k Key) String() string {
	if k >= keyCount {
		return "unknown"
	}
	return keyNames[k]
}

// Input answers whether a key is currently held. Movement polls it once per tick.
type Input interface {
	Pressed(k Key) bool
}

// KeySet is the set of currently held keys. Key-down adds, key-up removes.
type KeySet struct {
	held [keyCount]bool
}

// NewKeySet returns an empty key set, optionally pre-holding keys.
func NewKeySet(held ...Key) *KeySet {
	ks := &KeySet{}
	for _, k := range held {
		ks.Press(k)
	}
	return ks
}

// Press marks k as held. Unknown keys are ignored.
func (ks *KeySet) Press(k Key) {
	if k < keyCount {
		ks.held[k] = true
	}
}

// Release marks k as no longer held.
func (ks *KeySet) Release(k Key) {
	if k < keyCount {
		ks.held[k] = false
	}
}

// Pressed reports whether k is held. Unknown keys never match.
func (ks *KeySet) Pressed(k Key) bool {
	return k < keyCount && ks.held[k]
}

// Clear releases every key, e.g. when the window loses focus.
func (ks *KeySet) Clear() {
	ks.held = [keyCount]bool{}
}
