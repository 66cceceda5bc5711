package game

import "fmt"

// Status is the gameplay situation shown on the HUD status line.
type Status uint8

const (
	StatusIdle Status = iota
	StatusFighting
	StatusPaused
	StatusHit
	StatusDefeated
)

var statusText = [...]string{
	StatusIdle:     "Ready. Press Start or click the field.",
	StatusFighting: "Fighting!",
	StatusPaused:   "Paused.",
	StatusHit:      "Hit! Respawned at base.",
	StatusDefeated: "Defeated. Press Reset to play again.",
}

func (s Status) String() string {
	if int(s) >= len(statusText) {
		return ""
	}
	return statusText[s]
}

// HUD is the text the overlay shows. It is rebuilt after every event that
// changes score, lives or status.
type HUD struct {
	Score  string
	Lives  string
	Status string
}

func makeHUD(score, lives int, status Status) HUD {
	return HUD{
		Score:  fmt.Sprintf("Score: %d", score),
		Lives:  fmt.Sprintf("Lives: %d", lives),
		Status: status.String(),
	}
}

// Summary is the one-line form used for the clipboard and logs.
func (h HUD) Summary() string {
	return fmt.Sprintf("%s  %s  %s", h.Score, h.Lives, h.Status)
}
