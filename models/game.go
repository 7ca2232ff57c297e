package models

import (
	"time"

	"github.com/rcanat/disco-hangman/render"
)

// Game statuses.
const (
	StatusInProgress = "in_progress"
	StatusWon        = "won"
	StatusLost       = "lost"
)

// Game is the mutable per-session game owned by the flow handlers. The
// renderer never sees it directly; it gets an immutable Snapshot.
type Game struct {
	ID           string
	Name         string
	Word         string
	Guessed      map[string]bool
	WrongGuesses int
	Status       string
}

// Snapshot copies the render-relevant fields into an immutable state the
// renderer can consume while the handlers keep mutating the Game.
func (g *Game) Snapshot() render.State {
	guessed := make(map[rune]bool, len(g.Guessed))
	for letter, ok := range g.Guessed {
		if ok && len(letter) == 1 {
			guessed[rune(letter[0])] = true
		}
	}
	return render.State{
		Word:         g.Word,
		Guessed:      guessed,
		WrongGuesses: g.WrongGuesses,
	}
}

// GameResult is one row of the history table.
type GameResult struct {
	Name       string
	Word       string
	Guesses    int
	Won        bool
	FinishedAt time.Time
}
