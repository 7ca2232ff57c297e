package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcanat/disco-hangman/models"
)

func newGame(word string, guessed string, wrong int) *models.Game {
	g := &models.Game{
		Word:    word,
		Guessed: make(map[string]bool),
		Status:  models.StatusInProgress,
	}
	for _, c := range guessed {
		g.Guessed[string(c)] = true
	}
	g.WrongGuesses = wrong
	return g
}

func TestIsValidGuess(t *testing.T) {
	tests := []struct {
		name    string
		guessed string
		guess   string
		want    bool
	}{
		{"fresh letter", "C", "A", true},
		{"already guessed", "HB", "B", false},
		{"another fresh letter", "FX", "P", true},
		{"digit", "", "2", false},
		{"multi-letter", "CDE", "AB", false},
		{"empty", "", "", false},
		{"lowercase not normalized", "", "a", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			game := newGame("WORD", tt.guessed, 0)
			assert.Equal(t, tt.want, IsValidGuess(game.Guessed, tt.guess))
		})
	}
}

func TestHasWon(t *testing.T) {
	assert.False(t, HasWon(newGame("LIST", "CDE", 0)))
	assert.True(t, HasWon(newGame("BOOL", "BLO", 0)))
	assert.False(t, HasWon(newGame("PYTHON", "", 0)))
}

func TestHasLost(t *testing.T) {
	assert.False(t, HasLost(newGame("BAKERY", "", 0)))
	assert.True(t, HasLost(newGame("ABSTRACT", "", 6)))
	assert.False(t, HasLost(newGame("DRAFTER", "", 5)))
}

func TestRegisterGuess(t *testing.T) {
	t.Run("correct guess keeps wrong count", func(t *testing.T) {
		game := newGame("DOG", "", 2)
		RegisterGuess(game, "O")
		assert.Equal(t, 2, game.WrongGuesses)
		assert.True(t, game.Guessed["O"])
		assert.Equal(t, models.StatusInProgress, game.Status)
	})

	t.Run("wrong guess increments", func(t *testing.T) {
		game := newGame("DOG", "", 2)
		RegisterGuess(game, "Z")
		assert.Equal(t, 3, game.WrongGuesses)
		assert.Equal(t, models.StatusInProgress, game.Status)
	})

	t.Run("last letter wins", func(t *testing.T) {
		game := newGame("DOG", "DO", 5)
		RegisterGuess(game, "G")
		assert.Equal(t, models.StatusWon, game.Status)
	})

	t.Run("sixth wrong guess loses", func(t *testing.T) {
		game := newGame("DOG", "", 5)
		RegisterGuess(game, "Z")
		assert.Equal(t, models.StatusLost, game.Status)
	})
}

func TestPenalize(t *testing.T) {
	game := newGame("DOG", "", 1)
	Penalize(game)
	assert.Equal(t, 5, game.WrongGuesses)
	assert.False(t, HasLost(game))
}

func TestDisplayWord(t *testing.T) {
	assert.Equal(t, "_ _ _", DisplayWord(newGame("DOG", "", 0)))
	assert.Equal(t, "D O _", DisplayWord(newGame("DOG", "DO", 0)))
	assert.Equal(t, "_ _ _ O R _ T _ _", DisplayWord(newGame("ALGORITHM", "EORT", 1)))
}

func TestGuessedList(t *testing.T) {
	game := newGame("DOG", "ZAD", 1)
	assert.Equal(t, "A, D, Z", GuessedList(game))
	assert.Equal(t, "", GuessedList(newGame("DOG", "", 0)))
}

func TestSnapshotIsDetached(t *testing.T) {
	game := newGame("DOG", "D", 1)
	snap := game.Snapshot()

	require.True(t, snap.Guessed['D'])
	RegisterGuess(game, "Z")

	// The snapshot must not see mutations made after it was taken.
	assert.False(t, snap.Guessed['Z'])
	assert.Equal(t, 1, snap.WrongGuesses)
}
