package logic

import (
	"sort"
	"strings"

	"github.com/rcanat/disco-hangman/models"
	"github.com/rcanat/disco-hangman/render"
)

// IsValidGuess reports whether guess is a single English letter that has
// not been guessed already. Assumes the guess was already uppercased.
func IsValidGuess(guessed map[string]bool, guess string) bool {
	if len(guess) != 1 || guess < "A" || guess > "Z" {
		return false
	}
	return !guessed[guess]
}

// HasWon reports whether every letter of the word has been guessed.
func HasWon(game *models.Game) bool {
	for _, c := range game.Word {
		if !game.Guessed[string(c)] {
			return false
		}
	}
	return true
}

// HasLost reports whether the player is out of guesses.
func HasLost(game *models.Game) bool {
	return game.WrongGuesses == render.MaxGuesses
}

// RegisterGuess records an already-validated guess, counts it if wrong, and
// settles the game status.
func RegisterGuess(game *models.Game, guess string) {
	game.Guessed[guess] = true
	if !strings.Contains(game.Word, guess) {
		game.WrongGuesses++
	}

	switch {
	case HasWon(game):
		game.Status = models.StatusWon
	case HasLost(game):
		game.Status = models.StatusLost
	}
}

// Penalize sets the game to one guess remaining. Applied when the player
// tries to break the game with an invalid guess.
func Penalize(game *models.Game) {
	game.WrongGuesses = render.MaxGuesses - 1
}

// DisplayWord builds the spaced word display, showing guessed letters and
// underscores for the rest.
func DisplayWord(game *models.Game) string {
	parts := make([]string, 0, len(game.Word))
	for _, c := range game.Word {
		if game.Guessed[string(c)] {
			parts = append(parts, string(c))
		} else {
			parts = append(parts, "_")
		}
	}
	return strings.Join(parts, " ")
}

// GuessedList returns the guessed letters sorted, comma separated.
func GuessedList(game *models.Game) string {
	letters := make([]string, 0, len(game.Guessed))
	for letter := range game.Guessed {
		letters = append(letters, letter)
	}
	sort.Strings(letters)
	return strings.Join(letters, ", ")
}
