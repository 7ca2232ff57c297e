package db

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcanat/disco-hangman/models"
)

// InitDB is once-guarded, so all database tests share one init.
func TestDatabase(t *testing.T) {
	InitDB(filepath.Join(t.TempDir(), "hangman.db"))
	t.Cleanup(func() { CloseDB() })

	t.Run("history starts empty", func(t *testing.T) {
		results, err := History(10)
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("record and read back results", func(t *testing.T) {
		first := models.GameResult{
			Name: "I Love Python", Word: "ALGORITHM", Guesses: 10, Won: false,
			FinishedAt: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
		}
		second := models.GameResult{
			Name: "Give Me 100% Pls", Word: "DOG", Guesses: 5, Won: true,
			FinishedAt: time.Date(2026, 8, 30, 13, 0, 0, 0, time.UTC),
		}
		require.NoError(t, RecordResult(first))
		require.NoError(t, RecordResult(second))

		results, err := History(10)
		require.NoError(t, err)
		require.Len(t, results, 2)

		// newest first
		assert.Equal(t, "DOG", results[0].Word)
		assert.True(t, results[0].Won)
		assert.Equal(t, 5, results[0].Guesses)
		assert.Equal(t, "ALGORITHM", results[1].Word)
		assert.False(t, results[1].Won)
	})

	t.Run("history respects limit", func(t *testing.T) {
		results, err := History(1)
		require.NoError(t, err)
		assert.Len(t, results, 1)
	})

	t.Run("users", func(t *testing.T) {
		require.NoError(t, CreateUser("larry", "hash123"))

		hash, err := UserHash("larry")
		require.NoError(t, err)
		assert.Equal(t, "hash123", hash)

		_, err = UserHash("nobody")
		assert.Error(t, err)

		// usernames are unique
		assert.Error(t, CreateUser("larry", "other"))
	})
}
