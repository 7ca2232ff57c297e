package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	_ "modernc.org/sqlite"

	"github.com/rcanat/disco-hangman/models"
)

var (
	DB         *sql.DB
	initDBOnce sync.Once
)

// InitDB opens the SQLite database at path and creates the schema. Safe to
// call more than once; only the first call does work.
func InitDB(path string) {
	initDBOnce.Do(func() {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			log.Fatal("creating db directory", "err", err)
		}

		var err error
		DB, err = sql.Open("sqlite", path)
		if err != nil {
			log.Fatal("opening database", "err", err)
		}

		// WAL for better concurrency between page renders and ws guesses
		if _, err := DB.Exec("PRAGMA journal_mode=WAL;"); err != nil {
			log.Warn("couldn't enable WAL mode", "err", err)
		}
		if _, err := DB.Exec("PRAGMA busy_timeout=5000;"); err != nil {
			log.Warn("couldn't set busy timeout", "err", err)
		}

		createTables := []string{
			`CREATE TABLE IF NOT EXISTS users (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				username TEXT UNIQUE NOT NULL,
				password_hash TEXT NOT NULL,
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			);`,
			`CREATE TABLE IF NOT EXISTS games (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				name TEXT NOT NULL,
				word TEXT NOT NULL,
				guesses INTEGER NOT NULL,
				won BOOLEAN NOT NULL,
				finished_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			);`,
			`CREATE INDEX IF NOT EXISTS idx_games_name ON games(name);`,
		}
		for _, table := range createTables {
			if _, err := DB.Exec(table); err != nil {
				log.Fatal("creating table", "err", err, "query", table)
			}
		}

		log.Info("database initialized", "path", path)
	})
}

// CloseDB closes the database connection.
func CloseDB() error {
	if DB != nil {
		return DB.Close()
	}
	return nil
}

// RecordResult appends one finished game to the history.
func RecordResult(res models.GameResult) error {
	_, err := DB.Exec(
		`INSERT INTO games (name, word, guesses, won, finished_at) VALUES (?, ?, ?, ?, ?)`,
		res.Name, res.Word, res.Guesses, res.Won, res.FinishedAt,
	)
	if err != nil {
		return fmt.Errorf("recording game result: %w", err)
	}
	return nil
}

// History returns the most recent finished games, newest first.
func History(limit int) ([]models.GameResult, error) {
	rows, err := DB.Query(
		`SELECT name, word, guesses, won, finished_at FROM games
		 ORDER BY finished_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var results []models.GameResult
	for rows.Next() {
		var res models.GameResult
		var finished time.Time
		if err := rows.Scan(&res.Name, &res.Word, &res.Guesses, &res.Won, &finished); err != nil {
			return nil, fmt.Errorf("scanning history row: %w", err)
		}
		res.FinishedAt = finished
		results = append(results, res)
	}
	return results, rows.Err()
}

// CreateUser stores a new account with a pre-hashed password.
func CreateUser(username, passwordHash string) error {
	_, err := DB.Exec(
		`INSERT INTO users (username, password_hash) VALUES (?, ?)`,
		username, passwordHash,
	)
	if err != nil {
		return fmt.Errorf("creating user %q: %w", username, err)
	}
	return nil
}

// UserHash fetches the stored password hash for a username.
func UserHash(username string) (string, error) {
	var hash string
	err := DB.QueryRow(
		`SELECT password_hash FROM users WHERE username = ?`, username,
	).Scan(&hash)
	if err != nil {
		return "", fmt.Errorf("looking up user %q: %w", username, err)
	}
	return hash, nil
}
