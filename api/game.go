package handlers

import (
	"math/rand"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/rcanat/disco-hangman/anim"
	"github.com/rcanat/disco-hangman/config"
	"github.com/rcanat/disco-hangman/db"
	"github.com/rcanat/disco-hangman/logic"
	"github.com/rcanat/disco-hangman/models"
	"github.com/rcanat/disco-hangman/render"
	"github.com/rcanat/disco-hangman/utils"
	"github.com/rcanat/disco-hangman/words"
)

// In-memory map of all live games; key is the session's game ID.
var (
	gamesMu sync.Mutex
	games   = make(map[string]*models.Game)
)

// Rendering setup shared by all handlers.
var (
	renderer        *render.Renderer
	frameDurationMs int
	loopCount       int
)

// Setup wires the handlers to the configured renderer and encoder settings.
// Must be called before any route is served.
func Setup(cfg config.Config) error {
	opts, err := cfg.RenderOptions()
	if err != nil {
		return err
	}
	renderer = render.New(opts)
	frameDurationMs = cfg.Anim.FrameDurationMs
	loopCount = cfg.Anim.LoopCount
	return nil
}

// animationURI renders the full wave animation for a game and returns the
// embeddable data URI.
func animationURI(game *models.Game) (string, error) {
	frames, err := renderer.Animation(game.Snapshot())
	if err != nil {
		return "", err
	}
	return anim.GIFDataURI(frames, frameDurationMs, loopCount)
}

// finaleURI renders the end-screen animation (bounce on win, sag on loss).
func finaleURI(game *models.Game, won bool) (string, error) {
	frames, err := renderer.FinaleAnimation(game.Snapshot(), won)
	if err != nil {
		return "", err
	}
	return anim.GIFDataURI(frames, frameDurationMs, loopCount)
}

// getGame looks up the caller's game from the game_id cookie.
func getGame(r *http.Request) (*models.Game, bool) {
	cookie, err := r.Cookie("game_id")
	if err != nil || cookie.Value == "" {
		return nil, false
	}
	gamesMu.Lock()
	defer gamesMu.Unlock()
	game, ok := games[cookie.Value]
	return game, ok
}

// recordResult persists a finished game to the history table.
func recordResult(game *models.Game) {
	err := db.RecordResult(models.GameResult{
		Name:       game.Name,
		Word:       game.Word,
		Guesses:    len(game.Guessed),
		Won:        game.Status == models.StatusWon,
		FinishedAt: time.Now().UTC(),
	})
	if err != nil {
		log.Error("recording game result", "err", err)
	}
}

// GET /new: ask for the player's name before starting.
func NewGameHandler(w http.ResponseWriter, r *http.Request) {
	name := ""
	if c, err := r.Cookie("player_name"); err == nil {
		name = c.Value
	} else if c, err := r.Cookie("user"); err == nil {
		name = c.Value
	}
	utils.RenderPage(w, r, "newgame.html", map[string]interface{}{
		"Name": name,
	})
}

// POST /start: pick the mystery word and enter the guessing loop.
func StartGameHandler(w http.ResponseWriter, r *http.Request) {
	r.ParseForm()
	name := strings.TrimSpace(r.FormValue("name"))
	if name == "" {
		name = "Anonymous"
	}

	word := words.Random(5 + rand.Intn(5))
	id := utils.GenerateID()

	gamesMu.Lock()
	games[id] = &models.Game{
		ID:      id,
		Name:    name,
		Word:    word,
		Guessed: make(map[string]bool),
		Status:  models.StatusInProgress,
	}
	gamesMu.Unlock()

	http.SetCookie(w, &http.Cookie{Name: "game_id", Value: id, Path: "/"})
	http.SetCookie(w, &http.Cookie{Name: "player_name", Value: name, Path: "/"})
	http.Redirect(w, r, "/game", http.StatusSeeOther)
}

// GET /game: the main guessing page with the embedded animation.
func GamePageHandler(w http.ResponseWriter, r *http.Request) {
	game, ok := getGame(r)
	if !ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	gamesMu.Lock()
	uri, err := animationURI(game)
	display := logic.DisplayWord(game)
	guessed := logic.GuessedList(game)
	gamesMu.Unlock()
	if err != nil {
		http.Error(w, "Render error: "+err.Error(), http.StatusInternalServerError)
		log.Error("rendering game animation", "game", game.ID, "err", err)
		return
	}

	utils.RenderPage(w, r, "game.html", map[string]interface{}{
		"Animation":   uri,
		"DisplayWord": display,
		"Guessed":     guessed,
	})
}

// POST /guess: validate and apply the guess, then route to the page the
// new state calls for.
func GuessHandler(w http.ResponseWriter, r *http.Request) {
	game, ok := getGame(r)
	if !ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	r.ParseForm()
	guess := strings.ToUpper(strings.TrimSpace(r.FormValue("guess")))

	gamesMu.Lock()
	if game.Status != models.StatusInProgress {
		gamesMu.Unlock()
		http.Redirect(w, r, "/game", http.StatusSeeOther)
		return
	}

	if !logic.IsValidGuess(game.Guessed, guess) {
		// Larry is mad
		logic.Penalize(game)
		gamesMu.Unlock()
		http.SetCookie(w, &http.Cookie{
			Name:  "bad_guess",
			Value: url.QueryEscape(guess),
			Path:  "/",
		})
		http.Redirect(w, r, "/mad", http.StatusSeeOther)
		return
	}

	logic.RegisterGuess(game, guess)
	finished := game.Status != models.StatusInProgress
	won := game.Status == models.StatusWon
	gamesMu.Unlock()

	if finished {
		recordResult(game)
		if won {
			http.Redirect(w, r, "/win", http.StatusSeeOther)
		} else {
			http.Redirect(w, r, "/lose", http.StatusSeeOther)
		}
		return
	}
	http.Redirect(w, r, "/game", http.StatusSeeOther)
}

// GET /mad: the scolding page for invalid guesses. The player is left with
// one guess remaining.
func MadHandler(w http.ResponseWriter, r *http.Request) {
	game, ok := getGame(r)
	if !ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	guess := ""
	if c, err := r.Cookie("bad_guess"); err == nil {
		if v, err := url.QueryUnescape(c.Value); err == nil {
			guess = v
		}
		http.SetCookie(w, &http.Cookie{Name: "bad_guess", Value: "", Path: "/", MaxAge: -1})
	}

	gamesMu.Lock()
	uri, err := animationURI(game)
	gamesMu.Unlock()
	if err != nil {
		http.Error(w, "Render error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	utils.RenderPage(w, r, "mad.html", map[string]interface{}{
		"Animation": uri,
		"Guess":     guess,
	})
}

// GET /win and GET /lose: finale screens with the word revealed.
func WinHandler(w http.ResponseWriter, r *http.Request) {
	finaleHandler(w, r, true, "win.html")
}

func LoseHandler(w http.ResponseWriter, r *http.Request) {
	finaleHandler(w, r, false, "lose.html")
}

func finaleHandler(w http.ResponseWriter, r *http.Request, won bool, page string) {
	game, ok := getGame(r)
	if !ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	gamesMu.Lock()
	uri, err := finaleURI(game, won)
	word := game.Word
	gamesMu.Unlock()
	if err != nil {
		http.Error(w, "Render error: "+err.Error(), http.StatusInternalServerError)
		log.Error("rendering finale animation", "game", game.ID, "err", err)
		return
	}

	utils.RenderPage(w, r, page, map[string]interface{}{
		"Animation": uri,
		"Word":      word,
	})
}

// GET /history: table of previous games from the database.
func HistoryHandler(w http.ResponseWriter, r *http.Request) {
	results, err := db.History(50)
	if err != nil {
		http.Error(w, "DB error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	utils.RenderPage(w, r, "history.html", map[string]interface{}{
		"Results": results,
	})
}

// GET /reset: drop the current game and go back to the menu.
func ResetHandler(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie("game_id"); err == nil && cookie.Value != "" {
		gamesMu.Lock()
		delete(games, cookie.Value)
		gamesMu.Unlock()
	}
	http.SetCookie(w, &http.Cookie{Name: "game_id", Value: "", Path: "/", MaxAge: -1})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
