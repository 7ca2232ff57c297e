package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/rcanat/disco-hangman/logic"
	"github.com/rcanat/disco-hangman/models"
	"github.com/rcanat/disco-hangman/render"
)

// Client is one WebSocket connection watching a game (usually the single
// player's browser tab, but refreshes can leave more than one open).
type Client struct {
	conn *websocket.Conn
}

var (
	// For every game ID, the clients currently connected to it.
	clients   = make(map[string][]*Client)
	clientsMu sync.Mutex

	upgrader = websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool { return true },
	}
)

// WSMessage is the wire format for all WebSocket traffic.
type WSMessage struct {
	GameID  string      `json:"game_id"`
	Action  string      `json:"action"`  // "state", "guess", "error"
	Payload string      `json:"payload"` // e.g. the letter guessed
	State   interface{} `json:"state"`
}

// buildWSState assembles the view a client needs to update the game page
// in place: word display, guesses, status, plus the freshly rendered
// animation URI. Callers must hold gamesMu.
func buildWSState(game *models.Game) map[string]interface{} {
	state := map[string]interface{}{
		"display_word": logic.DisplayWord(game),
		"guessed":      logic.GuessedList(game),
		"remaining":    maxRemaining(game),
		"status":       game.Status,
		"word":         "",
	}

	var uri string
	var err error
	switch game.Status {
	case models.StatusWon:
		uri, err = finaleURI(game, true)
		state["word"] = game.Word
	case models.StatusLost:
		uri, err = finaleURI(game, false)
		state["word"] = game.Word
	default:
		uri, err = animationURI(game)
	}
	if err != nil {
		log.Error("rendering ws state animation", "game", game.ID, "err", err)
	} else {
		state["animation"] = uri
	}
	return state
}

func maxRemaining(game *models.Game) int {
	return render.MaxGuesses - game.WrongGuesses
}

// WebSocketHandler upgrades the connection and serves live guesses for the
// caller's game, pushing the re-rendered animation after each one so the
// page never reloads.
func WebSocketHandler(w http.ResponseWriter, r *http.Request) {
	gameCookie, err := r.Cookie("game_id")
	if err != nil || gameCookie.Value == "" {
		http.Error(w, "Missing game ID", http.StatusBadRequest)
		return
	}
	gameID := gameCookie.Value

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("websocket upgrade failed", "err", err)
		return
	}

	client := &Client{conn: conn}
	clientsMu.Lock()
	clients[gameID] = append(clients[gameID], client)
	clientsMu.Unlock()

	defer func() {
		clientsMu.Lock()
		clientsForGame := clients[gameID]
		for i, c := range clientsForGame {
			if c == client {
				clients[gameID] = append(clientsForGame[:i], clientsForGame[i+1:]...)
				break
			}
		}
		if len(clients[gameID]) == 0 {
			delete(clients, gameID)
		}
		clientsMu.Unlock()
		conn.Close()
	}()

	for {
		_, msgBytes, err := client.conn.ReadMessage()
		if err != nil {
			break // client disconnected
		}

		var msg WSMessage
		if err := json.Unmarshal(msgBytes, &msg); err != nil {
			log.Warn("invalid ws message", "err", err)
			continue
		}
		if msg.Action != "guess" {
			continue
		}

		gamesMu.Lock()
		game := games[gameID]
		if game == nil || game.Status != models.StatusInProgress {
			gamesMu.Unlock()
			continue
		}

		letter := strings.ToUpper(strings.TrimSpace(msg.Payload))
		if !logic.IsValidGuess(game.Guessed, letter) {
			gamesMu.Unlock()
			// Invalid guesses over the socket get a private error rather
			// than the mad-page penalty; the form path handles Larry.
			errMsg := WSMessage{
				GameID:  gameID,
				Action:  "error",
				Payload: "'" + letter + "' is not a valid guess.",
			}
			data, _ := json.Marshal(errMsg)
			client.conn.WriteMessage(websocket.TextMessage, data)
			continue
		}

		logic.RegisterGuess(game, letter)
		finished := game.Status != models.StatusInProgress
		gamesMu.Unlock()

		if finished {
			recordResult(game)
		}

		BroadcastToClients(WSMessage{
			GameID: gameID,
			Action: "state",
		})
	}
}

// BroadcastToClients sends the current game state to every client of the
// message's game.
func BroadcastToClients(msg WSMessage) {
	clientsMu.Lock()
	defer clientsMu.Unlock()

	clientsForGame, ok := clients[msg.GameID]
	if !ok {
		return
	}

	gamesMu.Lock()
	game := games[msg.GameID]
	if game == nil {
		gamesMu.Unlock()
		return
	}
	msg.State = buildWSState(game)
	gamesMu.Unlock()

	data, err := json.Marshal(msg)
	if err != nil {
		log.Error("marshaling ws message", "err", err)
		return
	}

	for _, client := range clientsForGame {
		if err := client.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			log.Warn("writing ws message, closing conn", "err", err)
			client.conn.Close()
		}
	}
}
