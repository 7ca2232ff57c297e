package main

import (
	"math/rand"
	"net/http"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	handlers "github.com/rcanat/disco-hangman/api"
	"github.com/rcanat/disco-hangman/config"
	"github.com/rcanat/disco-hangman/db"
)

var CLI struct {
	Config string `short:"c" default:"hangman.yaml" help:"Path to YAML configuration file"`
	Addr   string `short:"a" help:"Server address to bind to (overrides config)"`
	Debug  bool   `short:"d" help:"Enable debug logging"`
}

func main() {
	ctx := kong.Parse(&CLI)

	if CLI.Debug {
		log.SetLevel(log.DebugLevel)
	}

	rand.Seed(time.Now().UnixNano())

	cfg, err := config.Load(CLI.Config)
	if err != nil {
		log.Error("loading config", "err", err)
		ctx.Exit(1)
	}
	if CLI.Addr != "" {
		cfg.Server.Addr = CLI.Addr
	}

	// Initialize the database and schema
	db.InitDB(cfg.DB.Path)
	defer db.CloseDB()

	if err := handlers.Setup(cfg); err != nil {
		log.Error("setting up handlers", "err", err)
		ctx.Exit(1)
	}

	// Serve CSS, JS, etc.
	fs := http.FileServer(http.Dir("./static"))
	http.Handle("/static/", http.StripPrefix("/static/", fs))

	// Menu & history
	http.HandleFunc("/", handlers.WelcomeHandler)
	http.HandleFunc("/history", handlers.HistoryHandler)

	// Game flow
	http.HandleFunc("/new", handlers.NewGameHandler)
	http.HandleFunc("/start", handlers.StartGameHandler)
	http.HandleFunc("/game", handlers.GamePageHandler)
	http.HandleFunc("/guess", handlers.GuessHandler)
	http.HandleFunc("/mad", handlers.MadHandler)
	http.HandleFunc("/win", handlers.WinHandler)
	http.HandleFunc("/lose", handlers.LoseHandler)
	http.HandleFunc("/reset", handlers.ResetHandler)

	// Live updates over WebSocket
	http.HandleFunc("/ws", handlers.WebSocketHandler)

	// Optional accounts (GET shows the form, POST submits it)
	http.HandleFunc("/login", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			handlers.LoginPage(w, r)
		case http.MethodPost:
			handlers.LoginHandler(w, r)
		default:
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		}
	})
	http.HandleFunc("/register", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			handlers.RegisterPage(w, r)
		case http.MethodPost:
			handlers.RegisterHandler(w, r)
		default:
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		}
	})
	http.HandleFunc("/logout", handlers.LogoutHandler)

	log.Info("listening", "addr", cfg.Server.Addr)
	if err := http.ListenAndServe(cfg.Server.Addr, nil); err != nil {
		log.Fatal("server stopped", "err", err)
	}
}
