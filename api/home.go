package handlers

import (
	"net/http"
	"net/url"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/rcanat/disco-hangman/anim"
	"github.com/rcanat/disco-hangman/render"
	"github.com/rcanat/disco-hangman/utils"
)

var (
	titleOnce sync.Once
	titleURI  string
)

// titleAnimation renders the menu logo: the full word revealed, nobody on
// the gallows yet. The render is deterministic so it is computed once.
func titleAnimation() string {
	titleOnce.Do(func() {
		word := "HANGMAN"
		guessed := make(map[rune]bool)
		for _, c := range word {
			guessed[c] = true
		}
		frames, err := renderer.Animation(render.State{
			Word:    word,
			Guessed: guessed,
		})
		if err != nil {
			log.Error("rendering title animation", "err", err)
			return
		}
		titleURI, err = anim.GIFDataURI(frames, frameDurationMs, loopCount)
		if err != nil {
			log.Error("encoding title animation", "err", err)
		}
	})
	return titleURI
}

// WelcomeHandler displays the main menu, with user greeting and any error
// messages left by a redirect.
func WelcomeHandler(w http.ResponseWriter, r *http.Request) {
	user := ""
	if c, err := r.Cookie("user"); err == nil {
		user = c.Value
	}

	data := map[string]interface{}{
		"User":      user,
		"Animation": titleAnimation(),
	}

	// See if an "error" cookie is set, pass it to the template, then clear
	// it so it isn't shown twice.
	if errCookie, err := r.Cookie("error"); err == nil {
		if msg, decodeErr := url.QueryUnescape(errCookie.Value); decodeErr == nil {
			data["Error"] = msg
		}
		http.SetCookie(w, &http.Cookie{
			Name:   "error",
			Value:  "",
			Path:   "/",
			MaxAge: -1,
		})
	}

	utils.RenderPage(w, r, "index.html", data)
}
