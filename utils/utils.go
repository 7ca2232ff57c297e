package utils

import (
	"html/template"
	"math/rand"
	"net/http"

	"github.com/charmbracelet/log"
)

// GenerateID creates a 4-letter session id from random lower-case letters.
func GenerateID() string {
	letters := []rune("abcdefghijklmnopqrstuvwxyz")
	b := make([]rune, 4)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return string(b)
}

// RenderPage renders a page template inside the base layout. The logged-in
// user (from cookie) is added to the data unless the caller already set it.
func RenderPage(w http.ResponseWriter, r *http.Request, file string, data map[string]interface{}) {
	tmpl := template.Must(template.ParseFiles("templates/base.html", "templates/"+file))

	if _, ok := data["User"]; !ok {
		if c, err := r.Cookie("user"); err == nil {
			data["User"] = c.Value
		}
	}

	if err := tmpl.ExecuteTemplate(w, "base", data); err != nil {
		http.Error(w, "Template error: "+err.Error(), http.StatusInternalServerError)
		log.Error("template execution failed", "template", file, "err", err)
	}
}
