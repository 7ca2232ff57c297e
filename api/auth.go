package handlers

import (
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/rcanat/disco-hangman/db"
	"github.com/rcanat/disco-hangman/utils"
)

// Accounts are optional: anyone can play, but a logged-in player's name is
// pre-filled and stable in the history table.

// === LOGIN ===
func LoginPage(w http.ResponseWriter, r *http.Request) {
	utils.RenderPage(w, r, "login.html", map[string]interface{}{})
}

func LoginHandler(w http.ResponseWriter, r *http.Request) {
	r.ParseForm()
	username := r.FormValue("username")
	password := r.FormValue("password")

	hash, err := db.UserHash(username)
	if err != nil || bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		utils.RenderPage(w, r, "login.html", map[string]interface{}{
			"Error": "Invalid credentials",
		})
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "user",
		Value:    username,
		Path:     "/",
		HttpOnly: true,
	})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// === REGISTER ===
func RegisterPage(w http.ResponseWriter, r *http.Request) {
	utils.RenderPage(w, r, "register.html", map[string]interface{}{})
}

func RegisterHandler(w http.ResponseWriter, r *http.Request) {
	r.ParseForm()
	username := r.FormValue("username")
	password := r.FormValue("password")

	if username == "" || password == "" {
		utils.RenderPage(w, r, "register.html", map[string]interface{}{
			"Error": "Username and password are required",
		})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		utils.RenderPage(w, r, "register.html", map[string]interface{}{
			"Error": "Could not create account",
		})
		return
	}

	if err := db.CreateUser(username, string(hash)); err != nil {
		utils.RenderPage(w, r, "register.html", map[string]interface{}{
			"Error": "Username already taken",
		})
		return
	}

	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// === LOGOUT ===
func LogoutHandler(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:   "user",
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
