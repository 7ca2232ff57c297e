package words

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// Built-in list used when the remote API is unreachable or misbehaves.
var fallback = []string{
	"STINKY", "CARPET", "PYTHON", "HAMBURGER", "BUCKET",
	"BLUEBERRY", "ALGORITHM", "GALLOWS", "DISCO", "SUNGLASSES",
}

var client = &http.Client{Timeout: 5 * time.Second}

// Random returns an uppercase mystery word of the given length from the
// random-word API, falling back to the built-in list on any failure.
func Random(length int) string {
	url := fmt.Sprintf("https://random-word-api.herokuapp.com/word?length=%d", length)
	resp, err := client.Get(url)
	if err != nil {
		log.Warn("word API unreachable, using fallback list", "err", err)
		return fallbackWord()
	}
	defer resp.Body.Close()

	var words []string
	if err := json.NewDecoder(resp.Body).Decode(&words); err != nil || len(words) == 0 {
		log.Warn("word API returned no usable words, using fallback list")
		return fallbackWord()
	}

	word := strings.ToUpper(words[0])
	for _, c := range word {
		if c < 'A' || c > 'Z' {
			return fallbackWord()
		}
	}
	return word
}

func fallbackWord() string {
	return fallback[rand.Intn(len(fallback))]
}
