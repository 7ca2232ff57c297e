// Command preview renders a hangman scene for a hand-picked game state and
// writes it to disk, without starting the web server. Useful for checking
// the artwork offline.
//
//	preview -w BLUEBERRY -g BRE -n 4 -o hangman.gif
//	preview -w DOG -g DO -n 5 --static -o hangman.png
package main

import (
	"strings"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/rcanat/disco-hangman/anim"
	"github.com/rcanat/disco-hangman/config"
	"github.com/rcanat/disco-hangman/render"
)

var CLI struct {
	Word    string `short:"w" required:"" help:"The mystery word"`
	Guessed string `short:"g" default:"" help:"Letters already guessed, e.g. 'BRE'"`
	Wrong   int    `short:"n" default:"0" help:"Number of wrong guesses (0-6)"`
	Out     string `short:"o" default:"hangman.gif" help:"Output path"`
	Static  bool   `help:"Write a single-frame PNG instead of an animated GIF"`
	Config  string `short:"c" default:"hangman.yaml" help:"Path to YAML configuration file"`
}

func main() {
	ctx := kong.Parse(&CLI)

	cfg, err := config.Load(CLI.Config)
	if err != nil {
		log.Error("loading config", "err", err)
		ctx.Exit(1)
	}
	opts, err := cfg.RenderOptions()
	if err != nil {
		log.Error("bad render options", "err", err)
		ctx.Exit(1)
	}
	renderer := render.New(opts)

	guessed := make(map[rune]bool)
	for _, c := range strings.ToUpper(CLI.Guessed) {
		guessed[c] = true
	}
	state := render.State{
		Word:         strings.ToUpper(CLI.Word),
		Guessed:      guessed,
		WrongGuesses: CLI.Wrong,
	}

	var data []byte
	if CLI.Static {
		frame, err := renderer.Frame(state, 0)
		if err != nil {
			log.Error("rendering frame", "err", err)
			ctx.Exit(1)
		}
		data, err = anim.EncodePNG(frame)
		if err != nil {
			log.Error("encoding png", "err", err)
			ctx.Exit(1)
		}
	} else {
		frames, err := renderer.Animation(state)
		if err != nil {
			log.Error("rendering animation", "err", err)
			ctx.Exit(1)
		}
		data, err = anim.Encode(frames, cfg.Anim.FrameDurationMs, cfg.Anim.LoopCount)
		if err != nil {
			log.Error("encoding gif", "err", err)
			ctx.Exit(1)
		}
	}

	if err := anim.WriteFile(CLI.Out, data); err != nil {
		log.Error("writing output", "err", err)
		ctx.Exit(1)
	}
	log.Info("wrote", "path", CLI.Out, "bytes", len(data))
}
