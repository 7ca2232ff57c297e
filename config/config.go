package config

import (
	"fmt"
	"os"

	colorful "github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v2"

	"github.com/rcanat/disco-hangman/render"
)

// Config is the YAML-backed server configuration.
type Config struct {
	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`

	DB struct {
		Path string `yaml:"path"`
	} `yaml:"db"`

	Anim struct {
		NumFrames       int     `yaml:"numFrames"`
		FrameDurationMs int     `yaml:"frameDurationMs"`
		LoopCount       int     `yaml:"loopCount"`
		WaveHeight      float64 `yaml:"waveHeight"`
		WaveDelay       int     `yaml:"waveDelay"`
	} `yaml:"anim"`

	Colors struct {
		Silhouette string `yaml:"silhouette"`
		Highlight  string `yaml:"highlight"`
		Word       string `yaml:"word"`
	} `yaml:"colors"`
}

// Default returns the configuration matching the original artwork.
func Default() Config {
	var c Config
	c.Server.Addr = ":8080"
	c.DB.Path = "./hangman.db"
	c.Anim.NumFrames = 32
	c.Anim.FrameDurationMs = 50
	c.Anim.LoopCount = 0 // loop forever
	c.Anim.WaveHeight = 9
	c.Anim.WaveDelay = 3
	c.Colors.Silhouette = "#d3d3d3"
	c.Colors.Highlight = "#ff6347"
	c.Colors.Word = "#ff6347"
	return c
}

// Load reads a YAML config file over the defaults. A missing file is not an
// error; the defaults stand.
func Load(path string) (Config, error) {
	c := Default()

	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return c, nil
	}
	if err != nil {
		return c, fmt.Errorf("opening config %s: %w", path, err)
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(&c); err != nil {
		return c, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return c, nil
}

// RenderOptions converts the config into renderer options, parsing the hex
// color strings.
func (c Config) RenderOptions() (render.Options, error) {
	opts := render.DefaultOptions()
	opts.NumFrames = c.Anim.NumFrames
	opts.WaveHeight = c.Anim.WaveHeight
	opts.WaveDelay = c.Anim.WaveDelay

	silhouette, err := colorful.Hex(c.Colors.Silhouette)
	if err != nil {
		return opts, fmt.Errorf("parsing silhouette color %q: %w", c.Colors.Silhouette, err)
	}
	highlight, err := colorful.Hex(c.Colors.Highlight)
	if err != nil {
		return opts, fmt.Errorf("parsing highlight color %q: %w", c.Colors.Highlight, err)
	}
	word, err := colorful.Hex(c.Colors.Word)
	if err != nil {
		return opts, fmt.Errorf("parsing word color %q: %w", c.Colors.Word, err)
	}

	opts.Silhouette = silhouette
	opts.Highlight = highlight
	opts.Word = word
	return opts, nil
}
