package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 32, cfg.Anim.NumFrames)
	assert.Equal(t, 50, cfg.Anim.FrameDurationMs)
	assert.Equal(t, 0, cfg.Anim.LoopCount)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hangman.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"server:\n  addr: \":9999\"\nanim:\n  numFrames: 16\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9999", cfg.Server.Addr)
	assert.Equal(t, 16, cfg.Anim.NumFrames)
	// untouched keys keep their defaults
	assert.Equal(t, "#ff6347", cfg.Colors.Highlight)
}

func TestRenderOptions(t *testing.T) {
	opts, err := Default().RenderOptions()
	require.NoError(t, err)
	assert.Equal(t, 32, opts.NumFrames)
	assert.Equal(t, 9.0, opts.WaveHeight)
	assert.Equal(t, 3, opts.WaveDelay)

	r, g, b, _ := opts.Highlight.RGBA()
	assert.Equal(t, uint32(0xff), r>>8)
	assert.Equal(t, uint32(0x63), g>>8)
	assert.Equal(t, uint32(0x47), b>>8)
}

func TestRenderOptionsBadColor(t *testing.T) {
	cfg := Default()
	cfg.Colors.Word = "not-a-color"
	_, err := cfg.RenderOptions()
	require.Error(t, err)
}
