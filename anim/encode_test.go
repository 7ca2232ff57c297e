package anim

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcanat/disco-hangman/render"
)

var testPalette = color.Palette{color.White, color.Black}

func makeFrames(n, w, h int) []*image.Paletted {
	frames := make([]*image.Paletted, n)
	for i := range frames {
		f := image.NewPaletted(image.Rect(0, 0, w, h), testPalette)
		f.SetColorIndex(i%w, i%h, 1)
		frames[i] = f
	}
	return frames
}

func TestEncodeDeterministic(t *testing.T) {
	frames := makeFrames(8, 20, 20)

	a, err := Encode(frames, 50, 0)
	require.NoError(t, err)
	b, err := Encode(frames, 50, 0)
	require.NoError(t, err)

	assert.True(t, bytes.Equal(a, b), "encoding the same frames twice must be byte-identical")
}

func TestEncodeEmpty(t *testing.T) {
	_, err := Encode(nil, 50, 0)
	require.ErrorIs(t, err, ErrNoFrames)

	_, err = Encode([]*image.Paletted{}, 50, 0)
	require.ErrorIs(t, err, ErrNoFrames)
}

func TestEncodeMismatchedBounds(t *testing.T) {
	frames := makeFrames(3, 20, 20)
	frames[1] = image.NewPaletted(image.Rect(0, 0, 10, 10), testPalette)

	_, err := Encode(frames, 50, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bounds")
}

func TestEncodeRendererRoundTrip(t *testing.T) {
	r := render.New(render.DefaultOptions())
	guessed := map[rune]bool{'B': true, 'R': true, 'E': true}
	frames, err := r.Animation(render.State{
		Word:         "BLUEBERRY",
		Guessed:      guessed,
		WrongGuesses: 4,
	})
	require.NoError(t, err)
	require.Len(t, frames, 32)

	data, err := Encode(frames, 50, 0)
	require.NoError(t, err)

	decoded, err := gif.DecodeAll(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Len(t, decoded.Image, 32)
	assert.Equal(t, 0, decoded.LoopCount)
	for i, delay := range decoded.Delay {
		assert.Equal(t, 5, delay, "frame %d delay", i) // 50ms in 1/100s units
	}
}

func TestDataURI(t *testing.T) {
	data := []byte{0x47, 0x49, 0x46, 0x38, 0x39, 0x61}
	uri := DataURI(data, "image/gif")

	require.True(t, strings.HasPrefix(uri, "data:image/gif;base64,"))
	payload := strings.TrimPrefix(uri, "data:image/gif;base64,")
	back, err := base64.StdEncoding.DecodeString(payload)
	require.NoError(t, err)
	assert.Equal(t, data, back)
}

func TestGIFDataURI(t *testing.T) {
	uri, err := GIFDataURI(makeFrames(2, 10, 10), 100, 0)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(uri, "data:image/gif;base64,"))

	_, err = GIFDataURI(nil, 100, 0)
	require.ErrorIs(t, err, ErrNoFrames)
}

func TestEncodePNG(t *testing.T) {
	_, err := EncodePNG(nil)
	require.ErrorIs(t, err, ErrNoFrames)

	frame := makeFrames(1, 15, 10)[0]
	data, err := EncodePNG(frame)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 15, 10), img.Bounds())
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hangman.gif")
	data, err := Encode(makeFrames(2, 10, 10), 50, 0)
	require.NoError(t, err)

	require.NoError(t, WriteFile(path, data))
	back, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, data, back)
}
