// Package anim serializes rendered frame sequences into a single animated
// GIF and exposes the bytes as an inline data URI for direct embedding in
// page markup.
package anim

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/png"
	"os"
)

// ErrNoFrames reports an encode call with an empty frame sequence.
var ErrNoFrames = errors.New("anim: no frames to encode")

// Encode serializes frames into one animated GIF byte stream. Each frame is
// shown for frameDurationMs milliseconds; loopCount 0 loops forever. Output
// is byte-for-byte deterministic for identical input.
func Encode(frames []*image.Paletted, frameDurationMs, loopCount int) ([]byte, error) {
	if len(frames) == 0 {
		return nil, ErrNoFrames
	}

	bounds := frames[0].Bounds()
	g := &gif.GIF{
		Image:     frames,
		Delay:     make([]int, len(frames)),
		LoopCount: loopCount,
	}
	for i, f := range frames {
		if f.Bounds() != bounds {
			// The renderer guarantees fixed dimensions; a mismatch is a
			// programming error, not a recoverable condition.
			return nil, fmt.Errorf("anim: frame %d bounds %v, want %v", i, f.Bounds(), bounds)
		}
		g.Delay[i] = frameDurationMs / 10 // GIF delays are in 1/100s
	}

	var buf bytes.Buffer
	if err := gif.EncodeAll(&buf, g); err != nil {
		return nil, fmt.Errorf("anim: encoding gif: %w", err)
	}
	return buf.Bytes(), nil
}

// EncodePNG serializes a single frame as a PNG, for the static non-animated
// path.
func EncodePNG(frame *image.Paletted) ([]byte, error) {
	if frame == nil {
		return nil, ErrNoFrames
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, frame); err != nil {
		return nil, fmt.Errorf("anim: encoding png: %w", err)
	}
	return buf.Bytes(), nil
}

// DataURI wraps an encoded byte stream as an inline data URI, safe to place
// directly as an image source in markup.
func DataURI(data []byte, mimeType string) string {
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// GIFDataURI is the common path: encode frames and return the embeddable
// string in one step.
func GIFDataURI(frames []*image.Paletted, frameDurationMs, loopCount int) (string, error) {
	data, err := Encode(frames, frameDurationMs, loopCount)
	if err != nil {
		return "", err
	}
	return DataURI(data, "image/gif"), nil
}

// WriteFile persists an encoded byte stream to a named path. Debug and
// offline preview only; the live request path never touches disk.
func WriteFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("anim: writing %s: %w", path, err)
	}
	return nil
}
