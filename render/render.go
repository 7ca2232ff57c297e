// Package render draws the hangman scene: the gallows, the figure whose
// body parts light up as wrong guesses accumulate, and the lettered word
// blanks bobbing on a sine wave. Frames come out as paletted images ready
// for GIF encoding.
package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/fogleman/ease"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// MaxGuesses is the number of wrong guesses that ends the game, one per
// body part.
const MaxGuesses = 6

// Canvas layout. The gallows stands on the right, the word row runs along
// the bottom.
const (
	Width  = 500
	Height = 400

	gallowsThickness   = 5
	gallowsBaseXCenter = Width - 100
	gallowsBaseY       = Height - 100
	gallowsBaseLeft    = 67
	gallowsBaseRight   = 67
	gallowsPostLength  = 267
	gallowsCrossbeam   = 133
	gallowsRopeLength  = 33
	gallowsSupportSize = 33

	figureThickness = 5
	figureXCenter   = gallowsBaseXCenter - gallowsCrossbeam
	figureYTop      = gallowsBaseY - gallowsPostLength + gallowsRopeLength
	headRadius      = 26
	mouthY          = figureYTop + headRadius + 8
	mouthRadius     = 8
	torsoTop        = figureYTop + 2*headRadius
	torsoLength     = 100
	armTop          = torsoTop + 16
	armLength       = 33
	legTop          = torsoTop + torsoLength
	legLength       = 33

	shadesY            = figureYTop + headRadius - 5
	shadesBridgeRadius = 3
	shadesLensWidth    = 16
	shadesLensHeight   = 16
	shadesFrameRadius  = shadesBridgeRadius + shadesLensWidth + 3

	wordLeftPad    = 33
	blankThickness = 4
	letterWidth    = 33
	letterSpacing  = 17
	blankY         = Height - 33
)

// BodyPart names the six slots of the figure. The declaration order is the
// reveal order: the first WrongGuesses parts render in the highlight color.
type BodyPart int

const (
	Head BodyPart = iota
	Torso
	LeftArm
	RightArm
	LeftLeg
	RightLeg

	numBodyParts
)

// State is a read-only snapshot of one game, taken by the flow code before
// each render. The renderer never mutates it.
type State struct {
	Word         string
	Guessed      map[rune]bool
	WrongGuesses int
}

// ErrWrongGuesses reports a snapshot whose wrong-guess count is outside
// [0, MaxGuesses]. The renderer surfaces it rather than clamping so that
// flow bugs (a seventh wrong guess) are caught instead of drawn.
var ErrWrongGuesses = errors.New("render: wrong guesses out of range")

// Options controls the animation and the color scheme. Geometry is fixed;
// this renderer draws exactly one figure.
type Options struct {
	NumFrames  int
	WaveHeight float64
	WaveDelay  int

	Background color.Color
	Gallows    color.Color
	Silhouette color.Color
	Highlight  color.Color
	Word       color.Color
}

// DefaultOptions returns the scheme of the original artwork: a lightgray
// silhouette turning tomato, tomato letters, 32 frames of wave.
func DefaultOptions() Options {
	silhouette, _ := colorful.Hex("#d3d3d3")
	highlight, _ := colorful.Hex("#ff6347")

	return Options{
		NumFrames:  32,
		WaveHeight: 9,
		WaveDelay:  3,
		Background: color.White,
		Gallows:    color.Black,
		Silhouette: silhouette,
		Highlight:  highlight,
		Word:       highlight,
	}
}

// Renderer produces frames for one option set. It holds no per-call state
// and is safe for concurrent use.
type Renderer struct {
	opts Options
	pal  color.Palette
}

// New builds a Renderer, fixing the palette up front so every frame shares
// identical color indexing.
func New(opts Options) *Renderer {
	pal := color.Palette{opts.Background, opts.Gallows}
	for _, c := range []color.Color{opts.Silhouette, opts.Highlight, opts.Word} {
		if !sameColor(pal[pal.Index(c)], c) {
			pal = append(pal, c)
		}
	}
	return &Renderer{opts: opts, pal: pal}
}

func sameColor(a, b color.Color) bool {
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	return ar == br && ag == bg && ab == bb && aa == ba
}

// Frame renders the scene for one animation frame. frameIndex only moves
// the wave phase of the word row; the gallows and figure depend on the
// state alone, so playback never flickers.
func (r *Renderer) Frame(state State, frameIndex int) (*image.Paletted, error) {
	if state.WrongGuesses < 0 || state.WrongGuesses > MaxGuesses {
		return nil, fmt.Errorf("%w: %d", ErrWrongGuesses, state.WrongGuesses)
	}

	c := newCanvas(Width, Height, r.pal)
	c.Fill(r.opts.Background)
	r.drawGallows(c)
	r.drawFigure(c, state.WrongGuesses)
	r.drawWord(c, state, func(i int) int { return r.waveOffset(frameIndex, i) }, false)
	return c.Image(), nil
}

// Animation renders the full frame sequence for one state.
func (r *Renderer) Animation(state State) ([]*image.Paletted, error) {
	frames := make([]*image.Paletted, 0, r.opts.NumFrames)
	for i := 0; i < r.opts.NumFrames; i++ {
		f, err := r.Frame(state, i)
		if err != nil {
			return nil, err
		}
		frames = append(frames, f)
	}
	return frames, nil
}

// Finale renders one frame of the end-screen animation, with the whole word
// revealed. On a win the letters drop in and bounce; on a loss they sag.
func (r *Renderer) Finale(state State, frameIndex int, won bool) (*image.Paletted, error) {
	if state.WrongGuesses < 0 || state.WrongGuesses > MaxGuesses {
		return nil, fmt.Errorf("%w: %d", ErrWrongGuesses, state.WrongGuesses)
	}

	c := newCanvas(Width, Height, r.pal)
	c.Fill(r.opts.Background)
	r.drawGallows(c)
	r.drawFigure(c, state.WrongGuesses)
	r.drawWord(c, state, func(i int) int { return r.finaleOffset(frameIndex, i, won) }, true)
	return c.Image(), nil
}

// FinaleAnimation renders the full end-screen sequence.
func (r *Renderer) FinaleAnimation(state State, won bool) ([]*image.Paletted, error) {
	frames := make([]*image.Paletted, 0, r.opts.NumFrames)
	for i := 0; i < r.opts.NumFrames; i++ {
		f, err := r.Finale(state, i, won)
		if err != nil {
			return nil, err
		}
		frames = append(frames, f)
	}
	return frames, nil
}

// waveOffset is the vertical bob of letter i at the given frame.
func (r *Renderer) waveOffset(frameIndex, letterIndex int) int {
	phase := 2 * math.Pi / float64(r.opts.NumFrames) *
		float64(frameIndex+letterIndex*r.opts.WaveDelay)
	return int(math.Round(r.opts.WaveHeight * math.Sin(phase)))
}

// finaleOffset staggers an eased drop (win) or sag (lose) across the
// letters over the frame sequence.
func (r *Renderer) finaleOffset(frameIndex, letterIndex int, won bool) int {
	t := float64(frameIndex)/float64(r.opts.NumFrames-1)*1.5 -
		0.1*float64(letterIndex)
	t = math.Max(0, math.Min(1, t))

	const travel = 60.0
	if won {
		// Falls from above and bounces onto the blank.
		return int(math.Round(travel * (1 - ease.OutBounce(t))))
	}
	// Slumps below the blank.
	return -int(math.Round((travel / 3) * ease.InCubic(t)))
}

func (r *Renderer) colorPlan(wrongGuesses int) [numBodyParts]color.Color {
	var plan [numBodyParts]color.Color
	for part := Head; part < numBodyParts; part++ {
		if int(part) < wrongGuesses {
			plan[part] = r.opts.Highlight
		} else {
			plan[part] = r.opts.Silhouette
		}
	}
	return plan
}

// drawGallows draws the fixed scaffold: base, post, support brace,
// crossbeam and rope, as one polyline with round joints.
func (r *Renderer) drawGallows(c Canvas) {
	c.Polyline([]Point{
		// base
		{gallowsBaseXCenter - gallowsBaseLeft, gallowsBaseY},
		{gallowsBaseXCenter + gallowsBaseRight, gallowsBaseY},

		// post
		{gallowsBaseXCenter, gallowsBaseY},
		{gallowsBaseXCenter, gallowsBaseY - gallowsPostLength},

		// support brace
		{gallowsBaseXCenter, gallowsBaseY - gallowsPostLength + gallowsSupportSize},
		{gallowsBaseXCenter - gallowsSupportSize, gallowsBaseY - gallowsPostLength},
		{gallowsBaseXCenter, gallowsBaseY - gallowsPostLength},

		// crossbeam
		{figureXCenter, gallowsBaseY - gallowsPostLength},

		// rope
		{figureXCenter, figureYTop},
	}, r.opts.Gallows, gallowsThickness)
}

// drawFigure draws the six body parts plus the face. Limbs go first so the
// torso and head sit on top where they overlap.
func (r *Renderer) drawFigure(c Canvas, wrongGuesses int) {
	plan := r.colorPlan(wrongGuesses)

	// left arm
	c.Line(figureXCenter, armTop,
		figureXCenter-armLength, armTop+armLength,
		plan[LeftArm], figureThickness+1)

	// right arm
	c.Line(figureXCenter, armTop,
		figureXCenter+armLength, armTop+armLength,
		plan[RightArm], figureThickness+1)

	// left leg
	c.Line(figureXCenter, legTop,
		figureXCenter-legLength, legTop+legLength,
		plan[LeftLeg], figureThickness+1)

	// right leg
	c.Line(figureXCenter, legTop,
		figureXCenter+legLength, legTop+legLength,
		plan[RightLeg], figureThickness+1)

	// torso
	c.Line(figureXCenter, torsoTop,
		figureXCenter, torsoTop+torsoLength,
		plan[Torso], figureThickness)

	// head
	c.CircleOutline(figureXCenter, figureYTop+headRadius, headRadius,
		plan[Head], figureThickness)

	// mouth
	c.Line(figureXCenter-mouthRadius, mouthY,
		figureXCenter+mouthRadius, mouthY,
		plan[Head], 2)

	// sunglasses, because he's chill like that
	c.Line(figureXCenter-shadesFrameRadius, shadesY,
		figureXCenter+shadesFrameRadius, shadesY,
		plan[Head], 2)
	c.HalfDiscDown(figureXCenter-shadesBridgeRadius-shadesLensWidth/2, shadesY,
		shadesLensWidth/2, plan[Head])
	c.HalfDiscDown(figureXCenter+shadesBridgeRadius+shadesLensWidth/2, shadesY,
		shadesLensWidth/2, plan[Head])
}

// drawWord draws the blank row. offset gives each letter's vertical lift;
// revealAll forces every glyph visible regardless of guesses (finale
// screens).
func (r *Renderer) drawWord(c Canvas, state State, offset func(i int) int, revealAll bool) {
	img := c.Image()
	src := image.NewUniform(r.opts.Word)

	for i, letter := range state.Word {
		x := float64(wordLeftPad + i*(letterWidth+letterSpacing))
		y := float64(blankY - offset(i))

		c.Line(x, y, x+letterWidth, y, r.opts.Gallows, blankThickness)

		if revealAll || state.Guessed[letter] {
			drawLetter(img, letter, x+letterWidth/2, y, letterWidth, src)
		}
	}
}
