package segment

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
	"gocv.io/x/gocv"

	"woundlens/internal/imageio"
)

var (
	skinTone  = color.RGBA{200, 200, 200, 255}
	woundTone = color.RGBA{200, 40, 40, 255}
)

// woundPhoto paints a wound-colored rectangle on a neutral background and
// converts it to the BGR mat the pipeline expects.
func woundPhoto(w, h int, wound image.Rectangle) gocv.Mat {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if image.Pt(x, y).In(wound) {
				img.Set(x, y, woundTone)
			} else {
				img.Set(x, y, skinTone)
			}
		}
	}
	return imageio.ToMat(img)
}

func TestWound_FindsRedRegion(t *testing.T) {
	mat := woundPhoto(200, 200, image.Rect(80, 60, 120, 90))
	defer mat.Close()

	m, err := Wound(mat, DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, 200, m.Width)
	require.Equal(t, 200, m.Height)

	// Morphology may round the rectangle corners slightly
	require.InDelta(t, 1200, m.Count(), 40)

	// All three color spaces agree on a clean synthetic wound
	require.Greater(t, m.Confidence, 0.8)
	require.LessOrEqual(t, m.Confidence, 1.0)
}

func TestWound_NoWoundYieldsEmptyMask(t *testing.T) {
	mat := woundPhoto(120, 120, image.Rectangle{})
	defer mat.Close()

	m, err := Wound(mat, DefaultOptions())
	require.NoError(t, err)
	require.True(t, m.Empty())
	require.Equal(t, 0.0, m.Confidence)
}

func TestWound_SpeckBelowMinAreaIsArtifact(t *testing.T) {
	mat := woundPhoto(120, 120, image.Rect(50, 50, 53, 53))
	defer mat.Close()

	m, err := Wound(mat, DefaultOptions())
	require.NoError(t, err)
	require.True(t, m.Empty())
}

func TestWound_KeepsOnlyLargestRegion(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 200, 200))
	for y := 0; y < 200; y++ {
		for x := 0; x < 200; x++ {
			img.Set(x, y, skinTone)
		}
	}
	paint := func(r image.Rectangle) {
		for y := r.Min.Y; y < r.Max.Y; y++ {
			for x := r.Min.X; x < r.Max.X; x++ {
				img.Set(x, y, woundTone)
			}
		}
	}
	paint(image.Rect(30, 30, 70, 70))    // main wound, 1600 px
	paint(image.Rect(150, 150, 165, 165)) // satellite, 225 px

	mat := imageio.ToMat(img)
	defer mat.Close()

	m, err := Wound(mat, DefaultOptions())
	require.NoError(t, err)
	require.InDelta(t, 1600, m.Count(), 50)
	require.False(t, m.At(157, 157))
}

func TestWound_Deterministic(t *testing.T) {
	mat := woundPhoto(160, 160, image.Rect(40, 40, 90, 80))
	defer mat.Close()

	first, err := Wound(mat, DefaultOptions())
	require.NoError(t, err)
	second, err := Wound(mat, DefaultOptions())
	require.NoError(t, err)

	require.Equal(t, first.Pix, second.Pix)
	require.Equal(t, first.Confidence, second.Confidence)
}

func TestWound_ZeroOptionsFallBackToDefaults(t *testing.T) {
	mat := woundPhoto(200, 200, image.Rect(80, 60, 120, 90))
	defer mat.Close()

	withDefaults, err := Wound(mat, DefaultOptions())
	require.NoError(t, err)
	withZero, err := Wound(mat, Options{})
	require.NoError(t, err)

	require.Equal(t, withDefaults.Count(), withZero.Count())
}

func TestWound_EmptyImage(t *testing.T) {
	mat := gocv.NewMat()
	defer mat.Close()

	_, err := Wound(mat, DefaultOptions())
	require.Error(t, err)
}
