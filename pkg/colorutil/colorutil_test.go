package colorutil

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBlend(t *testing.T) {
	base := color.RGBA{R: 200, G: 200, B: 200, A: 255}

	require.Equal(t, base, Blend(base, Green, 0))
	require.Equal(t, color.RGBA{R: 0, G: 255, B: 0, A: 255}, Blend(base, Green, 1))

	half := Blend(base, Black, 0.5)
	require.Equal(t, uint8(100), half.R)
	require.Equal(t, uint8(255), half.A)

	// out-of-range weights clamp
	require.Equal(t, base, Blend(base, Green, -3))
	require.Equal(t, uint8(255), Blend(base, Green, 7).G)
}

func TestRGBToHSV(t *testing.T) {
	// Wound-red tone sits in the low red hue band
	h, s, v := RGBToHSV(200, 40, 40)
	require.InDelta(t, 0, h, 2)
	require.Greater(t, s, 150.0)
	require.InDelta(t, 200, v, 1)

	// Neutral gray has no saturation
	_, s, v = RGBToHSV(200, 200, 200)
	require.Equal(t, 0.0, s)
	require.InDelta(t, 200, v, 1)

	// Pure green hue is 60 in OpenCV's halved range
	h, _, _ = RGBToHSV(0, 255, 0)
	require.InDelta(t, 60, h, 1)
}
