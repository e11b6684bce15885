package measure

import (
	"testing"

	"github.com/stretchr/testify/require"

	"woundlens/internal/calibrate"
	"woundlens/internal/mask"
)

func rectMask(w, h, x0, y0, bw, bh int) *mask.Mask {
	m := mask.New(w, h)
	for y := y0; y < y0+bh; y++ {
		for x := x0; x < x0+bw; x++ {
			m.Set(x, y, true)
		}
	}
	return m
}

// unitProfile maps one pixel to one cm² so pixel geometry carries straight
// through to the physical measurements.
var unitProfile = calibrate.Profile{Type: "unit", FactorCM2PerPixel: 1}

func TestExtract_RectangularWound(t *testing.T) {
	m := rectMask(30, 30, 2, 3, 10, 5)
	m.Confidence = 0.8

	got := Extract(m, unitProfile)

	require.Equal(t, 50, got.PixelArea)
	require.InDelta(t, 50.0, got.AreaCM2, 1e-9)
	// Dimensions span the pixel centers of the 10x5 block.
	require.InDelta(t, 9.0, got.LengthCM, 1e-9)
	require.InDelta(t, 4.0, got.WidthCM, 1e-9)
	require.InDelta(t, 26.0, got.PerimeterCM, 1e-9)
	require.Equal(t, 0.8, got.Confidence)
	require.Equal(t, "unit", got.CalibrationType)
}

func TestExtract_LengthIsAlwaysTheLongerSide(t *testing.T) {
	// Tall wound: length and width must not follow image axes.
	got := Extract(rectMask(30, 30, 5, 5, 5, 10), unitProfile)
	require.InDelta(t, 9.0, got.LengthCM, 1e-9)
	require.InDelta(t, 4.0, got.WidthCM, 1e-9)
}

func TestExtract_AppliesCalibrationFactor(t *testing.T) {
	m := rectMask(30, 30, 2, 3, 10, 5)

	profile, err := calibrate.Lookup(calibrate.TypeSmartphoneClose)
	require.NoError(t, err)

	got := Extract(m, profile)
	require.InDelta(t, 0.4, got.AreaCM2, 1e-9) // 50 px * 0.008 cm²/px
	require.Equal(t, calibrate.TypeSmartphoneClose, got.CalibrationType)
	require.Equal(t, 0.008, got.CalibrationFactor)
}

func TestExtract_TinyWoundHitsReportingFloor(t *testing.T) {
	m := rectMask(20, 20, 5, 5, 5, 1) // 5 px * 0.008 = 0.04 cm²

	profile, err := calibrate.Lookup(calibrate.TypeSmartphoneClose)
	require.NoError(t, err)

	got := Extract(m, profile)
	require.Equal(t, 0.1, got.AreaCM2)
	require.Equal(t, 5, got.PixelArea)
}

func TestExtract_EmptyMaskIsZeroNotFloored(t *testing.T) {
	got := Extract(mask.New(20, 20), unitProfile)

	require.Equal(t, 0.0, got.AreaCM2)
	require.Equal(t, 0.0, got.LengthCM)
	require.Equal(t, 0.0, got.WidthCM)
	require.Equal(t, 0.0, got.PerimeterCM)
	require.Equal(t, 0, got.PixelArea)
	require.Equal(t, 0.0, got.Confidence)
	// Calibration provenance is still reported.
	require.Equal(t, "unit", got.CalibrationType)
}

func TestExtract_MeasuresLargestComponentOnly(t *testing.T) {
	m := rectMask(40, 40, 2, 3, 10, 5)
	m.Set(35, 35, true) // stray speck far from the wound

	got := Extract(m, unitProfile)

	// Area counts every wound pixel; dimensions describe the main region.
	require.Equal(t, 51, got.PixelArea)
	require.InDelta(t, 9.0, got.LengthCM, 1e-9)
	require.InDelta(t, 4.0, got.WidthCM, 1e-9)
	require.InDelta(t, 26.0, got.PerimeterCM, 1e-9)
}
