// Package measure converts a segmentation mask and a calibration profile
// into physical wound measurements.
package measure

import (
	"math"

	"woundlens/internal/calibrate"
	"woundlens/internal/mask"
	"woundlens/pkg/geometry"
)

// Measurement is the physical description of a segmented wound. It is a
// returned value, never mutated.
type Measurement struct {
	AreaCM2     float64 `json:"size_cm2"`
	LengthCM    float64 `json:"length_cm"`
	WidthCM     float64 `json:"width_cm"`
	PerimeterCM float64 `json:"perimeter_cm"`

	// PixelArea is the raw pixel count behind AreaCM2, kept for audit.
	PixelArea int `json:"pixel_area"`

	// Confidence is carried through from segmentation unchanged:
	// measurement cannot improve on segmentation quality.
	Confidence float64 `json:"confidence"`

	CalibrationType   string  `json:"calibration_method"`
	CalibrationFactor float64 `json:"calibration_factor"`
}

// minAreaCM2 is the reporting floor for a detected wound. It never applies
// to an empty mask, which reports zero area.
const minAreaCM2 = 0.1

// Extract measures the wound in the mask using the calibration factor.
// An empty mask yields zero area, dimensions, and confidence — "no wound
// detected" is a valid clinical outcome, not an error.
func Extract(m *mask.Mask, profile calibrate.Profile) Measurement {
	out := Measurement{
		CalibrationType:   profile.Type,
		CalibrationFactor: profile.FactorCM2PerPixel,
	}

	pixelArea := m.Count()
	if pixelArea == 0 {
		return out
	}

	out.PixelArea = pixelArea
	out.Confidence = m.Confidence
	out.AreaCM2 = round2(math.Max(float64(pixelArea)*profile.FactorCM2PerPixel, minAreaCM2))

	pixelsPerCM := profile.PixelsPerCM()
	if pixelsPerCM <= 0 {
		return out
	}

	// Length and width come from the minimum-area bounding rectangle of
	// the main wound region; the longer side is the length.
	comp := m.LargestComponent()
	pts := make([]geometry.Point2D, len(comp.Points))
	for i, p := range comp.Points {
		pts[i] = p.ToFloat()
	}
	rect := geometry.MinAreaRect(pts)
	out.LengthCM = round2(rect.LongSide() / pixelsPerCM)
	out.WidthCM = round2(rect.ShortSide() / pixelsPerCM)

	main := m.KeepLargestComponent()
	out.PerimeterCM = round2(main.BoundaryLength() / pixelsPerCM)

	return out
}

// round2 rounds to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
