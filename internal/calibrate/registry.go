// Package calibrate resolves the cm²-per-pixel factor that converts
// pixel-based wound measurements into physical units, either from a preset
// registry keyed by capture setup or from a reference object detected in
// the image itself.
package calibrate

import (
	"math"
	"sort"
)

// Profile binds a calibration identifier to its cm²-per-pixel factor.
type Profile struct {
	Type              string  `json:"type"`
	FactorCM2PerPixel float64 `json:"factor_cm2_per_pixel"`
}

// PixelsPerCM returns the linear pixel density implied by the area factor.
func (p Profile) PixelsPerCM() float64 {
	if p.FactorCM2PerPixel <= 0 {
		return 0
	}
	return 1 / math.Sqrt(p.FactorCM2PerPixel)
}

// Registered calibration types.
const (
	TypeSmartphoneClose    = "smartphone_close"    // ~5-10cm distance
	TypeSmartphoneMedium   = "smartphone_medium"   // ~15-25cm distance
	TypeSmartphoneFar      = "smartphone_far"      // ~30-40cm distance
	TypeProfessionalCamera = "professional_camera" // high-resolution medical camera
	TypeWebcam             = "webcam"              // standard webcam

	// TypeReferenceObject is resolved per call from a detected reference
	// object rather than from the registry.
	TypeReferenceObject = "reference_object"
)

// presets holds the registry factors in cm² per pixel. The map is never
// written after initialization, so concurrent lookups need no locking.
var presets = map[string]float64{
	TypeSmartphoneClose:    0.008,
	TypeSmartphoneMedium:   0.015,
	TypeSmartphoneFar:      0.025,
	TypeProfessionalCamera: 0.005,
	TypeWebcam:             0.012,
}

// Lookup returns the preset profile for a calibration type, or a
// *UnknownCalibrationError if the type is not registered.
func Lookup(calibrationType string) (Profile, error) {
	factor, ok := presets[calibrationType]
	if !ok {
		return Profile{}, &UnknownCalibrationError{Requested: calibrationType}
	}
	return Profile{Type: calibrationType, FactorCM2PerPixel: factor}, nil
}

// Types returns the registered preset names in sorted order.
func Types() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
