package segment

import "gocv.io/x/gocv"

// hsvRange defines a color range in HSV space (OpenCV convention: hue 0-180).
type hsvRange struct {
	HueMin, HueMax float64
	SatMin, SatMax float64
	ValMin, ValMax float64
}

// Wound tissue presents as saturated reds and lighter pinks. Red hue wraps
// around 0 in OpenCV's HSV encoding, hence the two red bands.
var (
	redLowBand  = hsvRange{HueMin: 0, HueMax: 10, SatMin: 40, SatMax: 255, ValMin: 40, ValMax: 255}
	redHighBand = hsvRange{HueMin: 160, HueMax: 180, SatMin: 40, SatMax: 255, ValMin: 40, ValMax: 255}
	pinkBand    = hsvRange{HueMin: 0, HueMax: 20, SatMin: 20, SatMax: 150, ValMin: 100, ValMax: 255}
)

// LAB thresholds: wound reds sit high on the A (green-red opponent) axis.
const (
	labLightnessMin = 20.0
	labRedAxisMin   = 130.0
)

// Raw channel rule: wound pixels have red clearly above green.
const redGreenDiffMin = 15.0

// mask renders the range as a binary mask over an HSV image.
func (r hsvRange) mask(hsv gocv.Mat) gocv.Mat {
	out := gocv.NewMat()
	gocv.InRangeWithScalar(hsv,
		gocv.NewScalar(r.HueMin, r.SatMin, r.ValMin, 0),
		gocv.NewScalar(r.HueMax, r.SatMax, r.ValMax, 0),
		&out)
	return out
}
