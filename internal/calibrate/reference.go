package calibrate

import (
	"errors"
	"image"
	"math"

	"gocv.io/x/gocv"
	"gonum.org/v1/gonum/mat"

	"woundlens/pkg/geometry"
)

// DefaultReferenceDiameterCM is the assumed physical diameter of the
// reference marker when the caller does not supply one (a coin-sized disc).
const DefaultReferenceDiameterCM = 2.5

// Hough circle parameters tuned for coin-scale markers in handheld photos.
const (
	houghDP        = 1.0
	houghMinDist   = 50.0
	houghParam1    = 50.0
	houghParam2    = 30.0
	houghMinRadius = 20
	houghMaxRadius = 200
)

// refinement settings for the least-squares rim fit
const (
	rimBandInner  = 0.8 // annulus bounds as fractions of the Hough radius
	rimBandOuter  = 1.2
	rimMinPoints  = 12
	rimMaxDeviate = 0.2 // reject fits straying >20% from the Hough radius
)

// Resolve returns the calibration profile for the requested type. For
// TypeReferenceObject the factor is derived from a circular marker of known
// physical diameter detected in the image; detection failure returns a
// *CalibrationError so the caller can fall back explicitly. Any other type
// is looked up in the preset registry.
func Resolve(img gocv.Mat, requested string, referenceDiameterCM float64) (Profile, error) {
	if requested == TypeReferenceObject {
		return fromReferenceObject(img, referenceDiameterCM)
	}
	return Lookup(requested)
}

// fromReferenceObject detects the largest circular marker in the image and
// converts its known physical diameter into a cm²-per-pixel factor.
func fromReferenceObject(img gocv.Mat, diameterCM float64) (Profile, error) {
	if img.Empty() {
		return Profile{}, &CalibrationError{Err: errors.New("empty image")}
	}
	if diameterCM <= 0 {
		diameterCM = DefaultReferenceDiameterCM
	}

	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(img, &gray, gocv.ColorBGRToGray)

	blurred := gocv.NewMat()
	defer blurred.Close()
	gocv.GaussianBlur(gray, &blurred, image.Pt(9, 9), 2, 2, gocv.BorderDefault)

	circles := gocv.NewMat()
	defer circles.Close()
	gocv.HoughCirclesWithParams(blurred, &circles, gocv.HoughGradient,
		houghDP, houghMinDist, houghParam1, houghParam2,
		houghMinRadius, houghMaxRadius)

	if circles.Empty() || circles.Cols() == 0 {
		return Profile{}, &CalibrationError{Err: ErrReferenceNotFound}
	}

	// The largest circle is assumed to be the marker
	best := 0
	bestRadius := float64(circles.GetFloatAt(0, 2))
	for i := 1; i < circles.Cols(); i++ {
		if r := float64(circles.GetFloatAt(0, i*3+2)); r > bestRadius {
			bestRadius = r
			best = i
		}
	}
	center := geometry.Point2D{
		X: float64(circles.GetFloatAt(0, best*3)),
		Y: float64(circles.GetFloatAt(0, best*3+1)),
	}

	if radius, ok := refineRadius(blurred, center, bestRadius); ok {
		bestRadius = radius
	}

	pixelsPerCM := (2 * bestRadius) / diameterCM
	if pixelsPerCM <= 0 {
		return Profile{}, &CalibrationError{Err: ErrReferenceNotFound}
	}

	return Profile{
		Type:              TypeReferenceObject,
		FactorCM2PerPixel: 1 / (pixelsPerCM * pixelsPerCM),
	}, nil
}

// refineRadius sharpens the Hough estimate with an algebraic least-squares
// circle fit (Kasa method) over edge pixels near the detected rim. Reports
// false when too few rim points are found or the fit strays too far from
// the Hough radius.
func refineRadius(gray gocv.Mat, center geometry.Point2D, radius float64) (float64, bool) {
	edges := gocv.NewMat()
	defer edges.Close()
	gocv.Canny(gray, &edges, 50, 150)

	inner := radius * rimBandInner
	outer := radius * rimBandOuter

	x0 := int(math.Floor(center.X - outer))
	x1 := int(math.Ceil(center.X + outer))
	y0 := int(math.Floor(center.Y - outer))
	y1 := int(math.Ceil(center.Y + outer))

	var rim []geometry.Point2D
	for y := max(y0, 0); y <= min(y1, edges.Rows()-1); y++ {
		for x := max(x0, 0); x <= min(x1, edges.Cols()-1); x++ {
			if edges.GetUCharAt(y, x) == 0 {
				continue
			}
			d := center.Distance(geometry.Point2D{X: float64(x), Y: float64(y)})
			if d >= inner && d <= outer {
				rim = append(rim, geometry.Point2D{X: float64(x), Y: float64(y)})
			}
		}
	}
	if len(rim) < rimMinPoints {
		return 0, false
	}

	// Kasa fit: solve a*x + b*y + c = x² + y² in the least-squares sense;
	// the circle is then center (a/2, b/2), radius sqrt(c + cx² + cy²).
	a := mat.NewDense(len(rim), 3, nil)
	rhs := mat.NewVecDense(len(rim), nil)
	for i, p := range rim {
		a.Set(i, 0, p.X)
		a.Set(i, 1, p.Y)
		a.Set(i, 2, 1)
		rhs.SetVec(i, p.X*p.X+p.Y*p.Y)
	}

	var sol mat.VecDense
	if err := sol.SolveVec(a, rhs); err != nil {
		return 0, false
	}

	cx := sol.AtVec(0) / 2
	cy := sol.AtVec(1) / 2
	r2 := sol.AtVec(2) + cx*cx + cy*cy
	if r2 <= 0 {
		return 0, false
	}
	fitted := math.Sqrt(r2)

	if math.Abs(fitted-radius) > radius*rimMaxDeviate {
		return 0, false
	}
	return fitted, true
}
