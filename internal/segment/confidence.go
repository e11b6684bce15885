package segment

import (
	"math"

	"gocv.io/x/gocv"
	"gonum.org/v1/gonum/stat"

	"woundlens/internal/mask"
)

// Coverage plausibility: a wound covering almost none or almost all of the
// frame is suspicious and gets its confidence cut.
const (
	minPlausibleCoverage = 0.01
	maxPlausibleCoverage = 0.7
	coveragePenalty      = 0.7
)

// Contiguity weighting: the contiguity term scales confidence within
// [contiguityFloor, 1] so a ragged boundary dampens rather than zeroes it.
const contiguityFloor = 0.7

// maskAgreement returns the mean pairwise intersection-over-union of the
// three color-space detections.
func maskAgreement(a, b, c gocv.Mat) float64 {
	ious := []float64{iou(a, b), iou(a, c), iou(b, c)}
	return stat.Mean(ious, nil)
}

// iou computes intersection-over-union of two binary masks. Two empty
// masks have an undefined union and score 0.
func iou(a, b gocv.Mat) float64 {
	and := gocv.NewMat()
	defer and.Close()
	or := gocv.NewMat()
	defer or.Close()

	gocv.BitwiseAnd(a, b, &and)
	gocv.BitwiseOr(a, b, &or)

	union := gocv.CountNonZero(or)
	if union == 0 {
		return 0
	}
	return float64(gocv.CountNonZero(and)) / float64(union)
}

// confidence combines detector agreement, coverage plausibility, and
// boundary contiguity of the (single-component) final mask into a [0,1]
// score, rounded to three decimals.
func confidence(agreement float64, m *mask.Mask) float64 {
	penalty := 1.0
	if coverage := m.CoverageRatio(); coverage < minPlausibleCoverage || coverage > maxPlausibleCoverage {
		penalty = coveragePenalty
	}

	contiguity := contiguityScore(m)
	weight := contiguityFloor + (1-contiguityFloor)*contiguity

	c := agreement * penalty * weight
	return math.Round(clamp01(c)*1000) / 1000
}

// contiguityScore rates how compact the mask boundary is using the
// isoperimetric ratio 4πA/P². A disc scores near 1, a ragged or stringy
// region near 0.
func contiguityScore(m *mask.Mask) float64 {
	area := float64(m.Count())
	if area <= 0 {
		return 0
	}
	perimeter := m.BoundaryLength()
	if perimeter <= 0 {
		// Too small to trace a boundary; a compact dot is fine
		return 1
	}
	return clamp01(4 * math.Pi * area / (perimeter * perimeter))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
