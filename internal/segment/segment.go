// Package segment converts a decoded wound photograph into a binary wound
// mask. Three independent color-space detections (HSV, LAB, raw channels)
// are combined by majority vote, refined morphologically, and reduced to
// the largest connected component; disagreement between the detections
// lowers the reported confidence.
package segment

import (
	"errors"
	"image"

	"gocv.io/x/gocv"

	"woundlens/internal/mask"
)

// Options configures wound segmentation.
type Options struct {
	// MinComponentArea is the minimum pixel area for a region to count as
	// a wound. Smaller detections are treated as artifacts and yield an
	// empty mask with zero confidence.
	MinComponentArea int

	// KernelSize is the diameter of the elliptical morphology kernel.
	KernelSize int
}

// DefaultOptions returns the segmentation defaults.
func DefaultOptions() Options {
	return Options{
		MinComponentArea: 25,
		KernelSize:       5,
	}
}

// Wound segments the wound region of a BGR image. The returned mask is
// owned by the caller; identical inputs always produce identical masks.
func Wound(img gocv.Mat, opts Options) (*mask.Mask, error) {
	if img.Empty() {
		return nil, errors.New("empty image")
	}
	if opts.KernelSize <= 0 {
		opts = DefaultOptions()
	}

	hsvMask := hsvWoundMask(img)
	defer hsvMask.Close()

	labMask := labWoundMask(img)
	defer labMask.Close()

	rgbMask := channelWoundMask(img)
	defer rgbMask.Close()

	combined := combineMasks(hsvMask, labMask, rgbMask)
	defer combined.Close()

	refined := refineMask(combined, opts.KernelSize)
	defer refined.Close()

	// Agreement is measured on the raw per-color-space masks, before
	// refinement can hide their disagreement.
	agreement := maskAgreement(hsvMask, labMask, rgbMask)

	full := matToMask(refined)
	largest := full.KeepLargestComponent()

	comp := largest.LargestComponent()
	if comp == nil || comp.Area() < opts.MinComponentArea {
		// No credible wound region: empty mask, zero confidence
		return mask.New(full.Width, full.Height), nil
	}

	largest.Confidence = confidence(agreement, largest)
	return largest, nil
}

// hsvWoundMask thresholds the red and pink hue bands in HSV space.
func hsvWoundMask(img gocv.Mat) gocv.Mat {
	hsv := gocv.NewMat()
	defer hsv.Close()
	gocv.CvtColor(img, &hsv, gocv.ColorBGRToHSV)

	redLow := redLowBand.mask(hsv)
	defer redLow.Close()
	redHigh := redHighBand.mask(hsv)
	defer redHigh.Close()
	pink := pinkBand.mask(hsv)
	defer pink.Close()

	out := gocv.NewMat()
	gocv.BitwiseOr(redLow, redHigh, &out)
	gocv.BitwiseOr(out, pink, &out)
	return out
}

// labWoundMask thresholds the red-opponent axis in LAB space, which holds
// up better than hue under uneven lighting.
func labWoundMask(img gocv.Mat) gocv.Mat {
	lab := gocv.NewMat()
	defer lab.Close()
	gocv.CvtColor(img, &lab, gocv.ColorBGRToLab)

	out := gocv.NewMat()
	gocv.InRangeWithScalar(lab,
		gocv.NewScalar(labLightnessMin, labRedAxisMin, 0, 0),
		gocv.NewScalar(255, 255, 255, 0),
		&out)
	return out
}

// channelWoundMask marks pixels whose red channel clearly exceeds green.
// Subtraction on 8-bit mats saturates at zero, which is exactly the
// one-sided difference wanted here.
func channelWoundMask(img gocv.Mat) gocv.Mat {
	channels := gocv.Split(img)
	for i := range channels {
		defer channels[i].Close()
	}

	diff := gocv.NewMat()
	defer diff.Close()
	// BGR order: channel 2 is red, channel 1 is green
	gocv.Subtract(channels[2], channels[1], &diff)

	out := gocv.NewMat()
	gocv.Threshold(diff, &out, float32(redGreenDiffMin), 255, gocv.ThresholdBinary)
	return out
}

// combineMasks merges the three detections with weights 0.4/0.4/0.2 and
// thresholds at half intensity. Any two agreeing masks pass the threshold;
// no single mask does, so this is a majority vote.
func combineMasks(hsvMask, labMask, rgbMask gocv.Mat) gocv.Mat {
	weighted := gocv.NewMat()
	defer weighted.Close()
	gocv.AddWeighted(hsvMask, 0.4, labMask, 0.4, 0, &weighted)
	gocv.AddWeighted(weighted, 1.0, rgbMask, 0.2, 0, &weighted)

	out := gocv.NewMat()
	gocv.Threshold(weighted, &out, 127, 255, gocv.ThresholdBinary)
	return out
}

// refineMask closes small holes, then opens away speckle noise.
func refineMask(m gocv.Mat, kernelSize int) gocv.Mat {
	kernel := gocv.GetStructuringElement(gocv.MorphEllipse, image.Pt(kernelSize, kernelSize))
	defer kernel.Close()

	out := m.Clone()
	gocv.MorphologyEx(out, &out, gocv.MorphClose, kernel)
	gocv.MorphologyEx(out, &out, gocv.MorphOpen, kernel)
	return out
}

// matToMask converts a single-channel binary Mat into a mask.Mask.
func matToMask(m gocv.Mat) *mask.Mask {
	data := m.ToBytes()
	return mask.FromBytes(m.Cols(), m.Rows(), data)
}
