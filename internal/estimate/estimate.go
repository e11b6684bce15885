// Package estimate orchestrates wound size estimation: decode guard,
// segmentation, calibration resolution, and measurement extraction.
//
// The package holds no state: concurrent estimations are safe, each call
// allocating its own intermediate masks. Calibration failures propagate
// unchanged to the caller; there are no retries and no silent fallbacks.
package estimate

import (
	"errors"
	"fmt"
	"image"

	"gocv.io/x/gocv"

	"woundlens/internal/calibrate"
	"woundlens/internal/imageio"
	"woundlens/internal/mask"
	"woundlens/internal/measure"
	"woundlens/internal/segment"
)

// ErrDecodeImage reports a buffer that is not a valid image.
var ErrDecodeImage = errors.New("cannot decode image buffer")

// Result is the outcome of one wound size estimation.
type Result struct {
	measure.Measurement

	// Mask holds the segmentation mask when WithMask was requested.
	Mask *mask.Mask `json:"mask,omitempty"`
}

type options struct {
	returnMask          bool
	referenceDiameterCM float64
	segment             segment.Options
}

// Option customizes an estimation call.
type Option func(*options)

// WithMask requests the segmentation mask in the result.
func WithMask() Option {
	return func(o *options) { o.returnMask = true }
}

// WithReferenceDiameter sets the known physical diameter (cm) of the
// reference object used for "reference_object" calibration.
func WithReferenceDiameter(cm float64) Option {
	return func(o *options) { o.referenceDiameterCM = cm }
}

// WithSegmentOptions overrides the segmentation defaults.
func WithSegmentOptions(so segment.Options) Option {
	return func(o *options) { o.segment = so }
}

// WoundSize estimates the physical wound size from a raw image buffer. An
// undecodable buffer fails with ErrDecodeImage; an unknown calibration type
// fails with *calibrate.UnknownCalibrationError; a requested but undetected
// reference object fails with *calibrate.CalibrationError.
func WoundSize(imageData []byte, calibrationType string, opts ...Option) (*Result, error) {
	img, _, err := imageio.DecodeBytes(imageData)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeImage, err)
	}
	return FromImage(img, calibrationType, opts...)
}

// FromImage estimates wound size from an already decoded image.
func FromImage(img image.Image, calibrationType string, opts ...Option) (*Result, error) {
	mat := imageio.ToMat(img)
	defer mat.Close()
	return fromMat(mat, calibrationType, buildOptions(opts))
}

func buildOptions(opts []Option) options {
	o := options{
		referenceDiameterCM: calibrate.DefaultReferenceDiameterCM,
		segment:             segment.DefaultOptions(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func fromMat(mat gocv.Mat, calibrationType string, o options) (*Result, error) {
	woundMask, err := segment.Wound(mat, o.segment)
	if err != nil {
		return nil, fmt.Errorf("segment wound: %w", err)
	}

	profile, err := calibrate.Resolve(mat, calibrationType, o.referenceDiameterCM)
	if err != nil {
		return nil, err
	}

	result := &Result{Measurement: measure.Extract(woundMask, profile)}
	if o.returnMask {
		result.Mask = woundMask
	}
	return result, nil
}
