package calibrate

import (
	"errors"
	"fmt"
)

// ErrReferenceNotFound indicates that no reference object could be detected
// in the image. It is always wrapped in a *CalibrationError.
var ErrReferenceNotFound = errors.New("no reference object detected in image")

// UnknownCalibrationError reports a requested calibration type that is not
// present in the registry. Calibration errors are surfaced rather than
// silently defaulted because they directly bias the physical measurement.
type UnknownCalibrationError struct {
	Requested string
}

func (e *UnknownCalibrationError) Error() string {
	return fmt.Sprintf("unknown calibration type %q", e.Requested)
}

// CalibrationError reports a failure to derive a calibration factor from an
// image. The caller decides whether to fall back to a preset or surface it.
type CalibrationError struct {
	Err error
}

func (e *CalibrationError) Error() string {
	return "calibration failed: " + e.Err.Error()
}

func (e *CalibrationError) Unwrap() error {
	return e.Err
}
