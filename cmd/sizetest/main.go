// Command sizetest estimates the physical size of a wound from a photo.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"strings"

	"go.uber.org/zap"

	"woundlens/internal/calibrate"
	"woundlens/internal/config"
	"woundlens/internal/estimate"
	"woundlens/internal/imageio"
	"woundlens/internal/logging"
	"woundlens/internal/mask"
	"woundlens/internal/version"
	"woundlens/pkg/colorutil"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	imagePath := flag.String("image", "", "Path to wound image (TIFF, PNG, or JPEG)")
	calibration := flag.String("calibration", cfg.CalibrationType,
		"Calibration type: "+strings.Join(calibrate.Types(), ", ")+", or "+calibrate.TypeReferenceObject)
	refDiameter := flag.Float64("ref-diameter", cfg.ReferenceDiameterCM,
		"Reference object diameter in cm (reference_object calibration only)")
	maskOut := flag.String("mask-out", "", "Write a PNG overlay of the segmentation mask to this path")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		return
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if *imagePath == "" {
		fmt.Println("Usage: sizetest -image <path> [-calibration smartphone_close] [-ref-diameter 2.5]")
		os.Exit(1)
	}

	data, err := os.ReadFile(*imagePath)
	if err != nil {
		logger.Fatal("Failed to read image", zap.String("path", *imagePath), zap.Error(err))
	}

	logger.Info("Estimating wound size",
		zap.String("path", *imagePath),
		zap.String("calibration", *calibration),
		zap.Int("bytes", len(data)))

	opts := []estimate.Option{estimate.WithReferenceDiameter(*refDiameter)}
	if *maskOut != "" {
		opts = append(opts, estimate.WithMask())
	}

	result, err := estimate.WoundSize(data, *calibration, opts...)
	if err != nil {
		var unknown *calibrate.UnknownCalibrationError
		switch {
		case errors.As(err, &unknown):
			logger.Fatal("Unknown calibration type",
				zap.String("requested", unknown.Requested),
				zap.Strings("known", calibrate.Types()))
		case errors.Is(err, calibrate.ErrReferenceNotFound):
			logger.Fatal("No reference object found; retake the photo or use a preset calibration")
		case errors.Is(err, estimate.ErrDecodeImage):
			logger.Fatal("File is not a decodable image", zap.String("path", *imagePath))
		default:
			logger.Fatal("Estimation failed", zap.Error(err))
		}
	}

	fmt.Printf("Wound size:   %.2f cm2 (%d px)\n", result.AreaCM2, result.PixelArea)
	fmt.Printf("Dimensions:   %.2f x %.2f cm\n", result.LengthCM, result.WidthCM)
	fmt.Printf("Perimeter:    %.2f cm\n", result.PerimeterCM)
	fmt.Printf("Confidence:   %.1f%%\n", result.Confidence*100)
	fmt.Printf("Calibration:  %s (%.6f cm2/px)\n", result.CalibrationType, result.CalibrationFactor)

	if *maskOut != "" {
		src, _, err := imageio.DecodeBytes(data)
		if err != nil {
			logger.Fatal("Failed to decode image for overlay", zap.Error(err))
		}
		if err := writeMaskOverlay(*maskOut, src, result.Mask); err != nil {
			logger.Fatal("Failed to write mask overlay", zap.String("path", *maskOut), zap.Error(err))
		}
		logger.Info("Wrote mask overlay", zap.String("path", *maskOut))
	}
}

// writeMaskOverlay saves the source image with the wound region tinted and
// its boundary outlined.
func writeMaskOverlay(path string, src image.Image, m *mask.Mask) error {
	bounds := src.Bounds()
	out := image.NewRGBA(bounds)
	draw.Draw(out, bounds, src, bounds.Min, draw.Src)

	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if !m.At(x, y) {
				continue
			}
			px, py := bounds.Min.X+x, bounds.Min.Y+y
			base := color.RGBAModel.Convert(out.At(px, py)).(color.RGBA)
			out.Set(px, py, colorutil.Blend(base, colorutil.Green, 0.35))
		}
	}
	for _, p := range m.KeepLargestComponent().TraceBoundary() {
		out.Set(bounds.Min.X+p.X, bounds.Min.Y+p.Y, colorutil.Magenta)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, out)
}
