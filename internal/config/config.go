// Package config loads runtime defaults for the command-line tools from
// the environment. The analysis core never reads configuration; everything
// here only seeds flag defaults.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"woundlens/internal/calibrate"
)

// Config holds tool defaults.
type Config struct {
	// CalibrationType is the calibration used when none is given on the
	// command line.
	CalibrationType string

	// ReferenceDiameterCM is the physical diameter of the reference marker.
	ReferenceDiameterCM float64

	// LogLevel and LogFormat configure the zap logger ("debug".."error",
	// "console" or "json").
	LogLevel  string
	LogFormat string
}

// Load reads configuration from the environment, consulting a .env file
// when present (its absence is not an error).
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		CalibrationType:     envOr("WOUNDLENS_CALIBRATION", calibrate.TypeSmartphoneClose),
		ReferenceDiameterCM: envFloatOr("WOUNDLENS_REFERENCE_DIAMETER_CM", calibrate.DefaultReferenceDiameterCM),
		LogLevel:            envOr("WOUNDLENS_LOG_LEVEL", "info"),
		LogFormat:           envOr("WOUNDLENS_LOG_FORMAT", "console"),
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envFloatOr(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f <= 0 {
		return fallback
	}
	return f
}
