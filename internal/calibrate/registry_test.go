package calibrate

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookup_KnownTypes(t *testing.T) {
	cases := []struct {
		calibrationType string
		factor          float64
	}{
		{TypeSmartphoneClose, 0.008},
		{TypeSmartphoneMedium, 0.015},
		{TypeSmartphoneFar, 0.025},
		{TypeProfessionalCamera, 0.005},
		{TypeWebcam, 0.012},
	}
	for _, tc := range cases {
		t.Run(tc.calibrationType, func(t *testing.T) {
			profile, err := Lookup(tc.calibrationType)
			require.NoError(t, err)
			require.Equal(t, tc.calibrationType, profile.Type)
			require.Equal(t, tc.factor, profile.FactorCM2PerPixel)
		})
	}
}

func TestLookup_UnknownType(t *testing.T) {
	_, err := Lookup("drone_camera")
	require.Error(t, err)

	var unknown *UnknownCalibrationError
	require.True(t, errors.As(err, &unknown))
	require.Equal(t, "drone_camera", unknown.Requested)
	require.Contains(t, err.Error(), "drone_camera")
}

func TestLookup_ReferenceObjectIsNotAPreset(t *testing.T) {
	_, err := Lookup(TypeReferenceObject)
	require.Error(t, err)
}

func TestTypes_SortedAndComplete(t *testing.T) {
	names := Types()
	require.Len(t, names, 5)
	require.True(t, sortedStrings(names))
	require.Contains(t, names, TypeSmartphoneClose)
	require.NotContains(t, names, TypeReferenceObject)
}

func sortedStrings(s []string) bool {
	for i := 1; i < len(s); i++ {
		if s[i-1] > s[i] {
			return false
		}
	}
	return true
}

func TestProfile_PixelsPerCM(t *testing.T) {
	p := Profile{Type: TypeSmartphoneClose, FactorCM2PerPixel: 0.008}
	want := 1 / math.Sqrt(0.008)
	require.InDelta(t, want, p.PixelsPerCM(), 1e-9)

	require.Equal(t, 0.0, Profile{}.PixelsPerCM())
	require.Equal(t, 0.0, Profile{FactorCM2PerPixel: -1}.PixelsPerCM())
}
