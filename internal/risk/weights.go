package risk

// Sub-score ceilings. The six ceilings sum to 12, above the declared 0-10
// scale maximum, so the aggregate is clamped in Calculate.
const (
	ClinicalCeiling   = 3.0
	TissueCeiling     = 3.0
	ExudateCeiling    = 2.0
	SizeCeiling       = 1.0
	ChronicityCeiling = 1.0
	PatientCeiling    = 2.0
)

// keywordWeights maps clinical note keywords to infection severity weights.
// Each distinct keyword contributes at most once per note; the sum is
// clamped to ClinicalCeiling so a verbose note cannot dominate the
// composite score.
var keywordWeights = map[string]float64{
	"purulent":        2.0,
	"pus":             2.0,
	"foul odor":       1.8,
	"malodorous":      1.8,
	"necrotic":        1.5,
	"black eschar":    1.5,
	"fever":           1.2,
	"warmth":          1.0,
	"erythema":        1.0,
	"swelling":        0.8,
	"friable":         0.7,
	"pain":            0.6,
	"bleeding":        0.6,
	"slough":          0.5,
	"delayed healing": 0.5,
}

// patientFactorWeights maps comorbidities to their per-factor contribution.
// Factors not listed here are ignored; the sum is clamped to PatientCeiling.
var patientFactorWeights = map[PatientFactor]float64{
	FactorDiabetes:          0.6,
	FactorImmunosuppressed:  0.8,
	FactorPoorCirculation:   0.5,
	FactorSmoking:           0.3,
	FactorMalnutrition:      0.4,
	FactorIncontinence:      0.3,
	FactorRecentAntibiotics: 0.2,
}

// exudateScores is the fixed lookup table for drainage levels. Unrecognized
// levels default to ExudateNone.
var exudateScores = map[ExudateLevel]float64{
	ExudateNone:     0.0,
	ExudateLight:    0.5,
	ExudateModerate: 1.2,
	ExudateHeavy:    2.0,
}

// tissueBand is one threshold step of the banded tissue scoring: percentages
// strictly above Threshold contribute Points.
type tissueBand struct {
	Threshold float64
	Points    float64
}

// Necrotic tissue carries the highest infection association, slough an
// intermediate one. Bands are evaluated highest-first; only the first
// matching band contributes.
var (
	necroticBands = []tissueBand{
		{Threshold: 50, Points: 2.5},
		{Threshold: 25, Points: 1.5},
		{Threshold: 10, Points: 0.8},
	}
	sloughBands = []tissueBand{
		{Threshold: 60, Points: 1.5},
		{Threshold: 30, Points: 0.8},
		{Threshold: 10, Points: 0.4},
	}
)

// lowGranulationPenalty is added when granulation cover is below
// lowGranulationPercent, reflecting a wound bed that is not healing.
const (
	lowGranulationPercent = 20.0
	lowGranulationPenalty = 0.5
)

// sizeBands scores wound area in cm² as a saturating ramp: very large
// wounds cap at SizeCeiling instead of dominating the composite.
var sizeBands = []tissueBand{
	{Threshold: 50, Points: 1.0},
	{Threshold: 25, Points: 0.7},
	{Threshold: 10, Points: 0.4},
	{Threshold: 5, Points: 0.2},
}

// chronicityBands scores wound age in days.
var chronicityBands = []tissueBand{
	{Threshold: 90, Points: 1.0},
	{Threshold: 30, Points: 0.6},
	{Threshold: 14, Points: 0.3},
}

// bandScore returns the points of the first band whose threshold the value
// strictly exceeds, or 0.
func bandScore(value float64, bands []tissueBand) float64 {
	for _, b := range bands {
		if value > b.Threshold {
			return b.Points
		}
	}
	return 0
}
