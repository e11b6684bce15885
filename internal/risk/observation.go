// Package risk implements the multi-factor wound infection risk score.
//
// Six independent sub-scorers each examine one aspect of a clinical
// observation and produce a bounded sub-score; Calculate sums them, clamps
// the total to the 0-10 scale, and classifies the result into a risk level.
// Every function here is pure: identical observations always produce
// identical scores, and missing fields default rather than fail so scoring
// never blocks a clinical workflow.
package risk

// ExudateLevel enumerates the recognized exudate drainage levels.
type ExudateLevel string

const (
	ExudateNone     ExudateLevel = "none"
	ExudateLight    ExudateLevel = "light"
	ExudateModerate ExudateLevel = "moderate"
	ExudateHeavy    ExudateLevel = "heavy"
)

// PatientFactor names a patient comorbidity that raises infection risk.
type PatientFactor string

const (
	FactorDiabetes          PatientFactor = "diabetes"
	FactorImmunosuppressed  PatientFactor = "immunosuppressed"
	FactorPoorCirculation   PatientFactor = "poor_circulation"
	FactorSmoking           PatientFactor = "smoking"
	FactorMalnutrition      PatientFactor = "malnutrition"
	FactorIncontinence      PatientFactor = "incontinence"
	FactorRecentAntibiotics PatientFactor = "recent_antibiotics"
)

// TissueComposition holds the wound bed tissue percentages. The three
// values describe fractions of the wound surface and should sum to at most
// 100; missing data is represented by zeros.
type TissueComposition struct {
	GranulationPercent float64 `json:"granulation_percent"`
	SloughPercent      float64 `json:"slough_percent"`
	NecroticPercent    float64 `json:"necrotic_percent"`
}

// Supplied reports whether any tissue data was recorded at all. An
// observation with no tissue assessment scores zero rather than being
// penalized for absent granulation.
func (t TissueComposition) Supplied() bool {
	return t.GranulationPercent > 0 || t.SloughPercent > 0 || t.NecroticPercent > 0
}

// Observation is one normalized set of clinical findings for a wound.
// It is treated as immutable: scoring never modifies it.
type Observation struct {
	// ClinicalText is the free-text clinical note (wound type, tissue and
	// exudate descriptors concatenated).
	ClinicalText string

	// Tissue is the wound bed composition assessment.
	Tissue TissueComposition

	// WoundSizeCM2 is the wound area in cm². Zero means unknown.
	WoundSizeCM2 float64

	// Exudate is the drainage level. An empty or unrecognized value is
	// treated as ExudateNone.
	Exudate ExudateLevel

	// DaysSinceOnset is the wound age in days. Zero means unknown.
	DaysSinceOnset int

	// PatientFactors flags patient comorbidities. Absent keys are false.
	PatientFactors map[PatientFactor]bool
}
