package risk

import (
	"math"
	"strings"
)

// Level classifies a total score into a clinical risk category.
type Level string

const (
	LevelLow      Level = "Low Risk"
	LevelModerate Level = "Moderate Risk"
	LevelHigh     Level = "High Risk"
	LevelCritical Level = "Critical Risk"
)

// Level boundaries are left-inclusive, right-exclusive, with the top bucket
// closed at 10: [0,2.5) Low, [2.5,5) Moderate, [5,7.5) High, [7.5,10] Critical.
const (
	moderateFloor = 2.5
	highFloor     = 5.0
	criticalFloor = 7.5
)

// Score is the result of one risk calculation. It is created fresh per call
// and never mutated afterwards.
type Score struct {
	ClinicalIndicators float64 `json:"clinical_indicators"`
	TissueComposition  float64 `json:"tissue_composition"`
	Exudate            float64 `json:"exudate"`
	WoundSize          float64 `json:"wound_size"`
	Chronicity         float64 `json:"chronicity"`
	PatientFactors     float64 `json:"patient_factors"`

	Total          float64 `json:"total_score"`
	Level          Level   `json:"risk_level"`
	Interpretation string  `json:"interpretation"`
}

// Calculate runs all six sub-scorers over the observation and aggregates
// them into a total score, risk level, and interpretation. It never fails:
// malformed fields are normalized defensively (clamped or defaulted) so
// that scoring cannot block a clinical workflow on data-quality issues.
// Callers needing strict validation must validate the Observation first.
func Calculate(obs Observation) Score {
	s := Score{
		ClinicalIndicators: round2(scoreClinicalText(obs.ClinicalText)),
		TissueComposition:  round2(scoreTissue(obs.Tissue)),
		Exudate:            round2(scoreExudate(obs.Exudate)),
		WoundSize:          round2(scoreSize(obs.WoundSizeCM2)),
		Chronicity:         round2(scoreChronicity(obs.DaysSinceOnset)),
		PatientFactors:     round2(scorePatientFactors(obs.PatientFactors)),
	}

	sum := s.ClinicalIndicators + s.TissueComposition + s.Exudate +
		s.WoundSize + s.Chronicity + s.PatientFactors

	// The per-component ceilings bound the sum to 0..12; 10 is the declared
	// scale maximum, so overflow is capped rather than reported.
	s.Total = round1(clamp(sum, 0, 10))
	s.Level = classify(s.Total)
	s.Interpretation = interpret(s, obs.Tissue)

	return s
}

// classify maps a total score to its risk level.
func classify(total float64) Level {
	switch {
	case total < moderateFloor:
		return LevelLow
	case total < highFloor:
		return LevelModerate
	case total < criticalFloor:
		return LevelHigh
	default:
		return LevelCritical
	}
}

// interpret builds the clinician-facing summary: a base recommendation for
// the risk level plus callouts for the sub-scores driving it.
func interpret(s Score, tissue TissueComposition) string {
	var b strings.Builder

	switch s.Level {
	case LevelLow:
		b.WriteString("Wound shows minimal signs of infection. Continue routine monitoring.")
	case LevelModerate:
		b.WriteString("Moderate infection risk detected. ")
		if tissue.SloughPercent > 40 {
			b.WriteString("Significant slough present - consider enhanced cleansing. ")
		}
		b.WriteString("Monitor closely for progression.")
	case LevelHigh:
		b.WriteString("High infection risk. ")
		if tissue.NecroticPercent > 30 {
			b.WriteString("Necrotic tissue requires debridement. ")
		}
		b.WriteString("Consider wound culture and increased monitoring frequency.")
	default:
		b.WriteString("Critical infection risk. Immediate clinical evaluation recommended. " +
			"Consider antibiotic therapy and surgical consultation.")
	}

	if drivers := dominantDrivers(s); len(drivers) > 0 {
		b.WriteString(" Primary drivers: ")
		b.WriteString(strings.Join(drivers, ", "))
		b.WriteString(".")
	}

	return b.String()
}

// dominantDrivers lists the sub-scores exceeding two thirds of their own
// ceiling, in a fixed order so the interpretation is deterministic.
func dominantDrivers(s Score) []string {
	checks := []struct {
		name    string
		score   float64
		ceiling float64
	}{
		{"clinical indicators", s.ClinicalIndicators, ClinicalCeiling},
		{"tissue composition", s.TissueComposition, TissueCeiling},
		{"exudate", s.Exudate, ExudateCeiling},
		{"wound size", s.WoundSize, SizeCeiling},
		{"chronicity", s.Chronicity, ChronicityCeiling},
		{"patient factors", s.PatientFactors, PatientCeiling},
	}

	var drivers []string
	for _, c := range checks {
		if c.score > c.ceiling*2/3 {
			drivers = append(drivers, c.name)
		}
	}
	return drivers
}

// round2 rounds to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// round1 rounds to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
