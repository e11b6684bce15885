package risk

import (
	"math"
	"strings"
)

// scoreClinicalText scores infection-associated keywords in the clinical
// note. Matching is case-insensitive and presence-based: repeating
// "purulent" three times counts once.
func scoreClinicalText(text string) float64 {
	lower := strings.ToLower(text)
	score := 0.0
	for keyword, weight := range keywordWeights {
		if strings.Contains(lower, keyword) {
			score += weight
		}
	}
	return clamp(score, 0, ClinicalCeiling)
}

// scoreTissue scores the wound bed composition. Necrotic and slough cover
// contribute positively, low granulation cover adds a penalty. Negative
// percentages are treated as zero; an observation with no tissue data at
// all scores zero.
func scoreTissue(tissue TissueComposition) float64 {
	necrotic := math.Max(tissue.NecroticPercent, 0)
	slough := math.Max(tissue.SloughPercent, 0)
	granulation := math.Max(tissue.GranulationPercent, 0)

	score := bandScore(necrotic, necroticBands) + bandScore(slough, sloughBands)

	// Lack of granulation is concerning, but only when tissue was assessed
	if tissue.Supplied() && granulation < lowGranulationPercent {
		score += lowGranulationPenalty
	}

	return clamp(score, 0, TissueCeiling)
}

// scoreExudate scores the drainage level from the fixed lookup table.
func scoreExudate(level ExudateLevel) float64 {
	normalized := ExudateLevel(strings.ToLower(string(level)))
	score, ok := exudateScores[normalized]
	if !ok {
		return exudateScores[ExudateNone]
	}
	return score
}

// scoreSize scores wound area in cm². Unknown (non-positive) area scores 0.
func scoreSize(areaCM2 float64) float64 {
	if areaCM2 <= 0 {
		return 0
	}
	return bandScore(areaCM2, sizeBands)
}

// scoreChronicity scores wound age in days. Unknown onset scores 0.
func scoreChronicity(daysSinceOnset int) float64 {
	if daysSinceOnset <= 0 {
		return 0
	}
	return bandScore(float64(daysSinceOnset), chronicityBands)
}

// scorePatientFactors sums the weights of the flagged comorbidities.
// Unknown factor names are ignored rather than rejected.
func scorePatientFactors(factors map[PatientFactor]bool) float64 {
	score := 0.0
	for factor, present := range factors {
		if !present {
			continue
		}
		score += patientFactorWeights[factor]
	}
	return clamp(score, 0, PatientCeiling)
}

// clamp bounds v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
