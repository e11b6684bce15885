// Command risktest scores a wound observation for infection risk and
// prints the sub-scores, total, risk level, and interpretation.
package main

import (
	"flag"
	"fmt"
	"strings"

	"woundlens/internal/risk"
	"woundlens/internal/version"
)

func main() {
	text := flag.String("text", "", "Clinical note text")
	granulation := flag.Float64("granulation", 0, "Granulation tissue percent")
	slough := flag.Float64("slough", 0, "Slough tissue percent")
	necrotic := flag.Float64("necrotic", 0, "Necrotic tissue percent")
	size := flag.Float64("size", 0, "Wound area in cm2 (0 = unknown)")
	exudate := flag.String("exudate", "none", "Exudate level: none, light, moderate, heavy")
	days := flag.Int("days", 0, "Days since onset (0 = unknown)")
	factors := flag.String("factors", "", "Comma-separated patient factors (e.g. diabetes,smoking)")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		return
	}

	patientFactors := make(map[risk.PatientFactor]bool)
	for _, name := range strings.Split(*factors, ",") {
		name = strings.TrimSpace(name)
		if name != "" {
			patientFactors[risk.PatientFactor(name)] = true
		}
	}

	score := risk.Calculate(risk.Observation{
		ClinicalText: *text,
		Tissue: risk.TissueComposition{
			GranulationPercent: *granulation,
			SloughPercent:      *slough,
			NecroticPercent:    *necrotic,
		},
		WoundSizeCM2:   *size,
		Exudate:        risk.ExudateLevel(*exudate),
		DaysSinceOnset: *days,
		PatientFactors: patientFactors,
	})

	fmt.Printf("Total score: %.1f/10\n", score.Total)
	fmt.Printf("Risk level:  %s\n\n", score.Level)
	fmt.Println("Sub-scores:")
	fmt.Printf("  %-20s %.2f / %.0f\n", "clinical indicators", score.ClinicalIndicators, risk.ClinicalCeiling)
	fmt.Printf("  %-20s %.2f / %.0f\n", "tissue composition", score.TissueComposition, risk.TissueCeiling)
	fmt.Printf("  %-20s %.2f / %.0f\n", "exudate", score.Exudate, risk.ExudateCeiling)
	fmt.Printf("  %-20s %.2f / %.0f\n", "wound size", score.WoundSize, risk.SizeCeiling)
	fmt.Printf("  %-20s %.2f / %.0f\n", "chronicity", score.Chronicity, risk.ChronicityCeiling)
	fmt.Printf("  %-20s %.2f / %.0f\n", "patient factors", score.PatientFactors, risk.PatientCeiling)
	fmt.Printf("\n%s\n", score.Interpretation)
}
