package config

import (
	"log"
	"os"

	"fieldscore/scoring"
)

// Scoring rules configuration
type ScoringRulesConfig struct {
	ABATable scoring.ABATable // Which ABA zone table scores arrows
}

// ScoringRules holds the scoring strategy for this deployment. The flat table
// is the default; set ABA_SCORING_TABLE=positional to weight zone values by
// arrow position instead.
var ScoringRules = ScoringRulesConfig{
	ABATable: scoring.ABAFlat,
}

func loadScoringRules() {
	switch os.Getenv("ABA_SCORING_TABLE") {
	case "", "flat":
		ScoringRules.ABATable = scoring.ABAFlat
	case "positional":
		ScoringRules.ABATable = scoring.ABAPositional
	default:
		log.Printf("Unknown ABA_SCORING_TABLE %q, keeping flat table", os.Getenv("ABA_SCORING_TABLE"))
	}
}
