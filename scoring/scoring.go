package scoring

import (
	"errors"
	"fmt"
)

// System identifies the scoring rules a round is shot under.
type System string

const (
	ABA  System = "ABA"
	IFAA System = "IFAA"
)

// Valid reports whether s is a known scoring system
func (s System) Valid() bool {
	return s == ABA || s == IFAA
}

// ABATable selects which ABA zone table is in effect. The flat table is the
// canonical one used for persisted totals and personal-best comparisons; the
// positional table weights the zone value by which arrow hit it.
type ABATable int

const (
	ABAFlat ABATable = iota
	ABAPositional
)

// Zone values an ABA arrow can record
const (
	ZoneA    = "A"
	ZoneB    = "B"
	ZoneC    = "C"
	ZoneMiss = "miss"
)

const (
	// MaxArrowsPerTarget is the ABA limit of arrows shot at a single target
	MaxArrowsPerTarget = 3
	// MaxIFAAScoreValue is the highest point value a single IFAA arrow can score
	MaxIFAAScoreValue = 5
)

// ErrValidation is wrapped by every arrow rejection so callers can map the
// whole class to a single response kind.
var ErrValidation = errors.New("invalid arrow")

// Arrow is a single recorded arrow. ZoneHit/ArrowPosition are the ABA shape,
// ScoreValue is the IFAA shape; the round's scoring system decides which one
// is read. Points is always derived, never trusted from input.
type Arrow struct {
	ZoneHit       string `json:"zoneHit,omitempty"`
	ArrowPosition int    `json:"arrowPosition,omitempty"`
	ScoreValue    *int   `json:"scoreValue,omitempty"`
	Points        int    `json:"points"`
}

var abaFlatPoints = map[string]int{
	ZoneA:    20,
	ZoneB:    16,
	ZoneC:    10,
	ZoneMiss: 0,
}

// Positional zone values, indexed by arrow position 1..3
var abaPositionalPoints = map[int]map[string]int{
	1: {ZoneA: 20, ZoneB: 18, ZoneC: 16},
	2: {ZoneA: 14, ZoneB: 12, ZoneC: 10},
	3: {ZoneA: 8, ZoneB: 6, ZoneC: 4},
}

// ScoreArrow maps a recorded arrow to its point value under the given system.
// Unknown zones and out-of-range values are rejected, never scored as zero.
func ScoreArrow(system System, table ABATable, arrow Arrow) (int, error) {
	switch system {
	case ABA:
		return scoreABAArrow(table, arrow)
	case IFAA:
		return scoreIFAAArrow(arrow)
	default:
		return 0, fmt.Errorf("%w: unknown scoring system %q", ErrValidation, system)
	}
}

func scoreABAArrow(table ABATable, arrow Arrow) (int, error) {
	if arrow.ZoneHit == "" {
		return 0, fmt.Errorf("%w: zoneHit is required for ABA scoring", ErrValidation)
	}
	if _, ok := abaFlatPoints[arrow.ZoneHit]; !ok {
		return 0, fmt.Errorf("%w: unknown zone %q", ErrValidation, arrow.ZoneHit)
	}
	if arrow.ZoneHit == ZoneMiss {
		return 0, nil
	}

	if table == ABAFlat {
		return abaFlatPoints[arrow.ZoneHit], nil
	}

	if arrow.ArrowPosition < 1 || arrow.ArrowPosition > MaxArrowsPerTarget {
		return 0, fmt.Errorf("%w: arrowPosition must be between 1 and %d", ErrValidation, MaxArrowsPerTarget)
	}
	return abaPositionalPoints[arrow.ArrowPosition][arrow.ZoneHit], nil
}

func scoreIFAAArrow(arrow Arrow) (int, error) {
	if arrow.ScoreValue == nil {
		return 0, fmt.Errorf("%w: scoreValue is required for IFAA scoring", ErrValidation)
	}
	if *arrow.ScoreValue < 0 || *arrow.ScoreValue > MaxIFAAScoreValue {
		return 0, fmt.Errorf("%w: scoreValue must be between 0 and %d", ErrValidation, MaxIFAAScoreValue)
	}
	return *arrow.ScoreValue, nil
}

// ScoreTarget scores every arrow shot at one target, filling in the derived
// Points on each arrow, and returns the target sub-total.
func ScoreTarget(system System, table ABATable, arrows []Arrow) ([]Arrow, int, error) {
	if len(arrows) == 0 {
		return nil, 0, fmt.Errorf("%w: at least one arrow is required", ErrValidation)
	}

	scored := make([]Arrow, len(arrows))
	total := 0
	for i, arrow := range arrows {
		points, err := ScoreArrow(system, table, arrow)
		if err != nil {
			return nil, 0, fmt.Errorf("arrow %d: %w", i+1, err)
		}
		arrow.Points = points
		scored[i] = arrow
		total += points
	}
	return scored, total, nil
}

// TargetMaxScore returns the maximum sub-total a single target is worth.
// ABA treats each target as worth a fixed 20 regardless of arrow count.
func TargetMaxScore(system System, arrowsPerTarget int) int {
	switch system {
	case ABA:
		return 20
	case IFAA:
		return MaxIFAAScoreValue * arrowsPerTarget
	}
	return 0
}

// RoundMaxScore returns the maximum total score of a full round.
func RoundMaxScore(system System, targetCount, arrowsPerTarget int) int {
	return targetCount * TargetMaxScore(system, arrowsPerTarget)
}
