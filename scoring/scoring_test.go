package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestScoreArrowABAFlat(t *testing.T) {
	cases := []struct {
		zone   string
		points int
	}{
		{ZoneA, 20},
		{ZoneB, 16},
		{ZoneC, 10},
		{ZoneMiss, 0},
	}

	for _, tc := range cases {
		points, err := ScoreArrow(ABA, ABAFlat, Arrow{ZoneHit: tc.zone})
		require.NoError(t, err, "zone %s", tc.zone)
		assert.Equal(t, tc.points, points, "zone %s", tc.zone)
	}
}

func TestScoreArrowABAPositional(t *testing.T) {
	cases := []struct {
		zone     string
		position int
		points   int
	}{
		{ZoneA, 1, 20},
		{ZoneB, 1, 18},
		{ZoneC, 1, 16},
		{ZoneA, 2, 14},
		{ZoneB, 2, 12},
		{ZoneC, 2, 10},
		{ZoneA, 3, 8},
		{ZoneB, 3, 6},
		{ZoneC, 3, 4},
	}

	for _, tc := range cases {
		points, err := ScoreArrow(ABA, ABAPositional, Arrow{ZoneHit: tc.zone, ArrowPosition: tc.position})
		require.NoError(t, err, "zone %s position %d", tc.zone, tc.position)
		assert.Equal(t, tc.points, points, "zone %s position %d", tc.zone, tc.position)
	}

	// A miss scores zero without needing a position
	points, err := ScoreArrow(ABA, ABAPositional, Arrow{ZoneHit: ZoneMiss})
	require.NoError(t, err)
	assert.Zero(t, points)
}

func TestScoreArrowABARejectsInvalidInput(t *testing.T) {
	_, err := ScoreArrow(ABA, ABAFlat, Arrow{ZoneHit: "D"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = ScoreArrow(ABA, ABAFlat, Arrow{})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = ScoreArrow(ABA, ABAPositional, Arrow{ZoneHit: ZoneA, ArrowPosition: 4})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = ScoreArrow(ABA, ABAPositional, Arrow{ZoneHit: ZoneA})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestScoreArrowIFAA(t *testing.T) {
	for v := 0; v <= MaxIFAAScoreValue; v++ {
		points, err := ScoreArrow(IFAA, ABAFlat, Arrow{ScoreValue: intPtr(v)})
		require.NoError(t, err)
		assert.Equal(t, v, points)
	}

	_, err := ScoreArrow(IFAA, ABAFlat, Arrow{ScoreValue: intPtr(6)})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = ScoreArrow(IFAA, ABAFlat, Arrow{ScoreValue: intPtr(-1)})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = ScoreArrow(IFAA, ABAFlat, Arrow{})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestScoreArrowUnknownSystem(t *testing.T) {
	_, err := ScoreArrow(System("NFAA"), ABAFlat, Arrow{ZoneHit: ZoneA})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestScoreTargetSumsArrows(t *testing.T) {
	arrows := []Arrow{{ZoneHit: ZoneA}, {ZoneHit: ZoneB}, {ZoneHit: ZoneC}}

	scored, total, err := ScoreTarget(ABA, ABAFlat, arrows)
	require.NoError(t, err)
	assert.Equal(t, 46, total)
	require.Len(t, scored, 3)
	assert.Equal(t, 20, scored[0].Points)
	assert.Equal(t, 16, scored[1].Points)
	assert.Equal(t, 10, scored[2].Points)
}

func TestScoreTargetPositionalTable(t *testing.T) {
	arrows := []Arrow{
		{ZoneHit: ZoneA, ArrowPosition: 1},
		{ZoneHit: ZoneB, ArrowPosition: 2},
		{ZoneHit: ZoneC, ArrowPosition: 3},
	}

	_, total, err := ScoreTarget(ABA, ABAPositional, arrows)
	require.NoError(t, err)
	assert.Equal(t, 36, total)
}

func TestScoreTargetRejectsEmptyAndBadArrows(t *testing.T) {
	_, _, err := ScoreTarget(ABA, ABAFlat, nil)
	assert.ErrorIs(t, err, ErrValidation)

	_, _, err = ScoreTarget(ABA, ABAFlat, []Arrow{{ZoneHit: ZoneA}, {ZoneHit: "X"}})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestScoreTargetIFAABounded(t *testing.T) {
	arrows := []Arrow{{ScoreValue: intPtr(5)}, {ScoreValue: intPtr(4)}, {ScoreValue: intPtr(0)}}

	_, total, err := ScoreTarget(IFAA, ABAFlat, arrows)
	require.NoError(t, err)
	assert.Equal(t, 9, total)
	assert.LessOrEqual(t, total, MaxIFAAScoreValue*len(arrows))
}

func TestMaxScores(t *testing.T) {
	assert.Equal(t, 20, TargetMaxScore(ABA, 3))
	assert.Equal(t, 20, TargetMaxScore(ABA, 1))
	assert.Equal(t, 15, TargetMaxScore(IFAA, 3))
	assert.Equal(t, 200, RoundMaxScore(ABA, 10, 3))
	assert.Equal(t, 150, RoundMaxScore(IFAA, 10, 3))
}
