package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldscore/scoring"
)

func newTestRound(system scoring.System) *Round {
	return &Round{
		ID:            "round-1",
		Name:          "Sunday shoot",
		ScoringSystem: system,
		Status:        RoundStatusActive,
		ScorerID:      "scorer-1",
		Participants: Participants{
			{UserID: "scorer-1", Name: "Sam", Scores: []TargetScore{}},
		},
	}
}

func abaArrows(zones ...string) []scoring.Arrow {
	arrows := make([]scoring.Arrow, len(zones))
	for i, z := range zones {
		arrows[i] = scoring.Arrow{ZoneHit: z, ArrowPosition: i + 1}
	}
	return arrows
}

func TestAddParticipant(t *testing.T) {
	round := newTestRound(scoring.ABA)

	err := round.AddParticipant(&User{ID: "user-2", Name: "Alex", Verified: true}, false)
	require.NoError(t, err)
	assert.Len(t, round.Participants, 2)

	err = round.AddParticipant(&User{ID: "user-2", Name: "Alex", Verified: true}, false)
	assert.ErrorIs(t, err, ErrDuplicateParticipant)
}

func TestAddParticipantVerificationGate(t *testing.T) {
	round := newTestRound(scoring.ABA)
	unverified := &User{ID: "user-3", Name: "Jo", Verified: false}

	err := round.AddParticipant(unverified, false)
	assert.ErrorIs(t, err, ErrUnverifiedParticipant)

	err = round.AddParticipant(unverified, true)
	assert.NoError(t, err)
}

func TestAddNonMemberParticipant(t *testing.T) {
	round := newTestRound(scoring.ABA)

	guest, err := round.AddNonMemberParticipant("Jane")
	require.NoError(t, err)
	assert.NotEmpty(t, guest.ID)

	_, err = round.AddNonMemberParticipant("Jane")
	assert.ErrorIs(t, err, ErrDuplicateParticipant)
}

func TestRemoveParticipant(t *testing.T) {
	round := newTestRound(scoring.ABA)
	require.NoError(t, round.AddParticipant(&User{ID: "user-2", Name: "Alex", Verified: true}, false))

	assert.ErrorIs(t, round.RemoveParticipant("scorer-1"), ErrScorerProtected)
	assert.ErrorIs(t, round.RemoveParticipant("nobody"), ErrParticipantNotFound)

	require.NoError(t, round.RemoveParticipant("user-2"))
	assert.Len(t, round.Participants, 1)
}

func TestRemoveNonMemberParticipant(t *testing.T) {
	round := newTestRound(scoring.ABA)
	guest, err := round.AddNonMemberParticipant("Jane")
	require.NoError(t, err)

	assert.ErrorIs(t, round.RemoveNonMemberParticipant("missing"), ErrParticipantNotFound)
	require.NoError(t, round.RemoveNonMemberParticipant(guest.ID))
	assert.Empty(t, round.NonMemberParticipants)
}

func TestAddOrReplaceScoreComputesPoints(t *testing.T) {
	round := newTestRound(scoring.ABA)
	ref := ParticipantRef{ID: "scorer-1"}

	score, err := round.AddOrReplaceScore(ref, 1, abaArrows("A", "B", "C"), scoring.ABAFlat)
	require.NoError(t, err)
	assert.Equal(t, 46, score.TotalPoints)
	assert.Equal(t, 46, round.Participants[0].TotalScore)

	// Re-scoring the same target replaces, never duplicates
	score, err = round.AddOrReplaceScore(ref, 1, abaArrows("miss", "miss", "miss"), scoring.ABAFlat)
	require.NoError(t, err)
	assert.Equal(t, 0, score.TotalPoints)
	assert.Len(t, round.Participants[0].Scores, 1)
	assert.Equal(t, 0, round.Participants[0].TotalScore)
}

func TestAddOrReplaceScorePositionalTable(t *testing.T) {
	round := newTestRound(scoring.ABA)
	ref := ParticipantRef{ID: "scorer-1"}

	score, err := round.AddOrReplaceScore(ref, 1, abaArrows("A", "B", "C"), scoring.ABAPositional)
	require.NoError(t, err)
	assert.Equal(t, 36, score.TotalPoints) // 20 + 12 + 4
}

func TestAddOrReplaceScoreNonMember(t *testing.T) {
	round := newTestRound(scoring.IFAA)
	guest, err := round.AddNonMemberParticipant("Jane")
	require.NoError(t, err)

	five, three := 5, 3
	arrows := []scoring.Arrow{{ScoreValue: &five}, {ScoreValue: &three}}
	score, err := round.AddOrReplaceScore(ParticipantRef{ID: guest.ID, NonMember: true}, 2, arrows, scoring.ABAFlat)
	require.NoError(t, err)
	assert.Equal(t, 8, score.TotalPoints)
	assert.Equal(t, 8, round.NonMemberParticipants[0].TotalScore)
}

func TestAddOrReplaceScoreRejectsBadInput(t *testing.T) {
	round := newTestRound(scoring.ABA)
	ref := ParticipantRef{ID: "scorer-1"}

	_, err := round.AddOrReplaceScore(ref, 0, abaArrows("A"), scoring.ABAFlat)
	assert.True(t, IsValidationError(err))

	_, err = round.AddOrReplaceScore(ref, 1, abaArrows("A", "B", "C", "A"), scoring.ABAFlat)
	assert.True(t, IsValidationError(err))

	_, err = round.AddOrReplaceScore(ref, 1, abaArrows("X"), scoring.ABAFlat)
	assert.True(t, IsValidationError(err))

	_, err = round.AddOrReplaceScore(ParticipantRef{ID: "missing"}, 1, abaArrows("A"), scoring.ABAFlat)
	assert.ErrorIs(t, err, ErrParticipantNotFound)
}

func TestArrowCapWithoutCourseIsABAOnly(t *testing.T) {
	// Three arrows per target is an ABA rule; a courseless IFAA round may
	// record more.
	round := newTestRound(scoring.IFAA)
	ref := ParticipantRef{ID: "scorer-1"}

	five := 5
	arrows := []scoring.Arrow{{ScoreValue: &five}, {ScoreValue: &five}, {ScoreValue: &five}, {ScoreValue: &five}}
	score, err := round.AddOrReplaceScore(ref, 1, arrows, scoring.ABAFlat)
	require.NoError(t, err)
	assert.Equal(t, 20, score.TotalPoints)

	aba := newTestRound(scoring.ABA)
	_, err = aba.AddOrReplaceScore(ParticipantRef{ID: "scorer-1"}, 1, abaArrows("A", "B", "C", "A"), scoring.ABAFlat)
	assert.True(t, IsValidationError(err))
}

func TestAddOrReplaceScoreHonoursCourseLimits(t *testing.T) {
	round := newTestRound(scoring.ABA)
	round.Course = &Course{Targets: 2, ArrowsPerTarget: 2, ScoringSystem: scoring.ABA}
	ref := ParticipantRef{ID: "scorer-1"}

	_, err := round.AddOrReplaceScore(ref, 3, abaArrows("A"), scoring.ABAFlat)
	assert.True(t, IsValidationError(err))

	_, err = round.AddOrReplaceScore(ref, 2, abaArrows("A", "B", "C"), scoring.ABAFlat)
	assert.True(t, IsValidationError(err))

	_, err = round.AddOrReplaceScore(ref, 2, abaArrows("A", "B"), scoring.ABAFlat)
	assert.NoError(t, err)
}

func TestRecomputeTotalsIdempotent(t *testing.T) {
	round := newTestRound(scoring.ABA)
	_, err := round.AddOrReplaceScore(ParticipantRef{ID: "scorer-1"}, 1, abaArrows("A", "A", "miss"), scoring.ABAFlat)
	require.NoError(t, err)

	round.RecomputeTotals()
	first := round.Participants[0].TotalScore
	round.RecomputeTotals()
	assert.Equal(t, first, round.Participants[0].TotalScore)
}

func TestChangeScoringSystemLocksOnceScored(t *testing.T) {
	round := newTestRound(scoring.ABA)

	require.NoError(t, round.ChangeScoringSystem(scoring.IFAA))
	require.NoError(t, round.ChangeScoringSystem(scoring.ABA))

	_, err := round.AddOrReplaceScore(ParticipantRef{ID: "scorer-1"}, 1, abaArrows("A"), scoring.ABAFlat)
	require.NoError(t, err)

	assert.ErrorIs(t, round.ChangeScoringSystem(scoring.IFAA), ErrScoringLocked)
	// Re-stating the current system is not a change
	assert.NoError(t, round.ChangeScoringSystem(scoring.ABA))
}

func TestCompleteTransitions(t *testing.T) {
	round := newTestRound(scoring.ABA)

	require.NoError(t, round.Complete())
	assert.Equal(t, RoundStatusCompleted, round.Status)
	assert.ErrorIs(t, round.Complete(), ErrAlreadyCompleted)

	cancelled := newTestRound(scoring.ABA)
	require.NoError(t, cancelled.Cancel())
	assert.Equal(t, RoundStatusCancelled, cancelled.Status)
	assert.ErrorIs(t, cancelled.Complete(), ErrRoundNotActive)
	assert.ErrorIs(t, cancelled.Cancel(), ErrRoundNotActive)
}

func TestScoringRejectedOnceCompleted(t *testing.T) {
	round := newTestRound(scoring.ABA)
	require.NoError(t, round.Complete())

	_, err := round.AddOrReplaceScore(ParticipantRef{ID: "scorer-1"}, 1, abaArrows("A"), scoring.ABAFlat)
	assert.ErrorIs(t, err, ErrRoundNotActive)
}

func TestCanDelete(t *testing.T) {
	round := newTestRound(scoring.ABA)
	assert.NoError(t, round.CanDelete())

	eventID := "event-1"
	round.EventID = &eventID
	assert.ErrorIs(t, round.CanDelete(), ErrEventLinked)
}
