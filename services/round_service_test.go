package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldscore/models"
	"fieldscore/scoring"
)

// fakeRoundRepository serves rounds from memory
type fakeRoundRepository struct {
	rounds []models.Round
}

func (f *fakeRoundRepository) Save(round *models.Round) error {
	for i := range f.rounds {
		if f.rounds[i].ID == round.ID {
			f.rounds[i] = *round
			return nil
		}
	}
	f.rounds = append(f.rounds, *round)
	return nil
}

func (f *fakeRoundRepository) FindByID(id string) (*models.Round, error) {
	for i := range f.rounds {
		if f.rounds[i].ID == id {
			return &f.rounds[i], nil
		}
	}
	return nil, models.ErrParticipantNotFound
}

func (f *fakeRoundRepository) FindCompletedByParticipant(userID string) ([]models.Round, error) {
	var out []models.Round
	for _, r := range f.rounds {
		if r.Status == models.RoundStatusCompleted && r.FindParticipant(userID) != nil {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRoundRepository) FindCompletedByParticipantAndSystem(userID string, system scoring.System, excludeRoundID string) ([]models.Round, error) {
	var out []models.Round
	for _, r := range f.rounds {
		if r.ID == excludeRoundID || r.Status != models.RoundStatusCompleted || r.ScoringSystem != system {
			continue
		}
		if r.FindParticipant(userID) != nil {
			out = append(out, r)
		}
	}
	return out, nil
}

func completedRound(id string, system scoring.System, date time.Time, userID string, total int, pb bool) models.Round {
	return models.Round{
		ID:            id,
		Name:          "round " + id,
		ScoringSystem: system,
		Date:          date,
		Status:        models.RoundStatusCompleted,
		ScorerID:      userID,
		Participants: models.Participants{
			{UserID: userID, TotalScore: total, PersonalBest: pb},
		},
	}
}

func historyRepo(userID string, totals ...int) *fakeRoundRepository {
	repo := &fakeRoundRepository{}
	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	for i, total := range totals {
		repo.rounds = append(repo.rounds,
			completedRound(string(rune('a'+i)), scoring.ABA, base.AddDate(0, 0, i), userID, total, false))
	}
	return repo
}

func TestIsPersonalBest(t *testing.T) {
	svc := NewRoundService(historyRepo("user-1", 80, 95, 70))

	cases := []struct {
		score int
		want  bool
	}{
		{95, false}, // tie with the 95 round is not a new best
		{96, true},
		{60, false},
	}

	for _, tc := range cases {
		got, err := svc.IsPersonalBest("user-1", scoring.ABA, tc.score, "new-round")
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "score %d", tc.score)
	}
}

func TestIsPersonalBestNoHistory(t *testing.T) {
	svc := NewRoundService(&fakeRoundRepository{})

	got, err := svc.IsPersonalBest("user-1", scoring.ABA, 10, "new-round")
	require.NoError(t, err)
	assert.True(t, got)
}

func TestIsPersonalBestIgnoresOtherSystems(t *testing.T) {
	repo := historyRepo("user-1", 200)
	repo.rounds[0].ScoringSystem = scoring.IFAA
	svc := NewRoundService(repo)

	got, err := svc.IsPersonalBest("user-1", scoring.ABA, 50, "new-round")
	require.NoError(t, err)
	assert.True(t, got)
}

func TestIsPersonalBestExcludesCompletingRound(t *testing.T) {
	repo := historyRepo("user-1", 80)
	svc := NewRoundService(repo)

	// The completing round itself is already persisted as completed; it must
	// not count against its own evaluation.
	got, err := svc.IsPersonalBest("user-1", scoring.ABA, 90, repo.rounds[0].ID)
	require.NoError(t, err)
	assert.True(t, got)
}

func TestEvaluatePersonalBests(t *testing.T) {
	repo := historyRepo("user-1", 80, 95)
	svc := NewRoundService(repo)

	round := completedRound("new-round", scoring.ABA, time.Now(), "user-1", 96, false)
	round.Participants = append(round.Participants, models.Participant{UserID: "user-2", TotalScore: 10})
	round.NonMemberParticipants = models.NonMemberParticipants{
		{ID: "guest-1", Name: "Jane", TotalScore: 500},
	}

	count, err := svc.EvaluatePersonalBests(&round)
	require.NoError(t, err)
	assert.Equal(t, 2, count) // user-1 beats 95, user-2 has no history
	assert.True(t, round.Participants[0].PersonalBest)
	assert.True(t, round.Participants[1].PersonalBest)
}

func TestEvaluatePersonalBestsTieIsNotBest(t *testing.T) {
	repo := historyRepo("user-1", 95)
	svc := NewRoundService(repo)

	round := completedRound("new-round", scoring.ABA, time.Now(), "user-1", 95, false)
	count, err := svc.EvaluatePersonalBests(&round)
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.False(t, round.Participants[0].PersonalBest)
}

func TestComputeUserStatsEmpty(t *testing.T) {
	svc := NewRoundService(&fakeRoundRepository{})

	stats, err := svc.ComputeUserStats("user-1")
	require.NoError(t, err)
	assert.Zero(t, stats.TotalRounds)
	assert.Zero(t, stats.AverageScore)
	assert.Empty(t, stats.ScoringSystems)
}

func TestComputeUserStats(t *testing.T) {
	repo := historyRepo("user-1", 80, 95, 70, 60, 85, 90, 100)
	repo.rounds[1].Participants[0].PersonalBest = true
	repo.rounds[6].Participants[0].PersonalBest = true
	// One IFAA round mixed in
	repo.rounds = append(repo.rounds,
		completedRound("ifaa-1", scoring.IFAA, time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC), "user-1", 40, false))

	svc := NewRoundService(repo)
	stats, err := svc.ComputeUserStats("user-1")
	require.NoError(t, err)

	assert.Equal(t, 8, stats.TotalRounds)
	assert.Equal(t, 2, stats.PersonalBests)

	aba := stats.ScoringSystems["ABA"]
	require.NotNil(t, aba)
	assert.Equal(t, 7, aba.Count)
	assert.Equal(t, 580, aba.TotalScore)
	assert.Equal(t, 100, aba.HighScore)
	assert.InDelta(t, 580.0/7.0, aba.Average, 0.0001)

	// Five most recent ABA scores, newest first by round date
	require.Len(t, aba.RecentScores, 5)
	assert.Equal(t, 100, aba.RecentScores[0].Score)
	assert.Equal(t, 90, aba.RecentScores[1].Score)
	assert.Equal(t, 70, aba.RecentScores[4].Score)

	ifaa := stats.ScoringSystems["IFAA"]
	require.NotNil(t, ifaa)
	assert.Equal(t, 1, ifaa.Count)
	assert.Equal(t, 40, ifaa.HighScore)

	assert.InDelta(t, 620.0/8.0, stats.AverageScore, 0.0001)
}
