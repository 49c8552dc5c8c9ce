package services

import (
	"fmt"
	"sort"
	"time"

	"fieldscore/metrics"
	"fieldscore/models"
	"fieldscore/scoring"

	"gorm.io/gorm"
)

// RoundRepository is the persistence capability the personal-best evaluator
// and stats aggregation need. Kept as an interface so the evaluation logic is
// testable without a database.
type RoundRepository interface {
	Save(round *models.Round) error
	FindByID(id string) (*models.Round, error)
	FindCompletedByParticipant(userID string) ([]models.Round, error)
	FindCompletedByParticipantAndSystem(userID string, system scoring.System, excludeRoundID string) ([]models.Round, error)
}

// GormRoundRepository backs RoundRepository with postgres. Participant lookup
// uses JSONB containment on the participants document.
type GormRoundRepository struct {
	db *gorm.DB
}

func NewRoundRepository(db *gorm.DB) *GormRoundRepository {
	return &GormRoundRepository{db: db}
}

func (r *GormRoundRepository) Save(round *models.Round) error {
	start := time.Now()
	defer metrics.RecordDBOperation("save", "rounds", start)
	return r.db.Save(round).Error
}

func (r *GormRoundRepository) FindByID(id string) (*models.Round, error) {
	var round models.Round
	if err := r.db.Where("id = ?", id).First(&round).Error; err != nil {
		return nil, err
	}
	return &round, nil
}

func participantFilter(userID string) string {
	return fmt.Sprintf(`[{"user": %q}]`, userID)
}

func (r *GormRoundRepository) FindCompletedByParticipant(userID string) ([]models.Round, error) {
	start := time.Now()
	defer metrics.RecordDBOperation("find_completed", "rounds", start)

	var rounds []models.Round
	err := r.db.
		Where("status = ?", models.RoundStatusCompleted).
		Where("participants @> ?", participantFilter(userID)).
		Find(&rounds).Error
	return rounds, err
}

func (r *GormRoundRepository) FindCompletedByParticipantAndSystem(userID string, system scoring.System, excludeRoundID string) ([]models.Round, error) {
	start := time.Now()
	defer metrics.RecordDBOperation("find_completed_by_system", "rounds", start)

	var rounds []models.Round
	err := r.db.
		Where("status = ?", models.RoundStatusCompleted).
		Where("scoring_system = ?", system).
		Where("id <> ?", excludeRoundID).
		Where("participants @> ?", participantFilter(userID)).
		Find(&rounds).Error
	return rounds, err
}

// RoundService owns the read-side round computations: personal-best
// evaluation at completion and per-user statistics.
type RoundService struct {
	repo RoundRepository
}

func NewRoundService(repo RoundRepository) *RoundService {
	return &RoundService{repo: repo}
}

// IsPersonalBest reports whether score beats every total the user has shot in
// prior completed rounds under the same scoring system. Ties do not count; a
// user with no history trivially sets a personal best.
func (s *RoundService) IsPersonalBest(userID string, system scoring.System, score int, excludeRoundID string) (bool, error) {
	previous, err := s.repo.FindCompletedByParticipantAndSystem(userID, system, excludeRoundID)
	if err != nil {
		return false, err
	}

	for _, round := range previous {
		participant := round.FindParticipant(userID)
		if participant != nil && participant.TotalScore >= score {
			return false, nil
		}
	}
	return true, nil
}

// EvaluatePersonalBests sets the personalBest flag for every registered
// participant of a completing round. Guests are never eligible. Returns how
// many personal bests were detected.
func (s *RoundService) EvaluatePersonalBests(round *models.Round) (int, error) {
	count := 0
	for i := range round.Participants {
		participant := &round.Participants[i]

		isPB, err := s.IsPersonalBest(participant.UserID, round.ScoringSystem, participant.TotalScore, round.ID)
		if err != nil {
			return count, err
		}
		participant.PersonalBest = isPB
		if isPB {
			count++
			metrics.PersonalBests.Inc()
		}
	}
	return count, nil
}

// RecentScore is one of the user's latest round totals
type RecentScore struct {
	Date    time.Time `json:"date"`
	Score   int       `json:"score"`
	RoundID string    `json:"roundId"`
}

// SystemStats aggregates a user's results under one scoring system
type SystemStats struct {
	TotalScore   int           `json:"totalScore"`
	Count        int           `json:"count"`
	Average      float64       `json:"average"`
	HighScore    int           `json:"highScore"`
	RecentScores []RecentScore `json:"recentScores"`
}

// UserStats is the aggregate a user's dashboard shows
type UserStats struct {
	TotalRounds    int                     `json:"totalRounds"`
	AverageScore   float64                 `json:"averageScore"`
	PersonalBests  int                     `json:"personalBests"`
	ScoringSystems map[string]*SystemStats `json:"scoringSystems"`
}

const recentScoreWindow = 5

// ComputeUserStats aggregates all of a user's completed rounds: total count,
// personal bests, and per-system total/average/high plus the five most recent
// scores by round date.
func (s *RoundService) ComputeUserStats(userID string) (*UserStats, error) {
	rounds, err := s.repo.FindCompletedByParticipant(userID)
	if err != nil {
		return nil, err
	}

	stats := &UserStats{
		ScoringSystems: map[string]*SystemStats{},
	}
	if len(rounds) == 0 {
		return stats, nil
	}

	for _, round := range rounds {
		participant := round.FindParticipant(userID)
		if participant == nil {
			continue
		}

		stats.TotalRounds++
		if participant.PersonalBest {
			stats.PersonalBests++
		}

		system := string(round.ScoringSystem)
		entry, ok := stats.ScoringSystems[system]
		if !ok {
			entry = &SystemStats{}
			stats.ScoringSystems[system] = entry
		}

		entry.TotalScore += participant.TotalScore
		entry.Count++
		if participant.TotalScore > entry.HighScore {
			entry.HighScore = participant.TotalScore
		}
		entry.RecentScores = append(entry.RecentScores, RecentScore{
			Date:    round.Date,
			Score:   participant.TotalScore,
			RoundID: round.ID,
		})
	}

	totalScore := 0
	scoreCount := 0
	for _, entry := range stats.ScoringSystems {
		if entry.Count > 0 {
			entry.Average = float64(entry.TotalScore) / float64(entry.Count)
		}
		sort.Slice(entry.RecentScores, func(i, j int) bool {
			return entry.RecentScores[i].Date.After(entry.RecentScores[j].Date)
		})
		if len(entry.RecentScores) > recentScoreWindow {
			entry.RecentScores = entry.RecentScores[:recentScoreWindow]
		}
		totalScore += entry.TotalScore
		scoreCount += entry.Count
	}
	if scoreCount > 0 {
		stats.AverageScore = float64(totalScore) / float64(scoreCount)
	}

	return stats, nil
}
