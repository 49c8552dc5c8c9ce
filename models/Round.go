package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"fieldscore/scoring"
)

// Round status values
const (
	RoundStatusActive    = "active"
	RoundStatusCompleted = "completed"
	RoundStatusCancelled = "cancelled"
)

// TargetScore holds all arrows a participant shot at one target. There is at
// most one TargetScore per target number per participant; re-scoring a target
// replaces the previous entry.
type TargetScore struct {
	TargetNumber int             `json:"targetNumber"`
	Arrows       []scoring.Arrow `json:"arrows"`
	TotalPoints  int             `json:"totalPoints"`
}

// Participant is a registered club member shooting in a round
type Participant struct {
	UserID       string        `json:"user"`
	Name         string        `json:"name,omitempty"`
	Scores       []TargetScore `json:"scores"`
	TotalScore   int           `json:"totalScore"`
	PersonalBest bool          `json:"personalBest"`
}

// NonMemberParticipant is a guest shooting in a round. Guests are addressed by
// a generated id and are never eligible for personal-best tracking.
type NonMemberParticipant struct {
	ID         string        `json:"id"`
	Name       string        `json:"name"`
	Scores     []TargetScore `json:"scores"`
	TotalScore int           `json:"totalScore"`
}

// Weather conditions noted for a round, free-form
type Weather struct {
	Conditions  string   `json:"conditions,omitempty"`
	Temperature *float64 `json:"temperature,omitempty"`
	WindSpeed   *float64 `json:"windSpeed,omitempty"`
}

// Participants is stored as a JSONB document, keeping the nested score data in
// one place the way the original round document kept it.
type Participants []Participant

func (p Participants) Value() (driver.Value, error) {
	if p == nil {
		return "[]", nil
	}
	b, err := json.Marshal(p)
	return string(b), err
}

func (p *Participants) Scan(value interface{}) error {
	return scanJSON(value, p)
}

type NonMemberParticipants []NonMemberParticipant

func (p NonMemberParticipants) Value() (driver.Value, error) {
	if p == nil {
		return "[]", nil
	}
	b, err := json.Marshal(p)
	return string(b), err
}

func (p *NonMemberParticipants) Scan(value interface{}) error {
	return scanJSON(value, p)
}

func (w Weather) Value() (driver.Value, error) {
	b, err := json.Marshal(w)
	return string(b), err
}

func (w *Weather) Scan(value interface{}) error {
	return scanJSON(value, w)
}

func scanJSON(value interface{}, dest interface{}) error {
	if value == nil {
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, dest)
	case string:
		return json.Unmarshal([]byte(v), dest)
	default:
		return fmt.Errorf("unsupported jsonb source type %T", value)
	}
}

// Round is the aggregate root for a scored outing: who shot, what they scored
// on each target, and the derived totals. Score mutations go through the
// methods below so totals are always recomputed in the same write.
type Round struct {
	ID                    string                `gorm:"type:uuid;default:gen_random_uuid();primary_key" json:"id"`
	Name                  string                `gorm:"type:varchar(100);not null" json:"name"`
	ScoringSystem         scoring.System        `gorm:"type:varchar(10);not null" json:"scoringSystem"`
	Date                  time.Time             `gorm:"not null" json:"date"`
	CourseID              *string               `gorm:"type:uuid;column:course_id" json:"course"`
	Course                *Course               `gorm:"foreignKey:CourseID" json:"courseInfo,omitempty"`
	ClubID                *string               `gorm:"type:uuid;column:club_id" json:"club"`
	Club                  *Club                 `gorm:"foreignKey:ClubID" json:"clubInfo,omitempty"`
	EventID               *string               `gorm:"type:uuid;column:event_id" json:"event"`
	Event                 *Event                `gorm:"foreignKey:EventID" json:"eventInfo,omitempty"`
	Participants          Participants          `gorm:"type:jsonb;not null;default:'[]'" json:"participants"`
	NonMemberParticipants NonMemberParticipants `gorm:"type:jsonb;not null;default:'[]'" json:"nonMemberParticipants"`
	Status                string                `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	ScorerID              string                `gorm:"type:uuid;not null;column:scorer_id" json:"scorer"`
	Scorer                *User                 `gorm:"foreignKey:ScorerID" json:"scorerInfo,omitempty"`
	Notes                 string                `gorm:"type:text" json:"notes"`
	Weather               Weather               `gorm:"type:jsonb" json:"weather"`
	CreatedAt             time.Time             `json:"createdAt"`
}

// ParticipantRef addresses either a registered participant (by user id) or a
// non-member guest (by generated id) inside one round.
type ParticipantRef struct {
	ID        string
	NonMember bool
}

// HasScores reports whether any participant or guest has recorded a score.
// Once true the scoring system is locked.
func (r *Round) HasScores() bool {
	for _, p := range r.Participants {
		if len(p.Scores) > 0 {
			return true
		}
	}
	for _, n := range r.NonMemberParticipants {
		if len(n.Scores) > 0 {
			return true
		}
	}
	return false
}

// FindParticipant returns the registered participant with the given user id
func (r *Round) FindParticipant(userID string) *Participant {
	for i := range r.Participants {
		if r.Participants[i].UserID == userID {
			return &r.Participants[i]
		}
	}
	return nil
}

// FindNonMember returns the guest with the given id
func (r *Round) FindNonMember(id string) *NonMemberParticipant {
	for i := range r.NonMemberParticipants {
		if r.NonMemberParticipants[i].ID == id {
			return &r.NonMemberParticipants[i]
		}
	}
	return nil
}

// AddParticipant adds a registered user to the round. Unverified accounts are
// rejected unless the caller holds the bypass capability.
func (r *Round) AddParticipant(user *User, bypassVerification bool) error {
	if r.FindParticipant(user.ID) != nil {
		return ErrDuplicateParticipant
	}
	if !user.Verified && !bypassVerification {
		return ErrUnverifiedParticipant
	}
	r.Participants = append(r.Participants, Participant{
		UserID: user.ID,
		Name:   user.Name,
		Scores: []TargetScore{},
	})
	return nil
}

// AddNonMemberParticipant adds a guest by name. Names must be unique within
// the round's guest list.
func (r *Round) AddNonMemberParticipant(name string) (*NonMemberParticipant, error) {
	for _, n := range r.NonMemberParticipants {
		if n.Name == name {
			return nil, ErrDuplicateParticipant
		}
	}
	guest := NonMemberParticipant{
		ID:     uuid.NewString(),
		Name:   name,
		Scores: []TargetScore{},
	}
	r.NonMemberParticipants = append(r.NonMemberParticipants, guest)
	return &r.NonMemberParticipants[len(r.NonMemberParticipants)-1], nil
}

// RemoveParticipant removes a registered participant. The scorer can never be
// removed from the participant list.
func (r *Round) RemoveParticipant(userID string) error {
	idx := -1
	for i := range r.Participants {
		if r.Participants[i].UserID == userID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return ErrParticipantNotFound
	}
	if userID == r.ScorerID {
		return ErrScorerProtected
	}
	r.Participants = append(r.Participants[:idx], r.Participants[idx+1:]...)
	return nil
}

// RemoveNonMemberParticipant removes a guest by id
func (r *Round) RemoveNonMemberParticipant(id string) error {
	for i := range r.NonMemberParticipants {
		if r.NonMemberParticipants[i].ID == id {
			r.NonMemberParticipants = append(r.NonMemberParticipants[:i], r.NonMemberParticipants[i+1:]...)
			return nil
		}
	}
	return ErrParticipantNotFound
}

// AddOrReplaceScore scores the given arrows for one target and inserts or
// replaces that target's entry in the participant's score list, then
// recomputes totals. Arrow points are always derived here, never trusted from
// the caller.
func (r *Round) AddOrReplaceScore(ref ParticipantRef, targetNumber int, arrows []scoring.Arrow, table scoring.ABATable) (*TargetScore, error) {
	if r.Status != RoundStatusActive {
		return nil, ErrRoundNotActive
	}
	if targetNumber < 1 {
		return nil, fmt.Errorf("%w: targetNumber must be positive", scoring.ErrValidation)
	}
	if r.Course != nil {
		if targetNumber > r.Course.Targets {
			return nil, fmt.Errorf("%w: course only has %d targets", scoring.ErrValidation, r.Course.Targets)
		}
		if len(arrows) > r.Course.ArrowsPerTarget {
			return nil, fmt.Errorf("%w: course allows %d arrows per target", scoring.ErrValidation, r.Course.ArrowsPerTarget)
		}
	} else if r.ScoringSystem == scoring.ABA && len(arrows) > scoring.MaxArrowsPerTarget {
		// The three-arrow cap is an ABA rule; IFAA rounds without a course
		// are only bounded by the course layout, and there is none here.
		return nil, fmt.Errorf("%w: at most %d arrows per target", scoring.ErrValidation, scoring.MaxArrowsPerTarget)
	}

	scored, total, err := scoring.ScoreTarget(r.ScoringSystem, table, arrows)
	if err != nil {
		return nil, err
	}
	score := TargetScore{
		TargetNumber: targetNumber,
		Arrows:       scored,
		TotalPoints:  total,
	}

	var scores *[]TargetScore
	if ref.NonMember {
		guest := r.FindNonMember(ref.ID)
		if guest == nil {
			return nil, ErrParticipantNotFound
		}
		scores = &guest.Scores
	} else {
		participant := r.FindParticipant(ref.ID)
		if participant == nil {
			return nil, ErrParticipantNotFound
		}
		scores = &participant.Scores
	}

	replaced := false
	for i := range *scores {
		if (*scores)[i].TargetNumber == targetNumber {
			(*scores)[i] = score
			replaced = true
			break
		}
	}
	if !replaced {
		*scores = append(*scores, score)
	}

	r.RecomputeTotals()
	return &score, nil
}

// RecomputeTotals rebuilds every participant's total score from their target
// scores. Totals are derived values; this runs after every score mutation,
// the same recalculation the original performed on each save.
func (r *Round) RecomputeTotals() {
	for i := range r.Participants {
		total := 0
		for _, s := range r.Participants[i].Scores {
			total += s.TotalPoints
		}
		r.Participants[i].TotalScore = total
	}
	for i := range r.NonMemberParticipants {
		total := 0
		for _, s := range r.NonMemberParticipants[i].Scores {
			total += s.TotalPoints
		}
		r.NonMemberParticipants[i].TotalScore = total
	}
}

// ChangeScoringSystem switches the round's scoring system. Fails once any
// score has been recorded, since recorded arrows only make sense under the
// system they were scored with.
func (r *Round) ChangeScoringSystem(system scoring.System) error {
	if system == r.ScoringSystem {
		return nil
	}
	if !system.Valid() {
		return fmt.Errorf("%w: unknown scoring system %q", scoring.ErrValidation, system)
	}
	if r.HasScores() {
		return ErrScoringLocked
	}
	r.ScoringSystem = system
	return nil
}

// Complete transitions the round from active to completed. Completed is
// terminal for scoring; there is no un-complete.
func (r *Round) Complete() error {
	switch r.Status {
	case RoundStatusCompleted:
		return ErrAlreadyCompleted
	case RoundStatusCancelled:
		return ErrRoundNotActive
	}
	r.Status = RoundStatusCompleted
	r.RecomputeTotals()
	return nil
}

// Cancel transitions the round from active to cancelled, a terminal state
func (r *Round) Cancel() error {
	switch r.Status {
	case RoundStatusCompleted:
		return ErrAlreadyCompleted
	case RoundStatusCancelled:
		return ErrRoundNotActive
	}
	r.Status = RoundStatusCancelled
	return nil
}

// CanDelete reports whether the round may be deleted. Rounds attached to an
// event are kept for the event's records.
func (r *Round) CanDelete() error {
	if r.EventID != nil {
		return ErrEventLinked
	}
	return nil
}

// IsValidationError reports whether err is an arrow/score validation rejection
func IsValidationError(err error) bool {
	return errors.Is(err, scoring.ErrValidation)
}
