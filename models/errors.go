package models

import "errors"

// Domain errors surfaced by the round aggregate. Handlers map these to HTTP
// statuses with errors.Is.
var (
	ErrParticipantNotFound   = errors.New("participant not found in round")
	ErrDuplicateParticipant  = errors.New("participant already in round")
	ErrScorerProtected       = errors.New("cannot remove the scorer from participants")
	ErrUnverifiedParticipant = errors.New("user account is not verified")
	ErrImmutableField        = errors.New("cannot change the scorer of a round")
	ErrScoringLocked         = errors.New("cannot change scoring system once scores have been recorded")
	ErrEventLinked           = errors.New("cannot delete a round that is part of an event")
	ErrAlreadyCompleted      = errors.New("round is already completed")
	ErrRoundNotActive        = errors.New("round is not active")
)
