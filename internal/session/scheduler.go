package session

import (
	"meal_voting_system/internal/db/models"
	"meal_voting_system/internal/db/repositories"

	"go.uber.org/zap"
)

type transitioner interface {
	AdvanceToVoting(sessionID int64) (*models.VotingSession, error)
	FinalizeDue(sessionID int64) (*models.VotingSession, error)
}

// Scheduler forces deadline-expired phase transitions through the same
// manager code paths a user would hit, relying on their compare-and-swap
// guards for idempotence. It holds no state of its own: every scan reads
// deadlines fresh from the store, so it is restart-safe by construction.
type Scheduler struct {
	sessions repositories.SessionRepository
	manager  transitioner
	clock    Clock
	logger   *zap.SugaredLogger
}

func NewScheduler(
	sessions repositories.SessionRepository,
	manager transitioner,
	clock Clock,
	logger *zap.SugaredLogger,
) *Scheduler {
	return &Scheduler{
		sessions: sessions,
		manager:  manager,
		clock:    clock,
		logger:   logger,
	}
}

// Scan advances every session whose current phase deadline has passed. A
// failed transition is logged and skipped so one broken session never
// blocks the rest of the scan.
func (s *Scheduler) Scan() {
	now := s.clock.Now()

	expiredProposal, err := s.sessions.GetExpired(models.SessionStatusProposalPhase, now)
	if err != nil {
		s.logger.Errorw("failed to scan expired proposal phases", "error", err)
	} else {
		for _, session := range expiredProposal {
			if _, err := s.manager.AdvanceToVoting(session.ID); err != nil {
				s.logger.Errorw("failed to advance expired session",
					"session_id", session.ID, "error", err)
			}
		}
	}

	expiredVoting, err := s.sessions.GetExpired(models.SessionStatusVotingPhase, now)
	if err != nil {
		s.logger.Errorw("failed to scan expired voting phases", "error", err)
		return
	}

	for _, session := range expiredVoting {
		if _, err := s.manager.FinalizeDue(session.ID); err != nil {
			s.logger.Errorw("failed to finalize expired session",
				"session_id", session.ID, "error", err)
		}
	}
}
