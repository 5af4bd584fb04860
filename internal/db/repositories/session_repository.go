package repositories

import (
	"time"

	"meal_voting_system/internal/apperrors"
	"meal_voting_system/internal/db/models"

	"github.com/go-pg/pg/v10"
	"github.com/pkg/errors"
)

type sessionRepository struct {
	repository
}

// SessionRepository owns voting session rows. Get methods return (nil, nil)
// when the row is absent. The transition methods are conditional single-row
// updates: the boolean result reports whether this call performed the
// transition, a false with nil error means another caller got there first.
type SessionRepository interface {
	Create(session *models.VotingSession) (*models.VotingSession, error)
	GetOne(sessionID int64) (*models.VotingSession, error)
	GetActiveByGroup(groupID int64) (*models.VotingSession, error)
	GetExpired(status models.SessionStatus, now time.Time) ([]*models.VotingSession, error)
	AdvanceToVoting(sessionID int64, votingDeadline time.Time) (bool, error)
	Complete(sessionID int64, winningMealID int64) (bool, error)
	Cancel(sessionID int64, reason string) (bool, error)
}

func NewSessionRepository(db *pg.DB) SessionRepository {
	return &sessionRepository{
		repository: repository{
			db: db,
		},
	}
}

func (r *sessionRepository) Create(request *models.VotingSession) (*models.VotingSession, error) {
	_, err := r.db.Model(request).Insert()
	if err != nil {
		if isUniqueViolation(err) {
			return nil, &apperrors.ConflictError{Message: "group already has a session in progress"}
		}
		return nil, errors.Wrap(err, "failed to insert session")
	}

	return r.GetOne(request.ID)
}

func (r *sessionRepository) GetOne(sessionID int64) (*models.VotingSession, error) {
	session := &models.VotingSession{}

	err := r.db.Model(session).
		Where("voting_session.id = ?", sessionID).
		Select()
	if err == pg.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to select session")
	}

	return session, nil
}

func (r *sessionRepository) GetActiveByGroup(groupID int64) (*models.VotingSession, error) {
	session := &models.VotingSession{}

	err := r.db.Model(session).
		Where("group_id = ?", groupID).
		Where("status in (?)", pg.In([]models.SessionStatus{
			models.SessionStatusProposalPhase,
			models.SessionStatusVotingPhase,
		})).
		Select()
	if err == pg.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to select active session")
	}

	return session, nil
}

func (r *sessionRepository) GetExpired(status models.SessionStatus, now time.Time) ([]*models.VotingSession, error) {
	deadlineColumn := "proposal_deadline"
	if status == models.SessionStatusVotingPhase {
		deadlineColumn = "voting_deadline"
	}

	sessions := make([]*models.VotingSession, 0)

	err := r.db.Model(&sessions).
		Where("status = ?", status).
		Where(deadlineColumn+" <= ?", now).
		OrderExpr("id ASC").
		Select()
	if err != nil {
		return nil, errors.Wrap(err, "failed to select expired sessions")
	}

	return sessions, nil
}

func (r *sessionRepository) AdvanceToVoting(sessionID int64, votingDeadline time.Time) (bool, error) {
	result, err := r.db.Model((*models.VotingSession)(nil)).
		Set("status = ?", models.SessionStatusVotingPhase).
		Set("voting_deadline = ?", votingDeadline).
		Set("updated_at = now()").
		Where("id = ?", sessionID).
		Where("status = ?", models.SessionStatusProposalPhase).
		Update()
	if err != nil {
		return false, errors.Wrap(err, "failed to advance session to voting")
	}

	return result.RowsAffected() == 1, nil
}

func (r *sessionRepository) Complete(sessionID int64, winningMealID int64) (bool, error) {
	result, err := r.db.Model((*models.VotingSession)(nil)).
		Set("status = ?", models.SessionStatusCompleted).
		Set("winning_meal_id = ?", winningMealID).
		Set("updated_at = now()").
		Where("id = ?", sessionID).
		Where("status = ?", models.SessionStatusVotingPhase).
		Update()
	if err != nil {
		return false, errors.Wrap(err, "failed to complete session")
	}

	return result.RowsAffected() == 1, nil
}

func (r *sessionRepository) Cancel(sessionID int64, reason string) (bool, error) {
	result, err := r.db.Model((*models.VotingSession)(nil)).
		Set("status = ?", models.SessionStatusCancelled).
		Set("cancel_reason = ?", reason).
		Set("updated_at = now()").
		Where("id = ?", sessionID).
		Where("status in (?)", pg.In([]models.SessionStatus{
			models.SessionStatusProposalPhase,
			models.SessionStatusVotingPhase,
		})).
		Update()
	if err != nil {
		return false, errors.Wrap(err, "failed to cancel session")
	}

	return result.RowsAffected() == 1, nil
}
