package repositories

import (
	"meal_voting_system/internal/db/models"

	"github.com/go-pg/pg/v10"
	"github.com/pkg/errors"
)

type confirmationRepository struct {
	repository
}

// ConfirmationRepository stores the per-member acknowledgements that gate
// phase transitions. Upserts are idempotent: a repeated confirmation
// returns the existing row instead of creating a duplicate.
type ConfirmationRepository interface {
	UpsertReady(sessionID, memberID int64) (*models.ReadyConfirmation, error)
	GetReadyMemberIDs(sessionID int64) ([]int64, error)
	UpsertVotesFinal(sessionID, memberID int64) (*models.VoteConfirmation, error)
	GetVotesFinalMemberIDs(sessionID int64) ([]int64, error)
}

func NewConfirmationRepository(db *pg.DB) ConfirmationRepository {
	return &confirmationRepository{
		repository: repository{
			db: db,
		},
	}
}

func (r *confirmationRepository) UpsertReady(sessionID, memberID int64) (*models.ReadyConfirmation, error) {
	confirmation := &models.ReadyConfirmation{
		SessionID: sessionID,
		MemberID:  memberID,
	}

	_, err := r.db.Model(confirmation).
		OnConflict("(session_id, member_id) DO NOTHING").
		Insert()
	if err != nil {
		return nil, errors.Wrap(err, "failed to upsert ready confirmation")
	}

	err = r.db.Model(confirmation).
		Where("session_id = ?", sessionID).
		Where("member_id = ?", memberID).
		Select()
	if err != nil {
		return nil, errors.Wrap(err, "failed to select ready confirmation")
	}

	return confirmation, nil
}

func (r *confirmationRepository) GetReadyMemberIDs(sessionID int64) ([]int64, error) {
	memberIDs := make([]int64, 0)

	err := r.db.Model((*models.ReadyConfirmation)(nil)).
		Column("member_id").
		Where("session_id = ?", sessionID).
		Select(&memberIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to select ready confirmation members")
	}

	return memberIDs, nil
}

func (r *confirmationRepository) UpsertVotesFinal(sessionID, memberID int64) (*models.VoteConfirmation, error) {
	confirmation := &models.VoteConfirmation{
		SessionID: sessionID,
		MemberID:  memberID,
	}

	_, err := r.db.Model(confirmation).
		OnConflict("(session_id, member_id) DO NOTHING").
		Insert()
	if err != nil {
		return nil, errors.Wrap(err, "failed to upsert vote confirmation")
	}

	err = r.db.Model(confirmation).
		Where("session_id = ?", sessionID).
		Where("member_id = ?", memberID).
		Select()
	if err != nil {
		return nil, errors.Wrap(err, "failed to select vote confirmation")
	}

	return confirmation, nil
}

func (r *confirmationRepository) GetVotesFinalMemberIDs(sessionID int64) ([]int64, error) {
	memberIDs := make([]int64, 0)

	err := r.db.Model((*models.VoteConfirmation)(nil)).
		Column("member_id").
		Where("session_id = ?", sessionID).
		Select(&memberIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to select vote confirmation members")
	}

	return memberIDs, nil
}
