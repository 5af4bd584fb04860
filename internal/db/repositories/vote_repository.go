package repositories

import (
	"context"

	"meal_voting_system/internal/apperrors"
	"meal_voting_system/internal/db/models"

	"github.com/go-pg/pg/v10"
	"github.com/pkg/errors"
)

type voteRepository struct {
	repository
}

type VoteRepository interface {
	Cast(vote *models.Vote) (*models.Vote, error)
	GetActiveBySession(sessionID int64) ([]*models.Vote, error)
	CountActiveYesByProposal(proposalID int64) (int, error)
}

func NewVoteRepository(db *pg.DB) VoteRepository {
	return &voteRepository{
		repository: repository{
			db: db,
		},
	}
}

// Cast supersedes any prior active ballot by the same voter and inserts the
// new one in a single transaction, so a voter never holds two active votes.
func (r *voteRepository) Cast(request *models.Vote) (*models.Vote, error) {
	err := r.db.RunInTransaction(context.Background(), func(tx *pg.Tx) error {
		_, err := tx.Model((*models.Vote)(nil)).
			Set("is_active = false").
			Where("session_id = ?", request.SessionID).
			Where("voter_member_id = ?", request.VoterMemberID).
			Where("is_active").
			Update()
		if err != nil {
			return err
		}

		_, err = tx.Model(request).Insert()
		return err
	})
	if err != nil {
		// A simultaneous ballot by the same voter can slip past the
		// deactivation and trip the one-active-vote-per-voter index.
		if isUniqueViolation(err) {
			return nil, &apperrors.ConflictError{Message: "voter already has an active ballot"}
		}
		return nil, errors.Wrap(err, "failed to cast vote")
	}

	vote := &models.Vote{}

	err = r.db.Model(vote).
		Where("id = ?", request.ID).
		Select()
	if err != nil {
		return nil, errors.Wrap(err, "failed to select cast vote")
	}

	return vote, nil
}

func (r *voteRepository) GetActiveBySession(sessionID int64) ([]*models.Vote, error) {
	votes := make([]*models.Vote, 0)

	err := r.db.Model(&votes).
		Where("session_id = ?", sessionID).
		Where("is_active").
		Select()
	if err != nil {
		return nil, errors.Wrap(err, "failed to select active votes")
	}

	return votes, nil
}

func (r *voteRepository) CountActiveYesByProposal(proposalID int64) (int, error) {
	count, err := r.db.Model((*models.Vote)(nil)).
		Where("proposal_id = ?", proposalID).
		Where("type = ?", models.VoteTypeYes).
		Where("is_active").
		Count()
	if err != nil {
		return 0, errors.Wrap(err, "failed to count votes")
	}

	return count, nil
}
