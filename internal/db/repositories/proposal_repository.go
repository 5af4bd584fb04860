package repositories

import (
	"meal_voting_system/internal/apperrors"
	"meal_voting_system/internal/db/models"

	"github.com/go-pg/pg/v10"
	"github.com/pkg/errors"
)

type proposalRepository struct {
	repository
}

type ProposalRepository interface {
	Create(proposal *models.MealProposal) (*models.MealProposal, error)
	GetOne(proposalID int64) (*models.MealProposal, error)
	GetActiveBySession(sessionID int64) ([]*models.MealProposal, error)
	CountActiveBySession(sessionID int64) (int, error)
}

func NewProposalRepository(db *pg.DB) ProposalRepository {
	return &proposalRepository{
		repository: repository{
			db: db,
		},
	}
}

func (r *proposalRepository) Create(request *models.MealProposal) (*models.MealProposal, error) {
	_, err := r.db.Model(request).Insert()
	if err != nil {
		if isUniqueViolation(err) {
			return nil, &apperrors.DuplicateProposalError{
				SessionID: request.SessionID,
				MealID:    request.MealID,
			}
		}
		return nil, errors.Wrap(err, "failed to insert proposal")
	}

	return r.GetOne(request.ID)
}

func (r *proposalRepository) GetOne(proposalID int64) (*models.MealProposal, error) {
	proposal := &models.MealProposal{}

	err := r.db.Model(proposal).
		Relation("Meal").
		Where("meal_proposal.id = ?", proposalID).
		Select()
	if err == pg.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to select proposal")
	}

	return proposal, nil
}

// GetActiveBySession returns active proposals in creation order, which is
// also the order the winner tie-break walks.
func (r *proposalRepository) GetActiveBySession(sessionID int64) ([]*models.MealProposal, error) {
	proposals := make([]*models.MealProposal, 0)

	err := r.db.Model(&proposals).
		Relation("Meal").
		Where("meal_proposal.session_id = ?", sessionID).
		Where("meal_proposal.is_active").
		OrderExpr("meal_proposal.created_at ASC, meal_proposal.id ASC").
		Select()
	if err != nil {
		return nil, errors.Wrap(err, "failed to select active proposals")
	}

	return proposals, nil
}

func (r *proposalRepository) CountActiveBySession(sessionID int64) (int, error) {
	count, err := r.db.Model((*models.MealProposal)(nil)).
		Where("session_id = ?", sessionID).
		Where("is_active").
		Count()
	if err != nil {
		return 0, errors.Wrap(err, "failed to count active proposals")
	}

	return count, nil
}
