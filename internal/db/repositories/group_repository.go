package repositories

import (
	"meal_voting_system/internal/db/models"

	"github.com/go-pg/pg/v10"
	"github.com/go-pg/pg/v10/orm"
	"github.com/pkg/errors"
)

type groupRepository struct {
	repository
}

type GroupRepository interface {
	GetOne(groupID int64) (*models.Group, error)
}

func NewGroupRepository(db *pg.DB) GroupRepository {
	return &groupRepository{
		repository: repository{
			db: db,
		},
	}
}

// GetOne loads a group with its active members only.
func (r *groupRepository) GetOne(groupID int64) (*models.Group, error) {
	group := &models.Group{}

	err := r.db.Model(group).
		Relation("Members", func(q *orm.Query) (*orm.Query, error) {
			return q.Where("is_active"), nil
		}).
		Where("\"group\".id = ?", groupID).
		Select()
	if err == pg.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to select group")
	}

	return group, nil
}
