package repositories

import (
	"meal_voting_system/internal/db/models"

	"github.com/go-pg/pg/v10"
	"github.com/pkg/errors"
)

type mealRepository struct {
	repository
}

type MealRepository interface {
	GetOne(mealID int64) (*models.Meal, error)
}

func NewMealRepository(db *pg.DB) MealRepository {
	return &mealRepository{
		repository: repository{
			db: db,
		},
	}
}

func (r *mealRepository) GetOne(mealID int64) (*models.Meal, error) {
	meal := &models.Meal{}

	err := r.db.Model(meal).
		Where("id = ?", mealID).
		Where("is_active").
		Select()
	if err == pg.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to select meal")
	}

	return meal, nil
}
