package models

import "time"

type Meal struct {
	ID          int64     `json:"id" pg:",pk"`
	Name        string    `json:"name" pg:",notnull"`
	Description string    `json:"description"`
	IsActive    bool      `json:"is_active" pg:",use_zero,default:true"`
	CreatedAt   time.Time `json:"created_at" pg:"default:now()"`
}
