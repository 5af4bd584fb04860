package models

import "time"

type MealProposal struct {
	ID                 int64     `json:"id" pg:",pk"`
	SessionID          int64     `json:"session_id" pg:",notnull"`
	ProposedByMemberID int64     `json:"proposed_by_member_id" pg:",notnull"`
	MealID             int64     `json:"meal_id" pg:",notnull"`
	IsActive           bool      `json:"is_active" pg:",use_zero,default:true"`
	CreatedAt          time.Time `json:"created_at" pg:"default:now()"`
	Meal               *Meal     `json:"meal,omitempty" pg:"rel:has-one"`
	Votes              []*Vote   `json:"votes,omitempty" pg:"rel:has-many,join_fk:proposal_id"`
}
