package models

import "time"

// ReadyConfirmation records that a member is done proposing meals.
type ReadyConfirmation struct {
	ID        int64     `json:"id" pg:",pk"`
	SessionID int64     `json:"session_id" pg:",notnull"`
	MemberID  int64     `json:"member_id" pg:",notnull"`
	CreatedAt time.Time `json:"created_at" pg:"default:now()"`
}

// VoteConfirmation records that a member considers their votes final.
type VoteConfirmation struct {
	ID        int64     `json:"id" pg:",pk"`
	SessionID int64     `json:"session_id" pg:",notnull"`
	MemberID  int64     `json:"member_id" pg:",notnull"`
	CreatedAt time.Time `json:"created_at" pg:"default:now()"`
}
