package models

import "time"

type VoteType string

const (
	VoteTypeYes VoteType = "yes"
	VoteTypeNo  VoteType = "no"
)

func (t VoteType) Valid() bool {
	return t == VoteTypeYes || t == VoteTypeNo
}

type Vote struct {
	ID            int64     `json:"id" pg:",pk"`
	SessionID     int64     `json:"session_id" pg:",notnull"`
	VoterMemberID int64     `json:"voter_member_id" pg:",notnull"`
	ProposalID    int64     `json:"proposal_id" pg:",notnull"`
	Type          VoteType  `json:"type" pg:",notnull"`
	IsActive      bool      `json:"is_active" pg:",use_zero,default:true"`
	CreatedAt     time.Time `json:"created_at" pg:"default:now()"`
}
