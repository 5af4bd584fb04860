package models

import "time"

type SessionStatus string

const (
	SessionStatusProposalPhase SessionStatus = "proposal_phase"
	SessionStatusVotingPhase   SessionStatus = "voting_phase"
	SessionStatusCompleted     SessionStatus = "completed"
	SessionStatusCancelled     SessionStatus = "cancelled"
)

func (s SessionStatus) String() string {
	return string(s)
}

// Live reports whether the session still accepts mutations.
func (s SessionStatus) Live() bool {
	return s == SessionStatusProposalPhase || s == SessionStatusVotingPhase
}

const (
	CancelReasonNoProposals      = "no_proposals"
	CancelReasonInitiatorRequest = "initiator_request"
)

type VotingSession struct {
	ID               int64           `json:"id" pg:",pk"`
	GroupID          int64           `json:"group_id" pg:",notnull"`
	InitiatorID      int64           `json:"initiator_id" pg:",notnull"`
	Status           SessionStatus   `json:"status" pg:",notnull,default:'proposal_phase'"`
	ProposalDeadline time.Time       `json:"proposal_deadline" pg:",notnull"`
	VotingDeadline   *time.Time      `json:"voting_deadline"`
	WinningMealID    *int64          `json:"winning_meal_id"`
	CancelReason     string          `json:"cancel_reason,omitempty"`
	CreatedAt        time.Time       `json:"created_at" pg:"default:now()"`
	UpdatedAt        time.Time       `json:"updated_at" pg:"default:now()"`
	Proposals        []*MealProposal `json:"proposals,omitempty" pg:"rel:has-many"`
}
