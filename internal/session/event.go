package session

import "meal_voting_system/internal/db/models"

const (
	EventSessionCreated     = "session:created"
	EventMealProposed       = "meal:proposed"
	EventPhaseStarted       = "phase:started"
	EventVoteCast           = "vote:cast"
	EventVotingCompleted    = "voting:completed"
	EventUserConfirmedReady = "user:confirmed-ready"
	EventUserConfirmedVotes = "user:confirmed-votes"
	EventSessionUpdated     = "session:updated"
)

// Event is a domain event produced by a committed manager operation. A nil
// Payload means the dispatcher ships the freshly built session snapshot;
// EventVotingCompleted is also shaped from the snapshot so the winner and
// tally always match the completed state.
type Event struct {
	Name      string
	GroupID   int64
	SessionID int64
	Payload   interface{}
}

// VoteCastPayload carries the new ballot together with the voted
// proposal's updated tally.
type VoteCastPayload struct {
	Vote                 *models.Vote `json:"vote"`
	ProposalID           int64        `json:"proposal_id"`
	UpdatedProposalTally int          `json:"updated_proposal_tally"`
}

// VotingCompletedPayload is the terminal event body: the full snapshot,
// the winner, and the final tally.
type VotingCompletedPayload struct {
	Session       *models.SessionSnapshot `json:"session"`
	WinningMealID *int64                  `json:"winning_meal_id"`
	Tally         map[int64]int           `json:"tally"`
}
