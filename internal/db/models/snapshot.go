package models

// SessionSnapshot is the fully hydrated read model pushed to subscribers
// after every committed mutation. It is assembled from a single store
// transaction so it never mixes pre- and post-mutation state.
type SessionSnapshot struct {
	Session            *VotingSession       `json:"session"`
	Group              *Group               `json:"group"`
	Proposals          []*ProposalSnapshot  `json:"proposals"`
	ReadyConfirmations []*ReadyConfirmation `json:"ready_confirmations"`
	VoteConfirmations  []*VoteConfirmation  `json:"vote_confirmations"`
}

// ProposalSnapshot pairs an active proposal with its meal details and the
// current count of active yes votes.
type ProposalSnapshot struct {
	Proposal *MealProposal `json:"proposal"`
	Votes    []*Vote       `json:"votes"`
	Tally    int           `json:"tally"`
}

// TallyByProposal maps proposal id to its active yes-vote count.
func (s *SessionSnapshot) TallyByProposal() map[int64]int {
	tally := make(map[int64]int, len(s.Proposals))
	for _, p := range s.Proposals {
		tally[p.Proposal.ID] = p.Tally
	}
	return tally
}
