package session

import (
	"time"

	"meal_voting_system/internal/apperrors"
	"meal_voting_system/internal/db/models"
	"meal_voting_system/internal/db/repositories"

	"go.uber.org/zap"
)

type eventDispatcher interface {
	Dispatch(events []Event)
}

// Manager owns every voting session state transition. It holds no session
// state between calls: each operation re-reads current status and relies on
// the store's conditional updates, so scheduler-driven and user-driven
// triggers are indistinguishable and each transition commits at most once.
type Manager struct {
	sessions      repositories.SessionRepository
	proposals     repositories.ProposalRepository
	votes         repositories.VoteRepository
	confirmations repositories.ConfirmationRepository
	groups        repositories.GroupRepository
	meals         repositories.MealRepository

	dispatcher     eventDispatcher
	clock          Clock
	votingDuration time.Duration
	logger         *zap.SugaredLogger
}

func NewManager(
	sessions repositories.SessionRepository,
	proposals repositories.ProposalRepository,
	votes repositories.VoteRepository,
	confirmations repositories.ConfirmationRepository,
	groups repositories.GroupRepository,
	meals repositories.MealRepository,
	dispatcher eventDispatcher,
	clock Clock,
	votingDuration time.Duration,
	logger *zap.SugaredLogger,
) *Manager {
	return &Manager{
		sessions:       sessions,
		proposals:      proposals,
		votes:          votes,
		confirmations:  confirmations,
		groups:         groups,
		meals:          meals,
		dispatcher:     dispatcher,
		clock:          clock,
		votingDuration: votingDuration,
		logger:         logger,
	}
}

// Start creates a session in proposal_phase. The one-live-session-per-group
// invariant is checked up front for a friendly error and enforced by the
// store's partial unique index for the racing case.
func (m *Manager) Start(groupID, initiatorID int64, proposalDuration time.Duration) (*models.VotingSession, error) {
	group, err := m.groups.GetOne(groupID)
	if err != nil {
		return nil, err
	}
	if group == nil || !group.IsActive {
		return nil, &apperrors.NotFoundError{Resource: "group", ID: groupID}
	}

	active, err := m.sessions.GetActiveByGroup(groupID)
	if err != nil {
		return nil, err
	}
	if active != nil {
		return nil, &apperrors.ConflictError{Message: "group already has a session in progress"}
	}

	now := m.clock.Now()
	session, err := m.sessions.Create(&models.VotingSession{
		GroupID:          groupID,
		InitiatorID:      initiatorID,
		Status:           models.SessionStatusProposalPhase,
		ProposalDeadline: now.Add(proposalDuration),
		CreatedAt:        now,
		UpdatedAt:        now,
	})
	if err != nil {
		return nil, err
	}

	m.dispatcher.Dispatch([]Event{{
		Name:      EventSessionCreated,
		GroupID:   session.GroupID,
		SessionID: session.ID,
	}})

	return session, nil
}

// Propose nominates a meal during the proposal phase.
func (m *Manager) Propose(sessionID, memberID, mealID int64) (*models.MealProposal, error) {
	session, err := m.getSession(sessionID)
	if err != nil {
		return nil, err
	}

	if session.Status != models.SessionStatusProposalPhase || !m.clock.Now().Before(session.ProposalDeadline) {
		return nil, &apperrors.InvalidPhaseError{Operation: "propose", Status: session.Status.String()}
	}

	meal, err := m.meals.GetOne(mealID)
	if err != nil {
		return nil, err
	}
	if meal == nil {
		return nil, &apperrors.NotFoundError{Resource: "meal", ID: mealID}
	}

	proposal, err := m.proposals.Create(&models.MealProposal{
		SessionID:          sessionID,
		ProposedByMemberID: memberID,
		MealID:             mealID,
		IsActive:           true,
		CreatedAt:          m.clock.Now(),
	})
	if err != nil {
		return nil, err
	}

	m.dispatcher.Dispatch([]Event{{
		Name:      EventMealProposed,
		GroupID:   session.GroupID,
		SessionID: session.ID,
		Payload:   proposal,
	}})

	return proposal, nil
}

// ConfirmReady records that a member is done proposing. Once every active
// group member has confirmed, the proposal phase advances immediately as a
// fast-path ahead of the deadline.
func (m *Manager) ConfirmReady(sessionID, memberID int64) (*models.ReadyConfirmation, error) {
	session, err := m.getSession(sessionID)
	if err != nil {
		return nil, err
	}

	if session.Status != models.SessionStatusProposalPhase {
		return nil, &apperrors.InvalidPhaseError{Operation: "confirm ready", Status: session.Status.String()}
	}

	confirmation, err := m.confirmations.UpsertReady(sessionID, memberID)
	if err != nil {
		return nil, err
	}

	m.dispatcher.Dispatch([]Event{{
		Name:      EventUserConfirmedReady,
		GroupID:   session.GroupID,
		SessionID: session.ID,
		Payload:   confirmation,
	}})

	unanimous, err := m.allMembersConfirmed(session.GroupID, sessionID, m.confirmations.GetReadyMemberIDs)
	if err != nil {
		return nil, err
	}
	if unanimous {
		if _, err := m.AdvanceToVoting(sessionID); err != nil {
			// The confirmation itself committed; the scheduler forces the
			// transition once the proposal deadline expires.
			m.logger.Errorw("failed to advance after unanimous ready confirmation",
				"session_id", sessionID, "error", err)
		}
	}

	return confirmation, nil
}

// AdvanceToVoting transitions proposal_phase to voting_phase with
// compare-and-swap semantics: if another caller already advanced the
// session this is a silent no-op returning current state. A session with
// zero active proposals is cancelled instead.
func (m *Manager) AdvanceToVoting(sessionID int64) (*models.VotingSession, error) {
	session, err := m.getSession(sessionID)
	if err != nil {
		return nil, err
	}

	if session.Status != models.SessionStatusProposalPhase {
		return session, nil
	}

	proposalCount, err := m.proposals.CountActiveBySession(sessionID)
	if err != nil {
		return nil, err
	}

	if proposalCount == 0 {
		return m.cancelWithReason(session, models.CancelReasonNoProposals)
	}

	transitioned, err := m.sessions.AdvanceToVoting(sessionID, m.clock.Now().Add(m.votingDuration))
	if err != nil {
		return nil, err
	}

	session, err = m.getSession(sessionID)
	if err != nil {
		return nil, err
	}

	if transitioned {
		m.dispatcher.Dispatch([]Event{{
			Name:      EventPhaseStarted,
			GroupID:   session.GroupID,
			SessionID: session.ID,
		}})
	}

	return session, nil
}

// Vote casts a ballot, superseding any prior active ballot by the same
// voter in the same transaction.
func (m *Manager) Vote(sessionID, voterID, proposalID int64, voteType models.VoteType) (*models.Vote, error) {
	if !voteType.Valid() {
		voteType = models.VoteTypeYes
	}

	session, err := m.getSession(sessionID)
	if err != nil {
		return nil, err
	}

	if session.Status != models.SessionStatusVotingPhase ||
		session.VotingDeadline == nil ||
		!m.clock.Now().Before(*session.VotingDeadline) {
		return nil, &apperrors.InvalidPhaseError{Operation: "vote", Status: session.Status.String()}
	}

	proposal, err := m.proposals.GetOne(proposalID)
	if err != nil {
		return nil, err
	}
	if proposal == nil || proposal.SessionID != sessionID || !proposal.IsActive {
		return nil, &apperrors.UnknownProposalError{SessionID: sessionID, ProposalID: proposalID}
	}

	vote, err := m.votes.Cast(&models.Vote{
		SessionID:     sessionID,
		VoterMemberID: voterID,
		ProposalID:    proposalID,
		Type:          voteType,
		IsActive:      true,
		CreatedAt:     m.clock.Now(),
	})
	if err != nil {
		return nil, err
	}

	tally, err := m.votes.CountActiveYesByProposal(proposalID)
	if err != nil {
		return nil, err
	}

	m.dispatcher.Dispatch([]Event{{
		Name:      EventVoteCast,
		GroupID:   session.GroupID,
		SessionID: session.ID,
		Payload: &VoteCastPayload{
			Vote:                 vote,
			ProposalID:           proposalID,
			UpdatedProposalTally: tally,
		},
	}})

	return vote, nil
}

// ConfirmVotesFinal records that a member's ballots are final. A unanimous
// confirmation finalizes the session ahead of the voting deadline.
func (m *Manager) ConfirmVotesFinal(sessionID, memberID int64) (*models.VoteConfirmation, error) {
	session, err := m.getSession(sessionID)
	if err != nil {
		return nil, err
	}

	if session.Status != models.SessionStatusVotingPhase {
		return nil, &apperrors.InvalidPhaseError{Operation: "confirm votes", Status: session.Status.String()}
	}

	confirmation, err := m.confirmations.UpsertVotesFinal(sessionID, memberID)
	if err != nil {
		return nil, err
	}

	m.dispatcher.Dispatch([]Event{{
		Name:      EventUserConfirmedVotes,
		GroupID:   session.GroupID,
		SessionID: session.ID,
		Payload:   confirmation,
	}})

	unanimous, err := m.allMembersConfirmed(session.GroupID, sessionID, m.confirmations.GetVotesFinalMemberIDs)
	if err != nil {
		return nil, err
	}
	if unanimous {
		if _, err := m.FinalizeDue(sessionID); err != nil {
			m.logger.Errorw("failed to finalize after unanimous vote confirmation",
				"session_id", sessionID, "error", err)
		}
	}

	return confirmation, nil
}

// Finalize is the manual completion path and requires the initiator.
func (m *Manager) Finalize(sessionID, callerID int64) (*models.VotingSession, error) {
	session, err := m.getSession(sessionID)
	if err != nil {
		return nil, err
	}

	if session.Status != models.SessionStatusVotingPhase {
		return nil, &apperrors.InvalidPhaseError{Operation: "finalize", Status: session.Status.String()}
	}

	if session.InitiatorID != callerID {
		return nil, &apperrors.ForbiddenError{Message: "only the session initiator may finalize"}
	}

	return m.finalize(session)
}

// FinalizeDue is the internal completion path used by the deadline
// scheduler and the unanimous-confirmation fast-path. It bypasses the actor
// check and no-ops when the session already left voting_phase.
func (m *Manager) FinalizeDue(sessionID int64) (*models.VotingSession, error) {
	session, err := m.getSession(sessionID)
	if err != nil {
		return nil, err
	}

	if session.Status != models.SessionStatusVotingPhase {
		return session, nil
	}

	return m.finalize(session)
}

func (m *Manager) finalize(session *models.VotingSession) (*models.VotingSession, error) {
	proposals, err := m.proposals.GetActiveBySession(session.ID)
	if err != nil {
		return nil, err
	}

	if len(proposals) == 0 {
		return m.cancelWithReason(session, models.CancelReasonNoProposals)
	}

	votes, err := m.votes.GetActiveBySession(session.ID)
	if err != nil {
		return nil, err
	}

	winner := pickWinner(proposals, votes)

	completed, err := m.sessions.Complete(session.ID, winner.MealID)
	if err != nil {
		return nil, err
	}

	session, err = m.getSession(session.ID)
	if err != nil {
		return nil, err
	}

	if completed {
		m.dispatcher.Dispatch([]Event{{
			Name:      EventVotingCompleted,
			GroupID:   session.GroupID,
			SessionID: session.ID,
		}})
	}

	return session, nil
}

// pickWinner selects the proposal with the most active yes votes. Ties go
// to the earliest-created proposal; proposals arrive ordered by creation
// time then id, so the first maximum wins.
func pickWinner(proposals []*models.MealProposal, votes []*models.Vote) *models.MealProposal {
	tally := make(map[int64]int, len(proposals))
	for _, vote := range votes {
		if vote.Type == models.VoteTypeYes {
			tally[vote.ProposalID]++
		}
	}

	winner := proposals[0]
	for _, proposal := range proposals[1:] {
		if tally[proposal.ID] > tally[winner.ID] {
			winner = proposal
		}
	}

	return winner
}

// Cancel terminates a live session on behalf of the initiator.
func (m *Manager) Cancel(sessionID, callerID int64) (*models.VotingSession, error) {
	session, err := m.getSession(sessionID)
	if err != nil {
		return nil, err
	}

	if !session.Status.Live() {
		return nil, &apperrors.InvalidPhaseError{Operation: "cancel", Status: session.Status.String()}
	}

	if session.InitiatorID != callerID {
		return nil, &apperrors.ForbiddenError{Message: "only the session initiator may cancel"}
	}

	return m.cancelWithReason(session, models.CancelReasonInitiatorRequest)
}

func (m *Manager) cancelWithReason(session *models.VotingSession, reason string) (*models.VotingSession, error) {
	cancelled, err := m.sessions.Cancel(session.ID, reason)
	if err != nil {
		return nil, err
	}

	session, err = m.getSession(session.ID)
	if err != nil {
		return nil, err
	}

	if cancelled {
		m.dispatcher.Dispatch([]Event{{
			Name:      EventSessionUpdated,
			GroupID:   session.GroupID,
			SessionID: session.ID,
		}})
	}

	return session, nil
}

// allMembersConfirmed matches confirmations against the current active
// roster, so a confirmation from a member who has since gone inactive, or
// from an id outside the group, never stands in for a missing one.
func (m *Manager) allMembersConfirmed(groupID, sessionID int64, confirmedMemberIDs func(int64) ([]int64, error)) (bool, error) {
	memberIDs, err := confirmedMemberIDs(sessionID)
	if err != nil {
		return false, err
	}

	group, err := m.groups.GetOne(groupID)
	if err != nil {
		return false, err
	}
	if group == nil {
		return false, nil
	}

	confirmed := make(map[int64]struct{}, len(memberIDs))
	for _, memberID := range memberIDs {
		confirmed[memberID] = struct{}{}
	}

	activeMembers := 0
	for _, member := range group.Members {
		if !member.IsActive {
			continue
		}
		activeMembers++
		if _, ok := confirmed[member.MemberID]; !ok {
			return false, nil
		}
	}

	return activeMembers > 0, nil
}

func (m *Manager) getSession(sessionID int64) (*models.VotingSession, error) {
	session, err := m.sessions.GetOne(sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, &apperrors.NotFoundError{Resource: "session", ID: sessionID}
	}

	return session, nil
}
