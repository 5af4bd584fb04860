package session

import (
	"sort"
	"sync"
	"testing"
	"time"

	"meal_voting_system/internal/apperrors"
	"meal_voting_system/internal/db/models"

	"go.uber.org/zap"
)

// fakeStore is an in-memory stand-in for the postgres repositories. It
// reproduces the store-level guarantees the manager leans on: the partial
// unique indexes and the conditional compare-and-swap updates, all under a
// single mutex so concurrent test callers hit the same races real callers
// would.
type fakeStore struct {
	mu sync.Mutex

	nextID int64

	groups             map[int64]*models.Group
	meals              map[int64]*models.Meal
	sessions           map[int64]*models.VotingSession
	proposals          map[int64]*models.MealProposal
	votes              map[int64]*models.Vote
	readyConfirmations map[int64]*models.ReadyConfirmation
	voteConfirmations  map[int64]*models.VoteConfirmation
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		groups:             make(map[int64]*models.Group),
		meals:              make(map[int64]*models.Meal),
		sessions:           make(map[int64]*models.VotingSession),
		proposals:          make(map[int64]*models.MealProposal),
		votes:              make(map[int64]*models.Vote),
		readyConfirmations: make(map[int64]*models.ReadyConfirmation),
		voteConfirmations:  make(map[int64]*models.VoteConfirmation),
	}
}

func (s *fakeStore) id() int64 {
	s.nextID++
	return s.nextID
}

func (s *fakeStore) addGroup(memberIDs ...int64) *models.Group {
	s.mu.Lock()
	defer s.mu.Unlock()

	group := &models.Group{
		ID:       s.id(),
		Name:     "group",
		IsActive: true,
	}
	for _, memberID := range memberIDs {
		group.Members = append(group.Members, &models.GroupMember{
			ID:       s.id(),
			GroupID:  group.ID,
			MemberID: memberID,
			IsActive: true,
		})
	}
	s.groups[group.ID] = group

	return group
}

func (s *fakeStore) addMeal(name string) *models.Meal {
	s.mu.Lock()
	defer s.mu.Unlock()

	meal := &models.Meal{
		ID:       s.id(),
		Name:     name,
		IsActive: true,
	}
	s.meals[meal.ID] = meal

	return meal
}

func (s *fakeStore) setMemberActive(groupID, memberID int64, active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, member := range s.groups[groupID].Members {
		if member.MemberID == memberID {
			member.IsActive = active
		}
	}
}

func (s *fakeStore) session(sessionID int64) *models.VotingSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	return copySession(s.sessions[sessionID])
}

func copySession(session *models.VotingSession) *models.VotingSession {
	if session == nil {
		return nil
	}
	copied := *session
	return &copied
}

type fakeSessionRepository struct{ store *fakeStore }

func (r *fakeSessionRepository) Create(session *models.VotingSession) (*models.VotingSession, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.sessions {
		if existing.GroupID == session.GroupID && existing.Status.Live() {
			return nil, &apperrors.ConflictError{Message: "group already has a session in progress"}
		}
	}

	copied := *session
	copied.ID = r.store.id()
	r.store.sessions[copied.ID] = &copied

	return copySession(&copied), nil
}

func (r *fakeSessionRepository) GetOne(sessionID int64) (*models.VotingSession, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	return copySession(r.store.sessions[sessionID]), nil
}

func (r *fakeSessionRepository) GetActiveByGroup(groupID int64) (*models.VotingSession, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, session := range r.store.sessions {
		if session.GroupID == groupID && session.Status.Live() {
			return copySession(session), nil
		}
	}

	return nil, nil
}

func (r *fakeSessionRepository) GetExpired(status models.SessionStatus, now time.Time) ([]*models.VotingSession, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	expired := make([]*models.VotingSession, 0)
	for _, session := range r.store.sessions {
		if session.Status != status {
			continue
		}

		deadline := session.ProposalDeadline
		if status == models.SessionStatusVotingPhase {
			if session.VotingDeadline == nil {
				continue
			}
			deadline = *session.VotingDeadline
		}

		if !deadline.After(now) {
			expired = append(expired, copySession(session))
		}
	}

	sort.Slice(expired, func(i, j int) bool { return expired[i].ID < expired[j].ID })

	return expired, nil
}

func (r *fakeSessionRepository) AdvanceToVoting(sessionID int64, votingDeadline time.Time) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	session, ok := r.store.sessions[sessionID]
	if !ok || session.Status != models.SessionStatusProposalPhase {
		return false, nil
	}

	session.Status = models.SessionStatusVotingPhase
	session.VotingDeadline = &votingDeadline

	return true, nil
}

func (r *fakeSessionRepository) Complete(sessionID int64, winningMealID int64) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	session, ok := r.store.sessions[sessionID]
	if !ok || session.Status != models.SessionStatusVotingPhase {
		return false, nil
	}

	session.Status = models.SessionStatusCompleted
	session.WinningMealID = &winningMealID

	return true, nil
}

func (r *fakeSessionRepository) Cancel(sessionID int64, reason string) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	session, ok := r.store.sessions[sessionID]
	if !ok || !session.Status.Live() {
		return false, nil
	}

	session.Status = models.SessionStatusCancelled
	session.CancelReason = reason

	return true, nil
}

type fakeProposalRepository struct{ store *fakeStore }

func (r *fakeProposalRepository) Create(proposal *models.MealProposal) (*models.MealProposal, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.proposals {
		if existing.SessionID == proposal.SessionID && existing.MealID == proposal.MealID && existing.IsActive {
			return nil, &apperrors.DuplicateProposalError{SessionID: proposal.SessionID, MealID: proposal.MealID}
		}
	}

	copied := *proposal
	copied.ID = r.store.id()
	r.store.proposals[copied.ID] = &copied

	result := copied
	return &result, nil
}

func (r *fakeProposalRepository) GetOne(proposalID int64) (*models.MealProposal, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	proposal, ok := r.store.proposals[proposalID]
	if !ok {
		return nil, nil
	}

	copied := *proposal
	return &copied, nil
}

func (r *fakeProposalRepository) GetActiveBySession(sessionID int64) ([]*models.MealProposal, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	proposals := make([]*models.MealProposal, 0)
	for _, proposal := range r.store.proposals {
		if proposal.SessionID == sessionID && proposal.IsActive {
			copied := *proposal
			proposals = append(proposals, &copied)
		}
	}

	sort.Slice(proposals, func(i, j int) bool {
		if proposals[i].CreatedAt.Equal(proposals[j].CreatedAt) {
			return proposals[i].ID < proposals[j].ID
		}
		return proposals[i].CreatedAt.Before(proposals[j].CreatedAt)
	})

	return proposals, nil
}

func (r *fakeProposalRepository) CountActiveBySession(sessionID int64) (int, error) {
	proposals, err := r.GetActiveBySession(sessionID)
	return len(proposals), err
}

type fakeVoteRepository struct{ store *fakeStore }

func (r *fakeVoteRepository) Cast(vote *models.Vote) (*models.Vote, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.votes {
		if existing.SessionID == vote.SessionID && existing.VoterMemberID == vote.VoterMemberID && existing.IsActive {
			existing.IsActive = false
		}
	}

	copied := *vote
	copied.ID = r.store.id()
	r.store.votes[copied.ID] = &copied

	result := copied
	return &result, nil
}

func (r *fakeVoteRepository) GetActiveBySession(sessionID int64) ([]*models.Vote, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	votes := make([]*models.Vote, 0)
	for _, vote := range r.store.votes {
		if vote.SessionID == sessionID && vote.IsActive {
			copied := *vote
			votes = append(votes, &copied)
		}
	}

	sort.Slice(votes, func(i, j int) bool { return votes[i].ID < votes[j].ID })

	return votes, nil
}

func (r *fakeVoteRepository) CountActiveYesByProposal(proposalID int64) (int, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	count := 0
	for _, vote := range r.store.votes {
		if vote.ProposalID == proposalID && vote.IsActive && vote.Type == models.VoteTypeYes {
			count++
		}
	}

	return count, nil
}

type fakeConfirmationRepository struct{ store *fakeStore }

func (r *fakeConfirmationRepository) UpsertReady(sessionID, memberID int64) (*models.ReadyConfirmation, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.readyConfirmations {
		if existing.SessionID == sessionID && existing.MemberID == memberID {
			copied := *existing
			return &copied, nil
		}
	}

	confirmation := &models.ReadyConfirmation{
		ID:        r.store.id(),
		SessionID: sessionID,
		MemberID:  memberID,
	}
	r.store.readyConfirmations[confirmation.ID] = confirmation

	copied := *confirmation
	return &copied, nil
}

func (r *fakeConfirmationRepository) GetReadyMemberIDs(sessionID int64) ([]int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	memberIDs := make([]int64, 0)
	for _, confirmation := range r.store.readyConfirmations {
		if confirmation.SessionID == sessionID {
			memberIDs = append(memberIDs, confirmation.MemberID)
		}
	}

	return memberIDs, nil
}

func (r *fakeConfirmationRepository) UpsertVotesFinal(sessionID, memberID int64) (*models.VoteConfirmation, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.voteConfirmations {
		if existing.SessionID == sessionID && existing.MemberID == memberID {
			copied := *existing
			return &copied, nil
		}
	}

	confirmation := &models.VoteConfirmation{
		ID:        r.store.id(),
		SessionID: sessionID,
		MemberID:  memberID,
	}
	r.store.voteConfirmations[confirmation.ID] = confirmation

	copied := *confirmation
	return &copied, nil
}

func (r *fakeConfirmationRepository) GetVotesFinalMemberIDs(sessionID int64) ([]int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	memberIDs := make([]int64, 0)
	for _, confirmation := range r.store.voteConfirmations {
		if confirmation.SessionID == sessionID {
			memberIDs = append(memberIDs, confirmation.MemberID)
		}
	}

	return memberIDs, nil
}

type fakeGroupRepository struct{ store *fakeStore }

func (r *fakeGroupRepository) GetOne(groupID int64) (*models.Group, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	group, ok := r.store.groups[groupID]
	if !ok {
		return nil, nil
	}

	copied := *group
	return &copied, nil
}


type fakeMealRepository struct{ store *fakeStore }

func (r *fakeMealRepository) GetOne(mealID int64) (*models.Meal, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	meal, ok := r.store.meals[mealID]
	if !ok || !meal.IsActive {
		return nil, nil
	}

	copied := *meal
	return &copied, nil
}

// fakeSnapshotRepository assembles the read model from the same store, so
// end-to-end tests can exercise the real dispatcher. The whole assembly
// happens under one store lock, matching the single pinned read the real
// repository takes: a snapshot never mixes pre- and post-mutation state.
type fakeSnapshotRepository struct{ store *fakeStore }

func (r *fakeSnapshotRepository) GetSessionSnapshot(sessionID int64) (*models.SessionSnapshot, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	session := copySession(r.store.sessions[sessionID])
	if session == nil {
		return nil, &apperrors.NotFoundError{Resource: "session", ID: sessionID}
	}

	var group *models.Group
	if stored, ok := r.store.groups[session.GroupID]; ok {
		copied := *stored
		group = &copied
	}

	proposals := make([]*models.MealProposal, 0)
	for _, proposal := range r.store.proposals {
		if proposal.SessionID == sessionID && proposal.IsActive {
			copied := *proposal
			proposals = append(proposals, &copied)
		}
	}
	sort.Slice(proposals, func(i, j int) bool {
		if proposals[i].CreatedAt.Equal(proposals[j].CreatedAt) {
			return proposals[i].ID < proposals[j].ID
		}
		return proposals[i].CreatedAt.Before(proposals[j].CreatedAt)
	})

	activeVotes := make([]*models.Vote, 0)
	for _, vote := range r.store.votes {
		if vote.SessionID == sessionID && vote.IsActive {
			copied := *vote
			activeVotes = append(activeVotes, &copied)
		}
	}
	sort.Slice(activeVotes, func(i, j int) bool { return activeVotes[i].ID < activeVotes[j].ID })

	snapshot := &models.SessionSnapshot{
		Session:            session,
		Group:              group,
		Proposals:          make([]*models.ProposalSnapshot, 0, len(proposals)),
		ReadyConfirmations: make([]*models.ReadyConfirmation, 0),
		VoteConfirmations:  make([]*models.VoteConfirmation, 0),
	}

	for _, proposal := range proposals {
		proposalVotes := make([]*models.Vote, 0)
		tally := 0
		for _, vote := range activeVotes {
			if vote.ProposalID == proposal.ID {
				proposalVotes = append(proposalVotes, vote)
				if vote.Type == models.VoteTypeYes {
					tally++
				}
			}
		}
		snapshot.Proposals = append(snapshot.Proposals, &models.ProposalSnapshot{
			Proposal: proposal,
			Votes:    proposalVotes,
			Tally:    tally,
		})
	}

	for _, confirmation := range r.store.readyConfirmations {
		if confirmation.SessionID == sessionID {
			copied := *confirmation
			snapshot.ReadyConfirmations = append(snapshot.ReadyConfirmations, &copied)
		}
	}
	for _, confirmation := range r.store.voteConfirmations {
		if confirmation.SessionID == sessionID {
			copied := *confirmation
			snapshot.VoteConfirmations = append(snapshot.VoteConfirmations, &copied)
		}
	}

	return snapshot, nil
}

// recordingDispatcher captures dispatched events instead of publishing them.
type recordingDispatcher struct {
	mu     sync.Mutex
	events []Event
}

func (d *recordingDispatcher) Dispatch(events []Event) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.events = append(d.events, events...)
}

func (d *recordingDispatcher) names() []string {
	d.mu.Lock()
	defer d.mu.Unlock()

	names := make([]string, 0, len(d.events))
	for _, event := range d.events {
		names = append(names, event.Name)
	}

	return names
}

func (d *recordingDispatcher) count(name string) int {
	d.mu.Lock()
	defer d.mu.Unlock()

	count := 0
	for _, event := range d.events {
		if event.Name == name {
			count++
		}
	}

	return count
}

// fakeClock is a settable clock.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(d)
}

const testVotingDuration = 5 * time.Minute

type testEnv struct {
	store      *fakeStore
	clock      *fakeClock
	dispatcher *recordingDispatcher
	manager    *Manager
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store := newFakeStore()
	clock := newFakeClock()
	dispatcher := &recordingDispatcher{}

	manager := NewManager(
		&fakeSessionRepository{store: store},
		&fakeProposalRepository{store: store},
		&fakeVoteRepository{store: store},
		&fakeConfirmationRepository{store: store},
		&fakeGroupRepository{store: store},
		&fakeMealRepository{store: store},
		dispatcher,
		clock,
		testVotingDuration,
		zap.NewNop().Sugar(),
	)

	return &testEnv{
		store:      store,
		clock:      clock,
		dispatcher: dispatcher,
		manager:    manager,
	}
}
