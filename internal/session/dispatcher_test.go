package session

import (
	"sync"
	"testing"

	"meal_voting_system/internal/db/models"
	mock_repositories "meal_voting_system/internal/db/repositories/mocks"
	"meal_voting_system/internal/pubsub"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type publication struct {
	topic   pubsub.Topic
	event   string
	payload interface{}
}

type recordingPublisher struct {
	mu           sync.Mutex
	publications []publication
}

func (p *recordingPublisher) Publish(topic pubsub.Topic, event string, payload interface{}) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.publications = append(p.publications, publication{topic: topic, event: event, payload: payload})
}

func TestDispatchPublishesToGroupAndSessionTopics(t *testing.T) {
	ctrl := gomock.NewController(t)
	snapshots := mock_repositories.NewMockSnapshotRepository(ctrl)
	publisher := &recordingPublisher{}
	dispatcher := NewDispatcher(snapshots, publisher, zap.NewNop().Sugar())

	proposal := &models.MealProposal{ID: 11}
	dispatcher.Dispatch([]Event{{
		Name:      EventMealProposed,
		GroupID:   7,
		SessionID: 3,
		Payload:   proposal,
	}})

	require.Len(t, publisher.publications, 2)
	assert.Equal(t, pubsub.GroupTopic(7), publisher.publications[0].topic)
	assert.Equal(t, pubsub.SessionTopic(3), publisher.publications[1].topic)
	for _, p := range publisher.publications {
		assert.Equal(t, EventMealProposed, p.event)
		assert.Same(t, proposal, p.payload)
	}
}

func TestDispatchHydratesNilPayloadWithSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	snapshots := mock_repositories.NewMockSnapshotRepository(ctrl)
	publisher := &recordingPublisher{}
	dispatcher := NewDispatcher(snapshots, publisher, zap.NewNop().Sugar())

	snapshot := &models.SessionSnapshot{
		Session: &models.VotingSession{ID: 3, GroupID: 7, Status: models.SessionStatusVotingPhase},
	}
	// Two snapshot-payload events in one batch share one build.
	snapshots.EXPECT().GetSessionSnapshot(int64(3)).Return(snapshot, nil).Times(1)

	dispatcher.Dispatch([]Event{
		{Name: EventSessionCreated, GroupID: 7, SessionID: 3},
		{Name: EventPhaseStarted, GroupID: 7, SessionID: 3},
	})

	require.Len(t, publisher.publications, 4)
	for _, p := range publisher.publications {
		assert.Same(t, snapshot, p.payload)
	}
}

func TestDispatchShapesVotingCompletedPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	snapshots := mock_repositories.NewMockSnapshotRepository(ctrl)
	publisher := &recordingPublisher{}
	dispatcher := NewDispatcher(snapshots, publisher, zap.NewNop().Sugar())

	winningMealID := int64(21)
	snapshot := &models.SessionSnapshot{
		Session: &models.VotingSession{
			ID:            3,
			GroupID:       7,
			Status:        models.SessionStatusCompleted,
			WinningMealID: &winningMealID,
		},
		Proposals: []*models.ProposalSnapshot{
			{Proposal: &models.MealProposal{ID: 11, MealID: 21}, Tally: 2},
			{Proposal: &models.MealProposal{ID: 12, MealID: 22}, Tally: 1},
		},
	}
	snapshots.EXPECT().GetSessionSnapshot(int64(3)).Return(snapshot, nil).Times(1)

	dispatcher.Dispatch([]Event{{
		Name:      EventVotingCompleted,
		GroupID:   7,
		SessionID: 3,
	}})

	require.Len(t, publisher.publications, 2)
	for _, p := range publisher.publications {
		payload, ok := p.payload.(*VotingCompletedPayload)
		require.True(t, ok)
		assert.Same(t, snapshot, payload.Session)
		assert.Equal(t, &winningMealID, payload.WinningMealID)
		assert.Equal(t, map[int64]int{11: 2, 12: 1}, payload.Tally)
	}
}

func TestDispatchSkipsEventWhenSnapshotBuildFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	snapshots := mock_repositories.NewMockSnapshotRepository(ctrl)
	publisher := &recordingPublisher{}
	dispatcher := NewDispatcher(snapshots, publisher, zap.NewNop().Sugar())

	snapshots.EXPECT().GetSessionSnapshot(int64(3)).Return(nil, errors.New("store unavailable"))

	proposal := &models.MealProposal{ID: 11}
	dispatcher.Dispatch([]Event{
		{Name: EventSessionCreated, GroupID: 7, SessionID: 3},
		{Name: EventMealProposed, GroupID: 7, SessionID: 3, Payload: proposal},
	})

	// The snapshot event is dropped; the payload-carrying event still goes
	// out to both topics.
	require.Len(t, publisher.publications, 2)
	for _, p := range publisher.publications {
		assert.Equal(t, EventMealProposed, p.event)
	}
}

func TestDispatchEmptyBatchIsNoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	snapshots := mock_repositories.NewMockSnapshotRepository(ctrl)
	publisher := &recordingPublisher{}
	dispatcher := NewDispatcher(snapshots, publisher, zap.NewNop().Sugar())

	dispatcher.Dispatch(nil)

	assert.Empty(t, publisher.publications)
}
