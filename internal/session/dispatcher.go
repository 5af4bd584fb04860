package session

import (
	"meal_voting_system/internal/db/models"
	"meal_voting_system/internal/db/repositories"
	"meal_voting_system/internal/pubsub"

	"go.uber.org/zap"
)

// EventPublisher is the slice of pubsub.Publisher the dispatcher needs.
type EventPublisher interface {
	Publish(topic pubsub.Topic, event string, payload interface{})
}

// Dispatcher turns the domain events returned by committed manager
// operations into snapshot builds and topic publications. It runs strictly
// after commit, so a publication failure can leave a client stale until its
// next fetch but never causes a phantom transition.
type Dispatcher struct {
	snapshots repositories.SnapshotRepository
	publisher EventPublisher
	logger    *zap.SugaredLogger
}

func NewDispatcher(
	snapshots repositories.SnapshotRepository,
	publisher EventPublisher,
	logger *zap.SugaredLogger,
) *Dispatcher {
	return &Dispatcher{
		snapshots: snapshots,
		publisher: publisher,
		logger:    logger,
	}
}

// Dispatch publishes every event to both the owning group topic and the
// owning session topic. One snapshot is built per batch, lazily, so events
// that carry their own payload never pay for a rebuild.
func (d *Dispatcher) Dispatch(events []Event) {
	var snapshot *models.SessionSnapshot

	for _, event := range events {
		payload := event.Payload

		if payload == nil || event.Name == EventVotingCompleted {
			if snapshot == nil {
				built, err := d.snapshots.GetSessionSnapshot(event.SessionID)
				if err != nil {
					d.logger.Errorw("failed to build snapshot for event",
						"event", event.Name,
						"session_id", event.SessionID,
						"error", err,
					)
					continue
				}
				snapshot = built
			}

			if event.Name == EventVotingCompleted {
				payload = &VotingCompletedPayload{
					Session:       snapshot,
					WinningMealID: snapshot.Session.WinningMealID,
					Tally:         snapshot.TallyByProposal(),
				}
			} else {
				payload = snapshot
			}
		}

		d.publisher.Publish(pubsub.GroupTopic(event.GroupID), event.Name, payload)
		d.publisher.Publish(pubsub.SessionTopic(event.SessionID), event.Name, payload)
	}
}
