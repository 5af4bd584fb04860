package pubsub

import (
	"sync"

	"go.uber.org/zap"
)

// Connection is a transport-side handle that can receive events. The
// websocket adapter lives in the handlers package; tests use in-memory
// implementations.
type Connection interface {
	ID() string
	Send(event string, payload interface{}) error
}

// Publisher is the in-process subscription registry. Delivery is
// fire-and-forget and at-most-once: a send failure drops the connection
// from every topic, and the client is expected to re-sync by fetching the
// current session snapshot on reconnect.
type Publisher struct {
	logger *zap.SugaredLogger

	mu     sync.RWMutex
	topics map[Topic]map[string]Connection
}

func NewPublisher(logger *zap.SugaredLogger) *Publisher {
	return &Publisher{
		logger: logger,
		topics: make(map[Topic]map[string]Connection),
	}
}

func (p *Publisher) Subscribe(topic Topic, connection Connection) {
	p.mu.Lock()
	defer p.mu.Unlock()

	subscribers, ok := p.topics[topic]
	if !ok {
		subscribers = make(map[string]Connection)
		p.topics[topic] = subscribers
	}
	subscribers[connection.ID()] = connection
}

func (p *Publisher) Unsubscribe(topic Topic, connectionID string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.removeLocked(topic, connectionID)
}

// UnsubscribeAll removes a connection from every topic, typically on
// disconnect.
func (p *Publisher) UnsubscribeAll(connectionID string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for topic := range p.topics {
		p.removeLocked(topic, connectionID)
	}
}

func (p *Publisher) removeLocked(topic Topic, connectionID string) {
	subscribers, ok := p.topics[topic]
	if !ok {
		return
	}

	delete(subscribers, connectionID)
	if len(subscribers) == 0 {
		delete(p.topics, topic)
	}
}

// Publish delivers the event to every connection currently subscribed to
// the topic. Publishing to a topic with no subscribers is a no-op. A failed
// send is logged and the connection is dropped; it never fails the caller,
// because durability lives in the store, not the event bus.
func (p *Publisher) Publish(topic Topic, event string, payload interface{}) {
	p.mu.RLock()
	subscribers := make([]Connection, 0, len(p.topics[topic]))
	for _, connection := range p.topics[topic] {
		subscribers = append(subscribers, connection)
	}
	p.mu.RUnlock()

	for _, connection := range subscribers {
		if err := connection.Send(event, payload); err != nil {
			p.logger.Warnw("failed to deliver event, dropping connection",
				"topic", topic.String(),
				"event", event,
				"connection", connection.ID(),
				"error", err,
			)
			p.UnsubscribeAll(connection.ID())
		}
	}
}

// SubscriberCount reports how many connections are subscribed to a topic.
func (p *Publisher) SubscriberCount(topic Topic) int {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return len(p.topics[topic])
}
