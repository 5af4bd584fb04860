package handlers

import (
	"net/http"
	"sync"

	"meal_voting_system/internal/pubsub"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// wsConnection adapts a websocket connection to pubsub.Connection.
// WriteJSON is serialized because the publisher may deliver from multiple
// goroutines.
type wsConnection struct {
	id string

	mu   sync.Mutex
	conn *websocket.Conn
}

func (c *wsConnection) ID() string {
	return c.id
}

type wsEvent struct {
	Event   string      `json:"event"`
	Payload interface{} `json:"payload"`
}

func (c *wsConnection) Send(event string, payload interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.conn.WriteJSON(wsEvent{Event: event, Payload: payload})
}

type topicRef struct {
	Kind string `json:"kind"`
	ID   int64  `json:"id"`
}

func (t topicRef) toTopic() (pubsub.Topic, bool) {
	switch pubsub.TopicKind(t.Kind) {
	case pubsub.TopicKindGroup:
		return pubsub.GroupTopic(t.ID), true
	case pubsub.TopicKindSession:
		return pubsub.SessionTopic(t.ID), true
	default:
		return pubsub.Topic{}, false
	}
}

type subscribeMessage struct {
	Action string   `json:"action"`
	Topic  topicRef `json:"topic"`
}

// HandleWS upgrades the request and serves subscribe/unsubscribe messages
// until the client disconnects, at which point every subscription held by
// the connection is dropped.
func (h *HTTPHandler) HandleWS(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warnw("failed to upgrade websocket", "error", err)
		return
	}

	connection := &wsConnection{
		id:   uuid.NewString(),
		conn: conn,
	}

	defer func() {
		h.publisher.UnsubscribeAll(connection.ID())
		conn.Close()
	}()

	for {
		var message subscribeMessage
		if err := conn.ReadJSON(&message); err != nil {
			return
		}

		topic, ok := message.Topic.toTopic()
		if !ok {
			continue
		}

		switch message.Action {
		case "subscribe":
			h.publisher.Subscribe(topic, connection)
		case "unsubscribe":
			h.publisher.Unsubscribe(topic, connection.ID())
		}
	}
}
