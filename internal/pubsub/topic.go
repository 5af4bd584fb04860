package pubsub

import "fmt"

type TopicKind string

const (
	TopicKindGroup   TopicKind = "group"
	TopicKindSession TopicKind = "session"
)

// Topic addresses one subscription channel. Using a comparable struct
// instead of a bare room-name string keeps group and session scopes from
// ever colliding.
type Topic struct {
	Kind TopicKind
	ID   int64
}

func GroupTopic(groupID int64) Topic {
	return Topic{Kind: TopicKindGroup, ID: groupID}
}

func SessionTopic(sessionID int64) Topic {
	return Topic{Kind: TopicKindSession, ID: sessionID}
}

func (t Topic) String() string {
	return fmt.Sprintf("%s:%d", t.Kind, t.ID)
}
