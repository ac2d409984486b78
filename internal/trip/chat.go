package trip

import (
	"time"

	"github.com/google/uuid"
)

// ChatMessage is one immutable turn of a conversation about a trip.
type ChatMessage struct {
	ID        string    `json:"id" bson:"id"`
	TripID    string    `json:"trip_id,omitempty" bson:"trip_id"`
	Text      string    `json:"text" bson:"text"`
	IsUser    bool      `json:"is_user" bson:"is_user"`
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
}

func NewUserMessage(text string, at time.Time) ChatMessage {
	return ChatMessage{ID: uuid.NewString(), Text: text, IsUser: true, Timestamp: at}
}

func NewAssistantMessage(text string, at time.Time) ChatMessage {
	return ChatMessage{ID: uuid.NewString(), Text: text, IsUser: false, Timestamp: at}
}

// Recent returns at most the last n messages, oldest first.
func Recent(history []ChatMessage, n int) []ChatMessage {
	if n <= 0 || len(history) <= n {
		return history
	}
	return history[len(history)-n:]
}
