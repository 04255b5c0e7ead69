package domain

// Event is the standard envelope exchanged over the realtime channel.
type Event struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload,omitempty"`
}

// Client-to-server event types.
const (
	EventJoin         = "join"
	EventSetMood      = "setMood"
	EventSendReaction = "sendReaction"
	EventTyping       = "typing"
	EventStopTyping   = "stopTyping"
	EventMarkSeen     = "markSeen"
	EventSendMessage  = "sendMessage"
)

// Server-to-client event types.
const (
	EventMoodUpdate      = "moodUpdate"
	EventReceiveReaction = "receiveReaction"
	EventMessagesSeen    = "messagesSeen"
	EventReceiveMessage  = "receiveMessage"
	EventMessagesCleared = "messagesCleared"
)

// SetMoodPayload is the payload of a 'setMood' request.
type SetMoodPayload struct {
	Username string `json:"username"`
	Mood     string `json:"mood"`
}

// ReactionPayload is the payload of 'sendReaction' and 'receiveReaction'.
// Type is a client-defined reaction kind, e.g. "hug" or "kiss".
type ReactionPayload struct {
	Sender string `json:"sender"`
	Type   string `json:"type"`
}

// TypingPayload is the payload of 'typing' and 'stopTyping'.
type TypingPayload struct {
	Sender string `json:"sender"`
}

// MarkSeenPayload is the payload of 'markSeen' and 'messagesSeen': Viewer has
// read everything Sender wrote.
type MarkSeenPayload struct {
	Viewer string `json:"viewer"`
	Sender string `json:"sender"`
}

// SendMessagePayload is the payload of a 'sendMessage' request.
type SendMessagePayload struct {
	Sender  string `json:"sender"`
	Content string `json:"content"`
}
