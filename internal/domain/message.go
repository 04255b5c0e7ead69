package domain

// Message is a single persisted chat message. IDs are assigned by the store
// and increase monotonically; Timestamp is unix milliseconds at append time.
type Message struct {
	ID        int64  `json:"id"`
	Sender    string `json:"sender"`
	Content   string `json:"content"`
	Timestamp int64  `json:"timestamp"`
	Seen      bool   `json:"seen"`
}
