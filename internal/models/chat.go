package models

import "time"

// MaxMessageLength caps the text body of a single message.
const MaxMessageLength = 500

// Message belongs to exactly one match's thread. Messages are never
// mutated after creation; a thread is deleted wholesale when its match is
// removed or blocked.
type Message struct {
	ID        string    `json:"id"`
	MatchID   string    `json:"match_id"`
	Text      string    `json:"text"`
	IsFromMe  bool      `json:"is_from_me"`
	CreatedAt time.Time `json:"created_at"`
}

type MatchSummary struct {
	ClimberProfile
	LastMessage *Message `json:"last_message,omitempty"`
}
