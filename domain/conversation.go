package domain

import "time"

// Sender identifies which side of a conversation wrote a message.
type Sender string

const (
	SenderMe   Sender = "me"
	SenderThem Sender = "them"
)

// PresenceStatus marks a contact as reachable or not.
type PresenceStatus string

const (
	StatusOnline  PresenceStatus = "online"
	StatusOffline PresenceStatus = "offline"
)

// Message is a single entry in a conversation. Messages are embedded in their
// conversation and never referenced from elsewhere.
type Message struct {
	ID        string    `json:"id"`
	Sender    Sender    `json:"sender"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// Conversation holds an append-only message thread with one contact.
// LastMessage and LastMessageTime mirror the tail of Messages so list views
// never need to walk the thread.
type Conversation struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	Avatar          string         `json:"avatar,omitempty"`
	Status          PresenceStatus `json:"status"`
	Messages        []Message      `json:"messages"`
	LastMessage     string         `json:"last_message,omitempty"`
	LastMessageTime time.Time      `json:"last_message_time"`
	Unread          int            `json:"unread"`
}

// ConversationDraft carries the caller-supplied fields for a new conversation.
type ConversationDraft struct {
	Name   string
	Avatar string
	Status PresenceStatus
}

// NewConversation builds an empty thread. Status defaults to offline until
// presence says otherwise.
func NewConversation(draft ConversationDraft) Conversation {
	status := draft.Status
	if status != StatusOnline {
		status = StatusOffline
	}
	return Conversation{
		ID:              NewID(),
		Name:            draft.Name,
		Avatar:          draft.Avatar,
		Status:          status,
		Messages:        []Message{},
		LastMessageTime: time.Now().UTC(),
		Unread:          0,
	}
}

// Append adds a message to the thread and refreshes the last-message mirror.
func (c *Conversation) Append(sender Sender, text string) Message {
	msg := Message{
		ID:        NewID(),
		Sender:    sender,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}
	c.Messages = append(c.Messages, msg)
	c.LastMessage = msg.Text
	c.LastMessageTime = msg.CreatedAt
	return msg
}
