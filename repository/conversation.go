package repository

import (
	"context"

	"github.com/lifeboard/backend/domain"
)

// ConversationRepository stores conversations with their embedded message
// threads. The active conversation pointer is part of the persisted state
// because inbound messages count as unread only for inactive conversations.
type ConversationRepository interface {
	List(ctx context.Context) ([]domain.Conversation, error)
	Get(ctx context.Context, id string) (*domain.Conversation, error)
	Add(ctx context.Context, conv domain.Conversation) error
	Update(ctx context.Context, id string, mutate func(*domain.Conversation)) (*domain.Conversation, error)
	Delete(ctx context.Context, id string) error
	ClearAll(ctx context.Context) error
	ActiveID(ctx context.Context) (string, error)
	SetActiveID(ctx context.Context, id string) error
}
