package messaging

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/lifeboard/backend/domain"
	"github.com/lifeboard/backend/repository"
)

type UseCase struct {
	conversations repository.ConversationRepository
	logger        *zap.Logger
}

func New(conversations repository.ConversationRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		conversations: conversations,
		logger:        logger,
	}
}

// ListConversations returns threads ordered by recency, optionally narrowed
// by a case-insensitive substring match against the contact name.
func (uc *UseCase) ListConversations(ctx context.Context, search string) ([]domain.Conversation, error) {
	conversations, err := uc.conversations.List(ctx)
	if err != nil {
		return nil, err
	}
	return FilterByName(conversations, search), nil
}

func (uc *UseCase) GetConversation(ctx context.Context, id string) (*domain.Conversation, error) {
	return uc.conversations.Get(ctx, id)
}

// StartConversation opens a new thread and makes it the active one.
func (uc *UseCase) StartConversation(ctx context.Context, draft domain.ConversationDraft) (*domain.Conversation, error) {
	if strings.TrimSpace(draft.Name) == "" {
		return nil, domain.NewError(domain.ErrCodeInvalid, "conversation name is required")
	}
	created := domain.NewConversation(draft)
	if err := uc.conversations.Add(ctx, created); err != nil {
		if !domain.IsDomainError(err, domain.ErrCodePersistence) {
			return nil, err
		}
	}
	if err := uc.conversations.SetActiveID(ctx, created.ID); err != nil && !domain.IsDomainError(err, domain.ErrCodePersistence) {
		return nil, err
	}
	return &created, nil
}

// Send appends an outbound message. The unread counter never moves for
// outbound traffic.
func (uc *UseCase) Send(ctx context.Context, conversationID, text string) (*domain.Conversation, error) {
	if strings.TrimSpace(text) == "" {
		return nil, domain.NewError(domain.ErrCodeInvalid, "message text is required")
	}
	return uc.conversations.Update(ctx, conversationID, func(c *domain.Conversation) {
		c.Append(domain.SenderMe, text)
	})
}

// Receive appends an inbound message. The thread's unread counter grows only
// when it is not the active conversation.
func (uc *UseCase) Receive(ctx context.Context, conversationID, text string) (*domain.Conversation, error) {
	if strings.TrimSpace(text) == "" {
		return nil, domain.NewError(domain.ErrCodeInvalid, "message text is required")
	}
	activeID, err := uc.conversations.ActiveID(ctx)
	if err != nil {
		return nil, err
	}
	return uc.conversations.Update(ctx, conversationID, func(c *domain.Conversation) {
		c.Append(domain.SenderThem, text)
		if activeID == conversationID {
			c.Unread = 0
		} else {
			c.Unread++
		}
	})
}

// MarkAsRead zeroes the unread counter.
func (uc *UseCase) MarkAsRead(ctx context.Context, conversationID string) (*domain.Conversation, error) {
	return uc.conversations.Update(ctx, conversationID, func(c *domain.Conversation) {
		c.Unread = 0
	})
}

// Activate makes the conversation the active one and marks it read, the same
// sequence the UI runs when a thread is opened.
func (uc *UseCase) Activate(ctx context.Context, conversationID string) (*domain.Conversation, error) {
	if err := uc.conversations.SetActiveID(ctx, conversationID); err != nil && !domain.IsDomainError(err, domain.ErrCodePersistence) {
		return nil, err
	}
	return uc.MarkAsRead(ctx, conversationID)
}

// Deactivate clears the active pointer; inbound messages count as unread again.
func (uc *UseCase) Deactivate(ctx context.Context) error {
	return uc.conversations.SetActiveID(ctx, "")
}

// ActiveConversation returns the active thread, or nil when none is active.
func (uc *UseCase) ActiveConversation(ctx context.Context) (*domain.Conversation, error) {
	activeID, err := uc.conversations.ActiveID(ctx)
	if err != nil {
		return nil, err
	}
	if activeID == "" {
		return nil, nil
	}
	return uc.conversations.Get(ctx, activeID)
}

func (uc *UseCase) DeleteConversation(ctx context.Context, id string) error {
	return uc.conversations.Delete(ctx, id)
}

func (uc *UseCase) ClearAll(ctx context.Context) error {
	uc.logger.Warn("clearing all conversations")
	return uc.conversations.ClearAll(ctx)
}

// TotalUnread sums unread counters across all threads for the sidebar badge.
func (uc *UseCase) TotalUnread(ctx context.Context) (int, error) {
	conversations, err := uc.conversations.List(ctx)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, c := range conversations {
		total += c.Unread
	}
	return total, nil
}

// FilterByName narrows conversations by a case-insensitive substring match on
// the contact name. An empty query returns the input unchanged.
func FilterByName(conversations []domain.Conversation, query string) []domain.Conversation {
	if query == "" {
		return conversations
	}
	needle := strings.ToLower(query)
	filtered := make([]domain.Conversation, 0, len(conversations))
	for _, c := range conversations {
		if strings.Contains(strings.ToLower(c.Name), needle) {
			filtered = append(filtered, c)
		}
	}
	return filtered
}
