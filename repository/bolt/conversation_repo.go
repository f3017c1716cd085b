package bolt

import (
	"context"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/lifeboard/backend/domain"
	"github.com/lifeboard/backend/internal/infrastructure/storage"
)

type conversationDocument struct {
	SchemaVersion int                   `json:"schema_version"`
	Conversations []domain.Conversation `json:"conversations"`
	ActiveID      string                `json:"active_id,omitempty"`
}

// ConversationRepository implements repository.ConversationRepository on top
// of storage.DB. Mutations keep the list ordered by last-message time
// descending, so sending or receiving a message moves its thread to the top.
type ConversationRepository struct {
	db     *storage.DB
	logger *zap.Logger

	mu  sync.RWMutex
	doc conversationDocument
}

func NewConversationRepository(db *storage.DB, logger *zap.Logger) (*ConversationRepository, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &ConversationRepository{db: db, logger: logger}

	found, err := db.Get(collectionConversations, &r.doc)
	if err != nil {
		return nil, err
	}
	if !found {
		r.doc = conversationDocument{
			SchemaVersion: schemaVersion,
			Conversations: []domain.Conversation{},
		}
	}
	if r.doc.Conversations == nil {
		r.doc.Conversations = []domain.Conversation{}
	}
	return r, nil
}

func (r *ConversationRepository) List(ctx context.Context) ([]domain.Conversation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Conversation, len(r.doc.Conversations))
	copy(out, r.doc.Conversations)
	return out, nil
}

func (r *ConversationRepository) Get(ctx context.Context, id string) (*domain.Conversation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.doc.Conversations {
		if c.ID == id {
			conv := c
			return &conv, nil
		}
	}
	return nil, domain.ErrConversationNotFound
}

func (r *ConversationRepository) Add(ctx context.Context, conv domain.Conversation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	next := make([]domain.Conversation, 0, len(r.doc.Conversations)+1)
	next = append(next, conv)
	next = append(next, r.doc.Conversations...)
	r.doc.Conversations = next
	r.resortLocked()
	return r.persist()
}

func (r *ConversationRepository) Update(ctx context.Context, id string, mutate func(*domain.Conversation)) (*domain.Conversation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, c := range r.doc.Conversations {
		if c.ID != id {
			continue
		}
		conv := c
		conv.Messages = append([]domain.Message(nil), c.Messages...)
		mutate(&conv)
		conv.ID = id

		next := make([]domain.Conversation, len(r.doc.Conversations))
		copy(next, r.doc.Conversations)
		next[i] = conv
		r.doc.Conversations = next
		r.resortLocked()
		return &conv, r.persist()
	}
	return nil, domain.ErrConversationNotFound
}

func (r *ConversationRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	next := make([]domain.Conversation, 0, len(r.doc.Conversations))
	for _, c := range r.doc.Conversations {
		if c.ID != id {
			next = append(next, c)
		}
	}
	if len(next) == len(r.doc.Conversations) {
		return domain.ErrConversationNotFound
	}
	r.doc.Conversations = next
	if r.doc.ActiveID == id {
		r.doc.ActiveID = ""
	}
	return r.persist()
}

func (r *ConversationRepository) ClearAll(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.doc.Conversations = []domain.Conversation{}
	r.doc.ActiveID = ""
	return r.persist()
}

func (r *ConversationRepository) ActiveID(ctx context.Context) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.doc.ActiveID, nil
}

// SetActiveID records which conversation the user is looking at. An empty id
// deactivates all conversations.
func (r *ConversationRepository) SetActiveID(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if id != "" {
		found := false
		for _, c := range r.doc.Conversations {
			if c.ID == id {
				found = true
				break
			}
		}
		if !found {
			return domain.ErrConversationNotFound
		}
	}
	r.doc.ActiveID = id
	return r.persist()
}

// Count reports the number of stored conversations for health monitoring.
func (r *ConversationRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.doc.Conversations)
}

// Name returns the collection name.
func (r *ConversationRepository) Name() string { return collectionConversations }

// resortLocked keeps threads ordered by recency. The stable sort leaves
// untouched threads in place when timestamps tie.
func (r *ConversationRepository) resortLocked() {
	sort.SliceStable(r.doc.Conversations, func(i, j int) bool {
		return r.doc.Conversations[i].LastMessageTime.After(r.doc.Conversations[j].LastMessageTime)
	})
}

func (r *ConversationRepository) persist() error {
	if err := r.db.Put(collectionConversations, r.doc); err != nil {
		r.logger.Warn("conversation collection write failed", zap.Error(err))
		return persistErr(collectionConversations, err)
	}
	return nil
}
