package messaging

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifeboard/backend/domain"
	"github.com/lifeboard/backend/internal/infrastructure/storage"
	"github.com/lifeboard/backend/repository/bolt"
)

func newTestUseCase(t *testing.T) *UseCase {
	t.Helper()

	db, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo, err := bolt.NewConversationRepository(db, nil)
	require.NoError(t, err)
	return New(repo, nil)
}

func start(t *testing.T, uc *UseCase, name string) *domain.Conversation {
	t.Helper()
	conv, err := uc.StartConversation(context.Background(), domain.ConversationDraft{Name: name})
	require.NoError(t, err)
	return conv
}

func TestStartConversationBecomesActive(t *testing.T) {
	uc := newTestUseCase(t)
	conv := start(t, uc, "Sarah Chen")

	active, err := uc.ActiveConversation(context.Background())
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, conv.ID, active.ID)
	assert.Empty(t, active.Messages)
}

func TestSendUpdatesLastMessageNotUnread(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase(t)
	conv := start(t, uc, "Sarah Chen")

	updated, err := uc.Send(ctx, conv.ID, "hello there")
	require.NoError(t, err)
	assert.Equal(t, "hello there", updated.LastMessage)
	assert.Zero(t, updated.Unread)
	require.Len(t, updated.Messages, 1)
	assert.Equal(t, domain.SenderMe, updated.Messages[0].Sender)
}

func TestReceiveCountsUnreadOnlyWhenInactive(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase(t)
	conv := start(t, uc, "Sarah Chen")
	other := start(t, uc, "Alex Johnson") // now active

	// Inbound to the inactive thread counts.
	updated, err := uc.Receive(ctx, conv.ID, "hi")
	require.NoError(t, err)
	assert.Equal(t, 1, updated.Unread)

	updated, err = uc.Receive(ctx, conv.ID, "you there?")
	require.NoError(t, err)
	assert.Equal(t, 2, updated.Unread)

	// Inbound to the active thread does not.
	updated, err = uc.Receive(ctx, other.ID, "ping")
	require.NoError(t, err)
	assert.Zero(t, updated.Unread)
}

func TestMarkAsReadResetsToZero(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase(t)
	conv := start(t, uc, "Sarah Chen")
	start(t, uc, "Alex Johnson")

	_, err := uc.Receive(ctx, conv.ID, "one")
	require.NoError(t, err)
	_, err = uc.Receive(ctx, conv.ID, "two")
	require.NoError(t, err)

	read, err := uc.MarkAsRead(ctx, conv.ID)
	require.NoError(t, err)
	assert.Zero(t, read.Unread)
}

func TestActivateMarksRead(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase(t)
	conv := start(t, uc, "Sarah Chen")
	start(t, uc, "Alex Johnson")

	_, err := uc.Receive(ctx, conv.ID, "unread one")
	require.NoError(t, err)

	activated, err := uc.Activate(ctx, conv.ID)
	require.NoError(t, err)
	assert.Zero(t, activated.Unread)

	active, err := uc.ActiveConversation(ctx)
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, conv.ID, active.ID)
}

func TestMessagingMovesThreadToTop(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase(t)
	first := start(t, uc, "Sarah Chen")
	second := start(t, uc, "Alex Johnson")

	list, err := uc.ListConversations(ctx, "")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)

	time.Sleep(5 * time.Millisecond)
	_, err = uc.Send(ctx, first.ID, "bump")
	require.NoError(t, err)

	list, err = uc.ListConversations(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, first.ID, list[0].ID)
}

func TestFilterByName(t *testing.T) {
	conversations := []domain.Conversation{
		{Name: "Sarah Chen"},
		{Name: "Alex Johnson"},
		{Name: "Maya Patel"},
	}

	got := FilterByName(conversations, "sAr")
	require.Len(t, got, 1)
	assert.Equal(t, "Sarah Chen", got[0].Name)

	assert.Len(t, FilterByName(conversations, ""), 3)
	assert.Empty(t, FilterByName(conversations, "zzz"))
}

func TestDeleteConversationClearsActivePointer(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase(t)
	conv := start(t, uc, "Sarah Chen")

	require.NoError(t, uc.DeleteConversation(ctx, conv.ID))

	active, err := uc.ActiveConversation(ctx)
	require.NoError(t, err)
	assert.Nil(t, active)

	// Second delete reports not found and leaves nothing behind.
	err = uc.DeleteConversation(ctx, conv.ID)
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeNotFound))
}

func TestTotalUnread(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase(t)
	a := start(t, uc, "Sarah Chen")
	b := start(t, uc, "Alex Johnson")
	start(t, uc, "Maya Patel")

	for i := 0; i < 2; i++ {
		_, err := uc.Receive(ctx, a.ID, "m")
		require.NoError(t, err)
	}
	_, err := uc.Receive(ctx, b.ID, "m")
	require.NoError(t, err)

	total, err := uc.TotalUnread(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
}
