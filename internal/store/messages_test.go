package store_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/uddipan77/portfolio-tui/internal/store"
)

func testDB(t *testing.T) store.Messages {
	t.Helper()

	database, errOpen := store.Open(context.Background(), filepath.Join(t.TempDir(), "test.db"), true)
	require.NoError(t, errOpen)
	t.Cleanup(func() {
		require.NoError(t, database.Close())
	})

	return store.NewMessages(database)
}

func TestMessagesSaveAndRecent(t *testing.T) {
	messages := testDB(t)
	ctx := context.Background()

	first, errFirst := messages.Save(ctx, "Ada", "ada@example.com", "first message")
	require.NoError(t, errFirst)
	require.Positive(t, first.MessageID)

	second, errSecond := messages.Save(ctx, "Grace", "grace@example.com", "second message")
	require.NoError(t, errSecond)
	require.Greater(t, second.MessageID, first.MessageID)

	recent, errRecent := messages.Recent(ctx, 10)
	require.NoError(t, errRecent)
	require.Len(t, recent, 2)
	// Newest first.
	require.Equal(t, "Grace", recent[0].Name)
	require.Equal(t, "Ada", recent[1].Name)
	require.False(t, recent[0].CreatedOn.IsZero())
}

func TestMessagesRecentLimit(t *testing.T) {
	messages := testDB(t)
	ctx := context.Background()

	for range 5 {
		_, err := messages.Save(ctx, "Ada", "ada@example.com", "hi")
		require.NoError(t, err)
	}

	recent, errRecent := messages.Recent(ctx, 3)
	require.NoError(t, errRecent)
	require.Len(t, recent, 3)
}

func TestOpenUnwritablePath(t *testing.T) {
	// The parent directory does not exist, so the first pragma fails.
	_, err := store.Open(context.Background(), filepath.Join(t.TempDir(), "missing", "nested.db"), true)
	require.ErrorIs(t, err, store.ErrDBConnect)
}

func TestMessagesRecentEmpty(t *testing.T) {
	messages := testDB(t)

	recent, err := messages.Recent(context.Background(), 5)
	require.NoError(t, err)
	require.Empty(t, recent)
}
