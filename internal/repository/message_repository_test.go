package repository_test

import (
	"context"
	"path/filepath"
	"testing"

	"chatdb/internal/domain/message"
	"chatdb/internal/repository"
	"chatdb/internal/testutils"
	sentinal_errors "chatdb/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMessage(text, channelID, authorID string) repository.NewMessage {
	return repository.NewMessage{
		Text:      text,
		AuthorID:  authorID,
		ChannelID: channelID,
		NowUTC:    "datetime('now')",
	}
}

func TestMessageRepository_CreateAndList(t *testing.T) {
	db, _ := testutils.NewMessageDB(t)
	repo := repository.NewMessageRepository(db)
	ctx := context.Background()

	assert.Equal(t, "sqlite", repo.DialectName())

	require.NoError(t, repo.Create(ctx, newMessage("a", "general", "1")))
	require.NoError(t, repo.Create(ctx, newMessage("b", "random", "1")))
	require.NoError(t, repo.Create(ctx, newMessage("c", "general", "2")))

	msgs, err := repo.ListByChannel(ctx, "general")
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "a", msgs[0].Text)
	assert.Equal(t, "c", msgs[1].Text)
	assert.Equal(t, "2", msgs[1].AuthorID)
	assert.NotEmpty(t, msgs[0].InsertedAtUTC)
}

func TestMessageRepository_ListByChannel_Empty(t *testing.T) {
	db, _ := testutils.NewMessageDB(t)
	repo := repository.NewMessageRepository(db)

	msgs, err := repo.ListByChannel(context.Background(), "nobody-here")

	require.NoError(t, err)
	assert.NotNil(t, msgs)
	assert.Empty(t, msgs)
}

func TestMessageRepository_StoresWhatTheClockExpressionSays(t *testing.T) {
	db, _ := testutils.NewMessageDB(t)
	repo := repository.NewMessageRepository(db)
	ctx := context.Background()

	m := newMessage("fixed", "general", "1")
	m.NowUTC = "'2001-02-03 04:05:06'"
	require.NoError(t, repo.Create(ctx, m))

	ts, ok, err := repo.LastInsertionByAuthor(ctx, "general", "1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, message.Timestamp("2001-02-03 04:05:06"), ts)
}

func TestMessageRepository_LastInsertionByAuthor(t *testing.T) {
	db, _ := testutils.NewMessageDB(t)
	repo := repository.NewMessageRepository(db)
	ctx := context.Background()

	for _, stamp := range []string{"'2020-01-01 00:00:00'", "'2022-01-01 00:00:00'", "'2021-01-01 00:00:00'"} {
		m := newMessage("x", "general", "1")
		m.NowUTC = stamp
		require.NoError(t, repo.Create(ctx, m))
	}
	other := newMessage("y", "general", "2")
	other.NowUTC = "'2030-01-01 00:00:00'"
	require.NoError(t, repo.Create(ctx, other))

	ts, ok, err := repo.LastInsertionByAuthor(ctx, "general", "1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, message.Timestamp("2022-01-01 00:00:00"), ts)

	_, ok, err = repo.LastInsertionByAuthor(ctx, "random", "1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMessageRepository_WithTable(t *testing.T) {
	db := testutils.OpenSQLite(t, filepath.Join(t.TempDir(), "archive.sqlite"))
	require.NoError(t, repository.InitSchema(db, repository.WithTable("archive_messages")))
	repo := repository.NewMessageRepository(db, repository.WithTable("archive_messages"))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newMessage("archived", "general", "1")))

	assert.False(t, db.Migrator().HasTable(repository.DefaultTable))
	msgs, err := repo.ListByChannel(ctx, "general")
	require.NoError(t, err)
	require.Len(t, msgs, 1)

	require.NoError(t, repository.DropSchema(db, repository.WithTable("archive_messages")))
	assert.False(t, db.Migrator().HasTable("archive_messages"))
}

func TestMessageRepository_CreateConflict(t *testing.T) {
	db, _ := testutils.NewMessageDB(t)
	repo := repository.NewMessageRepository(db)
	ctx := context.Background()
	require.NoError(t, db.Exec("ALTER TABLE chat_messages ADD COLUMN client_ref TEXT").Error)
	require.NoError(t, db.Exec("CREATE UNIQUE INDEX idx_client_ref ON chat_messages(client_ref)").Error)

	m := newMessage("once", "general", "1")
	m.Extra = message.ExtraFields{"client_ref": "r1"}
	require.NoError(t, repo.Create(ctx, m))

	err := repo.Create(ctx, m)
	assert.ErrorIs(t, err, sentinal_errors.ErrConflict)
}
