package repository

import (
	"context"

	"chatdb/internal/domain/message"
)

// NewMessage is the row handed to MessageRepository.Create.
// NowUTC is the SQL expression the store evaluates for the insertion time.
type NewMessage struct {
	Text      string
	AuthorID  string
	ChannelID string
	NowUTC    string
	Extra     message.ExtraFields
}

type MessageRepository interface {
	// DialectName is the name of the engine behind the repository, as reported by its driver.
	DialectName() string

	Create(ctx context.Context, m NewMessage) error
	ListByChannel(ctx context.Context, channelID string) ([]message.Message, error)
	// LastInsertionByAuthor reports false when the author never posted in the channel.
	LastInsertionByAuthor(ctx context.Context, channelID, authorID string) (message.Timestamp, bool, error)
}
