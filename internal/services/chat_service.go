package services

import (
	"context"
	"fmt"

	"chatdb/internal/domain/channel"
	"chatdb/internal/domain/message"
	"chatdb/internal/repository"
	sentinal_errors "chatdb/pkg/errors"
	"chatdb/pkg/logger"
)

// ChannelAccess decides whether a user holds a right on a channel.
// Implementations must not have side effects.
type ChannelAccess interface {
	IsAllowed(ctx context.Context, userID, channelID string, right channel.Right) (bool, error)
}

// ChatService posts messages to channels and reads channel history after
// asking ChannelAccess for the matching right. It keeps no state of its own
// and is safe for concurrent use when the repository is.
type ChatService struct {
	messages repository.MessageRepository
	access   ChannelAccess
	log      *logger.Logger
}

func NewChatService(messages repository.MessageRepository, access ChannelAccess, l *logger.Logger) *ChatService {
	if l == nil {
		l = logger.NewNop()
	}
	return &ChatService{
		messages: messages,
		access:   access,
		log:      l,
	}
}

// AddMessage stores text in the channel on behalf of userID. The insertion
// time is assigned by the store in UTC. Extra fields are written verbatim as
// additional columns. Their names must be plain identifiers and must not
// match a reserved column name in any letter case.
func (s *ChatService) AddMessage(ctx context.Context, text, channelID, userID string, extra message.ExtraFields) error {
	if err := s.authorize(ctx, userID, channelID, channel.Write); err != nil {
		return err
	}

	if name, ok := message.MalformedFieldIn(extra); ok {
		return fmt.Errorf("%w: extra field %q is not a column name", sentinal_errors.ErrInvalidInput, name)
	}
	if name := message.ReservedFieldIn(extra); name != "" {
		return fmt.Errorf("%w: %s", sentinal_errors.ErrReservedField, name)
	}

	dialect, err := repository.ParseDialect(s.messages.DialectName())
	if err != nil {
		return err
	}
	nowUTC, err := dialect.NowUTC()
	if err != nil {
		return err
	}

	err = s.messages.Create(ctx, repository.NewMessage{
		Text:      text,
		AuthorID:  userID,
		ChannelID: channelID,
		NowUTC:    nowUTC,
		Extra:     extra,
	})
	if err != nil {
		return &StoreError{Op: "add message", Err: err}
	}

	s.log.WithContext(ctx).Debugf("message added to channel %s by %s", channelID, userID)
	return nil
}

// GetMessages returns the whole history of the channel, ordered by message
// id. userID only selects whose rights are checked; messages of every author
// are returned.
func (s *ChatService) GetMessages(ctx context.Context, channelID, userID string) ([]message.Message, error) {
	if err := s.authorize(ctx, userID, channelID, channel.Read); err != nil {
		return nil, err
	}

	msgs, err := s.messages.ListByChannel(ctx, channelID)
	if err != nil {
		return nil, &StoreError{Op: "get messages", Err: err}
	}
	if msgs == nil {
		msgs = []message.Message{}
	}
	return msgs, nil
}

// GetLastUserMessageDateTimeUTC returns when userID last posted in the
// channel. The boolean is false when userID never posted there. The caller
// needs READ on the channel like any other history read.
func (s *ChatService) GetLastUserMessageDateTimeUTC(ctx context.Context, channelID, userID string) (message.Timestamp, bool, error) {
	if err := s.authorize(ctx, userID, channelID, channel.Read); err != nil {
		return "", false, err
	}

	ts, ok, err := s.messages.LastInsertionByAuthor(ctx, channelID, userID)
	if err != nil {
		return "", false, &StoreError{Op: "get last user message datetime", Err: err}
	}
	return ts, ok, nil
}

// authorize asks the access collaborator once. Its own errors are returned
// unchanged.
func (s *ChatService) authorize(ctx context.Context, userID, channelID string, right channel.Right) error {
	allowed, err := s.access.IsAllowed(ctx, userID, channelID, right)
	if err != nil {
		return err
	}
	if !allowed {
		s.log.WithContext(ctx).Warnf("%s access to channel %s denied for %s", right, channelID, userID)
		return sentinal_errors.ErrAccessDenied
	}
	return nil
}
