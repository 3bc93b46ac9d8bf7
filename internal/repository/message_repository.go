package repository

import (
	"context"

	"chatdb/internal/domain/message"

	"gorm.io/gorm"
)

// DefaultTable is the table messages are stored in unless WithTable says otherwise.
const DefaultTable = "chat_messages"

type GormMessageRepository struct {
	db    *gorm.DB
	table string
}

type Option func(*GormMessageRepository)

// WithTable stores messages in a table other than DefaultTable.
func WithTable(name string) Option {
	return func(r *GormMessageRepository) {
		if name != "" {
			r.table = name
		}
	}
}

func NewMessageRepository(db *gorm.DB, opts ...Option) *GormMessageRepository {
	r := &GormMessageRepository{db: db, table: DefaultTable}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// messageRow is the projection read back by ListByChannel.
type messageRow struct {
	ID                   int64             `gorm:"column:id"`
	Msg                  string            `gorm:"column:msg"`
	UserID               string            `gorm:"column:user_id"`
	ChannelID            string            `gorm:"column:channel_id"`
	InsertionDatetimeUTC message.Timestamp `gorm:"column:insertion_datetime_utc"`
}

func (r *GormMessageRepository) DialectName() string {
	return r.db.Dialector.Name()
}

func (r *GormMessageRepository) Create(ctx context.Context, m NewMessage) error {
	values := make(map[string]interface{}, len(m.Extra)+4)
	for name, value := range m.Extra {
		values[name] = value
	}
	values[message.FieldMsg] = m.Text
	values[message.FieldUserID] = m.AuthorID
	values[message.FieldChannelID] = m.ChannelID
	values[message.FieldInsertionDateTimeUTC] = gorm.Expr(m.NowUTC)

	res := r.db.WithContext(ctx).Table(r.table).Create(values)
	if res.Error != nil {
		if isUniqueViolation(res.Error) {
			return conflict(res.Error)
		}
		return res.Error
	}
	return nil
}

// ListByChannel returns every message of the channel, oldest id first.
func (r *GormMessageRepository) ListByChannel(ctx context.Context, channelID string) ([]message.Message, error) {
	var rows []messageRow
	err := r.db.WithContext(ctx).
		Table(r.table).
		Select(message.FieldID, message.FieldMsg, message.FieldUserID, message.FieldChannelID, message.FieldInsertionDateTimeUTC).
		Where(message.FieldChannelID+" = ?", channelID).
		Order(message.FieldID + " ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	messages := make([]message.Message, 0, len(rows))
	for _, row := range rows {
		messages = append(messages, message.Message{
			ID:            row.ID,
			AuthorID:      row.UserID,
			ChannelID:     row.ChannelID,
			Text:          row.Msg,
			InsertedAtUTC: row.InsertionDatetimeUTC,
		})
	}
	return messages, nil
}

func (r *GormMessageRepository) LastInsertionByAuthor(ctx context.Context, channelID, authorID string) (message.Timestamp, bool, error) {
	var stamps []message.Timestamp
	err := r.db.WithContext(ctx).
		Table(r.table).
		Where(message.FieldChannelID+" = ? AND "+message.FieldUserID+" = ?", channelID, authorID).
		Order(message.FieldInsertionDateTimeUTC + " DESC").
		Order(message.FieldID + " DESC").
		Limit(1).
		Pluck(message.FieldInsertionDateTimeUTC, &stamps).Error
	if err != nil {
		return "", false, err
	}
	if len(stamps) != 1 {
		return "", false, nil
	}
	return stamps[0], true, nil
}

// Extras reads back the named extra columns of a message. It is meant for
// inspection tooling; readers of the channel history never see extra columns.
func (r *GormMessageRepository) Extras(ctx context.Context, id int64, columns ...string) (map[string]interface{}, error) {
	result := map[string]interface{}{}
	err := r.db.WithContext(ctx).
		Table(r.table).
		Select(columns).
		Where(message.FieldID+" = ?", id).
		Take(&result).Error
	if err != nil {
		return nil, err
	}
	return result, nil
}
