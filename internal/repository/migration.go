package repository

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// messageTable describes chat_messages for AutoMigrate only. Each dialect
// maps InsertionDatetimeUTC to its own datetime type.
type messageTable struct {
	ID                   int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Msg                  string    `gorm:"column:msg;type:text;not null"`
	UserID               string    `gorm:"column:user_id;size:191;not null;index:idx_chat_messages_channel_user,priority:2"`
	ChannelID            string    `gorm:"column:channel_id;size:191;not null;index:idx_chat_messages_channel_user,priority:1"`
	InsertionDatetimeUTC time.Time `gorm:"column:insertion_datetime_utc;not null"`
}

// InitSchema creates the message table when it does not exist yet.
// Extra columns callers want to store must be added by their own migrations.
func InitSchema(db *gorm.DB, opts ...Option) error {
	r := NewMessageRepository(db, opts...)
	if err := db.Table(r.table).AutoMigrate(&messageTable{}); err != nil {
		return fmt.Errorf("failed to migrate %s: %w", r.table, err)
	}
	return nil
}

// DropSchema removes the message table.
func DropSchema(db *gorm.DB, opts ...Option) error {
	r := NewMessageRepository(db, opts...)
	return db.Migrator().DropTable(r.table)
}
