package message

import (
	"regexp"
	"strings"
)

// Column names of the chat_messages table
const (
	FieldID                   = "id"
	FieldMsg                  = "msg"
	FieldUserID               = "user_id"
	FieldChannelID            = "channel_id"
	FieldInsertionDateTimeUTC = "insertion_datetime_utc"
)

var reservedFields = map[string]struct{}{
	FieldID:                   {},
	FieldMsg:                  {},
	FieldUserID:               {},
	FieldChannelID:            {},
	FieldInsertionDateTimeUTC: {},
}

// Message represents a row of the chat_messages table as seen by readers.
// Extra columns written at post time are not part of it.
type Message struct {
	ID            int64     `json:"id"`
	AuthorID      string    `json:"author_id"`
	ChannelID     string    `json:"channel_id"`
	Text          string    `json:"text"`
	InsertedAtUTC Timestamp `json:"inserted_at_utc"`
}

// ExtraFields maps additional column names to the values stored with a message.
type ExtraFields map[string]any

// columnName matches a bare SQL identifier. Anything else could be split or
// quoted into a different column by the query builder.
var columnName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// IsReservedField reports whether name is one of the columns the service owns.
// Stores compare column names case-insensitively, and so does this.
func IsReservedField(name string) bool {
	_, ok := reservedFields[strings.ToLower(name)]
	return ok
}

// IsColumnName reports whether name can be written as a column as is.
func IsColumnName(name string) bool {
	return columnName.MatchString(name)
}

// ReservedFieldIn returns the first reserved column name used by extra, in
// no particular order, or "" when there is none.
func ReservedFieldIn(extra ExtraFields) string {
	for name := range extra {
		if IsReservedField(name) {
			return name
		}
	}
	return ""
}

// MalformedFieldIn returns the first name in extra that is not a plain
// column name, or "" when every name is one.
func MalformedFieldIn(extra ExtraFields) (string, bool) {
	for name := range extra {
		if !IsColumnName(name) {
			return name, true
		}
	}
	return "", false
}
