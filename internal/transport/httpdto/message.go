package httpdto

import "chatdb/internal/domain/message"

type SendMessageRequest struct {
	Text  string         `json:"text"`
	Extra map[string]any `json:"extra,omitempty"`
}

type MessageListResponse struct {
	Messages []message.Message `json:"messages"`
}

type LastMessageResponse struct {
	ChannelID     string            `json:"channel_id"`
	UserID        string            `json:"user_id"`
	InsertedAtUTC message.Timestamp `json:"inserted_at_utc"`
}
