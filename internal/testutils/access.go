package testutils

import (
	"context"
	"sync"

	"chatdb/internal/domain/channel"
)

// AccessCall records one question asked to FakeAccess.
type AccessCall struct {
	UserID    string
	ChannelID string
	Right     channel.Right
}

// FakeAccess is a deterministic channel access collaborator. By default it
// follows the personal channel convention: user N may use "channelN" only.
type FakeAccess struct {
	mu    sync.Mutex
	calls []AccessCall

	// Allow overrides the default decision when set.
	Allow func(userID, channelID string, right channel.Right) bool
	// Err is returned instead of a decision when set.
	Err error
}

func (f *FakeAccess) IsAllowed(_ context.Context, userID, channelID string, right channel.Right) (bool, error) {
	f.mu.Lock()
	f.calls = append(f.calls, AccessCall{UserID: userID, ChannelID: channelID, Right: right})
	f.mu.Unlock()

	if f.Err != nil {
		return false, f.Err
	}
	if f.Allow != nil {
		return f.Allow(userID, channelID, right), nil
	}
	return channelID == "channel"+userID, nil
}

func (f *FakeAccess) Calls() []AccessCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]AccessCall, len(f.calls))
	copy(out, f.calls)
	return out
}

// AllowAll grants every right on every channel.
func AllowAll(string, string, channel.Right) bool { return true }
