package proxy

import (
	"context"
	"sync"

	"chatdb/internal/domain/channel"
)

type grantKey struct {
	channelID string
	userID    string
	right     channel.Right
}

// StaticPolicy is an in-memory PolicyStore.
type StaticPolicy struct {
	mu     sync.RWMutex
	grants map[grantKey]struct{}
}

func NewStaticPolicy() *StaticPolicy {
	return &StaticPolicy{grants: make(map[grantKey]struct{})}
}

func (p *StaticPolicy) Grant(channelID, userID string, rights ...channel.Right) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, r := range rights {
		p.grants[grantKey{channelID: channelID, userID: userID, right: r}] = struct{}{}
	}
}

func (p *StaticPolicy) Revoke(channelID, userID string, rights ...channel.Right) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, r := range rights {
		delete(p.grants, grantKey{channelID: channelID, userID: userID, right: r})
	}
}

func (p *StaticPolicy) HasGrant(_ context.Context, channelID, userID string, right channel.Right) (bool, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	_, ok := p.grants[grantKey{channelID: channelID, userID: userID, right: right}]
	return ok, nil
}
