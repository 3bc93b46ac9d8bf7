package proxy

import (
	"context"

	"chatdb/internal/domain/channel"
)

// PolicyStore holds explicit per-channel grants.
type PolicyStore interface {
	HasGrant(ctx context.Context, channelID, userID string, right channel.Right) (bool, error)
}

// Rule grants access without a stored policy, e.g. on naming conventions.
type Rule func(userID, channelID string, right channel.Right) bool

// AccessControl answers channel access questions from explicit grants first
// and rules second. A WRITE grant also allows READ.
type AccessControl struct {
	policies PolicyStore
	rules    []Rule
}

func NewAccessControl(policies PolicyStore, rules ...Rule) *AccessControl {
	return &AccessControl{policies: policies, rules: rules}
}

func (a *AccessControl) IsAllowed(ctx context.Context, userID, channelID string, right channel.Right) (bool, error) {
	if !right.Valid() || userID == "" || channelID == "" {
		return false, nil
	}
	if a.policies != nil {
		ok, err := a.policies.HasGrant(ctx, channelID, userID, right)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
		if right == channel.Read {
			ok, err = a.policies.HasGrant(ctx, channelID, userID, channel.Write)
			if err != nil {
				return false, err
			}
			if ok {
				return true, nil
			}
		}
	}
	for _, rule := range a.rules {
		if rule(userID, channelID, right) {
			return true, nil
		}
	}
	return false, nil
}

// PersonalChannelRule lets user N read and write the channel named "channelN".
func PersonalChannelRule(userID, channelID string, _ channel.Right) bool {
	return channelID == "channel"+userID
}
