package redis

import (
	"context"
	"fmt"
	"strings"

	"chatdb/internal/domain/channel"

	goredis "github.com/redis/go-redis/v9"
)

// Key pattern:
// - chat:acl:{channel_id}:{read|write} - set of user ids holding the right

const aclKeyPrefix = "chat:acl"

// AccessPolicyStore keeps channel grants in Redis sets.
type AccessPolicyStore struct {
	client goredis.UniversalClient
}

func NewAccessPolicyStore(client goredis.UniversalClient) *AccessPolicyStore {
	return &AccessPolicyStore{client: client}
}

func aclKey(channelID string, right channel.Right) string {
	return fmt.Sprintf("%s:%s:%s", aclKeyPrefix, channelID, strings.ToLower(right.String()))
}

func (s *AccessPolicyStore) HasGrant(ctx context.Context, channelID, userID string, right channel.Right) (bool, error) {
	return s.client.SIsMember(ctx, aclKey(channelID, right), userID).Result()
}

func (s *AccessPolicyStore) Grant(ctx context.Context, channelID, userID string, rights ...channel.Right) error {
	pipe := s.client.TxPipeline()
	for _, r := range rights {
		pipe.SAdd(ctx, aclKey(channelID, r), userID)
	}
	_, err := pipe.Exec(ctx)
	return err
}

func (s *AccessPolicyStore) Revoke(ctx context.Context, channelID, userID string, rights ...channel.Right) error {
	pipe := s.client.TxPipeline()
	for _, r := range rights {
		pipe.SRem(ctx, aclKey(channelID, r), userID)
	}
	_, err := pipe.Exec(ctx)
	return err
}

// Members lists the users holding right on the channel.
func (s *AccessPolicyStore) Members(ctx context.Context, channelID string, right channel.Right) ([]string, error) {
	return s.client.SMembers(ctx, aclKey(channelID, right)).Result()
}
