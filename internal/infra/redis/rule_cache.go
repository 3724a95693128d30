package redis

import (
	"context"
	"errors"
	"strconv"
	"time"

	"camp-pricing/internal/domain/pricing"
	"camp-pricing/internal/infra"
	"camp-pricing/internal/infra/converter"
	"camp-pricing/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix = "pricing:rules:camp:"
	genPrefix = "pricing:rules:gen:"
)

func ruleKey(campID uuid.UUID, gen int64) string {
	return keyPrefix + campID.String() + ":" + strconv.FormatInt(gen, 10)
}

func genKey(campID uuid.UUID) string {
	return genPrefix + campID.String()
}

func NewClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// RuleCache shares the sorted active rule list of a camp between processes.
type RuleCache struct {
	client *redis.Client
}

func NewRuleCache(client *redis.Client) *RuleCache {
	return &RuleCache{client: client}
}

// Generation is 0 until the camp is first invalidated.
func (c *RuleCache) Generation(ctx context.Context, campID uuid.UUID) (int64, error) {
	gen, err := c.client.Get(ctx, genKey(campID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, infra.WrapRepoErr(infra.KindDBFailure, "failed to read rule cache generation", err)
	}
	return gen, nil
}

func (c *RuleCache) Get(ctx context.Context, campID uuid.UUID, gen int64) ([]*pricing.PricingRule, bool, error) {
	data, err := c.client.Get(ctx, ruleKey(campID, gen)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, infra.WrapRepoErr(infra.KindDBFailure, "failed to read rule cache", err)
	}
	rules, err := converter.UnmarshalRules(data)
	if err != nil {
		// a payload from an older release; drop it and read through
		_ = c.client.Del(ctx, ruleKey(campID, gen)).Err()
		return nil, false, infra.WrapRepoErr(infra.KindCodec, "failed to decode cached rules", err)
	}
	return rules, true, nil
}

// Set writes under gen. A stale gen is harmless: nobody reads it any more and
// the entry expires with ttl.
func (c *RuleCache) Set(ctx context.Context, campID uuid.UUID, gen int64, rules []*pricing.PricingRule, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	data, err := converter.MarshalRules(rules)
	if err != nil {
		return infra.WrapRepoErr(infra.KindCodec, "failed to encode rules", err)
	}
	if err := c.client.Set(ctx, ruleKey(campID, gen), data, ttl).Err(); err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to write rule cache", err)
	}
	return nil
}

func (c *RuleCache) Invalidate(ctx context.Context, campIDs ...uuid.UUID) error {
	if len(campIDs) == 0 {
		return nil
	}
	_, err := c.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, id := range campIDs {
			pipe.Incr(ctx, genKey(id))
		}
		return nil
	})
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to invalidate rule cache", err)
	}
	return nil
}
