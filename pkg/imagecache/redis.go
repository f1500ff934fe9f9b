package imagecache

import (
	"context"
	"encoding/json"
	"log"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "tripdesk:images:"

// RedisCache shares resolved image lists across instances. Entries carry no
// TTL, matching the in-process behavior.
type RedisCache struct {
	client *redis.Client
}

func NewRedisCache(redisURL string) (*RedisCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	return &RedisCache{client: redis.NewClient(opts)}, nil
}

func (c *RedisCache) Get(key string) ([]string, bool) {
	raw, err := c.client.Get(context.Background(), keyPrefix+key).Result()
	if err != nil {
		return nil, false
	}

	var urls []string
	if err := json.Unmarshal([]byte(raw), &urls); err != nil {
		return nil, false
	}
	return urls, true
}

func (c *RedisCache) Set(key string, urls []string) {
	raw, err := json.Marshal(urls)
	if err != nil {
		return
	}
	if err := c.client.Set(context.Background(), keyPrefix+key, raw, 0).Err(); err != nil {
		log.Printf("redis cache set failed: %v", err)
	}
}
