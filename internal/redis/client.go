package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

type Client struct {
	rdb *redis.Client
}

// AdminSession is the server-side session record for a logged-in back-office
// user, stored in Redis under the opaque session token.
type AdminSession struct {
	UserID    uint      `json:"user_id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func Initialize(redisURL string) (*Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	// Test connection
	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

// Session management
func (c *Client) SetSession(token string, data *AdminSession, ttl time.Duration) error {
	ctx := context.Background()
	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal session data: %w", err)
	}

	return c.rdb.Set(ctx, "session:"+token, jsonData, ttl).Err()
}

func (c *Client) GetSession(token string) (*AdminSession, error) {
	ctx := context.Background()
	val, err := c.rdb.Get(ctx, "session:"+token).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, fmt.Errorf("session not found")
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var session AdminSession
	if err := json.Unmarshal([]byte(val), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session data: %w", err)
	}

	return &session, nil
}

func (c *Client) DeleteSession(token string) error {
	ctx := context.Background()
	return c.rdb.Del(ctx, "session:"+token).Err()
}

// luaCountRequest: atomic INCR with expiry set only on key creation, so the
// window starts at the first request and never slides on later ones.
// KEYS[1]=counter key, ARGV[1]=window seconds; returns the count in the
// current window.
const luaCountRequest = `
local count = redis.call('INCR', KEYS[1])
if count == 1 then
  redis.call('EXPIRE', KEYS[1], ARGV[1])
end
return count
`

// CountRequest increments the fixed-window counter for key and returns the
// count within the current window. The counter expires a full window after
// its first request, not its latest one; steady traffic below the limit must
// never pile up across windows.
func (c *Client) CountRequest(key string, window time.Duration) (int64, error) {
	ctx := context.Background()

	seconds := int64(window.Seconds())
	if seconds < 1 {
		seconds = 1
	}

	count, err := c.rdb.Eval(ctx, luaCountRequest, []string{"rate:" + key}, seconds).Int64()
	if err != nil {
		return 0, fmt.Errorf("failed to count request: %w", err)
	}
	return count, nil
}

// Close Redis connection
func (c *Client) Close() error {
	return c.rdb.Close()
}
