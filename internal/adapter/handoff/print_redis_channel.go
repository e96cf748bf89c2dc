package handoff

import (
	"context"
	"errors"

	"funeral_quote/internal/usecase/interfaces"

	"github.com/go-redis/redis/v8"
)

// PrintDataKey is the single slot shared with the print view.
const PrintDataKey = "print_data"

// PrintRedisChannel stores the print payload under one Redis key, so any API
// replica can serve the print view. Last writer wins.
type PrintRedisChannel struct {
	client *redis.Client
	key    string
}

var _ interfaces.IPrintChannel = (*PrintRedisChannel)(nil)

func NewPrintRedisChannel(client *redis.Client) *PrintRedisChannel {
	return &PrintRedisChannel{client: client, key: PrintDataKey}
}

func (c *PrintRedisChannel) Write(ctx context.Context, payload string) error {
	return c.client.Set(ctx, c.key, payload, 0).Err()
}

func (c *PrintRedisChannel) Read(ctx context.Context) (string, error) {
	v, err := c.client.Get(ctx, c.key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	return v, err
}
