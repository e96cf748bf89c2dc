package handoff

import (
	"context"
	"sync"

	"funeral_quote/internal/usecase/interfaces"
)

// PrintMemoryChannel is the single-process print slot used when no Redis is
// configured.
type PrintMemoryChannel struct {
	mu      sync.RWMutex
	payload string
}

var _ interfaces.IPrintChannel = (*PrintMemoryChannel)(nil)

func NewPrintMemoryChannel() *PrintMemoryChannel {
	return &PrintMemoryChannel{}
}

func (c *PrintMemoryChannel) Write(_ context.Context, payload string) error {
	c.mu.Lock()
	c.payload = payload
	c.mu.Unlock()
	return nil
}

func (c *PrintMemoryChannel) Read(_ context.Context) (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.payload, nil
}
