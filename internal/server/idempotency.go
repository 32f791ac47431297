package server

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	inFlightKeyPrefix = "order:inflight:"

	// A redirect round-trip through a provider's hosted page takes
	// minutes; the TTL bounds how long a crashed attempt can block an
	// order.
	inFlightTTL = 15 * time.Minute
)

// InFlightGuard rejects a second initiation for an order while the first
// is still open. It is defense at the transport edge only; the remote
// backend remains the authority on idempotency, keyed on the order id.
type InFlightGuard struct {
	client *redis.Client
}

func NewInFlightGuard(client *redis.Client) *InFlightGuard {
	return &InFlightGuard{client: client}
}

// Acquire marks an order as in flight. It returns false when another
// attempt already holds the slot.
func (g *InFlightGuard) Acquire(ctx context.Context, orderID string) (bool, error) {
	set, err := g.client.SetNX(ctx, inFlightKeyPrefix+orderID, "1", inFlightTTL).Result()
	if err != nil {
		return false, fmt.Errorf("redis SETNX: %w", err)
	}
	return set, nil
}

// Release frees the slot after a failed initiation so the shopper can
// retry without waiting out the TTL.
func (g *InFlightGuard) Release(ctx context.Context, orderID string) error {
	return g.client.Del(ctx, inFlightKeyPrefix+orderID).Err()
}
