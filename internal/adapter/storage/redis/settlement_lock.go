package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"condo-settlement/internal/core/domain"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// releaseScript deletes the lease only while it still holds our token, so an
// attempt that outlived its TTL cannot drop a newer holder's lease.
var releaseScript = goredis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// SettlementLock implements ports.SettlementLock with SET NX PX.
type SettlementLock struct {
	client *goredis.Client
	prefix string
}

// NewSettlementLock creates a new Redis-backed SettlementLock.
func NewSettlementLock(client *goredis.Client) *SettlementLock {
	return &SettlementLock{
		client: client,
		prefix: "settlement:lock:",
	}
}

func (l *SettlementLock) key(receiptID int64) string {
	return l.prefix + strconv.FormatInt(receiptID, 10)
}

// Acquire takes the lease for a receipt. domain.ErrLockHeld means another
// attempt holds it.
func (l *SettlementLock) Acquire(ctx context.Context, receiptID int64, ttl time.Duration) (string, error) {
	token := uuid.NewString()
	_, err := l.client.SetArgs(ctx, l.key(receiptID), token, goredis.SetArgs{
		Mode: "NX",
		TTL:  ttl,
	}).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return "", domain.ErrLockHeld
		}
		return "", fmt.Errorf("redis settlement lock acquire: %w", err)
	}
	return token, nil
}

// Release drops the lease if token still owns it. Releasing an expired or
// foreign lease is not an error.
func (l *SettlementLock) Release(ctx context.Context, receiptID int64, token string) error {
	if err := releaseScript.Run(ctx, l.client, []string{l.key(receiptID)}, token).Err(); err != nil {
		return fmt.Errorf("redis settlement lock release: %w", err)
	}
	return nil
}
