package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"condo-settlement/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

// AddressCache implements ports.AddressCache. Entries are JSON documents
// keyed by the wallet address URL.
type AddressCache struct {
	client *goredis.Client
	prefix string
}

// NewAddressCache creates a new Redis-backed AddressCache.
func NewAddressCache(client *goredis.Client) *AddressCache {
	return &AddressCache{
		client: client,
		prefix: "addrinfo:",
	}
}

// Get returns nil, nil on a miss.
func (c *AddressCache) Get(ctx context.Context, address string) (*domain.WalletAddressInfo, error) {
	val, err := c.client.Get(ctx, c.prefix+address).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis address cache get: %w", err)
	}

	var info domain.WalletAddressInfo
	if err := json.Unmarshal(val, &info); err != nil {
		return nil, fmt.Errorf("decode cached address info: %w", err)
	}
	return &info, nil
}

// Set stores the address document for ttl.
func (c *AddressCache) Set(ctx context.Context, address string, info *domain.WalletAddressInfo, ttl time.Duration) error {
	val, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("encode address info: %w", err)
	}
	if err := c.client.Set(ctx, c.prefix+address, val, ttl).Err(); err != nil {
		return fmt.Errorf("redis address cache set: %w", err)
	}
	return nil
}
