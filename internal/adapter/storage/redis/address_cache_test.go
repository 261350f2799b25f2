package redis

import (
	"context"
	"testing"
	"time"

	"condo-settlement/internal/core/domain"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddressCache_SetAndGet(t *testing.T) {
	s := miniredis.RunT(t)
	cache := NewAddressCache(goredis.NewClient(&goredis.Options{Addr: s.Addr()}))
	ctx := context.Background()

	info := &domain.WalletAddressInfo{
		ID:             "https://ilp.example.com/alice",
		AssetCode:      "USD",
		AssetScale:     2,
		ResourceServer: "https://rs.example.com",
	}
	require.NoError(t, cache.Set(ctx, info.ID, info, 10*time.Minute))
	assert.True(t, s.Exists("addrinfo:https://ilp.example.com/alice"))

	got, err := cache.Get(ctx, info.ID)
	require.NoError(t, err)
	assert.Equal(t, info, got)
}

func TestAddressCache_Miss(t *testing.T) {
	s := miniredis.RunT(t)
	cache := NewAddressCache(goredis.NewClient(&goredis.Options{Addr: s.Addr()}))

	got, err := cache.Get(context.Background(), "https://ilp.example.com/nobody")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestAddressCache_Expires(t *testing.T) {
	s := miniredis.RunT(t)
	cache := NewAddressCache(goredis.NewClient(&goredis.Options{Addr: s.Addr()}))
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "https://ilp.example.com/a", &domain.WalletAddressInfo{ID: "a"}, time.Minute))
	s.FastForward(2 * time.Minute)

	got, err := cache.Get(ctx, "https://ilp.example.com/a")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestAddressCache_CorruptEntry(t *testing.T) {
	s := miniredis.RunT(t)
	cache := NewAddressCache(goredis.NewClient(&goredis.Options{Addr: s.Addr()}))
	require.NoError(t, s.Set("addrinfo:https://ilp.example.com/a", "not-json"))

	_, err := cache.Get(context.Background(), "https://ilp.example.com/a")
	assert.Error(t, err)
}
