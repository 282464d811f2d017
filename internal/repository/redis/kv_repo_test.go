package redis

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/DRSN-tech/frag-avenue/internal/cfg"
	"github.com/DRSN-tech/frag-avenue/pkg/clients"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestRepo подключается к Redis из REDIS_TEST_ADDR; без него тест пропускается.
func newTestRepo(t *testing.T) *KVRepo {
	t.Helper()

	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDR is not set")
	}

	c := &cfg.RedisCfg{
		Addr:        addr,
		DialTimeout: time.Second,
		Timeout:     time.Second,
		SessionTTL:  time.Minute,
	}
	client := clients.NewRedisClient(c)
	t.Cleanup(func() { _ = client.Close(context.Background()) })

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, client.Ping(ctx))

	return NewKVRepo(client, c)
}

func TestKVRepoRoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	key := "test:" + uuid.NewString()
	t.Cleanup(func() { _ = repo.Delete(ctx, key) })

	got, err := repo.Get(ctx, key)
	require.NoError(t, err)
	assert.Nil(t, got, "missing key is a miss, not an error")

	require.NoError(t, repo.Set(ctx, key, []byte(`["p1"]`)))
	got, err = repo.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, `["p1"]`, string(got))

	ttl, err := repo.client.Client.TTL(ctx, key).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))

	require.NoError(t, repo.Delete(ctx, key))
	got, err = repo.Get(ctx, key)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestKVRepoUnavailable(t *testing.T) {
	c := &cfg.RedisCfg{
		Addr:        "127.0.0.1:1",
		MaxRetries:  -1,
		DialTimeout: 50 * time.Millisecond,
		Timeout:     50 * time.Millisecond,
	}
	client := clients.NewRedisClient(c)
	defer client.Close(context.Background())

	repo := NewKVRepo(client, c)
	ctx := context.Background()

	_, err := repo.Get(ctx, "session:s1:frag_ave_cart")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GET session:s1:frag_ave_cart")

	err = repo.Set(ctx, "session:s1:frag_ave_cart", []byte("v"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SET session:s1:frag_ave_cart")

	err = repo.Delete(ctx, "session:s1:frag_ave_user")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DEL session:s1:frag_ave_user")
}
