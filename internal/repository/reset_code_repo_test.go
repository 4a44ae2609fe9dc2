package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisRepo(t *testing.T) (ResetCodeRepository, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisResetCodeRepository(client, ""), mr
}

func TestRedisResetCodeRepository_SaveGetDelete(t *testing.T) {
	repo, mr := newRedisRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "79001234567", "482913", 10*time.Minute))
	assert.True(t, mr.Exists("reset_code:79001234567"))

	code, err := repo.Get(ctx, "79001234567")
	require.NoError(t, err)
	assert.Equal(t, "482913", code)

	require.NoError(t, repo.Delete(ctx, "79001234567"))
	code, err = repo.Get(ctx, "79001234567")
	require.NoError(t, err)
	assert.Empty(t, code)
}

func TestRedisResetCodeRepository_Expiry(t *testing.T) {
	repo, mr := newRedisRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "79001234567", "482913", time.Minute))
	mr.FastForward(61 * time.Second)

	code, err := repo.Get(ctx, "79001234567")
	require.NoError(t, err)
	assert.Empty(t, code)
}

func TestRedisResetCodeRepository_Overwrite(t *testing.T) {
	repo, _ := newRedisRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "79001234567", "111111", time.Minute))
	require.NoError(t, repo.Save(ctx, "79001234567", "222222", time.Minute))

	code, err := repo.Get(ctx, "79001234567")
	require.NoError(t, err)
	assert.Equal(t, "222222", code)
}

func TestRedisResetCodeRepository_InvalidTTL(t *testing.T) {
	repo, _ := newRedisRepo(t)
	assert.Error(t, repo.Save(context.Background(), "79001234567", "111111", 0))
}

func TestRedisResetCodeRepository_Unavailable(t *testing.T) {
	repo, mr := newRedisRepo(t)
	mr.Close()

	_, err := repo.Get(context.Background(), "79001234567")
	assert.Error(t, err)
}

func TestMemoryResetCodeRepository_Expiry(t *testing.T) {
	repo := NewMemoryResetCodeRepository()
	now := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	repo.WithClock(func() time.Time { return now })
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "79001234567", "482913", 10*time.Minute))

	now = now.Add(9 * time.Minute)
	code, _ := repo.Get(ctx, "79001234567")
	assert.Equal(t, "482913", code)

	now = now.Add(time.Minute)
	code, _ = repo.Get(ctx, "79001234567")
	assert.Empty(t, code)
}

func TestMemoryResetCodeRepository_Delete(t *testing.T) {
	repo := NewMemoryResetCodeRepository()
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "79001234567", "482913", time.Minute))
	require.NoError(t, repo.Delete(ctx, "79001234567"))
	require.NoError(t, repo.Delete(ctx, "79001234567"))

	code, _ := repo.Get(ctx, "79001234567")
	assert.Empty(t, code)
	assert.Error(t, repo.Save(ctx, "79001234567", "482913", -time.Second))
}
