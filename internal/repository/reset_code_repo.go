package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultResetCodePrefix = "reset_code"

// ResetCodeRepository keeps at most one live reset code per phone.
// Get returns "" when no unexpired code exists.
type ResetCodeRepository interface {
	Save(ctx context.Context, phone, code string, ttl time.Duration) error
	Get(ctx context.Context, phone string) (string, error)
	Delete(ctx context.Context, phone string) error
}

type redisResetCodeRepository struct {
	client *redis.Client
	prefix string
}

// NewRedisResetCodeRepository stores codes as plain keys expiring after their TTL
func NewRedisResetCodeRepository(client *redis.Client, keyPrefix string) ResetCodeRepository {
	prefix := strings.TrimSpace(keyPrefix)
	if prefix == "" {
		prefix = defaultResetCodePrefix
	}
	return &redisResetCodeRepository{client: client, prefix: prefix}
}

func (r *redisResetCodeRepository) key(phone string) string {
	return r.prefix + ":" + phone
}

func (r *redisResetCodeRepository) Save(ctx context.Context, phone, code string, ttl time.Duration) error {
	if ttl <= 0 {
		return errors.New("ttl must be positive")
	}
	if err := r.client.Set(ctx, r.key(phone), code, ttl).Err(); err != nil {
		return fmt.Errorf("redis store reset code: %w", err)
	}
	return nil
}

func (r *redisResetCodeRepository) Get(ctx context.Context, phone string) (string, error) {
	code, err := r.client.Get(ctx, r.key(phone)).Result()
	switch {
	case errors.Is(err, redis.Nil):
		return "", nil
	case err != nil:
		return "", fmt.Errorf("redis get reset code: %w", err)
	}
	return code, nil
}

func (r *redisResetCodeRepository) Delete(ctx context.Context, phone string) error {
	if err := r.client.Del(ctx, r.key(phone)).Err(); err != nil {
		return fmt.Errorf("redis delete reset code: %w", err)
	}
	return nil
}

type memoryResetCode struct {
	code      string
	expiresAt time.Time
}

// MemoryResetCodeRepository keeps codes in process memory
type MemoryResetCodeRepository struct {
	mu    sync.Mutex
	codes map[string]memoryResetCode
	now   func() time.Time
}

// NewMemoryResetCodeRepository creates an empty store; expired entries are dropped lazily
func NewMemoryResetCodeRepository() *MemoryResetCodeRepository {
	return &MemoryResetCodeRepository{codes: make(map[string]memoryResetCode), now: time.Now}
}

// WithClock overrides the internal clock, used in tests.
func (r *MemoryResetCodeRepository) WithClock(clock func() time.Time) {
	if clock != nil {
		r.now = clock
	}
}

func (r *MemoryResetCodeRepository) Save(_ context.Context, phone, code string, ttl time.Duration) error {
	if ttl <= 0 {
		return errors.New("ttl must be positive")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.codes[phone] = memoryResetCode{code: code, expiresAt: r.now().Add(ttl)}
	return nil
}

func (r *MemoryResetCodeRepository) Get(_ context.Context, phone string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.codes[phone]
	if !ok {
		return "", nil
	}
	if !r.now().Before(rec.expiresAt) {
		delete(r.codes, phone)
		return "", nil
	}
	return rec.code, nil
}

func (r *MemoryResetCodeRepository) Delete(_ context.Context, phone string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.codes, phone)
	return nil
}
