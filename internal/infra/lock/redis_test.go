package lock

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRedis хранит ключи в памяти. Скрипт снятия блокировки исполняется как compare-and-delete.
type fakeRedis struct {
	redis.Scripter

	mu      sync.Mutex
	keys    map[string]string
	failSet error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{keys: make(map[string]string)}
}

func (f *fakeRedis) SetNX(ctx context.Context, key string, value interface{}, _ time.Duration) *redis.BoolCmd {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failSet != nil {
		return redis.NewBoolResult(false, f.failSet)
	}
	if _, ok := f.keys[key]; ok {
		return redis.NewBoolResult(false, nil)
	}
	f.keys[key] = value.(string)
	return redis.NewBoolResult(true, nil)
}

func (f *fakeRedis) EvalSha(ctx context.Context, _ string, keys []string, args ...interface{}) *redis.Cmd {
	return f.compareAndDelete(keys[0], args[0].(string))
}

func (f *fakeRedis) Eval(ctx context.Context, _ string, keys []string, args ...interface{}) *redis.Cmd {
	return f.compareAndDelete(keys[0], args[0].(string))
}

func (f *fakeRedis) compareAndDelete(key, token string) *redis.Cmd {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.keys[key] == token {
		delete(f.keys, key)
		return redis.NewCmdResult(int64(1), nil)
	}
	return redis.NewCmdResult(int64(0), nil)
}

func TestRedis_LockAndRelease(t *testing.T) {
	client := newFakeRedis()
	l := NewRedis(client, time.Second, nil)
	assert.Equal(t, time.Second, l.TTL())

	unlock, err := l.Lock(context.Background(), "restaurant-1")
	require.NoError(t, err)
	assert.Contains(t, client.keys, keyPrefix+"restaurant-1")

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Millisecond)
	defer cancel()
	_, err = l.Lock(ctx, "restaurant-1")
	assert.ErrorIs(t, err, ErrLockTimeout)

	unlock()
	assert.NotContains(t, client.keys, keyPrefix+"restaurant-1")

	unlock2, err := l.Lock(context.Background(), "restaurant-1")
	require.NoError(t, err)
	unlock2()
}

func TestRedis_ReleaseKeepsForeignToken(t *testing.T) {
	client := newFakeRedis()
	l := NewRedis(client, time.Second, nil)

	unlock, err := l.Lock(context.Background(), "r")
	require.NoError(t, err)

	// блокировка истекла и была занята другим владельцем
	client.keys[keyPrefix+"r"] = "someone-else"
	unlock()

	assert.Equal(t, "someone-else", client.keys[keyPrefix+"r"])
}

func TestRedis_BackendError(t *testing.T) {
	client := newFakeRedis()
	client.failSet = errors.New("connection refused")
	l := NewRedis(client, time.Second, nil)

	_, err := l.Lock(context.Background(), "r")
	assert.ErrorIs(t, err, ErrLockUnavailable)
}
