package cache

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrLockTimeout 在等待时间内未获得用户锁
var ErrLockTimeout = errors.New("user lock wait timeout")

const (
	defaultLockTTL   = 5 * time.Second
	defaultLockWait  = 3 * time.Second
	lockRetryBackoff = 20 * time.Millisecond
)

// 仅当持有者令牌一致时才释放，避免误删他人在锁过期后获得的锁
var releaseUserLockScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// UserLock 按用户串行化购物车与下单写操作
// Redis 启用时使用分布式锁，否则退化为进程内锁
type UserLock struct {
	ttl   time.Duration
	wait  time.Duration
	local *localKeyedMutex
}

// NewUserLock 创建用户锁
func NewUserLock(ttl, wait time.Duration) *UserLock {
	if ttl <= 0 {
		ttl = defaultLockTTL
	}
	if wait <= 0 {
		wait = defaultLockWait
	}
	return &UserLock{
		ttl:   ttl,
		wait:  wait,
		local: newLocalKeyedMutex(),
	}
}

// Lock 获取用户锁，返回释放函数
func (l *UserLock) Lock(ctx context.Context, userID uint) (func(), error) {
	if ctx == nil {
		ctx = context.Background()
	}
	waitCtx, cancel := context.WithTimeout(ctx, l.wait)
	defer cancel()

	if !Enabled() {
		return l.local.lock(waitCtx, userID)
	}
	return l.lockRedis(waitCtx, userID)
}

func (l *UserLock) lockRedis(ctx context.Context, userID uint) (func(), error) {
	key := buildKey(fmt.Sprintf("lock:cart:%d", userID))
	token := uuid.NewString()
	for {
		ok, err := redisClient.SetNX(ctx, key, token, l.ttl).Result()
		if err != nil {
			if ctx.Err() != nil {
				return nil, ErrLockTimeout
			}
			return nil, err
		}
		if ok {
			client := redisClient
			return func() {
				releaseCtx, cancel := context.WithTimeout(context.Background(), time.Second)
				defer cancel()
				_ = releaseUserLockScript.Run(releaseCtx, client, []string{key}, token).Err()
			}, nil
		}
		select {
		case <-ctx.Done():
			return nil, ErrLockTimeout
		case <-time.After(lockRetryBackoff):
		}
	}
}

type localLockEntry struct {
	sem  chan struct{}
	refs int
}

// localKeyedMutex 进程内按 key 互斥，空闲条目自动回收
type localKeyedMutex struct {
	mu      sync.Mutex
	entries map[uint]*localLockEntry
}

func newLocalKeyedMutex() *localKeyedMutex {
	return &localKeyedMutex{entries: make(map[uint]*localLockEntry)}
}

func (m *localKeyedMutex) lock(ctx context.Context, key uint) (func(), error) {
	m.mu.Lock()
	entry, ok := m.entries[key]
	if !ok {
		entry = &localLockEntry{sem: make(chan struct{}, 1)}
		m.entries[key] = entry
	}
	entry.refs++
	m.mu.Unlock()

	select {
	case entry.sem <- struct{}{}:
	case <-ctx.Done():
		m.release(key, entry, false)
		return nil, ErrLockTimeout
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			m.release(key, entry, true)
		})
	}, nil
}

func (m *localKeyedMutex) release(key uint, entry *localLockEntry, held bool) {
	if held {
		<-entry.sem
	}
	m.mu.Lock()
	entry.refs--
	if entry.refs == 0 {
		delete(m.entries, key)
	}
	m.mu.Unlock()
}
