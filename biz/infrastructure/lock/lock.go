package lock

import (
	"context"
	"fmt"
	"time"

	"paper-grade/biz/infrastructure/config"
	rds "paper-grade/biz/infrastructure/redis"

	"github.com/google/uuid"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

type Locker interface {
	Lock() error
	Unlock() error
	Expired() bool
}

// Factory hands out per-submission locks to the grading loop.
type Factory interface {
	NewGradeMutex(ctx context.Context, key string, ttlSec int) Locker
}

type RedisFactory struct{}

func NewRedisFactory() *RedisFactory {
	return &RedisFactory{}
}

func (f *RedisFactory) NewGradeMutex(ctx context.Context, key string, ttlSec int) Locker {
	return NewGradeMutex(ctx, key, ttlSec)
}

// Mutex is a best-effort distributed lock used to make sure a submission is
// only claimed by one grading run at a time.
type Mutex struct {
	ctx      context.Context
	rds      *redis.Redis
	key      string
	token    string
	ttlSec   int
	acquired time.Time
}

func NewGradeMutex(ctx context.Context, key string, ttlSec int) *Mutex {
	return &Mutex{
		ctx:    ctx,
		rds:    rds.GetRedis(config.GetConfig()),
		key:    fmt.Sprintf("lock:grade:%s", key),
		token:  uuid.New().String(),
		ttlSec: ttlSec,
	}
}

func (m *Mutex) Lock() error {
	ok, err := m.rds.SetnxExCtx(m.ctx, m.key, m.token, m.ttlSec)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("lock %s already held", m.key)
	}
	m.acquired = time.Now()
	return nil
}

func (m *Mutex) Unlock() error {
	val, err := m.rds.GetCtx(m.ctx, m.key)
	if err != nil {
		return err
	}
	// only the holder may release
	if val != m.token {
		return nil
	}
	_, err = m.rds.DelCtx(m.ctx, m.key)
	return err
}

// Expired reports whether the lock TTL elapsed while the work was running.
func (m *Mutex) Expired() bool {
	if m.acquired.IsZero() {
		return false
	}
	return time.Since(m.acquired) > time.Duration(m.ttlSec)*time.Second
}
