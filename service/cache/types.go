package cache

import (
	"sync"
	"time"
)

type entry struct {
	value     any
	expiresAt time.Time
}

type service struct {
	mu         sync.RWMutex
	entries    map[string]entry
	defaultTTL time.Duration
	now        func() time.Time
}

type CacheService interface {
	Get(key string) (any, bool)
	Set(key string, value any)
	SetTTL(key string, value any, ttl time.Duration)
}
