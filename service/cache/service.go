// Package cache provides an injectable expiring key/value store used to avoid
// repeated inventory queries. Expired entries are masked on read, not purged;
// unbounded key growth is an accepted limitation of the scan workload, whose
// key space is one entry per project.
package cache

import "time"

// DefaultTTL applies when the caller does not override the entry lifetime.
const DefaultTTL = 300 * time.Second

func NewService(defaultTTL time.Duration) *service {
	if defaultTTL <= 0 {
		defaultTTL = DefaultTTL
	}
	return &service{
		entries:    make(map[string]entry),
		defaultTTL: defaultTTL,
		now:        time.Now,
	}
}

// Get implements service.CacheService
// A stored value is visible only until its expiry; afterwards Get behaves as
// if the key were absent.
func (s *service) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[key]
	if !ok || !s.now().Before(e.expiresAt) {
		return nil, false
	}
	return e.value, true
}

// Set implements service.CacheService
func (s *service) Set(key string, value any) {
	s.SetTTL(key, value, s.defaultTTL)
}

// SetTTL implements service.CacheService
func (s *service) SetTTL(key string, value any, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = entry{
		value:     value,
		expiresAt: s.now().Add(ttl),
	}
}
