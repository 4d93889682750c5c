package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(ttl time.Duration) (*service, *time.Time) {
	current := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := &service{
		entries:    make(map[string]entry),
		defaultTTL: ttl,
		now:        func() time.Time { return current },
	}
	return svc, &current
}

func TestGetMissingKey(t *testing.T) {
	svc, _ := newTestService(DefaultTTL)

	_, ok := svc.Get("absent")
	assert.False(t, ok)
}

func TestSetAndGet(t *testing.T) {
	svc, _ := newTestService(DefaultTTL)

	svc.Set("assets:proj", []string{"a", "b"})

	value, ok := svc.Get("assets:proj")
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, value)
}

func TestExpiredEntryIsMasked(t *testing.T) {
	svc, current := newTestService(DefaultTTL)

	svc.Set("assets:proj", "cached")

	*current = current.Add(DefaultTTL - time.Second)
	_, ok := svc.Get("assets:proj")
	assert.True(t, ok, "entry should still be visible just before expiry")

	*current = current.Add(2 * time.Second)
	_, ok = svc.Get("assets:proj")
	assert.False(t, ok, "entry should be hidden after expiry")
}

func TestSetTTLOverridesDefault(t *testing.T) {
	svc, current := newTestService(DefaultTTL)

	svc.SetTTL("short", "value", time.Minute)

	*current = current.Add(2 * time.Minute)
	_, ok := svc.Get("short")
	assert.False(t, ok)
}

func TestOverwriteResetsExpiry(t *testing.T) {
	svc, current := newTestService(DefaultTTL)

	svc.Set("key", "first")
	*current = current.Add(DefaultTTL / 2)
	svc.Set("key", "second")

	*current = current.Add(DefaultTTL / 2)
	value, ok := svc.Get("key")
	require.True(t, ok)
	assert.Equal(t, "second", value)
}

func TestNewServiceDefaultsTTL(t *testing.T) {
	svc := NewService(0)
	assert.Equal(t, DefaultTTL, svc.defaultTTL)
}
