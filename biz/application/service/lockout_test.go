package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestLimiter(now *time.Time) *LoginLimiter {
	l := NewLoginLimiter()
	l.now = func() time.Time { return *now }
	return l
}

func TestLoginLimiter_LocksAfterMaxFailures(t *testing.T) {
	now := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	l := newTestLimiter(&now)

	for i := 0; i < 4; i++ {
		l.RecordFailure("alice")
		assert.False(t, l.IsLockedOut("alice"))
	}
	l.RecordFailure("alice")
	assert.True(t, l.IsLockedOut("alice"))

	// other accounts are unaffected
	assert.False(t, l.IsLockedOut("bob"))
}

func TestLoginLimiter_UnlocksWhenWindowPasses(t *testing.T) {
	now := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	l := newTestLimiter(&now)

	for i := 0; i < 5; i++ {
		l.RecordFailure("alice")
	}
	assert.True(t, l.IsLockedOut("alice"))

	now = now.Add(5*time.Minute + time.Second)
	assert.False(t, l.IsLockedOut("alice"))
}

func TestLoginLimiter_ClearResetsHistory(t *testing.T) {
	now := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	l := newTestLimiter(&now)

	for i := 0; i < 5; i++ {
		l.RecordFailure("alice")
	}
	l.Clear("alice")
	assert.False(t, l.IsLockedOut("alice"))
	assert.Equal(t, time.Duration(0), l.Remaining("alice"))
}

func TestLoginLimiter_Remaining(t *testing.T) {
	now := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	l := newTestLimiter(&now)

	for i := 0; i < 5; i++ {
		l.RecordFailure("alice")
	}
	assert.Equal(t, 5*time.Minute, l.Remaining("alice"))

	now = now.Add(2 * time.Minute)
	assert.Equal(t, 3*time.Minute, l.Remaining("alice"))
}

func TestLoginLimiter_OldFailuresAgeOut(t *testing.T) {
	now := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	l := newTestLimiter(&now)

	for i := 0; i < 4; i++ {
		l.RecordFailure("alice")
	}
	now = now.Add(6 * time.Minute)
	l.RecordFailure("alice")
	assert.False(t, l.IsLockedOut("alice"))
}
