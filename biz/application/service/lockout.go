package service

import (
	"sync"
	"time"

	"paper-grade/biz/infrastructure/consts"
)

// LoginLimiter tracks failed sign-in attempts per username. Five failures
// inside the window lock the account until the oldest attempt ages out.
type LoginLimiter struct {
	mu       sync.Mutex
	attempts map[string][]time.Time
	window   time.Duration
	max      int
	now      func() time.Time
}

func NewLoginLimiter() *LoginLimiter {
	return &LoginLimiter{
		attempts: make(map[string][]time.Time),
		window:   consts.LockoutWindowMin * time.Minute,
		max:      consts.MaxLoginAttempts,
		now:      time.Now,
	}
}

// RecordFailure registers one failed attempt and drops attempts older than
// the lockout window.
func (l *LoginLimiter) RecordFailure(username string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := l.now()
	l.attempts[username] = append(l.prune(username, now), now)
}

// Clear wipes the failure history after a successful sign-in.
func (l *LoginLimiter) Clear(username string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.attempts, username)
}

// IsLockedOut reports whether the account currently rejects sign-ins.
func (l *LoginLimiter) IsLockedOut(username string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	recent := l.prune(username, l.now())
	l.attempts[username] = recent
	return len(recent) >= l.max
}

// Remaining returns how long until the lockout lifts, zero when not locked.
func (l *LoginLimiter) Remaining(username string) time.Duration {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := l.now()
	recent := l.prune(username, now)
	l.attempts[username] = recent
	if len(recent) < l.max {
		return 0
	}
	oldest := recent[0]
	remaining := oldest.Add(l.window).Sub(now)
	if remaining < 0 {
		return 0
	}
	return remaining
}

func (l *LoginLimiter) prune(username string, now time.Time) []time.Time {
	cutoff := now.Add(-l.window)
	var recent []time.Time
	for _, t := range l.attempts[username] {
		if t.After(cutoff) {
			recent = append(recent, t)
		}
	}
	return recent
}
