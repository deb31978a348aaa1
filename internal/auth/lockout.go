// Mercatus - E-commerce Performance Analytics Dashboard
// Copyright 2026 M. Varga (mercatus-io)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mercatus-io/mercatus

package auth

import (
	"sync"
	"time"

	"github.com/mercatus-io/mercatus/internal/logging"
)

// LockoutConfig holds the brute-force lockout policy for the login
// endpoint. The dashboard has a single admin account, so state is kept
// in memory and resets on restart.
type LockoutConfig struct {
	// MaxAttempts is the number of failed attempts before lockout.
	MaxAttempts int

	// LockoutDuration is the base lockout duration.
	LockoutDuration time.Duration

	// EnableExponentialBackoff doubles the duration on each repeat lockout.
	EnableExponentialBackoff bool

	// MaxLockoutDuration caps the backoff.
	MaxLockoutDuration time.Duration

	// TrackByIP also locks out the source IP, not just the username.
	TrackByIP bool
}

// DefaultLockoutConfig returns the default lockout policy.
func DefaultLockoutConfig() LockoutConfig {
	return LockoutConfig{
		MaxAttempts:              5,
		LockoutDuration:          15 * time.Minute,
		EnableExponentialBackoff: true,
		MaxLockoutDuration:       24 * time.Hour,
		TrackByIP:                true,
	}
}

// LockoutEntry tracks failed login attempts for a subject (username or
// "ip:<addr>").
type LockoutEntry struct {
	Subject        string
	FailedAttempts int
	LockoutCount   int
	LockedUntil    time.Time
	LastAttempt    time.Time
	LastFailedIP   string
}

// IsLocked reports whether the entry is currently locked.
func (e *LockoutEntry) IsLocked() bool {
	return time.Now().Before(e.LockedUntil)
}

// maxLockoutEntries bounds the in-memory map so an attacker cycling
// usernames cannot grow it without limit.
const maxLockoutEntries = 10000

// LockoutManager tracks failed login attempts and applies temporary
// lockouts with exponential backoff.
type LockoutManager struct {
	mu      sync.Mutex
	config  LockoutConfig
	entries map[string]*LockoutEntry
}

// NewLockoutManager creates a lockout manager with the given policy.
func NewLockoutManager(config LockoutConfig) *LockoutManager {
	return &LockoutManager{
		config:  config,
		entries: make(map[string]*LockoutEntry),
	}
}

// CheckLocked reports whether a subject is currently locked out and the
// remaining lockout duration.
func (m *LockoutManager) CheckLocked(username, ip string) (bool, time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if locked, remaining := m.checkSubject(username); locked {
		return true, remaining
	}

	if m.config.TrackByIP && ip != "" {
		if locked, remaining := m.checkSubject("ip:" + ip); locked {
			return true, remaining
		}
	}

	return false, 0
}

// checkSubject checks a single subject. Caller holds the lock.
func (m *LockoutManager) checkSubject(subject string) (bool, time.Duration) {
	entry, ok := m.entries[subject]
	if !ok || !entry.IsLocked() {
		return false, 0
	}
	return true, time.Until(entry.LockedUntil)
}

// RecordFailedAttempt records a failed login. It returns whether the
// attempt triggered (or extended) a lockout and the remaining duration.
func (m *LockoutManager) RecordFailedAttempt(username, ip string) (bool, time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.pruneExpired()

	locked, remaining := m.recordForSubject(username, ip)

	if m.config.TrackByIP && ip != "" {
		ipLocked, ipRemaining := m.recordForSubject("ip:"+ip, ip)
		if ipLocked && ipRemaining > remaining {
			locked, remaining = true, ipRemaining
		} else if ipLocked {
			locked = true
		}
	}

	return locked, remaining
}

// recordForSubject records a failed attempt for one subject. Caller
// holds the lock.
func (m *LockoutManager) recordForSubject(subject, ip string) (bool, time.Duration) {
	entry, ok := m.entries[subject]
	if !ok {
		entry = &LockoutEntry{Subject: subject}
		m.entries[subject] = entry
	}

	if entry.IsLocked() {
		return true, time.Until(entry.LockedUntil)
	}

	now := time.Now()
	entry.FailedAttempts++
	entry.LastAttempt = now
	entry.LastFailedIP = ip

	if entry.FailedAttempts < m.config.MaxAttempts {
		return false, 0
	}

	duration := m.lockoutDuration(entry.LockoutCount)
	entry.LockedUntil = now.Add(duration)
	entry.LockoutCount++
	entry.FailedAttempts = 0

	logging.Warn().
		Str("subject", subject).
		Dur("duration", duration).
		Int("lockout_count", entry.LockoutCount).
		Msg("Account locked")

	return true, duration
}

// lockoutDuration computes the duration for the next lockout, doubling
// on each previous lockout when backoff is enabled.
func (m *LockoutManager) lockoutDuration(lockoutCount int) time.Duration {
	duration := m.config.LockoutDuration

	if !m.config.EnableExponentialBackoff || lockoutCount == 0 {
		return duration
	}

	multiplier := 1 << lockoutCount
	duration = time.Duration(int64(duration) * int64(multiplier))

	if duration > m.config.MaxLockoutDuration {
		return m.config.MaxLockoutDuration
	}

	return duration
}

// RecordSuccessfulLogin clears lockout state for the username and, when
// tracking by IP, the source IP.
func (m *LockoutManager) RecordSuccessfulLogin(username, ip string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.entries, username)
	if ip != "" {
		delete(m.entries, "ip:"+ip)
	}
}

// pruneExpired removes stale entries. An entry is stale when it is not
// locked and its last attempt is older than the base lockout duration.
// When the map is still over capacity after pruning, the oldest entries
// are dropped. Caller holds the lock.
func (m *LockoutManager) pruneExpired() {
	cutoff := time.Now().Add(-m.config.LockoutDuration)
	for subject, entry := range m.entries {
		if !entry.IsLocked() && entry.LastAttempt.Before(cutoff) {
			delete(m.entries, subject)
		}
	}

	for len(m.entries) > maxLockoutEntries {
		oldest := ""
		var oldestTime time.Time
		for subject, entry := range m.entries {
			if oldest == "" || entry.LastAttempt.Before(oldestTime) {
				oldest = subject
				oldestTime = entry.LastAttempt
			}
		}
		delete(m.entries, oldest)
	}
}
