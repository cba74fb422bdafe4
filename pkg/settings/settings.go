// Package settings holds the player preferences edited from the settings
// screens. Values live in memory for the lifetime of the process.
package settings

import "sync"

// DefaultLoadTimeout is the player load timeout in milliseconds used when
// nothing else is configured.
const DefaultLoadTimeout int64 = 15000

// Settings represents user-tunable player configuration.
type Settings struct {
	LoadTimeout int64 `json:"videoPlayerLoadTimeout"`
}

// Store owns the current Settings. Screens read and write through it with
// accessor/mutator funcs rather than keeping their own copy.
type Store struct {
	mu sync.RWMutex
	s  Settings
}

// NewStore creates a store with the given initial load timeout (ms). A
// non-positive value selects DefaultLoadTimeout.
func NewStore(loadTimeout int64) *Store {
	if loadTimeout <= 0 {
		loadTimeout = DefaultLoadTimeout
	}
	return &Store{s: Settings{LoadTimeout: loadTimeout}}
}

// LoadTimeout returns the current player load timeout in milliseconds
func (st *Store) LoadTimeout() int64 {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.s.LoadTimeout
}

// SetLoadTimeout replaces the player load timeout (ms)
func (st *Store) SetLoadTimeout(ms int64) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.s.LoadTimeout = ms
}

// Snapshot returns a copy of all settings
func (st *Store) Snapshot() Settings {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.s
}
