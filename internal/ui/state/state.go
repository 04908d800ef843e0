package state

import (
	"gridgazer/internal/session"
)

// AppState contains the UI state that is not owned by the cursor or the store
type AppState struct {
	// Scan state
	Scanning bool
	Found    int // entries discovered by the running or last scan

	// UI state
	StatusMessage string
	PendingCount  int  // count prefix typed so far, 0 when none
	InPager       bool // the terminal is handed to the pager

	// Session restore
	PendingRestore *session.State // saved position waiting for its entry
	UserMoved      bool           // navigation happened since the scan started
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{}
}

// StartScan resets the per-scan counters
func (s *AppState) StartScan() {
	s.Scanning = true
	s.Found = 0
	s.UserMoved = false
}

// FinishScan marks the scan done. A saved position whose entry never
// showed up is dropped.
func (s *AppState) FinishScan(found int) {
	s.Scanning = false
	s.Found = found
	s.PendingRestore = nil
}

// TakeRestore returns the saved position when key is the entry it was
// recorded on and nothing has moved the cursor yet
func (s *AppState) TakeRestore(key string) (session.State, bool) {
	if s.PendingRestore == nil || s.UserMoved || s.PendingRestore.EntryKey != key {
		return session.State{}, false
	}
	st := *s.PendingRestore
	s.PendingRestore = nil
	return st, true
}
