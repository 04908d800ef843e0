// Package session remembers where the viewer was left so the next run
// over the same roots opens on the same entry with the same alignment.
package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"gridgazer/internal/paginator"
)

// ErrNoSession is returned by Load when nothing was saved yet
var ErrNoSession = errors.New("no saved session")

// State is the persisted part of a viewing session
type State struct {
	Roots     []string  `yaml:"roots"`
	EntryKey  string    `yaml:"entry_key"`
	Index     int       `yaml:"index"`
	FlyLeaves int       `yaml:"fly_leaves"`
	SavedAt   time.Time `yaml:"saved_at"`
}

// Store reads and writes the session file
type Store struct {
	path string
}

// NewStore creates a session store backed by path
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the session file
func (s *Store) Path() string {
	return s.path
}

// Load reads the saved session
func (s *Store) Load() (State, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return State{}, ErrNoSession
	}
	if err != nil {
		return State{}, fmt.Errorf("failed to read session: %w", err)
	}

	var st State
	if err := yaml.Unmarshal(data, &st); err != nil {
		return State{}, fmt.Errorf("failed to parse session: %w", err)
	}
	return st, nil
}

// Save writes the session, replacing any previous one
func (s *Store) Save(st State) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}

	data, err := yaml.Marshal(st)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace session: %w", err)
	}
	return nil
}

// ShownIndex returns the first real entry of the current page. Leading
// fly leaves are skipped, and a page left past the end of a shrunk
// collection maps to the last entry, which Show clamps back onto the
// last page. An unpositioned cursor yields 0.
func ShownIndex(p *paginator.Paginator) int {
	if _, ok := p.Level(); !ok {
		return 0
	}
	for delta := 0; delta < int(p.SightSize()); delta++ {
		if index, ok := p.CurrentIndexWith(delta); ok {
			return int(index)
		}
	}
	return max(p.Length()-1, 0)
}

// Capture records the alignment and ShownIndex; entryKey names the entry
// at that index.
func Capture(p *paginator.Paginator, entryKey string) State {
	return State{
		EntryKey:  entryKey,
		Index:     ShownIndex(p),
		FlyLeaves: int(p.FlyLeaves()),
		SavedAt:   time.Now(),
	}
}

// Restore rebuilds an equivalent cursor over a collection of length
// entries: same alignment, same entry visible.
func Restore(p *paginator.Paginator, st State, length int) bool {
	if length == 0 {
		return false
	}
	p.UpdateCondition(paginator.Condition{Length: length, SightSize: p.SightSize()})

	changed := p.SetFlyLeaves(st.FlyLeaves)
	index := min(max(st.Index, 0), length-1)
	if p.Show(paginator.Paging{Count: index + 1}) {
		changed = true
	}
	return changed
}
