package store

import "gridgazer/internal/domain"

// EntryStore holds the ordered collection the cursor walks over
type EntryStore interface {
	Add(entry domain.Entry) bool
	At(index int) (domain.Entry, bool)
	Get(key string) (domain.Entry, bool)
	IndexOf(key string) (int, bool)
	Len() int
	All() []domain.Entry
	Clear()
}
