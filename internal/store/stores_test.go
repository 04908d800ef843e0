package store

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gridgazer/internal/domain"
)

func TestAddKeepsOrderAndRejectsDuplicates(t *testing.T) {
	s := NewMemoryEntryStore()

	assert.True(t, s.Add(domain.NewImageEntry("/a.png", 1)))
	assert.True(t, s.Add(domain.NewImageEntry("/b.png", 2)))
	assert.False(t, s.Add(domain.NewImageEntry("/a.png", 3)))

	require.Equal(t, 2, s.Len())

	e, ok := s.At(1)
	require.True(t, ok)
	assert.Equal(t, "/b.png", e.Key)

	i, ok := s.IndexOf("/a.png")
	require.True(t, ok)
	assert.Equal(t, 0, i)

	got, ok := s.Get("/a.png")
	require.True(t, ok)
	assert.Equal(t, int64(1), got.Size, "duplicate must not overwrite")
}

func TestLookupsOutOfRange(t *testing.T) {
	s := NewMemoryEntryStore()
	s.Add(domain.NewImageEntry("/a.png", 1))

	_, ok := s.At(-1)
	assert.False(t, ok)
	_, ok = s.At(1)
	assert.False(t, ok)
	_, ok = s.IndexOf("/missing")
	assert.False(t, ok)
	_, ok = s.Get("/missing")
	assert.False(t, ok)
}

func TestAllReturnsCopy(t *testing.T) {
	s := NewMemoryEntryStore()
	s.Add(domain.NewImageEntry("/a.png", 1))

	all := s.All()
	all[0].Name = "changed"

	e, _ := s.At(0)
	assert.Equal(t, "a.png", e.Name)
}

func TestClear(t *testing.T) {
	s := NewMemoryEntryStore()
	s.Add(domain.NewImageEntry("/a.png", 1))
	s.Clear()

	assert.Zero(t, s.Len())
	assert.True(t, s.Add(domain.NewImageEntry("/a.png", 1)))
}

func TestConcurrentAdds(t *testing.T) {
	s := NewMemoryEntryStore()

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				s.Add(domain.NewImageEntry(fmt.Sprintf("/%d/%d.png", w, i), 0))
				s.Len()
			}
		}(w)
	}
	wg.Wait()

	assert.Equal(t, 400, s.Len())
}
