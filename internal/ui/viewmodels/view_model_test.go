package viewmodels

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gridgazer/internal/domain"
	"gridgazer/internal/paginator"
	"gridgazer/internal/store"
	"gridgazer/internal/ui/input/types"
	"gridgazer/internal/ui/services/navigation"
	"gridgazer/internal/ui/state"
	"gridgazer/internal/ui/views"
)

func setup(t *testing.T, n, rows, cols int) (*ViewModel, *navigation.Service) {
	t.Helper()
	entries := store.NewMemoryEntryStore()
	for i := 0; i < n; i++ {
		entries.Add(domain.NewImageEntry(fmt.Sprintf("/pics/%02d.png", i), 1))
	}
	nav := navigation.NewService(nil, rows, cols, false)
	nav.SetLength(n)
	_, err := nav.Apply(navigation.Command{Op: navigation.OpFirst, Paging: paginator.Paging{Count: 1}})
	require.NoError(t, err)

	lookup := func(key string) (domain.Metadata, bool) {
		switch key {
		case "/pics/01.png":
			return domain.Metadata{Width: 4, Height: 3, Format: "png"}, true
		case "/pics/02.png":
			return domain.Metadata{Err: errors.New("bad header")}, true
		}
		return domain.Metadata{}, false
	}
	return NewViewModel(state.NewAppState(), nav, entries, lookup, types.DefaultKeyMap()), nav
}

func TestBuildCellsWithFlyLeaves(t *testing.T) {
	vm, nav := setup(t, 3, 2, 2)
	_, err := nav.Apply(navigation.Command{Op: navigation.OpSetFlyLeaves, N: 1})
	require.NoError(t, err)

	cells := vm.BuildCells()
	require.Len(t, cells, 4)
	assert.True(t, cells[0].Blank, "fly leaf")
	assert.Equal(t, views.Cell{Index: 0, Label: "00.png", Kind: "image"}, cells[1])
	assert.Equal(t, views.Cell{Index: 1, Label: "01.png", Kind: "image", Detail: "4x3 png"}, cells[2])
	assert.Equal(t, views.Cell{Index: 2, Label: "02.png", Kind: "image", Failed: true}, cells[3])
}

func TestBuildCellsPastTheEnd(t *testing.T) {
	vm, nav := setup(t, 5, 1, 3)
	_, err := nav.Apply(navigation.Command{Op: navigation.OpLast, Paging: paginator.Paging{Count: 1}})
	require.NoError(t, err)

	cells := vm.BuildCells()
	require.Len(t, cells, 3)
	assert.Equal(t, 3, cells[0].Index)
	assert.Equal(t, 4, cells[1].Index)
	assert.True(t, cells[2].Blank)
}

func TestBuildViewState(t *testing.T) {
	vm, _ := setup(t, 5, 1, 3)
	vm.SetDimensions(120, 30)
	vm.SetInput("Go to entry: ", "4")
	vm.state.PendingCount = 2
	vm.state.Scanning = true

	vs := vm.BuildViewState()
	assert.Equal(t, 120, vs.Width)
	assert.Equal(t, 30, vs.Height)
	assert.Equal(t, "Go to entry: ", vs.InputPrompt)
	assert.Equal(t, "4", vs.InputText)
	assert.Equal(t, 2, vs.PendingCount)
	assert.True(t, vs.Scanning)
	assert.Equal(t, 5, vs.Page.Length)
	assert.Len(t, vs.Cells, 3)
}
