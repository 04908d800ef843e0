package viewmodels

import (
	"github.com/charmbracelet/bubbles/help"

	"gridgazer/internal/domain"
	"gridgazer/internal/store"
	"gridgazer/internal/ui/input/types"
	"gridgazer/internal/ui/services/navigation"
	"gridgazer/internal/ui/state"
	"gridgazer/internal/ui/views"
)

// MetadataLookup returns cached metadata for an entry key
type MetadataLookup func(key string) (domain.Metadata, bool)

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	state   *state.AppState
	nav     *navigation.Service
	entries store.EntryStore
	lookup  MetadataLookup
	keys    types.KeyMap
	width   int
	height  int
	help    help.Model
	prompt  string
	text    string
}

// NewViewModel creates a new view model; lookup may be nil
func NewViewModel(appState *state.AppState, nav *navigation.Service, entries store.EntryStore, lookup MetadataLookup, keys types.KeyMap) *ViewModel {
	return &ViewModel{
		state:   appState,
		nav:     nav,
		entries: entries,
		lookup:  lookup,
		keys:    keys,
		help:    help.New(),
	}
}

// SetDimensions sets the current terminal dimensions
func (vm *ViewModel) SetDimensions(width, height int) {
	vm.width = width
	vm.height = height
	vm.help.Width = width
}

// SetInput sets the prompt and text of the active text mode; empty
// prompt hides the input line
func (vm *ViewModel) SetInput(prompt, text string) {
	vm.prompt = prompt
	vm.text = text
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState() views.ViewState {
	return views.ViewState{
		Width:         vm.width,
		Height:        vm.height,
		Scanning:      vm.state.Scanning,
		Found:         vm.state.Found,
		StatusMessage: vm.state.StatusMessage,
		Page:          vm.nav.Status(),
		Cells:         vm.BuildCells(),
		PendingCount:  vm.state.PendingCount,
		InputPrompt:   vm.prompt,
		InputText:     vm.text,
		HelpModel:     vm.help,
		Keys:          vm.keys,
	}
}

// BuildCells fills the grid row-major from the cursor
func (vm *ViewModel) BuildCells() []views.Cell {
	cells := make([]views.Cell, 0, vm.nav.Rows()*vm.nav.Cols())
	for row := 0; row < vm.nav.Rows(); row++ {
		for col := 0; col < vm.nav.Cols(); col++ {
			cells = append(cells, vm.cell(row, col))
		}
	}
	return cells
}

func (vm *ViewModel) cell(row, col int) views.Cell {
	index, ok := vm.nav.CellIndex(row, col)
	if !ok {
		return views.Cell{Blank: true}
	}
	entry, ok := vm.entries.At(index)
	if !ok {
		return views.Cell{Blank: true}
	}

	cell := views.Cell{
		Index: index,
		Label: entry.Label(),
		Kind:  entry.Kind.String(),
	}
	if vm.lookup != nil {
		if meta, ok := vm.lookup(entry.Key); ok {
			cell.Detail = meta.Dimensions()
			if meta.Format != "" && cell.Detail != "" {
				cell.Detail += " " + meta.Format
			}
			cell.Failed = meta.Err != nil
		}
	}
	return cell
}
