package types

import "github.com/charmbracelet/bubbles/key"

// KeyMap lists every binding of normal mode; it also feeds bubbles/help
type KeyMap struct {
	NextPage   key.Binding
	PrevPage   key.Binding
	NextItem   key.Binding
	PrevItem   key.Binding
	First      key.Binding
	Last       key.Binding
	AlignFirst key.Binding
	AlignLast  key.Binding
	Show       key.Binding
	FlyLeaves  key.Binding
	ToggleWrap key.Binding
	MoreRows   key.Binding
	FewerRows  key.Binding
	MoreCols   key.Binding
	FewerCols  key.Binding
	Jump       key.Binding
	Rescan     key.Binding
	List       key.Binding
	Help       key.Binding
	ClearCount key.Binding
	Quit       key.Binding
	ForceQuit  key.Binding
}

// DefaultKeyMap returns the stock bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextPage:   key.NewBinding(key.WithKeys("l", "right", "pgdown", " "), key.WithHelp("l/→", "next page")),
		PrevPage:   key.NewBinding(key.WithKeys("h", "left", "pgup", "b"), key.WithHelp("h/←", "previous page")),
		NextItem:   key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "next entry")),
		PrevItem:   key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "previous entry")),
		First:      key.NewBinding(key.WithKeys("home"), key.WithHelp("gg", "first page (N-th with count)")),
		Last:       key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "last page (N-th from end)")),
		AlignFirst: key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "put entry N on the first cell")),
		AlignLast:  key.NewBinding(key.WithKeys("I"), key.WithHelp("I", "put entry N from the end on the first cell")),
		Show:       key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "show entry N")),
		FlyLeaves:  key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "set N blank leading cells")),
		ToggleWrap: key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "toggle wrap")),
		MoreRows:   key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "more rows")),
		FewerRows:  key.NewBinding(key.WithKeys("["), key.WithHelp("[", "fewer rows")),
		MoreCols:   key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "more columns")),
		FewerCols:  key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "fewer columns")),
		Jump:       key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "jump to entry")),
		Rescan:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "rescan")),
		List:       key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "list entries")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		ClearCount: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear count")),
		Quit:       key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit:  key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "force quit")),
	}
}

// ShortHelp is shown under the grid
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextPage, k.PrevPage, k.NextItem, k.Jump, k.Help, k.Quit}
}

// FullHelp groups the bindings for the help pager
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextPage, k.PrevPage, k.NextItem, k.PrevItem, k.First, k.Last},
		{k.AlignFirst, k.AlignLast, k.Show, k.FlyLeaves, k.Jump},
		{k.ToggleWrap, k.MoreRows, k.FewerRows, k.MoreCols, k.FewerCols},
		{k.Rescan, k.List, k.Help, k.ClearCount, k.Quit, k.ForceQuit},
	}
}

// HelpSections names the FullHelp groups
func (k KeyMap) HelpSections() []string {
	return []string{"Paging", "Entries and alignment", "Grid", "Other"}
}
