package modes

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gridgazer/internal/ui/input/types"
	"gridgazer/internal/ui/services/navigation"
)

type fixedLength int

func (f fixedLength) Length() int { return int(f) }

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m types.ModeHandler, keys ...tea.KeyMsg) []types.Action {
	t.Helper()
	var out []types.Action
	for _, k := range keys {
		actions, _ := m.HandleKey(k, fixedLength(100))
		out = append(out, actions...)
	}
	return out
}

func TestNormalModeNavigation(t *testing.T) {
	tests := []struct {
		name string
		keys []tea.KeyMsg
		want types.Action
	}{
		{"next page", []tea.KeyMsg{runes("l")}, types.NavigateAction{Op: navigation.OpNext, Count: 1}},
		{"next page by space", []tea.KeyMsg{{Type: tea.KeySpace, Runes: []rune{' '}}}, types.NavigateAction{Op: navigation.OpNext, Count: 1}},
		{"previous page", []tea.KeyMsg{runes("h")}, types.NavigateAction{Op: navigation.OpPrevious, Count: 1}},
		{"next item", []tea.KeyMsg{runes("j")}, types.NavigateAction{Op: navigation.OpNext, Count: 1, IgnoreSight: true}},
		{"previous item", []tea.KeyMsg{{Type: tea.KeyUp}}, types.NavigateAction{Op: navigation.OpPrevious, Count: 1, IgnoreSight: true}},
		{"last page", []tea.KeyMsg{runes("G")}, types.NavigateAction{Op: navigation.OpLast, Count: 1}},
		{"first page", []tea.KeyMsg{{Type: tea.KeyHome}}, types.NavigateAction{Op: navigation.OpFirst, Count: 1}},
		{"align entry", []tea.KeyMsg{runes("i")}, types.NavigateAction{Op: navigation.OpFirst, Count: 1, IgnoreSight: true}},
		{"align from end", []tea.KeyMsg{runes("I")}, types.NavigateAction{Op: navigation.OpLast, Count: 1, IgnoreSight: true}},
		{"counted page", []tea.KeyMsg{runes("1"), runes("2"), runes("l")}, types.NavigateAction{Op: navigation.OpNext, Count: 12}},
		{"counted show", []tea.KeyMsg{runes("7"), runes("o")}, types.NavigateAction{Op: navigation.OpShow, Count: 7}},
		{"zero count means one", []tea.KeyMsg{runes("0"), runes("j")}, types.NavigateAction{Op: navigation.OpNext, Count: 1, IgnoreSight: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewNormalMode(types.DefaultKeyMap())
			actions := press(t, m, tt.keys...)
			require.NotEmpty(t, actions)
			assert.Equal(t, tt.want, actions[len(actions)-1])

			_, pending := m.PendingCount()
			assert.False(t, pending, "count is consumed by the command")
		})
	}
}

func TestNormalModeCountPrefix(t *testing.T) {
	m := NewNormalMode(types.DefaultKeyMap())

	actions := press(t, m, runes("4"))
	assert.Equal(t, []types.Action{types.PendingCountAction{Count: 4}}, actions)

	actions = press(t, m, runes("2"))
	assert.Equal(t, []types.Action{types.PendingCountAction{Count: 42}}, actions)

	n, ok := m.PendingCount()
	assert.True(t, ok)
	assert.Equal(t, 42, n)

	actions = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, []types.Action{types.PendingCountAction{}}, actions)
	_, ok = m.PendingCount()
	assert.False(t, ok)
}

func TestNormalModeCountIsCapped(t *testing.T) {
	m := NewNormalMode(types.DefaultKeyMap())
	for i := 0; i < 20; i++ {
		press(t, m, runes("9"))
	}
	n, ok := m.PendingCount()
	assert.True(t, ok)
	assert.Equal(t, 999999999, n)
}

func TestNormalModeUnknownKeyDropsCount(t *testing.T) {
	m := NewNormalMode(types.DefaultKeyMap())

	actions, consumed := m.HandleKey(runes("x"), fixedLength(0))
	assert.False(t, consumed)
	assert.Empty(t, actions)

	press(t, m, runes("3"))
	actions, consumed = m.HandleKey(runes("x"), fixedLength(0))
	assert.True(t, consumed)
	assert.Equal(t, []types.Action{types.PendingCountAction{}}, actions)
}

func TestNormalModeFlyLeaves(t *testing.T) {
	m := NewNormalMode(types.DefaultKeyMap())
	assert.Equal(t, []types.Action{types.SetFlyLeavesAction{N: 0}}, press(t, m, runes("f")))

	actions := press(t, m, runes("2"), runes("f"))
	assert.Equal(t, types.SetFlyLeavesAction{N: 2}, actions[len(actions)-1])
}

func TestNormalModeResize(t *testing.T) {
	m := NewNormalMode(types.DefaultKeyMap())
	assert.Equal(t, []types.Action{types.ResizeAction{Rows: 1}}, press(t, m, runes("]")))
	assert.Equal(t, []types.Action{types.ResizeAction{Rows: -1}}, press(t, m, runes("[")))
	assert.Equal(t, []types.Action{types.ResizeAction{Cols: 1}}, press(t, m, runes("+")))
	assert.Equal(t, []types.Action{types.ResizeAction{Cols: -1}}, press(t, m, runes("-")))

	actions := press(t, m, runes("3"), runes("-"))
	assert.Equal(t, types.ResizeAction{Cols: -3}, actions[len(actions)-1])
}

func TestNormalModeCommands(t *testing.T) {
	tests := []struct {
		key  tea.KeyMsg
		want types.Action
	}{
		{runes("w"), types.ToggleWrapAction{}},
		{runes(":"), types.ChangeModeAction{Mode: types.ModeJump}},
		{runes("r"), types.RescanAction{}},
		{runes("L"), types.OpenListAction{}},
		{runes("?"), types.ToggleHelpAction{}},
		{runes("q"), types.QuitAction{}},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, types.QuitAction{Force: true}},
	}

	for _, tt := range tests {
		t.Run(tt.key.String(), func(t *testing.T) {
			m := NewNormalMode(types.DefaultKeyMap())
			actions, consumed := m.HandleKey(tt.key, fixedLength(0))
			assert.True(t, consumed)
			assert.Equal(t, []types.Action{tt.want}, actions)
		})
	}
}

func TestNormalModeDoubleG(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	m := NewNormalMode(types.DefaultKeyMap())
	m.now = func() time.Time { return now }

	actions, consumed := m.HandleKey(runes("g"), fixedLength(10))
	assert.True(t, consumed)
	assert.Empty(t, actions)

	now = now.Add(100 * time.Millisecond)
	actions = press(t, m, runes("g"))
	assert.Equal(t, []types.Action{types.NavigateAction{Op: navigation.OpFirst, Count: 1}}, actions)

	// Too slow: the second g starts over
	press(t, m, runes("g"))
	now = now.Add(time.Second)
	assert.Empty(t, press(t, m, runes("g")))

	// A count survives the first g
	m = NewNormalMode(types.DefaultKeyMap())
	m.now = func() time.Time { return now }
	actions = press(t, m, runes("3"), runes("g"), runes("g"))
	assert.Equal(t, types.NavigateAction{Op: navigation.OpFirst, Count: 3}, actions[len(actions)-1])
}
