package modes

import (
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"gridgazer/internal/ui/input/types"
	"gridgazer/internal/ui/services/navigation"
)

const (
	ggTimeout   = 500 * time.Millisecond
	maxCountLen = 9
)

type NormalMode struct {
	keys        types.KeyMap
	count       string
	lastKeyWasG bool
	lastGTime   time.Time
	now         func() time.Time
}

func NewNormalMode(keys types.KeyMap) *NormalMode {
	return &NormalMode{keys: keys, now: time.Now}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	m.count = ""
	m.lastKeyWasG = false
	return nil
}

// PendingCount returns the count typed so far
func (m *NormalMode) PendingCount() (int, bool) {
	if m.count == "" {
		return 0, false
	}
	n, err := strconv.Atoi(m.count)
	return n, err == nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return []types.Action{types.QuitAction{Force: true}}, true
	}

	// Digits build the count prefix
	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 && msg.Runes[0] >= '0' && msg.Runes[0] <= '9' {
		m.lastKeyWasG = false
		if len(m.count) < maxCountLen {
			m.count += string(msg.Runes[0])
		}
		n, _ := m.PendingCount()
		return []types.Action{types.PendingCountAction{Count: n}}, true
	}

	if msg.String() == "g" {
		if m.lastKeyWasG && m.now().Sub(m.lastGTime) < ggTimeout {
			// gg - first page
			m.lastKeyWasG = false
			return m.navigate(navigation.OpFirst, false), true
		}
		// First g, wait for next key
		m.lastKeyWasG = true
		m.lastGTime = m.now()
		return nil, true
	}
	m.lastKeyWasG = false

	switch {
	case key.Matches(msg, m.keys.NextPage):
		return m.navigate(navigation.OpNext, false), true
	case key.Matches(msg, m.keys.PrevPage):
		return m.navigate(navigation.OpPrevious, false), true
	case key.Matches(msg, m.keys.NextItem):
		return m.navigate(navigation.OpNext, true), true
	case key.Matches(msg, m.keys.PrevItem):
		return m.navigate(navigation.OpPrevious, true), true
	case key.Matches(msg, m.keys.First):
		return m.navigate(navigation.OpFirst, false), true
	case key.Matches(msg, m.keys.Last):
		return m.navigate(navigation.OpLast, false), true
	case key.Matches(msg, m.keys.AlignFirst):
		return m.navigate(navigation.OpFirst, true), true
	case key.Matches(msg, m.keys.AlignLast):
		return m.navigate(navigation.OpLast, true), true
	case key.Matches(msg, m.keys.Show):
		return m.navigate(navigation.OpShow, false), true

	case key.Matches(msg, m.keys.FlyLeaves):
		n, _ := m.takeCount()
		return []types.Action{types.SetFlyLeavesAction{N: n}}, true

	case key.Matches(msg, m.keys.ToggleWrap):
		m.takeCount()
		return []types.Action{types.ToggleWrapAction{}}, true
	case key.Matches(msg, m.keys.MoreRows):
		return []types.Action{types.ResizeAction{Rows: m.countOr(1)}}, true
	case key.Matches(msg, m.keys.FewerRows):
		return []types.Action{types.ResizeAction{Rows: -m.countOr(1)}}, true
	case key.Matches(msg, m.keys.MoreCols):
		return []types.Action{types.ResizeAction{Cols: m.countOr(1)}}, true
	case key.Matches(msg, m.keys.FewerCols):
		return []types.Action{types.ResizeAction{Cols: -m.countOr(1)}}, true

	case key.Matches(msg, m.keys.Jump):
		m.takeCount()
		return []types.Action{types.ChangeModeAction{Mode: types.ModeJump}}, true
	case key.Matches(msg, m.keys.Rescan):
		m.takeCount()
		return []types.Action{types.RescanAction{}}, true
	case key.Matches(msg, m.keys.List):
		m.takeCount()
		return []types.Action{types.OpenListAction{}}, true
	case key.Matches(msg, m.keys.Help):
		m.takeCount()
		return []types.Action{types.ToggleHelpAction{}}, true
	case key.Matches(msg, m.keys.ClearCount):
		m.takeCount()
		return []types.Action{types.PendingCountAction{}}, true
	case key.Matches(msg, m.keys.Quit):
		return []types.Action{types.QuitAction{Force: false}}, true
	}

	// Any other key drops a pending count
	if _, ok := m.takeCount(); ok {
		return []types.Action{types.PendingCountAction{}}, true
	}
	return nil, false
}

func (m *NormalMode) navigate(op navigation.Op, ignoreSight bool) []types.Action {
	return []types.Action{types.NavigateAction{
		Op:          op,
		Count:       m.countOr(1),
		IgnoreSight: ignoreSight,
	}}
}

// takeCount returns and clears the pending count
func (m *NormalMode) takeCount() (int, bool) {
	n, ok := m.PendingCount()
	m.count = ""
	return n, ok
}

func (m *NormalMode) countOr(def int) int {
	n, ok := m.takeCount()
	if !ok || n < 1 {
		return def
	}
	return n
}
