package modes

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"gridgazer/internal/ui/input/types"
	"gridgazer/internal/ui/services/navigation"
)

// JumpMode reads a 1-based entry number and shows its page
type JumpMode struct {
	TextInputMode
}

func NewJumpMode(ti *textinput.Model) *JumpMode {
	return &JumpMode{
		TextInputMode: NewTextInputMode(types.ModeJump, "jump", "Go to entry: ", ti),
	}
}

func (m *JumpMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyEnter:
		return append(m.submit(ctx), types.ChangeModeAction{Mode: types.ModeNormal}), true
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			if r < '0' || r > '9' {
				return nil, true // only digits reach the input
			}
		}
	}
	return m.TextInputMode.HandleKey(msg, ctx)
}

func (m *JumpMode) submit(ctx types.Context) []types.Action {
	text := strings.TrimSpace(m.value())
	if text == "" {
		return nil
	}

	n, err := strconv.Atoi(text)
	if err != nil || n < 1 {
		return []types.Action{types.StatusAction{Message: fmt.Sprintf("Not an entry number: %s", text)}}
	}
	if length := ctx.Length(); length > 0 && n > length {
		return []types.Action{
			types.StatusAction{Message: fmt.Sprintf("Only %d entries, showing the last", length)},
			types.NavigateAction{Op: navigation.OpShow, Count: length},
		}
	}
	return []types.Action{types.NavigateAction{Op: navigation.OpShow, Count: n}}
}
