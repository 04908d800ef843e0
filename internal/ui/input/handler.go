package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"gridgazer/internal/ui/input/modes"
	"gridgazer/internal/ui/input/types"
)

const jumpCharLimit = 9

type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	normal      *modes.NormalMode
	textInput   *textinput.Model // Shared text input for text modes
}

func New(keys types.KeyMap) *Handler {
	ti := textinput.New()
	ti.CharLimit = jumpCharLimit

	h := &Handler{
		currentMode: types.ModeNormal,
		textInput:   &ti,
		modes:       make(map[types.Mode]types.ModeHandler),
		normal:      modes.NewNormalMode(keys),
	}

	h.modes[types.ModeNormal] = h.normal
	h.modes[types.ModeJump] = modes.NewJumpMode(h.textInput)

	return h
}

func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)
	if !consumed && !h.isTextMode(h.currentMode) {
		return nil, nil
	}

	var cmd tea.Cmd
	var allActions []types.Action

	for _, action := range actions {
		changeMode, ok := action.(types.ChangeModeAction)
		if !ok {
			allActions = append(allActions, action)
			continue
		}

		allActions = append(allActions, h.modes[h.currentMode].Exit(ctx)...)
		h.currentMode = changeMode.Mode
		if next := h.modes[h.currentMode]; next != nil {
			allActions = append(allActions, next.Enter(ctx)...)
		}
		if h.isTextMode(h.currentMode) {
			cmd = textinput.Blink
		}
		allActions = append(allActions, action)
	}

	// Keys the text mode did not claim go to the input itself
	if h.isTextMode(h.currentMode) && !consumed {
		var textCmd tea.Cmd
		*h.textInput, textCmd = h.textInput.Update(msg)
		cmd = textCmd
		allActions = append(allActions, types.UpdateTextAction{Text: h.textInput.Value()})
	}

	return allActions, cmd
}

// Update handles non-keyboard messages for text input
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	if h.isTextMode(h.currentMode) {
		var cmd tea.Cmd
		*h.textInput, cmd = h.textInput.Update(msg)
		return cmd
	}
	return nil
}

// CurrentMode returns the active input mode
func (h *Handler) CurrentMode() types.Mode {
	if h == nil {
		return types.ModeNormal
	}
	return h.currentMode
}

// Prompt returns the label for the active text mode
func (h *Handler) Prompt() string {
	if tm, ok := h.modes[h.currentMode].(interface{ Prompt() string }); ok && h.isTextMode(h.currentMode) {
		return tm.Prompt()
	}
	return ""
}

// TextInput returns the shared input while a text mode is active
func (h *Handler) TextInput() *textinput.Model {
	if h.isTextMode(h.currentMode) {
		return h.textInput
	}
	return nil
}

// PendingCount returns the count prefix typed in normal mode
func (h *Handler) PendingCount() (int, bool) {
	return h.normal.PendingCount()
}

func (h *Handler) isTextMode(mode types.Mode) bool {
	return mode == types.ModeJump
}

func (h *Handler) Reset() {
	h.normal.Exit(nil)
	h.currentMode = types.ModeNormal
	h.textInput.Reset()
	h.textInput.Blur()
}
