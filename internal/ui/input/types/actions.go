package types

import "gridgazer/internal/ui/services/navigation"

// Navigation actions. Count is 1-origin; the model adds the wrap setting.
type NavigateAction struct {
	Op          navigation.Op
	Count       int
	IgnoreSight bool
}

func (a NavigateAction) Type() string { return "navigate" }

type SetFlyLeavesAction struct {
	N int
}

func (a SetFlyLeavesAction) Type() string { return "set_fly_leaves" }

// Grid actions
type ToggleWrapAction struct{}

func (a ToggleWrapAction) Type() string { return "toggle_wrap" }

type ResizeAction struct {
	Rows int // change in rows
	Cols int // change in columns
}

func (a ResizeAction) Type() string { return "resize" }

// PendingCountAction reports the count typed so far, 0 when cleared
type PendingCountAction struct {
	Count int
}

func (a PendingCountAction) Type() string { return "pending_count" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

// StatusAction asks the model to show a transient message
type StatusAction struct {
	Message string
}

func (a StatusAction) Type() string { return "status" }

// Command actions
type RescanAction struct{}

func (a RescanAction) Type() string { return "rescan" }

type OpenListAction struct{}

func (a OpenListAction) Type() string { return "open_list" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
