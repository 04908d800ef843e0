package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"gridgazer/internal/domain"
	"gridgazer/internal/ui/input/types"
)

// Cell is one grid slot, row-major
type Cell struct {
	Blank  bool // fly leaf or past the end
	Index  int
	Label  string
	Kind   string
	Detail string
	Failed bool
}

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width         int
	Height        int
	Scanning      bool
	Found         int
	StatusMessage string
	Page          domain.PageStatus
	Cells         []Cell
	PendingCount  int
	InputPrompt   string
	InputText     string
	HelpModel     help.Model
	Keys          types.KeyMap
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.renderTitle(state))
	content.WriteString("\n\n")

	if state.InputPrompt != "" {
		content.WriteString(r.styles.Prompt.Render(state.InputPrompt))
		content.WriteString(state.InputText)
		content.WriteString("\n\n")
	}

	// Main content
	switch {
	case state.Page.Length == 0 && state.Scanning:
		// Don't show duplicate scanning message - it's already in the title
		content.WriteString(r.styles.Dim.Render("Looking for images..."))
	case state.Page.Length == 0:
		content.WriteString(r.styles.Dim.Render("No images found. Press r to rescan."))
	default:
		content.WriteString(r.renderGrid(state))
	}
	content.WriteString("\n")

	content.WriteString(r.styles.Status.Render(FormatStatus(state.Page, 0)))
	if state.PendingCount > 0 {
		content.WriteString(r.styles.Status.Render(" · "))
		content.WriteString(r.styles.Count.Render(fmt.Sprintf("count %d", state.PendingCount)))
	}
	content.WriteString("\n")

	if state.StatusMessage != "" {
		style := r.styles.StatusMessage
		if strings.HasPrefix(state.StatusMessage, "Error") {
			style = r.styles.StatusError
		}
		content.WriteString(style.Render(state.StatusMessage))
	}

	helpText := r.styles.Help.Render(state.HelpModel.View(state.Keys))

	// Push the help to the bottom
	currentLines := strings.Count(content.String(), "\n") + 1
	availableLines := state.Height - 2 // Account for container padding
	if paddingNeeded := availableLines - currentLines - 1; paddingNeeded > 0 {
		content.WriteString(strings.Repeat("\n", paddingNeeded))
	}
	content.WriteString("\n")
	content.WriteString(helpText)

	mainStyle := r.styles.Main
	if state.Height > 0 {
		mainStyle = mainStyle.MaxHeight(state.Height)
	}
	return mainStyle.Render(content.String())
}

func (r *Renderer) renderTitle(state ViewState) string {
	logo := r.styles.Title.Render("gridgazer")
	if !state.Scanning {
		return logo
	}

	spinner := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
	frame := int(time.Now().UnixMilli()/80) % len(spinner)
	right := r.styles.Scan.Render(fmt.Sprintf("%s Scanning %d", spinner[frame], state.Found))

	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80 // Default terminal width
	}
	availableWidth := termWidth - 4 // Account for main container padding
	paddingWidth := availableWidth - lipgloss.Width(logo) - lipgloss.Width(right)
	if paddingWidth > 0 {
		return logo + strings.Repeat(" ", paddingWidth) + right
	}
	return logo + "  " + right
}

// FormatStatus renders the cursor summary line
func FormatStatus(page domain.PageStatus, count int) string {
	wrap := "off"
	if page.Wrap {
		wrap = "on"
	}

	var parts []string
	if page.Positioned && page.FirstIndex >= 0 {
		parts = append(parts,
			fmt.Sprintf("page %d/%d", page.Level+1, page.Levels),
			fmt.Sprintf("entries %d–%d of %d", page.FirstIndex+1, page.LastIndex+1, page.Length),
		)
	} else {
		parts = append(parts, fmt.Sprintf("page -/%d", page.Levels), "no entries")
	}
	parts = append(parts,
		fmt.Sprintf("fly %d", page.FlyLeaves),
		"wrap "+wrap,
		fmt.Sprintf("%d×%d", page.Rows, page.Cols),
	)
	if count > 0 {
		parts = append(parts, fmt.Sprintf("count %d", count))
	}
	return strings.Join(parts, " · ")
}
