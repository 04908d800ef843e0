package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const (
	minCellWidth = 6
	cellBorder   = 2
	// title, status, message and help lines around the grid
	chromeLines = 2 + 3 + 2
)

// CellSize returns the inner size of one cell for the terminal and grid
func CellSize(width, height, rows, cols int, prompt bool) (int, int) {
	if width <= 0 {
		width = 80
	}
	if height <= 0 {
		height = 24
	}
	rows, cols = max(rows, 1), max(cols, 1)

	w := (width-4)/cols - cellBorder
	if w < minCellWidth {
		w = minCellWidth
	}

	available := height - chromeLines
	if prompt {
		available -= 2
	}
	h := available/rows - cellBorder
	if h < 1 {
		h = 1
	}
	return w, h
}

func (r *Renderer) renderGrid(state ViewState) string {
	rows, cols := max(state.Page.Rows, 1), max(state.Page.Cols, 1)
	w, h := CellSize(state.Width, state.Height, rows, cols, state.InputPrompt != "")

	lines := make([]string, 0, rows)
	for row := 0; row < rows; row++ {
		cells := make([]string, 0, cols)
		for col := 0; col < cols; col++ {
			i := row*cols + col
			cell := Cell{Blank: true}
			if i < len(state.Cells) {
				cell = state.Cells[i]
			}
			cells = append(cells, r.renderCell(cell, w, h))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (r *Renderer) renderCell(cell Cell, w, h int) string {
	if cell.Blank {
		return r.styles.BlankCell.Width(w).Height(h).Render("")
	}

	head := fmt.Sprintf("#%d", cell.Index+1)
	tag := ""
	if cell.Kind != "" && cell.Kind != "image" {
		tag = " " + cell.Kind
	}

	var lines []string
	if runewidth.StringWidth(head+tag) <= w {
		lines = append(lines, r.styles.CellIndex.Render(head)+
			lipgloss.NewStyle().Foreground(lipgloss.Color(KindColor(cell.Kind))).Render(tag))
	} else {
		lines = append(lines, r.styles.CellIndex.Render(truncate(head, w)))
	}
	lines = append(lines, r.styles.CellLabel.Render(truncate(cell.Label, w)))

	switch {
	case cell.Failed:
		lines = append(lines, r.styles.CellError.Render(truncate("unreadable", w)))
	case cell.Detail != "":
		lines = append(lines, r.styles.CellDetail.Render(truncate(cell.Detail, w)))
	}

	if len(lines) > h {
		lines = lines[:h]
	}
	return r.styles.Cell.Width(w).Height(h).Render(strings.Join(lines, "\n"))
}

func truncate(s string, w int) string {
	return runewidth.Truncate(s, w, "…")
}
