package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gridgazer/internal/domain"
	"gridgazer/internal/ui/input/types"
)

// HelpContent renders the key reference shown in the pager
func HelpContent(keys types.KeyMap) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var help strings.Builder

	help.WriteString(titleStyle.Render("gridgazer help"))
	help.WriteString("\n")

	sections := keys.HelpSections()
	for i, group := range keys.FullHelp() {
		if i < len(sections) {
			help.WriteString(sectionStyle.Render(sections[i]))
			help.WriteString("\n")
		}
		for _, binding := range group {
			h := binding.Help()
			// Pad before styling so the columns line up
			help.WriteString(fmt.Sprintf("  %s  %s\n",
				keyStyle.Render(fmt.Sprintf("%-8s", h.Key)),
				descStyle.Render(h.Desc)))
		}
		help.WriteString("\n")
	}

	noteStyle := lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241"))
	help.WriteString(noteStyle.Render("  Type a number before a command to repeat it or pick entry N, e.g. 3l, 12o, 2f."))
	help.WriteString("\n")

	return help.String()
}

// ListingContent renders every entry, one per line, marking the ones on
// the current page
func ListingContent(entries []domain.Entry, page domain.PageStatus, lookup func(key string) (domain.Metadata, bool)) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%d entries, page %d of %d\n\n", len(entries), page.Level+1, page.Levels)
	width := len(fmt.Sprint(len(entries)))

	for i, entry := range entries {
		marker := " "
		if page.Positioned && i >= page.FirstIndex && i <= page.LastIndex {
			marker = ">"
		}

		detail := ""
		if lookup != nil {
			if meta, ok := lookup(entry.Key); ok {
				detail = meta.Dimensions()
			}
		}

		fmt.Fprintf(&b, "%s %*d  %-7s  %-11s  %s\n", marker, width, i+1, entry.Kind, detail, entry.Label())
	}
	return b.String()
}
