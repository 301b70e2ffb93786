package picker

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).MarginTop(1)
	cursorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	previewStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("63")).Padding(0, 1)
)

// View renders the module list, a live preview and the key help.
func (m Model) View() string {
	sections := []string{titleStyle.Render("powerline • modules")}

	var lines []string
	for i, it := range m.items {
		check := "[ ]"
		if m.selection[it.name] {
			check = "[x]"
		}
		line := fmt.Sprintf("%s %-9s %s", check, it.name, mutedStyle.Render(it.description))
		if i == m.cursor {
			line = cursorStyle.Render("›") + " " + line
		} else {
			line = "  " + line
		}
		lines = append(lines, line)
	}
	sections = append(sections, strings.Join(lines, "\n"))

	if m.preview != nil {
		sections = append(sections, sectionStyle.Render("Preview"), previewStyle.Render(m.preview(m.Selection())))
	}

	sections = append(sections, "", m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
