package tui

import "github.com/charmbracelet/lipgloss"

var (
	docStyle = lipgloss.NewStyle().Padding(1, 2)

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Bold(true)
)

func (m Model) View() string {
	out := m.list.View()
	if m.err != nil {
		out += "\n" + errStyle.Render("error: "+m.err.Error())
	}
	return docStyle.Render(out)
}
