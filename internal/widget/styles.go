package widget

import "github.com/charmbracelet/lipgloss"

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212")).
			Padding(0, 1)

	toggleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")).
			Bold(true)

	userLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)

	assistantLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("135")).
				Bold(true)

	fallbackStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	welcomeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")).
			Italic(true)

	typingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("135"))

	helpStyle = lipgloss.NewStyle().
			Faint(true)
)
