package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	statusStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)

	alertStyle        = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	selectedStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	patientMsgStyle   = lipgloss.NewStyle()
	ownMsgStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	suggestionStyle   = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("11"))
	paneStyle         = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1)
	focusedPaneStyle  = paneStyle.BorderForeground(lipgloss.Color("12"))
	patientsPaneWidth = 32
)
