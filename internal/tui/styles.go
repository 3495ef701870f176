package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	statusStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	selectedStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5"))
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
	toastStyle      = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1)
)
