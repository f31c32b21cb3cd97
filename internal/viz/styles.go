package viz

import "github.com/charmbracelet/lipgloss"

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)

	// SummaryTitle and SummaryValue dress the post-render report in the CLI.
	SummaryTitle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	SummaryValue = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
)
