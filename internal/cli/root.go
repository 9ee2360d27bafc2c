package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lifelens/lifelens/internal/models"
	"github.com/lifelens/lifelens/internal/storage"
)

type Context struct {
	Store storage.Provider
}

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true)

	healthStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212"))

	planetStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("114"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))
)

// RenderInsight formats a coach insight for terminal output.
func RenderInsight(insight models.CoachInsight) string {
	var b strings.Builder

	header := fmt.Sprintf("Coach insight (%s)", insight.Type)
	b.WriteString(titleStyle.Render(header) + "\n")
	b.WriteString(insight.Text + "\n\n")
	b.WriteString(healthStyle.Render("health: ") + insight.Correlations.Health + "\n")
	b.WriteString(planetStyle.Render("planet: ") + insight.Correlations.Planet + "\n")

	return b.String()
}

// RenderMission formats the mission progress for terminal output.
func RenderMission(m models.MissionState) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.Title) + "\n")

	status := fmt.Sprintf("%d/%d qualifying days this week", m.CurrentCount, m.TargetCount)
	if m.Completed {
		status += " — completed!"
	}
	b.WriteString(status + "\n")
	b.WriteString(labelStyle.Render("lifetime energy gained: ") + valueStyle.Render(fmt.Sprintf("%.0f", m.TotalEnergyGained)) + "\n")
	b.WriteString(labelStyle.Render("lifetime CO2 saved:     ") + valueStyle.Render(fmt.Sprintf("%.1f kg", m.TotalCO2Saved)) + "\n")

	return b.String()
}
