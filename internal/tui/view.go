package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lifelens/lifelens/internal/models"
)

func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderTabs() + "\n\n")

	if m.loadErr != nil {
		b.WriteString(dangerStyle.Render(fmt.Sprintf("Failed to load data: %v", m.loadErr)) + "\n")
		return docStyle.Render(b.String())
	}

	switch m.active {
	case tabDashboard:
		b.WriteString(m.renderDashboard())
	case tabMission:
		b.WriteString(m.renderMission())
	case tabCoach:
		b.WriteString(m.renderCoach())
	case tabProfile:
		b.WriteString(m.renderProfile())
	}

	b.WriteString("\n" + m.help.View(m.keys))
	return docStyle.Render(b.String())
}

func (m *Model) renderTabs() string {
	rendered := make([]string, 0, int(tabCount))
	for i, name := range tabNames {
		if tab(i) == m.active {
			rendered = append(rendered, activeTabStyle.Render(name))
		} else {
			rendered = append(rendered, inactiveTabStyle.Render(name))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m *Model) renderDashboard() string {
	if m.summary.EntryCount == 0 {
		return mutedStyle.Render("No entries yet. Run 'lifelens checkin' to log your first day.") + "\n"
	}

	var b strings.Builder
	b.WriteString(headingStyle.Render(fmt.Sprintf("Day %d of your journey", m.summary.JourneyDay)) + "\n\n")
	b.WriteString(fmt.Sprintf("Wellness score:  %d/100\n", m.summary.LatestScore))
	b.WriteString(fmt.Sprintf("Sustainability:  %d/100\n", m.summary.SustainabilityScore))
	b.WriteString(fmt.Sprintf("Entries logged:  %d\n\n", m.summary.EntryCount))

	b.WriteString(headingStyle.Render("Recent trend") + "\n")
	for _, p := range m.summary.Trend {
		bar := strings.Repeat("█", p.Wellness/5)
		b.WriteString(fmt.Sprintf("  %-4s %s %d\n", p.Day, bar, p.Wellness))
	}
	b.WriteString("\n")

	if m.summary.Projection.Positive {
		b.WriteString(ecoStyle.Render(m.summary.Projection.Text) + "\n")
	} else {
		b.WriteString(warningStyle.Render(m.summary.Projection.Text) + "\n")
	}
	return b.String()
}

func (m *Model) renderMission() string {
	var b strings.Builder
	b.WriteString(headingStyle.Render(m.mission.Title) + "\n\n")

	filled := m.mission.CurrentCount
	if filled > m.mission.TargetCount {
		filled = m.mission.TargetCount
	}
	progress := strings.Repeat("●", filled) + strings.Repeat("○", m.mission.TargetCount-filled)
	b.WriteString(fmt.Sprintf("Progress: %s  (%d/%d)\n", progress, m.mission.CurrentCount, m.mission.TargetCount))
	if m.mission.Completed {
		b.WriteString(ecoStyle.Render("Mission completed this week!") + "\n")
	}
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Lifetime energy gained:  %.0f\n", m.mission.TotalEnergyGained))
	b.WriteString(fmt.Sprintf("Lifetime CO2 saved:      %.1f kg\n", m.mission.TotalCO2Saved))
	return b.String()
}

func (m *Model) renderCoach() string {
	var b strings.Builder

	style := headingStyle
	switch m.insight.Type {
	case models.InsightPlanet:
		style = ecoStyle
	case models.InsightHealth:
		style = warningStyle
	}
	b.WriteString(style.Render(fmt.Sprintf("Coach insight (%s)", m.insight.Type)) + "\n\n")
	b.WriteString(m.insight.Text + "\n\n")
	b.WriteString(mutedStyle.Render("health: ") + m.insight.Correlations.Health + "\n")
	b.WriteString(mutedStyle.Render("planet: ") + m.insight.Correlations.Planet + "\n")
	return b.String()
}

func (m *Model) renderProfile() string {
	var b strings.Builder
	b.WriteString(headingStyle.Render("Profile") + "\n\n")
	b.WriteString(fmt.Sprintf("Name:       %s\n", m.profile.Name))
	b.WriteString(fmt.Sprintf("Onboarded:  %v\n", m.profile.OnboardingCompleted))
	b.WriteString("\n" + mutedStyle.Render(fmt.Sprintf("Store: %s", m.store.GetConfigPath())) + "\n")
	return b.String()
}
