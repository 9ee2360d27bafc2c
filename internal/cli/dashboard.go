package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/lifelens/lifelens/internal/coach"
	"github.com/lifelens/lifelens/internal/report"
)

type DashboardCmd struct{}

func (c *DashboardCmd) Run(ctx *Context) error {
	entries, err := ctx.Store.GetEntries()
	if err != nil {
		return fmt.Errorf("failed to read entries: %w", err)
	}
	profile, err := ctx.Store.GetUserProfile()
	if err != nil {
		return fmt.Errorf("failed to read profile: %w", err)
	}

	summary := report.Summarize(entries, time.Now())
	if summary.EntryCount == 0 {
		fmt.Println("No entries yet. Run 'lifelens checkin' to log your first day.")
		return nil
	}

	fmt.Println(titleStyle.Render(fmt.Sprintf("%s — day %d of your journey", profile.Name, summary.JourneyDay)))
	fmt.Println()
	fmt.Printf("%s %s\n", labelStyle.Render("wellness score:      "), valueStyle.Render(fmt.Sprintf("%d/100", summary.LatestScore)))
	fmt.Printf("%s %s\n", labelStyle.Render("sustainability:      "), valueStyle.Render(fmt.Sprintf("%d/100", summary.SustainabilityScore)))
	fmt.Printf("%s %s\n", labelStyle.Render("entries logged:      "), valueStyle.Render(fmt.Sprintf("%d", summary.EntryCount)))
	checkedIn := "not yet today"
	if summary.CheckedInToday {
		checkedIn = "done for today"
	}
	fmt.Printf("%s %s\n", labelStyle.Render("check-in:            "), checkedIn)
	fmt.Println()

	fmt.Println(titleStyle.Render("Recent trend"))
	for _, p := range summary.Trend {
		bar := strings.Repeat("█", p.Wellness/5)
		fmt.Printf("  %-4s %s %d  (%.1f kg CO2)\n", p.Day, bar, p.Wellness, p.CO2)
	}
	fmt.Println()

	if summary.Projection.Positive {
		fmt.Println(planetStyle.Render(summary.Projection.Text))
	} else {
		fmt.Println(warnStyle.Render(summary.Projection.Text))
	}
	fmt.Println()

	fmt.Println(RenderInsight(coach.Generate(entries)))
	return nil
}
