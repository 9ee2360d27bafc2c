package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"github.com/lifelens/lifelens/internal/coach"
	"github.com/lifelens/lifelens/internal/constants"
	"github.com/lifelens/lifelens/internal/logger"
	"github.com/lifelens/lifelens/internal/mission"
	"github.com/lifelens/lifelens/internal/models"
	"github.com/lifelens/lifelens/internal/validation"
	"github.com/lifelens/lifelens/internal/wellness"
)

type CheckInCmd struct {
	Sleep     float64 `short:"s" help:"Hours of sleep self-report (0-10)." default:"-1"`
	Energy    float64 `short:"e" help:"Energy self-report (0-10)." default:"-1"`
	Mood      float64 `short:"m" help:"Mood self-report (0-10)." default:"-1"`
	Transport string  `short:"t" help:"Transport mode (walk|cycle|public|car)."`
	Date      string  `short:"d" help:"Date to record (YYYY-MM-DD), defaults to today."`
}

func (c *CheckInCmd) Validate() error {
	if c.Sleep >= 0 {
		if err := validation.ValidateRating("sleep", c.Sleep); err != nil {
			return err
		}
	}
	if c.Energy >= 0 {
		if err := validation.ValidateRating("energy", c.Energy); err != nil {
			return err
		}
	}
	if c.Mood >= 0 {
		if err := validation.ValidateRating("mood", c.Mood); err != nil {
			return err
		}
	}
	if c.Transport != "" {
		if _, err := validation.ValidateTransport(c.Transport); err != nil {
			return err
		}
	}
	if c.Date != "" {
		if err := validation.ValidateDate(c.Date); err != nil {
			return err
		}
	}
	return nil
}

func (c *CheckInCmd) Run(ctx *Context) error {
	if c.Sleep < 0 || c.Energy < 0 || c.Mood < 0 || c.Transport == "" {
		if err := c.promptMissing(); err != nil {
			return err
		}
	}

	transport, err := validation.ValidateTransport(c.Transport)
	if err != nil {
		return err
	}

	now := time.Now()
	date := c.Date
	timestamp := now
	if date == "" {
		date = now.Format(constants.DateFormat)
	} else if date != now.Format(constants.DateFormat) {
		// Backfilled days get a mid-day timestamp so ordering stays by date.
		d, err := time.ParseInLocation(constants.DateFormat, date, time.Local)
		if err != nil {
			return fmt.Errorf("invalid date %q: %w", date, err)
		}
		timestamp = d.Add(12 * time.Hour)
	}

	entry := models.DailyEntry{
		ID:            uuid.NewString(),
		Date:          date,
		Timestamp:     timestamp.UnixMilli(),
		Sleep:         c.Sleep,
		Energy:        c.Energy,
		Mood:          c.Mood,
		Transport:     transport,
		WellnessScore: wellness.Score(c.Sleep, c.Energy, c.Mood),
		CO2Emitted:    wellness.DailyCO2(transport),
	}

	// Entry and mission are two sequential writes, not one transaction.
	if err := ctx.Store.SaveEntry(entry); err != nil {
		return fmt.Errorf("failed to save entry: %w", err)
	}

	state, err := ctx.Store.GetMissionState()
	if err != nil {
		return fmt.Errorf("failed to read mission: %w", err)
	}
	state = mission.UpdateProgress(state, transport, now)
	if err := ctx.Store.SaveMissionState(state); err != nil {
		return fmt.Errorf("failed to save mission: %w", err)
	}

	logger.Info("Check-in recorded", "date", entry.Date, "transport", entry.Transport, "score", entry.WellnessScore)

	fmt.Printf("Checked in for %s: wellness %d/100, %s kg CO2\n\n",
		entry.Date, entry.WellnessScore, strconv.FormatFloat(entry.CO2Emitted, 'f', -1, 64))

	entries, err := ctx.Store.GetEntries()
	if err != nil {
		return fmt.Errorf("failed to read entries: %w", err)
	}
	fmt.Println(RenderInsight(coach.Generate(entries)))
	fmt.Println(RenderMission(state))
	return nil
}

// promptMissing collects any values not supplied as flags via an interactive
// form.
func (c *CheckInCmd) promptMissing() error {
	var fields []huh.Field

	ratingInput := func(title string, dest *float64) huh.Field {
		value := ""
		return huh.NewInput().
			Title(title).
			Description("0-10").
			Value(&value).
			Validate(func(s string) error {
				v, err := strconv.ParseFloat(s, 64)
				if err != nil {
					return fmt.Errorf("enter a number between 0 and 10")
				}
				if err := validation.ValidateRating(title, v); err != nil {
					return err
				}
				*dest = v
				return nil
			})
	}

	if c.Sleep < 0 {
		fields = append(fields, ratingInput("Sleep", &c.Sleep))
	}
	if c.Energy < 0 {
		fields = append(fields, ratingInput("Energy", &c.Energy))
	}
	if c.Mood < 0 {
		fields = append(fields, ratingInput("Mood", &c.Mood))
	}
	if c.Transport == "" {
		fields = append(fields, huh.NewSelect[string]().
			Title("Transport").
			Options(
				huh.NewOption("Walk", "walk"),
				huh.NewOption("Cycle", "cycle"),
				huh.NewOption("Public transit", "public"),
				huh.NewOption("Car", "car"),
			).
			Value(&c.Transport))
	}

	return huh.NewForm(huh.NewGroup(fields...)).Run()
}
