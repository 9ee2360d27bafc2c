package cli

import (
	"fmt"
	"time"

	"github.com/lifelens/lifelens/internal/mission"
)

type MissionCmd struct{}

func (c *MissionCmd) Run(ctx *Context) error {
	state, err := ctx.Store.GetMissionState()
	if err != nil {
		return fmt.Errorf("failed to read mission: %w", err)
	}

	// The week boundary is checked lazily on access, not by a timer. Persist
	// the rollover when it happens so the displayed week stays consistent.
	checked := mission.CheckAndResetWeek(state, time.Now())
	if checked != state {
		if err := ctx.Store.SaveMissionState(checked); err != nil {
			return fmt.Errorf("failed to save mission: %w", err)
		}
		state = checked
	}

	fmt.Println(RenderMission(state))
	return nil
}
