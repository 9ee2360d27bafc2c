package cli

import (
	"fmt"
)

type ProfileCmd struct {
	Name               string `help:"Set the display name."`
	CompleteOnboarding bool   `help:"Mark onboarding as completed."`
}

func (c *ProfileCmd) Run(ctx *Context) error {
	profile, err := ctx.Store.GetUserProfile()
	if err != nil {
		return fmt.Errorf("failed to read profile: %w", err)
	}

	changed := false
	if c.Name != "" {
		profile.Name = c.Name
		changed = true
	}
	if c.CompleteOnboarding {
		profile.OnboardingCompleted = true
		changed = true
	}

	if changed {
		if err := ctx.Store.SaveUserProfile(profile); err != nil {
			return fmt.Errorf("failed to save profile: %w", err)
		}
	}

	fmt.Printf("%s %s\n", labelStyle.Render("name:      "), valueStyle.Render(profile.Name))
	fmt.Printf("%s %v\n", labelStyle.Render("onboarded: "), profile.OnboardingCompleted)
	return nil
}
