package models

// UserProfile is the singleton per-device profile.
type UserProfile struct {
	Name                string `json:"name"`
	OnboardingCompleted bool   `json:"onboarding_completed"`
}
