package coach

import (
	"strings"
	"testing"

	"github.com/lifelens/lifelens/internal/models"
)

func entry(transport models.Transport, sleep, energy, mood float64, score int, co2 float64) models.DailyEntry {
	return models.DailyEntry{
		Sleep:         sleep,
		Energy:        energy,
		Mood:          mood,
		Transport:     transport,
		WellnessScore: score,
		CO2Emitted:    co2,
	}
}

func TestGenerateEmptyHistory(t *testing.T) {
	got := Generate(nil)

	if got.Type != models.InsightBalanced {
		t.Errorf("Type = %q, want balanced", got.Type)
	}
	if !strings.Contains(got.Text, "Begin your journey") {
		t.Errorf("unexpected onboarding text: %q", got.Text)
	}
	if got.Correlations.Health == "" || got.Correlations.Planet == "" {
		t.Error("onboarding insight missing correlation strings")
	}
}

func TestGenerateActiveSwitch(t *testing.T) {
	t.Run("positive energy delta cites energy", func(t *testing.T) {
		entries := []models.DailyEntry{
			entry(models.TransportCar, 7, 5, 6, 60, 2.5),
			entry(models.TransportCycle, 7, 6, 6, 65, 0),
		}

		got := Generate(entries)

		if got.Type != models.InsightBalanced {
			t.Errorf("Type = %q, want balanced", got.Type)
		}
		if !strings.Contains(got.Text, "Your energy rose 20% compared to yesterday after cycling.") {
			t.Errorf("unexpected text: %q", got.Text)
		}
		if !strings.Contains(got.Correlations.Health, "20%") {
			t.Errorf("health correlation should cite the energy delta: %q", got.Correlations.Health)
		}
	})

	t.Run("non-positive energy delta falls back to wellness", func(t *testing.T) {
		entries := []models.DailyEntry{
			entry(models.TransportPublic, 7, 6, 6, 60, 0.5),
			entry(models.TransportWalk, 8, 6, 7, 66, 0),
		}

		got := Generate(entries)

		if !strings.Contains(got.Text, "Your wellness score improved by 10%") {
			t.Errorf("unexpected text: %q", got.Text)
		}
		// Correlation keeps the fixed stand-in figure when the energy
		// delta is not positive.
		if !strings.Contains(got.Correlations.Health, "15%") {
			t.Errorf("health correlation should use the placeholder: %q", got.Correlations.Health)
		}
	})

	t.Run("zero previous energy yields zero percent", func(t *testing.T) {
		entries := []models.DailyEntry{
			entry(models.TransportCar, 7, 0, 6, 60, 2.5),
			entry(models.TransportCycle, 7, 6, 6, 60, 0),
		}

		got := Generate(entries)

		if !strings.Contains(got.Text, "improved by 0%") {
			t.Errorf("expected the wellness fallback with 0%%: %q", got.Text)
		}
	})
}

func TestGenerateCarRegression(t *testing.T) {
	entries := []models.DailyEntry{
		entry(models.TransportCycle, 7, 7, 7, 70, 0),
		entry(models.TransportCar, 7, 5, 6, 60, 2.5),
	}

	got := Generate(entries)

	if got.Type != models.InsightPlanet {
		t.Errorf("Type = %q, want planet", got.Type)
	}
	if !strings.Contains(got.Text, "spiked your CO2 by 2.5kg") {
		t.Errorf("unexpected text: %q", got.Text)
	}
}

func TestGenerateActiveStreak(t *testing.T) {
	entries := []models.DailyEntry{
		entry(models.TransportWalk, 7, 7, 7, 70, 0),
		entry(models.TransportCycle, 7, 7, 7, 72, 0),
		entry(models.TransportWalk, 7, 7, 7, 74, 0),
	}

	got := Generate(entries)

	if got.Type != models.InsightBalanced {
		t.Errorf("Type = %q, want balanced", got.Type)
	}
	if !strings.Contains(got.Text, "3-day active streak") {
		t.Errorf("unexpected text: %q", got.Text)
	}
	if !strings.Contains(got.Correlations.Planet, "7.5kg") {
		t.Errorf("planet correlation should total the saved CO2: %q", got.Correlations.Planet)
	}
}

func TestGenerateSleepMoodDip(t *testing.T) {
	entries := []models.DailyEntry{
		entry(models.TransportPublic, 7, 6, 8, 70, 0.5),
		entry(models.TransportPublic, 5.5, 6, 6, 58, 0.5),
	}

	got := Generate(entries)

	if got.Type != models.InsightHealth {
		t.Errorf("Type = %q, want health", got.Type)
	}
	if !strings.Contains(got.Text, "Your sleep dropped to 5.5h") {
		t.Errorf("unexpected text: %q", got.Text)
	}
	if !strings.Contains(got.Text, "25% dip") {
		t.Errorf("mood drop should be cited as an absolute percentage: %q", got.Text)
	}
}

func TestGeneratePeakWellness(t *testing.T) {
	entries := []models.DailyEntry{
		entry(models.TransportPublic, 8, 8, 8, 84, 0.5),
	}

	got := Generate(entries)

	if got.Type != models.InsightBalanced {
		t.Errorf("Type = %q, want balanced", got.Type)
	}
	if !strings.Contains(got.Text, "weekly average is 84/100") {
		t.Errorf("unexpected text: %q", got.Text)
	}
}

func TestGenerateDefault(t *testing.T) {
	entries := []models.DailyEntry{
		entry(models.TransportCar, 7, 6, 6, 62, 2.5),
	}

	got := Generate(entries)

	if got.Type != models.InsightBalanced {
		t.Errorf("Type = %q, want balanced", got.Type)
	}
	if !strings.Contains(got.Text, "Based on your last 1 logs") {
		t.Errorf("unexpected text: %q", got.Text)
	}
}

// The chain is a strict priority order; these cases construct histories where
// multiple rules are structurally satisfiable and assert the earlier one wins.
func TestGeneratePrecedence(t *testing.T) {
	t.Run("active switch beats peak wellness and default", func(t *testing.T) {
		entries := []models.DailyEntry{
			entry(models.TransportCar, 7, 5, 6, 60, 2.5),
			entry(models.TransportCycle, 8, 8, 8, 90, 0),
		}

		got := Generate(entries)

		if !strings.Contains(got.Text, "If this continues, your weekly stability will recover.") {
			t.Errorf("active-switch rule should win over peak wellness: %q", got.Text)
		}
	})

	t.Run("car regression beats peak wellness", func(t *testing.T) {
		entries := []models.DailyEntry{
			entry(models.TransportWalk, 8, 8, 8, 85, 0),
			entry(models.TransportCar, 8, 8, 8, 85, 2.5),
		}

		got := Generate(entries)

		if got.Type != models.InsightPlanet {
			t.Errorf("Type = %q, want planet (car regression wins)", got.Type)
		}
	})

	t.Run("streak beats sleep-mood dip", func(t *testing.T) {
		entries := []models.DailyEntry{
			entry(models.TransportWalk, 7, 7, 8, 70, 0),
			entry(models.TransportCycle, 7, 7, 8, 72, 0),
			entry(models.TransportWalk, 5, 7, 6, 60, 0),
		}

		got := Generate(entries)

		if !strings.Contains(got.Text, "3-day active streak") {
			t.Errorf("streak rule should win over sleep-mood dip: %q", got.Text)
		}
	})

	t.Run("sleep-mood dip beats peak wellness", func(t *testing.T) {
		entries := []models.DailyEntry{
			entry(models.TransportPublic, 8, 9, 9, 88, 0.5),
			entry(models.TransportPublic, 5, 9, 7, 82, 0.5),
		}

		got := Generate(entries)

		if got.Type != models.InsightHealth {
			t.Errorf("Type = %q, want health (sleep-mood dip wins)", got.Type)
		}
	})
}
