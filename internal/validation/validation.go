// Package validation holds the input checks applied at the CLI boundary.
// The domain layer trusts its callers; ranges are enforced here, where the
// self-reports enter the system.
package validation

import (
	"fmt"
	"time"

	"github.com/lifelens/lifelens/internal/constants"
	"github.com/lifelens/lifelens/internal/models"
)

// ValidateRating checks a 0-10 self-report value.
func ValidateRating(name string, value float64) error {
	if value < 0 || value > 10 {
		return fmt.Errorf("%s must be between 0 and 10, got %g", name, value)
	}
	return nil
}

// ValidateTransport checks that the mode is one of the recognized choices.
// The calculator tolerates unknown modes by design; user input does not get
// that leniency.
func ValidateTransport(value string) (models.Transport, error) {
	t := models.Transport(value)
	for _, known := range models.Transports {
		if t == known {
			return t, nil
		}
	}
	return "", fmt.Errorf("invalid transport %q (expected walk|cycle|public|car)", value)
}

// ValidateDate checks a YYYY-MM-DD date string.
func ValidateDate(value string) error {
	if _, err := time.Parse(constants.DateFormat, value); err != nil {
		return fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", value, err)
	}
	return nil
}
