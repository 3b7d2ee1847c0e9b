package reminder

import (
	"fmt"
	"strings"
	"time"

	"github.com/kpasag/MedTime/models"
)

// validateInput checks the four editable reminder fields: non-empty name and
// dosage, at least one well-formed HH:MM time, and a cadence of one day or more.
func validateInput(input models.ReminderInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return ValidationError{Reason: "name is required"}
	}
	if strings.TrimSpace(input.Dosage) == "" {
		return ValidationError{Reason: "dosage is required"}
	}
	if len(input.TimesPerDay) == 0 {
		return ValidationError{Reason: "at least one time per day is required"}
	}
	for _, t := range input.TimesPerDay {
		if _, err := time.Parse("15:04", t); err != nil {
			return ValidationError{Reason: fmt.Sprintf("invalid time of day %q, expected HH:MM", t)}
		}
	}
	if input.FrequencyInDays < 1 {
		return ValidationError{Reason: "frequencyInDays must be at least 1"}
	}
	return nil
}
