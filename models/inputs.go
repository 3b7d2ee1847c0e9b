// models/inputs.go
package models

import "time"

// ReminderInput carries the four editable reminder fields.
type ReminderInput struct {
	Name            string   `json:"name"`
	Dosage          string   `json:"dosage"`
	TimesPerDay     []string `json:"timesPerDay"`
	FrequencyInDays int      `json:"frequencyInDays"`
}

// DoseInput identifies a single scheduled dose instance.
type DoseInput struct {
	Time         string    `json:"time" binding:"required"`
	ScheduledFor time.Time `json:"scheduledFor" binding:"required"`
}

// LinkRequest names the counterpart account for a link operation.
type LinkRequest struct {
	Email string `json:"email" binding:"required"`
}
