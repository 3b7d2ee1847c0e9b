package testutil

import (
	"time"

	"github.com/kpasag/MedTime/models"
)

// NewAccount builds an account fixture with empty reference sets.
func NewAccount(id, email string) models.Account {
	return models.Account{
		ID:               id,
		Email:            email,
		Reminders:        []string{},
		LinkedCaregivers: []string{},
		LinkedPatients:   []string{},
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}
}

// NewReminder builds a reminder fixture with an empty dose log.
func NewReminder(id, name, dosage string, timesPerDay []string, frequencyInDays int) models.Reminder {
	now := time.Now()
	return models.Reminder{
		ID:                id,
		Name:              name,
		Dosage:            dosage,
		TimesPerDay:       timesPerDay,
		FrequencyInDays:   frequencyInDays,
		DoseLog:           []models.DoseRecord{},
		NextScheduledDate: now,
		CreatedAt:         now,
	}
}
