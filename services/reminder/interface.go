package reminder

import (
	"time"

	accountRepo "github.com/kpasag/MedTime/database/repository/account"
	reminderRepo "github.com/kpasag/MedTime/database/repository/reminder"
	"github.com/kpasag/MedTime/models"
	"github.com/kpasag/MedTime/utils"
)

// ReminderService manages pill reminders and their dose logs.
type ReminderService interface {
	// ListReminders returns the caller's reminders in reference order.
	ListReminders(identity utils.Identity) ([]models.Reminder, error)
	// AddReminder validates and persists a reminder, then appends its id to
	// the caller's account.
	AddReminder(identity utils.Identity, input models.ReminderInput) (*models.Reminder, error)
	// UpdateReminder replaces the four editable fields of a reminder.
	UpdateReminder(identity utils.Identity, reminderID string, input models.ReminderInput) (*models.Reminder, error)
	// DeleteReminder removes the caller's reference and the document.
	DeleteReminder(identity utils.Identity, reminderID string) error
	// MarkDoseTaken upserts a dose record for (time, calendar date of scheduledFor).
	MarkDoseTaken(reminderID, timeOfDay string, scheduledFor time.Time) (*models.Reminder, error)
	// UnmarkDoseTaken removes any dose record for (time, calendar date of scheduledFor).
	UnmarkDoseTaken(reminderID, timeOfDay string, scheduledFor time.Time) (*models.Reminder, error)
}

// DefaultReminderService is the production implementation.
type DefaultReminderService struct {
	Repo     reminderRepo.ReminderRepository
	Accounts accountRepo.AccountRepository

	// Now supplies timestamps for dose records; tests override it.
	Now func() time.Time
}

func (s *DefaultReminderService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
