package reminderRepo

import (
	"errors"

	"github.com/kpasag/MedTime/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ErrNotFound is returned by mutations whose filter matched no reminder.
var ErrNotFound = errors.New("reminder not found")

// ReminderRepository defines methods for reminder data access.
type ReminderRepository interface {
	// GetByID retrieves a reminder by id. Returns (nil, nil) when absent.
	GetByID(id string) (*models.Reminder, error)
	// GetByIDs retrieves the reminders for the given ids. Ids with no
	// backing document are silently omitted.
	GetByIDs(ids []string) ([]models.Reminder, error)
	// Create inserts a new reminder document.
	Create(reminder *models.Reminder) error
	// UpdateFields applies a partial $set update to a reminder.
	UpdateFields(id string, fields bson.M) error
	// SetDoseLog replaces the reminder's dose log.
	SetDoseLog(id string, doseLog []models.DoseRecord) error
	// Delete removes a reminder document. Deleting an absent id is a no-op.
	Delete(id string) error
}
