// File: database/repository/reminder/reminderMongoCrud.go
package reminderRepo

import (
	"fmt"
	"time"

	"github.com/kpasag/MedTime/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new reminder document.
func (r *MongoReminderRepo) Create(reminder *models.Reminder) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, reminder)
	if err != nil {
		return fmt.Errorf("failed to create reminder: %w", err)
	}
	return nil
}

// UpdateFields applies a partial $set update to a reminder.
func (r *MongoReminderRepo) UpdateFields(id string, fields bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("failed to update reminder with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("reminder with id %s: %w", id, ErrNotFound)
	}
	return nil
}

// SetDoseLog replaces the reminder's dose log.
func (r *MongoReminderRepo) SetDoseLog(id string, doseLog []models.DoseRecord) error {
	return r.UpdateFields(id, bson.M{"doseLog": doseLog})
}

// Delete removes a reminder document by its id. A missing document is not an
// error; delete is a no-op then.
func (r *MongoReminderRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	_, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete reminder with id %s: %w", id, err)
	}
	return nil
}
