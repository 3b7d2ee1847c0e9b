// File: database/repository/account/accountMongoCrud.go
package accountRepo

import (
	"fmt"
	"time"

	"github.com/kpasag/MedTime/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new account document.
func (r *MongoAccountRepo) Create(account *models.Account) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	account.CreatedAt = now
	account.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, account)
	if err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

// PushReminder appends a reminder id to the account's reference sequence.
func (r *MongoAccountRepo) PushReminder(accountID, reminderID string) error {
	update := bson.M{
		"$push": bson.M{"reminders": reminderID},
		"$set":  bson.M{"updatedAt": time.Now()},
	}
	return r.updateOne(accountID, update)
}

// PullReminder removes a reminder id from the account's reference sequence.
// Pulling an id that is not present matches the account and succeeds.
func (r *MongoAccountRepo) PullReminder(accountID, reminderID string) error {
	update := bson.M{
		"$pull": bson.M{"reminders": reminderID},
		"$set":  bson.M{"updatedAt": time.Now()},
	}
	return r.updateOne(accountID, update)
}

// AddCaregiver adds a caregiver reference using $addToSet to prevent
// duplicates at the database level.
func (r *MongoAccountRepo) AddCaregiver(accountID, caregiverID string) error {
	update := bson.M{
		"$addToSet": bson.M{"linkedCaregivers": caregiverID},
		"$set":      bson.M{"updatedAt": time.Now()},
	}
	return r.updateOne(accountID, update)
}

// AddPatient adds a patient reference using $addToSet to prevent duplicates
// at the database level.
func (r *MongoAccountRepo) AddPatient(accountID, patientID string) error {
	update := bson.M{
		"$addToSet": bson.M{"linkedPatients": patientID},
		"$set":      bson.M{"updatedAt": time.Now()},
	}
	return r.updateOne(accountID, update)
}

func (r *MongoAccountRepo) updateOne(accountID string, update bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": accountID}, update)
	if err != nil {
		return fmt.Errorf("failed to update account with id %s: %w", accountID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("account with id %s: %w", accountID, ErrNotFound)
	}
	return nil
}
