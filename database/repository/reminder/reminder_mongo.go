package reminderRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/kpasag/MedTime/database"
	"github.com/kpasag/MedTime/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoReminderRepo implements ReminderRepository using MongoDB.
type MongoReminderRepo struct {
	coll *mongo.Collection
}

// NewMongoReminderRepo creates a new instance of ReminderRepository using MongoDB.
func NewMongoReminderRepo() ReminderRepository {
	coll := database.Database().Collection("reminders")
	repo := &MongoReminderRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoReminderRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a reminder by its id.
func (r *MongoReminderRepo) GetByID(id string) (*models.Reminder, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var reminder models.Reminder
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&reminder); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch reminder with id %s: %w", id, err)
	}
	return &reminder, nil
}

// GetByIDs retrieves the reminders for the given ids. Dangling ids resolve to
// nothing and are omitted from the result.
func (r *MongoReminderRepo) GetByIDs(ids []string) ([]models.Reminder, error) {
	if len(ids) == 0 {
		return []models.Reminder{}, nil
	}

	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve reminders: %w", err)
	}
	defer cursor.Close(ctx)

	reminders := []models.Reminder{}
	for cursor.Next(ctx) {
		var rem models.Reminder
		if err := cursor.Decode(&rem); err != nil {
			return nil, fmt.Errorf("failed to decode reminder: %w", err)
		}
		reminders = append(reminders, rem)
	}
	return reminders, nil
}
