package accountRepo

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

// MongoAccountRepo implements AccountRepository using MongoDB.
type MongoAccountRepo struct {
	coll *mongo.Collection
}

// NewMongoAccountRepo creates a new instance of AccountRepository using MongoDB.
func NewMongoAccountRepo() AccountRepository {
	coll := database.Database().Collection("accounts")
	repo := &MongoAccountRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoAccountRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves an account by its provider-issued id.
func (r *MongoAccountRepo) GetByID(id string) (*models.Account, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var account models.Account
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&account); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch account with id %s: %w", id, err)
	}
	return &account, nil
}

// GetByEmail retrieves an account by its lowercased email.
func (r *MongoAccountRepo) GetByEmail(email string) (*models.Account, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var account models.Account
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&account); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch account with email %s: %w", email, err)
	}
	return &account, nil
}

// GetSummariesByIDs resolves account ids to {id, email} summaries. Ids with
// no backing document are silently omitted.
func (r *MongoAccountRepo) GetSummariesByIDs(ids []string) ([]models.AccountSummary, error) {
	if len(ids) == 0 {
		return []models.AccountSummary{}, nil
	}

	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetProjection(bson.M{"id": 1, "email": 1})
	cursor, err := r.coll.Find(ctx, bson.M{"id": bson.M{"$in": ids}}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve linked accounts: %w", err)
	}
	defer cursor.Close(ctx)

	summaries := []models.AccountSummary{}
	for cursor.Next(ctx) {
		var s models.AccountSummary
		if err := cursor.Decode(&s); err != nil {
			return nil, fmt.Errorf("failed to decode account summary: %w", err)
		}
		summaries = append(summaries, s)
	}
	return summaries, nil
}
