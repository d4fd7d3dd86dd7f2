package userRepo

import (
	"context"
	"fmt"
	"time"

	"clinicore/database"
	"clinicore/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoContactDirectory reads recipient contacts from the shared users
// collection maintained by the account service.
type MongoContactDirectory struct {
	coll *mongo.Collection
}

// NewMongoContactDirectory constructs a new instance of MongoContactDirectory.
func NewMongoContactDirectory() *MongoContactDirectory {
	return &MongoContactDirectory{
		coll: database.DB().Collection("users"),
	}
}

// GetContact resolves a user's name and email.
func (repo *MongoContactDirectory) GetContact(ctx context.Context, userID string) (*models.Contact, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var contact models.Contact
	if err := repo.coll.FindOne(ctx, bson.M{"id": userID}).Decode(&contact); err != nil {
		return nil, fmt.Errorf("error fetching contact for user %s: %w", userID, err)
	}
	return &contact, nil
}
