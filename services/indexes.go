package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	UsersCollection        = "users"
	DestinationsCollection = "destinations"
	TripsCollection        = "trips"
	CultureCollection      = "culturesites"
)

// EnsureIndexes creates the indexes the queries rely on. The destination
// text index is required by the search filter.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		UsersCollection: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		DestinationsCollection: {
			{Keys: bson.D{
				{Key: "title", Value: "text"},
				{Key: "description", Value: "text"},
				{Key: "location", Value: "text"},
			}},
			{Keys: bson.D{{Key: "status", Value: 1}, {Key: "rating.average", Value: -1}, {Key: "createdAt", Value: -1}}},
			{Keys: bson.D{{Key: "createdBy", Value: 1}}},
		},
		TripsCollection: {
			{Keys: bson.D{{Key: "user", Value: 1}, {Key: "startDate", Value: 1}}},
		},
		CultureCollection: {
			{Keys: bson.D{{Key: "category", Value: 1}, {Key: "rating", Value: -1}}},
		},
	}

	for name, models := range indexes {
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create indexes on %s: %w", name, err)
		}
	}
	return nil
}
