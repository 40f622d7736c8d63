package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	error2 "rootroutes-service/error"
	"rootroutes-service/query"
)

// findPage runs a composed list query: one count for the pagination
// metadata, one windowed find for the items.
func findPage[T any](ctx context.Context, collection *mongo.Collection, spec query.Spec) (*query.Page[T], error) {
	total, err := collection.CountDocuments(ctx, spec.Filter)
	if err != nil {
		return nil, fmt.Errorf("count %s: %w", collection.Name(), err)
	}

	cursor, err := collection.Find(ctx, spec.Filter, spec.FindOptions())
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", collection.Name(), err)
	}
	defer cursor.Close(ctx)

	items := make([]T, 0)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("decode %s: %w", collection.Name(), err)
	}

	return &query.Page[T]{Items: items, Pagination: spec.Pagination(total)}, nil
}

// parseID treats a malformed id the same as a missing document.
func parseID(id, resource string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, error2.NewNotFoundError(resource)
	}
	return oid, nil
}
