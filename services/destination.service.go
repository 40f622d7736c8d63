package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"rootroutes-service/domain"
	"rootroutes-service/query"
)

type DestinationService interface {
	ListDestinations(ctx context.Context, filter query.DestinationFilter) (*query.Page[*domain.Destination], error)
	ListOwnedDestinations(ctx context.Context, owner primitive.ObjectID, page, limit string) (*query.Page[*domain.Destination], error)
	GetDestinationByID(ctx context.Context, id string) (*domain.Destination, error)
	CreateDestination(ctx context.Context, in *domain.CreateDestinationInput, caller domain.Identity) (*domain.Destination, error)
	UpdateDestination(ctx context.Context, id string, in *domain.UpdateDestinationInput, caller domain.Identity) (*domain.Destination, error)
	DeleteDestination(ctx context.Context, id string, caller domain.Identity) error
	RateDestination(ctx context.Context, id string, in *domain.RateInput) (*domain.Destination, error)
	SetDestinationStatus(ctx context.Context, id string, in *domain.StatusInput) (*domain.Destination, error)
}
