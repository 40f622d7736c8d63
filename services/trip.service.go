package services

import (
	"context"

	"rootroutes-service/domain"
	"rootroutes-service/query"
)

// TripService only ever exposes a trip to its owner.
type TripService interface {
	ListTrips(ctx context.Context, caller domain.Identity, filter query.TripFilter) (*query.Page[*domain.Trip], error)
	GetTripByID(ctx context.Context, id string, caller domain.Identity) (*domain.Trip, error)
	CreateTrip(ctx context.Context, in *domain.CreateTripInput, caller domain.Identity) (*domain.Trip, error)
	UpdateTrip(ctx context.Context, id string, in *domain.UpdateTripInput, caller domain.Identity) (*domain.Trip, error)
	DeleteTrip(ctx context.Context, id string, caller domain.Identity) error
}
