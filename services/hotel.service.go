package services

import (
	"context"

	"rootroutes-service/domain"
)

type HotelService interface {
	SearchHotels(ctx context.Context, query string) (*domain.HotelSearchResult, error)
}

// DestinationLookupCache remembers upstream destination ids per query.
type DestinationLookupCache interface {
	GetDestinationID(ctx context.Context, query string) (string, bool)
	PutDestinationID(ctx context.Context, query, destID string)
}
