package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"rootroutes-service/domain"
	"rootroutes-service/query"
)

type CultureService interface {
	ListCultureSites(ctx context.Context, filter query.CultureFilter) (*query.Page[*domain.CultureSite], error)
	GetCultureSiteByID(ctx context.Context, id string) (*domain.CultureSite, error)
	CreateCultureSite(ctx context.Context, in *domain.CreateCultureSiteInput, owner *primitive.ObjectID) (*domain.CultureSite, error)
	ReseedCultureSites(ctx context.Context) (int, error)
}
