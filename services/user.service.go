package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"rootroutes-service/domain"
)

type UserService interface {
	FindUserByID(ctx context.Context, id string) (*domain.User, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateProfile(ctx context.Context, id primitive.ObjectID, in *domain.UpdateProfileInput) (*domain.User, error)
}
