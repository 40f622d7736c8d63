package services

import (
	"context"

	"rootroutes-service/domain"
)

type AuthService interface {
	Register(ctx context.Context, in *domain.RegisterInput) (*domain.User, error)
	Login(ctx context.Context, in *domain.LoginInput) (*domain.User, error)
}
