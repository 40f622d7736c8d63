package services

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"rootroutes-service/domain"
	error2 "rootroutes-service/error"
	"rootroutes-service/utils"
)

const errInvalidCredentials = "Invalid credentials"

type AuthServiceImpl struct {
	collection *mongo.Collection
	Tracer     trace.Tracer
	logger     *logrus.Logger
	now        func() time.Time
}

func NewAuthService(collection *mongo.Collection, tr trace.Tracer, logger *logrus.Logger) AuthService {
	return &AuthServiceImpl{collection: collection, Tracer: tr, logger: logger, now: time.Now}
}

func (as *AuthServiceImpl) Register(ctx context.Context, in *domain.RegisterInput) (*domain.User, error) {
	ctx, span := as.Tracer.Start(ctx, "AuthService.Register")
	defer span.End()

	if err := domain.Validate(in); err != nil {
		return nil, err
	}

	existing, err := findUserByEmail(ctx, as.collection, in.Email)
	if err != nil && !isNotFound(err) {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	if existing != nil {
		return nil, error2.NewValidationError(errDuplicateEmail)
	}

	hash, err := utils.HashPassword(in.Password)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	user, err := domain.NewUser(in, hash, as.now())
	if err != nil {
		return nil, err
	}

	result, err := as.collection.InsertOne(ctx, user)
	if err != nil {
		// the unique index catches a concurrent registration
		if mongo.IsDuplicateKeyError(err) {
			return nil, error2.NewValidationError(errDuplicateEmail)
		}
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("insert user: %w", err)
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid
	}

	as.logger.WithFields(logrus.Fields{"user": user.ID.Hex()}).Info("user registered")
	return user, nil
}

// Login never says whether the email or the password was wrong.
func (as *AuthServiceImpl) Login(ctx context.Context, in *domain.LoginInput) (*domain.User, error) {
	ctx, span := as.Tracer.Start(ctx, "AuthService.Login")
	defer span.End()

	if err := domain.Validate(in); err != nil {
		return nil, err
	}

	user, err := findUserByEmail(ctx, as.collection, in.Email)
	if err != nil {
		if isNotFound(err) {
			return nil, error2.NewAuthenticationError(errInvalidCredentials)
		}
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	if err := utils.VerifyPassword(user.Password, in.Password); err != nil {
		return nil, error2.NewAuthenticationError(errInvalidCredentials)
	}
	return user, nil
}
