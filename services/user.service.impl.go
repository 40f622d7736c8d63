package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"rootroutes-service/domain"
	error2 "rootroutes-service/error"
	"rootroutes-service/utils"
)

const errDuplicateEmail = "User already exists with this email"

type UserServiceImpl struct {
	collection *mongo.Collection
	Tracer     trace.Tracer
	logger     *logrus.Logger
	now        func() time.Time
}

func NewUserServiceImpl(collection *mongo.Collection, tr trace.Tracer, logger *logrus.Logger) UserService {
	return &UserServiceImpl{collection: collection, Tracer: tr, logger: logger, now: time.Now}
}

func (us *UserServiceImpl) FindUserByID(ctx context.Context, id string) (*domain.User, error) {
	ctx, span := us.Tracer.Start(ctx, "UserService.FindUserByID")
	defer span.End()

	oid, err := parseID(id, "User")
	if err != nil {
		return nil, err
	}

	var user domain.User
	err = us.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, error2.NewNotFoundError("User")
		}
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &user, nil
}

func (us *UserServiceImpl) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	ctx, span := us.Tracer.Start(ctx, "UserService.FindUserByEmail")
	defer span.End()

	return findUserByEmail(ctx, us.collection, email)
}

// UpdateProfile changes name, email or password of one user. The role is
// never changed here.
func (us *UserServiceImpl) UpdateProfile(ctx context.Context, id primitive.ObjectID, in *domain.UpdateProfileInput) (*domain.User, error) {
	ctx, span := us.Tracer.Start(ctx, "UserService.UpdateProfile")
	defer span.End()

	if err := domain.Validate(in); err != nil {
		return nil, err
	}

	user, err := us.FindUserByID(ctx, id.Hex())
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		user.Name = strings.TrimSpace(*in.Name)
	}
	if in.Email != nil {
		email := domain.NormalizeEmail(*in.Email)
		if email != user.Email {
			existing, err := findUserByEmail(ctx, us.collection, email)
			if err != nil && !isNotFound(err) {
				span.SetStatus(codes.Error, err.Error())
				return nil, err
			}
			if existing != nil {
				return nil, error2.NewValidationError(errDuplicateEmail)
			}
			user.Email = email
		}
	}
	if in.Password != nil {
		hash, err := utils.HashPassword(*in.Password)
		if err != nil {
			span.SetStatus(codes.Error, err.Error())
			return nil, err
		}
		user.Password = hash
	}
	user.UpdatedAt = us.now()

	if err := domain.Validate(user); err != nil {
		return nil, err
	}

	_, err = us.collection.ReplaceOne(ctx, bson.M{"_id": user.ID}, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, error2.NewValidationError(errDuplicateEmail)
		}
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("update user: %w", err)
	}

	us.logger.WithFields(logrus.Fields{"user": user.ID.Hex()}).Info("profile updated")
	return user, nil
}

func findUserByEmail(ctx context.Context, collection *mongo.Collection, email string) (*domain.User, error) {
	var user domain.User
	err := collection.FindOne(ctx, bson.M{"email": domain.NormalizeEmail(email)}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, error2.NewNotFoundError("User")
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &user, nil
}

func isNotFound(err error) bool {
	var notFound *error2.NotFoundError
	return errors.As(err, &notFound)
}
