package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"rootroutes-service/authz"
	"rootroutes-service/domain"
	error2 "rootroutes-service/error"
	"rootroutes-service/query"
)

const destinationResource = "Destination"

type DestinationServiceImpl struct {
	collection *mongo.Collection
	Tracer     trace.Tracer
	logger     *logrus.Logger
	authorizer *authz.Authorizer
	now        func() time.Time
}

func NewDestinationServiceImpl(collection *mongo.Collection, tr trace.Tracer, logger *logrus.Logger, authorizer *authz.Authorizer) DestinationService {
	return &DestinationServiceImpl{
		collection: collection,
		Tracer:     tr,
		logger:     logger,
		authorizer: authorizer,
		now:        time.Now,
	}
}

func (s *DestinationServiceImpl) ListDestinations(ctx context.Context, filter query.DestinationFilter) (*query.Page[*domain.Destination], error) {
	ctx, span := s.Tracer.Start(ctx, "DestinationService.ListDestinations")
	defer span.End()

	page, err := findPage[*domain.Destination](ctx, s.collection, query.Destinations(filter))
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return page, nil
}

func (s *DestinationServiceImpl) ListOwnedDestinations(ctx context.Context, owner primitive.ObjectID, page, limit string) (*query.Page[*domain.Destination], error) {
	ctx, span := s.Tracer.Start(ctx, "DestinationService.ListOwnedDestinations")
	defer span.End()

	result, err := findPage[*domain.Destination](ctx, s.collection, query.OwnedDestinations(owner, page, limit))
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return result, nil
}

func (s *DestinationServiceImpl) GetDestinationByID(ctx context.Context, id string) (*domain.Destination, error) {
	ctx, span := s.Tracer.Start(ctx, "DestinationService.GetDestinationByID")
	defer span.End()

	oid, err := parseID(id, destinationResource)
	if err != nil {
		return nil, err
	}

	var destination domain.Destination
	err = s.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&destination)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, error2.NewNotFoundError(destinationResource)
		}
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("find destination: %w", err)
	}
	return &destination, nil
}

func (s *DestinationServiceImpl) CreateDestination(ctx context.Context, in *domain.CreateDestinationInput, caller domain.Identity) (*domain.Destination, error) {
	ctx, span := s.Tracer.Start(ctx, "DestinationService.CreateDestination")
	defer span.End()

	destination, err := domain.NewDestination(in, caller.ID, s.now())
	if err != nil {
		return nil, err
	}

	result, err := s.collection.InsertOne(ctx, destination)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("insert destination: %w", err)
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		destination.ID = oid
	}

	s.logger.WithFields(logrus.Fields{"destination": destination.ID.Hex(), "user": caller.ID.Hex()}).Info("destination created")
	return destination, nil
}

// UpdateDestination is allowed for the creator and for admins. Only admins
// may move a destination between moderation states.
func (s *DestinationServiceImpl) UpdateDestination(ctx context.Context, id string, in *domain.UpdateDestinationInput, caller domain.Identity) (*domain.Destination, error) {
	ctx, span := s.Tracer.Start(ctx, "DestinationService.UpdateDestination")
	defer span.End()

	destination, err := s.GetDestinationByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !s.authorizer.CanModify(caller, destination.CreatedBy, authz.OwnerOrAdmin) {
		return nil, error2.NewAuthorizationError("Not authorized to update this destination")
	}
	if in.Status != nil && *in.Status != destination.Status && !caller.IsAdmin() {
		return nil, error2.NewAuthorizationError("Only admins can change destination status")
	}

	if err := destination.ApplyUpdate(in, s.now()); err != nil {
		return nil, err
	}
	if err := s.replace(ctx, destination); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return destination, nil
}

func (s *DestinationServiceImpl) DeleteDestination(ctx context.Context, id string, caller domain.Identity) error {
	ctx, span := s.Tracer.Start(ctx, "DestinationService.DeleteDestination")
	defer span.End()

	destination, err := s.GetDestinationByID(ctx, id)
	if err != nil {
		return err
	}
	if !s.authorizer.CanModify(caller, destination.CreatedBy, authz.OwnerOrAdmin) {
		return error2.NewAuthorizationError("Not authorized to delete this destination")
	}

	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": destination.ID})
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("delete destination: %w", err)
	}
	if result.DeletedCount == 0 {
		return error2.NewNotFoundError(destinationResource)
	}

	s.logger.WithFields(logrus.Fields{"destination": destination.ID.Hex(), "user": caller.ID.Hex()}).Info("destination deleted")
	return nil
}

// RateDestination folds one score into the stored average. Concurrent
// ratings race; the last write wins.
func (s *DestinationServiceImpl) RateDestination(ctx context.Context, id string, in *domain.RateInput) (*domain.Destination, error) {
	ctx, span := s.Tracer.Start(ctx, "DestinationService.RateDestination")
	defer span.End()

	if err := domain.Validate(in); err != nil {
		return nil, err
	}

	destination, err := s.GetDestinationByID(ctx, id)
	if err != nil {
		return nil, err
	}
	destination.Rating = destination.Rating.AddRating(in.Rating)
	destination.UpdatedAt = s.now()

	update := bson.M{"$set": bson.M{"rating": destination.Rating, "updatedAt": destination.UpdatedAt}}
	if err := s.updateOne(ctx, destination.ID, update); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return destination, nil
}

func (s *DestinationServiceImpl) SetDestinationStatus(ctx context.Context, id string, in *domain.StatusInput) (*domain.Destination, error) {
	ctx, span := s.Tracer.Start(ctx, "DestinationService.SetDestinationStatus")
	defer span.End()

	if err := domain.Validate(in); err != nil {
		return nil, err
	}

	destination, err := s.GetDestinationByID(ctx, id)
	if err != nil {
		return nil, err
	}
	destination.Status = in.Status
	destination.UpdatedAt = s.now()

	update := bson.M{"$set": bson.M{"status": destination.Status, "updatedAt": destination.UpdatedAt}}
	if err := s.updateOne(ctx, destination.ID, update); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{"destination": destination.ID.Hex(), "status": destination.Status}).Info("destination status changed")
	return destination, nil
}

func (s *DestinationServiceImpl) replace(ctx context.Context, destination *domain.Destination) error {
	result, err := s.collection.ReplaceOne(ctx, bson.M{"_id": destination.ID}, destination)
	if err != nil {
		return fmt.Errorf("replace destination: %w", err)
	}
	if result.MatchedCount == 0 {
		return error2.NewNotFoundError(destinationResource)
	}
	return nil
}

func (s *DestinationServiceImpl) updateOne(ctx context.Context, id primitive.ObjectID, update bson.M) error {
	result, err := s.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("update destination: %w", err)
	}
	if result.MatchedCount == 0 {
		return error2.NewNotFoundError(destinationResource)
	}
	return nil
}
