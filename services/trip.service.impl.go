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

const tripResource = "Trip"

type TripServiceImpl struct {
	collection *mongo.Collection
	Tracer     trace.Tracer
	logger     *logrus.Logger
	authorizer *authz.Authorizer
	now        func() time.Time
}

func NewTripServiceImpl(collection *mongo.Collection, tr trace.Tracer, logger *logrus.Logger, authorizer *authz.Authorizer) TripService {
	return &TripServiceImpl{
		collection: collection,
		Tracer:     tr,
		logger:     logger,
		authorizer: authorizer,
		now:        time.Now,
	}
}

func (s *TripServiceImpl) ListTrips(ctx context.Context, caller domain.Identity, filter query.TripFilter) (*query.Page[*domain.Trip], error) {
	ctx, span := s.Tracer.Start(ctx, "TripService.ListTrips")
	defer span.End()

	page, err := findPage[*domain.Trip](ctx, s.collection, query.Trips(caller.ID, filter))
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return page, nil
}

// GetTripByID reports a missing trip as not found and someone else's trip
// as forbidden.
func (s *TripServiceImpl) GetTripByID(ctx context.Context, id string, caller domain.Identity) (*domain.Trip, error) {
	ctx, span := s.Tracer.Start(ctx, "TripService.GetTripByID")
	defer span.End()

	oid, err := parseID(id, tripResource)
	if err != nil {
		return nil, err
	}

	var trip domain.Trip
	err = s.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&trip)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, error2.NewNotFoundError(tripResource)
		}
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("find trip: %w", err)
	}

	if !s.authorizer.CanModify(caller, trip.User, authz.OwnerOnly) {
		return nil, error2.NewAuthorizationError("Not authorized to access this trip")
	}
	return &trip, nil
}

func (s *TripServiceImpl) CreateTrip(ctx context.Context, in *domain.CreateTripInput, caller domain.Identity) (*domain.Trip, error) {
	ctx, span := s.Tracer.Start(ctx, "TripService.CreateTrip")
	defer span.End()

	trip, err := domain.NewTrip(in, caller.ID, s.now())
	if err != nil {
		return nil, err
	}

	result, err := s.collection.InsertOne(ctx, trip)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("insert trip: %w", err)
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		trip.ID = oid
	}

	s.logger.WithFields(logrus.Fields{"trip": trip.ID.Hex(), "user": caller.ID.Hex()}).Info("trip created")
	return trip, nil
}

func (s *TripServiceImpl) UpdateTrip(ctx context.Context, id string, in *domain.UpdateTripInput, caller domain.Identity) (*domain.Trip, error) {
	ctx, span := s.Tracer.Start(ctx, "TripService.UpdateTrip")
	defer span.End()

	trip, err := s.GetTripByID(ctx, id, caller)
	if err != nil {
		return nil, err
	}
	if err := trip.ApplyUpdate(in, s.now()); err != nil {
		return nil, err
	}

	result, err := s.collection.ReplaceOne(ctx, bson.M{"_id": trip.ID}, trip)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("replace trip: %w", err)
	}
	if result.MatchedCount == 0 {
		return nil, error2.NewNotFoundError(tripResource)
	}
	return trip, nil
}

func (s *TripServiceImpl) DeleteTrip(ctx context.Context, id string, caller domain.Identity) error {
	ctx, span := s.Tracer.Start(ctx, "TripService.DeleteTrip")
	defer span.End()

	trip, err := s.GetTripByID(ctx, id, caller)
	if err != nil {
		return err
	}

	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": trip.ID})
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("delete trip: %w", err)
	}
	if result.DeletedCount == 0 {
		return error2.NewNotFoundError(tripResource)
	}

	s.logger.WithFields(logrus.Fields{"trip": trip.ID.Hex(), "user": caller.ID.Hex()}).Info("trip deleted")
	return nil
}
