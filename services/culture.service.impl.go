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

	"rootroutes-service/domain"
	error2 "rootroutes-service/error"
	"rootroutes-service/query"
	"rootroutes-service/seed"
)

const cultureResource = "Culture site"

type CultureServiceImpl struct {
	collection *mongo.Collection
	Tracer     trace.Tracer
	logger     *logrus.Logger
	now        func() time.Time
}

func NewCultureServiceImpl(collection *mongo.Collection, tr trace.Tracer, logger *logrus.Logger) CultureService {
	return &CultureServiceImpl{collection: collection, Tracer: tr, logger: logger, now: time.Now}
}

func (s *CultureServiceImpl) ListCultureSites(ctx context.Context, filter query.CultureFilter) (*query.Page[*domain.CultureSite], error) {
	ctx, span := s.Tracer.Start(ctx, "CultureService.ListCultureSites")
	defer span.End()

	page, err := findPage[*domain.CultureSite](ctx, s.collection, query.CultureSites(filter))
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return page, nil
}

func (s *CultureServiceImpl) GetCultureSiteByID(ctx context.Context, id string) (*domain.CultureSite, error) {
	ctx, span := s.Tracer.Start(ctx, "CultureService.GetCultureSiteByID")
	defer span.End()

	oid, err := parseID(id, cultureResource)
	if err != nil {
		return nil, err
	}

	var site domain.CultureSite
	err = s.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&site)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, error2.NewNotFoundError(cultureResource)
		}
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("find culture site: %w", err)
	}
	return &site, nil
}

// CreateCultureSite accepts anonymous submissions; owner is nil then.
func (s *CultureServiceImpl) CreateCultureSite(ctx context.Context, in *domain.CreateCultureSiteInput, owner *primitive.ObjectID) (*domain.CultureSite, error) {
	ctx, span := s.Tracer.Start(ctx, "CultureService.CreateCultureSite")
	defer span.End()

	site, err := domain.NewCultureSite(in, owner, s.now())
	if err != nil {
		return nil, err
	}

	result, err := s.collection.InsertOne(ctx, site)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("insert culture site: %w", err)
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		site.ID = oid
	}
	return site, nil
}

// ReseedCultureSites empties the collection and loads the built-in
// catalogue. The two steps are not atomic: a failed insert leaves the
// collection partially filled.
func (s *CultureServiceImpl) ReseedCultureSites(ctx context.Context) (int, error) {
	ctx, span := s.Tracer.Start(ctx, "CultureService.ReseedCultureSites")
	defer span.End()

	if _, err := s.collection.DeleteMany(ctx, bson.M{}); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return 0, fmt.Errorf("clear culture sites: %w", err)
	}

	sites := seed.CultureSites(s.now())
	docs := make([]interface{}, 0, len(sites))
	for _, site := range sites {
		docs = append(docs, site)
	}

	result, err := s.collection.InsertMany(ctx, docs)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		s.logger.WithError(err).Error("culture reseed left a partial catalogue")
		return 0, fmt.Errorf("insert culture sites: %w", err)
	}

	s.logger.WithFields(logrus.Fields{"count": len(result.InsertedIDs)}).Info("culture sites reseeded")
	return len(result.InsertedIDs), nil
}
