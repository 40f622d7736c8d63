package services

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"rootroutes-service/authz"
	"rootroutes-service/domain"
	error2 "rootroutes-service/error"
	"rootroutes-service/query"
)

func sampleDestination(owner primitive.ObjectID) *domain.Destination {
	now := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	return &domain.Destination{
		ID:          primitive.NewObjectID(),
		Title:       "Hundru Falls",
		Description: "A 98 metre waterfall on the Subarnarekha river.",
		Location:    "Ranchi",
		Images:      []domain.Image{},
		Tags:        []string{"waterfall"},
		Difficulty:  domain.DifficultyModerate,
		Facilities:  []string{"parking"},
		Rating:      domain.Rating{Average: 4, Count: 2},
		Status:      domain.DestinationActive,
		CreatedBy:   owner,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func newDestinationService(mt *mtest.T) *DestinationServiceImpl {
	return NewDestinationServiceImpl(mt.Coll, testTracer(), testLogger(), authz.NewAuthorizer()).(*DestinationServiceImpl)
}

func TestDestinationService(t *testing.T) {
	mt := newMockT(t)
	ctx := context.Background()

	owner := domain.Identity{ID: primitive.NewObjectID(), Role: domain.RoleUser}
	stranger := domain.Identity{ID: primitive.NewObjectID(), Role: domain.RoleUser}
	admin := domain.Identity{ID: primitive.NewObjectID(), Role: domain.RoleAdmin}

	mt.Run("list returns items and pagination", func(mt *mtest.T) {
		s := newDestinationService(mt)
		a, b := sampleDestination(owner.ID), sampleDestination(owner.ID)
		mt.AddMockResponses(
			countResponse(mt, 12),
			findResponse(mt, toDoc(mt.T, a), toDoc(mt.T, b)),
		)

		page, err := s.ListDestinations(ctx, query.DestinationFilter{Tags: "waterfall", Page: "2", Limit: "2"})
		require.NoError(mt, err)
		assert.Len(mt, page.Items, 2)
		assert.Equal(mt, query.Pagination{Current: 2, Pages: 6, Total: 12, Limit: 2}, page.Pagination)
	})

	mt.Run("empty list is an empty slice", func(mt *mtest.T) {
		s := newDestinationService(mt)
		mt.AddMockResponses(countResponse(mt, 0), findResponse(mt))

		page, err := s.ListDestinations(ctx, query.DestinationFilter{})
		require.NoError(mt, err)
		assert.NotNil(mt, page.Items)
		assert.Empty(mt, page.Items)
		assert.Equal(mt, 0, page.Pagination.Pages)
	})

	mt.Run("malformed id is not found", func(mt *mtest.T) {
		s := newDestinationService(mt)

		_, err := s.GetDestinationByID(ctx, "not-an-id")
		assert.Equal(mt, http.StatusNotFound, error2.StatusCode(err))
	})

	mt.Run("missing destination is not found", func(mt *mtest.T) {
		s := newDestinationService(mt)
		mt.AddMockResponses(findResponse(mt))

		_, err := s.GetDestinationByID(ctx, primitive.NewObjectID().Hex())
		assert.EqualError(mt, err, "Destination not found")
	})

	mt.Run("create attaches the owner", func(mt *mtest.T) {
		s := newDestinationService(mt)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		d, err := s.CreateDestination(ctx, &domain.CreateDestinationInput{
			Title:       "Patratu Valley",
			Description: "Winding ghat road above the Patratu dam.",
			Location:    "Ramgarh",
			Tags:        []string{"hill", "dam"},
		}, owner)
		require.NoError(mt, err)
		assert.False(mt, d.ID.IsZero())
		assert.Equal(mt, owner.ID, d.CreatedBy)
		assert.Equal(mt, domain.DestinationActive, d.Status)
	})

	mt.Run("create with invalid input touches nothing", func(mt *mtest.T) {
		s := newDestinationService(mt)

		_, err := s.CreateDestination(ctx, &domain.CreateDestinationInput{Tags: []string{"beach"}}, owner)
		assert.Equal(mt, http.StatusBadRequest, error2.StatusCode(err))
	})

	mt.Run("stranger cannot update", func(mt *mtest.T) {
		s := newDestinationService(mt)
		d := sampleDestination(owner.ID)
		mt.AddMockResponses(findResponse(mt, toDoc(mt.T, d)))

		title := "Renamed"
		_, err := s.UpdateDestination(ctx, d.ID.Hex(), &domain.UpdateDestinationInput{Title: &title}, stranger)
		var authzErr *error2.AuthorizationError
		assert.True(mt, errors.As(err, &authzErr))
	})

	mt.Run("admin can update", func(mt *mtest.T) {
		s := newDestinationService(mt)
		d := sampleDestination(owner.ID)
		mt.AddMockResponses(findResponse(mt, toDoc(mt.T, d)), writeResponse(1))

		title := "Hundru Falls (Upper)"
		updated, err := s.UpdateDestination(ctx, d.ID.Hex(), &domain.UpdateDestinationInput{Title: &title}, admin)
		require.NoError(mt, err)
		assert.Equal(mt, title, updated.Title)
		assert.Equal(mt, owner.ID, updated.CreatedBy)
	})

	mt.Run("owner cannot change status", func(mt *mtest.T) {
		s := newDestinationService(mt)
		d := sampleDestination(owner.ID)
		mt.AddMockResponses(findResponse(mt, toDoc(mt.T, d)))

		status := domain.DestinationInactive
		_, err := s.UpdateDestination(ctx, d.ID.Hex(), &domain.UpdateDestinationInput{Status: &status}, owner)
		assert.Equal(mt, http.StatusForbidden, error2.StatusCode(err))
	})

	mt.Run("invalid update is rejected", func(mt *mtest.T) {
		s := newDestinationService(mt)
		d := sampleDestination(owner.ID)
		mt.AddMockResponses(findResponse(mt, toDoc(mt.T, d)))

		tags := []string{"volcano"}
		_, err := s.UpdateDestination(ctx, d.ID.Hex(), &domain.UpdateDestinationInput{Tags: &tags}, owner)
		assert.Equal(mt, http.StatusBadRequest, error2.StatusCode(err))
	})

	mt.Run("owner can delete", func(mt *mtest.T) {
		s := newDestinationService(mt)
		d := sampleDestination(owner.ID)
		mt.AddMockResponses(findResponse(mt, toDoc(mt.T, d)), writeResponse(1))

		assert.NoError(mt, s.DeleteDestination(ctx, d.ID.Hex(), owner))
	})

	mt.Run("stranger cannot delete", func(mt *mtest.T) {
		s := newDestinationService(mt)
		d := sampleDestination(owner.ID)
		mt.AddMockResponses(findResponse(mt, toDoc(mt.T, d)))

		err := s.DeleteDestination(ctx, d.ID.Hex(), stranger)
		assert.Equal(mt, http.StatusForbidden, error2.StatusCode(err))
	})

	mt.Run("rate folds into the average", func(mt *mtest.T) {
		s := newDestinationService(mt)
		d := sampleDestination(owner.ID)
		mt.AddMockResponses(findResponse(mt, toDoc(mt.T, d)), writeResponse(1))

		rated, err := s.RateDestination(ctx, d.ID.Hex(), &domain.RateInput{Rating: 5})
		require.NoError(mt, err)
		assert.Equal(mt, domain.Rating{Average: 4.33, Count: 3}, rated.Rating)
	})

	mt.Run("rating out of range", func(mt *mtest.T) {
		s := newDestinationService(mt)

		_, err := s.RateDestination(ctx, primitive.NewObjectID().Hex(), &domain.RateInput{Rating: 6})
		assert.Equal(mt, http.StatusBadRequest, error2.StatusCode(err))
	})

	mt.Run("set status", func(mt *mtest.T) {
		s := newDestinationService(mt)
		d := sampleDestination(owner.ID)
		mt.AddMockResponses(findResponse(mt, toDoc(mt.T, d)), writeResponse(1))

		moderated, err := s.SetDestinationStatus(ctx, d.ID.Hex(), &domain.StatusInput{Status: domain.DestinationPending})
		require.NoError(mt, err)
		assert.Equal(mt, domain.DestinationPending, moderated.Status)
	})
}
