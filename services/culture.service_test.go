package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"rootroutes-service/domain"
	error2 "rootroutes-service/error"
	"rootroutes-service/query"
	"rootroutes-service/seed"
)

func TestCultureService(t *testing.T) {
	mt := newMockT(t)
	ctx := context.Background()

	mt.Run("reseed replaces the catalogue", func(mt *mtest.T) {
		s := NewCultureServiceImpl(mt.Coll, testTracer(), testLogger())
		mt.AddMockResponses(writeResponse(3), mtest.CreateSuccessResponse())

		n, err := s.ReseedCultureSites(ctx)
		require.NoError(mt, err)
		assert.Equal(mt, len(seed.CultureSites(testNow)), n)
	})

	mt.Run("reseed reports a failed insert", func(mt *mtest.T) {
		s := NewCultureServiceImpl(mt.Coll, testTracer(), testLogger())
		mt.AddMockResponses(
			writeResponse(3),
			mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 8, Message: "insert failed"}),
		)

		_, err := s.ReseedCultureSites(ctx)
		assert.Error(mt, err)
		assert.Equal(mt, http.StatusInternalServerError, error2.StatusCode(err))
	})

	mt.Run("anonymous create has no user", func(mt *mtest.T) {
		s := NewCultureServiceImpl(mt.Coll, testTracer(), testLogger())
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		site, err := s.CreateCultureSite(ctx, &domain.CreateCultureSiteInput{
			Name:        "Paitkar Painting",
			Category:    domain.CategoryFolkArts,
			Description: "Scroll painting of the Amadubi village.",
			Location:    "East Singhbhum",
		}, nil)
		require.NoError(mt, err)
		assert.Nil(mt, site.User)
		assert.False(mt, site.ID.IsZero())
	})

	mt.Run("authenticated create records the user", func(mt *mtest.T) {
		s := NewCultureServiceImpl(mt.Coll, testTracer(), testLogger())
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		owner := primitive.NewObjectID()
		site, err := s.CreateCultureSite(ctx, &domain.CreateCultureSiteInput{
			Name:        "Tusu Parab",
			Category:    domain.CategoryFestivals,
			Description: "Harvest festival of the Kurmi community.",
			Location:    "Purulia border",
		}, &owner)
		require.NoError(mt, err)
		require.NotNil(mt, site.User)
		assert.Equal(mt, owner, *site.User)
	})

	mt.Run("invalid category", func(mt *mtest.T) {
		s := NewCultureServiceImpl(mt.Coll, testTracer(), testLogger())

		_, err := s.CreateCultureSite(ctx, &domain.CreateCultureSiteInput{
			Name:        "Somewhere",
			Category:    "Cuisine",
			Description: "x",
			Location:    "y",
		}, nil)
		assert.Equal(mt, http.StatusBadRequest, error2.StatusCode(err))
	})

	mt.Run("list and get", func(mt *mtest.T) {
		s := NewCultureServiceImpl(mt.Coll, testTracer(), testLogger())
		site := seed.CultureSites(testNow)[0]
		site.ID = primitive.NewObjectID()
		mt.AddMockResponses(
			countResponse(mt, 1),
			findResponse(mt, toDoc(mt.T, site)),
			findResponse(mt, toDoc(mt.T, site)),
		)

		page, err := s.ListCultureSites(ctx, query.CultureFilter{Category: "All", Keyword: "dham"})
		require.NoError(mt, err)
		require.Len(mt, page.Items, 1)

		got, err := s.GetCultureSiteByID(ctx, site.ID.Hex())
		require.NoError(mt, err)
		assert.Equal(mt, site.Name, got.Name)
	})
}
