package query

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"rootroutes-service/domain"
)

func TestDestinations(t *testing.T) {
	tests := []struct {
		name   string
		filter DestinationFilter
		want   bson.M
	}{
		{
			name:   "no filters keeps the base predicate",
			filter: DestinationFilter{},
			want:   bson.M{"status": domain.DestinationActive},
		},
		{
			name:   "search adds a text constraint",
			filter: DestinationFilter{Search: " falls "},
			want: bson.M{
				"status": domain.DestinationActive,
				"$text":  bson.M{"$search": "falls"},
			},
		},
		{
			name:   "tags intersect",
			filter: DestinationFilter{Tags: "waterfall, ,trekking"},
			want: bson.M{
				"status": domain.DestinationActive,
				"tags":   bson.M{"$in": []string{"waterfall", "trekking"}},
			},
		},
		{
			name:   "all filters",
			filter: DestinationFilter{Search: "dam", Tags: "lake", Difficulty: "easy"},
			want: bson.M{
				"status":     domain.DestinationActive,
				"$text":      bson.M{"$search": "dam"},
				"tags":       bson.M{"$in": []string{"lake"}},
				"difficulty": "easy",
			},
		},
		{
			name:   "blank tags are ignored",
			filter: DestinationFilter{Tags: " , "},
			want:   bson.M{"status": domain.DestinationActive},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := Destinations(tt.filter)
			assert.Equal(t, tt.want, spec.Filter)
			assert.Equal(t, bson.D{{Key: "rating.average", Value: -1}, {Key: "createdAt", Value: -1}}, spec.Sort)
		})
	}
}

func TestDestinationsStatusCannotBeOverridden(t *testing.T) {
	spec := Destinations(DestinationFilter{Search: "x", Difficulty: "hard"})
	assert.Equal(t, domain.DestinationActive, spec.Filter["status"])
}

func TestParsePagination(t *testing.T) {
	tests := []struct {
		page, limit         string
		wantPage, wantLimit int
	}{
		{"", "", 1, 10},
		{"3", "5", 3, 5},
		{"0", "-2", 1, 10},
		{"abc", "2.5", 1, 10},
		{" 2 ", " 20 ", 2, 20},
	}

	for _, tt := range tests {
		page, limit := ParsePagination(tt.page, tt.limit)
		assert.Equal(t, tt.wantPage, page, "page %q", tt.page)
		assert.Equal(t, tt.wantLimit, limit, "limit %q", tt.limit)
	}
}

func TestSkipAndFindOptions(t *testing.T) {
	spec := Destinations(DestinationFilter{Page: "3", Limit: "4"})
	assert.Equal(t, int64(8), spec.Skip())

	opts := spec.FindOptions()
	assert.Equal(t, int64(8), *opts.Skip)
	assert.Equal(t, int64(4), *opts.Limit)
	assert.Equal(t, spec.Sort, opts.Sort)
}

func TestSkipSaturatesOnHugePages(t *testing.T) {
	spec := Destinations(DestinationFilter{Page: "9223372036854775807", Limit: "10"})
	assert.Equal(t, int64(math.MaxInt64), spec.Skip())

	spec = Trips(primitive.NewObjectID(), TripFilter{Page: "4611686018427387904", Limit: "4611686018427387904"})
	assert.Equal(t, int64(math.MaxInt64), spec.Skip())

	spec = CultureSites(CultureFilter{Page: "1", Limit: "9223372036854775807"})
	assert.Equal(t, int64(0), spec.Skip())
}

func TestPagination(t *testing.T) {
	spec := Spec{Page: 2, Limit: 10}

	assert.Equal(t, Pagination{Current: 2, Pages: 3, Total: 21, Limit: 10}, spec.Pagination(21))
	assert.Equal(t, Pagination{Current: 2, Pages: 2, Total: 20, Limit: 10}, spec.Pagination(20))
	assert.Equal(t, Pagination{Current: 2, Pages: 0, Total: 0, Limit: 10}, spec.Pagination(0))
}

func TestCultureSites(t *testing.T) {
	t.Run("All means no category", func(t *testing.T) {
		assert.Equal(t, bson.M{}, CultureSites(CultureFilter{Category: "All"}).Filter)
		assert.Equal(t, bson.M{}, CultureSites(CultureFilter{}).Filter)
	})

	t.Run("category and keyword", func(t *testing.T) {
		spec := CultureSites(CultureFilter{Category: "Temples", Keyword: "sun (konark)"})
		pattern := primitive.Regex{Pattern: `sun \(konark\)`, Options: "i"}
		assert.Equal(t, bson.M{
			"category": "Temples",
			"$or": bson.A{
				bson.M{"name": pattern},
				bson.M{"description": pattern},
				bson.M{"location": pattern},
			},
		}, spec.Filter)
		assert.Equal(t, bson.D{{Key: "rating", Value: -1}, {Key: "createdAt", Value: -1}}, spec.Sort)
	})
}

func TestTrips(t *testing.T) {
	owner := primitive.NewObjectID()

	spec := Trips(owner, TripFilter{})
	assert.Equal(t, bson.M{"user": owner}, spec.Filter)

	spec = Trips(owner, TripFilter{Status: "active", Page: "2", Limit: "3"})
	assert.Equal(t, bson.M{"user": owner, "status": "active"}, spec.Filter)
	assert.Equal(t, int64(3), spec.Skip())
}

func TestOwnedDestinations(t *testing.T) {
	owner := primitive.NewObjectID()
	spec := OwnedDestinations(owner, "", "")
	assert.Equal(t, bson.M{"createdBy": owner}, spec.Filter)
	assert.Equal(t, 1, spec.Page)
	assert.Equal(t, 10, spec.Limit)
}
