// Package query turns list-request filter parameters into MongoDB match,
// sort and pagination specifications. Everything here is pure: no I/O and
// no failure modes. Malformed pagination input falls back to the defaults.
package query

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"rootroutes-service/domain"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// Spec is a composed list query: an AND of all active predicates plus a
// deterministic sort and the page window.
type Spec struct {
	Filter bson.M
	Sort   bson.D
	Page   int
	Limit  int
}

// Skip saturates at math.MaxInt64 so an absurd page yields an empty page
// instead of a negative offset.
func (s Spec) Skip() int64 {
	page, limit := int64(s.Page-1), int64(s.Limit)
	if page > 0 && limit > 0 && page > math.MaxInt64/limit {
		return math.MaxInt64
	}
	return page * limit
}

func (s Spec) FindOptions() *options.FindOptions {
	return options.Find().
		SetSort(s.Sort).
		SetSkip(s.Skip()).
		SetLimit(int64(s.Limit))
}

type Pagination struct {
	Current int   `json:"current"`
	Pages   int   `json:"pages"`
	Total   int64 `json:"total"`
	Limit   int   `json:"limit"`
}

func (s Spec) Pagination(total int64) Pagination {
	pages := 0
	if total > 0 {
		pages = int(math.Ceil(float64(total) / float64(s.Limit)))
	}
	return Pagination{Current: s.Page, Pages: pages, Total: total, Limit: s.Limit}
}

// Page is one page of results with its pagination metadata.
type Page[T any] struct {
	Items      []T        `json:"items"`
	Pagination Pagination `json:"pagination"`
}

type DestinationFilter struct {
	Search     string
	Tags       string
	Difficulty string
	Page       string
	Limit      string
}

type CultureFilter struct {
	Category string
	Keyword  string
	Page     string
	Limit    string
}

type TripFilter struct {
	Status string
	Page   string
	Limit  string
}

// Destinations composes the public destination listing. Only active
// destinations are ever matched, whatever the caller asks for.
func Destinations(f DestinationFilter) Spec {
	filter := bson.M{"status": domain.DestinationActive}

	if search := strings.TrimSpace(f.Search); search != "" {
		filter["$text"] = bson.M{"$search": search}
	}
	if tags := SplitList(f.Tags); len(tags) > 0 {
		filter["tags"] = bson.M{"$in": tags}
	}
	if difficulty := strings.TrimSpace(f.Difficulty); difficulty != "" {
		filter["difficulty"] = difficulty
	}

	page, limit := ParsePagination(f.Page, f.Limit)
	return Spec{
		Filter: filter,
		Sort:   bson.D{{Key: "rating.average", Value: -1}, {Key: "createdAt", Value: -1}},
		Page:   page,
		Limit:  limit,
	}
}

// OwnedDestinations lists everything one user created, whatever its status.
func OwnedDestinations(owner primitive.ObjectID, page, limit string) Spec {
	p, l := ParsePagination(page, limit)
	return Spec{
		Filter: bson.M{"createdBy": owner},
		Sort:   bson.D{{Key: "createdAt", Value: -1}},
		Page:   p,
		Limit:  l,
	}
}

func CultureSites(f CultureFilter) Spec {
	filter := bson.M{}

	if category := strings.TrimSpace(f.Category); category != "" && category != string(domain.CategoryAll) {
		filter["category"] = category
	}
	if keyword := strings.TrimSpace(f.Keyword); keyword != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(keyword), Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"name": pattern},
			bson.M{"description": pattern},
			bson.M{"location": pattern},
		}
	}

	page, limit := ParsePagination(f.Page, f.Limit)
	return Spec{
		Filter: filter,
		Sort:   bson.D{{Key: "rating", Value: -1}, {Key: "createdAt", Value: -1}},
		Page:   page,
		Limit:  limit,
	}
}

// Trips only ever matches the caller's own trips.
func Trips(owner primitive.ObjectID, f TripFilter) Spec {
	filter := bson.M{"user": owner}
	if status := strings.TrimSpace(f.Status); status != "" {
		filter["status"] = status
	}

	page, limit := ParsePagination(f.Page, f.Limit)
	return Spec{
		Filter: filter,
		Sort:   bson.D{{Key: "startDate", Value: 1}, {Key: "createdAt", Value: -1}},
		Page:   page,
		Limit:  limit,
	}
}

// ParsePagination coerces page and limit; anything that is not a positive
// integer becomes the default.
func ParsePagination(page, limit string) (int, int) {
	return positiveOr(page, DefaultPage), positiveOr(limit, DefaultLimit)
}

func positiveOr(raw string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return fallback
	}
	return n
}

// SplitList splits a comma separated list, trimming blanks.
func SplitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
