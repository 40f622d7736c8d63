package domain

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CultureCategory string

const (
	CategoryTemples         CultureCategory = "Temples"
	CategoryTribalHeritage  CultureCategory = "Tribal Heritage"
	CategoryFestivals       CultureCategory = "Festivals"
	CategoryHandicrafts     CultureCategory = "Handicrafts"
	CategoryFolkArts        CultureCategory = "Folk Arts"
	CategoryHistoricalSites CultureCategory = "Historical Sites"

	// CategoryAll is accepted by list filters and means no category filter.
	CategoryAll CultureCategory = "All"
)

type CultureSite struct {
	ID            primitive.ObjectID  `bson:"_id,omitempty" json:"_id"`
	Name          string              `bson:"name" json:"name" validate:"required,max=120"`
	Category      CultureCategory     `bson:"category" json:"category" validate:"required,oneof=Temples 'Tribal Heritage' Festivals Handicrafts 'Folk Arts' 'Historical Sites'"`
	Description   string              `bson:"description" json:"description" validate:"required"`
	Location      string              `bson:"location" json:"location" validate:"required"`
	Images        []string            `bson:"images" json:"images"`
	Period        string              `bson:"period" json:"period"`
	Rating        float64             `bson:"rating" json:"rating" validate:"min=0,max=5"`
	Visitors      string              `bson:"visitors" json:"visitors"`
	GoogleMapsURL string              `bson:"googleMapsUrl" json:"googleMapsUrl"`
	Significance  string              `bson:"significance" json:"significance"`
	Details       map[string]string   `bson:"details" json:"details"`
	User          *primitive.ObjectID `bson:"user,omitempty" json:"user,omitempty"`
	CreatedAt     time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time           `bson:"updatedAt" json:"updatedAt"`
}

type CreateCultureSiteInput struct {
	Name          string            `json:"name"`
	Category      CultureCategory   `json:"category"`
	Description   string            `json:"description"`
	Location      string            `json:"location"`
	Images        []string          `json:"images"`
	Period        string            `json:"period"`
	Rating        float64           `json:"rating"`
	Visitors      string            `json:"visitors"`
	GoogleMapsURL string            `json:"googleMapsUrl"`
	Significance  string            `json:"significance"`
	Details       map[string]string `json:"details"`
}

// NewCultureSite validates in. owner is optional: culture content may be
// created anonymously.
func NewCultureSite(in *CreateCultureSiteInput, owner *primitive.ObjectID, now time.Time) (*CultureSite, error) {
	site := &CultureSite{
		Name:          strings.TrimSpace(in.Name),
		Category:      in.Category,
		Description:   strings.TrimSpace(in.Description),
		Location:      strings.TrimSpace(in.Location),
		Images:        nonNilStrings(in.Images),
		Period:        in.Period,
		Rating:        in.Rating,
		Visitors:      in.Visitors,
		GoogleMapsURL: in.GoogleMapsURL,
		Significance:  in.Significance,
		Details:       in.Details,
		User:          owner,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if site.Details == nil {
		site.Details = map[string]string{}
	}
	if err := Validate(site); err != nil {
		return nil, err
	}
	return site, nil
}
