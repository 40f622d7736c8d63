package domain

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Difficulty string

const (
	DifficultyEasy      Difficulty = "easy"
	DifficultyModerate  Difficulty = "moderate"
	DifficultyDifficult Difficulty = "difficult"
)

type DestinationStatus string

const (
	DestinationActive   DestinationStatus = "active"
	DestinationPending  DestinationStatus = "pending"
	DestinationInactive DestinationStatus = "inactive"
)

// Tag and facility values accepted on destinations. They must match the
// oneof lists on Destination.
var (
	DestinationTags = []string{
		"waterfall", "hill", "forest", "wildlife", "lake", "dam", "temple",
		"heritage", "tribal", "adventure", "trekking", "picnic", "park", "religious",
	}
	DestinationFacilities = []string{
		"parking", "restroom", "food", "guide", "accommodation", "first-aid",
		"drinking-water", "wheelchair-access", "shop",
	}
)

type Coordinates struct {
	Lat float64 `bson:"lat" json:"lat" validate:"min=-90,max=90"`
	Lng float64 `bson:"lng" json:"lng" validate:"min=-180,max=180"`
}

type Image struct {
	URL string `bson:"url" json:"url" validate:"required"`
	Alt string `bson:"alt" json:"alt"`
}

type Rating struct {
	Average float64 `bson:"average" json:"average" validate:"min=0,max=5"`
	Count   int     `bson:"count" json:"count" validate:"min=0"`
}

type Destination struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title       string             `bson:"title" json:"title" validate:"required,max=120"`
	Description string             `bson:"description" json:"description" validate:"required"`
	Location    string             `bson:"location" json:"location" validate:"required"`
	Coordinates Coordinates        `bson:"coordinates" json:"coordinates"`
	Images      []Image            `bson:"images" json:"images" validate:"dive"`
	Tags        []string           `bson:"tags" json:"tags" validate:"dive,oneof=waterfall hill forest wildlife lake dam temple heritage tribal adventure trekking picnic park religious"`
	Difficulty  Difficulty         `bson:"difficulty" json:"difficulty" validate:"required,oneof=easy moderate difficult"`
	BestTime    string             `bson:"bestTime" json:"bestTime"`
	Duration    string             `bson:"duration" json:"duration"`
	EntryFee    string             `bson:"entryFee" json:"entryFee"`
	Facilities  []string           `bson:"facilities" json:"facilities" validate:"dive,oneof=parking restroom food guide accommodation first-aid drinking-water wheelchair-access shop"`
	Rating      Rating             `bson:"rating" json:"rating"`
	Status      DestinationStatus  `bson:"status" json:"status" validate:"required,oneof=active pending inactive"`
	CreatedBy   primitive.ObjectID `bson:"createdBy" json:"createdBy" validate:"required"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type CreateDestinationInput struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Location    string      `json:"location"`
	Coordinates Coordinates `json:"coordinates"`
	Images      []Image     `json:"images"`
	Tags        []string    `json:"tags"`
	Difficulty  Difficulty  `json:"difficulty"`
	BestTime    string      `json:"bestTime"`
	Duration    string      `json:"duration"`
	EntryFee    string      `json:"entryFee"`
	Facilities  []string    `json:"facilities"`
}

// UpdateDestinationInput carries only the fields a caller may change. The
// owner and rating are not part of it.
type UpdateDestinationInput struct {
	Title       *string            `json:"title"`
	Description *string            `json:"description"`
	Location    *string            `json:"location"`
	Coordinates *Coordinates       `json:"coordinates"`
	Images      *[]Image           `json:"images"`
	Tags        *[]string          `json:"tags"`
	Difficulty  *Difficulty        `json:"difficulty"`
	BestTime    *string            `json:"bestTime"`
	Duration    *string            `json:"duration"`
	EntryFee    *string            `json:"entryFee"`
	Facilities  *[]string          `json:"facilities"`
	Status      *DestinationStatus `json:"status"`
}

type RateInput struct {
	Rating int `json:"rating" validate:"required,min=1,max=5"`
}

type StatusInput struct {
	Status DestinationStatus `json:"status" validate:"required,oneof=active pending inactive"`
}

func NewDestination(in *CreateDestinationInput, owner primitive.ObjectID, now time.Time) (*Destination, error) {
	d := &Destination{
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		Location:    strings.TrimSpace(in.Location),
		Coordinates: in.Coordinates,
		Images:      nonNilImages(in.Images),
		Tags:        nonNilStrings(in.Tags),
		Difficulty:  in.Difficulty,
		BestTime:    in.BestTime,
		Duration:    in.Duration,
		EntryFee:    in.EntryFee,
		Facilities:  nonNilStrings(in.Facilities),
		Status:      DestinationActive,
		CreatedBy:   owner,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if d.Difficulty == "" {
		d.Difficulty = DifficultyEasy
	}
	if err := Validate(d); err != nil {
		return nil, err
	}
	return d, nil
}

// ApplyUpdate copies the set fields of in onto d and re-validates. d is left
// untouched when validation fails.
func (d *Destination) ApplyUpdate(in *UpdateDestinationInput, now time.Time) error {
	next := *d
	if in.Title != nil {
		next.Title = strings.TrimSpace(*in.Title)
	}
	if in.Description != nil {
		next.Description = strings.TrimSpace(*in.Description)
	}
	if in.Location != nil {
		next.Location = strings.TrimSpace(*in.Location)
	}
	if in.Coordinates != nil {
		next.Coordinates = *in.Coordinates
	}
	if in.Images != nil {
		next.Images = nonNilImages(*in.Images)
	}
	if in.Tags != nil {
		next.Tags = nonNilStrings(*in.Tags)
	}
	if in.Difficulty != nil {
		next.Difficulty = *in.Difficulty
	}
	if in.BestTime != nil {
		next.BestTime = *in.BestTime
	}
	if in.Duration != nil {
		next.Duration = *in.Duration
	}
	if in.EntryFee != nil {
		next.EntryFee = *in.EntryFee
	}
	if in.Facilities != nil {
		next.Facilities = nonNilStrings(*in.Facilities)
	}
	if in.Status != nil {
		next.Status = *in.Status
	}
	next.UpdatedAt = now

	if err := Validate(&next); err != nil {
		return err
	}
	*d = next
	return nil
}

// AddRating folds one 1-5 score into the running average.
func (r Rating) AddRating(score int) Rating {
	total := r.Average*float64(r.Count) + float64(score)
	count := r.Count + 1
	return Rating{Average: roundTo(total/float64(count), 2), Count: count}
}

func roundTo(v float64, places int) float64 {
	pow := 1.0
	for i := 0; i < places; i++ {
		pow *= 10
	}
	return float64(int64(v*pow+0.5)) / pow
}

func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func nonNilImages(images []Image) []Image {
	if images == nil {
		return []Image{}
	}
	return images
}
