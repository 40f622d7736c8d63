package domain

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TripStatus string

// The intended lifecycle is planning -> active -> completed, with cancelled
// reachable from planning or active. Owners may set any of these values.
const (
	TripPlanning  TripStatus = "planning"
	TripActive    TripStatus = "active"
	TripCompleted TripStatus = "completed"
	TripCancelled TripStatus = "cancelled"
)

type Trip struct {
	ID           primitive.ObjectID   `bson:"_id,omitempty" json:"_id"`
	User         primitive.ObjectID   `bson:"user" json:"user" validate:"required"`
	Title        string               `bson:"title" json:"title" validate:"required,max=120"`
	StartDate    time.Time            `bson:"startDate" json:"startDate" validate:"required"`
	EndDate      time.Time            `bson:"endDate" json:"endDate" validate:"required"`
	Budget       float64              `bson:"budget" json:"budget" validate:"min=0"`
	Travelers    int                  `bson:"travelers" json:"travelers" validate:"min=1"`
	Destinations []primitive.ObjectID `bson:"destinations" json:"destinations"`
	Status       TripStatus           `bson:"status" json:"status" validate:"required,oneof=planning active completed cancelled"`
	Notes        string               `bson:"notes" json:"notes"`
	CreatedAt    time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time            `bson:"updatedAt" json:"updatedAt"`
}

type CreateTripInput struct {
	Title        string               `json:"title"`
	StartDate    DateInput            `json:"startDate"`
	EndDate      DateInput            `json:"endDate"`
	Budget       float64              `json:"budget"`
	Travelers    *int                 `json:"travelers"`
	Destinations []primitive.ObjectID `json:"destinations"`
	Status       TripStatus           `json:"status"`
	Notes        string               `json:"notes"`
}

type UpdateTripInput struct {
	Title        *string               `json:"title"`
	StartDate    *DateInput            `json:"startDate"`
	EndDate      *DateInput            `json:"endDate"`
	Budget       *float64              `json:"budget"`
	Travelers    *int                  `json:"travelers"`
	Destinations *[]primitive.ObjectID `json:"destinations"`
	Status       *TripStatus           `json:"status"`
	Notes        *string               `json:"notes"`
}

func NewTrip(in *CreateTripInput, owner primitive.ObjectID, now time.Time) (*Trip, error) {
	t := &Trip{
		User:         owner,
		Title:        strings.TrimSpace(in.Title),
		StartDate:    in.StartDate.Time,
		EndDate:      in.EndDate.Time,
		Budget:       in.Budget,
		Travelers:    1,
		Destinations: in.Destinations,
		Status:       in.Status,
		Notes:        in.Notes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if in.Travelers != nil {
		t.Travelers = *in.Travelers
	}
	if t.Destinations == nil {
		t.Destinations = []primitive.ObjectID{}
	}
	if t.Status == "" {
		t.Status = TripPlanning
	}
	if err := Validate(t); err != nil {
		return nil, err
	}
	return t, nil
}

// ApplyUpdate copies the set fields of in onto t and re-validates. The owner
// never changes.
func (t *Trip) ApplyUpdate(in *UpdateTripInput, now time.Time) error {
	next := *t
	if in.Title != nil {
		next.Title = strings.TrimSpace(*in.Title)
	}
	if in.StartDate != nil {
		next.StartDate = in.StartDate.Time
	}
	if in.EndDate != nil {
		next.EndDate = in.EndDate.Time
	}
	if in.Budget != nil {
		next.Budget = *in.Budget
	}
	if in.Travelers != nil {
		next.Travelers = *in.Travelers
	}
	if in.Destinations != nil {
		next.Destinations = *in.Destinations
		if next.Destinations == nil {
			next.Destinations = []primitive.ObjectID{}
		}
	}
	if in.Status != nil {
		next.Status = *in.Status
	}
	if in.Notes != nil {
		next.Notes = *in.Notes
	}
	next.UpdatedAt = now

	if err := Validate(&next); err != nil {
		return err
	}
	*t = next
	return nil
}
