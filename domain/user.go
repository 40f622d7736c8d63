package domain

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name" validate:"required,max=60"`
	Email     string             `bson:"email" json:"email" validate:"required,email"`
	Password  string             `bson:"password" json:"-" validate:"required"`
	Role      UserRole           `bson:"role" json:"role" validate:"required,oneof=user admin"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Identity is what the auth gate attaches to an authenticated request.
type Identity struct {
	ID   primitive.ObjectID
	Role UserRole
}

func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

type RegisterInput struct {
	Name     string `json:"name" validate:"required,max=60"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateProfileInput struct {
	Name     *string `json:"name" validate:"omitempty,max=60"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Password *string `json:"password" validate:"omitempty,min=6,max=72"`
}

type UserResponse struct {
	ID        primitive.ObjectID `json:"id"`
	Name      string             `json:"name"`
	Email     string             `json:"email"`
	Role      UserRole           `json:"role"`
	CreatedAt time.Time          `json:"createdAt"`
}

type AuthResponse struct {
	Token string        `json:"token"`
	User  *UserResponse `json:"user"`
}

// NewUser builds a user with the default role. The password must already
// be hashed.
func NewUser(in *RegisterInput, passwordHash string, now time.Time) (*User, error) {
	user := &User{
		Name:      strings.TrimSpace(in.Name),
		Email:     NormalizeEmail(in.Email),
		Password:  passwordHash,
		Role:      RoleUser,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := Validate(user); err != nil {
		return nil, err
	}
	return user, nil
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (u *User) Identity() Identity {
	return Identity{ID: u.ID, Role: u.Role}
}

func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
