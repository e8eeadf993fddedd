package api

import (
	"github.com/google/uuid"
)

// Common request/response structures. Update payloads use pointer
// fields so "absent" and "set to zero value" are distinguishable, and
// deliberately omit immutable fields (owner_id, user_id, place_id,
// state_id): combined with strict JSON decoding, a payload naming one
// of them is rejected instead of silently ignored.

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	FirstName string `json:"first_name" validate:"required,max=50"`
	LastName  string `json:"last_name"  validate:"required,max=50"`
	Email     string `json:"email"      validate:"required,email"`
	Password  string `json:"password"   validate:"required,min=8,max=72"`
}

// UpdateUserRequest defines the payload for partial user updates.
type UpdateUserRequest struct {
	FirstName *string `json:"first_name" validate:"omitempty,max=50"`
	LastName  *string `json:"last_name"  validate:"omitempty,max=50"`
	Email     *string `json:"email"      validate:"omitempty,email"`
}

// ChangePasswordRequest defines the payload for the password change endpoint.
type ChangePasswordRequest struct {
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// AuthResponse defines the successful response for authentication endpoints.
type AuthResponse struct {
	// UserID is the unique identifier for the authenticated user
	UserID uuid.UUID `json:"user_id"`

	// Token is the JWT token used for API authorization
	Token string `json:"token"`
}

// CreatePlaceRequest defines the payload for listing a place.
type CreatePlaceRequest struct {
	Title       string      `json:"title"       validate:"required,max=128"`
	Description string      `json:"description"`
	Price       float64     `json:"price"       validate:"gte=0"`
	Latitude    float64     `json:"latitude"    validate:"gte=-90,lte=90"`
	Longitude   float64     `json:"longitude"   validate:"gte=-180,lte=180"`
	OwnerID     uuid.UUID   `json:"owner_id"    validate:"required"`
	CityID      uuid.UUID   `json:"city_id"`
	AmenityIDs  []uuid.UUID `json:"amenity_ids"`
}

// UpdatePlaceRequest defines the payload for partial place updates.
// The owner cannot be changed.
type UpdatePlaceRequest struct {
	Title       *string      `json:"title"       validate:"omitempty,max=128"`
	Description *string      `json:"description"`
	Price       *float64     `json:"price"       validate:"omitempty,gte=0"`
	Latitude    *float64     `json:"latitude"    validate:"omitempty,gte=-90,lte=90"`
	Longitude   *float64     `json:"longitude"   validate:"omitempty,gte=-180,lte=180"`
	CityID      *uuid.UUID   `json:"city_id"`
	AmenityIDs  *[]uuid.UUID `json:"amenity_ids"`
}

// CreateReviewRequest defines the payload for reviewing a place.
type CreateReviewRequest struct {
	Text    string    `json:"text"     validate:"required"`
	Rating  int       `json:"rating"   validate:"required,min=1,max=5"`
	UserID  uuid.UUID `json:"user_id"  validate:"required"`
	PlaceID uuid.UUID `json:"place_id" validate:"required"`
}

// UpdateReviewRequest defines the payload for partial review updates.
// The author and the reviewed place cannot be changed.
type UpdateReviewRequest struct {
	Text   *string `json:"text"`
	Rating *int    `json:"rating" validate:"omitempty,min=1,max=5"`
}

// CreateAmenityRequest defines the payload for creating an amenity.
type CreateAmenityRequest struct {
	Name string `json:"name" validate:"required,max=50"`
}

// UpdateAmenityRequest defines the payload for partial amenity updates.
type UpdateAmenityRequest struct {
	Name *string `json:"name" validate:"omitempty,max=50"`
}

// CreateStateRequest defines the payload for creating a state.
type CreateStateRequest struct {
	Name string `json:"name" validate:"required,max=128"`
}

// UpdateStateRequest defines the payload for partial state updates.
type UpdateStateRequest struct {
	Name *string `json:"name" validate:"omitempty,max=128"`
}

// CreateCityRequest defines the payload for creating a city. The state
// is fixed at creation.
type CreateCityRequest struct {
	Name    string    `json:"name"     validate:"required,max=128"`
	StateID uuid.UUID `json:"state_id" validate:"required"`
}

// UpdateCityRequest defines the payload for partial city updates.
type UpdateCityRequest struct {
	Name *string `json:"name" validate:"omitempty,max=128"`
}
