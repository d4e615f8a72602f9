package dto

import (
	"salon-booking-api/internal/domain/entity"

	"github.com/google/uuid"
)

// Request DTOs

type CreateStylistRequest struct {
	Email        string                    `json:"email" validate:"required,email"`
	Password     string                    `json:"password" validate:"required,min=8"`
	FullName     string                    `json:"full_name" validate:"required,min=2,max=255"`
	PhoneNumber  string                    `json:"phone_number" validate:"omitempty,max=20"`
	Specialties  string                    `json:"specialties" validate:"omitempty,max=255"`
	Biography    string                    `json:"biography" validate:"omitempty"`
	Availability entity.WeeklyAvailability `json:"availability" validate:"required"`
}

type UpdateStylistRequest struct {
	FullName     string                    `json:"full_name" validate:"omitempty,min=2,max=255"`
	PhoneNumber  string                    `json:"phone_number" validate:"omitempty,max=20"`
	Specialties  string                    `json:"specialties" validate:"omitempty,max=255"`
	Biography    string                    `json:"biography" validate:"omitempty"`
	Availability entity.WeeklyAvailability `json:"availability" validate:"omitempty"`
	IsActive     *bool                     `json:"is_active" validate:"omitempty"`
}

type StylistUpdateSelfRequest struct {
	PhoneNumber  string                    `json:"phone_number" validate:"omitempty,max=20"`
	Specialties  string                    `json:"specialties" validate:"omitempty,max=255"`
	Biography    string                    `json:"biography" validate:"omitempty"`
	Availability entity.WeeklyAvailability `json:"availability" validate:"omitempty"`
	OldPassword  string                    `json:"old_password" validate:"omitempty"`
	NewPassword  string                    `json:"new_password" validate:"omitempty,min=8"`
}

// Response DTOs

type StylistResponse struct {
	ID           uuid.UUID                 `json:"id"`
	Email        string                    `json:"email"`
	FullName     string                    `json:"full_name"`
	PhoneNumber  string                    `json:"phone_number,omitempty"`
	Specialties  string                    `json:"specialties,omitempty"`
	Biography    string                    `json:"biography,omitempty"`
	Availability entity.WeeklyAvailability `json:"availability,omitempty"`
	IsActive     bool                      `json:"is_active"`
}

type StylistListResponse struct {
	Stylists []StylistResponse `json:"stylists"`
	Total    int               `json:"total"`
}
