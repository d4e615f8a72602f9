package converter

import (
	"salon-booking-api/internal/delivery/dto"
	"salon-booking-api/internal/domain/entity"
)

// StylistToResponse converts a StylistProfile entity to StylistResponse DTO
func StylistToResponse(profile *entity.StylistProfile) *dto.StylistResponse {
	if profile == nil {
		return nil
	}

	return &dto.StylistResponse{
		ID:           profile.UserID,
		Email:        profile.User.Email,
		FullName:     profile.User.FullName,
		PhoneNumber:  profile.PhoneNumber,
		Specialties:  profile.Specialties,
		Biography:    profile.Biography,
		Availability: profile.Availability,
		IsActive:     profile.User.IsActive,
	}
}

// StylistsToResponses converts a slice of StylistProfile entities to StylistResponse DTOs
func StylistsToResponses(profiles []entity.StylistProfile) []dto.StylistResponse {
	responses := make([]dto.StylistResponse, len(profiles))
	for i, profile := range profiles {
		resp := StylistToResponse(&profile)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
