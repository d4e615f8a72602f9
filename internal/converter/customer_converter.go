package converter

import (
	"salon-booking-api/internal/delivery/dto"
	"salon-booking-api/internal/domain/entity"
)

// CustomerToResponse converts a CustomerProfile entity to CustomerResponse DTO
func CustomerToResponse(profile *entity.CustomerProfile) *dto.CustomerResponse {
	if profile == nil {
		return nil
	}

	return &dto.CustomerResponse{
		ID:          profile.UserID,
		Email:       profile.User.Email,
		FullName:    profile.User.FullName,
		PhoneNumber: profile.PhoneNumber,
		Notes:       profile.Notes,
	}
}

// CustomersToResponses converts a slice of CustomerProfile entities to CustomerResponse DTOs
func CustomersToResponses(profiles []entity.CustomerProfile) []dto.CustomerResponse {
	responses := make([]dto.CustomerResponse, len(profiles))
	for i, profile := range profiles {
		resp := CustomerToResponse(&profile)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
