package handler

import (
	"encoding/json"
	"net/http"

	"salon-booking-api/internal/delivery/dto"
	"salon-booking-api/internal/delivery/http/middleware"
	"salon-booking-api/internal/usecase"
	"salon-booking-api/pkg/response"
	"salon-booking-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type StylistHandler struct {
	stylistUsecase usecase.StylistProfileUsecase
	validator      *validator.CustomValidator
}

func NewStylistHandler(stylistUsecase usecase.StylistProfileUsecase, validator *validator.CustomValidator) *StylistHandler {
	return &StylistHandler{
		stylistUsecase: stylistUsecase,
		validator:      validator,
	}
}

func (h *StylistHandler) CreateStylist(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateStylistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	stylist, err := h.stylistUsecase.CreateStylist(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrStylistEmailExists:
			response.Error(w, http.StatusConflict, "Email already exists", nil)
		case usecase.ErrInvalidAvailability:
			response.Error(w, http.StatusBadRequest, "Invalid weekly availability", nil)
		case usecase.ErrRoleNotFound:
			response.Error(w, http.StatusBadRequest, "Role not found", nil)
		default:
			response.InternalServerError(w, "Failed to create stylist")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Stylist created successfully", stylist)
}

func (h *StylistHandler) GetStylist(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	stylistID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid stylist ID", nil)
		return
	}

	stylist, err := h.stylistUsecase.GetStylist(r.Context(), stylistID)
	if err != nil {
		if err == usecase.ErrStylistNotFound {
			response.NotFound(w, "Stylist not found")
			return
		}
		response.InternalServerError(w, "Failed to get stylist")
		return
	}

	response.Success(w, http.StatusOK, "Stylist retrieved successfully", stylist)
}

func (h *StylistHandler) GetAllStylists(w http.ResponseWriter, r *http.Request) {
	stylists, err := h.stylistUsecase.GetAllStylists(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get stylists")
		return
	}

	response.Success(w, http.StatusOK, "Stylists retrieved successfully", stylists)
}

func (h *StylistHandler) UpdateStylist(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	stylistID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid stylist ID", nil)
		return
	}

	var req dto.UpdateStylistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	stylist, err := h.stylistUsecase.UpdateStylist(r.Context(), stylistID, &req)
	if err != nil {
		switch err {
		case usecase.ErrStylistNotFound:
			response.NotFound(w, "Stylist not found")
		case usecase.ErrInvalidAvailability:
			response.Error(w, http.StatusBadRequest, "Invalid weekly availability", nil)
		default:
			response.InternalServerError(w, "Failed to update stylist")
		}
		return
	}

	response.Success(w, http.StatusOK, "Stylist updated successfully", stylist)
}

// UpdateSelfProfile lets an authenticated stylist edit their own profile,
// availability and password.
func (h *StylistHandler) UpdateSelfProfile(w http.ResponseWriter, r *http.Request) {
	stylistID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.StylistUpdateSelfRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	stylist, err := h.stylistUsecase.UpdateSelfProfile(r.Context(), stylistID, &req)
	if err != nil {
		switch err {
		case usecase.ErrStylistNotFound:
			response.NotFound(w, "Stylist not found")
		case usecase.ErrInvalidAvailability:
			response.Error(w, http.StatusBadRequest, "Invalid weekly availability", nil)
		case usecase.ErrInvalidOldPassword:
			response.Error(w, http.StatusBadRequest, "Invalid old password", nil)
		default:
			response.InternalServerError(w, "Failed to update profile")
		}
		return
	}

	response.Success(w, http.StatusOK, "Profile updated successfully", stylist)
}

func (h *StylistHandler) DeleteStylist(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	stylistID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid stylist ID", nil)
		return
	}

	if err := h.stylistUsecase.DeleteStylist(r.Context(), stylistID); err != nil {
		if err == usecase.ErrStylistNotFound {
			response.NotFound(w, "Stylist not found")
			return
		}
		response.InternalServerError(w, "Failed to delete stylist")
		return
	}

	response.Success(w, http.StatusOK, "Stylist deleted successfully", nil)
}
