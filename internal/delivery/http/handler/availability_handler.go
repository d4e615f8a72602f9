package handler

import (
	"net/http"
	"time"

	"salon-booking-api/internal/usecase"
	"salon-booking-api/pkg/response"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type AvailabilityHandler struct {
	availabilityUsecase usecase.AvailabilityUsecase
}

func NewAvailabilityHandler(availabilityUsecase usecase.AvailabilityUsecase) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityUsecase: availabilityUsecase,
	}
}

// GetAvailableSlots lists the offerable start times for one stylist,
// service and date.
// GET /stylists/{id}/availability?service_id=<uuid>&date=YYYY-MM-DD
func (h *AvailabilityHandler) GetAvailableSlots(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	stylistID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid stylist ID", nil)
		return
	}

	serviceID, err := uuid.Parse(r.URL.Query().Get("service_id"))
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid or missing service_id", nil)
		return
	}

	date := r.URL.Query().Get("date")
	if _, err := time.Parse("2006-01-02", date); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid or missing date, use YYYY-MM-DD", nil)
		return
	}

	slots, err := h.availabilityUsecase.GetAvailableSlots(r.Context(), stylistID, serviceID, date)
	if err != nil {
		switch err {
		case usecase.ErrStylistNotFound:
			response.NotFound(w, "Stylist not found")
		case usecase.ErrServiceNotFound:
			response.NotFound(w, "Service not found")
		case usecase.ErrServiceInactive:
			response.Error(w, http.StatusBadRequest, "Service is not active", nil)
		default:
			response.InternalServerError(w, "Failed to get available slots")
		}
		return
	}

	response.Success(w, http.StatusOK, "Available slots retrieved successfully", slots)
}
