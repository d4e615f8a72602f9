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

type CustomerHandler struct {
	customerUsecase usecase.CustomerProfileUsecase
	validator       *validator.CustomValidator
}

func NewCustomerHandler(customerUsecase usecase.CustomerProfileUsecase, validator *validator.CustomValidator) *CustomerHandler {
	return &CustomerHandler{
		customerUsecase: customerUsecase,
		validator:       validator,
	}
}

func (h *CustomerHandler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	customerID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid customer ID", nil)
		return
	}

	customer, err := h.customerUsecase.GetCustomer(r.Context(), customerID)
	if err != nil {
		if err == usecase.ErrCustomerNotFound {
			response.NotFound(w, "Customer not found")
			return
		}
		response.InternalServerError(w, "Failed to get customer")
		return
	}

	response.Success(w, http.StatusOK, "Customer retrieved successfully", customer)
}

func (h *CustomerHandler) GetAllCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.customerUsecase.GetAllCustomers(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get customers")
		return
	}

	response.Success(w, http.StatusOK, "Customers retrieved successfully", customers)
}

// GetOwnProfile returns the authenticated customer's profile
func (h *CustomerHandler) GetOwnProfile(w http.ResponseWriter, r *http.Request) {
	customerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	customer, err := h.customerUsecase.GetCustomer(r.Context(), customerID)
	if err != nil {
		if err == usecase.ErrCustomerNotFound {
			response.NotFound(w, "Customer not found")
			return
		}
		response.InternalServerError(w, "Failed to get customer")
		return
	}

	response.Success(w, http.StatusOK, "Customer retrieved successfully", customer)
}

// UpdateOwnProfile lets an authenticated customer edit their own profile
// and password.
func (h *CustomerHandler) UpdateOwnProfile(w http.ResponseWriter, r *http.Request) {
	customerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.UpdateCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	customer, err := h.customerUsecase.UpdateSelfProfile(r.Context(), customerID, &req)
	if err != nil {
		switch err {
		case usecase.ErrCustomerNotFound:
			response.NotFound(w, "Customer not found")
		case usecase.ErrInvalidOldPassword:
			response.Error(w, http.StatusBadRequest, "Invalid old password", nil)
		default:
			response.InternalServerError(w, "Failed to update profile")
		}
		return
	}

	response.Success(w, http.StatusOK, "Profile updated successfully", customer)
}
