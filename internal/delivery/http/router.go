package http

import (
	"net/http"

	"salon-booking-api/internal/delivery/http/handler"
	"salon-booking-api/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	authHandler         *handler.AuthHandler
	stylistHandler      *handler.StylistHandler
	customerHandler     *handler.CustomerHandler
	serviceHandler      *handler.ServiceHandler
	availabilityHandler *handler.AvailabilityHandler
	appointmentHandler  *handler.AppointmentHandler
	auditLogHandler     *handler.AuditLogHandler
	authMiddleware      *middleware.AuthMiddleware
	corsMiddleware      *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	stylistHandler *handler.StylistHandler,
	customerHandler *handler.CustomerHandler,
	serviceHandler *handler.ServiceHandler,
	availabilityHandler *handler.AvailabilityHandler,
	appointmentHandler *handler.AppointmentHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		authHandler:         authHandler,
		stylistHandler:      stylistHandler,
		customerHandler:     customerHandler,
		serviceHandler:      serviceHandler,
		availabilityHandler: availabilityHandler,
		appointmentHandler:  appointmentHandler,
		auditLogHandler:     auditLogHandler,
		authMiddleware:      authMiddleware,
		corsMiddleware:      corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Public catalog: anyone can browse stylists, services and open slots
	api.HandleFunc("/stylists", r.stylistHandler.GetAllStylists).Methods(http.MethodGet)
	api.HandleFunc("/stylists/{id}", r.stylistHandler.GetStylist).Methods(http.MethodGet)
	api.HandleFunc("/stylists/{id}/availability", r.availabilityHandler.GetAvailableSlots).Methods(http.MethodGet)
	api.HandleFunc("/services", r.serviceHandler.GetAllServices).Methods(http.MethodGet)
	api.HandleFunc("/services/{id}", r.serviceHandler.GetService).Methods(http.MethodGet)

	// Customer routes (protected - customer only)
	customer := api.PathPrefix("/customer").Subrouter()
	customer.Use(r.authMiddleware.Authenticate)
	customer.Use(middleware.RequireCustomer)
	customer.HandleFunc("/profile", r.customerHandler.GetOwnProfile).Methods(http.MethodGet)
	customer.HandleFunc("/profile", r.customerHandler.UpdateOwnProfile).Methods(http.MethodPut)
	customer.HandleFunc("/appointments", r.appointmentHandler.CreateAppointment).Methods(http.MethodPost)
	customer.HandleFunc("/appointments", r.appointmentHandler.GetMyAppointments).Methods(http.MethodGet)
	customer.HandleFunc("/appointments/{id}", r.appointmentHandler.GetAppointment).Methods(http.MethodGet)
	customer.HandleFunc("/appointments/{id}/reschedule", r.appointmentHandler.RescheduleAppointment).Methods(http.MethodPut)
	customer.HandleFunc("/appointments/{id}/cancel", r.appointmentHandler.CancelAppointment).Methods(http.MethodPut)

	// Stylist routes (protected - stylist only)
	stylist := api.PathPrefix("/stylist").Subrouter()
	stylist.Use(r.authMiddleware.Authenticate)
	stylist.Use(middleware.RequireStylist)
	stylist.HandleFunc("/profile", r.stylistHandler.UpdateSelfProfile).Methods(http.MethodPut)
	stylist.HandleFunc("/appointments", r.appointmentHandler.GetStylistDaySheet).Methods(http.MethodGet)
	stylist.HandleFunc("/appointments/{id}/complete", r.appointmentHandler.CompleteAppointment).Methods(http.MethodPut)
	stylist.HandleFunc("/appointments/{id}/no-show", r.appointmentHandler.MarkNoShow).Methods(http.MethodPut)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)

	// Stylist management (admin)
	admin.HandleFunc("/stylists", r.stylistHandler.CreateStylist).Methods(http.MethodPost)
	admin.HandleFunc("/stylists", r.stylistHandler.GetAllStylists).Methods(http.MethodGet)
	admin.HandleFunc("/stylists/{id}", r.stylistHandler.GetStylist).Methods(http.MethodGet)
	admin.HandleFunc("/stylists/{id}", r.stylistHandler.UpdateStylist).Methods(http.MethodPut)
	admin.HandleFunc("/stylists/{id}", r.stylistHandler.DeleteStylist).Methods(http.MethodDelete)

	// Customer management (admin)
	admin.HandleFunc("/customers", r.customerHandler.GetAllCustomers).Methods(http.MethodGet)
	admin.HandleFunc("/customers/{id}", r.customerHandler.GetCustomer).Methods(http.MethodGet)

	// Service catalog management (admin)
	admin.HandleFunc("/services", r.serviceHandler.CreateService).Methods(http.MethodPost)
	admin.HandleFunc("/services/{id}", r.serviceHandler.UpdateService).Methods(http.MethodPut)
	admin.HandleFunc("/services/{id}", r.serviceHandler.DeleteService).Methods(http.MethodDelete)

	// Appointment management (admin)
	admin.HandleFunc("/appointments", r.appointmentHandler.AdminCreateAppointment).Methods(http.MethodPost)
	admin.HandleFunc("/appointments", r.appointmentHandler.GetAllAppointments).Methods(http.MethodGet)
	admin.HandleFunc("/appointments/{id}", r.appointmentHandler.GetAppointment).Methods(http.MethodGet)
	admin.HandleFunc("/appointments/{id}/reschedule", r.appointmentHandler.RescheduleAppointment).Methods(http.MethodPut)
	admin.HandleFunc("/appointments/{id}/cancel", r.appointmentHandler.CancelAppointment).Methods(http.MethodPut)
	admin.HandleFunc("/appointments/{id}/complete", r.appointmentHandler.CompleteAppointment).Methods(http.MethodPut)
	admin.HandleFunc("/appointments/{id}/no-show", r.appointmentHandler.MarkNoShow).Methods(http.MethodPut)

	// Audit trail (admin)
	admin.HandleFunc("/audit-logs", r.auditLogHandler.GetAuditLogs).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
