package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"nightsky-booking/internal/data/entity"
	"nightsky-booking/internal/dto/request"
	"nightsky-booking/internal/usecase"
	"nightsky-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// CreateBooking handles POST /api/bookings
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req request.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.service.CreateBooking(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create booking")
		return
	}

	utils.ResponseSuccess(w, result)
}

// GetBooking handles GET /api/bookings/{bookingId}
func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "bookingId")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	booking, err := h.service.GetBooking(r.Context(), bookingID)
	if err != nil {
		h.handleServiceError(w, err, "get booking")
		return
	}

	utils.ResponseSuccess(w, booking)
}

// CancelBooking handles PUT /api/bookings/{bookingId}/cancel
func (h *BookingHandler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "bookingId")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	if err := h.service.CancelBooking(r.Context(), bookingID); err != nil {
		h.handleServiceError(w, err, "cancel booking")
		return
	}

	utils.ResponseSuccess(w, map[string]any{"success": true, "bookingId": bookingID})
}

// handleServiceError maps service errors onto the wire contract: missing
// fields are the client's fault, a vanished booking is 404, anything else
// (storage) is a server error.
func (h *BookingHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, entity.ErrMissingFields):
		h.log.Warn(operation+" rejected - missing fields", zap.Error(err))
		utils.ResponseBadRequest(w, "Missing required fields", nil)

	case errors.Is(err, entity.ErrNotFound):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, "Booking not found")

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Database error", err.Error())
	}
}
