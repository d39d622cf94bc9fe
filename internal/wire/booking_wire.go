package wire

import (
	"nightsky-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler) {
	// POST /api/bookings - submit a booking (public, called by the website form)
	r.Post("/api/bookings", bookingHandler.CreateBooking)

	// GET /api/bookings/{bookingId} - look up a booking by its public id
	r.Get("/api/bookings/{bookingId}", bookingHandler.GetBooking)

	// PUT /api/bookings/{bookingId}/cancel - retire a booking; cancelled
	// bookings disappear from calendar aggregation
	r.Put("/api/bookings/{bookingId}/cancel", bookingHandler.CancelBooking)
}
