// Package notify contains the outbound side effects of a booking: the
// WhatsApp message to the operator, the confirmation emails, and the Google
// Calendar event. Every dispatcher is best-effort; a failure is logged and
// never reaches the booking response.
package notify

import (
	"context"

	"nightsky-booking/internal/data/entity"

	"go.uber.org/zap"
)

// Dispatcher delivers one external notification for a finalized booking.
type Dispatcher interface {
	Name() string
	Dispatch(ctx context.Context, booking *entity.Booking) error
}

// Run executes a dispatcher in a failure-isolated scope: any returned error
// or panic is logged with the booking context and swallowed. All three
// dispatchers go through this helper so their failure handling is uniform.
func Run(ctx context.Context, log *zap.Logger, d Dispatcher, booking *entity.Booking) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Error("Dispatcher panicked",
				zap.String("dispatcher", d.Name()),
				zap.String("booking_id", booking.BookingID),
				zap.Any("panic", rec),
				zap.Stack("stack"),
			)
		}
	}()

	if err := d.Dispatch(ctx, booking); err != nil {
		log.Error("Dispatcher failed",
			zap.String("dispatcher", d.Name()),
			zap.String("booking_id", booking.BookingID),
			zap.String("date", booking.Date),
			zap.String("tour_type", string(booking.TourType)),
			zap.Error(err),
		)
		return
	}

	log.Info("Dispatcher completed",
		zap.String("dispatcher", d.Name()),
		zap.String("booking_id", booking.BookingID),
	)
}
