package response

import (
	"time"

	"nightsky-booking/internal/data/entity"
)

// BookingCreatedResponse is the success payload of POST /api/bookings.
type BookingCreatedResponse struct {
	Success   bool   `json:"success"`
	BookingID string `json:"bookingId"`
	Message   string `json:"message"`
}

type BookingResponse struct {
	BookingID string               `json:"bookingId"`
	Date      string               `json:"date"`
	Time      string               `json:"time"`
	Persons   int                  `json:"persons"`
	TourType  entity.TourType      `json:"tourType"`
	Name      string               `json:"name"`
	Email     string               `json:"email"`
	Phone     string               `json:"phone"`
	Message   string               `json:"message,omitempty"`
	Status    entity.BookingStatus `json:"status"`
	CreatedAt time.Time            `json:"createdAt"`
}

func BookingToResponse(b *entity.Booking) *BookingResponse {
	return &BookingResponse{
		BookingID: b.BookingID,
		Date:      b.Date,
		Time:      b.Time,
		Persons:   b.Persons,
		TourType:  b.TourType,
		Name:      b.Name,
		Email:     b.Email,
		Phone:     b.Phone,
		Message:   b.Message,
		Status:    b.Status,
		CreatedAt: b.CreatedAt,
	}
}
