package entity

import (
	"time"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

type TourType string

const (
	TourTypeRegular    TourType = "regular"
	TourTypePrivate    TourType = "private"
	TourTypeAstrophoto TourType = "astrophoto"
)

// TimeFlexible is the sentinel stored for tour types without a fixed start
// time. It is resolved to a concrete display time only when building the
// calendar event.
const TimeFlexible = "flexible"

type Booking struct {
	ID        int64         `db:"id"`
	BookingID string        `db:"booking_id"`
	Date      string        `db:"date"` // calendar date, YYYY-MM-DD, no time component
	Time      string        `db:"time"` // "HH:MM" or TimeFlexible
	Persons   int           `db:"persons"`
	TourType  TourType      `db:"tour_type"`
	Name      string        `db:"name"`
	Email     string        `db:"email"`
	Phone     string        `db:"phone"`
	Message   string        `db:"message"`
	Status    BookingStatus `db:"status"`
	CreatedAt time.Time     `db:"created_at"`
}

// Label returns the customer-facing tour name. Unrecognized types fall
// through as-is so a stray value still renders something readable.
func (t TourType) Label() string {
	switch t {
	case TourTypeRegular:
		return "Tour Astronómico Regular"
	case TourTypePrivate:
		return "Tour Privado Exclusivo"
	case TourTypeAstrophoto:
		return "Tour Astrofotográfico Especializado"
	default:
		return string(t)
	}
}

// Duration returns how long a tour of this type runs.
func (t TourType) Duration() time.Duration {
	switch t {
	case TourTypeRegular:
		return 2*time.Hour + 30*time.Minute
	case TourTypePrivate:
		return 3 * time.Hour
	case TourTypeAstrophoto:
		return 5 * time.Hour
	default:
		return 2*time.Hour + 30*time.Minute
	}
}

// CalendarColor returns the Google Calendar color id used for this tour type.
func (t TourType) CalendarColor() string {
	switch t {
	case TourTypeRegular:
		return "9" // blue
	case TourTypePrivate:
		return "5" // yellow
	case TourTypeAstrophoto:
		return "10" // green
	default:
		return "9"
	}
}
