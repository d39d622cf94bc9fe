package notify

import (
	"context"
	"fmt"
	"strings"
	"time"

	"nightsky-booking/internal/data/entity"
	"nightsky-booking/pkg/astro"

	"go.uber.org/zap"
	"google.golang.org/api/calendar/v3"
)

// defaultDisplayTime replaces the flexible sentinel when a concrete start
// time is needed for the calendar entry.
const defaultDisplayTime = "21:00"

// BookingStore is the slice of the repository the calendar dispatcher needs
// for its aggregation reads.
type BookingStore interface {
	SumPersonsByDate(ctx context.Context, date string) (int, error)
	ListByDateAndType(ctx context.Context, date string, tourType entity.TourType) ([]*entity.Booking, error)
}

// CalendarAPI is the external calendar collaborator. The Google
// implementation lives in googlecal.go; tests substitute a fake.
type CalendarAPI interface {
	FindEventIDByDateAndLabel(ctx context.Context, dayStart, dayEnd time.Time, label string) (string, error)
	DeleteEvent(ctx context.Context, eventID string) error
	InsertEvent(ctx context.Context, event *calendar.Event) error
}

// CalendarDispatcher keeps at most one calendar event per (date, tour type)
// key. On every booking it rebuilds the merged event for that key from the
// store and replaces whatever entry already exists. The provider has no
// composite-key upsert, so replace-on-conflict is the idempotency strategy:
// delete the tagged entry, then insert the fresh aggregate.
type CalendarDispatcher struct {
	api      CalendarAPI
	store    BookingStore
	loc      *time.Location
	location string // venue address string placed on the event
	log      *zap.Logger
}

func NewCalendarDispatcher(api CalendarAPI, store BookingStore, loc *time.Location, venueLocation string, log *zap.Logger) *CalendarDispatcher {
	return &CalendarDispatcher{
		api:      api,
		store:    store,
		loc:      loc,
		location: venueLocation,
		log:      log.With(zap.String("dispatcher", "calendar")),
	}
}

func (d *CalendarDispatcher) Name() string { return "calendar" }

func (d *CalendarDispatcher) Dispatch(ctx context.Context, booking *entity.Booking) error {
	if d.api == nil {
		d.log.Info("Calendar credentials not configured, skipping event",
			zap.String("booking_id", booking.BookingID))
		return nil
	}

	dayTotal, err := d.store.SumPersonsByDate(ctx, booking.Date)
	if err != nil {
		return fmt.Errorf("day total for %s: %w", booking.Date, err)
	}

	sameTour, err := d.store.ListByDateAndType(ctx, booking.Date, booking.TourType)
	if err != nil {
		return fmt.Errorf("bookings for %s/%s: %w", booking.Date, booking.TourType, err)
	}
	if len(sameTour) == 0 {
		// The just-persisted booking must be visible; if the read raced
		// a replica, fall back to the booking we were handed.
		sameTour = []*entity.Booking{booking}
	}

	subtotal := 0
	for _, b := range sameTour {
		subtotal += b.Persons
	}

	start, err := d.eventStart(booking.Date, booking.Time)
	if err != nil {
		return err
	}

	label := booking.TourType.Label()
	dayStart := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, d.loc)
	dayEnd := dayStart.Add(24 * time.Hour)

	eventID, err := d.api.FindEventIDByDateAndLabel(ctx, dayStart, dayEnd, label)
	if err != nil {
		return fmt.Errorf("find existing event: %w", err)
	}
	if eventID != "" {
		if err := d.api.DeleteEvent(ctx, eventID); err != nil {
			return fmt.Errorf("delete event %s: %w", eventID, err)
		}
	}

	event := d.buildEvent(booking.TourType, start, sameTour, subtotal, dayTotal)
	if err := d.api.InsertEvent(ctx, event); err != nil {
		return fmt.Errorf("insert event: %w", err)
	}

	return nil
}

// eventStart combines the booking date with its assigned time in the venue
// timezone, resolving the flexible sentinel to the default display time.
func (d *CalendarDispatcher) eventStart(date, tourTime string) (time.Time, error) {
	if tourTime == entity.TimeFlexible {
		tourTime = defaultDisplayTime
	}

	start, err := time.ParseInLocation("2006-01-02 15:04", date+" "+tourTime, d.loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse event start %s %s: %w", date, tourTime, err)
	}
	return start, nil
}

func (d *CalendarDispatcher) buildEvent(tourType entity.TourType, start time.Time, bookings []*entity.Booking, subtotal, dayTotal int) *calendar.Event {
	end := start.Add(tourType.Duration())

	icon := "👤"
	if subtotal > 1 {
		icon = "👥"
	}

	summary := fmt.Sprintf("%s %d pax - %s", icon, subtotal, tourType.Label())
	if dayTotal > subtotal {
		summary += fmt.Sprintf(" (total día: %d)", dayTotal)
	}

	return &calendar.Event{
		Summary:     summary,
		Description: d.eventDescription(tourType, start, bookings, subtotal, dayTotal),
		Location:    d.location,
		Start: &calendar.EventDateTime{
			DateTime: start.Format(time.RFC3339),
			TimeZone: d.loc.String(),
		},
		End: &calendar.EventDateTime{
			DateTime: end.Format(time.RFC3339),
			TimeZone: d.loc.String(),
		},
		Reminders: &calendar.EventReminders{
			UseDefault: false,
			Overrides: []*calendar.EventReminder{
				{Method: "email", Minutes: 24 * 60},
				{Method: "popup", Minutes: 2 * 60},
			},
			ForceSendFields: []string{"UseDefault"},
		},
		ColorId: tourType.CalendarColor(),
		Status:  "tentative",
	}
}

const eventDivider = "━━━━━━━━━━━━━━━━━━━━━━"

func (d *CalendarDispatcher) eventDescription(tourType entity.TourType, start time.Time, bookings []*entity.Booking, subtotal, dayTotal int) string {
	var sb strings.Builder

	sb.WriteString(eventDivider + "\n")
	sb.WriteString("🎯 TOUR ASTRONÓMICO ATACAMA\n")
	sb.WriteString(eventDivider + "\n\n")

	fmt.Fprintf(&sb, "📊 RESUMEN:\n")
	fmt.Fprintf(&sb, "• Tipo: %s\n", tourType.Label())
	fmt.Fprintf(&sb, "• Pasajeros: %d\n", subtotal)
	fmt.Fprintf(&sb, "• Reservas: %d\n", len(bookings))
	if dayTotal > subtotal {
		fmt.Fprintf(&sb, "• Total del día (todos los tours): %d\n", dayTotal)
	}
	fmt.Fprintf(&sb, "• Duración: %.1f horas\n\n", tourType.Duration().Hours())

	for i, b := range bookings {
		if i > 0 {
			sb.WriteString("\n" + eventDivider + "\n")
		}
		email := b.Email
		if email == "" {
			email = "Sin email"
		}
		message := b.Message
		if message == "" {
			message = "Sin comentarios adicionales"
		}
		fmt.Fprintf(&sb, "👤 RESERVA %d:\n", i+1)
		fmt.Fprintf(&sb, "• Nombre: %s\n", b.Name)
		fmt.Fprintf(&sb, "• Teléfono: %s\n", b.Phone)
		fmt.Fprintf(&sb, "• Email: %s\n", email)
		fmt.Fprintf(&sb, "• Personas: %d\n", b.Persons)
		fmt.Fprintf(&sb, "• Mensaje: %s\n", message)
		fmt.Fprintf(&sb, "• ID: %s\n", b.BookingID)
	}

	sb.WriteString("\n🌙 CONDICIONES ASTRONÓMICAS:\n")
	sb.WriteString(astro.EstimatePhase(start).Describe())
	sb.WriteString("\n\n" + eventDivider)

	return sb.String()
}
