package notify

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// GoogleCalendar implements CalendarAPI against the Google Calendar v3 API
// using a service account.
type GoogleCalendar struct {
	svc        *calendar.Service
	calendarID string
}

// NewGoogleCalendar builds a calendar client from a service-account JSON key.
func NewGoogleCalendar(ctx context.Context, serviceAccountKey []byte, calendarID string) (*GoogleCalendar, error) {
	conf, err := google.JWTConfigFromJSON(serviceAccountKey, calendar.CalendarScope)
	if err != nil {
		return nil, fmt.Errorf("parse service account key: %w", err)
	}

	svc, err := calendar.NewService(ctx, option.WithHTTPClient(conf.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("create calendar service: %w", err)
	}

	return &GoogleCalendar{svc: svc, calendarID: calendarID}, nil
}

// FindEventIDByDateAndLabel returns the id of the first event within the day
// window whose title contains the tour-type label, or "" when none exists.
// Walks every result page; a busy calendar can push the tagged entry past
// the first one.
func (g *GoogleCalendar) FindEventIDByDateAndLabel(ctx context.Context, dayStart, dayEnd time.Time, label string) (string, error) {
	pageToken := ""
	for {
		call := g.svc.Events.List(g.calendarID).
			TimeMin(dayStart.Format(time.RFC3339)).
			TimeMax(dayEnd.Format(time.RFC3339)).
			SingleEvents(true).
			Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		events, err := call.Do()
		if err != nil {
			return "", fmt.Errorf("list events: %w", err)
		}

		for _, ev := range events.Items {
			if strings.Contains(ev.Summary, label) {
				return ev.Id, nil
			}
		}

		if events.NextPageToken == "" {
			return "", nil
		}
		pageToken = events.NextPageToken
	}
}

func (g *GoogleCalendar) DeleteEvent(ctx context.Context, eventID string) error {
	if err := g.svc.Events.Delete(g.calendarID, eventID).Context(ctx).Do(); err != nil {
		return fmt.Errorf("delete calendar event %s: %w", eventID, err)
	}
	return nil
}

func (g *GoogleCalendar) InsertEvent(ctx context.Context, event *calendar.Event) error {
	if _, err := g.svc.Events.Insert(g.calendarID, event).Context(ctx).Do(); err != nil {
		return fmt.Errorf("insert calendar event: %w", err)
	}
	return nil
}
