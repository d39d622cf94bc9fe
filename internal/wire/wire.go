// internal/wire/wire.go
package wire

import (
	"context"
	"net/http"
	"time"

	"nightsky-booking/internal/adaptor"
	"nightsky-booking/internal/data/repository"
	"nightsky-booking/internal/notify"
	"nightsky-booking/internal/usecase"
	"nightsky-booking/pkg/middleware"
	"nightsky-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired HTTP surface
type App struct {
	Router *chi.Mux
}

// Wiring initializes dispatchers, services, handlers and the router
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	dispatchers := buildDispatchers(repo, config, logger)

	service := usecase.NewService(repo, dispatchers, logger)
	handler := adaptor.NewHandler(service, config, logger)

	router := setupRouter(handler, config, logger)

	return &App{
		Router: router,
	}
}

// buildDispatchers constructs the three notification dispatchers. A missing
// credential disables only its own dispatcher; the booking path never
// depends on any of them being configured.
func buildDispatchers(repo *repository.Repository, config *utils.Config, logger *zap.Logger) []notify.Dispatcher {
	whatsapp := notify.NewWhatsAppDispatcher(
		config.WhatsApp.Token,
		config.WhatsApp.PhoneNumberID,
		config.WhatsApp.OperatorPhone,
		logger,
	)

	email := notify.NewEmailDispatcher(
		config.Email.APIKey,
		config.Email.From,
		config.Email.ReplyTo,
		config.Email.AdminEmail,
		logger,
	)

	loc, err := time.LoadLocation(config.Venue.Timezone)
	if err != nil {
		logger.Warn("Invalid venue timezone, falling back to UTC",
			zap.String("timezone", config.Venue.Timezone),
			zap.Error(err))
		loc = time.UTC
	}

	var calendarAPI notify.CalendarAPI
	if config.Calendar.ServiceAccountKey != "" && config.Calendar.CalendarID != "" {
		gc, err := notify.NewGoogleCalendar(
			context.Background(),
			[]byte(config.Calendar.ServiceAccountKey),
			config.Calendar.CalendarID,
		)
		if err != nil {
			logger.Error("Google Calendar client init failed, calendar dispatcher disabled",
				zap.Error(err))
		} else {
			calendarAPI = gc
		}
	}

	calendar := notify.NewCalendarDispatcher(
		calendarAPI,
		repo.Booking,
		loc,
		config.Venue.Location,
		logger,
	)

	return []notify.Dispatcher{whatsapp, email, calendar}
}

// setupRouter configures the Chi router
func setupRouter(handler *adaptor.Handler, config *utils.Config, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.CORS.AllowedOrigins))

	// Keep the JSON error envelope on wrong-method requests instead of
	// chi's plain-text default
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseMethodNotAllowed(w)
	})

	// Apply routes
	wireBooking(r, handler.Booking)
	r.Get("/api/debug", handler.Debug.Status)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
