package usecase

import (
	"context"
	"fmt"
	"time"

	"nightsky-booking/internal/data/entity"
	"nightsky-booking/internal/data/repository"
	"nightsky-booking/internal/dto/request"
	"nightsky-booking/internal/dto/response"
	"nightsky-booking/internal/notify"
	"nightsky-booking/pkg/utils"

	"go.uber.org/zap"
)

type BookingService interface {
	CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingCreatedResponse, error)
	GetBooking(ctx context.Context, bookingID string) (*response.BookingResponse, error)
	CancelBooking(ctx context.Context, bookingID string) error
}

type bookingService struct {
	repo        repository.BookingRepository
	dispatchers []notify.Dispatcher
	now         func() time.Time
	log         *zap.Logger
}

func NewBookingService(repo repository.BookingRepository, dispatchers []notify.Dispatcher, log *zap.Logger) BookingService {
	return &bookingService{
		repo:        repo,
		dispatchers: dispatchers,
		now:         time.Now,
		log:         log.With(zap.String("service", "booking")),
	}
}

// CreateBooking validates the request, assigns the seasonal start time,
// persists the booking, then attempts every notification dispatcher. Only
// validation and persistence can fail the request; dispatcher outcomes are
// logged and never change the response.
func (s *bookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingCreatedResponse, error) {
	// 1. Validate
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", entity.ErrMissingFields, utils.FormatValidationErrors(errs))
	}

	tourType := entity.TourType(req.TourType)
	now := s.now()

	// 2. Assign time server-side; any client-supplied value is ignored
	assignedTime := AssignTime(tourType, now)

	// 3. Generate identifier
	bookingID := utils.GenerateBookingID(now)

	booking := &entity.Booking{
		BookingID: bookingID,
		Date:      req.Date,
		Time:      assignedTime,
		Persons:   req.Persons,
		TourType:  tourType,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Message:   req.Message,
		Status:    entity.BookingStatusPending,
		CreatedAt: now,
	}

	// 4. Persist; the only fatal step after validation
	if err := s.repo.Create(ctx, booking); err != nil {
		s.log.Error("Failed to save booking",
			zap.Error(err),
			zap.String("booking_id", bookingID),
			zap.String("date", req.Date),
		)
		return nil, fmt.Errorf("save booking: %w", err)
	}

	s.log.Info("Booking created",
		zap.String("booking_id", bookingID),
		zap.String("date", booking.Date),
		zap.String("time", booking.Time),
		zap.String("tour_type", string(booking.TourType)),
		zap.Int("persons", booking.Persons),
	)

	// 5. Attempt every dispatcher before responding. The calendar
	// dispatcher reads the store, so this runs after the write above is
	// durable. Failures are isolated inside notify.Run. The context is
	// detached from request cancellation: the booking is already persisted,
	// a client disconnect must not drop its notifications.
	notifyCtx := context.WithoutCancel(ctx)
	for _, d := range s.dispatchers {
		notify.Run(notifyCtx, s.log, d, booking)
	}

	// 6. Respond with the persisted identifier
	return &response.BookingCreatedResponse{
		Success:   true,
		BookingID: bookingID,
		Message:   "Booking created successfully",
	}, nil
}

func (s *bookingService) GetBooking(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	booking, err := s.repo.FindByBookingID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if booking == nil {
		return nil, entity.ErrNotFound
	}

	return response.BookingToResponse(booking), nil
}

func (s *bookingService) CancelBooking(ctx context.Context, bookingID string) error {
	if err := s.repo.UpdateStatus(ctx, bookingID, entity.BookingStatusCancelled); err != nil {
		return err
	}

	s.log.Info("Booking cancelled", zap.String("booking_id", bookingID))
	return nil
}
