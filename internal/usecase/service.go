package usecase

import (
	"nightsky-booking/internal/data/repository"
	"nightsky-booking/internal/notify"

	"go.uber.org/zap"
)

type Service struct {
	Booking BookingService
}

func NewService(repo *repository.Repository, dispatchers []notify.Dispatcher, log *zap.Logger) *Service {
	return &Service{
		Booking: NewBookingService(repo.Booking, dispatchers, log),
	}
}
