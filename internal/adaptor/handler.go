package adaptor

import (
	"nightsky-booking/internal/usecase"
	"nightsky-booking/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Booking *BookingHandler
	Debug   *DebugHandler
}

func NewHandler(service *usecase.Service, config *utils.Config, log *zap.Logger) *Handler {
	return &Handler{
		Booking: NewBookingHandler(service.Booking, log),
		Debug:   NewDebugHandler(config, log),
	}
}
