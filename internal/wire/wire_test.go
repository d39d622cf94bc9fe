package wire

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"nightsky-booking/internal/adaptor"
	"nightsky-booking/internal/dto/request"
	"nightsky-booking/internal/dto/response"
	"nightsky-booking/internal/usecase"
	"nightsky-booking/pkg/utils"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type noopBookingService struct{}

func (noopBookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingCreatedResponse, error) {
	return &response.BookingCreatedResponse{Success: true}, nil
}

func (noopBookingService) GetBooking(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	return &response.BookingResponse{BookingID: bookingID}, nil
}

func (noopBookingService) CancelBooking(ctx context.Context, bookingID string) error {
	return nil
}

func newWiredRouter(t *testing.T) http.Handler {
	t.Helper()
	config := &utils.Config{}
	logger := zap.NewNop()
	handler := adaptor.NewHandler(&usecase.Service{Booking: noopBookingService{}}, config, logger)
	return setupRouter(handler, config, logger)
}

func TestRouter_MethodNotAllowedEnvelope(t *testing.T) {
	router := newWiredRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/bookings/ATK-X1", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), `"error":"Method not allowed"`)
}

func TestRouter_HealthCheck(t *testing.T) {
	router := newWiredRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}
