package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"nightsky-booking/internal/data/entity"
	"nightsky-booking/internal/dto/request"
	"nightsky-booking/internal/notify"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *MockBookingRepository) FindByBookingID(ctx context.Context, bookingID string) (*entity.Booking, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Booking), args.Error(1)
}

func (m *MockBookingRepository) UpdateStatus(ctx context.Context, bookingID string, status entity.BookingStatus) error {
	args := m.Called(ctx, bookingID, status)
	return args.Error(0)
}

func (m *MockBookingRepository) SumPersonsByDate(ctx context.Context, date string) (int, error) {
	args := m.Called(ctx, date)
	return args.Int(0), args.Error(1)
}

func (m *MockBookingRepository) ListByDateAndType(ctx context.Context, date string, tourType entity.TourType) ([]*entity.Booking, error) {
	args := m.Called(ctx, date, tourType)
	return args.Get(0).([]*entity.Booking), args.Error(1)
}

// fakeDispatcher records invocations and can fail or panic on demand.
type fakeDispatcher struct {
	name   string
	err    error
	panics bool
	calls  int
	last   *entity.Booking
	ctxErr error
}

func (d *fakeDispatcher) Name() string { return d.name }

func (d *fakeDispatcher) Dispatch(ctx context.Context, booking *entity.Booking) error {
	d.calls++
	d.last = booking
	d.ctxErr = ctx.Err()
	if d.panics {
		panic("dispatcher exploded")
	}
	return d.err
}

func validRequest() *request.CreateBookingRequest {
	return &request.CreateBookingRequest{
		Date:     "2025-06-15",
		Persons:  4,
		TourType: "regular",
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Phone:    "+56912345678",
	}
}

func newTestService(repo *MockBookingRepository, dispatchers []notify.Dispatcher, ref time.Time) *bookingService {
	return &bookingService{
		repo:        repo,
		dispatchers: dispatchers,
		now:         func() time.Time { return ref },
		log:         zap.NewNop(),
	}
}

func TestCreateBooking_Success(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	dispatcher := &fakeDispatcher{name: "test"}
	june := time.Date(2025, time.June, 10, 15, 0, 0, 0, time.UTC)
	service := newTestService(mockRepo, []notify.Dispatcher{dispatcher}, june)

	var persisted *entity.Booking
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Booking")).
		Run(func(args mock.Arguments) {
			persisted = args.Get(1).(*entity.Booking)
		}).
		Return(nil).Once()

	result, err := service.CreateBooking(context.Background(), validRequest())

	assert.NoError(t, err)
	assert.True(t, result.Success)
	assert.NotEmpty(t, result.BookingID)
	assert.Equal(t, persisted.BookingID, result.BookingID)
	assert.Equal(t, "20:30", persisted.Time) // June is winter, regular tour
	assert.Equal(t, entity.BookingStatusPending, persisted.Status)
	assert.Equal(t, june, persisted.CreatedAt)

	assert.Equal(t, 1, dispatcher.calls)
	assert.Equal(t, persisted, dispatcher.last)

	mockRepo.AssertExpectations(t)
}

func TestCreateBooking_MissingFields(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*request.CreateBookingRequest)
	}{
		{"no date", func(r *request.CreateBookingRequest) { r.Date = "" }},
		{"no persons", func(r *request.CreateBookingRequest) { r.Persons = 0 }},
		{"negative persons", func(r *request.CreateBookingRequest) { r.Persons = -2 }},
		{"no tour type", func(r *request.CreateBookingRequest) { r.TourType = "" }},
		{"no name", func(r *request.CreateBookingRequest) { r.Name = "" }},
		{"no email", func(r *request.CreateBookingRequest) { r.Email = "" }},
		{"no phone", func(r *request.CreateBookingRequest) { r.Phone = "" }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockRepo := &MockBookingRepository{}
			dispatcher := &fakeDispatcher{name: "test"}
			service := newTestService(mockRepo, []notify.Dispatcher{dispatcher}, time.Now())

			req := validRequest()
			tc.mutate(req)

			result, err := service.CreateBooking(context.Background(), req)

			assert.Nil(t, result)
			assert.ErrorIs(t, err, entity.ErrMissingFields)

			// fail fast: nothing persisted, nothing dispatched
			mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			assert.Zero(t, dispatcher.calls)
		})
	}
}

func TestCreateBooking_StorageErrorAborts(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	dispatcher := &fakeDispatcher{name: "test"}
	service := newTestService(mockRepo, []notify.Dispatcher{dispatcher}, time.Now())

	mockRepo.On("Create", mock.Anything, mock.Anything).
		Return(errors.New("connection refused")).Once()

	result, err := service.CreateBooking(context.Background(), validRequest())

	assert.Nil(t, result)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, entity.ErrMissingFields)
	assert.Zero(t, dispatcher.calls)

	mockRepo.AssertExpectations(t)
}

func TestCreateBooking_DispatcherFailuresDoNotFailRequest(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	failing := &fakeDispatcher{name: "whatsapp", err: errors.New("graph API down")}
	panicking := &fakeDispatcher{name: "email", panics: true}
	broken := &fakeDispatcher{name: "calendar", err: errors.New("quota exceeded")}
	service := newTestService(mockRepo,
		[]notify.Dispatcher{failing, panicking, broken}, time.Now())

	mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()

	result, err := service.CreateBooking(context.Background(), validRequest())

	assert.NoError(t, err)
	assert.True(t, result.Success)
	assert.NotEmpty(t, result.BookingID)

	// every dispatcher was still attempted
	assert.Equal(t, 1, failing.calls)
	assert.Equal(t, 1, panicking.calls)
	assert.Equal(t, 1, broken.calls)
}

func TestCreateBooking_DispatchSurvivesClientDisconnect(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	dispatcher := &fakeDispatcher{name: "test"}
	service := newTestService(mockRepo, []notify.Dispatcher{dispatcher}, time.Now())

	mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()

	// the client goes away right after the request lands
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := service.CreateBooking(ctx, validRequest())

	assert.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 1, dispatcher.calls)
	assert.NoError(t, dispatcher.ctxErr, "dispatch context must outlive the request context")
}

func TestCreateBooking_PrivateTourStoresFlexibleTime(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	service := newTestService(mockRepo, nil, time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC))

	var persisted *entity.Booking
	mockRepo.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			persisted = args.Get(1).(*entity.Booking)
		}).
		Return(nil).Once()

	req := validRequest()
	req.TourType = "private"

	_, err := service.CreateBooking(context.Background(), req)

	assert.NoError(t, err)
	assert.Equal(t, entity.TimeFlexible, persisted.Time)
}

func TestGetBooking_NotFound(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	service := newTestService(mockRepo, nil, time.Now())

	mockRepo.On("FindByBookingID", mock.Anything, "ATK-NOPE").Return(nil, nil).Once()

	result, err := service.GetBooking(context.Background(), "ATK-NOPE")

	assert.Nil(t, result)
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestCancelBooking(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	service := newTestService(mockRepo, nil, time.Now())

	mockRepo.On("UpdateStatus", mock.Anything, "ATK-X1", entity.BookingStatusCancelled).
		Return(nil).Once()

	assert.NoError(t, service.CancelBooking(context.Background(), "ATK-X1"))
	mockRepo.AssertExpectations(t)
}
