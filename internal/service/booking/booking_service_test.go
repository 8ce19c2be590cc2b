package booking

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/Domenick1991/jetcharter/internal/domain"
	"github.com/Domenick1991/jetcharter/internal/kafka"
	"github.com/Domenick1991/jetcharter/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *MockBookingRepository) GetByReference(ctx context.Context, reference string) (*domain.Booking, error) {
	args := m.Called(ctx, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) UpdateStatus(ctx context.Context, reference string, from []domain.BookingStatus, status domain.BookingStatus) (*domain.Booking, error) {
	args := m.Called(ctx, reference, from, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type MockProducer struct {
	mock.Mock
}

func (m *MockProducer) Publish(ctx context.Context, topic, key string, value any) error {
	args := m.Called(ctx, topic, key, value)
	return args.Error(0)
}

func validInput() CreateBookingInput {
	return CreateBookingInput{
		Name:       " Ada Lovelace ",
		Email:      "ada@example.com",
		From:       "New York",
		To:         "Miami",
		Date:       "2026-11-20",
		Passengers: 4,
	}
}

func newTestService(repo repository.BookingRepository, producer Producer) *BookingService {
	s := NewBookingService(repo, producer, "booking_topic", WithNotificationsTopic("notifications_topic"))
	s.newReference = func() string { return "ref-123" }
	s.now = func() time.Time { return time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC) }
	return s
}

func TestBookingService_CreateBooking_Success(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	mockProducer := &MockProducer{}
	service := newTestService(mockRepo, mockProducer)
	ctx := context.Background()

	mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.Booking")).Return(nil).Once()
	mockProducer.On("Publish", ctx, "booking_topic", "ref-123", mock.AnythingOfType("kafka.BookingEvent")).Return(nil).Once()
	mockProducer.On("Publish", ctx, "notifications_topic", "ref-123", mock.AnythingOfType("kafka.BookingEvent")).Return(nil).Once()

	booking, err := service.CreateBooking(ctx, validInput())

	require.NoError(t, err)
	assert.Equal(t, "ref-123", booking.Reference)
	assert.Equal(t, "Ada Lovelace", booking.Name)
	assert.Equal(t, domain.BookingStatusRequested, booking.Status)
	assert.Equal(t, 4, booking.Passengers)

	event := mockProducer.Calls[0].Arguments.Get(3).(kafka.BookingEvent)
	assert.Equal(t, kafka.EventBookingRequested, event.Type)
	assert.Equal(t, "REQUESTED", event.Status)

	mockRepo.AssertExpectations(t)
	mockProducer.AssertExpectations(t)
}

func TestBookingService_CreateBooking_DefaultsPassengers(t *testing.T) {
	for _, passengers := range []int{0, -2} {
		service := newTestService(repository.NewMemoryBookingRepository(), nil)

		input := validInput()
		input.Passengers = passengers
		booking, err := service.CreateBooking(context.Background(), input)

		require.NoError(t, err)
		assert.Equal(t, 1, booking.Passengers)
	}
}

func TestBookingService_CreateBooking_ValidationErrors(t *testing.T) {
	service := newTestService(&MockBookingRepository{}, nil)
	ctx := context.Background()

	testCases := []struct {
		name        string
		mutate      func(*CreateBookingInput)
		expectedErr string
	}{
		{"Empty name", func(in *CreateBookingInput) { in.Name = "  " }, "name is required"},
		{"Empty email", func(in *CreateBookingInput) { in.Email = "" }, "email is required"},
		{"Malformed email", func(in *CreateBookingInput) { in.Email = "not-an-email" }, "email must be a valid email address"},
		{"Display name email", func(in *CreateBookingInput) { in.Email = "Bob Smith <bob@x.co>" }, "email must be a valid email address"},
		{"Missing destination", func(in *CreateBookingInput) { in.To = "" }, "to is required"},
		{"Missing both endpoints", func(in *CreateBookingInput) { in.From, in.To = "", " " }, "from is required; to is required"},
		{"Bad date", func(in *CreateBookingInput) { in.Date = "next friday" }, "date is invalid"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			input := validInput()
			tc.mutate(&input)

			booking, err := service.CreateBooking(ctx, input)
			assert.Nil(t, booking)
			assert.ErrorIs(t, err, domain.ErrInvalidBooking)
			assert.Contains(t, err.Error(), tc.expectedErr)
		})
	}
}

func TestBookingService_CreateBooking_RepositoryError(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	mockProducer := &MockProducer{}
	service := newTestService(mockRepo, mockProducer)
	ctx := context.Background()

	mockRepo.On("Create", ctx, mock.Anything).Return(errors.New("db down")).Once()

	booking, err := service.CreateBooking(ctx, validInput())

	assert.Nil(t, booking)
	assert.EqualError(t, err, "db down")
	mockProducer.AssertNumberOfCalls(t, "Publish", 0)
}

func TestBookingService_CreateBooking_PublishFailureIsNotFatal(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	mockProducer := &MockProducer{}
	service := newTestService(mockRepo, mockProducer)
	ctx := context.Background()

	mockRepo.On("Create", ctx, mock.Anything).Return(nil).Once()
	mockProducer.On("Publish", ctx, "booking_topic", mock.Anything, mock.Anything).Return(errors.New("broker unavailable")).Once()

	booking, err := service.CreateBooking(ctx, validInput())

	require.NoError(t, err)
	assert.NotNil(t, booking)
	mockProducer.AssertNumberOfCalls(t, "Publish", 1)
}

func TestBookingService_ConfirmBooking(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	mockProducer := &MockProducer{}
	service := newTestService(mockRepo, mockProducer)
	ctx := context.Background()

	confirmed := &domain.Booking{Reference: "ref-1", Status: domain.BookingStatusConfirmed}

	mockRepo.On("UpdateStatus", ctx, "ref-1", []domain.BookingStatus{domain.BookingStatusRequested}, domain.BookingStatusConfirmed).
		Return(confirmed, nil).Once()
	mockProducer.On("Publish", ctx, mock.Anything, "ref-1", mock.Anything).Return(nil).Twice()

	booking, err := service.ConfirmBooking(ctx, "ref-1")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusConfirmed, booking.Status)
	mockRepo.AssertExpectations(t)
	mockProducer.AssertExpectations(t)
}

func TestBookingService_ConfirmBooking_NotRequested(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	mockProducer := &MockProducer{}
	service := newTestService(mockRepo, mockProducer)
	ctx := context.Background()

	mockRepo.On("UpdateStatus", ctx, "ref-1", mock.Anything, domain.BookingStatusConfirmed).
		Return(nil, fmt.Errorf("booking ref-1 is CANCELLED: %w", domain.ErrInvalidTransition)).Once()

	booking, err := service.ConfirmBooking(ctx, "ref-1")

	assert.Nil(t, booking)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	mockProducer.AssertNumberOfCalls(t, "Publish", 0)
}

// interleavingRepository runs before ahead of the first UpdateStatus call, so another
// request can change the booking after the caller decided to update it.
type interleavingRepository struct {
	repository.BookingRepository
	before func()
}

func (r *interleavingRepository) UpdateStatus(ctx context.Context, reference string, from []domain.BookingStatus, status domain.BookingStatus) (*domain.Booking, error) {
	if r.before != nil {
		hook := r.before
		r.before = nil
		hook()
	}
	return r.BookingRepository.UpdateStatus(ctx, reference, from, status)
}

func TestBookingService_ConfirmLosesToConcurrentCancel(t *testing.T) {
	ctx := context.Background()
	inner := repository.NewMemoryBookingRepository()
	repo := &interleavingRepository{BookingRepository: inner}
	mockProducer := &MockProducer{}
	mockProducer.On("Publish", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	service := newTestService(repo, mockProducer)

	created, err := service.CreateBooking(ctx, validInput())
	require.NoError(t, err)

	var cancelled *domain.Booking
	repo.before = func() {
		var cancelErr error
		cancelled, cancelErr = service.CancelBooking(ctx, created.Reference)
		require.NoError(t, cancelErr)
	}

	confirmed, err := service.ConfirmBooking(ctx, created.Reference)

	assert.Nil(t, confirmed)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	assert.Equal(t, domain.BookingStatusCancelled, cancelled.Status)

	stored, err := inner.GetByReference(ctx, created.Reference)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCancelled, stored.Status)

	var types []string
	for _, call := range mockProducer.Calls {
		types = append(types, call.Arguments.Get(3).(kafka.BookingEvent).Type)
	}
	assert.NotContains(t, types, kafka.EventBookingConfirmed)
}

func TestBookingService_CancelBooking(t *testing.T) {
	repo := repository.NewMemoryBookingRepository()
	service := newTestService(repo, nil)
	ctx := context.Background()

	created, err := service.CreateBooking(ctx, validInput())
	require.NoError(t, err)

	cancelled, err := service.CancelBooking(ctx, created.Reference)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCancelled, cancelled.Status)

	again, err := service.CancelBooking(ctx, created.Reference)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCancelled, again.Status)

	_, err = service.ConfirmBooking(ctx, created.Reference)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestBookingService_GetBooking_NotFound(t *testing.T) {
	service := newTestService(repository.NewMemoryBookingRepository(), nil)

	_, err := service.GetBooking(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBookingService_CountBookings(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	service := newTestService(mockRepo, nil)
	ctx := context.Background()

	mockRepo.On("Count", ctx).Return(7, nil).Once()

	n, err := service.CountBookings(ctx)
	require.NoError(t, err)
	assert.Equal(t, 7, n)
}

func TestBookingService_CancelConfirmedBooking(t *testing.T) {
	service := newTestService(repository.NewMemoryBookingRepository(), nil)
	ctx := context.Background()

	created, err := service.CreateBooking(ctx, validInput())
	require.NoError(t, err)
	_, err = service.ConfirmBooking(ctx, created.Reference)
	require.NoError(t, err)

	cancelled, err := service.CancelBooking(ctx, created.Reference)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCancelled, cancelled.Status)
}

func TestBookingService_CancelUnknownBooking(t *testing.T) {
	service := newTestService(repository.NewMemoryBookingRepository(), nil)

	_, err := service.CancelBooking(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
