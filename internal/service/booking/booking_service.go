package booking

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Domenick1991/jetcharter/internal/domain"
	"github.com/Domenick1991/jetcharter/internal/kafka"
	"github.com/Domenick1991/jetcharter/internal/metrics"
	"github.com/Domenick1991/jetcharter/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New()

type BookingUseCase interface {
	CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error)
	GetBooking(ctx context.Context, reference string) (*domain.Booking, error)
	ConfirmBooking(ctx context.Context, reference string) (*domain.Booking, error)
	CancelBooking(ctx context.Context, reference string) (*domain.Booking, error)
	CountBookings(ctx context.Context) (int, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value any) error
}

type BookingService struct {
	bookings           repository.BookingRepository
	producer           Producer
	bookingTopic       string
	notificationsTopic string
	logger             *slog.Logger
	newReference       func() string
	now                func() time.Time
}

// CreateBookingInput mirrors the booking form. Rules are checked after surrounding
// whitespace is trimmed.
type CreateBookingInput struct {
	Name       string `validate:"required"`
	Email      string `validate:"required,email"`
	Phone      string
	JetID      string
	From       string `validate:"required"`
	To         string `validate:"required"`
	Date       string
	Passengers int
	Notes      string
}

type BookingServiceOption func(*BookingService)

func WithNotificationsTopic(topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.notificationsTopic = topic
	}
}

func WithLogger(logger *slog.Logger) BookingServiceOption {
	return func(s *BookingService) {
		s.logger = logger
	}
}

// NewBookingService builds the service. producer may be nil, in which case no events
// are published.
func NewBookingService(bookings repository.BookingRepository, producer Producer, bookingTopic string, opts ...BookingServiceOption) *BookingService {
	service := &BookingService{
		bookings:     bookings,
		producer:     producer,
		bookingTopic: bookingTopic,
		logger:       slog.Default(),
		newReference: uuid.NewString,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *BookingService) CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error) {
	input = normalize(input)
	if err := validateInput(input); err != nil {
		return nil, err
	}

	booking := &domain.Booking{
		Reference:  s.newReference(),
		Name:       input.Name,
		Email:      input.Email,
		Phone:      input.Phone,
		JetID:      input.JetID,
		From:       input.From,
		To:         input.To,
		Date:       input.Date,
		Passengers: input.Passengers,
		Notes:      input.Notes,
		Status:     domain.BookingStatusRequested,
	}

	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, err
	}
	metrics.BookingsCreated.Inc()

	if err := s.publish(ctx, kafka.EventBookingRequested, booking); err != nil {
		s.logger.Warn("failed to publish booking event", "type", kafka.EventBookingRequested, "reference", booking.Reference, "error", err)
	}
	return booking, nil
}

func (s *BookingService) GetBooking(ctx context.Context, reference string) (*domain.Booking, error) {
	return s.bookings.GetByReference(ctx, reference)
}

func (s *BookingService) ConfirmBooking(ctx context.Context, reference string) (*domain.Booking, error) {
	updated, err := s.bookings.UpdateStatus(ctx, reference,
		[]domain.BookingStatus{domain.BookingStatusRequested}, domain.BookingStatusConfirmed)
	if err != nil {
		return nil, err
	}
	if err := s.publish(ctx, kafka.EventBookingConfirmed, updated); err != nil {
		s.logger.Warn("failed to publish booking event", "type", kafka.EventBookingConfirmed, "reference", reference, "error", err)
	}
	return updated, nil
}

// CancelBooking is idempotent: cancelling a cancelled booking returns it unchanged.
func (s *BookingService) CancelBooking(ctx context.Context, reference string) (*domain.Booking, error) {
	updated, err := s.bookings.UpdateStatus(ctx, reference,
		[]domain.BookingStatus{domain.BookingStatusRequested, domain.BookingStatusConfirmed}, domain.BookingStatusCancelled)
	if errors.Is(err, domain.ErrInvalidTransition) {
		current, getErr := s.bookings.GetByReference(ctx, reference)
		if getErr == nil && current.Status == domain.BookingStatusCancelled {
			return current, nil
		}
		return nil, err
	}
	if err != nil {
		return nil, err
	}
	if err := s.publish(ctx, kafka.EventBookingCancelled, updated); err != nil {
		s.logger.Warn("failed to publish booking event", "type", kafka.EventBookingCancelled, "reference", reference, "error", err)
	}
	return updated, nil
}

func (s *BookingService) CountBookings(ctx context.Context) (int, error) {
	return s.bookings.Count(ctx)
}

func (s *BookingService) publish(ctx context.Context, eventType string, booking *domain.Booking) error {
	if s.producer == nil || s.bookingTopic == "" {
		return nil
	}
	event := kafka.BookingEvent{
		Type:       eventType,
		Reference:  booking.Reference,
		Name:       booking.Name,
		Email:      booking.Email,
		From:       booking.From,
		To:         booking.To,
		Date:       booking.Date,
		Passengers: booking.Passengers,
		Status:     string(booking.Status),
		OccurredAt: s.now(),
	}
	if err := s.producer.Publish(ctx, s.bookingTopic, booking.Reference, event); err != nil {
		return err
	}
	if s.notificationsTopic != "" {
		return s.producer.Publish(ctx, s.notificationsTopic, booking.Reference, event)
	}
	return nil
}

func normalize(in CreateBookingInput) CreateBookingInput {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	in.From = strings.TrimSpace(in.From)
	in.To = strings.TrimSpace(in.To)
	in.Date = strings.TrimSpace(in.Date)
	if in.Passengers < 1 {
		in.Passengers = 1
	}
	return in
}

func validateInput(in CreateBookingInput) error {
	if err := validate.Struct(in); err != nil {
		return fmt.Errorf("%s: %w", ValidationMessage(err), domain.ErrInvalidBooking)
	}
	if in.Date != "" {
		if _, ok := domain.ParseTimestamp(in.Date); !ok {
			return fmt.Errorf("date is invalid: %w", domain.ErrInvalidBooking)
		}
	}
	return nil
}

// ValidationMessage renders validator errors as one line, e.g.
// "name is required; email must be a valid email address". Other errors are returned as is.
func ValidationMessage(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		field := strings.ToLower(fe.Field()[:1]) + fe.Field()[1:]
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, field+" is required")
		case "email":
			msgs = append(msgs, field+" must be a valid email address")
		default:
			msgs = append(msgs, field+" is invalid")
		}
	}
	return strings.Join(msgs, "; ")
}

var _ BookingUseCase = (*BookingService)(nil)
