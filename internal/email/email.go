package email

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Domenick1991/jetcharter/internal/kafka"
)

// Sender turns booking events into customer emails. Delivery is a structured log line;
// wiring an SMTP relay only changes deliver.
type Sender struct {
	logger *slog.Logger
}

func NewSender(logger *slog.Logger) *Sender {
	if logger == nil {
		logger = slog.Default()
	}
	return &Sender{logger: logger}
}

type Message struct {
	To      string
	Subject string
	Body    string
}

func (s *Sender) Send(ctx context.Context, event kafka.BookingEvent) error {
	if event.Email == "" {
		s.logger.Warn("booking event without recipient", "reference", event.Reference, "type", event.Type)
		return nil
	}
	return s.deliver(ctx, Compose(event))
}

// Compose renders the notification for an event.
func Compose(event kafka.BookingEvent) Message {
	route := fmt.Sprintf("%s to %s", event.From, event.To)
	var subject, body string
	switch event.Type {
	case kafka.EventBookingConfirmed:
		subject = "Your charter is confirmed"
		body = fmt.Sprintf("Hello %s, your charter from %s is confirmed. Reference %s.", event.Name, route, event.Reference)
	case kafka.EventBookingCancelled:
		subject = "Your charter request was cancelled"
		body = fmt.Sprintf("Hello %s, your charter request from %s has been cancelled. Reference %s.", event.Name, route, event.Reference)
	default:
		subject = "We received your charter request"
		body = fmt.Sprintf("Hello %s, we received your request from %s for %d passenger(s). Reference %s.",
			event.Name, route, event.Passengers, event.Reference)
	}
	return Message{To: event.Email, Subject: subject, Body: body}
}

func (s *Sender) deliver(ctx context.Context, msg Message) error {
	s.logger.InfoContext(ctx, "email sent", "to", msg.To, "subject", msg.Subject)
	return nil
}
