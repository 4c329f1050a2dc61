package commands

import (
	"context"
	"log/slog"
	"time"
)

type Stage string

const (
	StageCreated          Stage = "created"
	StagePaid             Stage = "paid"
	StageItineraryCreated Stage = "itinerary_created"
	StageConfirmed        Stage = "confirmed"
	StageFailed           Stage = "failed"
)

type ProgressEvent struct {
	CheckoutID  string
	UserID      string
	Stage       Stage
	BookingID   string
	PaymentID   string
	ItineraryID string
	Step        Step
	Err         error
	At          time.Time
}

// ProgressNotifier observes checkout progress. Notify must not block the
// checkout for long and has no way to fail it.
type ProgressNotifier interface {
	Notify(ctx context.Context, event ProgressEvent)
}

type loggingNotifier struct{}

func NewLoggingNotifier() ProgressNotifier {
	return loggingNotifier{}
}

func (loggingNotifier) Notify(ctx context.Context, event ProgressEvent) {
	attrs := []any{
		"checkout_id", event.CheckoutID,
		"user_id", event.UserID,
		"stage", string(event.Stage),
	}
	if event.BookingID != "" {
		attrs = append(attrs, "booking_id", event.BookingID)
	}
	if event.PaymentID != "" {
		attrs = append(attrs, "payment_id", event.PaymentID)
	}
	if event.ItineraryID != "" {
		attrs = append(attrs, "itinerary_id", event.ItineraryID)
	}

	if event.Err != nil {
		attrs = append(attrs, "step", event.Step.String(), "error", event.Err.Error())
		slog.WarnContext(ctx, "checkout progress", attrs...)
		return
	}
	slog.InfoContext(ctx, "checkout progress", attrs...)
}

type multiNotifier []ProgressNotifier

// NewMultiNotifier fans every event out to all non-nil notifiers in order.
func NewMultiNotifier(notifiers ...ProgressNotifier) ProgressNotifier {
	var m multiNotifier
	for _, n := range notifiers {
		if n != nil {
			m = append(m, n)
		}
	}
	return m
}

func (m multiNotifier) Notify(ctx context.Context, event ProgressEvent) {
	for _, n := range m {
		n.Notify(ctx, event)
	}
}
