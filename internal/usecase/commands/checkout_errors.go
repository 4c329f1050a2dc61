package commands

import (
	"errors"
	"strings"

	"travel-checkout/internal/pkg/errs"
)

var (
	ErrAuthenticationRequired   = errs.New("authentication required")
	ErrInvalidBookingRequest    = errs.New("invalid booking request")
	ErrBookingCreationFailed    = errs.New("booking creation failed")
	ErrPaymentFailed            = errs.New("payment failed")
	ErrItineraryCreationFailed  = errs.New("itinerary creation failed")
	ErrConfirmationUpdateFailed = errs.New("booking confirmation failed")
	ErrCompensationFailed       = errs.New("booking compensation failed")
)

// Step names the backend call a checkout failed in.
type Step string

const (
	StepCreateBooking   Step = "create_booking"
	StepProcessPayment  Step = "process_payment"
	StepCreateItinerary Step = "create_itinerary"
	StepConfirmBooking  Step = "confirm_booking"
)

func (s Step) String() string {
	return string(s)
}

// CheckoutError is returned for every failure after the first backend call.
// errors.Is matches Kind, Cause and, when the compensating update also
// failed, ErrCompensationFailed.
type CheckoutError struct {
	Kind            error
	Step            Step
	CheckoutID      string
	BookingID       string
	PaymentID       string
	ItineraryID     string
	Cause           error
	CompensationErr error
}

func (e *CheckoutError) Error() string {
	var b strings.Builder
	b.WriteString(e.Step.String())
	b.WriteString(": ")
	b.WriteString(e.Kind.Error())
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	if e.CompensationErr != nil {
		b.WriteString(" (compensation failed: ")
		b.WriteString(e.CompensationErr.Error())
		b.WriteString(")")
	}
	return b.String()
}

func (e *CheckoutError) Unwrap() []error {
	wrapped := []error{e.Kind}
	if e.Cause != nil {
		wrapped = append(wrapped, e.Cause)
	}
	if e.CompensationErr != nil {
		wrapped = append(wrapped, ErrCompensationFailed, e.CompensationErr)
	}
	return wrapped
}

// NeedsReview reports whether server-side state may be inconsistent: the
// booking could not be marked FAILED, the confirmation never landed, or a
// payment was captured for a booking that ended FAILED.
func (e *CheckoutError) NeedsReview() bool {
	switch {
	case e.CompensationErr != nil:
		return true
	case errors.Is(e.Kind, ErrConfirmationUpdateFailed):
		return true
	default:
		return e.PaymentID != ""
	}
}

// ReviewReason is a short operator-facing explanation for NeedsReview.
func (e *CheckoutError) ReviewReason() string {
	switch {
	case errors.Is(e.Kind, ErrConfirmationUpdateFailed):
		return "payment captured but booking still PENDING"
	case e.CompensationErr != nil && e.PaymentID != "":
		return "payment captured and booking could not be marked FAILED"
	case e.CompensationErr != nil:
		return "booking could not be marked FAILED"
	case e.PaymentID != "":
		return "payment captured for a FAILED booking"
	default:
		return ""
	}
}

// AsCheckoutError unwraps err to a *CheckoutError.
func AsCheckoutError(err error) (*CheckoutError, bool) {
	var ce *CheckoutError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}
