package commands

import (
	"context"
	"log/slog"

	"travel-checkout/internal/domain/booking"
	"travel-checkout/internal/pkg/clock"
	"travel-checkout/internal/pkg/errs"

	"github.com/google/uuid"
)

type SubmitBookingResult struct {
	CheckoutID  string
	BookingID   string
	PaymentID   string
	ItineraryID string
	Type        booking.Type
	TotalAmount booking.Money
	Status      booking.Status
	Stages      []Stage
}

type CheckoutCommands interface {
	SubmitBooking(ctx context.Context, intent booking.Intent) (*SubmitBookingResult, error)
}

type checkoutUseCaseImpl struct {
	bookings    BookingService
	payments    PaymentService
	itineraries ItineraryService
	notifier    ProgressNotifier
	clock       clock.Clock
}

func NewCheckoutUseCase(
	bookings BookingService,
	payments PaymentService,
	itineraries ItineraryService,
	notifier ProgressNotifier,
	clk clock.Clock,
) CheckoutCommands {
	if notifier == nil {
		notifier = NewMultiNotifier()
	}
	return &checkoutUseCaseImpl{
		bookings:    bookings,
		payments:    payments,
		itineraries: itineraries,
		notifier:    notifier,
		clock:       clk,
	}
}

// checkoutRun is the state of one SubmitBooking call.
type checkoutRun struct {
	id     string
	intent booking.Intent
	total  booking.Money
	saga   *booking.Saga
	stages []Stage
}

func (r *checkoutRun) token() string {
	return r.intent.Requester.Token
}

// SubmitBooking runs create booking -> payment -> itinerary (packages) ->
// confirm, strictly in order. A failure after the booking exists and before
// confirmation triggers one best-effort FAILED update; nothing is retried.
func (uc *checkoutUseCaseImpl) SubmitBooking(ctx context.Context, intent booking.Intent) (*SubmitBookingResult, error) {
	if !intent.Requester.IsAuthenticated() {
		return nil, ErrAuthenticationRequired
	}
	total, err := intent.Validate()
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidBookingRequest)
	}

	run := &checkoutRun{
		id:     uuid.NewString(),
		intent: intent,
		total:  total,
		saga:   booking.NewSaga(intent.Type()),
	}
	slog.Info("checkout started",
		"checkout_id", run.id,
		"user_id", intent.Requester.UserID,
		"type", intent.Type().String(),
		"total_amount", total.Amount())

	if err := uc.createBooking(ctx, run); err != nil {
		return nil, err
	}
	if err := uc.processPayment(ctx, run); err != nil {
		return nil, err
	}
	if run.saga.NeedsItinerary() {
		if err := uc.createItinerary(ctx, run); err != nil {
			return nil, err
		}
	}
	if err := uc.confirmBooking(ctx, run); err != nil {
		return nil, err
	}

	return &SubmitBookingResult{
		CheckoutID:  run.id,
		BookingID:   run.saga.BookingID(),
		PaymentID:   run.saga.PaymentID(),
		ItineraryID: run.saga.ItineraryID(),
		Type:        run.saga.BookingType(),
		TotalAmount: run.total,
		Status:      booking.StatusConfirmed,
		Stages:      run.stages,
	}, nil
}

func (uc *checkoutUseCaseImpl) createBooking(ctx context.Context, run *checkoutRun) error {
	payload := booking.NewCreateBookingPayload(run.intent, run.total, uc.clock.Now())

	bookingID, err := uc.bookings.Create(ctx, run.token(), payload)
	if err == nil {
		err = run.saga.Created(bookingID)
	}
	if err != nil {
		// Nothing exists server-side yet, so there is nothing to compensate.
		return uc.fail(ctx, run, ErrBookingCreationFailed, StepCreateBooking, err, nil)
	}

	uc.advance(ctx, run, StageCreated, StepCreateBooking)
	return nil
}

func (uc *checkoutUseCaseImpl) processPayment(ctx context.Context, run *checkoutRun) error {
	payload := booking.NewPaymentPayload(run.intent, run.saga.BookingID(), run.total, uc.clock.Now())

	paymentID, err := uc.payments.Create(ctx, run.token(), payload)
	if err == nil {
		err = run.saga.Paid(paymentID)
	}
	if err != nil {
		compErr := uc.compensate(ctx, run)
		return uc.fail(ctx, run, ErrPaymentFailed, StepProcessPayment, err, compErr)
	}

	uc.advance(ctx, run, StagePaid, StepProcessPayment)
	return nil
}

func (uc *checkoutUseCaseImpl) createItinerary(ctx context.Context, run *checkoutRun) error {
	pkg, ok := run.intent.Item.(booking.Package)
	if !ok {
		return uc.fail(ctx, run, ErrItineraryCreationFailed, StepCreateItinerary, booking.ErrInvalidTransition, uc.compensate(ctx, run))
	}
	payload := booking.NewItineraryPayload(run.intent, pkg, run.saga.BookingID(), run.total)

	itineraryID, err := uc.itineraries.Create(ctx, run.token(), payload)
	if err == nil {
		err = run.saga.ItineraryCreated(itineraryID)
	}
	if err != nil {
		compErr := uc.compensate(ctx, run)
		return uc.fail(ctx, run, ErrItineraryCreationFailed, StepCreateItinerary, err, compErr)
	}

	uc.advance(ctx, run, StageItineraryCreated, StepCreateItinerary)
	return nil
}

// confirmBooking is not compensated: payment already succeeded, and the
// booking is left PENDING for manual reconciliation.
func (uc *checkoutUseCaseImpl) confirmBooking(ctx context.Context, run *checkoutRun) error {
	if !run.saga.ReadyToConfirm() {
		return uc.fail(ctx, run, ErrConfirmationUpdateFailed, StepConfirmBooking, booking.ErrConfirmWithoutPayment, nil)
	}

	payload := booking.NewConfirmPayload(run.saga.PaymentID(), run.saga.ItineraryID())
	err := uc.bookings.UpdateByID(ctx, run.token(), run.saga.BookingID(), payload)
	if err == nil {
		err = run.saga.Confirm()
	}
	if err != nil {
		return uc.fail(ctx, run, ErrConfirmationUpdateFailed, StepConfirmBooking, err, nil)
	}

	uc.advance(ctx, run, StageConfirmed, StepConfirmBooking)
	slog.Info("checkout confirmed",
		"checkout_id", run.id,
		"booking_id", run.saga.BookingID(),
		"payment_id", run.saga.PaymentID())
	return nil
}

// compensate sends the single FAILED update. Its error is reported, never retried.
func (uc *checkoutUseCaseImpl) compensate(ctx context.Context, run *checkoutRun) error {
	if !run.saga.HasBooking() {
		return nil
	}
	if err := run.saga.Fail(); err != nil {
		return err
	}

	err := uc.bookings.UpdateByID(ctx, run.token(), run.saga.BookingID(), booking.NewFailedPayload())
	if err != nil {
		slog.Error("failed to mark booking as FAILED",
			"checkout_id", run.id,
			"booking_id", run.saga.BookingID(),
			"error", err.Error())
		return errs.Wrap(err, "mark booking failed")
	}

	slog.Info("booking marked as FAILED",
		"checkout_id", run.id,
		"booking_id", run.saga.BookingID())
	return nil
}

func (uc *checkoutUseCaseImpl) advance(ctx context.Context, run *checkoutRun, stage Stage, step Step) {
	run.stages = append(run.stages, stage)
	slog.Debug("checkout step completed",
		"checkout_id", run.id,
		"booking_id", run.saga.BookingID(),
		"step", step.String())
	uc.notifier.Notify(ctx, uc.event(run, stage, step, nil))
}

func (uc *checkoutUseCaseImpl) fail(ctx context.Context, run *checkoutRun, kind error, step Step, cause, compErr error) error {
	checkoutErr := &CheckoutError{
		Kind:            kind,
		Step:            step,
		CheckoutID:      run.id,
		BookingID:       run.saga.BookingID(),
		PaymentID:       run.saga.PaymentID(),
		ItineraryID:     run.saga.ItineraryID(),
		Cause:           cause,
		CompensationErr: compErr,
	}

	run.stages = append(run.stages, StageFailed)
	slog.Warn("checkout failed",
		"checkout_id", run.id,
		"booking_id", run.saga.BookingID(),
		"step", step.String(),
		"needs_review", checkoutErr.NeedsReview(),
		"error", checkoutErr.Error())
	uc.notifier.Notify(ctx, uc.event(run, StageFailed, step, checkoutErr))
	return checkoutErr
}

func (uc *checkoutUseCaseImpl) event(run *checkoutRun, stage Stage, step Step, err error) ProgressEvent {
	return ProgressEvent{
		CheckoutID:  run.id,
		UserID:      run.intent.Requester.UserID,
		Stage:       stage,
		BookingID:   run.saga.BookingID(),
		PaymentID:   run.saga.PaymentID(),
		ItineraryID: run.saga.ItineraryID(),
		Step:        step,
		Err:         err,
		At:          uc.clock.Now(),
	}
}
