//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"travel-checkout/internal/domain/booking"
	"travel-checkout/internal/pkg/clock"
	"travel-checkout/internal/pkg/errs"
	"travel-checkout/internal/usecase/commands"
	"travel-checkout/tests/common/builder"
	commandsmock "travel-checkout/tests/mock/commands"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var errUpstream = errors.New("upstream unavailable")

type CheckoutUseCaseTestSuite struct {
	suite.Suite
	ctx         context.Context
	mockCtrl    *gomock.Controller
	bookings    *commandsmock.MockBookingService
	payments    *commandsmock.MockPaymentService
	itineraries *commandsmock.MockItineraryService
	notifier    *commandsmock.MockProgressNotifier
	clock       *clock.MockClock
	useCase     commands.CheckoutCommands
}

func (s *CheckoutUseCaseTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.bookings = commandsmock.NewMockBookingService(s.mockCtrl)
	s.payments = commandsmock.NewMockPaymentService(s.mockCtrl)
	s.itineraries = commandsmock.NewMockItineraryService(s.mockCtrl)
	s.notifier = commandsmock.NewMockProgressNotifier(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2024, 12, 20, 10, 0, 0, 0, time.UTC))
	s.useCase = commands.NewCheckoutUseCase(s.bookings, s.payments, s.itineraries, s.notifier, s.clock)
}

// Each s.Run gets fresh mocks so expectations never leak between cases.
func (s *CheckoutUseCaseTestSuite) SetupSubTest() {
	s.SetupTest()
}

func (s *CheckoutUseCaseTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCheckoutUseCaseSuite(t *testing.T) {
	suite.Run(t, new(CheckoutUseCaseTestSuite))
}

func (s *CheckoutUseCaseTestSuite) allowNotifications() {
	s.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).AnyTimes()
}

func (s *CheckoutUseCaseTestSuite) TestSubmitBooking_Success() {
	s.Run("hotel: 300 per night for 2 nights", func() {
		s.allowNotifications()
		intent := builder.NewCheckoutBuilder().AsHotel().BuildIntent()

		var created booking.CreateBookingPayload
		var paid booking.PaymentPayload
		var confirmed booking.UpdateBookingPayload
		gomock.InOrder(
			s.bookings.EXPECT().Create(gomock.Any(), "bearer-token", gomock.Any()).
				DoAndReturn(func(_ context.Context, _ string, p booking.CreateBookingPayload) (string, error) {
					created = p
					return "1", nil
				}),
			s.payments.EXPECT().Create(gomock.Any(), "bearer-token", gomock.Any()).
				DoAndReturn(func(_ context.Context, _ string, p booking.PaymentPayload) (string, error) {
					paid = p
					return "9", nil
				}),
			s.bookings.EXPECT().UpdateByID(gomock.Any(), "bearer-token", "1", gomock.Any()).
				DoAndReturn(func(_ context.Context, _, _ string, p booking.UpdateBookingPayload) error {
					confirmed = p
					return nil
				}).Times(1),
		)
		s.itineraries.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		result, err := s.useCase.SubmitBooking(s.ctx, intent)

		s.Require().NoError(err)
		s.Equal("1", result.BookingID)
		s.Equal("9", result.PaymentID)
		s.Empty(result.ItineraryID)
		s.Equal(booking.StatusConfirmed, result.Status)
		s.Equal(booking.TypeHotel, result.Type)
		s.Equal(int64(60000), result.TotalAmount.Cents())
		s.NotEmpty(result.CheckoutID)
		s.Equal([]commands.Stage{commands.StageCreated, commands.StagePaid, commands.StageConfirmed}, result.Stages)

		s.Equal(booking.StatusPending, created.Status)
		s.Equal(booking.PendingPaymentRef, created.PaymentID)
		s.InDelta(600.0, created.TotalAmount, 0.0001)
		s.Equal(s.clock.Now(), created.BookingDate)

		s.Equal("1", paid.BookingID)
		s.InDelta(600.0, paid.Amount, 0.0001)
		s.Equal("CARD", paid.PaymentMethod)

		s.Equal(booking.UpdateBookingPayload{Status: booking.StatusConfirmed, PaymentID: "9"}, confirmed)
	})

	s.Run("package: itinerary is created before confirmation", func() {
		s.allowNotifications()
		intent := builder.NewCheckoutBuilder().AsPackage().WithTravelers(2).BuildIntent()

		var itinerary booking.ItineraryPayload
		gomock.InOrder(
			s.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return("b-1", nil),
			s.payments.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return("p-1", nil),
			s.itineraries.EXPECT().Create(gomock.Any(), "bearer-token", gomock.Any()).
				DoAndReturn(func(_ context.Context, _ string, p booking.ItineraryPayload) (string, error) {
					itinerary = p
					return "it-1", nil
				}),
			s.bookings.EXPECT().UpdateByID(gomock.Any(), gomock.Any(), "b-1",
				booking.UpdateBookingPayload{Status: booking.StatusConfirmed, PaymentID: "p-1", ItineraryID: "it-1"}).
				Return(nil).Times(1),
		)

		result, err := s.useCase.SubmitBooking(s.ctx, intent)

		s.Require().NoError(err)
		s.Equal("it-1", result.ItineraryID)
		s.Equal(int64(240000), result.TotalAmount.Cents())
		s.Equal("pkg-3", itinerary.TravelPackageID)
		s.Equal("b-1", itinerary.BookingID)
		s.Equal(2, itinerary.Travelers)
		s.Equal([]commands.Stage{
			commands.StageCreated, commands.StagePaid, commands.StageItineraryCreated, commands.StageConfirmed,
		}, result.Stages)
	})

	s.Run("notifies every stage in order", func() {
		intent := builder.NewCheckoutBuilder().AsFlight().BuildIntent()
		s.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return("1", nil)
		s.payments.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return("9", nil)
		s.bookings.EXPECT().UpdateByID(gomock.Any(), gomock.Any(), "1", gomock.Any()).Return(nil)

		var events []commands.ProgressEvent
		s.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).
			Do(func(_ context.Context, e commands.ProgressEvent) { events = append(events, e) }).
			Times(3)

		result, err := s.useCase.SubmitBooking(s.ctx, intent)

		s.Require().NoError(err)
		s.Require().Len(events, 3)
		s.Equal(commands.StageCreated, events[0].Stage)
		s.Empty(events[0].PaymentID)
		s.Equal(commands.StagePaid, events[1].Stage)
		s.Equal("9", events[1].PaymentID)
		s.Equal(commands.StageConfirmed, events[2].Stage)
		for _, e := range events {
			s.Equal(result.CheckoutID, e.CheckoutID)
			s.Equal("user-42", e.UserID)
			s.Equal("1", e.BookingID)
			s.NoError(e.Err)
		}
	})
}

func (s *CheckoutUseCaseTestSuite) TestSubmitBooking_Preconditions() {
	cases := []struct {
		name    string
		intent  booking.Intent
		wantErr error
	}{
		{
			name:    "missing item",
			intent:  builder.NewCheckoutBuilder().WithNoItem().BuildIntent(),
			wantErr: commands.ErrInvalidBookingRequest,
		},
		{
			name:    "zero total",
			intent:  builder.NewCheckoutBuilder().AsHotel().WithPricePerNight(0).BuildIntent(),
			wantErr: commands.ErrInvalidBookingRequest,
		},
		{
			name: "pointer to a package is not a supported item",
			intent: withItem(builder.NewCheckoutBuilder().AsPackage().BuildIntent(),
				&booking.Package{PackageID: "pkg-3", Price: booking.NewMoneyFromAmount(1200)}),
			wantErr: commands.ErrInvalidBookingRequest,
		},
		{
			name:    "nil hotel pointer",
			intent:  withItem(builder.NewCheckoutBuilder().BuildIntent(), (*booking.Hotel)(nil)),
			wantErr: commands.ErrInvalidBookingRequest,
		},
		{
			name:    "total overflows",
			intent:  builder.NewCheckoutBuilder().AsPackage().WithPackagePrice(0.04).WithTravelers(1<<62 + 1).BuildIntent(),
			wantErr: commands.ErrInvalidBookingRequest,
		},
		{
			name:    "missing user id",
			intent:  builder.NewCheckoutBuilder().WithUser("", "bearer-token").BuildIntent(),
			wantErr: commands.ErrAuthenticationRequired,
		},
		{
			name:    "missing credential",
			intent:  builder.NewCheckoutBuilder().WithUser("user-42", "").BuildIntent(),
			wantErr: commands.ErrAuthenticationRequired,
		},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			// No expectations: any backend call or notification fails the test.
			result, err := s.useCase.SubmitBooking(s.ctx, tc.intent)

			s.Nil(result)
			s.Require().Error(err)
			s.True(errs.Is(err, tc.wantErr), "got %v", err)
			_, isCheckoutErr := commands.AsCheckoutError(err)
			s.False(isCheckoutErr)
		})
	}

	s.Run("missing item keeps the domain cause", func() {
		_, err := s.useCase.SubmitBooking(s.ctx, builder.NewCheckoutBuilder().WithNoItem().BuildIntent())
		s.Require().ErrorIs(err, booking.ErrMissingItem)
	})

	s.Run("pointer variant keeps the domain cause", func() {
		intent := withItem(builder.NewCheckoutBuilder().AsPackage().BuildIntent(), &booking.Package{PackageID: "pkg-3"})
		_, err := s.useCase.SubmitBooking(s.ctx, intent)
		s.Require().ErrorIs(err, booking.ErrUnsupportedItem)
	})

	s.Run("overflow keeps the domain cause", func() {
		intent := builder.NewCheckoutBuilder().AsFlight().WithFlightPrice(0.04).WithPassengers(1<<62 + 1).BuildIntent()
		_, err := s.useCase.SubmitBooking(s.ctx, intent)
		s.Require().ErrorIs(err, booking.ErrTotalOutOfRange)
	})
}

func withItem(intent booking.Intent, item booking.Item) booking.Intent {
	intent.Item = item
	return intent
}

func (s *CheckoutUseCaseTestSuite) TestSubmitBooking_Failures() {
	s.Run("booking creation fails: nothing else is called", func() {
		s.allowNotifications()
		s.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return("", errUpstream)
		s.bookings.EXPECT().UpdateByID(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		s.payments.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		s.itineraries.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := s.useCase.SubmitBooking(s.ctx, builder.NewCheckoutBuilder().BuildIntent())

		s.Require().ErrorIs(err, commands.ErrBookingCreationFailed)
		s.Require().ErrorIs(err, errUpstream)
		ce, ok := commands.AsCheckoutError(err)
		s.Require().True(ok)
		s.Equal(commands.StepCreateBooking, ce.Step)
		s.Empty(ce.BookingID)
		s.False(ce.NeedsReview())
	})

	s.Run("flight payment throws: exactly one FAILED update", func() {
		s.allowNotifications()
		intent := builder.NewCheckoutBuilder().AsFlight().WithPassengers(2).BuildIntent()

		var charged float64
		gomock.InOrder(
			s.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return("1", nil),
			s.payments.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ string, p booking.PaymentPayload) (string, error) {
					charged = p.Amount
					return "", errUpstream
				}),
			s.bookings.EXPECT().UpdateByID(gomock.Any(), gomock.Any(), "1", booking.NewFailedPayload()).
				Return(nil).Times(1),
		)
		s.itineraries.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := s.useCase.SubmitBooking(s.ctx, intent)

		s.InDelta(1000.0, charged, 0.0001)
		s.Require().ErrorIs(err, commands.ErrPaymentFailed)
		s.NotErrorIs(err, commands.ErrCompensationFailed)
		ce, ok := commands.AsCheckoutError(err)
		s.Require().True(ok)
		s.Equal("1", ce.BookingID)
		s.Empty(ce.PaymentID)
		s.False(ce.NeedsReview())
	})

	s.Run("payment without an id is a payment failure", func() {
		s.allowNotifications()
		s.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return("1", nil)
		s.payments.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return("", nil)
		s.bookings.EXPECT().UpdateByID(gomock.Any(), gomock.Any(), "1", booking.NewFailedPayload()).Return(nil).Times(1)

		_, err := s.useCase.SubmitBooking(s.ctx, builder.NewCheckoutBuilder().BuildIntent())

		s.Require().ErrorIs(err, commands.ErrPaymentFailed)
		s.Require().ErrorIs(err, booking.ErrMissingReference)
	})

	s.Run("package itinerary throws after payment: booking FAILED, payment id reported", func() {
		s.allowNotifications()
		intent := builder.NewCheckoutBuilder().AsPackage().
			WithCustomization([]string{"ski pass"}, 1500).
			BuildIntent()

		gomock.InOrder(
			s.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return("1", nil),
			s.payments.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return("9", nil),
			s.itineraries.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return("", errUpstream),
			s.bookings.EXPECT().UpdateByID(gomock.Any(), gomock.Any(), "1", booking.NewFailedPayload()).
				Return(nil).Times(1),
		)

		_, err := s.useCase.SubmitBooking(s.ctx, intent)

		s.Require().ErrorIs(err, commands.ErrItineraryCreationFailed)
		ce, ok := commands.AsCheckoutError(err)
		s.Require().True(ok)
		s.Equal(commands.StepCreateItinerary, ce.Step)
		s.Equal("9", ce.PaymentID)
		s.True(ce.NeedsReview())
		s.Equal("payment captured for a FAILED booking", ce.ReviewReason())
	})

	s.Run("compensation fails: both kinds match", func() {
		s.allowNotifications()
		compErr := errors.New("booking service down")
		s.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return("1", nil)
		s.payments.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return("", errUpstream)
		s.bookings.EXPECT().UpdateByID(gomock.Any(), gomock.Any(), "1", booking.NewFailedPayload()).
			Return(compErr).Times(1)

		_, err := s.useCase.SubmitBooking(s.ctx, builder.NewCheckoutBuilder().BuildIntent())

		s.Require().ErrorIs(err, commands.ErrPaymentFailed)
		s.Require().ErrorIs(err, commands.ErrCompensationFailed)
		s.Require().ErrorIs(err, compErr)
		ce, ok := commands.AsCheckoutError(err)
		s.Require().True(ok)
		s.True(ce.NeedsReview())
		s.Contains(ce.Error(), "compensation failed")
	})

	s.Run("confirmation fails: no compensation, flagged for review", func() {
		s.allowNotifications()
		s.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return("1", nil)
		s.payments.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return("9", nil)
		s.bookings.EXPECT().UpdateByID(gomock.Any(), gomock.Any(), "1",
			booking.UpdateBookingPayload{Status: booking.StatusConfirmed, PaymentID: "9"}).
			Return(errUpstream).Times(1)

		_, err := s.useCase.SubmitBooking(s.ctx, builder.NewCheckoutBuilder().BuildIntent())

		s.Require().ErrorIs(err, commands.ErrConfirmationUpdateFailed)
		s.NotErrorIs(err, commands.ErrCompensationFailed)
		ce, ok := commands.AsCheckoutError(err)
		s.Require().True(ok)
		s.Equal(commands.StepConfirmBooking, ce.Step)
		s.True(ce.NeedsReview())
		s.Equal("payment captured but booking still PENDING", ce.ReviewReason())
	})

	s.Run("failure is notified with the step", func() {
		s.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return("", errUpstream)

		var failed commands.ProgressEvent
		s.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).
			Do(func(_ context.Context, e commands.ProgressEvent) { failed = e }).
			Times(1)

		_, err := s.useCase.SubmitBooking(s.ctx, builder.NewCheckoutBuilder().BuildIntent())

		s.Require().Error(err)
		s.Equal(commands.StageFailed, failed.Stage)
		s.Equal(commands.StepCreateBooking, failed.Step)
		s.ErrorIs(failed.Err, commands.ErrBookingCreationFailed)
	})
}

func (s *CheckoutUseCaseTestSuite) TestSubmitBooking_StartsFreshEachTime() {
	s.allowNotifications()
	intent := builder.NewCheckoutBuilder().BuildIntent()

	s.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return("1", nil)
	s.payments.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return("", errUpstream)
	s.bookings.EXPECT().UpdateByID(gomock.Any(), gomock.Any(), "1", gomock.Any()).Return(nil)
	_, err := s.useCase.SubmitBooking(s.ctx, intent)
	s.Require().ErrorIs(err, commands.ErrPaymentFailed)

	s.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return("2", nil)
	s.payments.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return("9", nil)
	s.bookings.EXPECT().UpdateByID(gomock.Any(), gomock.Any(), "2", gomock.Any()).Return(nil)
	result, err := s.useCase.SubmitBooking(s.ctx, intent)

	s.Require().NoError(err)
	s.Equal("2", result.BookingID)
}
