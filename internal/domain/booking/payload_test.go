//go:build unit

package booking_test

import (
	"encoding/json"
	"testing"
	"time"

	"travel-checkout/internal/domain/booking"
	"travel-checkout/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 12, 20, 10, 0, 0, 0, time.UTC)

func TestNewCreateBookingPayload(t *testing.T) {
	t.Run("hotel", func(t *testing.T) {
		intent := builder.NewCheckoutBuilder().AsHotel().BuildIntent()
		total := booking.TotalAmount(intent)

		actual := booking.NewCreateBookingPayload(intent, total, now)

		checkIn := date(2025, 1, 1)
		checkOut := date(2025, 1, 3)
		expected := booking.CreateBookingPayload{
			UserID:            "user-42",
			Type:              booking.TypeHotel,
			Status:            booking.StatusPending,
			BookingDate:       now,
			TotalAmount:       600,
			NumberOfTravelers: 2,
			PaymentID:         booking.PendingPaymentRef,
			BookingDetails: booking.BookingDetails{
				HotelID:      "hotel-1",
				HotelName:    "Seaside Resort",
				RoomType:     "Double",
				CheckInDate:  &checkIn,
				CheckOutDate: &checkOut,
			},
		}
		if diff := cmp.Diff(expected, actual); diff != "" {
			t.Errorf("payload mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("flight carries route and passengers", func(t *testing.T) {
		intent := builder.NewCheckoutBuilder().AsFlight().WithPassengers(2).BuildIntent()
		actual := booking.NewCreateBookingPayload(intent, booking.TotalAmount(intent), now)

		assert.Equal(t, booking.TypeFlight, actual.Type)
		assert.Equal(t, 2, actual.NumberOfTravelers)
		assert.InDelta(t, 1000.0, actual.TotalAmount, 0.0001)
		assert.Equal(t, "LHR", actual.Origin)
		assert.Equal(t, "JFK", actual.Destination)
		require.NotNil(t, actual.DepartureDate)
		assert.Nil(t, actual.ArrivalDate)
		assert.Empty(t, actual.HotelID)
	})

	t.Run("type-specific fields are flattened on the wire", func(t *testing.T) {
		intent := builder.NewCheckoutBuilder().AsPackage().BuildIntent()
		body, err := json.Marshal(booking.NewCreateBookingPayload(intent, booking.TotalAmount(intent), now))
		require.NoError(t, err)

		var m map[string]any
		require.NoError(t, json.Unmarshal(body, &m))
		assert.Equal(t, "pkg-3", m["travelPackageId"])
		assert.Equal(t, "PENDING", m["status"])
		assert.Equal(t, "PENDING", m["paymentId"])
		assert.NotContains(t, m, "hotelId")
		assert.NotContains(t, m, "checkInDate")
	})
}

func TestNewPaymentPayload(t *testing.T) {
	intent := builder.NewCheckoutBuilder().AsFlight().WithPassengers(2).BuildIntent()

	actual := booking.NewPaymentPayload(intent, "1", booking.TotalAmount(intent), now)

	expected := booking.PaymentPayload{
		BookingID:     "1",
		UserID:        "user-42",
		Amount:        1000,
		PaymentMethod: "CARD",
		PaymentStatus: booking.PaymentStatusCompleted,
		PaymentDate:   now,
	}
	if diff := cmp.Diff(expected, actual); diff != "" {
		t.Errorf("payload mismatch (-want +got):\n%s", diff)
	}
}

func TestNewItineraryPayload(t *testing.T) {
	t.Run("summarises activities when no details were typed", func(t *testing.T) {
		intent := builder.NewCheckoutBuilder().AsPackage().
			WithTravelers(2).
			WithCustomization([]string{"ski pass", "spa"}, 1500).
			BuildIntent()
		pkg := intent.Item.(booking.Package)

		actual := booking.NewItineraryPayload(intent, pkg, "1", booking.TotalAmount(intent))

		assert.Equal(t, "pkg-3", actual.TravelPackageID)
		assert.Equal(t, "Activities: ski pass, spa; Travelers: 2", actual.CustomizationDetails)
		assert.Equal(t, 2, actual.Travelers)
		assert.InDelta(t, 3000.0, actual.Price, 0.0001)
	})

	t.Run("no customization", func(t *testing.T) {
		intent := builder.NewCheckoutBuilder().AsPackage().BuildIntent()
		actual := booking.NewItineraryPayload(intent, intent.Item.(booking.Package), "1", booking.TotalAmount(intent))

		assert.Empty(t, actual.CustomizationDetails)
		assert.Nil(t, actual.Activities)
		assert.Equal(t, 1, actual.Travelers)
	})
}

func TestUpdatePayloads(t *testing.T) {
	confirm := booking.NewConfirmPayload("9", "")
	assert.Equal(t, booking.UpdateBookingPayload{Status: booking.StatusConfirmed, PaymentID: "9"}, confirm)

	body, err := json.Marshal(booking.NewFailedPayload())
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"FAILED"}`, string(body))
}
