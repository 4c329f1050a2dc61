//go:build unit

package booking_test

import (
	"math"
	"testing"
	"time"

	"travel-checkout/internal/domain/booking"
	"travel-checkout/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNights(t *testing.T) {
	cases := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     int
	}{
		{name: "two full days", checkIn: date(2025, 1, 1), checkOut: date(2025, 1, 3), want: 2},
		{name: "same day counts as one night", checkIn: date(2025, 1, 1), checkOut: date(2025, 1, 1), want: 1},
		{name: "partial day rounds up", checkIn: date(2025, 1, 1), checkOut: date(2025, 1, 2).Add(3 * time.Hour), want: 2},
		{name: "reversed dates use absolute span", checkIn: date(2025, 1, 5), checkOut: date(2025, 1, 2), want: 3},
		{name: "missing check-out", checkIn: date(2025, 1, 5), want: 1},
		{name: "missing both", want: 1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, booking.Nights(c.checkIn, c.checkOut))
		})
	}
}

func TestTotalAmount(t *testing.T) {
	t.Run("hotel: price per night times nights", func(t *testing.T) {
		intent := builder.NewCheckoutBuilder().AsHotel().
			WithPricePerNight(300).
			WithStay(date(2025, 1, 1), date(2025, 1, 3)).
			BuildIntent()

		assert.Equal(t, int64(60000), booking.TotalAmount(intent).Cents())
		assert.InDelta(t, 600.0, booking.TotalAmount(intent).Amount(), 0.0001)
	})

	t.Run("hotel: decimal nightly rate stays exact", func(t *testing.T) {
		intent := builder.NewCheckoutBuilder().AsHotel().
			WithPricePerNight(99.99).
			WithStay(date(2025, 3, 1), date(2025, 3, 4)).
			BuildIntent()

		assert.Equal(t, int64(29997), booking.TotalAmount(intent).Cents())
	})

	t.Run("flight: price times passengers", func(t *testing.T) {
		cases := []struct {
			passengers int
			want       int64
		}{
			{passengers: 2, want: 100000},
			{passengers: 1, want: 50000},
			{passengers: 0, want: 50000},
			{passengers: -3, want: 50000},
		}
		for _, c := range cases {
			intent := builder.NewCheckoutBuilder().AsFlight().WithFlightPrice(500).WithPassengers(c.passengers).BuildIntent()
			assert.Equal(t, c.want, booking.TotalAmount(intent).Cents(), "passengers=%d", c.passengers)
		}
	})

	t.Run("package: price times travelers", func(t *testing.T) {
		intent := builder.NewCheckoutBuilder().AsPackage().WithPackagePrice(1200).WithTravelers(3).BuildIntent()
		assert.Equal(t, int64(360000), booking.TotalAmount(intent).Cents())
	})

	t.Run("package: customization total replaces list price", func(t *testing.T) {
		intent := builder.NewCheckoutBuilder().AsPackage().
			WithPackagePrice(1200).
			WithTravelers(2).
			WithCustomization([]string{"ski pass", "spa"}, 1500).
			BuildIntent()

		assert.Equal(t, int64(300000), booking.TotalAmount(intent).Cents())
	})

	t.Run("no item yields zero", func(t *testing.T) {
		intent := builder.NewCheckoutBuilder().WithNoItem().BuildIntent()
		assert.True(t, booking.TotalAmount(intent).IsZero())
	})
}

func TestIntentValidate(t *testing.T) {
	t.Run("valid intent returns the total", func(t *testing.T) {
		total, err := builder.NewCheckoutBuilder().BuildIntent().Validate()
		require.NoError(t, err)
		assert.Equal(t, int64(60000), total.Cents())
	})

	t.Run("missing item", func(t *testing.T) {
		_, err := builder.NewCheckoutBuilder().WithNoItem().BuildIntent().Validate()
		require.ErrorIs(t, err, booking.ErrMissingItem)
	})

	t.Run("zero price", func(t *testing.T) {
		_, err := builder.NewCheckoutBuilder().AsFlight().WithFlightPrice(0).BuildIntent().Validate()
		require.ErrorIs(t, err, booking.ErrNonPositiveTotal)
	})

	t.Run("travelers that overflow the total", func(t *testing.T) {
		intent := builder.NewCheckoutBuilder().AsPackage().
			WithPackagePrice(0.04).
			WithTravelers(1<<62 + 1).
			BuildIntent()

		total, err := intent.Validate()
		require.ErrorIs(t, err, booking.ErrTotalOutOfRange)
		assert.True(t, total.IsZero())
		assert.True(t, booking.TotalAmount(intent).IsZero())
	})

	t.Run("pointer variants are rejected", func(t *testing.T) {
		items := map[string]booking.Item{
			"hotel":       &booking.Hotel{HotelID: "h-1", PricePerNight: booking.NewMoney(100)},
			"flight":      &booking.Flight{FlightID: "f-1", Price: booking.NewMoney(100)},
			"package":     &booking.Package{PackageID: "p-1", Price: booking.NewMoney(100)},
			"nil pointer": (*booking.Hotel)(nil),
		}
		for name, item := range items {
			intent := builder.NewCheckoutBuilder().BuildIntent()
			intent.Item = item

			_, err := intent.Validate()
			require.ErrorIs(t, err, booking.ErrUnsupportedItem, name)
			assert.Empty(t, intent.Type(), name)
			assert.Zero(t, intent.NumberOfTravelers(), name)
		}
	})
}

func TestMoneyTimes(t *testing.T) {
	cases := []struct {
		name   string
		cents  int64
		n      int
		want   int64
		wantOK bool
	}{
		{name: "plain product", cents: 30000, n: 2, want: 60000, wantOK: true},
		{name: "zero quantity", cents: 30000, n: 0, want: 0, wantOK: true},
		{name: "largest exact product", cents: math.MaxInt64 / 2, n: 2, want: math.MaxInt64 - 1, wantOK: true},
		{name: "one past the limit", cents: math.MaxInt64/2 + 1, n: 2, wantOK: false},
		{name: "wraps to a small positive amount", cents: 4, n: 1<<62 + 1, wantOK: false},
		{name: "negative quantity", cents: 100, n: -1, wantOK: false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := booking.NewMoney(c.cents).Times(c.n)
			require.Equal(t, c.wantOK, ok)
			assert.Equal(t, c.want, got.Cents())
		})
	}
}

func TestParseType(t *testing.T) {
	cases := map[string]booking.Type{
		"hotel":     booking.TypeHotel,
		" Flight ":  booking.TypeFlight,
		"PACKAGE":   booking.TypePackage,
		"itinerary": booking.TypePackage,
	}
	for in, want := range cases {
		got, err := booking.ParseType(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}

	_, err := booking.ParseType("cruise")
	require.ErrorIs(t, err, booking.ErrUnknownBookingType)
}
