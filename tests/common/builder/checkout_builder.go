//go:build unit || e2e

package builder

import (
	"time"

	"travel-checkout/internal/domain/booking"
	reqdto "travel-checkout/internal/handler/dto/request"
)

type CheckoutBuilder struct {
	Type          booking.Type
	UserID        string
	Token         string
	PaymentMethod string

	HotelID       string
	HotelName     string
	PricePerNight float64
	CheckIn       time.Time
	CheckOut      time.Time
	Guests        int

	FlightID    string
	Origin      string
	Destination string
	Departure   time.Time
	FlightPrice float64
	Passengers  int

	PackageID    string
	PackageName  string
	PackagePrice float64
	Travelers    int
	Activities   []string
	CustomTotal  float64

	WithoutItem bool
}

func NewCheckoutBuilder() *CheckoutBuilder {
	return &CheckoutBuilder{
		Type:          booking.TypeHotel,
		UserID:        "user-42",
		Token:         "bearer-token",
		PaymentMethod: "CARD",

		HotelID:       "hotel-1",
		HotelName:     "Seaside Resort",
		PricePerNight: 300,
		CheckIn:       time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:      time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC),
		Guests:        2,

		FlightID:    "flight-7",
		Origin:      "LHR",
		Destination: "JFK",
		Departure:   time.Date(2025, 2, 10, 9, 30, 0, 0, time.UTC),
		FlightPrice: 500,
		Passengers:  1,

		PackageID:    "pkg-3",
		PackageName:  "Alpine Week",
		PackagePrice: 1200,
		Travelers:    1,
	}
}

func (b *CheckoutBuilder) With(mutate func(*CheckoutBuilder)) *CheckoutBuilder {
	mutate(b)
	return b
}

func (b *CheckoutBuilder) AsHotel() *CheckoutBuilder {
	b.Type = booking.TypeHotel
	return b
}

func (b *CheckoutBuilder) AsFlight() *CheckoutBuilder {
	b.Type = booking.TypeFlight
	return b
}

func (b *CheckoutBuilder) AsPackage() *CheckoutBuilder {
	b.Type = booking.TypePackage
	return b
}

func (b *CheckoutBuilder) WithUser(userID, token string) *CheckoutBuilder {
	b.UserID = userID
	b.Token = token
	return b
}

func (b *CheckoutBuilder) WithPricePerNight(price float64) *CheckoutBuilder {
	b.PricePerNight = price
	return b
}

func (b *CheckoutBuilder) WithStay(checkIn, checkOut time.Time) *CheckoutBuilder {
	b.CheckIn = checkIn
	b.CheckOut = checkOut
	return b
}

func (b *CheckoutBuilder) WithFlightPrice(price float64) *CheckoutBuilder {
	b.FlightPrice = price
	return b
}

func (b *CheckoutBuilder) WithPassengers(n int) *CheckoutBuilder {
	b.Passengers = n
	return b
}

func (b *CheckoutBuilder) WithPackagePrice(price float64) *CheckoutBuilder {
	b.PackagePrice = price
	return b
}

func (b *CheckoutBuilder) WithTravelers(n int) *CheckoutBuilder {
	b.Travelers = n
	return b
}

func (b *CheckoutBuilder) WithCustomization(activities []string, total float64) *CheckoutBuilder {
	b.Activities = activities
	b.CustomTotal = total
	return b
}

func (b *CheckoutBuilder) WithNoItem() *CheckoutBuilder {
	b.WithoutItem = true
	return b
}

// Build methods
func (b *CheckoutBuilder) BuildIntent() booking.Intent {
	intent := booking.Intent{
		Search:        b.buildSearch(),
		Requester:     booking.Requester{UserID: b.UserID, Token: b.Token},
		PaymentMethod: b.PaymentMethod,
	}
	if !b.WithoutItem {
		intent.Item = b.buildItem()
	}
	return intent
}

func (b *CheckoutBuilder) buildItem() booking.Item {
	switch b.Type {
	case booking.TypeFlight:
		return booking.Flight{
			FlightID:      b.FlightID,
			Airline:       "Oceanic",
			FlightNumber:  "OA815",
			Origin:        b.Origin,
			Destination:   b.Destination,
			DepartureTime: b.Departure,
			Price:         booking.NewMoneyFromAmount(b.FlightPrice),
		}
	case booking.TypePackage:
		return booking.Package{
			PackageID:    b.PackageID,
			Name:         b.PackageName,
			Destination:  "Zermatt",
			DurationDays: 7,
			Price:        booking.NewMoneyFromAmount(b.PackagePrice),
		}
	default:
		return booking.Hotel{
			HotelID:       b.HotelID,
			Name:          b.HotelName,
			RoomType:      "Double",
			PricePerNight: booking.NewMoneyFromAmount(b.PricePerNight),
		}
	}
}

func (b *CheckoutBuilder) buildSearch() booking.SearchContext {
	search := booking.SearchContext{
		CheckIn:    b.CheckIn,
		CheckOut:   b.CheckOut,
		Guests:     b.Guests,
		Passengers: b.Passengers,
		Travelers:  b.Travelers,
	}
	if b.Activities != nil || b.CustomTotal > 0 {
		search.Customization = &booking.Customization{
			Activities: b.Activities,
			Travelers:  b.Travelers,
			TotalPrice: booking.NewMoneyFromAmount(b.CustomTotal),
		}
	}
	return search
}

func (b *CheckoutBuilder) BuildCreateRequestDTO() reqdto.CreateCheckoutRequest {
	req := reqdto.CreateCheckoutRequest{
		BookingType: b.Type.String(),
		Search: reqdto.SearchRequest{
			CheckIn:    &reqdto.Date{Time: b.CheckIn},
			CheckOut:   &reqdto.Date{Time: b.CheckOut},
			Guests:     b.Guests,
			Passengers: b.Passengers,
			Travelers:  b.Travelers,
		},
	}
	if b.Activities != nil || b.CustomTotal > 0 {
		req.Search.Customization = &reqdto.CustomizationRequest{
			Activities: b.Activities,
			Travelers:  b.Travelers,
			TotalPrice: b.CustomTotal,
		}
	}
	if b.WithoutItem {
		return req
	}

	switch b.Type {
	case booking.TypeFlight:
		req.Flight = &reqdto.FlightItem{
			ID:            b.FlightID,
			Origin:        b.Origin,
			Destination:   b.Destination,
			DepartureTime: &reqdto.Date{Time: b.Departure},
			Price:         b.FlightPrice,
		}
	case booking.TypePackage:
		req.Package = &reqdto.PackageItem{
			ID:    b.PackageID,
			Name:  b.PackageName,
			Price: b.PackagePrice,
		}
	default:
		req.Hotel = &reqdto.HotelItem{
			ID:            b.HotelID,
			Name:          b.HotelName,
			PricePerNight: b.PricePerNight,
		}
	}
	return req
}
