package request

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"travel-checkout/internal/domain/booking"
)

// Date accepts both the plain "2006-01-02" values sent by date inputs and full RFC 3339 timestamps.
type Date struct {
	time.Time
}

var dateLayouts = []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04", "2006-01-02"}

func (d *Date) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			d.Time = t.UTC()
			return nil
		}
		lastErr = err
	}
	return lastErr
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Time.Format(time.RFC3339))
}

func (d *Date) value() time.Time {
	if d == nil {
		return time.Time{}
	}
	return d.Time
}

type CreateCheckoutRequest struct {
	BookingType   string        `json:"bookingType" binding:"required,bookingtype"`
	Hotel         *HotelItem    `json:"hotel,omitempty"`
	Flight        *FlightItem   `json:"flight,omitempty"`
	Package       *PackageItem  `json:"package,omitempty"`
	Search        SearchRequest `json:"search"`
	PaymentMethod *string       `json:"paymentMethod,omitempty"`
}

type HotelItem struct {
	ID            string  `json:"id" binding:"required"`
	Name          string  `json:"name"`
	Location      string  `json:"location,omitempty"`
	RoomType      string  `json:"roomType,omitempty"`
	PricePerNight float64 `json:"pricePerNight" binding:"gte=0,lte=1000000"`
}

type FlightItem struct {
	ID            string  `json:"id" binding:"required"`
	Airline       string  `json:"airline,omitempty"`
	FlightNumber  string  `json:"flightNumber,omitempty"`
	Origin        string  `json:"origin"`
	Destination   string  `json:"destination"`
	DepartureTime *Date   `json:"departureTime,omitempty"`
	ArrivalTime   *Date   `json:"arrivalTime,omitempty"`
	Price         float64 `json:"price" binding:"gte=0,lte=1000000"`
}

type PackageItem struct {
	ID           string  `json:"id" binding:"required"`
	Name         string  `json:"name"`
	Destination  string  `json:"destination,omitempty"`
	DurationDays int     `json:"durationDays,omitempty" binding:"gte=0,lte=365"`
	Price        float64 `json:"price" binding:"gte=0,lte=1000000"`
}

type SearchRequest struct {
	CheckIn       *Date                 `json:"checkIn,omitempty"`
	CheckOut      *Date                 `json:"checkOut,omitempty"`
	Guests        int                   `json:"guests,omitempty" binding:"gte=0,lte=50"`
	Passengers    int                   `json:"passengers,omitempty" binding:"gte=0,lte=50"`
	Travelers     int                   `json:"travelers,omitempty" binding:"gte=0,lte=50"`
	Customization *CustomizationRequest `json:"customization,omitempty"`
}

type CustomizationRequest struct {
	Activities []string `json:"activities,omitempty"`
	Travelers  int      `json:"travelers,omitempty" binding:"gte=0,lte=50"`
	TotalPrice float64  `json:"totalPrice,omitempty" binding:"gte=0,lte=1000000"`
	Details    string   `json:"details,omitempty"`
}

func (r CreateCheckoutRequest) GetPaymentMethod(fallback string) string {
	if r.PaymentMethod == nil {
		return fallback
	}
	trimmed := strings.TrimSpace(*r.PaymentMethod)
	if trimmed == "" {
		return fallback
	}
	return strings.ToUpper(trimmed)
}

// ToDomain leaves Item nil when the body has no record for the declared type;
// the checkout rejects such intents itself.
func (r CreateCheckoutRequest) ToDomain(requester booking.Requester, defaultPaymentMethod string) (booking.Intent, error) {
	bookingType, err := booking.ParseType(r.BookingType)
	if err != nil {
		return booking.Intent{}, err
	}

	intent := booking.Intent{
		Search:        r.Search.toDomain(),
		Requester:     requester,
		PaymentMethod: r.GetPaymentMethod(defaultPaymentMethod),
	}

	switch bookingType {
	case booking.TypeHotel:
		if r.Hotel != nil {
			intent.Item = booking.Hotel{
				HotelID:       r.Hotel.ID,
				Name:          r.Hotel.Name,
				Location:      r.Hotel.Location,
				RoomType:      r.Hotel.RoomType,
				PricePerNight: booking.NewMoneyFromAmount(r.Hotel.PricePerNight),
			}
		}
	case booking.TypeFlight:
		if r.Flight != nil {
			intent.Item = booking.Flight{
				FlightID:      r.Flight.ID,
				Airline:       r.Flight.Airline,
				FlightNumber:  r.Flight.FlightNumber,
				Origin:        r.Flight.Origin,
				Destination:   r.Flight.Destination,
				DepartureTime: r.Flight.DepartureTime.value(),
				ArrivalTime:   r.Flight.ArrivalTime.value(),
				Price:         booking.NewMoneyFromAmount(r.Flight.Price),
			}
		}
	case booking.TypePackage:
		if r.Package != nil {
			intent.Item = booking.Package{
				PackageID:    r.Package.ID,
				Name:         r.Package.Name,
				Destination:  r.Package.Destination,
				DurationDays: r.Package.DurationDays,
				Price:        booking.NewMoneyFromAmount(r.Package.Price),
			}
		}
	}

	return intent, nil
}

func (s SearchRequest) toDomain() booking.SearchContext {
	search := booking.SearchContext{
		CheckIn:    s.CheckIn.value(),
		CheckOut:   s.CheckOut.value(),
		Guests:     s.Guests,
		Passengers: s.Passengers,
		Travelers:  s.Travelers,
	}
	if s.Customization != nil {
		search.Customization = &booking.Customization{
			Activities: s.Customization.Activities,
			Travelers:  s.Customization.Travelers,
			TotalPrice: booking.NewMoneyFromAmount(s.Customization.TotalPrice),
			Details:    s.Customization.Details,
		}
	}
	return search
}
