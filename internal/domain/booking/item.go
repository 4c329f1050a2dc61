package booking

import "time"

// Item is the catalog record being booked. The set of variants is closed:
// Hotel, Flight and Package are the only implementations, and each one must
// provide its own pricing and payload mapping to satisfy the interface.
type Item interface {
	Type() Type
	ID() string

	unitPrice(search SearchContext) Money
	quantity(search SearchContext) int
	travelers(search SearchContext) int
	bookingDetails(search SearchContext) BookingDetails
}

type Hotel struct {
	HotelID       string
	Name          string
	Location      string
	RoomType      string
	PricePerNight Money
}

func (h Hotel) Type() Type { return TypeHotel }
func (h Hotel) ID() string { return h.HotelID }

func (h Hotel) unitPrice(_ SearchContext) Money {
	return h.PricePerNight
}

func (h Hotel) quantity(search SearchContext) int {
	return Nights(search.CheckIn, search.CheckOut)
}

func (h Hotel) travelers(search SearchContext) int {
	return atLeastOne(search.Guests)
}

func (h Hotel) bookingDetails(search SearchContext) BookingDetails {
	return BookingDetails{
		HotelID:      h.HotelID,
		HotelName:    h.Name,
		RoomType:     h.RoomType,
		CheckInDate:  timePtr(search.CheckIn),
		CheckOutDate: timePtr(search.CheckOut),
	}
}

type Flight struct {
	FlightID      string
	Airline       string
	FlightNumber  string
	Origin        string
	Destination   string
	DepartureTime time.Time
	ArrivalTime   time.Time
	Price         Money
}

func (f Flight) Type() Type { return TypeFlight }
func (f Flight) ID() string { return f.FlightID }

func (f Flight) unitPrice(_ SearchContext) Money {
	return f.Price
}

func (f Flight) quantity(search SearchContext) int {
	return atLeastOne(search.Passengers)
}

func (f Flight) travelers(search SearchContext) int {
	return atLeastOne(search.Passengers)
}

func (f Flight) bookingDetails(_ SearchContext) BookingDetails {
	return BookingDetails{
		FlightID:      f.FlightID,
		Airline:       f.Airline,
		FlightNumber:  f.FlightNumber,
		Origin:        f.Origin,
		Destination:   f.Destination,
		DepartureDate: timePtr(f.DepartureTime),
		ArrivalDate:   timePtr(f.ArrivalTime),
	}
}

type Package struct {
	PackageID    string
	Name         string
	Destination  string
	DurationDays int
	Price        Money
}

func (p Package) Type() Type { return TypePackage }
func (p Package) ID() string { return p.PackageID }

// unitPrice prefers the total computed on the customization page over the list price.
func (p Package) unitPrice(search SearchContext) Money {
	if c := search.Customization; c != nil && c.TotalPrice.IsPositive() {
		return c.TotalPrice
	}
	return p.Price
}

func (p Package) quantity(search SearchContext) int {
	return p.travelers(search)
}

func (p Package) travelers(search SearchContext) int {
	if search.Travelers > 0 {
		return search.Travelers
	}
	if c := search.Customization; c != nil {
		return atLeastOne(c.Travelers)
	}
	return 1
}

func (p Package) bookingDetails(_ SearchContext) BookingDetails {
	return BookingDetails{
		TravelPackageID: p.PackageID,
		PackageName:     p.Name,
		Destination:     p.Destination,
	}
}

// isVariant reports whether item is a Hotel, Flight or Package value. Pointers
// to a variant satisfy Item through the value method set and are rejected.
func isVariant(item Item) bool {
	switch item.(type) {
	case Hotel, Flight, Package:
		return true
	default:
		return false
	}
}

func atLeastOne(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
