package booking

import "time"

// PendingPaymentRef is stored on a new booking until the payment id is known.
const PendingPaymentRef = "PENDING"

const PaymentStatusCompleted = "COMPLETED"

// BookingDetails holds the type-specific booking fields. Only the fields of
// the booked variant are set.
type BookingDetails struct {
	HotelID      string     `json:"hotelId,omitempty"`
	HotelName    string     `json:"hotelName,omitempty"`
	RoomType     string     `json:"roomType,omitempty"`
	CheckInDate  *time.Time `json:"checkInDate,omitempty"`
	CheckOutDate *time.Time `json:"checkOutDate,omitempty"`

	FlightID      string     `json:"flightId,omitempty"`
	Airline       string     `json:"airline,omitempty"`
	FlightNumber  string     `json:"flightNumber,omitempty"`
	Origin        string     `json:"origin,omitempty"`
	Destination   string     `json:"destination,omitempty"`
	DepartureDate *time.Time `json:"departureDate,omitempty"`
	ArrivalDate   *time.Time `json:"arrivalDate,omitempty"`

	TravelPackageID string `json:"travelPackageId,omitempty"`
	PackageName     string `json:"packageName,omitempty"`
}

type CreateBookingPayload struct {
	UserID            string    `json:"userId"`
	Type              Type      `json:"type"`
	Status            Status    `json:"status"`
	BookingDate       time.Time `json:"bookingDate"`
	TotalAmount       float64   `json:"totalAmount"`
	NumberOfTravelers int       `json:"numberOfTravelers"`
	PaymentID         string    `json:"paymentId"`
	BookingDetails
}

type PaymentPayload struct {
	BookingID     string    `json:"bookingId"`
	UserID        string    `json:"userId"`
	Amount        float64   `json:"amount"`
	PaymentMethod string    `json:"paymentMethod"`
	PaymentStatus string    `json:"paymentStatus"`
	PaymentDate   time.Time `json:"paymentDate"`
}

type ItineraryPayload struct {
	UserID               string   `json:"userId"`
	TravelPackageID      string   `json:"travelPackageId"`
	BookingID            string   `json:"bookingId,omitempty"`
	CustomizationDetails string   `json:"customizationDetails"`
	Activities           []string `json:"activities,omitempty"`
	Travelers            int      `json:"travelers"`
	Price                float64  `json:"price"`
}

// UpdateBookingPayload is the body of updateById. Confirm and fail are the
// only two updates the checkout ever sends.
type UpdateBookingPayload struct {
	Status      Status `json:"status"`
	PaymentID   string `json:"paymentId,omitempty"`
	ItineraryID string `json:"itineraryId,omitempty"`
}

func NewCreateBookingPayload(intent Intent, total Money, now time.Time) CreateBookingPayload {
	return CreateBookingPayload{
		UserID:            intent.Requester.UserID,
		Type:              intent.Type(),
		Status:            StatusPending,
		BookingDate:       now,
		TotalAmount:       total.Amount(),
		NumberOfTravelers: intent.NumberOfTravelers(),
		PaymentID:         PendingPaymentRef,
		BookingDetails:    intent.Item.bookingDetails(intent.Search),
	}
}

func NewPaymentPayload(intent Intent, bookingID string, total Money, now time.Time) PaymentPayload {
	return PaymentPayload{
		BookingID:     bookingID,
		UserID:        intent.Requester.UserID,
		Amount:        total.Amount(),
		PaymentMethod: intent.PaymentMethod,
		PaymentStatus: PaymentStatusCompleted,
		PaymentDate:   now,
	}
}

func NewItineraryPayload(intent Intent, pkg Package, bookingID string, total Money) ItineraryPayload {
	var activities []string
	if intent.Search.Customization != nil {
		activities = intent.Search.Customization.Activities
	}
	return ItineraryPayload{
		UserID:               intent.Requester.UserID,
		TravelPackageID:      pkg.PackageID,
		BookingID:            bookingID,
		CustomizationDetails: intent.Search.Customization.Summary(),
		Activities:           activities,
		Travelers:            intent.NumberOfTravelers(),
		Price:                total.Amount(),
	}
}

// NewConfirmPayload takes the payment id as a required argument so a
// confirmation can never be built without one.
func NewConfirmPayload(paymentID, itineraryID string) UpdateBookingPayload {
	return UpdateBookingPayload{
		Status:      StatusConfirmed,
		PaymentID:   paymentID,
		ItineraryID: itineraryID,
	}
}

func NewFailedPayload() UpdateBookingPayload {
	return UpdateBookingPayload{Status: StatusFailed}
}
