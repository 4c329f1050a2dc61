package booking

import "errors"

var (
	ErrInvalidTransition     = errors.New("invalid checkout state transition")
	ErrMissingReference      = errors.New("missing service reference")
	ErrConfirmWithoutPayment = errors.New("cannot confirm a booking without a payment reference")
)

// State is the position of one checkout in the booking saga.
type State string

const (
	StateNew              State = "NEW"
	StateCreated          State = "CREATED"
	StatePaid             State = "PAID"
	StateItineraryCreated State = "ITINERARY_CREATED"
	StateConfirmed        State = "CONFIRMED"
	StateFailed           State = "FAILED"
)

func (s State) String() string {
	return string(s)
}

func (s State) IsTerminal() bool {
	return s == StateConfirmed || s == StateFailed
}

// Saga tracks the references collected by one checkout. It is owned by a
// single call and is not safe for concurrent use.
//
//	NEW -> CREATED -> PAID -> [ITINERARY_CREATED] -> CONFIRMED
//	any non-terminal state -> FAILED
type Saga struct {
	bookingType Type
	state       State
	bookingID   string
	paymentID   string
	itineraryID string
}

func NewSaga(bookingType Type) *Saga {
	return &Saga{
		bookingType: bookingType,
		state:       StateNew,
	}
}

func (s *Saga) State() State         { return s.state }
func (s *Saga) BookingType() Type    { return s.bookingType }
func (s *Saga) BookingID() string    { return s.bookingID }
func (s *Saga) PaymentID() string    { return s.paymentID }
func (s *Saga) ItineraryID() string  { return s.itineraryID }
func (s *Saga) HasBooking() bool     { return s.bookingID != "" }
func (s *Saga) HasPayment() bool     { return s.paymentID != "" }
func (s *Saga) NeedsItinerary() bool { return s.bookingType == TypePackage }
func (s *Saga) IsConfirmed() bool    { return s.state == StateConfirmed }

func (s *Saga) Created(bookingID string) error {
	if s.state != StateNew {
		return ErrInvalidTransition
	}
	if bookingID == "" {
		return ErrMissingReference
	}
	s.bookingID = bookingID
	s.state = StateCreated
	return nil
}

func (s *Saga) Paid(paymentID string) error {
	if s.state != StateCreated {
		return ErrInvalidTransition
	}
	if paymentID == "" {
		return ErrMissingReference
	}
	s.paymentID = paymentID
	s.state = StatePaid
	return nil
}

func (s *Saga) ItineraryCreated(itineraryID string) error {
	if s.state != StatePaid || !s.NeedsItinerary() {
		return ErrInvalidTransition
	}
	if itineraryID == "" {
		return ErrMissingReference
	}
	s.itineraryID = itineraryID
	s.state = StateItineraryCreated
	return nil
}

// ReadyToConfirm reports whether every reference a confirmation needs is present.
func (s *Saga) ReadyToConfirm() bool {
	if s.NeedsItinerary() {
		return s.state == StateItineraryCreated
	}
	return s.state == StatePaid
}

func (s *Saga) Confirm() error {
	if !s.HasPayment() {
		return ErrConfirmWithoutPayment
	}
	if !s.ReadyToConfirm() {
		return ErrInvalidTransition
	}
	s.state = StateConfirmed
	return nil
}

// Fail is the single compensation transition.
func (s *Saga) Fail() error {
	if s.state.IsTerminal() {
		return ErrInvalidTransition
	}
	s.state = StateFailed
	return nil
}
