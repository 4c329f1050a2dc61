package booking

import (
	"errors"
	"strings"
)

var (
	ErrUnknownBookingType = errors.New("unknown booking type")
	ErrMissingItem        = errors.New("selected item is required")
	ErrNonPositiveTotal   = errors.New("total amount must be greater than zero")
	ErrTotalOutOfRange    = errors.New("total amount is out of range")
	ErrUnsupportedItem    = errors.New("unsupported item variant")
)

type Type string

const (
	TypeHotel   Type = "hotel"
	TypeFlight  Type = "flight"
	TypePackage Type = "package"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case TypeHotel, TypeFlight, TypePackage:
		return true
	default:
		return false
	}
}

// ParseType accepts the names used by the catalog pages, including "itinerary"
// which the package customization page sends for customised packages.
func ParseType(s string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hotel":
		return TypeHotel, nil
	case "flight":
		return TypeFlight, nil
	case "package", "itinerary":
		return TypePackage, nil
	default:
		return "", ErrUnknownBookingType
	}
}

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusFailed    Status = "FAILED"
	StatusCancelled Status = "CANCELLED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusFailed, StatusCancelled:
		return true
	default:
		return false
	}
}
