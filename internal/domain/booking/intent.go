package booking

import (
	"fmt"
	"strings"
	"time"
)

// SearchContext is what the user entered while searching. It is taken as-is;
// only presence is checked.
type SearchContext struct {
	CheckIn       time.Time
	CheckOut      time.Time
	Guests        int
	Passengers    int
	Travelers     int
	Customization *Customization
}

// Customization is the result of the package customization step.
type Customization struct {
	Activities []string
	Travelers  int
	TotalPrice Money
	Details    string
}

// Summary renders the free-text customization details stored on the itinerary.
func (c *Customization) Summary() string {
	if c == nil {
		return ""
	}
	if strings.TrimSpace(c.Details) != "" {
		return strings.TrimSpace(c.Details)
	}
	if len(c.Activities) == 0 {
		return ""
	}
	return fmt.Sprintf("Activities: %s; Travelers: %d", strings.Join(c.Activities, ", "), atLeastOne(c.Travelers))
}

type Requester struct {
	UserID string
	Token  string
}

func (r Requester) IsAuthenticated() bool {
	return strings.TrimSpace(r.UserID) != "" && strings.TrimSpace(r.Token) != ""
}

// Intent is one checkout request. The caller owns it for the duration of the checkout.
type Intent struct {
	Item          Item
	Search        SearchContext
	Requester     Requester
	PaymentMethod string
}

// Type is empty when no supported item was selected.
func (i Intent) Type() Type {
	if !isVariant(i.Item) {
		return ""
	}
	return i.Item.Type()
}

func (i Intent) NumberOfTravelers() int {
	if !isVariant(i.Item) {
		return 0
	}
	return i.Item.travelers(i.Search)
}

// Validate runs the presence checks that must pass before any backend is called.
func (i Intent) Validate() (Money, error) {
	if i.Item == nil {
		return Money{}, ErrMissingItem
	}
	if !isVariant(i.Item) {
		return Money{}, ErrUnsupportedItem
	}
	if !i.Item.Type().IsValid() {
		return Money{}, ErrUnknownBookingType
	}

	total, err := totalAmount(i)
	if err != nil {
		return Money{}, err
	}
	if !total.IsPositive() {
		return Money{}, ErrNonPositiveTotal
	}
	return total, nil
}
