package booking

import (
	"math"
	"time"
)

const day = 24 * time.Hour

// TotalAmount is unit price times quantity, where quantity is nights for
// hotels, passengers for flights and travelers for packages. It is zero when
// there is no item or the product overflows; Validate tells the two apart.
func TotalAmount(intent Intent) Money {
	total, err := totalAmount(intent)
	if err != nil {
		return Money{}
	}
	return total
}

func totalAmount(intent Intent) (Money, error) {
	if !isVariant(intent.Item) {
		return Money{}, nil
	}
	total, ok := intent.Item.unitPrice(intent.Search).Times(intent.Item.quantity(intent.Search))
	if !ok {
		return Money{}, ErrTotalOutOfRange
	}
	return total, nil
}

// Nights rounds a partial day up and never returns less than one, also when
// either date is missing.
func Nights(checkIn, checkOut time.Time) int {
	if checkIn.IsZero() || checkOut.IsZero() {
		return 1
	}

	span := checkOut.Sub(checkIn)
	if span < 0 {
		span = -span
	}

	nights := int(math.Ceil(float64(span) / float64(day)))
	return atLeastOne(nights)
}
