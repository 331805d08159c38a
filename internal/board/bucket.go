package board

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/dkozlov/orderboard/internal/domain"
)

// Buckets groups orders by their planned-date key, preserving the relative
// order of the input set within each bucket. Every order lands in exactly one
// bucket, keyed by its own planned date, even when that date falls outside
// the current calendar window: such orders simply render nowhere until the
// window grows to include them.
func Buckets(orders []domain.Order) map[string][]domain.Order {
	buckets := make(map[string][]domain.Order)
	for _, o := range orders {
		buckets[o.PlannedDate] = append(buckets[o.PlannedDate], o)
	}
	return buckets
}

// NormalizeArea parses a raw sheet area value into a decimal. Locale input
// may use a comma as the decimal separator. Missing or invalid values
// normalize to zero.
func NormalizeArea(raw string) decimal.Decimal {
	s := strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// TotalArea sums the normalized areas of a bucket, formatted with two decimal
// places for the day header.
func TotalArea(orders []domain.Order) string {
	total := decimal.Zero
	for _, o := range orders {
		total = total.Add(NormalizeArea(o.Area))
	}
	return total.StringFixed(2)
}

// AllDelivered reports whether a non-empty bucket consists entirely of
// delivered orders. Empty buckets report false.
func AllDelivered(orders []domain.Order) bool {
	if len(orders) == 0 {
		return false
	}
	for _, o := range orders {
		if !o.Status.Delivered() {
			return false
		}
	}
	return true
}
