package domain

import "strings"

// Status is the completion state of an order. Stored values come from an
// operator-edited sheet, so comparisons are case-insensitive.
type Status string

const (
	StatusUnset     Status = ""
	StatusCut       Status = "cut"
	StatusReady     Status = "ready"
	StatusDelivered Status = "delivered"
)

// ParseStatus normalizes a raw sheet value to a Status. Unknown values map to
// StatusUnset rather than failing: the sheet is hand-edited upstream.
func ParseStatus(raw string) Status {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case string(StatusCut):
		return StatusCut
	case string(StatusReady):
		return StatusReady
	case string(StatusDelivered):
		return StatusDelivered
	default:
		return StatusUnset
	}
}

// Completed reports whether the status counts as completed. Moving a
// completed order requires delivery-date confirmation.
func (s Status) Completed() bool {
	switch Status(strings.ToLower(string(s))) {
	case StatusReady, StatusDelivered:
		return true
	}
	return false
}

// Delivered reports whether the order has been handed to the client.
func (s Status) Delivered() bool {
	return Status(strings.ToLower(string(s))) == StatusDelivered
}

// ValidPayments is the canonical set of accepted payment strings.
var ValidPayments = map[string]bool{
	"unpaid": true, "debt": true, "partial": true,
	"paid": true, "company": true,
}

// ValidMillingTypes is the canonical set of accepted milling type strings.
var ValidMillingTypes = map[string]bool{
	"modern": true, "milling": true, "rough": true,
}
