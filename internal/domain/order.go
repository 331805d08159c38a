package domain

// Order is one production job as stored in the order sheet.
// OrderNumber is the entity key: unique within a loaded snapshot and stable
// across reloads. All date fields hold canonical DD.MM.YYYY keys (or the raw
// upstream string when the format was never recognized).
type Order struct {
	OrderDate        string
	OrderNumber      string
	PrisadkaNumber   string
	Client           string
	Area             string
	MillingType      string
	PlannedDate      string
	Status           Status
	Payment          string
	RemainingPayment string
	DeliveryDate     string
	Phone            string
	CadFiles         string
	Material         string
}

// Completed reports whether the order is in a completed state, which requires
// confirmation before a move may rewrite its delivery date.
func (o Order) Completed() bool {
	return o.Status.Completed()
}

// FindByNumber returns the first order with the given order number, scanning
// the snapshot in order. The second result is false when no order matches.
func FindByNumber(orders []Order, orderNumber string) (Order, bool) {
	for _, o := range orders {
		if o.OrderNumber == orderNumber {
			return o, true
		}
	}
	return Order{}, false
}
