package testutil

import (
	"fmt"
	"sync/atomic"

	"github.com/dkozlov/orderboard/internal/domain"
)

var orderCounter atomic.Int64

// OrderOption mutates a test order fixture.
type OrderOption func(*domain.Order)

func WithStatus(s domain.Status) OrderOption {
	return func(o *domain.Order) {
		o.Status = s
	}
}

func WithPlannedDate(key string) OrderOption {
	return func(o *domain.Order) {
		o.PlannedDate = key
	}
}

func WithDeliveryDate(key string) OrderOption {
	return func(o *domain.Order) {
		o.DeliveryDate = key
	}
}

func WithArea(area string) OrderOption {
	return func(o *domain.Order) {
		o.Area = area
	}
}

func WithClient(client string) OrderOption {
	return func(o *domain.Order) {
		o.Client = client
	}
}

func WithPrisadka(n string) OrderOption {
	return func(o *domain.Order) {
		o.PrisadkaNumber = n
	}
}

// NewTestOrder builds an order with plausible defaults. Pass an empty
// orderNumber to get a generated unique one.
func NewTestOrder(orderNumber string, opts ...OrderOption) domain.Order {
	if orderNumber == "" {
		orderNumber = fmt.Sprintf("N-%03d", orderCounter.Add(1))
	}
	o := domain.Order{
		OrderDate:   "20.08.2026",
		OrderNumber: orderNumber,
		Client:      "Иванов",
		Area:        "2.5",
		MillingType: "modern",
		PlannedDate: "01.09.2026",
		Status:      domain.StatusUnset,
		Payment:     "paid",
		Material:    "МДФ",
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// NewTestOrders builds n orders sharing the given planned date.
func NewTestOrders(n int, plannedDate string) []domain.Order {
	orders := make([]domain.Order, 0, n)
	for i := 0; i < n; i++ {
		orders = append(orders, NewTestOrder("", WithPlannedDate(plannedDate)))
	}
	return orders
}
