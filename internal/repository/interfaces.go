package repository

import (
	"context"
	"errors"

	"github.com/dkozlov/orderboard/internal/domain"
)

// ErrNotFound is returned when a row lookup matches nothing.
var ErrNotFound = errors.New("not found")

// OrderRepo is the contract the scheduling core consumes against the tabular
// order store. Mutations address orders by order number; the adapter resolves
// that to a storage row by scanning its most recently loaded snapshot, which
// mirrors how the upstream sheet is addressed by row position.
type OrderRepo interface {
	// LoadOrders fetches the full order set in sheet row order.
	LoadOrders(ctx context.Context) ([]domain.Order, error)

	// UpdatePlannedDate rewrites the planned-date cell of one order.
	UpdatePlannedDate(ctx context.Context, orderNumber, plannedDate string) error

	// UpdateStatus rewrites the status cell and always rewrites the
	// delivery-date cell, clearing it when deliveryDate is empty.
	UpdateStatus(ctx context.Context, orderNumber string, status domain.Status, deliveryDate string) error

	// CheckEditAccess reports whether the operator may mutate the store.
	// It never fails: any underlying error reads as no access.
	CheckEditAccess(ctx context.Context) bool
}
