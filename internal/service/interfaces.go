package service

import (
	"context"

	"github.com/dkozlov/orderboard/internal/board"
	"github.com/dkozlov/orderboard/internal/domain"
)

// BoardService orchestrates the scheduling board: it owns the in-memory
// order snapshot, the pending-move state machine, and all write-then-reload
// sequences against the order store.
type BoardService interface {
	// Reload fetches the full order set and replaces the snapshot
	// wholesale. On failure the previous snapshot is kept.
	Reload(ctx context.Context) ([]domain.Order, error)

	// Snapshot returns the most recently loaded order set.
	Snapshot() []domain.Order

	// RequestMove asks to relocate an order to another day. Non-completed
	// orders move immediately and the call returns false. Completed orders
	// are parked as the pending move and the call returns true; the caller
	// resolves it with ConfirmMove or DeclineMove.
	RequestMove(ctx context.Context, orderNumber, sourceDate, targetDate string) (bool, error)

	// ConfirmMove applies the pending move with delivery-date propagation:
	// a delivered order's delivery date follows it to the target day.
	ConfirmMove(ctx context.Context) error

	// DeclineMove applies the pending move without touching the delivery
	// date. Declining still moves the order; only the side effect is
	// skipped.
	DeclineMove(ctx context.Context) error

	// PendingMove returns the outstanding relocation request, or nil.
	PendingMove() *board.PendingMove

	// Toggle flips an order's completion box. Checked sets delivered with
	// the delivery date equal to the planned date; unchecked reverts to
	// ready and clears the delivery date.
	Toggle(ctx context.Context, orderNumber string, checked bool) error

	// HasEditAccess reports whether mutations are permitted, failing
	// closed on any repository error.
	HasEditAccess(ctx context.Context) bool
}
