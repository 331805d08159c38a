package service

import "errors"

var (
	// ErrLoad wraps repository read failures. The previous snapshot stays
	// in place when a load fails.
	ErrLoad = errors.New("loading orders failed")

	// ErrWrite wraps mutation failures. A failed write aborts the whole
	// operation before any local state changes.
	ErrWrite = errors.New("updating order failed")

	// ErrNoPendingMove is returned when confirm or decline is called with
	// no outstanding relocation request.
	ErrNoPendingMove = errors.New("no pending move")

	// ErrOrderNotFound is returned when an operation targets an order
	// number absent from the current snapshot.
	ErrOrderNotFound = errors.New("order not found in snapshot")

	// ErrAccessDenied is returned when a mutation is attempted without
	// edit capability.
	ErrAccessDenied = errors.New("edit access denied")
)
