package board

import "github.com/dkozlov/orderboard/internal/domain"

// PendingMove is the single outstanding relocation request awaiting a
// confirm or decline decision.
type PendingMove struct {
	Order      domain.Order
	SourceDate string
	TargetDate string
}

// MoveController decides whether a requested relocation needs delivery-date
// confirmation and tracks the pending request. It holds at most one pending
// move: a second request while one is outstanding overwrites the first.
//
// The controller is state only; applying a move (writing through the
// repository and reloading) is the service layer's job.
type MoveController struct {
	pending *PendingMove
}

// NewMoveController returns an idle controller.
func NewMoveController() *MoveController {
	return &MoveController{}
}

// Request registers a relocation intent. For completed orders (ready or
// delivered) it records the move as pending and returns true: the caller must
// ask the operator whether to propagate the delivery date, then resolve with
// Take. For all other orders it returns false and the caller applies the move
// immediately.
func (c *MoveController) Request(order domain.Order, sourceDate, targetDate string) bool {
	if !order.Completed() {
		return false
	}
	c.pending = &PendingMove{Order: order, SourceDate: sourceDate, TargetDate: targetDate}
	return true
}

// Pending returns the outstanding move, or nil when idle.
func (c *MoveController) Pending() *PendingMove {
	return c.pending
}

// Take removes and returns the outstanding move. Both the confirm and the
// decline paths consume the pending state; they differ only in whether the
// delivery date is propagated when the move is applied.
func (c *MoveController) Take() *PendingMove {
	p := c.pending
	c.pending = nil
	return p
}

// Reset drops any pending move and returns the controller to idle.
func (c *MoveController) Reset() {
	c.pending = nil
}
