package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dkozlov/orderboard/internal/board"
	"github.com/dkozlov/orderboard/internal/domain"
	"github.com/dkozlov/orderboard/internal/repository"
)

type boardService struct {
	orders   repository.OrderRepo
	moves    *board.MoveController
	observer UseCaseObserver

	mu       sync.RWMutex
	snapshot []domain.Order
}

// NewBoardService creates a BoardService over the given order repository.
func NewBoardService(orders repository.OrderRepo, observers ...UseCaseObserver) BoardService {
	return &boardService{
		orders:   orders,
		moves:    board.NewMoveController(),
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *boardService) Reload(ctx context.Context) ([]domain.Order, error) {
	started := time.Now()
	orders, err := s.orders.LoadOrders(ctx)
	if err != nil {
		s.observe(ctx, "reload", started, err, nil)
		return nil, fmt.Errorf("%w: %v", ErrLoad, err)
	}

	s.mu.Lock()
	s.snapshot = orders
	s.mu.Unlock()

	s.observe(ctx, "reload", started, nil, map[string]any{"orders": len(orders)})
	return orders, nil
}

func (s *boardService) Snapshot() []domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

func (s *boardService) RequestMove(ctx context.Context, orderNumber, sourceDate, targetDate string) (bool, error) {
	order, ok := domain.FindByNumber(s.Snapshot(), orderNumber)
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrOrderNotFound, orderNumber)
	}

	if s.moves.Request(order, sourceDate, targetDate) {
		return true, nil
	}
	return false, s.applyMove(ctx, order, targetDate, false)
}

func (s *boardService) ConfirmMove(ctx context.Context) error {
	pending := s.moves.Take()
	if pending == nil {
		return ErrNoPendingMove
	}
	return s.applyMove(ctx, pending.Order, pending.TargetDate, true)
}

func (s *boardService) DeclineMove(ctx context.Context) error {
	pending := s.moves.Take()
	if pending == nil {
		return ErrNoPendingMove
	}
	return s.applyMove(ctx, pending.Order, pending.TargetDate, false)
}

func (s *boardService) PendingMove() *board.PendingMove {
	return s.moves.Pending()
}

// applyMove writes the relocation through the repository and reloads the
// snapshot. The delivery date follows the move only when propagation was
// confirmed and the order is already delivered. A failed write returns
// before any local state changes.
func (s *boardService) applyMove(ctx context.Context, order domain.Order, targetDate string, propagateDelivery bool) error {
	started := time.Now()
	fields := map[string]any{
		"order":     order.OrderNumber,
		"target":    targetDate,
		"propagate": propagateDelivery,
	}

	if err := s.orders.UpdatePlannedDate(ctx, order.OrderNumber, targetDate); err != nil {
		s.observe(ctx, "move", started, err, fields)
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}

	if propagateDelivery && order.Status.Delivered() {
		if err := s.orders.UpdateStatus(ctx, order.OrderNumber, order.Status, targetDate); err != nil {
			s.observe(ctx, "move", started, err, fields)
			return fmt.Errorf("%w: %v", ErrWrite, err)
		}
	}

	_, err := s.Reload(ctx)
	s.observe(ctx, "move", started, err, fields)
	return err
}

func (s *boardService) Toggle(ctx context.Context, orderNumber string, checked bool) error {
	started := time.Now()
	fields := map[string]any{"order": orderNumber, "checked": checked}

	order, ok := domain.FindByNumber(s.Snapshot(), orderNumber)
	if !ok {
		return fmt.Errorf("%w: %s", ErrOrderNotFound, orderNumber)
	}

	var err error
	if checked {
		err = s.orders.UpdateStatus(ctx, orderNumber, domain.StatusDelivered, order.PlannedDate)
	} else {
		err = s.orders.UpdateStatus(ctx, orderNumber, domain.StatusReady, "")
	}
	if err != nil {
		s.observe(ctx, "toggle", started, err, fields)
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}

	_, err = s.Reload(ctx)
	s.observe(ctx, "toggle", started, err, fields)
	return err
}

func (s *boardService) HasEditAccess(ctx context.Context) bool {
	return s.orders.CheckEditAccess(ctx)
}

func (s *boardService) observe(ctx context.Context, name string, started time.Time, err error, fields map[string]any) {
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		Duration:  time.Since(started),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
		StartedAt: started,
	})
}
