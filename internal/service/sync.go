package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/dkozlov/orderboard/internal/domain"
)

// Synchronizer periodically reloads the order set and hands each successful
// snapshot to its callback. A failed tick is logged and skipped, leaving the
// previous snapshot in place until the next successful fetch.
type Synchronizer struct {
	board    BoardService
	interval time.Duration
	onUpdate func([]domain.Order)

	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

// StartSynchronizer performs an immediate load, then reloads on the given
// interval until Stop is called. The callback runs on the synchronizer's
// goroutine for every successful load, including the first.
func StartSynchronizer(board BoardService, interval time.Duration, onUpdate func([]domain.Order)) *Synchronizer {
	s := &Synchronizer{
		board:    board,
		interval: interval,
		onUpdate: onUpdate,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	go s.run()
	return s
}

func (s *Synchronizer) run() {
	defer close(s.done)

	s.tick()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.tick()
		}
	}
}

// tick fetches one snapshot. Once issued, the fetch is not cancelled by Stop;
// the loop just performs no further ones.
func (s *Synchronizer) tick() {
	orders, err := s.board.Reload(context.Background())
	if err != nil {
		slog.Warn("periodic refresh failed, keeping previous snapshot", "error", err)
		return
	}
	if s.onUpdate != nil {
		s.onUpdate(orders)
	}
}

// Stop cancels the polling loop and waits for it to exit. Stopping an already
// stopped synchronizer is a no-op.
func (s *Synchronizer) Stop() {
	s.stopOnce.Do(func() {
		close(s.stop)
	})
	<-s.done
}
