package repository

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/dkozlov/orderboard/internal/dates"
	"github.com/dkozlov/orderboard/internal/domain"
)

// orderColumns is the canonical SELECT column list for orders, in sheet
// column order.
const orderColumns = `order_date, order_number, prisadka_number, client, area,
		milling_type, planned_date, status, payment, remaining_payment,
		delivery_date, phone, cad_files, material`

// rowRef ties an order number to the sheet row it occupied in the last
// loaded snapshot.
type rowRef struct {
	orderNumber string
	rowIndex    int
}

// SheetOrderRepo implements OrderRepo over a SQLite table that mirrors the
// upstream order sheet one row per order.
//
// Mutations resolve an order number to a row by scanning the snapshot taken
// at the last LoadOrders, not the live table. A stale snapshot can therefore
// resolve to the wrong row after a concurrent external edit; the periodic
// reload bounds that window. This matches the upstream sheet addressing.
type SheetOrderRepo struct {
	db *sql.DB

	mu   sync.Mutex
	rows []rowRef
}

// NewSheetOrderRepo creates a new SheetOrderRepo.
func NewSheetOrderRepo(db *sql.DB) *SheetOrderRepo {
	return &SheetOrderRepo{db: db}
}

func (r *SheetOrderRepo) LoadOrders(ctx context.Context) ([]domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders ORDER BY row_index`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("loading orders: %w", err)
	}
	defer rows.Close()

	var orders []domain.Order
	var refs []rowRef
	for rows.Next() {
		var o domain.Order
		var statusStr string
		err := rows.Scan(
			&o.OrderDate, &o.OrderNumber, &o.PrisadkaNumber, &o.Client, &o.Area,
			&o.MillingType, &o.PlannedDate, &statusStr, &o.Payment, &o.RemainingPayment,
			&o.DeliveryDate, &o.Phone, &o.CadFiles, &o.Material,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning order row: %w", err)
		}
		o.Status = domain.ParseStatus(statusStr)
		o.OrderDate = dates.Canonicalize(o.OrderDate)
		o.PlannedDate = dates.Canonicalize(o.PlannedDate)
		o.DeliveryDate = dates.Canonicalize(o.DeliveryDate)

		refs = append(refs, rowRef{orderNumber: o.OrderNumber, rowIndex: len(refs)})
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating order rows: %w", err)
	}

	r.mu.Lock()
	r.rows = refs
	r.mu.Unlock()

	return orders, nil
}

func (r *SheetOrderRepo) UpdatePlannedDate(ctx context.Context, orderNumber, plannedDate string) error {
	rowIndex, err := r.resolveRow(orderNumber)
	if err != nil {
		return err
	}
	query := `UPDATE orders SET planned_date = ? WHERE row_index = ?`
	if _, err := r.db.ExecContext(ctx, query, dates.Canonicalize(plannedDate), rowIndex); err != nil {
		return fmt.Errorf("updating planned date: %w", err)
	}
	return nil
}

func (r *SheetOrderRepo) UpdateStatus(ctx context.Context, orderNumber string, status domain.Status, deliveryDate string) error {
	rowIndex, err := r.resolveRow(orderNumber)
	if err != nil {
		return err
	}
	if deliveryDate != "" {
		deliveryDate = dates.Canonicalize(deliveryDate)
	}
	query := `UPDATE orders SET status = ?, delivery_date = ? WHERE row_index = ?`
	if _, err := r.db.ExecContext(ctx, query, string(status), deliveryDate, rowIndex); err != nil {
		return fmt.Errorf("updating status: %w", err)
	}
	return nil
}

func (r *SheetOrderRepo) CheckEditAccess(ctx context.Context) bool {
	var value string
	err := r.db.QueryRowContext(ctx,
		`SELECT value FROM sheet_meta WHERE key = 'can_edit'`).Scan(&value)
	if err != nil {
		// Fail closed: no readable capability means no edit access.
		return false
	}
	return value == "1" || value == "true"
}

// resolveRow maps an order number to the row index it held in the last
// loaded snapshot.
func (r *SheetOrderRepo) resolveRow(orderNumber string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.rows) == 0 {
		return 0, fmt.Errorf("resolving order %s: orders not loaded", orderNumber)
	}
	for _, ref := range r.rows {
		if ref.orderNumber == orderNumber {
			return ref.rowIndex, nil
		}
	}
	return 0, fmt.Errorf("resolving order %s: %w", orderNumber, ErrNotFound)
}

// SeedOrders replaces the table contents with the given orders, assigning
// sheet row positions in slice order. Used by the seed command and tests.
func (r *SheetOrderRepo) SeedOrders(ctx context.Context, orders []domain.Order) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting seed transaction: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM orders`); err != nil {
		return fmt.Errorf("clearing orders: %w", err)
	}

	query := `INSERT INTO orders (id, row_index, order_date, order_number, prisadka_number,
		client, area, milling_type, planned_date, status, payment, remaining_payment,
		delivery_date, phone, cad_files, material)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	for i, o := range orders {
		_, err := tx.ExecContext(ctx, query,
			uuid.New().String(),
			i,
			o.OrderDate,
			o.OrderNumber,
			o.PrisadkaNumber,
			o.Client,
			o.Area,
			o.MillingType,
			o.PlannedDate,
			string(o.Status),
			o.Payment,
			o.RemainingPayment,
			o.DeliveryDate,
			o.Phone,
			o.CadFiles,
			o.Material,
		)
		if err != nil {
			return fmt.Errorf("inserting order %s: %w", o.OrderNumber, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing seed transaction: %w", err)
	}
	committed = true
	return nil
}
