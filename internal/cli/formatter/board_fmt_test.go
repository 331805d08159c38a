package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dkozlov/orderboard/internal/domain"
)

var testDay = time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC) // Tuesday

func TestDayHeader_WithOrders(t *testing.T) {
	orders := []domain.Order{{Area: "2,5"}, {Area: "3.25"}}
	out := DayHeader(testDay, orders)

	assert.Contains(t, out, "Вторник")
	assert.Contains(t, out, "01.09.2026")
	assert.Contains(t, out, "5.75 кв.м.")
}

func TestDayHeader_EmptyDayHasNoTotal(t *testing.T) {
	out := DayHeader(testDay, nil)
	assert.Contains(t, out, "01.09.2026")
	assert.NotContains(t, out, "кв.м.")
}

func TestOrderLine(t *testing.T) {
	o := domain.Order{
		OrderNumber:    "N-101",
		PrisadkaNumber: "2",
		MillingType:    "modern",
		Area:           "2,5",
		Status:         domain.StatusDelivered,
	}
	out := OrderLine(o)

	assert.Contains(t, out, "[x]")
	assert.Contains(t, out, "N-101")
	assert.Contains(t, out, "-2")
	assert.Contains(t, out, "modern")
	assert.Contains(t, out, "2.5кв.м.")
}

func TestOrderLine_NotDeliveredShowsEmptyBox(t *testing.T) {
	out := OrderLine(domain.Order{OrderNumber: "N-1", Status: domain.StatusReady})
	assert.Contains(t, out, "[ ]")
}

func TestOrderDetail(t *testing.T) {
	o := domain.Order{
		OrderDate: "20.08.2026",
		Client:    "Иванов",
		Payment:   "paid",
		Phone:     "+7 900 000-00-00",
	}
	out := OrderDetail(o)
	assert.Contains(t, out, "20.08.2026")
	assert.Contains(t, out, "Иванов")
	assert.Contains(t, out, "+7 900 000-00-00")
}

func TestDayBox_ContainsHeaderAndOrders(t *testing.T) {
	orders := []domain.Order{
		{OrderNumber: "N-1", MillingType: "modern", Area: "2", PlannedDate: "01.09.2026"},
	}
	out := DayBox(testDay, orders, 0, -1, false)
	assert.Contains(t, out, "Вторник")
	assert.Contains(t, out, "N-1")
}

func TestDayBox_SelectionCursor(t *testing.T) {
	orders := []domain.Order{
		{OrderNumber: "N-1", Area: "2"},
		{OrderNumber: "N-2", Area: "3"},
	}
	out := DayBox(testDay, orders, 0, 1, true)
	assert.Contains(t, out, "> ")
	assert.Contains(t, out, "N-2")
}

func TestFormatOrderTable(t *testing.T) {
	orders := []domain.Order{
		{OrderNumber: "N-1", PrisadkaNumber: "3", PlannedDate: "01.09.2026", Status: domain.StatusReady, Area: "2.5", Client: "Иванов"},
	}
	out := FormatOrderTable(orders)
	assert.Contains(t, out, "N-1-3")
	assert.Contains(t, out, "01.09.2026")
	assert.Contains(t, out, "ready")
}

func TestFormatOrderTable_Empty(t *testing.T) {
	assert.Contains(t, FormatOrderTable(nil), "No orders")
}
