package board

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkozlov/orderboard/internal/dates"
	"github.com/dkozlov/orderboard/internal/domain"
)

// Tuesday.
var testToday = time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

func TestWindow_EmptyOrderSet(t *testing.T) {
	days := Window(testToday, nil)

	require.NotEmpty(t, days)
	// Spans today-5 .. today+1, minus the Sundays in between.
	assert.Equal(t, "27.08.2026", dates.FormatKey(days[0]))
	assert.Equal(t, "02.09.2026", dates.FormatKey(days[len(days)-1]))
	for _, d := range days {
		assert.NotEqual(t, time.Sunday, d.Weekday())
	}
	// 27.08..02.09 is seven calendar days containing one Sunday (30.08).
	assert.Len(t, days, 6)
}

func TestWindow_ExtendsToMaxPlannedPlusOne(t *testing.T) {
	orders := []domain.Order{
		{OrderNumber: "N-1", PlannedDate: "10.09.2026"},
		{OrderNumber: "N-2", PlannedDate: "04.09.2026"},
	}

	days := Window(testToday, orders)
	assert.Equal(t, "11.09.2026", dates.FormatKey(days[len(days)-1]))
}

func TestWindow_EndNeverFallsOnSunday(t *testing.T) {
	// 05.09.2026 is a Saturday, so maxPlanned+1 is a Sunday and the end
	// must advance to Monday.
	orders := []domain.Order{{OrderNumber: "N-1", PlannedDate: "05.09.2026"}}

	days := Window(testToday, orders)
	last := days[len(days)-1]
	assert.Equal(t, "07.09.2026", dates.FormatKey(last))
	assert.Equal(t, time.Monday, last.Weekday())
}

func TestWindow_IgnoresUnparsablePlannedDates(t *testing.T) {
	orders := []domain.Order{
		{OrderNumber: "N-1", PlannedDate: ""},
		{OrderNumber: "N-2", PlannedDate: "sometime soon"},
		{OrderNumber: "N-3", PlannedDate: "03.09.2026"},
	}

	days := Window(testToday, orders)
	assert.Equal(t, "04.09.2026", dates.FormatKey(days[len(days)-1]))
}

func TestWindow_PastPlannedDatesDoNotShrinkWindow(t *testing.T) {
	orders := []domain.Order{{OrderNumber: "N-1", PlannedDate: "01.01.2020"}}

	days := Window(testToday, orders)
	assert.Equal(t, "27.08.2026", dates.FormatKey(days[0]))
	assert.Equal(t, "02.09.2026", dates.FormatKey(days[len(days)-1]))
}

func TestWindow_Deterministic(t *testing.T) {
	orders := []domain.Order{{OrderNumber: "N-1", PlannedDate: "09.09.2026"}}

	a := Window(testToday, orders)
	b := Window(testToday, orders)
	assert.Equal(t, a, b)
}

func TestWindow_AscendingOrder(t *testing.T) {
	days := Window(testToday, []domain.Order{{PlannedDate: "20.09.2026"}})
	for i := 1; i < len(days); i++ {
		assert.True(t, days[i].After(days[i-1]))
	}
}
